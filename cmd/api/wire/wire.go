//go:build wireinject
// +build wireinject

package wire

import (
	"crm-server/internal/crm/httpapi"
	"crm-server/internal/crm/persistence"
	"crm-server/internal/crm/usecases"
	"crm-server/internal/infra/httpserver"

	"github.com/google/wire"
)

var RepositorySet = wire.NewSet(
	provideAppConfig,
	provideDatabase,
	persistence.NewCustomFieldRepository,
	wire.Bind(new(usecases.CustomFieldRepository), new(*persistence.SimpleCustomFieldRepository)),
	persistence.NewCompanyRepository,
	wire.Bind(new(usecases.CompanyRepository), new(*persistence.SimpleCompanyRepository)),
	persistence.NewContactRepository,
	wire.Bind(new(usecases.ContactRepository), new(*persistence.SimpleContactRepository)),
)

var ServiceSet = wire.NewSet(
	RepositorySet,
	usecases.NewCustomFieldService,
	wire.Bind(new(usecases.CustomFieldService), new(*usecases.SimpleCustomFieldService)),
	usecases.NewCompanyService,
	wire.Bind(new(usecases.CompanyService), new(*usecases.SimpleCompanyService)),
	usecases.NewContactService,
	wire.Bind(new(usecases.ContactService), new(*usecases.SimpleContactService)),
)

func InitializeCustomFieldController() (*httpapi.CustomFieldController, error) {
	wire.Build(
		ServiceSet,
		httpapi.NewCustomFieldController,
	)
	return nil, nil
}

func InitializeCompanyController() (*httpapi.CompanyController, error) {
	wire.Build(
		ServiceSet,
		httpapi.NewCompanyController,
	)
	return nil, nil
}

func InitializeContactController() (*httpapi.ContactController, error) {
	wire.Build(
		ServiceSet,
		httpapi.NewContactController,
	)
	return nil, nil
}

func InitializeCustomFieldService() (*usecases.SimpleCustomFieldService, error) {
	wire.Build(
		RepositorySet,
		usecases.NewCustomFieldService,
	)
	return nil, nil
}

func InitializeCompanyService() (*usecases.SimpleCompanyService, error) {
	wire.Build(
		RepositorySet,
		usecases.NewCompanyService,
	)
	return nil, nil
}

func InitializeContactService() (*usecases.SimpleContactService, error) {
	wire.Build(
		RepositorySet,
		usecases.NewContactService,
	)
	return nil, nil
}

func InitializeServerOptions() (httpserver.ServerOptions, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		providePinger,
		provideServerOptions,
	)
	return httpserver.ServerOptions{}, nil
}
