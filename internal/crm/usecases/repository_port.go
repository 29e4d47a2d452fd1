package usecases

//go:generate mockgen -source=repository_port.go -destination=../../../test/unit/doubles/crm/usecases/repository_port_mock.go -package=usecases -mock_names=CustomFieldRepository=MockCustomFieldRepository,CompanyRepository=MockCompanyRepository,ContactRepository=MockContactRepository

import (
	"context"
	"errors"
	"fmt"

	"crm-server/internal/crm/domain"
	shareddomain "crm-server/internal/shared_kernel/domain"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")

	ErrCustomFieldNotFound = fmt.Errorf("custom field %w", ErrNotFound)
	ErrCompanyNotFound     = fmt.Errorf("company %w", ErrNotFound)
	ErrContactNotFound     = fmt.Errorf("contact %w", ErrNotFound)

	ErrCustomFieldConflict  = fmt.Errorf("custom field name already used for this entity type: %w", ErrConflict)
	ErrCompanyNameConflict  = fmt.Errorf("company name already exists: %w", ErrConflict)
	ErrContactEmailConflict = fmt.Errorf("contact email already exists: %w", ErrConflict)

	// ErrCustomFieldInUse is returned by a hard delete that found values
	// attached inside its transaction.
	ErrCustomFieldInUse = errors.New("custom field in use")
)

type CustomFieldRepository interface {
	Create(ctx context.Context, field domain.CustomField) error
	GetByID(ctx context.Context, id shareddomain.ID, filter shareddomain.DeletedFilter) (domain.CustomField, error)
	GetByIDs(ctx context.Context, ids []shareddomain.ID) ([]domain.CustomField, error)
	FindAll(ctx context.Context, entityType *domain.EntityType, filter shareddomain.DeletedFilter) ([]domain.CustomField, error)
	FindActiveByName(ctx context.Context, name string, entityType domain.EntityType) (domain.CustomField, error)
	FindActiveByNames(ctx context.Context, names []string, entityType domain.EntityType) ([]domain.CustomField, error)
	Update(ctx context.Context, field domain.CustomField) error
	Delete(ctx context.Context, id shareddomain.ID) error
	IsInUse(ctx context.Context, id shareddomain.ID) (bool, error)
	Usage(ctx context.Context, field domain.CustomField) (domain.CustomFieldUsage, error)
	Exists(ctx context.Context, id shareddomain.ID) (bool, error)
}

type CompanyRepository interface {
	Create(ctx context.Context, company domain.Company, values []domain.CustomFieldValue) error
	Update(ctx context.Context, company domain.Company, values []domain.CustomFieldValue) error
	UpdateStatus(ctx context.Context, company domain.Company) error
	GetByID(ctx context.Context, id shareddomain.ID, filter shareddomain.DeletedFilter) (domain.Company, error)
	FindAll(ctx context.Context, query domain.CompanyQuery) ([]domain.Company, int64, error)
	FindByCustomFieldValue(ctx context.Context, fieldID shareddomain.ID, value string) ([]domain.Company, error)
	FindRecentlyModified(ctx context.Context, count int) ([]domain.Company, error)
	IsNameTaken(ctx context.Context, name string, excludeID *shareddomain.ID) (bool, error)
	HasRelatedData(ctx context.Context, id shareddomain.ID) (bool, error)
	ExistingIDs(ctx context.Context, ids []shareddomain.ID) ([]shareddomain.ID, error)
	Delete(ctx context.Context, id shareddomain.ID) error
}

type ContactRepository interface {
	Create(ctx context.Context, contact domain.Contact, values []domain.CustomFieldValue) error
	Update(ctx context.Context, contact domain.Contact, values []domain.CustomFieldValue) error
	UpdateStatus(ctx context.Context, contact domain.Contact) error
	GetByID(ctx context.Context, id shareddomain.ID, filter shareddomain.DeletedFilter) (domain.Contact, error)
	FindAll(ctx context.Context, query domain.ContactQuery) ([]domain.Contact, int64, error)
	FindAllForStatistics(ctx context.Context) ([]domain.Contact, error)
	FindByCompany(ctx context.Context, companyID shareddomain.ID) ([]domain.Contact, error)
	Search(ctx context.Context, term string, filters map[shareddomain.ID]string, pagination domain.Pagination) ([]domain.Contact, int64, error)
	IsEmailTaken(ctx context.Context, email string, excludeID *shareddomain.ID) (bool, error)
	ExistingIDs(ctx context.Context, ids []shareddomain.ID) ([]shareddomain.ID, error)
	Exists(ctx context.Context, id shareddomain.ID) (bool, error)
}
