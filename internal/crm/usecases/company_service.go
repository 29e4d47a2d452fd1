package usecases

//go:generate mockgen -source=./company_service.go -destination=../../../test/unit/doubles/crm/usecases/company_service_mock.go -package=usecases -mock_names=CompanyService=MockCompanyService

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"crm-server/internal/crm/domain"
	shareddomain "crm-server/internal/shared_kernel/domain"
)

const _defaultRecentCount = 10

type CompanyService interface {
	ListCompanies(ctx context.Context, query domain.CompanyQuery) (domain.Page[domain.Company], error)
	GetCompany(ctx context.Context, id shareddomain.ID, filter shareddomain.DeletedFilter) (domain.Company, error)
	CreateCompany(ctx context.Context, company domain.Company, values domain.CustomFieldValues) (domain.Company, error)
	UpdateCompany(ctx context.Context, id shareddomain.ID, update domain.CompanyUpdate, values domain.CustomFieldValues) (domain.Company, error)
	DeleteCompany(ctx context.Context, id shareddomain.ID) (domain.DeletionMode, error)
	RestoreCompany(ctx context.Context, id shareddomain.ID) (domain.Company, error)
	ListCompaniesByCustomField(ctx context.Context, fieldID shareddomain.ID, value string) ([]domain.Company, error)
	ListRecentlyModifiedCompanies(ctx context.Context, count int) ([]domain.Company, error)
}

func NewCompanyService(
	repository CompanyRepository,
	contacts ContactRepository,
	fields CustomFieldRepository,
) *SimpleCompanyService {
	return &SimpleCompanyService{
		repository: repository,
		contacts:   contacts,
		values:     valueResolver{fields: fields},
	}
}

var _ CompanyService = (*SimpleCompanyService)(nil)

type SimpleCompanyService struct {
	repository CompanyRepository
	contacts   ContactRepository
	values     valueResolver
}

func (s *SimpleCompanyService) ListCompanies(ctx context.Context, query domain.CompanyQuery) (domain.Page[domain.Company], error) {
	query.Pagination = query.Pagination.Normalize()

	companies, total, err := s.repository.FindAll(ctx, query)
	if err != nil {
		slog.Error("listing companies", slog.String("error", err.Error()))
		return domain.Page[domain.Company]{}, fmt.Errorf("listing companies: %w", err)
	}

	return domain.Page[domain.Company]{Items: companies, Total: total, Pagination: query.Pagination}, nil
}

func (s *SimpleCompanyService) GetCompany(
	ctx context.Context,
	id shareddomain.ID,
	filter shareddomain.DeletedFilter,
) (domain.Company, error) {
	company, err := s.repository.GetByID(ctx, id, filter)
	if err != nil {
		if errors.Is(err, ErrCompanyNotFound) {
			return domain.Company{}, ErrCompanyNotFound
		}
		slog.Error("getting company", slog.String("error", err.Error()))
		return domain.Company{}, fmt.Errorf("getting company: %w", err)
	}

	return company, nil
}

func (s *SimpleCompanyService) CreateCompany(
	ctx context.Context,
	company domain.Company,
	values domain.CustomFieldValues,
) (domain.Company, error) {
	if err := company.Validate(); err != nil {
		return domain.Company{}, err
	}

	rows, err := s.prepare(ctx, company, nil, values)
	if err != nil {
		return domain.Company{}, err
	}

	err = s.repository.Create(ctx, company, rows)
	if errors.Is(err, ErrCompanyNameConflict) {
		return domain.Company{}, ErrCompanyNameConflict
	}
	if err != nil {
		slog.Error("creating company", slog.String("error", err.Error()))
		return domain.Company{}, fmt.Errorf("creating company: %w", err)
	}

	slog.Info("company created", slog.String("id", company.ID.String()), slog.Int("custom_values", len(rows)))

	return s.GetCompany(ctx, company.ID, shareddomain.ExcludeDeleted)
}

func (s *SimpleCompanyService) UpdateCompany(
	ctx context.Context,
	id shareddomain.ID,
	update domain.CompanyUpdate,
	values domain.CustomFieldValues,
) (domain.Company, error) {
	company, err := s.GetCompany(ctx, id, shareddomain.ExcludeDeleted)
	if err != nil {
		return domain.Company{}, err
	}

	if err := company.Apply(update); err != nil {
		return domain.Company{}, err
	}

	rows, err := s.prepare(ctx, company, &company.ID, values)
	if err != nil {
		return domain.Company{}, err
	}

	err = s.repository.Update(ctx, company, rows)
	if errors.Is(err, ErrCompanyNameConflict) {
		return domain.Company{}, ErrCompanyNameConflict
	}
	if err != nil {
		slog.Error("updating company", slog.String("error", err.Error()))
		return domain.Company{}, fmt.Errorf("updating company: %w", err)
	}

	return s.GetCompany(ctx, company.ID, shareddomain.ExcludeDeleted)
}

// prepare runs every check that must pass before the company is written.
func (s *SimpleCompanyService) prepare(
	ctx context.Context,
	company domain.Company,
	excludeID *shareddomain.ID,
	values domain.CustomFieldValues,
) ([]domain.CustomFieldValue, error) {
	taken, err := s.repository.IsNameTaken(ctx, string(company.Name), excludeID)
	if err != nil {
		slog.Error("checking company name", slog.String("error", err.Error()))
		return nil, fmt.Errorf("checking company name: %w", err)
	}
	if taken {
		return nil, ErrCompanyNameConflict
	}

	if len(company.ContactIDs) > 0 {
		existing, err := s.contacts.ExistingIDs(ctx, company.ContactIDs)
		if err != nil {
			slog.Error("checking contacts", slog.String("error", err.Error()))
			return nil, fmt.Errorf("checking contacts: %w", err)
		}
		if err := ensureAllExist("contact_ids", company.ContactIDs, existing); err != nil {
			return nil, err
		}
	}

	return s.values.resolve(ctx, domain.EntityTypeCompany, company.ID, values)
}

// DeleteCompany keeps companies that still have contacts or custom values as
// soft deleted rows and removes the others together with their links.
func (s *SimpleCompanyService) DeleteCompany(ctx context.Context, id shareddomain.ID) (domain.DeletionMode, error) {
	company, err := s.GetCompany(ctx, id, shareddomain.ExcludeDeleted)
	if err != nil {
		return "", err
	}

	related, err := s.repository.HasRelatedData(ctx, id)
	if err != nil {
		slog.Error("checking company related data", slog.String("error", err.Error()))
		return "", fmt.Errorf("checking company related data: %w", err)
	}

	if related {
		company.SoftDelete()
		if err := s.repository.UpdateStatus(ctx, company); err != nil {
			slog.Error("soft deleting company", slog.String("error", err.Error()))
			return "", fmt.Errorf("soft deleting company: %w", err)
		}
		return domain.DeletionModeSoft, nil
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		slog.Error("deleting company", slog.String("error", err.Error()))
		return "", fmt.Errorf("deleting company: %w", err)
	}

	return domain.DeletionModeHard, nil
}

func (s *SimpleCompanyService) RestoreCompany(ctx context.Context, id shareddomain.ID) (domain.Company, error) {
	company, err := s.GetCompany(ctx, id, shareddomain.IncludeDeleted)
	if err != nil {
		return domain.Company{}, err
	}

	if !company.IsDeleted() {
		return domain.Company{}, ErrCompanyNotFound
	}

	company.Restore()
	if err := s.repository.UpdateStatus(ctx, company); err != nil {
		slog.Error("restoring company", slog.String("error", err.Error()))
		return domain.Company{}, fmt.Errorf("restoring company: %w", err)
	}

	return company, nil
}

func (s *SimpleCompanyService) ListCompaniesByCustomField(
	ctx context.Context,
	fieldID shareddomain.ID,
	value string,
) ([]domain.Company, error) {
	companies, err := s.repository.FindByCustomFieldValue(ctx, fieldID, value)
	if err != nil {
		slog.Error("listing companies by custom field", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing companies by custom field: %w", err)
	}

	return companies, nil
}

func (s *SimpleCompanyService) ListRecentlyModifiedCompanies(ctx context.Context, count int) ([]domain.Company, error) {
	if count < 1 {
		count = _defaultRecentCount
	}
	if count > domain.MaxPageSize {
		count = domain.MaxPageSize
	}

	companies, err := s.repository.FindRecentlyModified(ctx, count)
	if err != nil {
		slog.Error("listing recently modified companies", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing recently modified companies: %w", err)
	}

	return companies, nil
}
