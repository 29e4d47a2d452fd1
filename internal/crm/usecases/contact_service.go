package usecases

//go:generate mockgen -source=./contact_service.go -destination=../../../test/unit/doubles/crm/usecases/contact_service_mock.go -package=usecases -mock_names=ContactService=MockContactService

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"crm-server/internal/crm/domain"
	"crm-server/internal/infra/utils"
	shareddomain "crm-server/internal/shared_kernel/domain"
)

var ErrPrimaryContactDeletion = domain.NewValidationError("is_primary", "primary contacts cannot be deleted")

type ContactService interface {
	ListContacts(ctx context.Context, query domain.ContactQuery) (domain.Page[domain.Contact], error)
	GetContact(ctx context.Context, id shareddomain.ID, filter shareddomain.DeletedFilter) (domain.Contact, error)
	CreateContact(ctx context.Context, contact domain.Contact, values domain.CustomFieldValues) (domain.Contact, error)
	UpdateContact(ctx context.Context, id shareddomain.ID, update domain.ContactUpdate, values domain.CustomFieldValues) (domain.Contact, error)
	DeleteContact(ctx context.Context, id shareddomain.ID) error
	RestoreContact(ctx context.Context, id shareddomain.ID) (domain.Contact, error)
	ListContactsByCompany(ctx context.Context, companyID shareddomain.ID) ([]domain.Contact, error)
	SearchContacts(ctx context.Context, search domain.ContactSearch) (domain.Page[domain.Contact], error)
	GetContactStatistics(ctx context.Context) (domain.ContactStatistics, error)
	IsEmailAvailable(ctx context.Context, email string, excludeID *shareddomain.ID) (bool, error)
	ContactExists(ctx context.Context, id shareddomain.ID) (bool, error)
}

func NewContactService(
	repository ContactRepository,
	companies CompanyRepository,
	fields CustomFieldRepository,
) *SimpleContactService {
	return &SimpleContactService{
		repository: repository,
		companies:  companies,
		fields:     fields,
		values:     valueResolver{fields: fields},
	}
}

var _ ContactService = (*SimpleContactService)(nil)

type SimpleContactService struct {
	repository ContactRepository
	companies  CompanyRepository
	fields     CustomFieldRepository
	values     valueResolver
}

func (s *SimpleContactService) ListContacts(ctx context.Context, query domain.ContactQuery) (domain.Page[domain.Contact], error) {
	query.Pagination = query.Pagination.Normalize()

	contacts, total, err := s.repository.FindAll(ctx, query)
	if err != nil {
		slog.Error("listing contacts", slog.String("error", err.Error()))
		return domain.Page[domain.Contact]{}, fmt.Errorf("listing contacts: %w", err)
	}

	return domain.Page[domain.Contact]{Items: contacts, Total: total, Pagination: query.Pagination}, nil
}

func (s *SimpleContactService) GetContact(
	ctx context.Context,
	id shareddomain.ID,
	filter shareddomain.DeletedFilter,
) (domain.Contact, error) {
	contact, err := s.repository.GetByID(ctx, id, filter)
	if err != nil {
		if errors.Is(err, ErrContactNotFound) {
			return domain.Contact{}, ErrContactNotFound
		}
		slog.Error("getting contact", slog.String("error", err.Error()))
		return domain.Contact{}, fmt.Errorf("getting contact: %w", err)
	}

	return contact, nil
}

func (s *SimpleContactService) CreateContact(
	ctx context.Context,
	contact domain.Contact,
	values domain.CustomFieldValues,
) (domain.Contact, error) {
	if err := contact.Validate(); err != nil {
		return domain.Contact{}, err
	}

	rows, err := s.prepare(ctx, contact, nil, values)
	if err != nil {
		return domain.Contact{}, err
	}

	err = s.repository.Create(ctx, contact, rows)
	if errors.Is(err, ErrContactEmailConflict) {
		return domain.Contact{}, ErrContactEmailConflict
	}
	if err != nil {
		slog.Error("creating contact", slog.String("error", err.Error()))
		return domain.Contact{}, fmt.Errorf("creating contact: %w", err)
	}

	slog.Info("contact created", slog.String("id", contact.ID.String()), slog.Int("custom_values", len(rows)))

	return s.GetContact(ctx, contact.ID, shareddomain.ExcludeDeleted)
}

func (s *SimpleContactService) UpdateContact(
	ctx context.Context,
	id shareddomain.ID,
	update domain.ContactUpdate,
	values domain.CustomFieldValues,
) (domain.Contact, error) {
	contact, err := s.GetContact(ctx, id, shareddomain.ExcludeDeleted)
	if err != nil {
		return domain.Contact{}, err
	}

	if err := contact.Apply(update); err != nil {
		return domain.Contact{}, err
	}

	rows, err := s.prepare(ctx, contact, &contact.ID, values)
	if err != nil {
		return domain.Contact{}, err
	}

	err = s.repository.Update(ctx, contact, rows)
	if errors.Is(err, ErrContactEmailConflict) {
		return domain.Contact{}, ErrContactEmailConflict
	}
	if err != nil {
		slog.Error("updating contact", slog.String("error", err.Error()))
		return domain.Contact{}, fmt.Errorf("updating contact: %w", err)
	}

	return s.GetContact(ctx, contact.ID, shareddomain.ExcludeDeleted)
}

func (s *SimpleContactService) prepare(
	ctx context.Context,
	contact domain.Contact,
	excludeID *shareddomain.ID,
	values domain.CustomFieldValues,
) ([]domain.CustomFieldValue, error) {
	taken, err := s.repository.IsEmailTaken(ctx, contact.Email, excludeID)
	if err != nil {
		slog.Error("checking contact email", slog.String("error", err.Error()))
		return nil, fmt.Errorf("checking contact email: %w", err)
	}
	if taken {
		return nil, ErrContactEmailConflict
	}

	if len(contact.CompanyIDs) > 0 {
		existing, err := s.companies.ExistingIDs(ctx, contact.CompanyIDs)
		if err != nil {
			slog.Error("checking companies", slog.String("error", err.Error()))
			return nil, fmt.Errorf("checking companies: %w", err)
		}
		if err := ensureAllExist("company_ids", contact.CompanyIDs, existing); err != nil {
			return nil, err
		}
	}

	return s.values.resolve(ctx, domain.EntityTypeContact, contact.ID, values)
}

func (s *SimpleContactService) DeleteContact(ctx context.Context, id shareddomain.ID) error {
	contact, err := s.GetContact(ctx, id, shareddomain.ExcludeDeleted)
	if err != nil {
		return err
	}

	if contact.IsPrimary {
		return ErrPrimaryContactDeletion
	}

	contact.SoftDelete()
	if err := s.repository.UpdateStatus(ctx, contact); err != nil {
		slog.Error("deleting contact", slog.String("error", err.Error()))
		return fmt.Errorf("deleting contact: %w", err)
	}

	return nil
}

func (s *SimpleContactService) RestoreContact(ctx context.Context, id shareddomain.ID) (domain.Contact, error) {
	contact, err := s.GetContact(ctx, id, shareddomain.IncludeDeleted)
	if err != nil {
		return domain.Contact{}, err
	}

	if !contact.IsDeleted() {
		return domain.Contact{}, ErrContactNotFound
	}

	contact.Restore()
	if err := s.repository.UpdateStatus(ctx, contact); err != nil {
		slog.Error("restoring contact", slog.String("error", err.Error()))
		return domain.Contact{}, fmt.Errorf("restoring contact: %w", err)
	}

	return contact, nil
}

func (s *SimpleContactService) ListContactsByCompany(ctx context.Context, companyID shareddomain.ID) ([]domain.Contact, error) {
	existing, err := s.companies.ExistingIDs(ctx, []shareddomain.ID{companyID})
	if err != nil {
		slog.Error("checking company", slog.String("error", err.Error()))
		return nil, fmt.Errorf("checking company: %w", err)
	}
	if len(existing) == 0 {
		return nil, ErrCompanyNotFound
	}

	contacts, err := s.repository.FindByCompany(ctx, companyID)
	if err != nil {
		slog.Error("listing company contacts", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing company contacts: %w", err)
	}

	return contacts, nil
}

// SearchContacts resolves custom field filters by field name. A filter naming
// a field that does not exist matches nothing.
func (s *SimpleContactService) SearchContacts(ctx context.Context, search domain.ContactSearch) (domain.Page[domain.Contact], error) {
	pagination := search.Pagination.Normalize()
	empty := domain.Page[domain.Contact]{Items: []domain.Contact{}, Pagination: pagination}

	filters := make(map[shareddomain.ID]string, len(search.CustomFieldFilters))
	if len(search.CustomFieldFilters) > 0 {
		names := utils.Keys(search.CustomFieldFilters)
		fields, err := s.fields.FindActiveByNames(ctx, names, domain.EntityTypeContact)
		if err != nil {
			slog.Error("resolving custom field filters", slog.String("error", err.Error()))
			return domain.Page[domain.Contact]{}, fmt.Errorf("resolving custom field filters: %w", err)
		}

		byName := make(map[string]shareddomain.ID, len(fields))
		for _, f := range fields {
			byName[f.NameKey()] = f.ID
		}

		for name, value := range search.CustomFieldFilters {
			id, ok := byName[utils.NormalizeKey(name)]
			if !ok {
				return empty, nil
			}
			filters[id] = value
		}
	}

	contacts, total, err := s.repository.Search(ctx, strings.TrimSpace(search.Term), filters, pagination)
	if err != nil {
		slog.Error("searching contacts", slog.String("error", err.Error()))
		return domain.Page[domain.Contact]{}, fmt.Errorf("searching contacts: %w", err)
	}

	return domain.Page[domain.Contact]{Items: contacts, Total: total, Pagination: pagination}, nil
}

func (s *SimpleContactService) GetContactStatistics(ctx context.Context) (domain.ContactStatistics, error) {
	contacts, err := s.repository.FindAllForStatistics(ctx)
	if err != nil {
		slog.Error("loading contact statistics", slog.String("error", err.Error()))
		return domain.ContactStatistics{}, fmt.Errorf("loading contact statistics: %w", err)
	}

	return domain.ComputeContactStatistics(contacts), nil
}

func (s *SimpleContactService) IsEmailAvailable(ctx context.Context, email string, excludeID *shareddomain.ID) (bool, error) {
	if strings.TrimSpace(email) == "" {
		return false, domain.NewValidationError("email", "is required")
	}

	taken, err := s.repository.IsEmailTaken(ctx, email, excludeID)
	if err != nil {
		slog.Error("checking contact email", slog.String("error", err.Error()))
		return false, fmt.Errorf("checking contact email: %w", err)
	}

	return !taken, nil
}

func (s *SimpleContactService) ContactExists(ctx context.Context, id shareddomain.ID) (bool, error) {
	exists, err := s.repository.Exists(ctx, id)
	if err != nil {
		slog.Error("checking contact existence", slog.String("error", err.Error()))
		return false, fmt.Errorf("checking contact existence: %w", err)
	}

	return exists, nil
}
