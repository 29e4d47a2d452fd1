package usecases

//go:generate mockgen -source=./custom_field_service.go -destination=../../../test/unit/doubles/crm/usecases/custom_field_service_mock.go -package=usecases -mock_names=CustomFieldService=MockCustomFieldService

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"crm-server/internal/crm/domain"
	shareddomain "crm-server/internal/shared_kernel/domain"
)

type CustomFieldService interface {
	CreateCustomField(ctx context.Context, field domain.CustomField) (domain.CustomField, error)
	GetCustomField(ctx context.Context, id shareddomain.ID, filter shareddomain.DeletedFilter) (domain.CustomField, error)
	ListCustomFields(ctx context.Context, entityType *domain.EntityType, filter shareddomain.DeletedFilter) ([]domain.CustomField, error)
	ListCustomFieldsByType(ctx context.Context, entityType domain.EntityType) ([]domain.CustomField, error)
	UpdateCustomField(ctx context.Context, id shareddomain.ID, update domain.CustomFieldUpdate) (domain.CustomField, error)
	DeleteCustomField(ctx context.Context, id shareddomain.ID) (domain.DeletionMode, error)
	RestoreCustomField(ctx context.Context, id shareddomain.ID) (domain.CustomField, error)
	IsCustomFieldInUse(ctx context.Context, id shareddomain.ID) (bool, error)
	GetCustomFieldUsage(ctx context.Context, id shareddomain.ID) (domain.CustomFieldUsage, error)
	CustomFieldExists(ctx context.Context, id shareddomain.ID) (bool, error)
}

func NewCustomFieldService(repository CustomFieldRepository) *SimpleCustomFieldService {
	initMetrics()

	return &SimpleCustomFieldService{
		repository: repository,
	}
}

var _ CustomFieldService = (*SimpleCustomFieldService)(nil)

type SimpleCustomFieldService struct {
	repository CustomFieldRepository
}

func (s *SimpleCustomFieldService) CreateCustomField(ctx context.Context, field domain.CustomField) (domain.CustomField, error) {
	if err := domain.ValidateDefinition(field); err != nil {
		return domain.CustomField{}, err
	}

	if err := s.ensureNameAvailable(ctx, field); err != nil {
		return domain.CustomField{}, err
	}

	err := s.repository.Create(ctx, field)
	if errors.Is(err, ErrCustomFieldConflict) {
		return domain.CustomField{}, ErrCustomFieldConflict
	}
	if err != nil {
		slog.Error("creating custom field", slog.String("error", err.Error()))
		return domain.CustomField{}, fmt.Errorf("creating custom field: %w", err)
	}

	slog.Info("custom field created",
		slog.String("id", field.ID.String()),
		slog.String("name", field.Name.String()),
		slog.String("entity_type", field.EntityType.String()))

	return field, nil
}

func (s *SimpleCustomFieldService) GetCustomField(
	ctx context.Context,
	id shareddomain.ID,
	filter shareddomain.DeletedFilter,
) (domain.CustomField, error) {
	field, err := s.repository.GetByID(ctx, id, filter)
	if err != nil {
		if errors.Is(err, ErrCustomFieldNotFound) {
			return domain.CustomField{}, ErrCustomFieldNotFound
		}
		slog.Error("getting custom field", slog.String("error", err.Error()))
		return domain.CustomField{}, fmt.Errorf("getting custom field: %w", err)
	}

	return field, nil
}

func (s *SimpleCustomFieldService) ListCustomFields(
	ctx context.Context,
	entityType *domain.EntityType,
	filter shareddomain.DeletedFilter,
) ([]domain.CustomField, error) {
	fields, err := s.repository.FindAll(ctx, entityType, filter)
	if err != nil {
		slog.Error("listing custom fields", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing custom fields: %w", err)
	}

	return fields, nil
}

func (s *SimpleCustomFieldService) ListCustomFieldsByType(ctx context.Context, entityType domain.EntityType) ([]domain.CustomField, error) {
	if !entityType.IsValid() {
		return nil, domain.NewValidationError("entity_type", "must be one of [Company Contact]")
	}

	return s.ListCustomFields(ctx, &entityType, shareddomain.ExcludeDeleted)
}

func (s *SimpleCustomFieldService) UpdateCustomField(
	ctx context.Context,
	id shareddomain.ID,
	update domain.CustomFieldUpdate,
) (domain.CustomField, error) {
	field, err := s.GetCustomField(ctx, id, shareddomain.ExcludeDeleted)
	if err != nil {
		return domain.CustomField{}, err
	}

	if err := field.Apply(update); err != nil {
		return domain.CustomField{}, err
	}

	if err := domain.ValidateDefinition(field); err != nil {
		return domain.CustomField{}, err
	}

	if err := s.ensureNameAvailable(ctx, field); err != nil {
		return domain.CustomField{}, err
	}

	err = s.repository.Update(ctx, field)
	if errors.Is(err, ErrCustomFieldConflict) {
		return domain.CustomField{}, ErrCustomFieldConflict
	}
	if err != nil {
		slog.Error("updating custom field", slog.String("error", err.Error()))
		return domain.CustomField{}, fmt.Errorf("updating custom field: %w", err)
	}

	return field, nil
}

// DeleteCustomField hard deletes unused definitions and soft deletes the ones
// still referenced by values. A definition that gains a value while the hard
// delete runs falls back to a soft delete.
func (s *SimpleCustomFieldService) DeleteCustomField(ctx context.Context, id shareddomain.ID) (domain.DeletionMode, error) {
	field, err := s.GetCustomField(ctx, id, shareddomain.IncludeDeleted)
	if err != nil {
		return "", err
	}

	inUse, err := s.IsCustomFieldInUse(ctx, id)
	if err != nil {
		return "", err
	}

	if inUse {
		return s.softDelete(ctx, field)
	}

	err = s.repository.Delete(ctx, id)
	if errors.Is(err, ErrCustomFieldInUse) {
		slog.Warn("custom field gained values during deletion", slog.String("id", id.String()))
		return s.softDelete(ctx, field)
	}
	if errors.Is(err, ErrCustomFieldNotFound) {
		return "", ErrCustomFieldNotFound
	}
	if err != nil {
		slog.Error("deleting custom field", slog.String("error", err.Error()))
		return "", fmt.Errorf("deleting custom field: %w", err)
	}

	recordCustomFieldDeletion(ctx, field, domain.DeletionModeHard)
	slog.Info("custom field deleted", slog.String("id", id.String()), slog.String("mode", string(domain.DeletionModeHard)))

	return domain.DeletionModeHard, nil
}

func (s *SimpleCustomFieldService) softDelete(ctx context.Context, field domain.CustomField) (domain.DeletionMode, error) {
	if !field.IsDeleted() {
		field.SoftDelete()
		if err := s.repository.Update(ctx, field); err != nil {
			slog.Error("soft deleting custom field", slog.String("error", err.Error()))
			return "", fmt.Errorf("soft deleting custom field: %w", err)
		}
	}

	recordCustomFieldDeletion(ctx, field, domain.DeletionModeSoft)
	slog.Info("custom field deleted", slog.String("id", field.ID.String()), slog.String("mode", string(domain.DeletionModeSoft)))

	return domain.DeletionModeSoft, nil
}

func (s *SimpleCustomFieldService) RestoreCustomField(ctx context.Context, id shareddomain.ID) (domain.CustomField, error) {
	field, err := s.GetCustomField(ctx, id, shareddomain.IncludeDeleted)
	if err != nil {
		return domain.CustomField{}, err
	}

	if !field.IsDeleted() {
		return domain.CustomField{}, ErrCustomFieldNotFound
	}

	if err := s.ensureNameAvailable(ctx, field); err != nil {
		return domain.CustomField{}, err
	}

	field.Restore()
	err = s.repository.Update(ctx, field)
	if errors.Is(err, ErrCustomFieldConflict) {
		return domain.CustomField{}, ErrCustomFieldConflict
	}
	if err != nil {
		slog.Error("restoring custom field", slog.String("error", err.Error()))
		return domain.CustomField{}, fmt.Errorf("restoring custom field: %w", err)
	}

	return field, nil
}

func (s *SimpleCustomFieldService) IsCustomFieldInUse(ctx context.Context, id shareddomain.ID) (bool, error) {
	inUse, err := s.repository.IsInUse(ctx, id)
	if err != nil {
		slog.Error("checking custom field usage", slog.String("error", err.Error()))
		return false, fmt.Errorf("checking custom field usage: %w", err)
	}

	return inUse, nil
}

func (s *SimpleCustomFieldService) GetCustomFieldUsage(ctx context.Context, id shareddomain.ID) (domain.CustomFieldUsage, error) {
	field, err := s.GetCustomField(ctx, id, shareddomain.IncludeDeleted)
	if err != nil {
		return domain.CustomFieldUsage{}, err
	}

	usage, err := s.repository.Usage(ctx, field)
	if err != nil {
		slog.Error("computing custom field usage", slog.String("error", err.Error()))
		return domain.CustomFieldUsage{}, fmt.Errorf("computing custom field usage: %w", err)
	}

	return usage, nil
}

func (s *SimpleCustomFieldService) CustomFieldExists(ctx context.Context, id shareddomain.ID) (bool, error) {
	exists, err := s.repository.Exists(ctx, id)
	if err != nil {
		slog.Error("checking custom field existence", slog.String("error", err.Error()))
		return false, fmt.Errorf("checking custom field existence: %w", err)
	}

	return exists, nil
}

// ensureNameAvailable fails when another active definition holds the same
// name for the same entity type. The unique index remains the final word.
func (s *SimpleCustomFieldService) ensureNameAvailable(ctx context.Context, field domain.CustomField) error {
	existing, err := s.repository.FindActiveByName(ctx, string(field.Name), field.EntityType)
	if errors.Is(err, ErrCustomFieldNotFound) {
		return nil
	}
	if err != nil {
		slog.Error("checking custom field name", slog.String("error", err.Error()))
		return fmt.Errorf("checking custom field name: %w", err)
	}

	if existing.ID != field.ID {
		return ErrCustomFieldConflict
	}

	return nil
}
