package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crm-server/internal/crm/domain"
	"crm-server/internal/crm/persistence/internal"
	"crm-server/internal/crm/usecases"
	"crm-server/internal/infra/sql"
	"crm-server/internal/infra/utils"
	shareddomain "crm-server/internal/shared_kernel/domain"
)

func NewCustomFieldRepository(orm sql.ORM) (*SimpleCustomFieldRepository, error) {
	err := orm.AutoMigrate(
		&internal.CustomField{},
		&internal.CompanyCustomFieldValue{},
		&internal.ContactCustomFieldValue{},
	)
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleCustomFieldRepository{
		orm: orm,
	}, nil
}

var _ usecases.CustomFieldRepository = (*SimpleCustomFieldRepository)(nil)

type SimpleCustomFieldRepository struct {
	orm sql.ORM
}

func (r *SimpleCustomFieldRepository) Create(ctx context.Context, field domain.CustomField) error {
	entity := internal.FromCustomField(field)

	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if errors.Is(err, sql.ErrDuplicatedKey) {
		return usecases.ErrCustomFieldConflict
	}
	if err != nil {
		return fmt.Errorf("creating custom field in database: %w", err)
	}

	return nil
}

func (r *SimpleCustomFieldRepository) GetByID(
	ctx context.Context,
	id shareddomain.ID,
	filter shareddomain.DeletedFilter,
) (domain.CustomField, error) {
	var entity internal.CustomField
	err := withDeletedFilter(r.orm.WithContext(ctx), "", filter).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.CustomField{}, usecases.ErrCustomFieldNotFound
	}

	if err != nil {
		return domain.CustomField{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleCustomFieldRepository) GetByIDs(ctx context.Context, ids []shareddomain.ID) ([]domain.CustomField, error) {
	if len(ids) == 0 {
		return []domain.CustomField{}, nil
	}

	var entities []internal.CustomField
	err := r.orm.WithContext(ctx).
		Where("id IN ?", idStrings(ids)).
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	return utils.Map(entities, internal.CustomField.ToDomain), nil
}

func (r *SimpleCustomFieldRepository) FindAll(
	ctx context.Context,
	entityType *domain.EntityType,
	filter shareddomain.DeletedFilter,
) ([]domain.CustomField, error) {
	query := withDeletedFilter(r.orm.WithContext(ctx).Model(&internal.CustomField{}), "", filter)
	if entityType != nil {
		query = query.Where("entity_type = ?", entityType.String())
	}

	var entities []internal.CustomField
	err := query.Order("entity_type ASC").Order("name ASC").Find(&entities).Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	return utils.Map(entities, internal.CustomField.ToDomain), nil
}

func (r *SimpleCustomFieldRepository) FindActiveByName(
	ctx context.Context,
	name string,
	entityType domain.EntityType,
) (domain.CustomField, error) {
	var entity internal.CustomField
	err := r.orm.WithContext(ctx).
		Where("name_key = ? AND entity_type = ? AND status = ?",
			utils.NormalizeKey(name), entityType.String(), shareddomain.RecordStatusActive).
		First(&entity).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.CustomField{}, usecases.ErrCustomFieldNotFound
	}
	if err != nil {
		return domain.CustomField{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleCustomFieldRepository) FindActiveByNames(
	ctx context.Context,
	names []string,
	entityType domain.EntityType,
) ([]domain.CustomField, error) {
	if len(names) == 0 {
		return []domain.CustomField{}, nil
	}

	var entities []internal.CustomField
	err := r.orm.WithContext(ctx).
		Where("name_key IN ? AND entity_type = ? AND status = ? AND is_active = ?",
			utils.Map(names, utils.NormalizeKey), entityType.String(), shareddomain.RecordStatusActive, true).
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	return utils.Map(entities, internal.CustomField.ToDomain), nil
}

func (r *SimpleCustomFieldRepository) Update(ctx context.Context, field domain.CustomField) error {
	entity := internal.FromCustomField(field)

	err := r.orm.WithContext(ctx).Save(&entity).Error()
	if errors.Is(err, sql.ErrDuplicatedKey) {
		return usecases.ErrCustomFieldConflict
	}
	if err != nil {
		return fmt.Errorf("updating custom field in database: %w", err)
	}

	return nil
}

// Delete removes the definition row. Usage is checked again inside the
// transaction and reported as ErrCustomFieldInUse.
func (r *SimpleCustomFieldRepository) Delete(ctx context.Context, id shareddomain.ID) error {
	return r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		inUse, err := fieldInUse(tx, id)
		if err != nil {
			return err
		}
		if inUse {
			return usecases.ErrCustomFieldInUse
		}

		result := tx.Delete(&internal.CustomField{}, "id = ?", id.String())
		if err := result.Error(); err != nil {
			return fmt.Errorf("deleting custom field: %w", err)
		}
		if result.RowsAffected() == 0 {
			return usecases.ErrCustomFieldNotFound
		}

		return nil
	})
}

func (r *SimpleCustomFieldRepository) IsInUse(ctx context.Context, id shareddomain.ID) (bool, error) {
	return fieldInUse(r.orm.WithContext(ctx), id)
}

func fieldInUse(orm sql.ORM, id shareddomain.ID) (bool, error) {
	for _, model := range []any{&internal.CompanyCustomFieldValue{}, &internal.ContactCustomFieldValue{}} {
		var count int64
		err := orm.Model(model).Where("custom_field_id = ?", id.String()).Count(&count).Error()
		if err != nil {
			return false, fmt.Errorf("count query: %w", err)
		}
		if count > 0 {
			return true, nil
		}
	}

	return false, nil
}

type valueBucket struct {
	Value string
	Total int64
}

// Usage aggregates the non null values stored for the field in the value
// table matching its entity type.
func (r *SimpleCustomFieldRepository) Usage(ctx context.Context, field domain.CustomField) (domain.CustomFieldUsage, error) {
	usage := domain.CustomFieldUsage{
		FieldID:           field.ID,
		FieldName:         field.Name,
		EntityType:        field.EntityType,
		ValueDistribution: make(map[string]int64),
		LastUsed:          field.LastUsed(),
	}

	var model any
	switch field.EntityType {
	case domain.EntityTypeCompany:
		model = &internal.CompanyCustomFieldValue{}
	case domain.EntityTypeContact:
		model = &internal.ContactCustomFieldValue{}
	default:
		return usage, nil
	}

	var buckets []valueBucket
	err := r.orm.WithContext(ctx).
		Model(model).
		Select("value, COUNT(*) AS total").
		Where("custom_field_id = ? AND value IS NOT NULL", field.ID.String()).
		Group("value").
		Scan(&buckets).
		Error()
	if err != nil {
		return domain.CustomFieldUsage{}, fmt.Errorf("distribution query: %w", err)
	}

	for _, bucket := range buckets {
		usage.ValueDistribution[bucket.Value] = bucket.Total
		usage.TotalUsageCount += bucket.Total
	}

	lastWrite, err := r.lastValueWrite(ctx, field)
	if err != nil {
		return domain.CustomFieldUsage{}, err
	}
	usage.LastValueWrittenAt = lastWrite

	return usage, nil
}

const _lastWriteOrder = "COALESCE(updated_at, created_at) DESC"

func (r *SimpleCustomFieldRepository) lastValueWrite(ctx context.Context, field domain.CustomField) (*time.Time, error) {
	query := r.orm.WithContext(ctx).
		Where("custom_field_id = ?", field.ID.String()).
		Order(_lastWriteOrder).
		Limit(1)

	var latest time.Time
	switch field.EntityType {
	case domain.EntityTypeCompany:
		var rows []internal.CompanyCustomFieldValue
		if err := query.Find(&rows).Error(); err != nil {
			return nil, fmt.Errorf("last write query: %w", err)
		}
		if len(rows) == 0 {
			return nil, nil
		}
		latest = internal.LastWrite(rows[0].CreatedAt, rows[0].UpdatedAt)
	default:
		var rows []internal.ContactCustomFieldValue
		if err := query.Find(&rows).Error(); err != nil {
			return nil, fmt.Errorf("last write query: %w", err)
		}
		if len(rows) == 0 {
			return nil, nil
		}
		latest = internal.LastWrite(rows[0].CreatedAt, rows[0].UpdatedAt)
	}

	return &latest, nil
}

func (r *SimpleCustomFieldRepository) Exists(ctx context.Context, id shareddomain.ID) (bool, error) {
	var count int64
	err := r.orm.WithContext(ctx).
		Model(&internal.CustomField{}).
		Where("id = ? AND status = ?", id.String(), shareddomain.RecordStatusActive).
		Count(&count).
		Error()
	if err != nil {
		return false, fmt.Errorf("count query: %w", err)
	}

	return count > 0, nil
}
