package internal

import (
	"crm-server/internal/crm/domain"
	"crm-server/internal/infra/utils"
	shareddomain "crm-server/internal/shared_kernel/domain"
)

type CustomFieldCreateRequest struct {
	Name         string  `json:"name" validate:"required,max=100"`
	EntityType   string  `json:"entity_type" validate:"required"`
	ValueType    string  `json:"value_type" validate:"required"`
	IsRequired   bool    `json:"is_required"`
	IsActive     *bool   `json:"is_active,omitempty"`
	Description  *string `json:"description,omitempty" validate:"omitempty,max=500"`
	DefaultValue *string `json:"default_value,omitempty" validate:"omitempty,max=1000"`
	ConstraintsRequest
}

type CustomFieldUpdateRequest struct {
	Name         string  `json:"name" validate:"required,max=100"`
	EntityType   *string `json:"entity_type,omitempty"`
	ValueType    *string `json:"value_type,omitempty"`
	IsRequired   bool    `json:"is_required"`
	IsActive     *bool   `json:"is_active,omitempty"`
	Description  *string `json:"description,omitempty" validate:"omitempty,max=500"`
	DefaultValue *string `json:"default_value,omitempty" validate:"omitempty,max=1000"`
	ConstraintsRequest
}

type ConstraintsRequest struct {
	MinLength       *int     `json:"min_length,omitempty" validate:"omitempty,min=0"`
	MaxLength       *int     `json:"max_length,omitempty" validate:"omitempty,min=0"`
	MinValue        *float64 `json:"min_value,omitempty"`
	MaxValue        *float64 `json:"max_value,omitempty"`
	AllowedValues   []string `json:"allowed_values,omitempty" validate:"omitempty,dive,required,max=200"`
	ValidationRegex *string  `json:"validation_regex,omitempty" validate:"omitempty,max=500"`
}

type CustomFieldResponse struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	EntityType      string      `json:"entity_type"`
	ValueType       string      `json:"value_type"`
	IsRequired      bool        `json:"is_required"`
	IsActive        bool        `json:"is_active"`
	IsDeleted       bool        `json:"is_deleted"`
	Description     *string     `json:"description,omitempty"`
	DefaultValue    *string     `json:"default_value,omitempty"`
	MinLength       *int        `json:"min_length,omitempty"`
	MaxLength       *int        `json:"max_length,omitempty"`
	MinValue        *float64    `json:"min_value,omitempty"`
	MaxValue        *float64    `json:"max_value,omitempty"`
	AllowedValues   []string    `json:"allowed_values,omitempty"`
	ValidationRegex *string     `json:"validation_regex,omitempty"`
	CreatedAt       utils.Time  `json:"created_at"`
	UpdatedAt       *utils.Time `json:"updated_at,omitempty"`
	DeletedAt       *utils.Time `json:"deleted_at,omitempty"`
}

type CustomFieldUsageResponse struct {
	FieldID            string           `json:"field_id"`
	FieldName          string           `json:"field_name"`
	EntityType         string           `json:"entity_type"`
	TotalUsageCount    int64            `json:"total_usage_count"`
	ValueDistribution  map[string]int64 `json:"value_distribution"`
	LastUsed           utils.Time       `json:"last_used"`
	LastValueWrittenAt *utils.Time      `json:"last_value_written_at,omitempty"`
}

type DeletionResponse struct {
	ID           string `json:"id"`
	DeletionMode string `json:"deletion_mode"`
}

func (r ConstraintsRequest) toDomain() domain.Constraints {
	return domain.Constraints{
		MinLength:       r.MinLength,
		MaxLength:       r.MaxLength,
		MinValue:        r.MinValue,
		MaxValue:        r.MaxValue,
		AllowedValues:   r.AllowedValues,
		ValidationRegex: r.ValidationRegex,
	}
}

func ToCustomField(body CustomFieldCreateRequest) (domain.CustomField, error) {
	entityType, err := domain.ParseEntityType(body.EntityType)
	if err != nil {
		return domain.CustomField{}, err
	}

	valueType, err := domain.ParseValueType(body.ValueType)
	if err != nil {
		return domain.CustomField{}, err
	}

	builder := domain.NewCustomFieldBuilder().
		WithName(body.Name).
		WithEntityType(entityType).
		WithValueType(valueType).
		WithRequired(body.IsRequired).
		WithDescription(body.Description).
		WithDefaultValue(body.DefaultValue).
		WithConstraints(body.ConstraintsRequest.toDomain())
	if body.IsActive != nil {
		builder = builder.WithActive(*body.IsActive)
	}

	return builder.Build()
}

func ToCustomFieldUpdate(body CustomFieldUpdateRequest) (domain.CustomFieldUpdate, error) {
	update := domain.CustomFieldUpdate{
		Name:         body.Name,
		Description:  body.Description,
		IsRequired:   body.IsRequired,
		IsActive:     body.IsActive,
		DefaultValue: body.DefaultValue,
		Constraints:  body.ConstraintsRequest.toDomain(),
	}

	if body.EntityType != nil {
		entityType, err := domain.ParseEntityType(*body.EntityType)
		if err != nil {
			return domain.CustomFieldUpdate{}, err
		}
		update.EntityType = &entityType
	}

	if body.ValueType != nil {
		valueType, err := domain.ParseValueType(*body.ValueType)
		if err != nil {
			return domain.CustomFieldUpdate{}, err
		}
		update.ValueType = &valueType
	}

	return update, nil
}

func ToCustomFieldResponse(field domain.CustomField) CustomFieldResponse {
	return CustomFieldResponse{
		ID:              field.ID.String(),
		Name:            field.Name.String(),
		EntityType:      field.EntityType.String(),
		ValueType:       field.ValueType.String(),
		IsRequired:      field.IsRequired,
		IsActive:        field.IsActive,
		IsDeleted:       field.IsDeleted(),
		Description:     field.Description,
		DefaultValue:    field.DefaultValue,
		MinLength:       field.Constraints.MinLength,
		MaxLength:       field.Constraints.MaxLength,
		MinValue:        field.Constraints.MinValue,
		MaxValue:        field.Constraints.MaxValue,
		AllowedValues:   field.Constraints.AllowedValues,
		ValidationRegex: field.Constraints.ValidationRegex,
		CreatedAt:       utils.Time{Time: field.CreatedAt},
		UpdatedAt:       utils.TimeOrNil(field.UpdatedAt),
		DeletedAt:       utils.TimeOrNil(field.DeletedAt),
	}
}

func ToCustomFieldListResponse(fields []domain.CustomField) []CustomFieldResponse {
	return utils.Map(fields, ToCustomFieldResponse)
}

func ToCustomFieldUsageResponse(usage domain.CustomFieldUsage) CustomFieldUsageResponse {
	distribution := usage.ValueDistribution
	if distribution == nil {
		distribution = map[string]int64{}
	}

	return CustomFieldUsageResponse{
		FieldID:            usage.FieldID.String(),
		FieldName:          usage.FieldName.String(),
		EntityType:         usage.EntityType.String(),
		TotalUsageCount:    usage.TotalUsageCount,
		ValueDistribution:  distribution,
		LastUsed:           utils.Time{Time: usage.LastUsed},
		LastValueWrittenAt: utils.TimeOrNil(usage.LastValueWrittenAt),
	}
}

func ToDeletionResponse(id shareddomain.ID, mode domain.DeletionMode) DeletionResponse {
	return DeletionResponse{ID: id.String(), DeletionMode: string(mode)}
}
