package internal

import (
	"encoding/json"
	"time"

	"crm-server/internal/crm/domain"
	shareddomain "crm-server/internal/shared_kernel/domain"

	"gorm.io/datatypes"
)

// CustomField rows are unique on (name_key, entity_type) among active rows
// only, so a soft deleted definition does not block its name.
type CustomField struct {
	ID              string         `gorm:"primaryKey;size:36"`
	Name            string         `gorm:"not null;size:100"`
	NameKey         string         `gorm:"not null;size:100;uniqueIndex:idx_custom_fields_name_entity_active,where:status = 'active'"`
	EntityType      string         `gorm:"not null;size:20;uniqueIndex:idx_custom_fields_name_entity_active,where:status = 'active'"`
	ValueType       string         `gorm:"not null;size:30"`
	IsRequired      bool           `gorm:"not null"`
	IsActive        bool           `gorm:"not null"`
	Status          string         `gorm:"not null;size:20;index"`
	Description     *string        `gorm:"size:500"`
	DefaultValue    *string        `gorm:"size:1000"`
	MinLength       *int
	MaxLength       *int
	MinValue        *float64
	MaxValue        *float64
	AllowedValues   datatypes.JSON
	ValidationRegex *string
	CreatedAt       time.Time  `gorm:"not null"`
	UpdatedAt       *time.Time `gorm:"autoUpdateTime:false"`
	DeletedAt       *time.Time
}

func (CustomField) TableName() string {
	return "custom_fields"
}

func FromCustomField(value domain.CustomField) CustomField {
	var allowed datatypes.JSON
	if len(value.Constraints.AllowedValues) > 0 {
		allowed, _ = json.Marshal(value.Constraints.AllowedValues)
	}

	return CustomField{
		ID:              value.ID.String(),
		Name:            string(value.Name),
		NameKey:         value.NameKey(),
		EntityType:      value.EntityType.String(),
		ValueType:       value.ValueType.String(),
		IsRequired:      value.IsRequired,
		IsActive:        value.IsActive,
		Status:          string(value.Status),
		Description:     value.Description,
		DefaultValue:    value.DefaultValue,
		MinLength:       value.Constraints.MinLength,
		MaxLength:       value.Constraints.MaxLength,
		MinValue:        value.Constraints.MinValue,
		MaxValue:        value.Constraints.MaxValue,
		AllowedValues:   allowed,
		ValidationRegex: value.Constraints.ValidationRegex,
		CreatedAt:       value.CreatedAt,
		UpdatedAt:       value.UpdatedAt,
		DeletedAt:       value.DeletedAt,
	}
}

func (f CustomField) ToDomain() domain.CustomField {
	var allowed []string
	if len(f.AllowedValues) > 0 {
		_ = json.Unmarshal(f.AllowedValues, &allowed)
	}

	return domain.CustomField{
		ID:           shareddomain.ID(f.ID),
		Name:         shareddomain.Name(f.Name),
		EntityType:   domain.EntityType(f.EntityType),
		ValueType:    domain.ValueType(f.ValueType),
		IsRequired:   f.IsRequired,
		IsActive:     f.IsActive,
		Status:       shareddomain.RecordStatus(f.Status),
		Description:  f.Description,
		DefaultValue: f.DefaultValue,
		Constraints: domain.Constraints{
			MinLength:       f.MinLength,
			MaxLength:       f.MaxLength,
			MinValue:        f.MinValue,
			MaxValue:        f.MaxValue,
			AllowedValues:   allowed,
			ValidationRegex: f.ValidationRegex,
		},
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
		DeletedAt: f.DeletedAt,
	}
}
