package domain

import (
	"strings"
	"time"

	"crm-server/internal/infra/utils"
	shareddomain "crm-server/internal/shared_kernel/domain"
)

const (
	MaxCustomFieldNameLength         = 100
	MaxCustomFieldDescriptionLength  = 500
	MaxCustomFieldDefaultValueLength = 1000
)

type Constraints struct {
	MinLength       *int
	MaxLength       *int
	MinValue        *float64
	MaxValue        *float64
	AllowedValues   []string
	ValidationRegex *string
}

// CustomField is a user defined attribute that can be attached to companies
// or contacts depending on its EntityType.
type CustomField struct {
	ID           shareddomain.ID
	Name         shareddomain.Name
	EntityType   EntityType
	ValueType    ValueType
	IsRequired   bool
	IsActive     bool
	Status       shareddomain.RecordStatus
	Description  *string
	DefaultValue *string
	Constraints  Constraints
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	DeletedAt    *time.Time
}

func (f *CustomField) IsDeleted() bool {
	return f.Status == shareddomain.RecordStatusSoftDeleted
}

// IsAttachable reports whether values may be written for the given owner kind.
func (f *CustomField) IsAttachable(entityType EntityType) bool {
	return !f.IsDeleted() && f.IsActive && f.EntityType == entityType
}

// NameKey is the case insensitive form backing the uniqueness index.
func (f *CustomField) NameKey() string {
	return utils.NormalizeKey(string(f.Name))
}

func (f *CustomField) SoftDelete() {
	now := time.Now()
	f.Status = shareddomain.RecordStatusSoftDeleted
	f.DeletedAt = &now
	f.UpdatedAt = &now
}

func (f *CustomField) Restore() {
	now := time.Now()
	f.Status = shareddomain.RecordStatusActive
	f.DeletedAt = nil
	f.UpdatedAt = &now
}

// LastUsed is the definition's own last modification time. It does not look
// at attached values.
func (f *CustomField) LastUsed() time.Time {
	if f.UpdatedAt != nil {
		return *f.UpdatedAt
	}
	return f.CreatedAt
}

// CustomFieldUpdate carries the mutable attributes of a definition. EntityType
// and ValueType are only compared against the stored ones.
type CustomFieldUpdate struct {
	Name         string
	Description  *string
	IsRequired   bool
	IsActive     *bool
	DefaultValue *string
	Constraints  Constraints
	EntityType   *EntityType
	ValueType    *ValueType
}

func (f *CustomField) Apply(update CustomFieldUpdate) error {
	if update.EntityType != nil && *update.EntityType != f.EntityType {
		return NewValidationError("entity_type", "cannot be changed")
	}
	if update.ValueType != nil && *update.ValueType != f.ValueType {
		return NewValidationError("value_type", "cannot be changed")
	}

	f.Name = shareddomain.Name(strings.TrimSpace(update.Name))
	f.Description = utils.TrimmedStringPtr(update.Description)
	f.IsRequired = update.IsRequired
	if update.IsActive != nil {
		f.IsActive = *update.IsActive
	}
	f.DefaultValue = update.DefaultValue
	f.Constraints = update.Constraints

	now := time.Now()
	f.UpdatedAt = &now
	return nil
}

func NewCustomFieldBuilder() *customFieldBuilder {
	return &customFieldBuilder{}
}

type customFieldBuilder struct {
	actions []customFieldHandler
}

type customFieldHandler func(v *CustomField) error

func (b *customFieldBuilder) WithName(value string) *customFieldBuilder {
	b.actions = append(b.actions, func(f *CustomField) error {
		f.Name = shareddomain.Name(strings.TrimSpace(value))
		return nil
	})
	return b
}

func (b *customFieldBuilder) WithEntityType(value EntityType) *customFieldBuilder {
	b.actions = append(b.actions, func(f *CustomField) error {
		f.EntityType = value
		return nil
	})
	return b
}

func (b *customFieldBuilder) WithValueType(value ValueType) *customFieldBuilder {
	b.actions = append(b.actions, func(f *CustomField) error {
		f.ValueType = value
		return nil
	})
	return b
}

func (b *customFieldBuilder) WithRequired(value bool) *customFieldBuilder {
	b.actions = append(b.actions, func(f *CustomField) error {
		f.IsRequired = value
		return nil
	})
	return b
}

func (b *customFieldBuilder) WithActive(value bool) *customFieldBuilder {
	b.actions = append(b.actions, func(f *CustomField) error {
		f.IsActive = value
		return nil
	})
	return b
}

func (b *customFieldBuilder) WithDescription(value *string) *customFieldBuilder {
	b.actions = append(b.actions, func(f *CustomField) error {
		f.Description = utils.TrimmedStringPtr(value)
		return nil
	})
	return b
}

func (b *customFieldBuilder) WithDefaultValue(value *string) *customFieldBuilder {
	b.actions = append(b.actions, func(f *CustomField) error {
		f.DefaultValue = value
		return nil
	})
	return b
}

func (b *customFieldBuilder) WithConstraints(value Constraints) *customFieldBuilder {
	b.actions = append(b.actions, func(f *CustomField) error {
		f.Constraints = value
		return nil
	})
	return b
}

// Build assigns identity and timestamps, applies the options and runs the
// definition time checks.
func (b *customFieldBuilder) Build() (CustomField, error) {
	result := CustomField{
		ID:        shareddomain.ID(utils.GenerateUUID()),
		IsActive:  true,
		Status:    shareddomain.RecordStatusActive,
		CreatedAt: time.Now(),
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return CustomField{}, err
		}
	}

	if err := ValidateDefinition(result); err != nil {
		return CustomField{}, err
	}

	return result, nil
}
