package internal

import (
	"time"

	"crm-server/internal/crm/domain"
	shareddomain "crm-server/internal/shared_kernel/domain"
)

type CompanyCustomFieldValue struct {
	ID            string     `gorm:"primaryKey;size:36"`
	CompanyID     string     `gorm:"not null;size:36;uniqueIndex:idx_company_values_owner_field"`
	CustomFieldID string     `gorm:"not null;size:36;uniqueIndex:idx_company_values_owner_field;index:idx_company_values_field"`
	Value         *string    `gorm:"type:text"`
	CreatedAt     time.Time  `gorm:"not null"`
	UpdatedAt     *time.Time `gorm:"autoUpdateTime:false"`
}

func (CompanyCustomFieldValue) TableName() string {
	return "company_custom_field_values"
}

type ContactCustomFieldValue struct {
	ID            string     `gorm:"primaryKey;size:36"`
	ContactID     string     `gorm:"not null;size:36;uniqueIndex:idx_contact_values_owner_field"`
	CustomFieldID string     `gorm:"not null;size:36;uniqueIndex:idx_contact_values_owner_field;index:idx_contact_values_field"`
	Value         *string    `gorm:"type:text"`
	CreatedAt     time.Time  `gorm:"not null"`
	UpdatedAt     *time.Time `gorm:"autoUpdateTime:false"`
}

func (ContactCustomFieldValue) TableName() string {
	return "contact_custom_field_values"
}

func FromCompanyValues(values []domain.CustomFieldValue) []CompanyCustomFieldValue {
	result := make([]CompanyCustomFieldValue, len(values))
	for i, v := range values {
		result[i] = CompanyCustomFieldValue{
			ID:            v.ID.String(),
			CompanyID:     v.OwnerID.String(),
			CustomFieldID: v.CustomFieldID.String(),
			Value:         v.Value,
			CreatedAt:     v.CreatedAt,
			UpdatedAt:     v.UpdatedAt,
		}
	}
	return result
}

func (v CompanyCustomFieldValue) ToDomain(definition CustomField) domain.CustomFieldValue {
	return domain.CustomFieldValue{
		ID:              shareddomain.ID(v.ID),
		OwnerID:         shareddomain.ID(v.CompanyID),
		CustomFieldID:   shareddomain.ID(v.CustomFieldID),
		CustomFieldName: shareddomain.Name(definition.Name),
		ValueType:       domain.ValueType(definition.ValueType),
		Value:           v.Value,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

func FromContactValues(values []domain.CustomFieldValue) []ContactCustomFieldValue {
	result := make([]ContactCustomFieldValue, len(values))
	for i, v := range values {
		result[i] = ContactCustomFieldValue{
			ID:            v.ID.String(),
			ContactID:     v.OwnerID.String(),
			CustomFieldID: v.CustomFieldID.String(),
			Value:         v.Value,
			CreatedAt:     v.CreatedAt,
			UpdatedAt:     v.UpdatedAt,
		}
	}
	return result
}

func (v ContactCustomFieldValue) ToDomain(definition CustomField) domain.CustomFieldValue {
	return domain.CustomFieldValue{
		ID:              shareddomain.ID(v.ID),
		OwnerID:         shareddomain.ID(v.ContactID),
		CustomFieldID:   shareddomain.ID(v.CustomFieldID),
		CustomFieldName: shareddomain.Name(definition.Name),
		ValueType:       domain.ValueType(definition.ValueType),
		Value:           v.Value,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

// LastWrite is the newest timestamp carried by the row.
func LastWrite(createdAt time.Time, updatedAt *time.Time) time.Time {
	if updatedAt != nil && updatedAt.After(createdAt) {
		return *updatedAt
	}
	return createdAt
}
