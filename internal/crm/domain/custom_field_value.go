package domain

import (
	"sort"
	"time"

	"crm-server/internal/infra/utils"
	shareddomain "crm-server/internal/shared_kernel/domain"
)

// CustomFieldValue is the raw value an owner holds for one custom field.
type CustomFieldValue struct {
	ID              shareddomain.ID
	OwnerID         shareddomain.ID
	CustomFieldID   shareddomain.ID
	CustomFieldName shareddomain.Name
	ValueType       ValueType
	Value           *string
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}

// CustomFieldValues is the write side input keyed by custom field id.
type CustomFieldValues map[shareddomain.ID]*string

// FieldIDs returns the referenced ids in a stable order.
func (v CustomFieldValues) FieldIDs() []shareddomain.ID {
	ids := utils.Keys(v)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// ResolveValues validates every entry against its definition and returns the
// rows to persist for the owner. Nothing is returned unless all entries pass.
func ResolveValues(ownerType EntityType, ownerID shareddomain.ID, input CustomFieldValues, definitions map[shareddomain.ID]CustomField) ([]CustomFieldValue, error) {
	now := time.Now()
	result := make([]CustomFieldValue, 0, len(input))

	for _, fieldID := range input.FieldIDs() {
		definition, ok := definitions[fieldID]
		if !ok || !definition.IsAttachable(ownerType) {
			return nil, NewValidationError("custom_field_values", "invalid custom field id '"+fieldID.String()+"'")
		}

		raw := input[fieldID]
		if err := ValidateValue(definition, utils.Deref(raw)); err != nil {
			return nil, err
		}

		result = append(result, CustomFieldValue{
			ID:              shareddomain.ID(utils.GenerateUUID()),
			OwnerID:         ownerID,
			CustomFieldID:   fieldID,
			CustomFieldName: definition.Name,
			ValueType:       definition.ValueType,
			Value:           raw,
			CreatedAt:       now,
		})
	}

	return result, nil
}
