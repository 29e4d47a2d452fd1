package internal

import (
	"crm-server/internal/crm/domain"
	"crm-server/internal/infra/utils"
	shareddomain "crm-server/internal/shared_kernel/domain"
)

type CustomFieldValueResponse struct {
	CustomFieldID   string  `json:"custom_field_id"`
	CustomFieldName string  `json:"custom_field_name"`
	ValueType       string  `json:"value_type"`
	Value           *string `json:"value"`
}

// ToCustomFieldValues keys the submitted values by field id. A nil map means
// the request carried no values at all.
func ToCustomFieldValues(values map[string]*string) domain.CustomFieldValues {
	result := make(domain.CustomFieldValues, len(values))
	for id, value := range values {
		result[shareddomain.ID(id)] = value
	}
	return result
}

func toCustomFieldValueResponses(values []domain.CustomFieldValue) []CustomFieldValueResponse {
	return utils.Map(values, func(v domain.CustomFieldValue) CustomFieldValueResponse {
		return CustomFieldValueResponse{
			CustomFieldID:   v.CustomFieldID.String(),
			CustomFieldName: v.CustomFieldName.String(),
			ValueType:       v.ValueType.String(),
			Value:           v.Value,
		}
	})
}

func toIDs(values []string) []shareddomain.ID {
	return utils.Map(values, func(v string) shareddomain.ID { return shareddomain.ID(v) })
}

func fromIDs(values []shareddomain.ID) []string {
	return utils.Map(values, shareddomain.ID.String)
}
