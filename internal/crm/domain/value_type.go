package domain

import (
	"fmt"
	"strings"
)

type ValueType string

const (
	ValueTypeText          ValueType = "text"
	ValueTypeMultilineText ValueType = "multiline_text"
	ValueTypeNumber        ValueType = "number"
	ValueTypeDecimal       ValueType = "decimal"
	ValueTypeBoolean       ValueType = "boolean"
	ValueTypeDate          ValueType = "date"
	ValueTypeSelect        ValueType = "select"
	ValueTypeMultiSelect   ValueType = "multi_select"
	ValueTypeRegex         ValueType = "regex"
	ValueTypeEmail         ValueType = "email"
	ValueTypePhone         ValueType = "phone"
)

var valueTypes = []ValueType{
	ValueTypeText,
	ValueTypeMultilineText,
	ValueTypeNumber,
	ValueTypeDecimal,
	ValueTypeBoolean,
	ValueTypeDate,
	ValueTypeSelect,
	ValueTypeMultiSelect,
	ValueTypeRegex,
	ValueTypeEmail,
	ValueTypePhone,
}

func ValueTypes() []ValueType {
	return append([]ValueType(nil), valueTypes...)
}

func (v ValueType) String() string {
	return string(v)
}

func (v ValueType) IsValid() bool {
	for _, candidate := range valueTypes {
		if v == candidate {
			return true
		}
	}
	return false
}

func (v ValueType) IsTextLike() bool {
	return v == ValueTypeText || v == ValueTypeMultilineText
}

func (v ValueType) IsNumeric() bool {
	return v == ValueTypeNumber || v == ValueTypeDecimal
}

func (v ValueType) IsChoice() bool {
	return v == ValueTypeSelect || v == ValueTypeMultiSelect
}

// ParseValueType accepts snake_case as well as the PascalCase spelling used
// by older clients, e.g. "MultiSelect".
func ParseValueType(value string) (ValueType, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", NewValidationError("value_type", "is required")
	}

	normalized := strings.ToLower(trimmed)
	for _, candidate := range valueTypes {
		if normalized == string(candidate) || normalized == strings.ReplaceAll(string(candidate), "_", "") {
			return candidate, nil
		}
	}

	return "", NewValidationError("value_type", fmt.Sprintf("unknown value type '%s'", trimmed))
}
