package domain

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"crm-server/internal/infra/utils"
)

var (
	numericPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)
	phonePattern   = regexp.MustCompile(`^\+?[\d\s\-()]+$`)
)

var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateTime,
	"01/02/2006",
}

// ValidateDefinition checks the definition itself: identity attributes,
// length limits and the constraints its value type depends on.
func ValidateDefinition(f CustomField) error {
	name := strings.TrimSpace(string(f.Name))
	if name == "" {
		return NewValidationError("name", "is required")
	}
	if utf8.RuneCountInString(name) > MaxCustomFieldNameLength {
		return NewValidationError("name", fmt.Sprintf("must be at most %d characters", MaxCustomFieldNameLength))
	}
	if !f.EntityType.IsValid() {
		return NewValidationError("entity_type", "must be one of [Company Contact]")
	}
	if !f.ValueType.IsValid() {
		return NewValidationError("value_type", fmt.Sprintf("unknown value type '%s'", f.ValueType))
	}
	if f.Description != nil && utf8.RuneCountInString(*f.Description) > MaxCustomFieldDescriptionLength {
		return NewValidationError("description", fmt.Sprintf("must be at most %d characters", MaxCustomFieldDescriptionLength))
	}
	if f.DefaultValue != nil && utf8.RuneCountInString(*f.DefaultValue) > MaxCustomFieldDefaultValueLength {
		return NewValidationError("default_value", fmt.Sprintf("must be at most %d characters", MaxCustomFieldDefaultValueLength))
	}

	if err := validateConstraints(f.ValueType, f.Constraints); err != nil {
		return err
	}

	if f.DefaultValue != nil && strings.TrimSpace(*f.DefaultValue) != "" && !conforms(f, *f.DefaultValue) {
		return NewValidationError("default_value", fmt.Sprintf("is not a valid %s value", f.ValueType))
	}

	return nil
}

func validateConstraints(valueType ValueType, c Constraints) error {
	switch {
	case valueType.IsTextLike():
		if c.MinLength != nil && *c.MinLength < 0 {
			return NewValidationError("min_length", "must not be negative")
		}
		if c.MaxLength != nil && *c.MaxLength < 0 {
			return NewValidationError("max_length", "must not be negative")
		}
		if c.MinLength != nil && c.MaxLength != nil && *c.MinLength > *c.MaxLength {
			return NewValidationError("min_length", "must not exceed max_length")
		}
	case valueType.IsNumeric():
		if c.MinValue != nil && c.MaxValue != nil && *c.MinValue > *c.MaxValue {
			return NewValidationError("min_value", "must not exceed max_value")
		}
	case valueType.IsChoice():
		if len(c.AllowedValues) == 0 {
			return NewValidationError("allowed_values", "must not be empty")
		}
		for _, allowed := range c.AllowedValues {
			if strings.TrimSpace(allowed) == "" {
				return NewValidationError("allowed_values", "must not contain blank entries")
			}
		}
	case valueType == ValueTypeRegex:
		if c.ValidationRegex == nil || strings.TrimSpace(*c.ValidationRegex) == "" {
			return NewValidationError("validation_regex", "is required")
		}
		if _, err := regexp.Compile(*c.ValidationRegex); err != nil {
			return NewValidationError("validation_regex", "must be a valid pattern")
		}
	}

	return nil
}

// ValidateValue checks a raw value about to be attached to an owner. Blank
// values are only accepted for optional fields.
func ValidateValue(f CustomField, raw string) error {
	if strings.TrimSpace(raw) == "" {
		if f.IsRequired {
			return NewValidationError(string(f.Name), "is required")
		}
		return nil
	}

	if !conforms(f, raw) {
		return NewValidationError(string(f.Name), fmt.Sprintf("'%s' is not a valid %s value", raw, f.ValueType))
	}

	return nil
}

func IsValidValue(f CustomField, raw string) bool {
	return ValidateValue(f, raw) == nil
}

// conforms assumes raw is not blank. Text length and numeric range
// constraints are not enforced at value time.
func conforms(f CustomField, raw string) bool {
	trimmed := strings.TrimSpace(raw)

	switch f.ValueType {
	case ValueTypeText, ValueTypeMultilineText:
		return true
	case ValueTypeNumber, ValueTypeDecimal:
		return numericPattern.MatchString(trimmed)
	case ValueTypeBoolean:
		lower := strings.ToLower(trimmed)
		return lower == "true" || lower == "false"
	case ValueTypeDate:
		return isDate(trimmed)
	case ValueTypeEmail:
		return utils.IsValidEmail(raw)
	case ValueTypePhone:
		return phonePattern.MatchString(raw)
	case ValueTypeSelect:
		return slices.Contains(f.Constraints.AllowedValues, trimmed)
	case ValueTypeMultiSelect:
		return isMultiSelection(f.Constraints.AllowedValues, trimmed)
	case ValueTypeRegex:
		return matchesPattern(f.Constraints.ValidationRegex, raw)
	default:
		return false
	}
}

func isDate(value string) bool {
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}
	return false
}

func isMultiSelection(allowed []string, value string) bool {
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item == "" || !slices.Contains(allowed, item) {
			return false
		}
	}
	return true
}

func matchesPattern(pattern *string, value string) bool {
	if pattern == nil {
		return false
	}
	re, err := regexp.Compile(*pattern)
	if err != nil {
		return false
	}
	return re.MatchString(value)
}
