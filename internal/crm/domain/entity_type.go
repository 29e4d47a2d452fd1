package domain

import "strings"

// EntityType is the kind of record a custom field can be attached to.
type EntityType string

const (
	EntityTypeCompany EntityType = "Company"
	EntityTypeContact EntityType = "Contact"
)

func (e EntityType) String() string {
	return string(e)
}

func (e EntityType) IsValid() bool {
	return e == EntityTypeCompany || e == EntityTypeContact
}

// ParseEntityType accepts the canonical name in any letter case.
func ParseEntityType(value string) (EntityType, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "company":
		return EntityTypeCompany, nil
	case "contact":
		return EntityTypeContact, nil
	case "":
		return "", NewValidationError("entity_type", "is required")
	default:
		return "", NewValidationError("entity_type", "must be one of [Company Contact]")
	}
}
