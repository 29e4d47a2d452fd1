package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"crm-server/internal/infra/utils"
	shareddomain "crm-server/internal/shared_kernel/domain"
)

const (
	MaxContactNameLength        = 100
	MaxContactEmailLength       = 200
	MaxContactDescriptionLength = 500
)

type Contact struct {
	ID                shareddomain.ID
	FirstName         string
	LastName          string
	Email             string
	Description       *string
	IsPrimary         bool
	IsInactive        bool
	Status            shareddomain.RecordStatus
	CreatedAt         time.Time
	UpdatedAt         *time.Time
	DeletedAt         *time.Time
	CompanyIDs        []shareddomain.ID
	Companies         []CompanySummary
	CustomFieldValues []CustomFieldValue
}

type ContactSummary struct {
	ID        shareddomain.ID
	FirstName string
	LastName  string
	Email     string
	IsPrimary bool
}

func (c *Contact) Name() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

func (c *Contact) IsDeleted() bool {
	return c.Status == shareddomain.RecordStatusSoftDeleted
}

func (c *Contact) EmailKey() string {
	return utils.NormalizeKey(c.Email)
}

func (c *Contact) Summary() ContactSummary {
	return ContactSummary{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		IsPrimary: c.IsPrimary,
	}
}

func (c *Contact) SoftDelete() {
	now := time.Now()
	c.Status = shareddomain.RecordStatusSoftDeleted
	c.DeletedAt = &now
	c.UpdatedAt = &now
}

func (c *Contact) Restore() {
	now := time.Now()
	c.Status = shareddomain.RecordStatusActive
	c.DeletedAt = nil
	c.UpdatedAt = &now
}

// StatusLabel buckets a contact for reporting. Deleted wins over inactive,
// which wins over primary.
func (c *Contact) StatusLabel() string {
	switch {
	case c.IsDeleted():
		return "Deleted"
	case c.IsInactive:
		return "Inactive"
	case c.IsPrimary:
		return "Primary"
	default:
		return "Active"
	}
}

func (c *Contact) Validate() error {
	if err := requiredWithin("first_name", c.FirstName, MaxContactNameLength); err != nil {
		return err
	}
	if err := requiredWithin("last_name", c.LastName, MaxContactNameLength); err != nil {
		return err
	}
	if err := requiredWithin("email", c.Email, MaxContactEmailLength); err != nil {
		return err
	}
	if !utils.IsValidEmail(c.Email) {
		return NewValidationError("email", "must be a valid email address")
	}
	if c.Description != nil && utf8.RuneCountInString(*c.Description) > MaxContactDescriptionLength {
		return NewValidationError("description", fmt.Sprintf("must be at most %d characters", MaxContactDescriptionLength))
	}
	return nil
}

func requiredWithin(field, value string, limit int) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError(field, "is required")
	}
	if utf8.RuneCountInString(value) > limit {
		return NewValidationError(field, fmt.Sprintf("must be at most %d characters", limit))
	}
	return nil
}

type ContactUpdate struct {
	FirstName   string
	LastName    string
	Email       string
	Description *string
	IsPrimary   bool
	IsInactive  bool
	CompanyIDs  []shareddomain.ID
}

func (c *Contact) Apply(update ContactUpdate) error {
	c.FirstName = strings.TrimSpace(update.FirstName)
	c.LastName = strings.TrimSpace(update.LastName)
	c.Email = strings.TrimSpace(update.Email)
	c.Description = utils.TrimmedStringPtr(update.Description)
	c.IsPrimary = update.IsPrimary
	c.IsInactive = update.IsInactive
	c.CompanyIDs = utils.Unique(update.CompanyIDs)
	now := time.Now()
	c.UpdatedAt = &now
	return c.Validate()
}

func NewContactBuilder() *contactBuilder {
	return &contactBuilder{}
}

type contactBuilder struct {
	actions []contactHandler
}

type contactHandler func(v *Contact) error

func (b *contactBuilder) WithName(first, last string) *contactBuilder {
	b.actions = append(b.actions, func(c *Contact) error {
		c.FirstName = strings.TrimSpace(first)
		c.LastName = strings.TrimSpace(last)
		return nil
	})
	return b
}

func (b *contactBuilder) WithEmail(value string) *contactBuilder {
	b.actions = append(b.actions, func(c *Contact) error {
		c.Email = strings.TrimSpace(value)
		return nil
	})
	return b
}

func (b *contactBuilder) WithDescription(value *string) *contactBuilder {
	b.actions = append(b.actions, func(c *Contact) error {
		c.Description = utils.TrimmedStringPtr(value)
		return nil
	})
	return b
}

func (b *contactBuilder) WithPrimary(value bool) *contactBuilder {
	b.actions = append(b.actions, func(c *Contact) error {
		c.IsPrimary = value
		return nil
	})
	return b
}

func (b *contactBuilder) WithInactive(value bool) *contactBuilder {
	b.actions = append(b.actions, func(c *Contact) error {
		c.IsInactive = value
		return nil
	})
	return b
}

func (b *contactBuilder) WithCompanyIDs(value []shareddomain.ID) *contactBuilder {
	b.actions = append(b.actions, func(c *Contact) error {
		c.CompanyIDs = utils.Unique(value)
		return nil
	})
	return b
}

func (b *contactBuilder) Build() (Contact, error) {
	result := Contact{
		ID:                shareddomain.ID(utils.GenerateUUID()),
		Status:            shareddomain.RecordStatusActive,
		CreatedAt:         time.Now(),
		CompanyIDs:        make([]shareddomain.ID, 0),
		CustomFieldValues: make([]CustomFieldValue, 0),
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return Contact{}, err
		}
	}

	if err := result.Validate(); err != nil {
		return Contact{}, err
	}

	return result, nil
}
