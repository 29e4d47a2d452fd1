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
	MaxCompanyNameLength        = 200
	MaxCompanyDescriptionLength = 1000
)

type Company struct {
	ID                shareddomain.ID
	Name              shareddomain.Name
	Description       *string
	Status            shareddomain.RecordStatus
	CreatedAt         time.Time
	UpdatedAt         *time.Time
	DeletedAt         *time.Time
	ContactIDs        []shareddomain.ID
	Contacts          []ContactSummary
	CustomFieldValues []CustomFieldValue
}

type CompanySummary struct {
	ID   shareddomain.ID
	Name shareddomain.Name
}

func (c *Company) IsDeleted() bool {
	return c.Status == shareddomain.RecordStatusSoftDeleted
}

func (c *Company) NameKey() string {
	return utils.NormalizeKey(string(c.Name))
}

func (c *Company) SoftDelete() {
	now := time.Now()
	c.Status = shareddomain.RecordStatusSoftDeleted
	c.DeletedAt = &now
	c.UpdatedAt = &now
}

func (c *Company) Restore() {
	now := time.Now()
	c.Status = shareddomain.RecordStatusActive
	c.DeletedAt = nil
	c.UpdatedAt = &now
}

func (c *Company) Validate() error {
	name := strings.TrimSpace(string(c.Name))
	if name == "" {
		return NewValidationError("name", "is required")
	}
	if utf8.RuneCountInString(name) > MaxCompanyNameLength {
		return NewValidationError("name", fmt.Sprintf("must be at most %d characters", MaxCompanyNameLength))
	}
	if c.Description != nil && utf8.RuneCountInString(*c.Description) > MaxCompanyDescriptionLength {
		return NewValidationError("description", fmt.Sprintf("must be at most %d characters", MaxCompanyDescriptionLength))
	}
	return nil
}

type CompanyUpdate struct {
	Name        string
	Description *string
	ContactIDs  []shareddomain.ID
}

func (c *Company) Apply(update CompanyUpdate) error {
	c.Name = shareddomain.Name(strings.TrimSpace(update.Name))
	c.Description = utils.TrimmedStringPtr(update.Description)
	c.ContactIDs = utils.Unique(update.ContactIDs)
	now := time.Now()
	c.UpdatedAt = &now
	return c.Validate()
}

func NewCompanyBuilder() *companyBuilder {
	return &companyBuilder{}
}

type companyBuilder struct {
	actions []companyHandler
}

type companyHandler func(v *Company) error

func (b *companyBuilder) WithName(value string) *companyBuilder {
	b.actions = append(b.actions, func(c *Company) error {
		c.Name = shareddomain.Name(strings.TrimSpace(value))
		return nil
	})
	return b
}

func (b *companyBuilder) WithDescription(value *string) *companyBuilder {
	b.actions = append(b.actions, func(c *Company) error {
		c.Description = utils.TrimmedStringPtr(value)
		return nil
	})
	return b
}

func (b *companyBuilder) WithContactIDs(value []shareddomain.ID) *companyBuilder {
	b.actions = append(b.actions, func(c *Company) error {
		c.ContactIDs = utils.Unique(value)
		return nil
	})
	return b
}

func (b *companyBuilder) Build() (Company, error) {
	result := Company{
		ID:                shareddomain.ID(utils.GenerateUUID()),
		Status:            shareddomain.RecordStatusActive,
		CreatedAt:         time.Now(),
		ContactIDs:        make([]shareddomain.ID, 0),
		CustomFieldValues: make([]CustomFieldValue, 0),
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return Company{}, err
		}
	}

	if err := result.Validate(); err != nil {
		return Company{}, err
	}

	return result, nil
}
