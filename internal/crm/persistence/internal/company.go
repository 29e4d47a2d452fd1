package internal

import (
	"time"

	"crm-server/internal/crm/domain"
	shareddomain "crm-server/internal/shared_kernel/domain"
)

type Company struct {
	ID          string     `gorm:"primaryKey;size:36"`
	Name        string     `gorm:"not null;size:200"`
	NameKey     string     `gorm:"not null;size:200;uniqueIndex:idx_companies_name_key"`
	Description *string    `gorm:"size:1000"`
	Status      string     `gorm:"not null;size:20;index"`
	CreatedAt   time.Time  `gorm:"not null"`
	UpdatedAt   *time.Time `gorm:"autoUpdateTime:false"`
	DeletedAt   *time.Time
}

func (Company) TableName() string {
	return "companies"
}

// CompanyContact is the explicit many to many link between companies and
// contacts.
type CompanyContact struct {
	CompanyID string `gorm:"primaryKey;size:36"`
	ContactID string `gorm:"primaryKey;size:36;index:idx_company_contacts_contact"`
}

func (CompanyContact) TableName() string {
	return "company_contacts"
}

func FromCompany(value domain.Company) Company {
	return Company{
		ID:          value.ID.String(),
		Name:        string(value.Name),
		NameKey:     value.NameKey(),
		Description: value.Description,
		Status:      string(value.Status),
		CreatedAt:   value.CreatedAt,
		UpdatedAt:   value.UpdatedAt,
		DeletedAt:   value.DeletedAt,
	}
}

func (c Company) ToDomain() domain.Company {
	return domain.Company{
		ID:                shareddomain.ID(c.ID),
		Name:              shareddomain.Name(c.Name),
		Description:       c.Description,
		Status:            shareddomain.RecordStatus(c.Status),
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
		DeletedAt:         c.DeletedAt,
		ContactIDs:        make([]shareddomain.ID, 0),
		Contacts:          make([]domain.ContactSummary, 0),
		CustomFieldValues: make([]domain.CustomFieldValue, 0),
	}
}

func (c Company) ToSummary() domain.CompanySummary {
	return domain.CompanySummary{ID: shareddomain.ID(c.ID), Name: shareddomain.Name(c.Name)}
}

func CompanyLinks(companyID string, contactIDs []shareddomain.ID) []CompanyContact {
	result := make([]CompanyContact, len(contactIDs))
	for i, id := range contactIDs {
		result[i] = CompanyContact{CompanyID: companyID, ContactID: id.String()}
	}
	return result
}

func ContactLinks(contactID string, companyIDs []shareddomain.ID) []CompanyContact {
	result := make([]CompanyContact, len(companyIDs))
	for i, id := range companyIDs {
		result[i] = CompanyContact{CompanyID: id.String(), ContactID: contactID}
	}
	return result
}
