package internal

import (
	"time"

	"crm-server/internal/crm/domain"
	shareddomain "crm-server/internal/shared_kernel/domain"
)

type Contact struct {
	ID          string     `gorm:"primaryKey;size:36"`
	FirstName   string     `gorm:"not null;size:100"`
	LastName    string     `gorm:"not null;size:100"`
	Email       string     `gorm:"not null;size:200"`
	EmailKey    string     `gorm:"not null;size:200;uniqueIndex:idx_contacts_email_key"`
	Description *string    `gorm:"size:500"`
	IsPrimary   bool       `gorm:"not null"`
	IsInactive  bool       `gorm:"not null"`
	Status      string     `gorm:"not null;size:20;index"`
	CreatedAt   time.Time  `gorm:"not null"`
	UpdatedAt   *time.Time `gorm:"autoUpdateTime:false"`
	DeletedAt   *time.Time
}

func (Contact) TableName() string {
	return "contacts"
}

func FromContact(value domain.Contact) Contact {
	return Contact{
		ID:          value.ID.String(),
		FirstName:   value.FirstName,
		LastName:    value.LastName,
		Email:       value.Email,
		EmailKey:    value.EmailKey(),
		Description: value.Description,
		IsPrimary:   value.IsPrimary,
		IsInactive:  value.IsInactive,
		Status:      string(value.Status),
		CreatedAt:   value.CreatedAt,
		UpdatedAt:   value.UpdatedAt,
		DeletedAt:   value.DeletedAt,
	}
}

func (c Contact) ToDomain() domain.Contact {
	return domain.Contact{
		ID:                shareddomain.ID(c.ID),
		FirstName:         c.FirstName,
		LastName:          c.LastName,
		Email:             c.Email,
		Description:       c.Description,
		IsPrimary:         c.IsPrimary,
		IsInactive:        c.IsInactive,
		Status:            shareddomain.RecordStatus(c.Status),
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
		DeletedAt:         c.DeletedAt,
		CompanyIDs:        make([]shareddomain.ID, 0),
		Companies:         make([]domain.CompanySummary, 0),
		CustomFieldValues: make([]domain.CustomFieldValue, 0),
	}
}

func (c Contact) ToSummary() domain.ContactSummary {
	return domain.ContactSummary{
		ID:        shareddomain.ID(c.ID),
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		IsPrimary: c.IsPrimary,
	}
}
