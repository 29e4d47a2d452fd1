package internal

import (
	"crm-server/internal/crm/domain"
	"crm-server/internal/infra/utils"
	shareddomain "crm-server/internal/shared_kernel/domain"
)

type ContactCreateRequest struct {
	FirstName         string             `json:"first_name" validate:"required,max=100"`
	LastName          string             `json:"last_name" validate:"required,max=100"`
	Email             string             `json:"email" validate:"required,email,max=200"`
	Description       *string            `json:"description,omitempty" validate:"omitempty,max=500"`
	IsPrimary         bool               `json:"is_primary"`
	IsInactive        bool               `json:"is_inactive"`
	CompanyIDs        []string           `json:"company_ids,omitempty" validate:"omitempty,dive,required"`
	CustomFieldValues map[string]*string `json:"custom_field_values,omitempty" validate:"omitempty,dive,keys,required,endkeys"`
}

// ContactUpdateRequest replaces companies and custom values wholesale.
type ContactUpdateRequest ContactCreateRequest

type ContactResponse struct {
	ID                string                     `json:"id"`
	FirstName         string                     `json:"first_name"`
	LastName          string                     `json:"last_name"`
	Name              string                     `json:"name"`
	Email             string                     `json:"email"`
	Description       *string                    `json:"description,omitempty"`
	IsPrimary         bool                       `json:"is_primary"`
	IsInactive        bool                       `json:"is_inactive"`
	IsDeleted         bool                       `json:"is_deleted"`
	CreatedAt         utils.Time                 `json:"created_at"`
	UpdatedAt         *utils.Time                `json:"updated_at,omitempty"`
	DeletedAt         *utils.Time                `json:"deleted_at,omitempty"`
	CompanyIDs        []string                   `json:"company_ids"`
	Companies         []CompanySummaryResponse   `json:"companies"`
	CustomFieldValues []CustomFieldValueResponse `json:"custom_field_values"`
}

type ContactSummaryResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	IsPrimary bool   `json:"is_primary"`
}

type ContactStatisticsResponse struct {
	TotalContacts          int64            `json:"total_contacts"`
	ActiveContacts         int64            `json:"active_contacts"`
	InactiveContacts       int64            `json:"inactive_contacts"`
	PrimaryContacts        int64            `json:"primary_contacts"`
	DeletedContacts        int64            `json:"deleted_contacts"`
	ContactsWithCompany    int64            `json:"contacts_with_company"`
	ContactsWithoutCompany int64            `json:"contacts_without_company"`
	LastContactCreated     *utils.Time      `json:"last_contact_created,omitempty"`
	LastContactUpdated     *utils.Time      `json:"last_contact_updated,omitempty"`
	ContactsByCompany      map[string]int64 `json:"contacts_by_company"`
	ContactsByStatus       map[string]int64 `json:"contacts_by_status"`
}

type EmailAvailabilityResponse struct {
	Email     string `json:"email"`
	Available bool   `json:"available"`
}

func ToContact(body ContactCreateRequest) (domain.Contact, error) {
	return domain.NewContactBuilder().
		WithName(body.FirstName, body.LastName).
		WithEmail(body.Email).
		WithDescription(body.Description).
		WithPrimary(body.IsPrimary).
		WithInactive(body.IsInactive).
		WithCompanyIDs(toIDs(body.CompanyIDs)).
		Build()
}

func ToContactUpdate(body ContactUpdateRequest) domain.ContactUpdate {
	return domain.ContactUpdate{
		FirstName:   body.FirstName,
		LastName:    body.LastName,
		Email:       body.Email,
		Description: body.Description,
		IsPrimary:   body.IsPrimary,
		IsInactive:  body.IsInactive,
		CompanyIDs:  toIDs(body.CompanyIDs),
	}
}

func ToContactResponse(contact domain.Contact) ContactResponse {
	return ContactResponse{
		ID:                contact.ID.String(),
		FirstName:         contact.FirstName,
		LastName:          contact.LastName,
		Name:              contact.Name(),
		Email:             contact.Email,
		Description:       contact.Description,
		IsPrimary:         contact.IsPrimary,
		IsInactive:        contact.IsInactive,
		IsDeleted:         contact.IsDeleted(),
		CreatedAt:         utils.Time{Time: contact.CreatedAt},
		UpdatedAt:         utils.TimeOrNil(contact.UpdatedAt),
		DeletedAt:         utils.TimeOrNil(contact.DeletedAt),
		CompanyIDs:        fromIDs(contact.CompanyIDs),
		Companies:         utils.Map(contact.Companies, toCompanySummaryResponse),
		CustomFieldValues: toCustomFieldValueResponses(contact.CustomFieldValues),
	}
}

func ToContactListResponse(contacts []domain.Contact) []ContactResponse {
	return utils.Map(contacts, ToContactResponse)
}

func ToContactStatisticsResponse(stats domain.ContactStatistics) ContactStatisticsResponse {
	return ContactStatisticsResponse{
		TotalContacts:          stats.Total,
		ActiveContacts:         stats.Active,
		InactiveContacts:       stats.Inactive,
		PrimaryContacts:        stats.Primary,
		DeletedContacts:        stats.Deleted,
		ContactsWithCompany:    stats.WithCompany,
		ContactsWithoutCompany: stats.WithoutCompany,
		LastContactCreated:     utils.TimeOrNil(stats.LastContactCreated),
		LastContactUpdated:     utils.TimeOrNil(stats.LastContactUpdated),
		ContactsByCompany:      stats.ContactsByCompany,
		ContactsByStatus:       stats.ContactsByStatus,
	}
}

func toContactSummaryResponse(summary domain.ContactSummary) ContactSummaryResponse {
	return ContactSummaryResponse{
		ID:        summary.ID.String(),
		FirstName: summary.FirstName,
		LastName:  summary.LastName,
		Email:     summary.Email,
		IsPrimary: summary.IsPrimary,
	}
}

// ParseOptionalID returns nil for a blank identifier.
func ParseOptionalID(value string) *shareddomain.ID {
	if value == "" {
		return nil
	}
	id := shareddomain.ID(value)
	return &id
}
