package internal

import (
	"crm-server/internal/crm/domain"
	"crm-server/internal/infra/utils"
)

type CompanyCreateRequest struct {
	Name              string             `json:"name" validate:"required,max=200"`
	Description       *string            `json:"description,omitempty" validate:"omitempty,max=1000"`
	ContactIDs        []string           `json:"contact_ids,omitempty" validate:"omitempty,dive,required"`
	CustomFieldValues map[string]*string `json:"custom_field_values,omitempty" validate:"omitempty,dive,keys,required,endkeys"`
}

// CompanyUpdateRequest replaces contacts and custom values wholesale.
type CompanyUpdateRequest CompanyCreateRequest

type CompanyResponse struct {
	ID                string                     `json:"id"`
	Name              string                     `json:"name"`
	Description       *string                    `json:"description,omitempty"`
	IsDeleted         bool                       `json:"is_deleted"`
	CreatedAt         utils.Time                 `json:"created_at"`
	UpdatedAt         *utils.Time                `json:"updated_at,omitempty"`
	DeletedAt         *utils.Time                `json:"deleted_at,omitempty"`
	ContactIDs        []string                   `json:"contact_ids"`
	Contacts          []ContactSummaryResponse   `json:"contacts"`
	CustomFieldValues []CustomFieldValueResponse `json:"custom_field_values"`
}

type CompanySummaryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func ToCompany(body CompanyCreateRequest) (domain.Company, error) {
	return domain.NewCompanyBuilder().
		WithName(body.Name).
		WithDescription(body.Description).
		WithContactIDs(toIDs(body.ContactIDs)).
		Build()
}

func ToCompanyUpdate(body CompanyUpdateRequest) domain.CompanyUpdate {
	return domain.CompanyUpdate{
		Name:        body.Name,
		Description: body.Description,
		ContactIDs:  toIDs(body.ContactIDs),
	}
}

func ToCompanyResponse(company domain.Company) CompanyResponse {
	return CompanyResponse{
		ID:                company.ID.String(),
		Name:              company.Name.String(),
		Description:       company.Description,
		IsDeleted:         company.IsDeleted(),
		CreatedAt:         utils.Time{Time: company.CreatedAt},
		UpdatedAt:         utils.TimeOrNil(company.UpdatedAt),
		DeletedAt:         utils.TimeOrNil(company.DeletedAt),
		ContactIDs:        fromIDs(company.ContactIDs),
		Contacts:          utils.Map(company.Contacts, toContactSummaryResponse),
		CustomFieldValues: toCustomFieldValueResponses(company.CustomFieldValues),
	}
}

func ToCompanyListResponse(companies []domain.Company) []CompanyResponse {
	return utils.Map(companies, ToCompanyResponse)
}

func toCompanySummaryResponse(summary domain.CompanySummary) CompanySummaryResponse {
	return CompanySummaryResponse{ID: summary.ID.String(), Name: summary.Name.String()}
}
