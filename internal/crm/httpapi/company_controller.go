package httpapi

import (
	"net/http"

	"crm-server/internal/crm/domain"
	"crm-server/internal/crm/httpapi/internal"
	"crm-server/internal/crm/usecases"
	"crm-server/internal/infra/httpserver"
	shareddomain "crm-server/internal/shared_kernel/domain"
)

const _defaultRecentlyModifiedCount = 10

func NewCompanyController(service usecases.CompanyService, contacts usecases.ContactService) *CompanyController {
	return &CompanyController{
		service:  service,
		contacts: contacts,
	}
}

var _ httpserver.Controller = &CompanyController{}

type CompanyController struct {
	service  usecases.CompanyService
	contacts usecases.ContactService
}

func (c *CompanyController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/companies", c.listCompanies())
	router.Handle("POST /v1/companies", c.createCompany())
	router.Handle("GET /v1/companies/recently-modified", c.listRecentlyModified())
	router.Handle("GET /v1/companies/by-custom-field", c.listByCustomField())
	router.Handle("GET /v1/companies/{id}", c.getCompany())
	router.Handle("PUT /v1/companies/{id}", c.updateCompany())
	router.Handle("DELETE /v1/companies/{id}", c.deleteCompany())
	router.Handle("POST /v1/companies/{id}/restore", c.restoreCompany())
	router.Handle("GET /v1/companies/{id}/contacts", c.listCompanyContacts())
}

func (c *CompanyController) listCompanies() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httpserver.ExtractPaginationParams(r)
		sort := httpserver.ExtractSortParams(r)

		query := domain.CompanyQuery{
			Pagination: domain.Pagination{Page: params.Page, Limit: params.Limit},
			Search:     httpserver.GetQueryParam(r, "search"),
			SortBy:     domain.CompanySortField(sort.Field),
			Ascending:  sort.Ascending,
			Deleted:    shareddomain.DeletedFilterFrom(httpserver.GetQueryParamBool(r, "include_deleted")),
		}

		page, err := c.service.ListCompanies(r.Context(), query)
		if err != nil {
			replyWithError(w, err, "listing companies")
			return
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK,
			internal.ToCompanyListResponse(page.Items),
			int(page.Total),
			httpserver.PaginationParams{Page: page.Pagination.Page, Limit: page.Pagination.Limit},
		)
	}
}

func (c *CompanyController) getCompany() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := shareddomain.ID(r.PathValue("id"))
		filter := shareddomain.DeletedFilterFrom(httpserver.GetQueryParamBool(r, "include_deleted"))

		company, err := c.service.GetCompany(r.Context(), id, filter)
		if err != nil {
			replyWithError(w, err, "getting company")
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToCompanyResponse(company))
	}
}

func (c *CompanyController) createCompany() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.CompanyCreateRequest
		if !decodeAndValidate(w, r, &body) {
			return
		}

		company, err := internal.ToCompany(body)
		if err != nil {
			replyWithError(w, err, "building company")
			return
		}

		created, err := c.service.CreateCompany(r.Context(), company, internal.ToCustomFieldValues(body.CustomFieldValues))
		if err != nil {
			replyWithError(w, err, "creating company")
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToCompanyResponse(created))
	}
}

func (c *CompanyController) updateCompany() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := shareddomain.ID(r.PathValue("id"))

		var body internal.CompanyUpdateRequest
		if !decodeAndValidate(w, r, &body) {
			return
		}

		updated, err := c.service.UpdateCompany(r.Context(), id,
			internal.ToCompanyUpdate(body),
			internal.ToCustomFieldValues(body.CustomFieldValues),
		)
		if err != nil {
			replyWithError(w, err, "updating company")
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToCompanyResponse(updated))
	}
}

func (c *CompanyController) deleteCompany() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := shareddomain.ID(r.PathValue("id"))

		mode, err := c.service.DeleteCompany(r.Context(), id)
		if err != nil {
			replyWithError(w, err, "deleting company")
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToDeletionResponse(id, mode))
	}
}

func (c *CompanyController) restoreCompany() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := shareddomain.ID(r.PathValue("id"))

		company, err := c.service.RestoreCompany(r.Context(), id)
		if err != nil {
			replyWithError(w, err, "restoring company")
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToCompanyResponse(company))
	}
}

func (c *CompanyController) listCompanyContacts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := shareddomain.ID(r.PathValue("id"))

		contacts, err := c.contacts.ListContactsByCompany(r.Context(), id)
		if err != nil {
			replyWithError(w, err, "listing company contacts")
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToContactListResponse(contacts))
	}
}

func (c *CompanyController) listByCustomField() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fieldID := httpserver.GetQueryParam(r, "field_id")
		if fieldID == "" {
			httpserver.ReplyWithFieldErrors(w, http.StatusBadRequest, "field_id: is required", map[string]string{"field_id": "is required"})
			return
		}

		companies, err := c.service.ListCompaniesByCustomField(r.Context(), shareddomain.ID(fieldID), r.URL.Query().Get("value"))
		if err != nil {
			replyWithError(w, err, "listing companies by custom field")
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToCompanyListResponse(companies))
	}
}

func (c *CompanyController) listRecentlyModified() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count := httpserver.GetQueryParamInt(r, "count", _defaultRecentlyModifiedCount)

		companies, err := c.service.ListRecentlyModifiedCompanies(r.Context(), count)
		if err != nil {
			replyWithError(w, err, "listing recently modified companies")
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToCompanyListResponse(companies))
	}
}
