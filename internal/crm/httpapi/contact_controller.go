package httpapi

import (
	"net/http"

	"crm-server/internal/crm/domain"
	"crm-server/internal/crm/httpapi/internal"
	"crm-server/internal/crm/usecases"
	"crm-server/internal/infra/httpserver"
	shareddomain "crm-server/internal/shared_kernel/domain"
)

func NewContactController(service usecases.ContactService) *ContactController {
	return &ContactController{
		service: service,
	}
}

var _ httpserver.Controller = &ContactController{}

type ContactController struct {
	service usecases.ContactService
}

func (c *ContactController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/contacts", c.listContacts())
	router.Handle("POST /v1/contacts", c.createContact())
	router.Handle("GET /v1/contacts/statistics", c.getStatistics())
	router.Handle("GET /v1/contacts/search", c.searchContacts())
	router.Handle("GET /v1/contacts/email-availability", c.checkEmailAvailability())
	router.Handle("GET /v1/contacts/{id}", c.getContact())
	router.Handle("PUT /v1/contacts/{id}", c.updateContact())
	router.Handle("DELETE /v1/contacts/{id}", c.deleteContact())
	router.Handle("POST /v1/contacts/{id}/restore", c.restoreContact())
}

func (c *ContactController) listContacts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httpserver.ExtractPaginationParams(r)
		sort := httpserver.ExtractSortParams(r)

		query := domain.ContactQuery{
			Pagination:      domain.Pagination{Page: params.Page, Limit: params.Limit},
			Search:          httpserver.GetQueryParam(r, "search"),
			SortBy:          domain.ContactSortField(sort.Field),
			Ascending:       sort.Ascending,
			IncludeInactive: httpserver.GetQueryParamBool(r, "include_inactive"),
			Deleted:         shareddomain.DeletedFilterFrom(httpserver.GetQueryParamBool(r, "include_deleted")),
			CompanyID:       internal.ParseOptionalID(httpserver.GetQueryParam(r, "company_id")),
		}

		page, err := c.service.ListContacts(r.Context(), query)
		if err != nil {
			replyWithError(w, err, "listing contacts")
			return
		}

		replyWithContactPage(w, page)
	}
}

func (c *ContactController) searchContacts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httpserver.ExtractPaginationParams(r)

		search := domain.ContactSearch{
			Pagination:         domain.Pagination{Page: params.Page, Limit: params.Limit},
			Term:               httpserver.GetQueryParam(r, "search"),
			CustomFieldFilters: httpserver.GetQueryParamMap(r, "custom_field"),
		}

		page, err := c.service.SearchContacts(r.Context(), search)
		if err != nil {
			replyWithError(w, err, "searching contacts")
			return
		}

		replyWithContactPage(w, page)
	}
}

func replyWithContactPage(w http.ResponseWriter, page domain.Page[domain.Contact]) {
	httpserver.ReplyWithPaginatedData(w, http.StatusOK,
		internal.ToContactListResponse(page.Items),
		int(page.Total),
		httpserver.PaginationParams{Page: page.Pagination.Page, Limit: page.Pagination.Limit},
	)
}

func (c *ContactController) getContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := shareddomain.ID(r.PathValue("id"))
		filter := shareddomain.DeletedFilterFrom(httpserver.GetQueryParamBool(r, "include_deleted"))

		contact, err := c.service.GetContact(r.Context(), id, filter)
		if err != nil {
			replyWithError(w, err, "getting contact")
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToContactResponse(contact))
	}
}

func (c *ContactController) createContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.ContactCreateRequest
		if !decodeAndValidate(w, r, &body) {
			return
		}

		contact, err := internal.ToContact(body)
		if err != nil {
			replyWithError(w, err, "building contact")
			return
		}

		created, err := c.service.CreateContact(r.Context(), contact, internal.ToCustomFieldValues(body.CustomFieldValues))
		if err != nil {
			replyWithError(w, err, "creating contact")
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToContactResponse(created))
	}
}

func (c *ContactController) updateContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := shareddomain.ID(r.PathValue("id"))

		var body internal.ContactUpdateRequest
		if !decodeAndValidate(w, r, &body) {
			return
		}

		updated, err := c.service.UpdateContact(r.Context(), id,
			internal.ToContactUpdate(body),
			internal.ToCustomFieldValues(body.CustomFieldValues),
		)
		if err != nil {
			replyWithError(w, err, "updating contact")
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToContactResponse(updated))
	}
}

func (c *ContactController) deleteContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := shareddomain.ID(r.PathValue("id"))

		if err := c.service.DeleteContact(r.Context(), id); err != nil {
			replyWithError(w, err, "deleting contact")
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToDeletionResponse(id, domain.DeletionModeSoft))
	}
}

func (c *ContactController) restoreContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := shareddomain.ID(r.PathValue("id"))

		contact, err := c.service.RestoreContact(r.Context(), id)
		if err != nil {
			replyWithError(w, err, "restoring contact")
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToContactResponse(contact))
	}
}

func (c *ContactController) getStatistics() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := c.service.GetContactStatistics(r.Context())
		if err != nil {
			replyWithError(w, err, "computing contact statistics")
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToContactStatisticsResponse(stats))
	}
}

func (c *ContactController) checkEmailAvailability() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := httpserver.GetQueryParam(r, "email")
		excludeID := internal.ParseOptionalID(httpserver.GetQueryParam(r, "exclude_id"))

		available, err := c.service.IsEmailAvailable(r.Context(), email, excludeID)
		if err != nil {
			replyWithError(w, err, "checking email availability")
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.EmailAvailabilityResponse{Email: email, Available: available})
	}
}
