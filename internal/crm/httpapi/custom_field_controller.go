package httpapi

import (
	"net/http"

	"crm-server/internal/crm/domain"
	"crm-server/internal/crm/httpapi/internal"
	"crm-server/internal/crm/usecases"
	"crm-server/internal/infra/httpserver"
	shareddomain "crm-server/internal/shared_kernel/domain"
)

func NewCustomFieldController(service usecases.CustomFieldService) *CustomFieldController {
	return &CustomFieldController{
		service: service,
	}
}

var _ httpserver.Controller = &CustomFieldController{}

type CustomFieldController struct {
	service usecases.CustomFieldService
}

func (c *CustomFieldController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/custom-fields", c.listCustomFields())
	router.Handle("POST /v1/custom-fields", c.createCustomField())
	router.Handle("GET /v1/custom-fields/{id}", c.getCustomField())
	router.Handle("PUT /v1/custom-fields/{id}", c.updateCustomField())
	router.Handle("DELETE /v1/custom-fields/{id}", c.deleteCustomField())
	router.Handle("POST /v1/custom-fields/{id}/restore", c.restoreCustomField())
	router.Handle("GET /v1/custom-fields/{id}/usage", c.getCustomFieldUsage())
	router.Handle("GET /v1/custom-fields/{id}/in-use", c.getCustomFieldInUse())
	router.Handle("GET /v1/entity-types/{entity_type}/custom-fields", c.listCustomFieldsByType())
}

func (c *CustomFieldController) listCustomFields() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var entityType *domain.EntityType
		if raw := httpserver.GetQueryParam(r, "entity_type"); raw != "" {
			parsed, err := domain.ParseEntityType(raw)
			if err != nil {
				replyWithError(w, err, "listing custom fields")
				return
			}
			entityType = &parsed
		}

		filter := shareddomain.DeletedFilterFrom(httpserver.GetQueryParamBool(r, "include_deleted"))

		fields, err := c.service.ListCustomFields(r.Context(), entityType, filter)
		if err != nil {
			replyWithError(w, err, "listing custom fields")
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToCustomFieldListResponse(fields))
	}
}

func (c *CustomFieldController) listCustomFieldsByType() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entityType, err := domain.ParseEntityType(r.PathValue("entity_type"))
		if err != nil {
			replyWithError(w, err, "listing custom fields by type")
			return
		}

		fields, err := c.service.ListCustomFieldsByType(r.Context(), entityType)
		if err != nil {
			replyWithError(w, err, "listing custom fields by type")
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToCustomFieldListResponse(fields))
	}
}

func (c *CustomFieldController) getCustomField() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := shareddomain.ID(r.PathValue("id"))
		filter := shareddomain.DeletedFilterFrom(httpserver.GetQueryParamBool(r, "include_deleted"))

		field, err := c.service.GetCustomField(r.Context(), id, filter)
		if err != nil {
			replyWithError(w, err, "getting custom field")
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToCustomFieldResponse(field))
	}
}

func (c *CustomFieldController) createCustomField() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.CustomFieldCreateRequest
		if !decodeAndValidate(w, r, &body) {
			return
		}

		field, err := internal.ToCustomField(body)
		if err != nil {
			replyWithError(w, err, "building custom field")
			return
		}

		created, err := c.service.CreateCustomField(r.Context(), field)
		if err != nil {
			replyWithError(w, err, "creating custom field")
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToCustomFieldResponse(created))
	}
}

func (c *CustomFieldController) updateCustomField() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := shareddomain.ID(r.PathValue("id"))

		var body internal.CustomFieldUpdateRequest
		if !decodeAndValidate(w, r, &body) {
			return
		}

		update, err := internal.ToCustomFieldUpdate(body)
		if err != nil {
			replyWithError(w, err, "updating custom field")
			return
		}

		updated, err := c.service.UpdateCustomField(r.Context(), id, update)
		if err != nil {
			replyWithError(w, err, "updating custom field")
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToCustomFieldResponse(updated))
	}
}

func (c *CustomFieldController) deleteCustomField() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := shareddomain.ID(r.PathValue("id"))

		mode, err := c.service.DeleteCustomField(r.Context(), id)
		if err != nil {
			replyWithError(w, err, "deleting custom field")
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToDeletionResponse(id, mode))
	}
}

func (c *CustomFieldController) restoreCustomField() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := shareddomain.ID(r.PathValue("id"))

		field, err := c.service.RestoreCustomField(r.Context(), id)
		if err != nil {
			replyWithError(w, err, "restoring custom field")
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToCustomFieldResponse(field))
	}
}

func (c *CustomFieldController) getCustomFieldUsage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := shareddomain.ID(r.PathValue("id"))

		usage, err := c.service.GetCustomFieldUsage(r.Context(), id)
		if err != nil {
			replyWithError(w, err, "getting custom field usage")
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToCustomFieldUsageResponse(usage))
	}
}

func (c *CustomFieldController) getCustomFieldInUse() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := shareddomain.ID(r.PathValue("id"))

		exists, err := c.service.CustomFieldExists(r.Context(), id)
		if err != nil {
			replyWithError(w, err, "checking custom field")
			return
		}
		if !exists {
			replyWithError(w, usecases.ErrCustomFieldNotFound, "checking custom field")
			return
		}

		inUse, err := c.service.IsCustomFieldInUse(r.Context(), id)
		if err != nil {
			replyWithError(w, err, "checking custom field usage")
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, map[string]any{"id": id.String(), "in_use": inUse})
	}
}
