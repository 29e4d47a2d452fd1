package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"crm-server/internal/crm/domain"
	"crm-server/internal/crm/usecases"
	"crm-server/internal/infra/httpserver"
	"crm-server/internal/infra/utils"
)

const invalidBodyErrMessage = "invalid request body"

// replyWithError maps service errors onto status codes. Only unexpected
// failures are logged and their details never reach the caller.
func replyWithError(w http.ResponseWriter, err error, operation string) {
	var validationErr *domain.ValidationError
	var fieldErr *utils.FieldError

	switch {
	case errors.As(err, &validationErr):
		httpserver.ReplyWithFieldErrors(w, http.StatusBadRequest, validationErr.Error(), fieldErrors(validationErr.Field, validationErr.Reason))
	case errors.As(err, &fieldErr):
		httpserver.ReplyWithFieldErrors(w, http.StatusBadRequest, fieldErr.Error(), fieldErrors(fieldErr.Field, fieldErr.Reason))
	case errors.Is(err, domain.ErrValidation):
		httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, usecases.ErrNotFound):
		httpserver.ReplyWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, usecases.ErrConflict):
		httpserver.ReplyWithError(w, http.StatusConflict, err.Error())
	default:
		slog.Error(operation, slog.String("error", err.Error()))
		httpserver.ReplyWithError(w, http.StatusInternalServerError, "failed "+operation)
	}
}

func fieldErrors(field, reason string) map[string]string {
	if field == "" {
		return nil
	}
	return map[string]string{field: reason}
}

// decodeAndValidate reads the JSON body into placeholder and runs its
// validation tags. It replies on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, placeholder any) bool {
	if err := httpserver.DecodeJSONBody(r, placeholder); err != nil {
		slog.Debug("decoding request body", slog.String("error", err.Error()))
		httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyErrMessage)
		return false
	}

	if err := utils.ValidateStruct(placeholder); err != nil {
		replyWithError(w, err, "validating request")
		return false
	}

	return true
}
