package httpserver

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"crm-server/internal/infra/utils"
)

type ErrorResponse struct {
	Message string            `json:"message,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func ReplyWithError(w http.ResponseWriter, statusCode int, errMsg string) {
	ReplyWithFieldErrors(w, statusCode, errMsg, nil)
}

// ReplyWithFieldErrors adds the offending field names to the error body.
func ReplyWithFieldErrors(w http.ResponseWriter, statusCode int, errMsg string, fields map[string]string) {
	errResponse := &ErrorResponse{
		Message: errMsg,
		Fields:  fields,
	}
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(errResponse)
}

func ReplyJSONResponse(w http.ResponseWriter, statusCode int, output interface{}) {
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(output)
}

func DecodeJSONBody(r *http.Request, placeholder any) error {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		return fmt.Errorf("reading request body: %w", err)
	}

	if err := json.Unmarshal(reqBody, placeholder); err != nil {
		return fmt.Errorf("marshaling json: %w", err)
	}

	return nil
}

func GetQueryParam(r *http.Request, name string) string {
	val := r.URL.Query().Get(name)
	return strings.TrimSpace(val)
}

// GetQueryParamBool is false unless the parameter parses as true.
func GetQueryParamBool(r *http.Request, name string) bool {
	value, err := strconv.ParseBool(GetQueryParam(r, name))
	return err == nil && value
}

func GetQueryParamInt(r *http.Request, name string, fallback int) int {
	value, err := strconv.Atoi(GetQueryParam(r, name))
	if err != nil {
		return fallback
	}
	return value
}

var _keyValuePattern = regexp.MustCompile(`^\s*([^:]+?)\s*:\s*(.*?)\s*$`)

func GetQueryParamMapKeyValue(r *http.Request, name string) (string, string) {
	queryVal := r.URL.Query().Get(name)
	kv := _keyValuePattern.FindStringSubmatch(queryVal)
	if len(kv) < 3 {
		return "", ""
	}

	return kv[1], kv[2]
}

// GetQueryParamMap collects every "key:value" occurrence of the parameter.
// Later occurrences win.
func GetQueryParamMap(r *http.Request, name string) map[string]string {
	result := make(map[string]string)
	for _, raw := range r.URL.Query()[name] {
		kv := _keyValuePattern.FindStringSubmatch(raw)
		if len(kv) < 3 || kv[1] == "" {
			continue
		}
		result[kv[1]] = kv[2]
	}
	return result
}

type SortParams struct {
	Field     string
	Ascending bool
}

// ExtractSortParams reads sort_by and sort_order. Field names are accepted in
// camel or snake case and returned in snake case. The order defaults to
// ascending unless sort_order is "desc".
func ExtractSortParams(r *http.Request) SortParams {
	field := GetQueryParam(r, "sort_by")
	if field != "" {
		field = utils.ToSnakeCase(field)
	}

	return SortParams{
		Field:     field,
		Ascending: !strings.EqualFold(GetQueryParam(r, "sort_order"), "desc"),
	}
}
