package driver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

type APIDriver struct {
	baseURL string
	client  *http.Client
}

func NewAPIDriver(baseURL string) *APIDriver {
	return &APIDriver{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

func (d *APIDriver) CreateCustomField(body map[string]any) (*http.Response, error) {
	return d.send(http.MethodPost, "/v1/custom-fields", body)
}

func (d *APIDriver) GetCustomField(id string) (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/v1/custom-fields/%s", d.baseURL, id))
}

func (d *APIDriver) ListCustomFields(includeDeleted bool) (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/v1/custom-fields?include_deleted=%t", d.baseURL, includeDeleted))
}

func (d *APIDriver) DeleteCustomField(id string) (*http.Response, error) {
	return d.send(http.MethodDelete, fmt.Sprintf("/v1/custom-fields/%s", id), nil)
}

func (d *APIDriver) GetCustomFieldUsage(id string) (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/v1/custom-fields/%s/usage", d.baseURL, id))
}

func (d *APIDriver) CreateCompany(name string, values map[string]*string) (*http.Response, error) {
	return d.send(http.MethodPost, "/v1/companies", map[string]any{
		"name":                name,
		"custom_field_values": values,
	})
}

func (d *APIDriver) CreateContact(body map[string]any) (*http.Response, error) {
	return d.send(http.MethodPost, "/v1/contacts", body)
}

func (d *APIDriver) UpdateContact(id string, body map[string]any) (*http.Response, error) {
	return d.send(http.MethodPut, fmt.Sprintf("/v1/contacts/%s", id), body)
}

func (d *APIDriver) GetContact(id string) (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/v1/contacts/%s", d.baseURL, id))
}

func (d *APIDriver) DeleteContact(id string) (*http.Response, error) {
	return d.send(http.MethodDelete, fmt.Sprintf("/v1/contacts/%s", id), nil)
}

func (d *APIDriver) ListCompaniesByCustomField(fieldID, value string) (*http.Response, error) {
	query := url.Values{"field_id": {fieldID}, "value": {value}}
	return d.client.Get(fmt.Sprintf("%s/v1/companies/by-custom-field?%s", d.baseURL, query.Encode()))
}

func (d *APIDriver) GetHealthz() (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/healthz", d.baseURL))
}

func (d *APIDriver) send(method, path string, body any) (*http.Response, error) {
	var payload bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&payload).Encode(body); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequest(method, d.baseURL+path, &payload)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return d.client.Do(req)
}
