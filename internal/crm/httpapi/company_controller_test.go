package httpapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"crm-server/internal/crm/domain"
	"crm-server/internal/crm/httpapi"
	"crm-server/internal/crm/usecases"
	"crm-server/internal/infra/httpserver"
	"crm-server/internal/infra/utils"
	domain0 "crm-server/internal/shared_kernel/domain"
	mockusecases "crm-server/test/unit/doubles/crm/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("CompanyController", func() {
	var (
		ctrl         *gomock.Controller
		mockService  *mockusecases.MockCompanyService
		mockContacts *mockusecases.MockContactService
		router       *http.ServeMux
		recorder     *httptest.ResponseRecorder
		company      domain.Company
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockCompanyService(ctrl)
		mockContacts = mockusecases.NewMockContactService(ctrl)
		router = http.NewServeMux()
		httpapi.NewCompanyController(mockService, mockContacts).AddRoutes(router)
		recorder = httptest.NewRecorder()

		company = domain.Company{
			ID:         "company-1",
			Name:       "Acme",
			Status:     domain0.RecordStatusActive,
			CreatedAt:  time.Now(),
			ContactIDs: []domain0.ID{"contact-1"},
			Contacts: []domain.ContactSummary{
				{ID: "contact-1", FirstName: "Jane", LastName: "Doe", Email: "jane@acme.test", IsPrimary: true},
			},
			CustomFieldValues: []domain.CustomFieldValue{
				{CustomFieldID: "field-1", CustomFieldName: "Industry", ValueType: domain.ValueTypeText, Value: utils.StringPtr("Retail")},
			},
		}
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("listCompanies", func() {
		It("should translate query parameters into a company query", func() {
			expected := domain.CompanyQuery{
				Pagination: domain.Pagination{Page: 2, Limit: 5},
				Search:     "acme",
				SortBy:     domain.CompanySortByCreatedAt,
				Ascending:  false,
				Deleted:    domain0.ExcludeDeleted,
			}
			mockService.EXPECT().
				ListCompanies(gomock.Any(), expected).
				Return(domain.Page[domain.Company]{
					Items:      []domain.Company{company},
					Total:      6,
					Pagination: expected.Pagination,
				}, nil)

			req := httptest.NewRequest(http.MethodGet, "/v1/companies?page=2&limit=5&search=acme&sort_by=createdAt&sort_order=desc", nil)
			router.ServeHTTP(recorder, req)

			Expect(recorder.Code).To(Equal(http.StatusOK))
			var response httpserver.PaginatedResponse
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Pagination).To(Equal(httpserver.PaginationMeta{Page: 2, Limit: 5, Total: 6, TotalPages: 2}))
			Expect(response.Data).To(HaveLen(1))
		})
	})

	Context("createCompany", func() {
		It("should pass contacts and custom values to the service", func() {
			mockService.EXPECT().
				CreateCompany(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, c domain.Company, values domain.CustomFieldValues) (domain.Company, error) {
					Expect(string(c.Name)).To(Equal("Acme"))
					Expect(c.ContactIDs).To(Equal([]domain0.ID{"contact-1"}))
					Expect(values).To(HaveLen(1))
					Expect(*values["field-1"]).To(Equal("Retail"))
					return company, nil
				})

			body := `{"name":"Acme","contact_ids":["contact-1","contact-1"],"custom_field_values":{"field-1":"Retail"}}`
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/v1/companies", strings.NewReader(body)))

			Expect(recorder.Code).To(Equal(http.StatusCreated))
			var response map[string]any
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response["contacts"]).To(HaveLen(1))
			Expect(response["custom_field_values"]).To(ConsistOf(HaveKeyWithValue("value", "Retail")))
		})

		It("should surface an invalid custom value as a field error", func() {
			mockService.EXPECT().
				CreateCompany(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(domain.Company{}, domain.NewValidationError("Employees", "'many' is not a valid number value"))

			body := `{"name":"Acme","custom_field_values":{"field-2":"many"}}`
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/v1/companies", strings.NewReader(body)))

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			var response httpserver.ErrorResponse
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Fields).To(HaveKey("Employees"))
		})

		It("should reply 409 when the name is taken", func() {
			mockService.EXPECT().
				CreateCompany(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(domain.Company{}, usecases.ErrCompanyNameConflict)

			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/v1/companies", strings.NewReader(`{"name":"Acme"}`)))

			Expect(recorder.Code).To(Equal(http.StatusConflict))
		})

		It("should reject a name longer than allowed", func() {
			body := `{"name":"` + strings.Repeat("a", 201) + `"}`
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/v1/companies", strings.NewReader(body)))

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Context("updateCompany", func() {
		It("should send an empty value set when none is submitted", func() {
			mockService.EXPECT().
				UpdateCompany(gomock.Any(), domain0.ID("company-1"), gomock.Any(), gomock.Len(0)).
				Return(company, nil)

			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPut, "/v1/companies/company-1", strings.NewReader(`{"name":"Acme"}`)))

			Expect(recorder.Code).To(Equal(http.StatusOK))
		})
	})

	Context("deleteCompany", func() {
		It("should reply 404 for an unknown company", func() {
			mockService.EXPECT().
				DeleteCompany(gomock.Any(), domain0.ID("missing")).
				Return(domain.DeletionMode(""), usecases.ErrCompanyNotFound)

			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/v1/companies/missing", nil))

			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})
	})

	Context("listCompanyContacts", func() {
		It("should delegate to the contact service", func() {
			mockContacts.EXPECT().
				ListContactsByCompany(gomock.Any(), domain0.ID("company-1")).
				Return([]domain.Contact{{ID: "contact-1", FirstName: "Jane", LastName: "Doe"}}, nil)

			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/companies/company-1/contacts", nil))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			var response []map[string]any
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response).To(HaveLen(1))
			Expect(response[0]["name"]).To(Equal("Jane Doe"))
		})
	})

	Context("listByCustomField", func() {
		It("should require a field id", func() {
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/companies/by-custom-field?value=Retail", nil))

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})

		It("should match the raw value", func() {
			mockService.EXPECT().
				ListCompaniesByCustomField(gomock.Any(), domain0.ID("field-1"), "Retail").
				Return([]domain.Company{company}, nil)

			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/companies/by-custom-field?field_id=field-1&value=Retail", nil))

			Expect(recorder.Code).To(Equal(http.StatusOK))
		})
	})

	Context("listRecentlyModified", func() {
		It("should default the count", func() {
			mockService.EXPECT().
				ListRecentlyModifiedCompanies(gomock.Any(), 10).
				Return([]domain.Company{}, nil)

			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/companies/recently-modified", nil))

			Expect(recorder.Code).To(Equal(http.StatusOK))
		})

		It("should forward an explicit count", func() {
			mockService.EXPECT().
				ListRecentlyModifiedCompanies(gomock.Any(), 3).
				Return([]domain.Company{company}, nil)

			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/companies/recently-modified?count=3", nil))

			Expect(recorder.Code).To(Equal(http.StatusOK))
		})
	})

	Context("restoreCompany", func() {
		It("should reply 404 when the company is not deleted", func() {
			mockService.EXPECT().
				RestoreCompany(gomock.Any(), domain0.ID("company-1")).
				Return(domain.Company{}, usecases.ErrCompanyNotFound)

			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/v1/companies/company-1/restore", nil))

			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})
	})
})
