package internal_test

import (
	"encoding/json"
	"errors"
	"time"

	"crm-server/internal/crm/domain"
	"crm-server/internal/crm/httpapi/internal"
	"crm-server/internal/infra/utils"
	domain0 "crm-server/internal/shared_kernel/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Conversions", func() {
	Context("ToCustomField", func() {
		It("should build an active definition with a generated id", func() {
			field, err := internal.ToCustomField(internal.CustomFieldCreateRequest{
				Name:       "Tier",
				EntityType: "contact",
				ValueType:  "MultiSelect",
				ConstraintsRequest: internal.ConstraintsRequest{
					AllowedValues: []string{"gold", "silver"},
				},
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(field.ID).NotTo(BeEmpty())
			Expect(field.IsActive).To(BeTrue())
			Expect(field.EntityType).To(Equal(domain.EntityTypeContact))
			Expect(field.ValueType).To(Equal(domain.ValueTypeMultiSelect))
		})

		It("should honor an explicit inactive flag", func() {
			field, err := internal.ToCustomField(internal.CustomFieldCreateRequest{
				Name:       "Notes",
				EntityType: "Company",
				ValueType:  "multiline_text",
				IsActive:   utils.Ptr(false),
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(field.IsActive).To(BeFalse())
		})

		It("should reject an unknown value type", func() {
			_, err := internal.ToCustomField(internal.CustomFieldCreateRequest{
				Name:       "Color",
				EntityType: "Company",
				ValueType:  "colour",
			})

			Expect(errors.Is(err, domain.ErrValidation)).To(BeTrue())
		})
	})

	Context("ToCustomFieldUpdate", func() {
		It("should leave immutable attributes unset when omitted", func() {
			update, err := internal.ToCustomFieldUpdate(internal.CustomFieldUpdateRequest{Name: "Tier"})

			Expect(err).NotTo(HaveOccurred())
			Expect(update.EntityType).To(BeNil())
			Expect(update.ValueType).To(BeNil())
		})
	})

	Context("ToCustomFieldValues", func() {
		It("should keep null values so they can clear optional fields", func() {
			values := internal.ToCustomFieldValues(map[string]*string{"a": utils.StringPtr("1"), "b": nil})

			Expect(values).To(HaveLen(2))
			Expect(values[domain0.ID("b")]).To(BeNil())
		})
	})

	Context("ToCompanyResponse", func() {
		It("should render empty relations as empty arrays", func() {
			response := internal.ToCompanyResponse(domain.Company{ID: "c-1", Name: "Acme", CreatedAt: time.Now()})

			raw, err := json.Marshal(response)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(raw)).To(ContainSubstring(`"contacts":[]`))
			Expect(string(raw)).To(ContainSubstring(`"custom_field_values":[]`))
			Expect(string(raw)).NotTo(ContainSubstring(`"deleted_at"`))
		})
	})

	Context("ToContactStatisticsResponse", func() {
		It("should copy every counter", func() {
			created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
			response := internal.ToContactStatisticsResponse(domain.ContactStatistics{
				Total:              4,
				Active:             2,
				Inactive:           1,
				Primary:            1,
				Deleted:            1,
				WithCompany:        3,
				WithoutCompany:     1,
				LastContactCreated: &created,
			})

			Expect(response.TotalContacts).To(Equal(int64(4)))
			Expect(response.ContactsWithoutCompany).To(Equal(int64(1)))
			Expect(response.LastContactCreated.Time).To(Equal(created))
			Expect(response.LastContactUpdated).To(BeNil())
		})
	})

	Context("ParseOptionalID", func() {
		It("should return nil for blank input", func() {
			Expect(internal.ParseOptionalID("")).To(BeNil())
			Expect(*internal.ParseOptionalID("x")).To(Equal(domain0.ID("x")))
		})
	})
})
