package domain_test

import (
	"errors"

	"crm-server/internal/crm/domain"
	"crm-server/internal/infra/utils"
	shareddomain "crm-server/internal/shared_kernel/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("CustomField", func() {
	Context("builder", func() {
		It("should assign identity and defaults", func() {
			f, err := domain.NewCustomFieldBuilder().
				WithName("  Industry  ").
				WithEntityType(domain.EntityTypeCompany).
				WithValueType(domain.ValueTypeText).
				Build()

			Expect(err).NotTo(HaveOccurred())
			Expect(f.ID).NotTo(BeEmpty())
			Expect(f.Name).To(Equal(shareddomain.Name("Industry")))
			Expect(f.IsActive).To(BeTrue())
			Expect(f.Status).To(Equal(shareddomain.RecordStatusActive))
			Expect(f.UpdatedAt).To(BeNil())
			Expect(f.LastUsed()).To(Equal(f.CreatedAt))
		})

		It("should fail when the definition is invalid", func() {
			_, err := domain.NewCustomFieldBuilder().
				WithName("Tier").
				WithEntityType(domain.EntityTypeCompany).
				WithValueType(domain.ValueTypeSelect).
				Build()

			Expect(errors.Is(err, domain.ErrValidation)).To(BeTrue())
		})
	})

	Context("lifecycle", func() {
		var f domain.CustomField

		BeforeEach(func() {
			var err error
			f, err = domain.NewCustomFieldBuilder().
				WithName("Tier").
				WithEntityType(domain.EntityTypeContact).
				WithValueType(domain.ValueTypeText).
				Build()
			Expect(err).NotTo(HaveOccurred())
		})

		It("should soft delete and restore", func() {
			f.SoftDelete()
			Expect(f.IsDeleted()).To(BeTrue())
			Expect(f.DeletedAt).NotTo(BeNil())
			Expect(f.IsAttachable(domain.EntityTypeContact)).To(BeFalse())

			f.Restore()
			Expect(f.IsDeleted()).To(BeFalse())
			Expect(f.DeletedAt).To(BeNil())
			Expect(f.LastUsed()).To(Equal(*f.UpdatedAt))
		})

		It("should only be attachable to its own entity type while active", func() {
			Expect(f.IsAttachable(domain.EntityTypeContact)).To(BeTrue())
			Expect(f.IsAttachable(domain.EntityTypeCompany)).To(BeFalse())

			f.IsActive = false
			Expect(f.IsAttachable(domain.EntityTypeContact)).To(BeFalse())
		})

		It("should refuse to change the entity or value type", func() {
			company := domain.EntityTypeCompany
			err := f.Apply(domain.CustomFieldUpdate{Name: "Tier", EntityType: &company})
			Expect(err).To(MatchError("entity_type: cannot be changed"))

			number := domain.ValueTypeNumber
			err = f.Apply(domain.CustomFieldUpdate{Name: "Tier", ValueType: &number})
			Expect(err).To(MatchError("value_type: cannot be changed"))
		})

		It("should apply mutable attributes", func() {
			err := f.Apply(domain.CustomFieldUpdate{
				Name:        " Level ",
				Description: utils.Ptr("customer level"),
				IsRequired:  true,
				IsActive:    utils.Ptr(false),
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(f.Name).To(Equal(shareddomain.Name("Level")))
			Expect(*f.Description).To(Equal("customer level"))
			Expect(f.IsRequired).To(BeTrue())
			Expect(f.IsActive).To(BeFalse())
			Expect(f.UpdatedAt).NotTo(BeNil())
		})
	})

	Context("parsing", func() {
		It("should parse entity types in any case", func() {
			Expect(domain.ParseEntityType("company")).To(Equal(domain.EntityTypeCompany))
			Expect(domain.ParseEntityType("CONTACT")).To(Equal(domain.EntityTypeContact))
			_, err := domain.ParseEntityType("invoice")
			Expect(errors.Is(err, domain.ErrValidation)).To(BeTrue())
		})

		It("should parse value types in snake and pascal case", func() {
			Expect(domain.ParseValueType("multi_select")).To(Equal(domain.ValueTypeMultiSelect))
			Expect(domain.ParseValueType("MultilineText")).To(Equal(domain.ValueTypeMultilineText))
			_, err := domain.ParseValueType("color")
			Expect(err).To(HaveOccurred())
		})
	})
})

var _ = Describe("ResolveValues", func() {
	var definitions map[shareddomain.ID]domain.CustomField

	BeforeEach(func() {
		employees := field(domain.ValueTypeNumber, false)
		employees.ID = "employees"
		employees.EntityType = domain.EntityTypeCompany
		birthday := field(domain.ValueTypeDate, false)
		birthday.ID = "birthday"
		removed := field(domain.ValueTypeText, false)
		removed.ID = "removed"
		removed.EntityType = domain.EntityTypeCompany
		removed.SoftDelete()

		definitions = map[shareddomain.ID]domain.CustomField{
			employees.ID: employees,
			birthday.ID:  birthday,
			removed.ID:   removed,
		}
	})

	It("should build one row per entry", func() {
		values, err := domain.ResolveValues(domain.EntityTypeCompany, "acme", domain.CustomFieldValues{"employees": utils.Ptr("12")}, definitions)

		Expect(err).NotTo(HaveOccurred())
		Expect(values).To(HaveLen(1))
		Expect(values[0].OwnerID).To(Equal(shareddomain.ID("acme")))
		Expect(*values[0].Value).To(Equal("12"))
	})

	It("should reject fields that target another entity type", func() {
		_, err := domain.ResolveValues(domain.EntityTypeCompany, "acme", domain.CustomFieldValues{"birthday": utils.Ptr("2020-01-01")}, definitions)
		Expect(err).To(MatchError(ContainSubstring("invalid custom field id")))
	})

	It("should reject unknown and soft deleted fields", func() {
		_, err := domain.ResolveValues(domain.EntityTypeCompany, "acme", domain.CustomFieldValues{"missing": utils.Ptr("x")}, definitions)
		Expect(errors.Is(err, domain.ErrValidation)).To(BeTrue())

		_, err = domain.ResolveValues(domain.EntityTypeCompany, "acme", domain.CustomFieldValues{"removed": utils.Ptr("x")}, definitions)
		Expect(errors.Is(err, domain.ErrValidation)).To(BeTrue())
	})

	It("should fail as a whole when a single value is invalid", func() {
		values, err := domain.ResolveValues(domain.EntityTypeCompany, "acme", domain.CustomFieldValues{"employees": utils.Ptr("many")}, definitions)
		Expect(err).To(HaveOccurred())
		Expect(values).To(BeNil())
	})

	It("should accept a nil value for an optional field", func() {
		values, err := domain.ResolveValues(domain.EntityTypeCompany, "acme", domain.CustomFieldValues{"employees": nil}, definitions)
		Expect(err).NotTo(HaveOccurred())
		Expect(values[0].Value).To(BeNil())
	})
})
