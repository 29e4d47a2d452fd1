package persistence_test

import (
	"context"

	"crm-server/internal/crm/domain"
	"crm-server/internal/crm/persistence"
	"crm-server/internal/crm/usecases"
	"crm-server/internal/infra/sql"
	shareddomain "crm-server/internal/shared_kernel/domain"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("CustomFieldRepository", func() {
	var (
		ctx      context.Context
		fields   *persistence.SimpleCustomFieldRepository
		contacts *persistence.SimpleContactRepository
	)

	ginkgo.BeforeEach(func() {
		ctx = context.Background()

		orm, err := sql.NewMemoryORM()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		fields, err = persistence.NewCustomFieldRepository(orm)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		contacts, err = persistence.NewContactRepository(orm)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
	})

	ginkgo.Context("Create", func() {
		ginkgo.It("should round trip constraints", func() {
			field, err := domain.NewCustomFieldBuilder().
				WithName("Tier").
				WithEntityType(domain.EntityTypeCompany).
				WithValueType(domain.ValueTypeSelect).
				WithConstraints(domain.Constraints{AllowedValues: []string{"gold", "silver"}}).
				Build()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			gomega.Expect(fields.Create(ctx, field)).To(gomega.Succeed())

			stored, err := fields.GetByID(ctx, field.ID, shareddomain.ExcludeDeleted)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(stored.Name).To(gomega.Equal(shareddomain.Name("Tier")))
			gomega.Expect(stored.ValueType).To(gomega.Equal(domain.ValueTypeSelect))
			gomega.Expect(stored.Constraints.AllowedValues).To(gomega.Equal([]string{"gold", "silver"}))
			gomega.Expect(stored.UpdatedAt).To(gomega.BeNil())
		})

		ginkgo.It("should reject a second active field with the same name and entity type", func() {
			gomega.Expect(fields.Create(ctx, newField("Region", domain.EntityTypeContact, domain.ValueTypeText))).To(gomega.Succeed())

			err := fields.Create(ctx, newField("region", domain.EntityTypeContact, domain.ValueTypeText))
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrCustomFieldConflict))
		})

		ginkgo.It("should accept the same name for another entity type", func() {
			gomega.Expect(fields.Create(ctx, newField("Region", domain.EntityTypeContact, domain.ValueTypeText))).To(gomega.Succeed())
			gomega.Expect(fields.Create(ctx, newField("Region", domain.EntityTypeCompany, domain.ValueTypeText))).To(gomega.Succeed())
		})

		ginkgo.It("should allow reusing the name once the previous field is soft deleted", func() {
			first := newField("Region", domain.EntityTypeContact, domain.ValueTypeText)
			gomega.Expect(fields.Create(ctx, first)).To(gomega.Succeed())

			first.SoftDelete()
			gomega.Expect(fields.Update(ctx, first)).To(gomega.Succeed())

			gomega.Expect(fields.Create(ctx, newField("Region", domain.EntityTypeContact, domain.ValueTypeText))).To(gomega.Succeed())
		})
	})

	ginkgo.Context("GetByID", func() {
		ginkgo.It("should hide soft deleted fields unless asked for", func() {
			field := newField("Hidden", domain.EntityTypeCompany, domain.ValueTypeText)
			gomega.Expect(fields.Create(ctx, field)).To(gomega.Succeed())

			field.SoftDelete()
			gomega.Expect(fields.Update(ctx, field)).To(gomega.Succeed())

			_, err := fields.GetByID(ctx, field.ID, shareddomain.ExcludeDeleted)
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrCustomFieldNotFound))

			stored, err := fields.GetByID(ctx, field.ID, shareddomain.IncludeDeleted)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(stored.IsDeleted()).To(gomega.BeTrue())
			gomega.Expect(stored.DeletedAt).NotTo(gomega.BeNil())
		})

		ginkgo.It("should return not found for an unknown id", func() {
			_, err := fields.GetByID(ctx, shareddomain.ID("missing"), shareddomain.IncludeDeleted)
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrCustomFieldNotFound))
		})
	})

	ginkgo.Context("FindAll", func() {
		ginkgo.It("should filter by entity type and deleted state", func() {
			company := newField("Industry", domain.EntityTypeCompany, domain.ValueTypeText)
			contact := newField("Nickname", domain.EntityTypeContact, domain.ValueTypeText)
			deleted := newField("Legacy", domain.EntityTypeContact, domain.ValueTypeText)
			for _, f := range []domain.CustomField{company, contact, deleted} {
				gomega.Expect(fields.Create(ctx, f)).To(gomega.Succeed())
			}
			deleted.SoftDelete()
			gomega.Expect(fields.Update(ctx, deleted)).To(gomega.Succeed())

			contactType := domain.EntityTypeContact
			active, err := fields.FindAll(ctx, &contactType, shareddomain.ExcludeDeleted)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(active).To(gomega.HaveLen(1))
			gomega.Expect(active[0].ID).To(gomega.Equal(contact.ID))

			all, err := fields.FindAll(ctx, nil, shareddomain.IncludeDeleted)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(all).To(gomega.HaveLen(3))
		})
	})

	ginkgo.Context("Delete", func() {
		ginkgo.It("should remove an unused field", func() {
			field := newField("Unused", domain.EntityTypeContact, domain.ValueTypeText)
			gomega.Expect(fields.Create(ctx, field)).To(gomega.Succeed())

			gomega.Expect(fields.Delete(ctx, field.ID)).To(gomega.Succeed())

			_, err := fields.GetByID(ctx, field.ID, shareddomain.IncludeDeleted)
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrCustomFieldNotFound))
		})

		ginkgo.It("should refuse to remove a field holding values", func() {
			field := newField("Nickname", domain.EntityTypeContact, domain.ValueTypeText)
			gomega.Expect(fields.Create(ctx, field)).To(gomega.Succeed())

			contact := newContact("Ada", "Lovelace", "ada@example.com")
			values := resolve(domain.EntityTypeContact, contact.ID, map[shareddomain.ID]string{field.ID: "Countess"}, field)
			gomega.Expect(contacts.Create(ctx, contact, values)).To(gomega.Succeed())

			inUse, err := fields.IsInUse(ctx, field.ID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(inUse).To(gomega.BeTrue())

			err = fields.Delete(ctx, field.ID)
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrCustomFieldInUse))
		})

		ginkgo.It("should report not found for an unknown id", func() {
			err := fields.Delete(ctx, shareddomain.ID("missing"))
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrCustomFieldNotFound))
		})
	})

	ginkgo.Context("Usage", func() {
		ginkgo.It("should count values and their distribution", func() {
			field := newField("Segment", domain.EntityTypeContact, domain.ValueTypeText)
			gomega.Expect(fields.Create(ctx, field)).To(gomega.Succeed())

			for i, v := range []string{"A", "A", "B"} {
				contact := newContact("User", string(rune('a'+i)), string(rune('a'+i))+"@example.com")
				values := resolve(domain.EntityTypeContact, contact.ID, map[shareddomain.ID]string{field.ID: v}, field)
				gomega.Expect(contacts.Create(ctx, contact, values)).To(gomega.Succeed())
			}

			usage, err := fields.Usage(ctx, field)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(usage.TotalUsageCount).To(gomega.Equal(int64(3)))
			gomega.Expect(usage.ValueDistribution).To(gomega.Equal(map[string]int64{"A": 2, "B": 1}))
			gomega.Expect(usage.LastUsed).To(gomega.Equal(field.CreatedAt))
			gomega.Expect(usage.LastValueWrittenAt).NotTo(gomega.BeNil())
		})

		ginkgo.It("should report an empty distribution for an unused field", func() {
			field := newField("Empty", domain.EntityTypeCompany, domain.ValueTypeText)
			gomega.Expect(fields.Create(ctx, field)).To(gomega.Succeed())

			usage, err := fields.Usage(ctx, field)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(usage.TotalUsageCount).To(gomega.BeZero())
			gomega.Expect(usage.ValueDistribution).To(gomega.BeEmpty())
			gomega.Expect(usage.LastValueWrittenAt).To(gomega.BeNil())
		})
	})

	ginkgo.Context("FindActiveByNames", func() {
		ginkgo.It("should match names case insensitively", func() {
			field := newField("Favourite Colour", domain.EntityTypeContact, domain.ValueTypeText)
			gomega.Expect(fields.Create(ctx, field)).To(gomega.Succeed())

			found, err := fields.FindActiveByNames(ctx, []string{"favourite colour"}, domain.EntityTypeContact)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(found).To(gomega.HaveLen(1))

			exists, err := fields.Exists(ctx, field.ID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(exists).To(gomega.BeTrue())
		})
	})
})
