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

var _ = ginkgo.Describe("CompanyRepository", func() {
	var (
		ctx       context.Context
		companies *persistence.SimpleCompanyRepository
		contacts  *persistence.SimpleContactRepository
		fields    *persistence.SimpleCustomFieldRepository
		industry  domain.CustomField
	)

	ginkgo.BeforeEach(func() {
		ctx = context.Background()

		orm, err := sql.NewMemoryORM()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		fields, err = persistence.NewCustomFieldRepository(orm)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		companies, err = persistence.NewCompanyRepository(orm)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		contacts, err = persistence.NewContactRepository(orm)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		industry = newField("Industry", domain.EntityTypeCompany, domain.ValueTypeText)
		gomega.Expect(fields.Create(ctx, industry)).To(gomega.Succeed())
	})

	ginkgo.Context("Create", func() {
		ginkgo.It("should store links and custom values", func() {
			contact := newContact("Grace", "Hopper", "grace@example.com")
			gomega.Expect(contacts.Create(ctx, contact, nil)).To(gomega.Succeed())

			company := newCompany("Acme", contact.ID)
			values := resolve(domain.EntityTypeCompany, company.ID, map[shareddomain.ID]string{industry.ID: "Retail"}, industry)
			gomega.Expect(companies.Create(ctx, company, values)).To(gomega.Succeed())

			stored, err := companies.GetByID(ctx, company.ID, shareddomain.ExcludeDeleted)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(stored.ContactIDs).To(gomega.ConsistOf(contact.ID))
			gomega.Expect(stored.Contacts).To(gomega.HaveLen(1))
			gomega.Expect(stored.Contacts[0].Email).To(gomega.Equal("grace@example.com"))
			gomega.Expect(stored.CustomFieldValues).To(gomega.HaveLen(1))
			gomega.Expect(stored.CustomFieldValues[0].CustomFieldName).To(gomega.Equal(shareddomain.Name("Industry")))
			gomega.Expect(*stored.CustomFieldValues[0].Value).To(gomega.Equal("Retail"))
		})

		ginkgo.It("should reject a duplicated name ignoring case", func() {
			gomega.Expect(companies.Create(ctx, newCompany("Acme"), nil)).To(gomega.Succeed())

			err := companies.Create(ctx, newCompany("ACME"), nil)
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrCompanyNameConflict))

			taken, err := companies.IsNameTaken(ctx, "acme", nil)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(taken).To(gomega.BeTrue())
		})
	})

	ginkgo.Context("Update", func() {
		ginkgo.It("should replace custom values", func() {
			size := newField("Size", domain.EntityTypeCompany, domain.ValueTypeNumber)
			gomega.Expect(fields.Create(ctx, size)).To(gomega.Succeed())

			company := newCompany("Acme")
			values := resolve(domain.EntityTypeCompany, company.ID,
				map[shareddomain.ID]string{industry.ID: "Retail", size.ID: "40"}, industry, size)
			gomega.Expect(companies.Create(ctx, company, values)).To(gomega.Succeed())

			replacement := resolve(domain.EntityTypeCompany, company.ID,
				map[shareddomain.ID]string{industry.ID: "Logistics"}, industry)
			gomega.Expect(companies.Update(ctx, company, replacement)).To(gomega.Succeed())

			stored, err := companies.GetByID(ctx, company.ID, shareddomain.ExcludeDeleted)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(stored.CustomFieldValues).To(gomega.HaveLen(1))
			gomega.Expect(stored.CustomFieldValues[0].CustomFieldID).To(gomega.Equal(industry.ID))
			gomega.Expect(*stored.CustomFieldValues[0].Value).To(gomega.Equal("Logistics"))
		})
	})

	ginkgo.Context("FindAll", func() {
		ginkgo.BeforeEach(func() {
			for _, name := range []string{"Beta Labs", "Alpha Works", "Gamma 100% Co"} {
				gomega.Expect(companies.Create(ctx, newCompany(name), nil)).To(gomega.Succeed())
			}
		})

		ginkgo.It("should page and sort by name", func() {
			query := domain.CompanyQuery{
				Pagination: domain.Pagination{Page: 1, Limit: 2},
				SortBy:     domain.CompanySortByName,
				Ascending:  true,
			}

			page, total, err := companies.FindAll(ctx, query)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(total).To(gomega.Equal(int64(3)))
			gomega.Expect(page).To(gomega.HaveLen(2))
			gomega.Expect(page[0].Name).To(gomega.Equal(shareddomain.Name("Alpha Works")))
			gomega.Expect(page[1].Name).To(gomega.Equal(shareddomain.Name("Beta Labs")))
		})

		ginkgo.It("should treat wildcard characters in the search term literally", func() {
			query := domain.CompanyQuery{Search: "100%", Ascending: true}

			page, total, err := companies.FindAll(ctx, query)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(total).To(gomega.Equal(int64(1)))
			gomega.Expect(page[0].Name).To(gomega.Equal(shareddomain.Name("Gamma 100% Co")))
		})
	})

	ginkgo.Context("Delete", func() {
		ginkgo.It("should remove the company with its values", func() {
			company := newCompany("Acme")
			values := resolve(domain.EntityTypeCompany, company.ID, map[shareddomain.ID]string{industry.ID: "Retail"}, industry)
			gomega.Expect(companies.Create(ctx, company, values)).To(gomega.Succeed())

			related, err := companies.HasRelatedData(ctx, company.ID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(related).To(gomega.BeTrue())

			gomega.Expect(companies.Delete(ctx, company.ID)).To(gomega.Succeed())

			inUse, err := fields.IsInUse(ctx, industry.ID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(inUse).To(gomega.BeFalse())

			_, err = companies.GetByID(ctx, company.ID, shareddomain.IncludeDeleted)
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrCompanyNotFound))
		})

		ginkgo.It("should keep a soft deleted company out of the default reads", func() {
			company := newCompany("Acme")
			gomega.Expect(companies.Create(ctx, company, nil)).To(gomega.Succeed())

			company.SoftDelete()
			gomega.Expect(companies.UpdateStatus(ctx, company)).To(gomega.Succeed())

			_, err := companies.GetByID(ctx, company.ID, shareddomain.ExcludeDeleted)
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrCompanyNotFound))

			existing, err := companies.ExistingIDs(ctx, []shareddomain.ID{company.ID})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(existing).To(gomega.BeEmpty())
		})
	})

	ginkgo.Context("FindByCustomFieldValue", func() {
		ginkgo.It("should match the exact stored value", func() {
			retail := newCompany("Acme")
			gomega.Expect(companies.Create(ctx, retail,
				resolve(domain.EntityTypeCompany, retail.ID, map[shareddomain.ID]string{industry.ID: "Retail"}, industry))).To(gomega.Succeed())
			other := newCompany("Globex")
			gomega.Expect(companies.Create(ctx, other,
				resolve(domain.EntityTypeCompany, other.ID, map[shareddomain.ID]string{industry.ID: "Energy"}, industry))).To(gomega.Succeed())

			found, err := companies.FindByCustomFieldValue(ctx, industry.ID, "Retail")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(found).To(gomega.HaveLen(1))
			gomega.Expect(found[0].ID).To(gomega.Equal(retail.ID))
		})
	})
})
