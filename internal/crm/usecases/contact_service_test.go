package usecases_test

import (
	"context"

	"crm-server/internal/crm/domain"
	"crm-server/internal/crm/usecases"
	shareddomain "crm-server/internal/shared_kernel/domain"
	mockusecases "crm-server/test/unit/doubles/crm/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("ContactService", func() {
	var (
		ctx           context.Context
		ctrl          *gomock.Controller
		mockContacts  *mockusecases.MockContactRepository
		mockCompanies *mockusecases.MockCompanyRepository
		mockFields    *mockusecases.MockCustomFieldRepository
		service       usecases.ContactService
		contact       domain.Contact
		nickname      domain.CustomField
		birthday      domain.CustomField
	)

	BeforeEach(func() {
		ctx = context.Background()
		ctrl = gomock.NewController(GinkgoT())
		mockContacts = mockusecases.NewMockContactRepository(ctrl)
		mockCompanies = mockusecases.NewMockCompanyRepository(ctrl)
		mockFields = mockusecases.NewMockCustomFieldRepository(ctrl)
		service = usecases.NewContactService(mockContacts, mockCompanies, mockFields)

		var err error
		contact, err = domain.NewContactBuilder().
			WithName("Ada", "Lovelace").
			WithEmail("ada@example.com").
			Build()
		Expect(err).NotTo(HaveOccurred())

		nickname, err = domain.NewCustomFieldBuilder().
			WithName("Nickname").
			WithEntityType(domain.EntityTypeContact).
			WithValueType(domain.ValueTypeText).
			Build()
		Expect(err).NotTo(HaveOccurred())

		birthday, err = domain.NewCustomFieldBuilder().
			WithName("Birthday").
			WithEntityType(domain.EntityTypeContact).
			WithValueType(domain.ValueTypeDate).
			Build()
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	value := func(v string) *string { return &v }

	Context("CreateContact", func() {
		BeforeEach(func() {
			mockContacts.EXPECT().IsEmailTaken(gomock.Any(), "ada@example.com", nil).Return(false, nil)
		})

		It("should write the contact with its validated values", func() {
			mockFields.EXPECT().
				GetByIDs(gomock.Any(), gomock.Any()).
				Return([]domain.CustomField{nickname, birthday}, nil)
			mockContacts.EXPECT().
				Create(gomock.Any(), contact, gomock.Len(2)).
				Return(nil)
			mockContacts.EXPECT().
				GetByID(gomock.Any(), contact.ID, shareddomain.ExcludeDeleted).
				Return(contact, nil)

			_, err := service.CreateContact(ctx, contact, domain.CustomFieldValues{
				nickname.ID: value("Countess"),
				birthday.ID: value("1815-12-10"),
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should abort the whole write when one value is invalid", func() {
			mockFields.EXPECT().
				GetByIDs(gomock.Any(), gomock.Any()).
				Return([]domain.CustomField{nickname, birthday}, nil)

			_, err := service.CreateContact(ctx, contact, domain.CustomFieldValues{
				nickname.ID: value("Countess"),
				birthday.ID: value("not a date"),
			})
			Expect(err).To(MatchError(domain.ErrValidation))
		})

		It("should reject an unknown custom field id", func() {
			mockFields.EXPECT().
				GetByIDs(gomock.Any(), gomock.Any()).
				Return([]domain.CustomField{}, nil)

			_, err := service.CreateContact(ctx, contact, domain.CustomFieldValues{
				shareddomain.ID("missing"): value("x"),
			})
			Expect(err).To(MatchError(domain.ErrValidation))
			Expect(err.Error()).To(ContainSubstring("invalid custom field id 'missing'"))
		})

		It("should reject a field defined for companies", func() {
			industry := nickname
			industry.ID = shareddomain.ID("industry")
			industry.EntityType = domain.EntityTypeCompany
			mockFields.EXPECT().
				GetByIDs(gomock.Any(), gomock.Any()).
				Return([]domain.CustomField{industry}, nil)

			_, err := service.CreateContact(ctx, contact, domain.CustomFieldValues{industry.ID: value("Retail")})
			Expect(err).To(MatchError(domain.ErrValidation))
		})
	})

	Context("CreateContact with a taken email", func() {
		It("should return a conflict", func() {
			mockContacts.EXPECT().IsEmailTaken(gomock.Any(), "ada@example.com", nil).Return(true, nil)

			_, err := service.CreateContact(ctx, contact, nil)
			Expect(err).To(MatchError(usecases.ErrContactEmailConflict))
		})
	})

	Context("UpdateContact", func() {
		It("should pass only the submitted values so omitted ones are cleared", func() {
			mockContacts.EXPECT().
				GetByID(gomock.Any(), contact.ID, shareddomain.ExcludeDeleted).
				Return(contact, nil).
				Times(2)
			mockContacts.EXPECT().IsEmailTaken(gomock.Any(), "ada@example.com", &contact.ID).Return(false, nil)
			mockFields.EXPECT().
				GetByIDs(gomock.Any(), []shareddomain.ID{nickname.ID}).
				Return([]domain.CustomField{nickname}, nil)
			mockContacts.EXPECT().
				Update(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ domain.Contact, values []domain.CustomFieldValue) error {
					Expect(values).To(HaveLen(1))
					Expect(values[0].CustomFieldID).To(Equal(nickname.ID))
					return nil
				})

			_, err := service.UpdateContact(ctx, contact.ID, domain.ContactUpdate{
				FirstName: "Ada",
				LastName:  "Lovelace",
				Email:     "ada@example.com",
			}, domain.CustomFieldValues{nickname.ID: value("x")})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should reject unknown companies", func() {
			mockContacts.EXPECT().
				GetByID(gomock.Any(), contact.ID, shareddomain.ExcludeDeleted).
				Return(contact, nil)
			mockContacts.EXPECT().IsEmailTaken(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
			mockCompanies.EXPECT().
				ExistingIDs(gomock.Any(), []shareddomain.ID{"c-1"}).
				Return([]shareddomain.ID{}, nil)

			_, err := service.UpdateContact(ctx, contact.ID, domain.ContactUpdate{
				FirstName:  "Ada",
				LastName:   "Lovelace",
				Email:      "ada@example.com",
				CompanyIDs: []shareddomain.ID{"c-1"},
			}, nil)
			Expect(err).To(MatchError(domain.ErrValidation))
		})
	})

	Context("DeleteContact", func() {
		It("should refuse to delete a primary contact", func() {
			contact.IsPrimary = true
			mockContacts.EXPECT().
				GetByID(gomock.Any(), contact.ID, shareddomain.ExcludeDeleted).
				Return(contact, nil)

			err := service.DeleteContact(ctx, contact.ID)
			Expect(err).To(MatchError(usecases.ErrPrimaryContactDeletion))
		})

		It("should soft delete other contacts", func() {
			mockContacts.EXPECT().
				GetByID(gomock.Any(), contact.ID, shareddomain.ExcludeDeleted).
				Return(contact, nil)
			mockContacts.EXPECT().
				UpdateStatus(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, stored domain.Contact) error {
					Expect(stored.IsDeleted()).To(BeTrue())
					return nil
				})

			Expect(service.DeleteContact(ctx, contact.ID)).To(Succeed())
		})
	})

	Context("RestoreContact", func() {
		It("should reactivate a soft deleted contact", func() {
			contact.SoftDelete()
			mockContacts.EXPECT().
				GetByID(gomock.Any(), contact.ID, shareddomain.IncludeDeleted).
				Return(contact, nil)
			mockContacts.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).Return(nil)

			restored, err := service.RestoreContact(ctx, contact.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(restored.IsDeleted()).To(BeFalse())
			Expect(restored.DeletedAt).To(BeNil())
		})
	})

	Context("SearchContacts", func() {
		It("should resolve filters by field name", func() {
			mockFields.EXPECT().
				FindActiveByNames(gomock.Any(), []string{"nickname"}, domain.EntityTypeContact).
				Return([]domain.CustomField{nickname}, nil)
			mockContacts.EXPECT().
				Search(gomock.Any(), "ada", map[shareddomain.ID]string{nickname.ID: "count"}, gomock.Any()).
				Return([]domain.Contact{contact}, int64(1), nil)

			page, err := service.SearchContacts(ctx, domain.ContactSearch{
				Term:               " ada ",
				CustomFieldFilters: map[string]string{"nickname": "count"},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Total).To(Equal(int64(1)))
			Expect(page.Pagination.Limit).To(Equal(domain.DefaultPageSize))
		})

		It("should return an empty page for an unknown field name", func() {
			mockFields.EXPECT().
				FindActiveByNames(gomock.Any(), []string{"shoe size"}, domain.EntityTypeContact).
				Return([]domain.CustomField{}, nil)

			page, err := service.SearchContacts(ctx, domain.ContactSearch{
				CustomFieldFilters: map[string]string{"shoe size": "42"},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Items).To(BeEmpty())
			Expect(page.Total).To(BeZero())
		})
	})

	Context("ListContactsByCompany", func() {
		It("should report a missing company", func() {
			mockCompanies.EXPECT().
				ExistingIDs(gomock.Any(), []shareddomain.ID{"c-1"}).
				Return([]shareddomain.ID{}, nil)

			_, err := service.ListContactsByCompany(ctx, "c-1")
			Expect(err).To(MatchError(usecases.ErrCompanyNotFound))
		})
	})

	Context("IsEmailAvailable", func() {
		It("should require an email", func() {
			_, err := service.IsEmailAvailable(ctx, " ", nil)
			Expect(err).To(MatchError(domain.ErrValidation))
		})
	})
})
