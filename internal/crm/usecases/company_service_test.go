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

var _ = Describe("CompanyService", func() {
	var (
		ctx           context.Context
		ctrl          *gomock.Controller
		mockCompanies *mockusecases.MockCompanyRepository
		mockContacts  *mockusecases.MockContactRepository
		mockFields    *mockusecases.MockCustomFieldRepository
		service       usecases.CompanyService
		company       domain.Company
	)

	BeforeEach(func() {
		ctx = context.Background()
		ctrl = gomock.NewController(GinkgoT())
		mockCompanies = mockusecases.NewMockCompanyRepository(ctrl)
		mockContacts = mockusecases.NewMockContactRepository(ctrl)
		mockFields = mockusecases.NewMockCustomFieldRepository(ctrl)
		service = usecases.NewCompanyService(mockCompanies, mockContacts, mockFields)

		var err error
		company, err = domain.NewCompanyBuilder().WithName("Acme").Build()
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("CreateCompany", func() {
		It("should reject a taken name", func() {
			mockCompanies.EXPECT().IsNameTaken(gomock.Any(), "Acme", nil).Return(true, nil)

			_, err := service.CreateCompany(ctx, company, nil)
			Expect(err).To(MatchError(usecases.ErrCompanyNameConflict))
		})

		It("should reject unknown contacts", func() {
			company.ContactIDs = []shareddomain.ID{"p-1", "p-2"}
			mockCompanies.EXPECT().IsNameTaken(gomock.Any(), "Acme", nil).Return(false, nil)
			mockContacts.EXPECT().
				ExistingIDs(gomock.Any(), company.ContactIDs).
				Return([]shareddomain.ID{"p-1"}, nil)

			_, err := service.CreateCompany(ctx, company, nil)
			Expect(err).To(MatchError(domain.ErrValidation))
			Expect(err.Error()).To(ContainSubstring("p-2"))
		})

		It("should read the stored company back", func() {
			mockCompanies.EXPECT().IsNameTaken(gomock.Any(), "Acme", nil).Return(false, nil)
			mockCompanies.EXPECT().Create(gomock.Any(), company, gomock.Len(0)).Return(nil)
			mockCompanies.EXPECT().
				GetByID(gomock.Any(), company.ID, shareddomain.ExcludeDeleted).
				Return(company, nil)

			created, err := service.CreateCompany(ctx, company, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(created.ID).To(Equal(company.ID))
		})
	})

	Context("DeleteCompany", func() {
		BeforeEach(func() {
			mockCompanies.EXPECT().
				GetByID(gomock.Any(), company.ID, shareddomain.ExcludeDeleted).
				Return(company, nil)
		})

		It("should soft delete a company with related data", func() {
			mockCompanies.EXPECT().HasRelatedData(gomock.Any(), company.ID).Return(true, nil)
			mockCompanies.EXPECT().
				UpdateStatus(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, stored domain.Company) error {
					Expect(stored.IsDeleted()).To(BeTrue())
					return nil
				})

			mode, err := service.DeleteCompany(ctx, company.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(mode).To(Equal(domain.DeletionModeSoft))
		})

		It("should hard delete a bare company", func() {
			mockCompanies.EXPECT().HasRelatedData(gomock.Any(), company.ID).Return(false, nil)
			mockCompanies.EXPECT().Delete(gomock.Any(), company.ID).Return(nil)

			mode, err := service.DeleteCompany(ctx, company.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(mode).To(Equal(domain.DeletionModeHard))
		})
	})

	Context("RestoreCompany", func() {
		It("should report not found for an active company", func() {
			mockCompanies.EXPECT().
				GetByID(gomock.Any(), company.ID, shareddomain.IncludeDeleted).
				Return(company, nil)

			_, err := service.RestoreCompany(ctx, company.ID)
			Expect(err).To(MatchError(usecases.ErrCompanyNotFound))
		})
	})

	Context("ListRecentlyModifiedCompanies", func() {
		It("should clamp the requested count", func() {
			mockCompanies.EXPECT().FindRecentlyModified(gomock.Any(), domain.MaxPageSize).Return([]domain.Company{}, nil)
			_, err := service.ListRecentlyModifiedCompanies(ctx, 5000)
			Expect(err).NotTo(HaveOccurred())

			mockCompanies.EXPECT().FindRecentlyModified(gomock.Any(), 10).Return([]domain.Company{}, nil)
			_, err = service.ListRecentlyModifiedCompanies(ctx, 0)
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Context("ListCompanies", func() {
		It("should normalize the pagination", func() {
			mockCompanies.EXPECT().
				FindAll(gomock.Any(), domain.CompanyQuery{Pagination: domain.Pagination{Page: 1, Limit: domain.DefaultPageSize}}).
				Return([]domain.Company{company}, int64(1), nil)

			page, err := service.ListCompanies(ctx, domain.CompanyQuery{})
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Items).To(HaveLen(1))
			Expect(page.TotalPages()).To(Equal(1))
		})
	})
})
