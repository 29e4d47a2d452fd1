package usecases_test

import (
	"context"
	"errors"

	"crm-server/internal/crm/domain"
	"crm-server/internal/crm/usecases"
	shareddomain "crm-server/internal/shared_kernel/domain"
	mockusecases "crm-server/test/unit/doubles/crm/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("CustomFieldService", func() {
	var (
		ctx            context.Context
		ctrl           *gomock.Controller
		mockRepository *mockusecases.MockCustomFieldRepository
		service        usecases.CustomFieldService
		field          domain.CustomField
	)

	BeforeEach(func() {
		ctx = context.Background()
		ctrl = gomock.NewController(GinkgoT())
		mockRepository = mockusecases.NewMockCustomFieldRepository(ctrl)
		service = usecases.NewCustomFieldService(mockRepository)

		var err error
		field, err = domain.NewCustomFieldBuilder().
			WithName("Industry").
			WithEntityType(domain.EntityTypeCompany).
			WithValueType(domain.ValueTypeText).
			Build()
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("CreateCustomField", func() {
		When("the name is free", func() {
			It("should persist the definition", func() {
				mockRepository.EXPECT().
					FindActiveByName(gomock.Any(), "Industry", domain.EntityTypeCompany).
					Return(domain.CustomField{}, usecases.ErrCustomFieldNotFound)
				mockRepository.EXPECT().Create(gomock.Any(), field).Return(nil)

				created, err := service.CreateCustomField(ctx, field)
				Expect(err).NotTo(HaveOccurred())
				Expect(created.ID).To(Equal(field.ID))
			})
		})

		When("another active definition holds the name", func() {
			It("should return a conflict without writing", func() {
				other := field
				other.ID = shareddomain.ID("other")
				mockRepository.EXPECT().
					FindActiveByName(gomock.Any(), "Industry", domain.EntityTypeCompany).
					Return(other, nil)

				_, err := service.CreateCustomField(ctx, field)
				Expect(err).To(MatchError(usecases.ErrConflict))
			})
		})

		When("the unique index rejects a concurrent insert", func() {
			It("should surface a conflict", func() {
				mockRepository.EXPECT().
					FindActiveByName(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(domain.CustomField{}, usecases.ErrCustomFieldNotFound)
				mockRepository.EXPECT().Create(gomock.Any(), field).Return(usecases.ErrCustomFieldConflict)

				_, err := service.CreateCustomField(ctx, field)
				Expect(err).To(MatchError(usecases.ErrCustomFieldConflict))
			})
		})

		When("a select field has no allowed values", func() {
			It("should fail validation before touching the repository", func() {
				field.ValueType = domain.ValueTypeSelect

				_, err := service.CreateCustomField(ctx, field)
				Expect(err).To(MatchError(domain.ErrValidation))
			})
		})

		When("a regex field carries an invalid pattern", func() {
			It("should fail validation", func() {
				pattern := "([a-z"
				field.ValueType = domain.ValueTypeRegex
				field.Constraints.ValidationRegex = &pattern

				_, err := service.CreateCustomField(ctx, field)
				Expect(err).To(MatchError(domain.ErrValidation))
			})
		})
	})

	Context("UpdateCustomField", func() {
		It("should keep the entity type immutable", func() {
			mockRepository.EXPECT().
				GetByID(gomock.Any(), field.ID, shareddomain.ExcludeDeleted).
				Return(field, nil)

			contact := domain.EntityTypeContact
			_, err := service.UpdateCustomField(ctx, field.ID, domain.CustomFieldUpdate{
				Name:       "Industry",
				EntityType: &contact,
			})
			Expect(err).To(MatchError(domain.ErrValidation))
		})

		It("should allow keeping its own name", func() {
			mockRepository.EXPECT().
				GetByID(gomock.Any(), field.ID, shareddomain.ExcludeDeleted).
				Return(field, nil)
			mockRepository.EXPECT().
				FindActiveByName(gomock.Any(), "Industry", domain.EntityTypeCompany).
				Return(field, nil)
			mockRepository.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

			updated, err := service.UpdateCustomField(ctx, field.ID, domain.CustomFieldUpdate{Name: "Industry", IsRequired: true})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.IsRequired).To(BeTrue())
			Expect(updated.UpdatedAt).NotTo(BeNil())
		})

		It("should report a missing field", func() {
			mockRepository.EXPECT().
				GetByID(gomock.Any(), field.ID, shareddomain.ExcludeDeleted).
				Return(domain.CustomField{}, usecases.ErrCustomFieldNotFound)

			_, err := service.UpdateCustomField(ctx, field.ID, domain.CustomFieldUpdate{Name: "Other"})
			Expect(err).To(MatchError(usecases.ErrNotFound))
		})
	})

	Context("DeleteCustomField", func() {
		BeforeEach(func() {
			mockRepository.EXPECT().
				GetByID(gomock.Any(), field.ID, shareddomain.IncludeDeleted).
				Return(field, nil)
		})

		When("no value references the field", func() {
			It("should hard delete", func() {
				mockRepository.EXPECT().IsInUse(gomock.Any(), field.ID).Return(false, nil)
				mockRepository.EXPECT().Delete(gomock.Any(), field.ID).Return(nil)

				mode, err := service.DeleteCustomField(ctx, field.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(mode).To(Equal(domain.DeletionModeHard))
			})
		})

		When("values reference the field", func() {
			It("should soft delete", func() {
				mockRepository.EXPECT().IsInUse(gomock.Any(), field.ID).Return(true, nil)
				mockRepository.EXPECT().
					Update(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, stored domain.CustomField) error {
						Expect(stored.IsDeleted()).To(BeTrue())
						Expect(stored.DeletedAt).NotTo(BeNil())
						return nil
					})

				mode, err := service.DeleteCustomField(ctx, field.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(mode).To(Equal(domain.DeletionModeSoft))
			})
		})

		When("a value appears while the hard delete runs", func() {
			It("should fall back to a soft delete", func() {
				mockRepository.EXPECT().IsInUse(gomock.Any(), field.ID).Return(false, nil)
				mockRepository.EXPECT().Delete(gomock.Any(), field.ID).Return(usecases.ErrCustomFieldInUse)
				mockRepository.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

				mode, err := service.DeleteCustomField(ctx, field.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(mode).To(Equal(domain.DeletionModeSoft))
			})
		})

		When("the usage check fails", func() {
			It("should return the error", func() {
				mockRepository.EXPECT().IsInUse(gomock.Any(), field.ID).Return(false, errors.New("boom"))

				_, err := service.DeleteCustomField(ctx, field.ID)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("checking custom field usage"))
			})
		})
	})

	Context("RestoreCustomField", func() {
		It("should refuse a field that is not deleted", func() {
			mockRepository.EXPECT().
				GetByID(gomock.Any(), field.ID, shareddomain.IncludeDeleted).
				Return(field, nil)

			_, err := service.RestoreCustomField(ctx, field.ID)
			Expect(err).To(MatchError(usecases.ErrCustomFieldNotFound))
		})

		It("should refuse when the name was reused meanwhile", func() {
			field.SoftDelete()
			other := field
			other.ID = shareddomain.ID("other")
			other.Status = shareddomain.RecordStatusActive

			mockRepository.EXPECT().
				GetByID(gomock.Any(), field.ID, shareddomain.IncludeDeleted).
				Return(field, nil)
			mockRepository.EXPECT().
				FindActiveByName(gomock.Any(), "Industry", domain.EntityTypeCompany).
				Return(other, nil)

			_, err := service.RestoreCustomField(ctx, field.ID)
			Expect(err).To(MatchError(usecases.ErrCustomFieldConflict))
		})
	})

	Context("GetCustomFieldUsage", func() {
		It("should return not found for an unknown field", func() {
			mockRepository.EXPECT().
				GetByID(gomock.Any(), field.ID, shareddomain.IncludeDeleted).
				Return(domain.CustomField{}, usecases.ErrCustomFieldNotFound)

			_, err := service.GetCustomFieldUsage(ctx, field.ID)
			Expect(err).To(MatchError(usecases.ErrCustomFieldNotFound))
		})

		It("should delegate the aggregation to the repository", func() {
			usage := domain.CustomFieldUsage{
				FieldID:           field.ID,
				TotalUsageCount:   3,
				ValueDistribution: map[string]int64{"A": 2, "B": 1},
			}
			mockRepository.EXPECT().
				GetByID(gomock.Any(), field.ID, shareddomain.IncludeDeleted).
				Return(field, nil)
			mockRepository.EXPECT().Usage(gomock.Any(), field).Return(usage, nil)

			result, err := service.GetCustomFieldUsage(ctx, field.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(Equal(usage))
		})
	})

	Context("ListCustomFieldsByType", func() {
		It("should reject an unknown entity type", func() {
			_, err := service.ListCustomFieldsByType(ctx, domain.EntityType("Invoice"))
			Expect(err).To(MatchError(domain.ErrValidation))
		})
	})
})
