package domain_test

import (
	domain0 "crm-server/internal/shared_kernel/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("DeletedFilter", func() {
	It("should hide soft deleted records by default", func() {
		filter := domain0.DeletedFilterFrom(false)

		Expect(filter).To(Equal(domain0.ExcludeDeleted))
		Expect(filter.Includes(domain0.RecordStatusActive)).To(BeTrue())
		Expect(filter.Includes(domain0.RecordStatusSoftDeleted)).To(BeFalse())
	})

	It("should include soft deleted records when asked", func() {
		filter := domain0.DeletedFilterFrom(true)

		Expect(filter).To(Equal(domain0.IncludeDeleted))
		Expect(filter.Includes(domain0.RecordStatusSoftDeleted)).To(BeTrue())
	})
})
