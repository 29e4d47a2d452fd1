package utils_test

import (
	"crm-server/internal/infra/utils"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("Email", func() {
	ginkgo.DescribeTable("IsValidEmail",
		func(email string, expected bool) {
			gomega.Expect(utils.IsValidEmail(email)).To(gomega.Equal(expected))
		},
		ginkgo.Entry("plain address", "jane@acme.com", true),
		ginkgo.Entry("subdomain and tag", "jane+crm@mail.acme.co", true),
		ginkgo.Entry("empty", "", false),
		ginkgo.Entry("blank", "   ", false),
		ginkgo.Entry("missing domain", "jane@", false),
		ginkgo.Entry("two addresses", "a@acme.com,b@acme.com", false),
	)

	ginkgo.It("should normalize keys for case insensitive uniqueness", func() {
		gomega.Expect(utils.NormalizeKey("  ACME Corp ")).To(gomega.Equal("acme corp"))
	})
})

var _ = ginkgo.Describe("ValidateStruct", func() {
	type request struct {
		Name  string `json:"name" validate:"required,max=5"`
		Email string `json:"email" validate:"omitempty,email"`
	}

	ginkgo.It("should accept a valid struct", func() {
		gomega.Expect(utils.ValidateStruct(request{Name: "acme"})).To(gomega.Succeed())
	})

	ginkgo.It("should name the json field that failed", func() {
		err := utils.ValidateStruct(request{Name: "toolong"})
		var fieldErr *utils.FieldError
		gomega.Expect(err).To(gomega.BeAssignableToTypeOf(fieldErr))
		fieldErr = err.(*utils.FieldError)
		gomega.Expect(fieldErr.Field).To(gomega.Equal("name"))
		gomega.Expect(fieldErr.Reason).To(gomega.Equal("must be at most 5 characters"))
	})

	ginkgo.It("should reject a malformed email", func() {
		err := utils.ValidateStruct(request{Name: "acme", Email: "nope"})
		gomega.Expect(err).To(gomega.MatchError("email: must be a valid email address"))
	})
})

var _ = ginkgo.Describe("Collections", func() {
	ginkgo.It("should keep the first occurrence of duplicates", func() {
		gomega.Expect(utils.Unique([]string{"b", "a", "b", "c", "a"})).To(gomega.Equal([]string{"b", "a", "c"}))
	})

	ginkgo.It("should map items preserving order", func() {
		gomega.Expect(utils.Map([]int{1, 2, 3}, func(i int) int { return i * 2 })).To(gomega.Equal([]int{2, 4, 6}))
	})
})
