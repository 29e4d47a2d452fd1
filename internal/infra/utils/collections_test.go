package utils_test

import (
	"encoding/json"
	"strings"
	"time"

	"crm-server/internal/infra/utils"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("Collections", func() {
	ginkgo.It("should map into an empty slice rather than nil", func() {
		result := utils.Map([]string(nil), strings.ToUpper)

		gomega.Expect(result).ToNot(gomega.BeNil())
		gomega.Expect(result).To(gomega.BeEmpty())
	})

	ginkgo.It("should keep the first occurrence when removing duplicates", func() {
		gomega.Expect(utils.Unique([]string{"b", "a", "b", "c", "a"})).To(gomega.Equal([]string{"b", "a", "c"}))
	})

	ginkgo.It("should list map keys", func() {
		keys := utils.Keys(map[string]int{"x": 1, "y": 2})
		gomega.Expect(keys).To(gomega.ConsistOf("x", "y"))
	})
})

var _ = ginkgo.Describe("Pointers", func() {
	ginkgo.It("should return nil for empty strings", func() {
		gomega.Expect(utils.StringPtr("")).To(gomega.BeNil())
		gomega.Expect(*utils.StringPtr("acme")).To(gomega.Equal("acme"))
	})

	ginkgo.It("should trim and drop blank strings", func() {
		gomega.Expect(utils.TrimmedStringPtr(utils.Ptr("   "))).To(gomega.BeNil())
		gomega.Expect(*utils.TrimmedStringPtr(utils.Ptr(" acme "))).To(gomega.Equal("acme"))
		gomega.Expect(utils.TrimmedStringPtr(nil)).To(gomega.BeNil())
	})

	ginkgo.It("should return nil for zero times", func() {
		gomega.Expect(utils.TimePtr(time.Time{})).To(gomega.BeNil())
	})

	ginkgo.It("should dereference nil to the zero value", func() {
		gomega.Expect(utils.Deref[int](nil)).To(gomega.Equal(0))
		gomega.Expect(utils.Deref(utils.Ptr(7))).To(gomega.Equal(7))
	})
})

var _ = ginkgo.Describe("Time", func() {
	ginkgo.It("should marshal in UTC with milliseconds", func() {
		local := time.Date(2024, 3, 5, 10, 30, 0, 123000000, time.FixedZone("AST", 3*3600))

		data, err := json.Marshal(utils.Time{Time: local})

		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(string(data)).To(gomega.Equal(`"2024-03-05T07:30:00.123Z"`))
	})

	ginkgo.It("should keep nil timestamps nil", func() {
		gomega.Expect(utils.TimeOrNil(nil)).To(gomega.BeNil())
	})
})

var _ = ginkgo.Describe("UUID", func() {
	ginkgo.It("should generate valid identifiers", func() {
		gomega.Expect(utils.IsUUID(utils.GenerateUUID())).To(gomega.BeTrue())
		gomega.Expect(utils.IsUUID("not-a-uuid")).To(gomega.BeFalse())
	})
})
