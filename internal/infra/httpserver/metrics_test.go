package httpserver

import (
	"net/http"
	"net/http/httptest"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/metric"
)

var _ = ginkgo.Describe("Metrics", func() {
	ginkgo.Context("MetricsMiddleware", func() {
		ginkgo.It("should pass the response through and initialize the instruments", func() {
			reader := metric.NewManualReader()
			otel.SetMeterProvider(metric.NewMeterProvider(metric.WithReader(reader)))
			ResetMetricsForTesting()

			handler := MetricsMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte("created"))
			}))

			req := httptest.NewRequest(http.MethodPost, "/v1/contacts", nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusCreated))
			gomega.Expect(rec.Body.String()).To(gomega.Equal("created"))
			gomega.Expect(IsMetricsInitialized()).To(gomega.BeTrue())
		})
	})

	ginkgo.DescribeTable("normalizeEndpoint",
		func(path, expected string) {
			gomega.Expect(normalizeEndpoint(path)).To(gomega.Equal(expected))
		},
		ginkgo.Entry("root", "/", "root"),
		ginkgo.Entry("empty", "", "root"),
		ginkgo.Entry("healthz", "/healthz", "/healthz"),
		ginkgo.Entry("collection", "/v1/companies", "/v1/companies"),
		ginkgo.Entry("company by uuid",
			"/v1/companies/123e4567-e89b-12d3-a456-426614174000",
			"/v1/companies/_id"),
		ginkgo.Entry("custom field usage",
			"/v1/custom-fields/123e4567-e89b-12d3-a456-426614174000/usage",
			"/v1/custom-fields/_id/usage"),
		ginkgo.Entry("contacts of a company",
			"/v1/companies/123E4567-E89B-12D3-A456-426614174000/contacts",
			"/v1/companies/_id/contacts"),
		ginkgo.Entry("numeric identifiers",
			"/v1/contacts/42/restore",
			"/v1/contacts/_id/restore"),
		ginkgo.Entry("consecutive numeric segments", "/v1/1/2", "/v1/_id/_id"),
	)

	ginkgo.Context("responseWriter", func() {
		var (
			recorder *httptest.ResponseRecorder
			wrapped  *responseWriter
		)

		ginkgo.BeforeEach(func() {
			recorder = httptest.NewRecorder()
			wrapped = &responseWriter{ResponseWriter: recorder, statusCode: http.StatusOK}
		})

		ginkgo.It("should remember the status code", func() {
			wrapped.WriteHeader(http.StatusNotFound)
			gomega.Expect(wrapped.statusCode).To(gomega.Equal(http.StatusNotFound))
			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusNotFound))
		})

		ginkgo.It("should default to 200 when the handler only writes a body", func() {
			_, err := wrapped.Write([]byte("ok"))
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(wrapped.statusCode).To(gomega.Equal(http.StatusOK))
			gomega.Expect(recorder.Body.String()).To(gomega.Equal("ok"))
		})
	})
})
