package httpserver

import (
	"net/http"

	"go.opentelemetry.io/otel/trace"
)

// GetSpanFromContext returns the request span, or a no-op span when the
// request is not traced.
func GetSpanFromContext(r *http.Request) trace.Span {
	return trace.SpanFromContext(r.Context())
}
