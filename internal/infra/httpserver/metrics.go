package httpserver

import (
	"fmt"
	"net/http"
	"regexp"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const _metricPrefix = "crm_server"

type httpMetrics struct {
	duration metric.Float64Histogram
	total    metric.Int64Counter
	inFlight metric.Int64UpDownCounter
}

var (
	_metrics      *httpMetrics
	_metricsMutex sync.Mutex

	_uuidPattern    = regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`)
	_numericSegment = regexp.MustCompile(`/[0-9]+(/|$)`)
)

// ResetMetricsForTesting forces the instruments to be recreated against the
// current meter provider.
func ResetMetricsForTesting() {
	_metricsMutex.Lock()
	defer _metricsMutex.Unlock()
	_metrics = nil
}

func IsMetricsInitialized() bool {
	_metricsMutex.Lock()
	defer _metricsMutex.Unlock()
	return _metrics != nil
}

func loadMetrics() *httpMetrics {
	_metricsMutex.Lock()
	defer _metricsMutex.Unlock()

	if _metrics != nil {
		return _metrics
	}

	m, err := newHTTPMetrics(otel.GetMeterProvider().Meter("crm-server"))
	if err != nil {
		panic(err)
	}

	_metrics = m
	return _metrics
}

func newHTTPMetrics(meter metric.Meter) (*httpMetrics, error) {
	duration, err := meter.Float64Histogram(
		metricName("http.request.duration.seconds"),
		metric.WithDescription("Duration of HTTP requests"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5),
	)
	if err != nil {
		return nil, fmt.Errorf("creating request duration histogram: %w", err)
	}

	total, err := meter.Int64Counter(
		metricName("http.requests.total"),
		metric.WithDescription("Total number of HTTP requests"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating request counter: %w", err)
	}

	inFlight, err := meter.Int64UpDownCounter(
		metricName("http.requests.active"),
		metric.WithDescription("Number of HTTP requests currently being processed"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating in-flight counter: %w", err)
	}

	return &httpMetrics{duration: duration, total: total, inFlight: inFlight}, nil
}

func metricName(name string) string {
	return fmt.Sprintf("%s.%s", _metricPrefix, name)
}

// MetricsMiddleware records duration, count and in-flight requests per
// method and normalized route.
func MetricsMiddleware() func(http.Handler) http.Handler {
	m := loadMetrics()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			route := metric.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.endpoint", normalizeEndpoint(r.URL.Path)),
			)

			m.inFlight.Add(r.Context(), 1, route)
			defer m.inFlight.Add(r.Context(), -1, route)

			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(wrapped, r)

			attrs := metric.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.endpoint", normalizeEndpoint(r.URL.Path)),
				attribute.Int("http.status_code", wrapped.statusCode),
			)
			m.duration.Record(r.Context(), time.Since(start).Seconds(), attrs)
			m.total.Add(r.Context(), 1, attrs)
		})
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// normalizeEndpoint collapses identifiers so each route maps to one series.
func normalizeEndpoint(path string) string {
	if path == "" || path == "/" {
		return "root"
	}

	normalized := _uuidPattern.ReplaceAllString(path, "_id")
	for _numericSegment.MatchString(normalized) {
		normalized = _numericSegment.ReplaceAllString(normalized, "/_id$1")
	}

	return normalized
}
