package usecases

import (
	"context"
	"log/slog"
	"sync"

	"crm-server/internal/crm/domain"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	customFieldDeletions metric.Int64Counter
	metricsOnce          sync.Once
)

func initMetrics() {
	metricsOnce.Do(func() {
		meter := otel.Meter("crm-server")

		var err error
		customFieldDeletions, err = meter.Int64Counter(
			"crm_server.custom_fields.deleted",
			metric.WithDescription("Custom field deletions by mode"),
			metric.WithUnit("1"),
		)
		if err != nil {
			slog.Error("creating custom field deletion counter", slog.String("error", err.Error()))
		}
	})
}

func recordCustomFieldDeletion(ctx context.Context, field domain.CustomField, mode domain.DeletionMode) {
	if customFieldDeletions == nil {
		return
	}

	customFieldDeletions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("mode", string(mode)),
		attribute.String("entity_type", field.EntityType.String()),
	))
}
