package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"crm-server/internal/crm/domain"
	shareddomain "crm-server/internal/shared_kernel/domain"
)

type valueResolver struct {
	fields CustomFieldRepository
}

// resolve loads the referenced definitions and validates every value before
// anything is written.
func (r valueResolver) resolve(
	ctx context.Context,
	ownerType domain.EntityType,
	ownerID shareddomain.ID,
	input domain.CustomFieldValues,
) ([]domain.CustomFieldValue, error) {
	if len(input) == 0 {
		return []domain.CustomFieldValue{}, nil
	}

	definitions, err := r.fields.GetByIDs(ctx, input.FieldIDs())
	if err != nil {
		slog.Error("loading custom field definitions", slog.String("error", err.Error()))
		return nil, fmt.Errorf("loading custom field definitions: %w", err)
	}

	byID := make(map[shareddomain.ID]domain.CustomField, len(definitions))
	for _, definition := range definitions {
		byID[definition.ID] = definition
	}

	return domain.ResolveValues(ownerType, ownerID, input, byID)
}

// ensureAllExist reports the first requested id missing from existing.
func ensureAllExist(field string, requested, existing []shareddomain.ID) error {
	found := make(map[shareddomain.ID]struct{}, len(existing))
	for _, id := range existing {
		found[id] = struct{}{}
	}

	missing := make([]string, 0)
	for _, id := range requested {
		if _, ok := found[id]; !ok {
			missing = append(missing, id.String())
		}
	}

	if len(missing) > 0 {
		return domain.NewValidationError(field, fmt.Sprintf("unknown ids [%s]", strings.Join(missing, " ")))
	}

	return nil
}
