package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"crm-server/cmd/api/wire"
	"crm-server/internal/crm/domain"
	"crm-server/internal/crm/usecases"
	"crm-server/internal/infra/utils"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load sample custom fields, companies and contacts",
	Long: `Seed inserts a small sample data set. Records that already exist are
left untouched so the command can be run repeatedly.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

type seedField struct {
	name          string
	entityType    domain.EntityType
	valueType     domain.ValueType
	description   string
	allowedValues []string
}

var seedFields = []seedField{
	{name: "Email", entityType: domain.EntityTypeCompany, valueType: domain.ValueTypeEmail, description: "Company email address"},
	{name: "Phone", entityType: domain.EntityTypeCompany, valueType: domain.ValueTypePhone, description: "Company phone number"},
	{name: "Industry", entityType: domain.EntityTypeCompany, valueType: domain.ValueTypeSelect, description: "Business sector", allowedValues: []string{"Aviation", "Banking", "Energy"}},
	{name: "Phone", entityType: domain.EntityTypeContact, valueType: domain.ValueTypePhone, description: "Contact phone number"},
	{name: "Birthday", entityType: domain.EntityTypeContact, valueType: domain.ValueTypeDate, description: "Contact birthday"},
}

var seedCompanies = []string{"Qatar Airways", "Qatar National Bank"}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	fieldService, err := wire.InitializeCustomFieldService()
	if err != nil {
		return fmt.Errorf("initializing custom field service: %w", err)
	}
	companyService, err := wire.InitializeCompanyService()
	if err != nil {
		return fmt.Errorf("initializing company service: %w", err)
	}

	created := 0
	for _, seed := range seedFields {
		field, err := domain.NewCustomFieldBuilder().
			WithName(seed.name).
			WithEntityType(seed.entityType).
			WithValueType(seed.valueType).
			WithDescription(utils.StringPtr(seed.description)).
			WithConstraints(domain.Constraints{AllowedValues: seed.allowedValues}).
			Build()
		if err != nil {
			return fmt.Errorf("building field %s: %w", seed.name, err)
		}

		if _, err := fieldService.CreateCustomField(ctx, field); err != nil {
			if errors.Is(err, usecases.ErrConflict) {
				slog.Debug("custom field already seeded", slog.String("name", seed.name))
				continue
			}
			return fmt.Errorf("seeding field %s: %w", seed.name, err)
		}
		created++
	}

	for _, name := range seedCompanies {
		company, err := domain.NewCompanyBuilder().WithName(name).Build()
		if err != nil {
			return fmt.Errorf("building company %s: %w", name, err)
		}

		if _, err := companyService.CreateCompany(ctx, company, nil); err != nil {
			if errors.Is(err, usecases.ErrConflict) {
				slog.Debug("company already seeded", slog.String("name", name))
				continue
			}
			return fmt.Errorf("seeding company %s: %w", name, err)
		}
		created++
	}

	fmt.Fprintf(cmd.OutOrStdout(), "seeded %d records\n", created)
	return nil
}
