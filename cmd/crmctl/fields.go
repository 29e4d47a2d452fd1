package main

import (
	"context"
	"encoding/json"
	"fmt"

	"crm-server/cmd/api/wire"
	"crm-server/internal/crm/domain"
	shareddomain "crm-server/internal/shared_kernel/domain"

	"github.com/spf13/cobra"
)

var (
	fieldsEntityType     string
	fieldsIncludeDeleted bool
)

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "Inspect custom field definitions",
}

var fieldsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List custom field definitions",
	Long: `List prints the custom field definitions as JSON.

Example:
  crmctl fields list
  crmctl fields list --entity-type contact --include-deleted`,
	Args: cobra.NoArgs,
	RunE: runFieldsList,
}

var fieldsUsageCmd = &cobra.Command{
	Use:   "usage <field-id>",
	Short: "Print how often a custom field holds a value",
	Args:  cobra.ExactArgs(1),
	RunE:  runFieldsUsage,
}

func init() {
	fieldsListCmd.Flags().StringVar(&fieldsEntityType, "entity-type", "", "only list fields for Company or Contact")
	fieldsListCmd.Flags().BoolVar(&fieldsIncludeDeleted, "include-deleted", false, "include soft deleted fields")

	fieldsCmd.AddCommand(fieldsListCmd)
	fieldsCmd.AddCommand(fieldsUsageCmd)
}

type fieldRow struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	EntityType string `json:"entity_type"`
	ValueType  string `json:"value_type"`
	Required   bool   `json:"required"`
	Deleted    bool   `json:"deleted"`
}

func runFieldsList(cmd *cobra.Command, args []string) error {
	var entityType *domain.EntityType
	if fieldsEntityType != "" {
		parsed, err := domain.ParseEntityType(fieldsEntityType)
		if err != nil {
			return err
		}
		entityType = &parsed
	}

	service, err := wire.InitializeCustomFieldService()
	if err != nil {
		return fmt.Errorf("initializing custom field service: %w", err)
	}

	fields, err := service.ListCustomFields(context.Background(), entityType, shareddomain.DeletedFilterFrom(fieldsIncludeDeleted))
	if err != nil {
		return fmt.Errorf("listing custom fields: %w", err)
	}

	rows := make([]fieldRow, 0, len(fields))
	for _, field := range fields {
		rows = append(rows, fieldRow{
			ID:         field.ID.String(),
			Name:       field.Name.String(),
			EntityType: string(field.EntityType),
			ValueType:  string(field.ValueType),
			Required:   field.IsRequired,
			Deleted:    field.IsDeleted(),
		})
	}

	return printJSON(cmd, rows)
}

func runFieldsUsage(cmd *cobra.Command, args []string) error {
	service, err := wire.InitializeCustomFieldService()
	if err != nil {
		return fmt.Errorf("initializing custom field service: %w", err)
	}

	usage, err := service.GetCustomFieldUsage(context.Background(), shareddomain.ID(args[0]))
	if err != nil {
		return fmt.Errorf("getting usage: %w", err)
	}

	return printJSON(cmd, map[string]any{
		"field_id":           usage.FieldID.String(),
		"field_name":         usage.FieldName.String(),
		"entity_type":        usage.EntityType,
		"total_usage_count":  usage.TotalUsageCount,
		"value_distribution": usage.ValueDistribution,
		"last_used":          usage.LastUsed,
	})
}

func printJSON(cmd *cobra.Command, value any) error {
	output, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(output))
	return nil
}
