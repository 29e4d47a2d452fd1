package persistence

import (
	"fmt"
	"strings"

	"crm-server/internal/infra/sql"
	shareddomain "crm-server/internal/shared_kernel/domain"
)

// withDeletedFilter restricts the query to active rows unless soft deleted
// rows were asked for. table qualifies the column when joins are involved.
func withDeletedFilter(query sql.ORM, table string, filter shareddomain.DeletedFilter) sql.ORM {
	if filter == shareddomain.IncludeDeleted {
		return query
	}

	column := "status"
	if table != "" {
		column = table + ".status"
	}

	return query.Where(column+" = ?", shareddomain.RecordStatusActive)
}

func idStrings(ids []shareddomain.ID) []string {
	result := make([]string, len(ids))
	for i, id := range ids {
		result[i] = id.String()
	}
	return result
}

func toIDs(values []string) []shareddomain.ID {
	result := make([]shareddomain.ID, len(values))
	for i, v := range values {
		result[i] = shareddomain.ID(v)
	}
	return result
}

// containsPattern builds a case insensitive LIKE operand to be used with
// _likeEscape.
func containsPattern(term string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(strings.ToLower(term))
	return fmt.Sprintf("%%%s%%", escaped)
}

func orderDirection(ascending bool) string {
	if ascending {
		return "ASC"
	}
	return "DESC"
}

const _likeEscape = ` ESCAPE '\'`
