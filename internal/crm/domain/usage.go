package domain

import (
	"time"

	shareddomain "crm-server/internal/shared_kernel/domain"
)

type DeletionMode string

const (
	DeletionModeSoft DeletionMode = "soft"
	DeletionModeHard DeletionMode = "hard"
)

type CustomFieldUsage struct {
	FieldID           shareddomain.ID
	FieldName         shareddomain.Name
	EntityType        EntityType
	TotalUsageCount   int64
	ValueDistribution map[string]int64
	// LastUsed mirrors the definition's own timestamps.
	LastUsed time.Time
	// LastValueWrittenAt is the newest value row, nil when nothing is attached.
	LastValueWrittenAt *time.Time
}
