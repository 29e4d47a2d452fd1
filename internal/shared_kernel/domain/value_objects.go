package domain

type ID string

func (vo ID) String() string {
	return string(vo)
}

type Name string

func (vo Name) String() string {
	return string(vo)
}

type Description string

// RecordStatus is the lifecycle column shared by every soft-deletable record.
type RecordStatus string

const (
	RecordStatusActive      RecordStatus = "active"
	RecordStatusSoftDeleted RecordStatus = "soft_deleted"
)

// DeletedFilter states whether a read path includes soft deleted rows.
type DeletedFilter int

const (
	ExcludeDeleted DeletedFilter = iota
	IncludeDeleted
)

func DeletedFilterFrom(includeDeleted bool) DeletedFilter {
	if includeDeleted {
		return IncludeDeleted
	}
	return ExcludeDeleted
}

func (f DeletedFilter) Includes(status RecordStatus) bool {
	return f == IncludeDeleted || status != RecordStatusSoftDeleted
}
