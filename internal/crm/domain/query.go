package domain

import (
	shareddomain "crm-server/internal/shared_kernel/domain"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

type Pagination struct {
	Page  int
	Limit int
}

// Normalize clamps the page to 1 and the limit to (0, MaxPageSize].
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageSize
	}
	if p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}
	return p
}

func (p Pagination) Offset() int {
	n := p.Normalize()
	return (n.Page - 1) * n.Limit
}

type Page[T any] struct {
	Items      []T
	Total      int64
	Pagination Pagination
}

func (p Page[T]) TotalPages() int {
	limit := p.Pagination.Normalize().Limit
	return int((p.Total + int64(limit) - 1) / int64(limit))
}

type CompanySortField string

const (
	CompanySortByName      CompanySortField = "name"
	CompanySortByCreatedAt CompanySortField = "created_at"
)

type CompanyQuery struct {
	Pagination
	Search    string
	SortBy    CompanySortField
	Ascending bool
	Deleted   shareddomain.DeletedFilter
}

type ContactSortField string

const (
	ContactSortByFirstName ContactSortField = "first_name"
	ContactSortByLastName  ContactSortField = "last_name"
	ContactSortByEmail     ContactSortField = "email"
	ContactSortByCreatedAt ContactSortField = "created_at"
)

type ContactQuery struct {
	Pagination
	Search          string
	SortBy          ContactSortField
	Ascending       bool
	IncludeInactive bool
	Deleted         shareddomain.DeletedFilter
	CompanyID       *shareddomain.ID
}

// ContactSearch filters contacts by free text and by custom field values
// matched on field name.
type ContactSearch struct {
	Pagination
	Term               string
	CustomFieldFilters map[string]string
}
