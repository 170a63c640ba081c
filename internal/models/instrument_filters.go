package models

import (
	"time"

	"github.com/google/uuid"
)

// InstrumentFilters contains all filtering options for instrument list queries
type InstrumentFilters struct {
	AccountID    uuid.UUID
	Kind         string
	Status       string
	DueDateFrom  *time.Time
	DueDateTo    *time.Time
	Payee        string
	Reference    string
	SortBy       string // "due_date", "amount", "created_at"
	SortOrder    string // "asc" or "desc"
}

// HasDateFilter returns true if any due-date filtering is requested
func (f *InstrumentFilters) HasDateFilter() bool {
	return f.DueDateFrom != nil || f.DueDateTo != nil
}

// ValidSortFields defines allowed sort columns for instrument queries
var ValidSortFields = map[string]string{
	"due_date":   "due_date",
	"amount":     "amount",
	"created_at": "created_at",
}

// OrderClause returns a safe ORDER BY clause for the filters, defaulting to
// due date ascending
func (f *InstrumentFilters) OrderClause() string {
	column, ok := ValidSortFields[f.SortBy]
	if !ok {
		column = "due_date"
	}

	order := "ASC"
	if f.SortOrder == "desc" {
		order = "DESC"
	}

	return column + " " + order
}
