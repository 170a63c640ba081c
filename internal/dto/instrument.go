package dto

import "time"

// Instrument Request DTOs

// CreateInstrumentRequest contains data for recording a new instrument
type CreateInstrumentRequest struct {
	AccountID   string `json:"accountId" validate:"required,uuid4"`
	Kind        string `json:"kind" validate:"required,instrument_kind"`
	Amount      string `json:"amount" validate:"required,positive_amount"`
	DueDate     string `json:"dueDate" validate:"required,calendar_date"`
	Payee       string `json:"payee" validate:"omitempty,max=255"`
	Description string `json:"description" validate:"omitempty,max=1000"`
}

// UpdateInstrumentRequest contains the mutable instrument fields. Omitted
// fields keep their stored values.
type UpdateInstrumentRequest struct {
	Amount      *string `json:"amount" validate:"omitempty,positive_amount"`
	DueDate     *string `json:"dueDate" validate:"omitempty,calendar_date"`
	Payee       *string `json:"payee" validate:"omitempty,max=255"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

// UpdateInstrumentStatusRequest settles an instrument ahead of its due date
type UpdateInstrumentStatusRequest struct {
	Status string `json:"status" validate:"required,settled_status"`
}

// ListInstrumentsRequest carries the query filters for instrument listing
type ListInstrumentsRequest struct {
	AccountID   string `query:"accountId" validate:"required,uuid4"`
	Kind        string `query:"kind" validate:"omitempty,instrument_kind"`
	Status      string `query:"status" validate:"omitempty,instrument_status"`
	DueDateFrom string `query:"dueDateFrom" validate:"omitempty,calendar_date"`
	DueDateTo   string `query:"dueDateTo" validate:"omitempty,calendar_date"`
	Payee       string `query:"payee" validate:"omitempty,max=255"`
	Reference   string `query:"reference" validate:"omitempty,max=100"`
	SortBy      string `query:"sortBy" validate:"omitempty"`
	SortOrder   string `query:"sortOrder" validate:"omitempty,oneof=asc desc"`
	Page        int    `query:"page" validate:"omitempty,min=1"`
	PageSize    int    `query:"pageSize" validate:"omitempty,min=1,max=100"`
}

// Instrument Response DTOs

// InstrumentResponse represents one instrument
type InstrumentResponse struct {
	ID          string    `json:"id"`
	AccountID   string    `json:"accountId"`
	Kind        string    `json:"kind"`
	Amount      string    `json:"amount"`
	Status      string    `json:"status"`
	DueDate     string    `json:"dueDate"`
	CreatedDate string    `json:"createdDate"`
	Payee       string    `json:"payee,omitempty"`
	Description string    `json:"description,omitempty"`
	Reference   string    `json:"reference,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// InstrumentListResponse wraps a paginated instrument listing
type InstrumentListResponse struct {
	Instruments []InstrumentResponse `json:"instruments"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"pageSize"`
}
