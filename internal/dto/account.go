package dto

import "time"

// Account Request DTOs

// CreateAccountRequest contains data for tracking a new bank account
type CreateAccountRequest struct {
	Name           string `json:"name" validate:"required,min=1,max=100"`
	BankName       string `json:"bankName" validate:"omitempty,max=100"`
	Currency       string `json:"currency" validate:"omitempty,len=3,alpha"`
	OpeningBalance string `json:"openingBalance" validate:"omitempty"`
}

// UpdateAccountRequest contains mutable account fields
type UpdateAccountRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=100"`
	BankName *string `json:"bankName" validate:"omitempty,max=100"`
}

// Account Response DTOs

// AccountResponse represents a tracked bank account
type AccountResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	BankName       string    `json:"bankName,omitempty"`
	Currency       string    `json:"currency"`
	OpeningBalance string    `json:"openingBalance"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// AccountListResponse wraps the user's accounts
type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
	Total    int               `json:"total"`
}

// BalanceResponse carries the settled balance of an account
type BalanceResponse struct {
	AccountID      string `json:"accountId"`
	CurrentBalance string `json:"currentBalance"`
	Currency       string `json:"currency"`
}
