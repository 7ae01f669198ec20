// Package action implements the create-transaction service call: schema
// validation of the caller's input and the POST to the API.
package action

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/TiagoK-777/hass-abaco-finance/internal/model"
)

// Poster is the write side of the API client.
type Poster interface {
	CreateTransaction(ctx context.Context, payload map[string]any) model.CreateResult
}

// Request is the validated input of the create-transaction action.
type Request struct {
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description"`
	CreditCardID string          `json:"credit_card_id"`
	CategoryID   string          `json:"category_id"`
	Date         string          `json:"transaction_date,omitempty"` // YYYY-MM-DD, defaults to today
}

// Validate checks the request against the service schema.
func (r Request) Validate() error {
	if !r.Amount.IsPositive() {
		return errors.New("amount must be positive")
	}
	if r.Description == "" {
		return errors.New("description is required")
	}
	if r.CreditCardID == "" {
		return errors.New("credit_card_id is required")
	}
	if r.CategoryID == "" {
		return errors.New("category_id is required")
	}
	if r.Date != "" {
		if _, err := time.Parse("2006-01-02", r.Date); err != nil {
			return errors.New("transaction_date must be YYYY-MM-DD")
		}
	}
	return nil
}

// payload builds the wire body for the transactions POST.
func (r Request) payload(now time.Time) map[string]any {
	date := r.Date
	if date == "" {
		date = now.Format("2006-01-02")
	}
	amount, _ := r.Amount.Float64()
	return map[string]any{
		"type":             string(model.TypeExpense),
		"amount":           amount,
		"transaction_date": date,
		"credit_card_id":   r.CreditCardID,
		"category_id":      r.CategoryID,
		"description":      r.Description,
		"status":           string(model.StatusPending),
		"is_recurring":     false,
		"is_installment":   false,
	}
}

// CreateTransaction validates the request and posts it. Validation failures
// return an error; API-level failures come back inside the CreateResult,
// matching the write path's no-raise contract.
func CreateTransaction(ctx context.Context, api Poster, req Request) (model.CreateResult, error) {
	if err := req.Validate(); err != nil {
		return model.CreateResult{}, err
	}
	return api.CreateTransaction(ctx, req.payload(time.Now())), nil
}
