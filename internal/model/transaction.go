package model

import "time"

// TransactionStatus filters transactions by settlement state.
type TransactionStatus string

const (
	StatusPending TransactionStatus = "pending"
	StatusPaid    TransactionStatus = "paid"
)

// TransactionType filters transactions by direction.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// DefaultPageSize is the per-page limit sent when a query does not set one.
const DefaultPageSize = 50

// TransactionQuery describes a filtered, paginated transaction fetch.
// The zero value of NoPaginate means pages are followed automatically.
type TransactionQuery struct {
	StartDate  time.Time
	EndDate    time.Time
	Status     TransactionStatus
	Type       TransactionType
	PageSize   int
	NoPaginate bool
}

// TransactionResult is the outcome of a transaction fetch.
//
// When Aggregated is true, Items holds every page's items concatenated in
// fetch order and HasMore is always false. When false (auto-pagination off,
// or the first page body was not a JSON object), Raw holds the first-page
// body untouched and the remaining fields are unset.
type TransactionResult struct {
	Aggregated   bool
	Raw          any
	Items        []any
	TotalCount   int
	HasMore      bool
	PagesFetched int
}

// CreateResult is the outcome of a transaction create. Write calls report
// failure through this value instead of an error; callers check Success.
type CreateResult struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	ID      string `json:"id,omitempty"`
	Status  int    `json:"status,omitempty"`
	Error   string `json:"error,omitempty"`
}
