package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction is a single income or expense entry. The remote API is the
// system of record; ID is empty until the API has persisted the entry.
// Category should reference a known category, but referential integrity
// is the server's concern, not ours.
type Transaction struct {
	ID          string          `json:"_id,omitempty"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	Date        time.Time       `json:"date"`
	CreatedAt   *time.Time      `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time      `json:"updatedAt,omitempty"`
}

// TransactionUpdate carries the fields of a PUT /transactions/{id}
// request; nil fields are left untouched by the server.
type TransactionUpdate struct {
	Type        *TransactionType `json:"type,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Description *string          `json:"description,omitempty"`
	Date        *time.Time       `json:"date,omitempty"`
}

type TransactionQuery struct {
	Page      int
	Limit     int
	Category  string
	Type      TransactionType
	StartDate string
	EndDate   string
}

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

type TransactionPage struct {
	Transactions []Transaction `json:"transactions"`
	TotalPages   int           `json:"totalPages"`
	CurrentPage  int           `json:"currentPage"`
	Total        int           `json:"total"`
}

// FinancialSummary is the derived income/expense overview used by the
// dashboard. Balance is always TotalIncome - TotalExpenses.
type FinancialSummary struct {
	TotalIncome   decimal.Decimal   `json:"totalIncome"`
	TotalExpenses decimal.Decimal   `json:"totalExpenses"`
	Balance       decimal.Decimal   `json:"balance"`
	ByCategory    CategoryBreakdown `json:"byCategory"`
}

// CategoryBreakdown splits per-category totals by transaction type. A
// side with no matching transactions is absent, not empty.
type CategoryBreakdown struct {
	Income  *CategoryAmounts `json:"income,omitempty"`
	Expense *CategoryAmounts `json:"expense,omitempty"`
}

// CategoryAmount is a single (category, amount) pair, used for ranked
// chart series where order matters.
type CategoryAmount struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}
