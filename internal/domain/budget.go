package domain

import "github.com/shopspring/decimal"

// CategoryStatus describes one category's spending relative to its budget.
type CategoryStatus string

const (
	StatusNoSpend      CategoryStatus = "no-spend"
	StatusUnderBudget  CategoryStatus = "under-budget"
	StatusWithinBudget CategoryStatus = "within-budget"
	StatusOverBudget   CategoryStatus = "over-budget"
)

// UnderBudgetRatio is the share of a category budget at or below which
// spending counts as under budget.
var UnderBudgetRatio = decimal.RequireFromString("0.8")

var oneHundred = decimal.NewFromInt(100)

// BudgetSnapshot is one month's planned vs. actual spending as returned
// by the API. A category absent from either map counts as zero there.
// Aggregation never mutates a snapshot.
type BudgetSnapshot struct {
	Budget         *CategoryAmounts `json:"budget"`
	ActualExpenses *CategoryAmounts `json:"actualExpenses"`
	Month          Month            `json:"month"`
}

// BudgetSummary is derived from a snapshot and recomputed on every
// snapshot change. Category lists follow the budget map's key order.
type BudgetSummary struct {
	TotalBudget           decimal.Decimal `json:"totalBudget"`
	TotalSpent            decimal.Decimal `json:"totalSpent"`
	Remaining             decimal.Decimal `json:"remaining"`
	Utilization           decimal.Decimal `json:"utilization"`
	OverBudgetCategories  []string        `json:"overBudgetCategories"`
	UnderBudgetCategories []string        `json:"underBudgetCategories"`
}

// ClassifyCategory maps a (budgeted, actual) pair to a status. Rules are
// evaluated in order, first match wins:
//
//  1. no spending at all is StatusNoSpend, whatever the budget
//  2. spending at or below 80% of the budget is StatusUnderBudget
//  3. spending at or below the budget is StatusWithinBudget
//  4. everything else is StatusOverBudget
//
// With a zero budget, any positive spending falls through to
// StatusOverBudget and zero spending stays StatusNoSpend.
func ClassifyCategory(budgeted, actual decimal.Decimal) CategoryStatus {
	switch {
	case actual.IsZero():
		return StatusNoSpend
	case actual.LessThanOrEqual(budgeted.Mul(UnderBudgetRatio)):
		return StatusUnderBudget
	case actual.LessThanOrEqual(budgeted):
		return StatusWithinBudget
	default:
		return StatusOverBudget
	}
}

// CategoryUtilization returns actual/budgeted as a percentage, zero when
// the budget is zero.
func CategoryUtilization(budgeted, actual decimal.Decimal) decimal.Decimal {
	if budgeted.IsZero() {
		return decimal.Zero
	}
	return actual.Div(budgeted).Mul(oneHundred)
}
