package domain

import "github.com/shopspring/decimal"

// PiePoint is a single pie slice.
type PiePoint struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// PieSeries describes a pie chart without prescribing how it is drawn.
type PieSeries struct {
	Title  string     `json:"title"`
	Points []PiePoint `json:"points"`
}

// BarSeries describes a bar chart; Categories and Values are parallel.
type BarSeries struct {
	Title      string            `json:"title"`
	Categories []string          `json:"categories"`
	Values     []decimal.Decimal `json:"values"`
}

// DashboardOverview bundles everything the dashboard view needs from a
// single load: the financial summary, the latest transactions and the
// chart series derived from the summary.
type DashboardOverview struct {
	Summary              *FinancialSummary `json:"summary"`
	RecentTransactions   []Transaction     `json:"recentTransactions"`
	IncomeExpense        PieSeries         `json:"incomeExpense"`
	TopExpenses          BarSeries         `json:"topExpenses"`
	IncomeCategoryCount  int               `json:"incomeCategoryCount"`
	ExpenseCategoryCount int               `json:"expenseCategoryCount"`
}
