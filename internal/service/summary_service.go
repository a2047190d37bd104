package service

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/openbudget/budgetview/internal/domain"
)

// DefaultTopCategories is how many entries a ranked expense series
// keeps when the caller does not ask for a specific count.
const DefaultTopCategories = 8

// SummaryService computes financial summaries from transaction lists.
// All methods are pure.
type SummaryService struct{}

// NewSummaryService creates a new SummaryService.
func NewSummaryService() *SummaryService {
	return &SummaryService{}
}

// Summarize partitions transactions by type and totals them. The
// per-category breakdowns keep first-encountered order and a side with
// no matching transactions stays absent. An empty input yields zero
// totals and an empty breakdown.
func (s *SummaryService) Summarize(transactions []domain.Transaction) *domain.FinancialSummary {
	summary := &domain.FinancialSummary{
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
		Balance:       decimal.Zero,
	}

	for _, t := range transactions {
		switch t.Type {
		case domain.TransactionTypeIncome:
			summary.TotalIncome = summary.TotalIncome.Add(t.Amount)
			if summary.ByCategory.Income == nil {
				summary.ByCategory.Income = domain.NewCategoryAmounts()
			}
			summary.ByCategory.Income.Add(t.Category, t.Amount)
		case domain.TransactionTypeExpense:
			summary.TotalExpenses = summary.TotalExpenses.Add(t.Amount)
			if summary.ByCategory.Expense == nil {
				summary.ByCategory.Expense = domain.NewCategoryAmounts()
			}
			summary.ByCategory.Expense.Add(t.Category, t.Amount)
		}
	}

	summary.Balance = summary.TotalIncome.Sub(summary.TotalExpenses)
	return summary
}

// TopExpenseCategories ranks the expense breakdown by descending
// amount, ties kept in first-encountered order, truncated to n entries
// (DefaultTopCategories when n <= 0).
func (s *SummaryService) TopExpenseCategories(summary *domain.FinancialSummary, n int) []domain.CategoryAmount {
	if n <= 0 {
		n = DefaultTopCategories
	}

	expenses := summary.ByCategory.Expense
	ranked := make([]domain.CategoryAmount, 0, expenses.Len())
	for _, category := range expenses.Keys() {
		ranked = append(ranked, domain.CategoryAmount{Name: category, Amount: expenses.Get(category)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Amount.GreaterThan(ranked[j].Amount)
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
