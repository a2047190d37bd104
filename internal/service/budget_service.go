package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/openbudget/budgetview/internal/domain"
)

// recommendationMarkup is the headroom added on top of the historical
// average when recommending a budget.
var recommendationMarkup = decimal.RequireFromString("1.1")

// BudgetFetcher retrieves budget snapshots from the remote API.
type BudgetFetcher interface {
	CurrentBudget(ctx context.Context) (*domain.BudgetSnapshot, error)
	BudgetHistory(ctx context.Context) ([]domain.BudgetSnapshot, error)
}

// BudgetService derives summaries and recommendations from budget
// snapshots. Summarize and Recommend are pure; the fetching variants
// wrap them around the API client.
type BudgetService struct {
	api    BudgetFetcher
	logger zerolog.Logger
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(api BudgetFetcher, logger zerolog.Logger) *BudgetService {
	return &BudgetService{api: api, logger: logger}
}

// Summarize computes a BudgetSummary from one snapshot. The over/under
// partitions follow the budget map's key order; a category spending
// strictly between 80% and 100% of its budget lands in neither list.
// The snapshot is never mutated.
func (s *BudgetService) Summarize(snapshot *domain.BudgetSnapshot) *domain.BudgetSummary {
	totalBudget := decimal.Zero
	for _, category := range snapshot.Budget.Keys() {
		totalBudget = totalBudget.Add(snapshot.Budget.Get(category))
	}

	totalSpent := decimal.Zero
	for _, category := range snapshot.ActualExpenses.Keys() {
		totalSpent = totalSpent.Add(snapshot.ActualExpenses.Get(category))
	}

	utilization := decimal.Zero
	if !totalBudget.IsZero() {
		utilization = totalSpent.Div(totalBudget).Mul(decimal.NewFromInt(100))
	}

	overBudget := []string{}
	underBudget := []string{}
	for _, category := range snapshot.Budget.Keys() {
		budgeted := snapshot.Budget.Get(category)
		actual := snapshot.ActualExpenses.Get(category)

		switch {
		case actual.GreaterThan(budgeted):
			overBudget = append(overBudget, category)
		case actual.LessThanOrEqual(budgeted.Mul(domain.UnderBudgetRatio)):
			underBudget = append(underBudget, category)
		}
	}

	return &domain.BudgetSummary{
		TotalBudget:           totalBudget,
		TotalSpent:            totalSpent,
		Remaining:             totalBudget.Sub(totalSpent),
		Utilization:           utilization,
		OverBudgetCategories:  overBudget,
		UnderBudgetCategories: underBudget,
	}
}

// CurrentSummary fetches the current snapshot and summarizes it.
func (s *BudgetService) CurrentSummary(ctx context.Context) (*domain.BudgetSummary, error) {
	snapshot, err := s.api.CurrentBudget(ctx)
	if err != nil {
		return nil, err
	}
	return s.Summarize(snapshot), nil
}

// Recommend suggests a budget per category: the mean of the historical
// values plus 10%, rounded to a whole amount. Categories with no
// history are omitted.
func (s *BudgetService) Recommend(historical map[string][]decimal.Decimal) map[string]decimal.Decimal {
	recommendations := make(map[string]decimal.Decimal)
	for category, values := range historical {
		if len(values) == 0 {
			continue
		}
		sum := decimal.Zero
		for _, v := range values {
			sum = sum.Add(v)
		}
		mean := sum.Div(decimal.NewFromInt(int64(len(values))))
		recommendations[category] = mean.Mul(recommendationMarkup).Round(0)
	}
	return recommendations
}

// RecommendFromHistory fetches the budget history and recommends
// amounts from each category's actual spending across those months.
func (s *BudgetService) RecommendFromHistory(ctx context.Context) (map[string]decimal.Decimal, error) {
	history, err := s.api.BudgetHistory(ctx)
	if err != nil {
		return nil, err
	}

	historical := make(map[string][]decimal.Decimal)
	for _, snapshot := range history {
		for _, category := range snapshot.ActualExpenses.Keys() {
			historical[category] = append(historical[category], snapshot.ActualExpenses.Get(category))
		}
	}

	s.logger.Debug().
		Int("months", len(history)).
		Int("categories", len(historical)).
		Msg("building budget recommendations")

	return s.Recommend(historical), nil
}
