package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/openbudget/budgetview/internal/domain"
)

// recentTransactionCount is how many latest transactions the dashboard
// shows next to the charts.
const recentTransactionCount = 5

// SummaryFetcher retrieves the server-computed financial summary.
type SummaryFetcher interface {
	FinancialSummary(ctx context.Context, userID string) (*domain.FinancialSummary, error)
}

// TransactionLister retrieves transaction pages.
type TransactionLister interface {
	Transactions(ctx context.Context, q domain.TransactionQuery) (*domain.TransactionPage, error)
}

// DashboardService composes the dashboard view: the financial summary,
// the most recent transactions and the chart series derived from the
// summary.
type DashboardService struct {
	summaries      SummaryFetcher
	transactions   TransactionLister
	summaryService *SummaryService
	logger         zerolog.Logger
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(
	summaries SummaryFetcher,
	transactions TransactionLister,
	summaryService *SummaryService,
	logger zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		summaries:      summaries,
		transactions:   transactions,
		summaryService: summaryService,
		logger:         logger,
	}
}

// Overview fetches the summary and the recent transactions in parallel
// and derives the chart series.
func (s *DashboardService) Overview(ctx context.Context, userID string) (*domain.DashboardOverview, error) {
	var (
		summary *domain.FinancialSummary
		recent  []domain.Transaction
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		summary, err = s.summaries.FinancialSummary(ctx, userID)
		return err
	})
	g.Go(func() error {
		page, err := s.transactions.Transactions(ctx, domain.TransactionQuery{
			Page:  1,
			Limit: recentTransactionCount,
		})
		if err != nil {
			return err
		}
		recent = page.Transactions
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.DashboardOverview{
		Summary:              summary,
		RecentTransactions:   recent,
		IncomeExpense:        incomeExpenseSeries(summary),
		TopExpenses:          s.topExpensesSeries(summary),
		IncomeCategoryCount:  summary.ByCategory.Income.Len(),
		ExpenseCategoryCount: summary.ByCategory.Expense.Len(),
	}, nil
}

func incomeExpenseSeries(summary *domain.FinancialSummary) domain.PieSeries {
	return domain.PieSeries{
		Title: "Income vs Expenses",
		Points: []domain.PiePoint{
			{Name: "Income", Value: summary.TotalIncome},
			{Name: "Expenses", Value: summary.TotalExpenses},
		},
	}
}

func (s *DashboardService) topExpensesSeries(summary *domain.FinancialSummary) domain.BarSeries {
	top := s.summaryService.TopExpenseCategories(summary, 0)

	series := domain.BarSeries{
		Title:      "Top Expense Categories",
		Categories: make([]string, 0, len(top)),
		Values:     make([]decimal.Decimal, 0, len(top)),
	}
	for _, entry := range top {
		series.Categories = append(series.Categories, entry.Name)
		series.Values = append(series.Values, entry.Amount)
	}
	return series
}
