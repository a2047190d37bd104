package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/openbudget/budgetview/internal/api"
	"github.com/openbudget/budgetview/internal/config"
	"github.com/openbudget/budgetview/internal/domain"
	"github.com/openbudget/budgetview/internal/service"
	"github.com/openbudget/budgetview/internal/store"
)

const usage = `usage: budgetview <command>

commands:
  dashboard                                  financial summary, recent activity and charts
  budget                                     current month budget vs actual
  budget recommend                           budget suggestions from spending history
  transactions [page [limit]]                list transactions
  categories                                 list categories
  categories add <name> <type> [description] add a custom category
  categories remove <name>                   remove a custom category
`

func main() {
	// Initialize zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Open local state store
	kv, err := store.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open local store")
	}
	defer kv.Close()

	// Initialize API client and services
	client := api.NewClient(api.Config{
		BaseURL:           cfg.APIURL,
		Token:             cfg.APIToken,
		Timeout:           cfg.HTTPTimeout,
		RequestsPerSecond: cfg.RequestsPerSecond,
	}, log.Logger)

	categoryService := service.NewCategoryService(kv, log.Logger)
	summaryService := service.NewSummaryService()
	budgetService := service.NewBudgetService(client, log.Logger)
	dashboardService := service.NewDashboardService(client, client, summaryService, log.Logger)

	ctx := context.Background()
	args := os.Args[2:]

	switch os.Args[1] {
	case "dashboard":
		err = runDashboard(ctx, dashboardService, cfg.UserID)
	case "budget":
		if len(args) > 0 && args[0] == "recommend" {
			err = runRecommend(ctx, budgetService)
		} else {
			err = runBudget(ctx, client, budgetService)
		}
	case "transactions":
		err = runTransactions(ctx, client, args)
	case "categories":
		err = runCategories(categoryService, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil {
		log.Fatal().Err(err).Str("command", os.Args[1]).Msg("Command failed")
	}
}

func runDashboard(ctx context.Context, dashboards *service.DashboardService, userID string) error {
	overview, err := dashboards.Overview(ctx, userID)
	if err != nil {
		return err
	}

	fmt.Printf("Income:   %s\n", overview.Summary.TotalIncome.StringFixed(2))
	fmt.Printf("Expenses: %s\n", overview.Summary.TotalExpenses.StringFixed(2))
	fmt.Printf("Balance:  %s\n", overview.Summary.Balance.StringFixed(2))
	fmt.Printf("Categories: %d income, %d expense\n\n",
		overview.IncomeCategoryCount, overview.ExpenseCategoryCount)

	fmt.Println(overview.TopExpenses.Title)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for i, name := range overview.TopExpenses.Categories {
		fmt.Fprintf(w, "  %s\t%s\n", name, overview.TopExpenses.Values[i].StringFixed(2))
	}
	w.Flush()

	if len(overview.RecentTransactions) > 0 {
		fmt.Println("\nRecent transactions")
		for _, t := range overview.RecentTransactions {
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n",
				t.Date.Format("2006-01-02"), t.Type, t.Category, t.Amount.StringFixed(2))
		}
		w.Flush()
	}
	return nil
}

func runBudget(ctx context.Context, client *api.Client, budgets *service.BudgetService) error {
	snapshot, err := client.CurrentBudget(ctx)
	if err != nil {
		return err
	}
	summary := budgets.Summarize(snapshot)

	fmt.Printf("Budget for %s\n\n", snapshot.Month.Label())
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "  CATEGORY\tBUDGET\tACTUAL\tUSED\tSTATUS")
	for _, category := range snapshot.Budget.Keys() {
		budgeted := snapshot.Budget.Get(category)
		actual := snapshot.ActualExpenses.Get(category)
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s%%\t%s\n",
			category,
			budgeted.StringFixed(2),
			actual.StringFixed(2),
			domain.CategoryUtilization(budgeted, actual).Round(1),
			domain.ClassifyCategory(budgeted, actual))
	}
	w.Flush()

	fmt.Printf("\nTotal: %s of %s (%s%%), remaining %s\n",
		summary.TotalSpent.StringFixed(2),
		summary.TotalBudget.StringFixed(2),
		summary.Utilization.Round(1),
		summary.Remaining.StringFixed(2))
	return nil
}

func runRecommend(ctx context.Context, budgets *service.BudgetService) error {
	recommendations, err := budgets.RecommendFromHistory(ctx)
	if err != nil {
		return err
	}
	if len(recommendations) == 0 {
		fmt.Println("No spending history to recommend from.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tRECOMMENDED")
	for category, amount := range recommendations {
		fmt.Fprintf(w, "%s\t%s\n", category, amount.StringFixed(0))
	}
	return w.Flush()
}

func runTransactions(ctx context.Context, client *api.Client, args []string) error {
	query := domain.TransactionQuery{}
	if len(args) > 0 {
		page, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("page must be an integer: %w", err)
		}
		query.Page = page
	}
	if len(args) > 1 {
		limit, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("limit must be an integer: %w", err)
		}
		query.Limit = limit
	}

	result, err := client.Transactions(ctx, query)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tTYPE\tCATEGORY\tAMOUNT\tDESCRIPTION")
	for _, t := range result.Transactions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			t.Date.Format("2006-01-02"), t.Type, t.Category, t.Amount.StringFixed(2), t.Description)
	}
	w.Flush()

	fmt.Printf("\nPage %d of %d (%d total)\n", result.CurrentPage, result.TotalPages, result.Total)
	return nil
}

func runCategories(categories *service.CategoryService, args []string) error {
	if len(args) == 0 {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tTYPE\tCUSTOM")
		for _, c := range categories.Categories() {
			fmt.Fprintf(w, "%s\t%s\t%v\n", c.Name, c.Type, categories.IsCustom(c.Name))
		}
		return w.Flush()
	}

	switch args[0] {
	case "add":
		if len(args) < 3 {
			return fmt.Errorf("usage: categories add <name> <type> [description]")
		}
		t := domain.CategoryType(args[2])
		if t != domain.CategoryTypeIncome && t != domain.CategoryTypeExpense {
			return fmt.Errorf("type must be %q or %q", domain.CategoryTypeIncome, domain.CategoryTypeExpense)
		}
		description := ""
		if len(args) > 3 {
			description = args[3]
		}
		categories.Add(args[1], t, description)
		return nil
	case "remove":
		if len(args) < 2 {
			return fmt.Errorf("usage: categories remove <name>")
		}
		categories.Remove(args[1])
		return nil
	default:
		return fmt.Errorf("unknown categories subcommand %q", args[0])
	}
}
