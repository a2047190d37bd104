package service

import (
	"reflect"
	"testing"
	"time"

	"github.com/openbudget/budgetview/internal/domain"
)

func tx(t domain.TransactionType, category, amount string) domain.Transaction {
	return domain.Transaction{
		Type:     t,
		Category: category,
		Amount:   d(amount),
		Date:     time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestSummaryService_EmptyInput(t *testing.T) {
	summaryService := NewSummaryService()

	summary := summaryService.Summarize(nil)
	if !summary.TotalIncome.IsZero() || !summary.TotalExpenses.IsZero() || !summary.Balance.IsZero() {
		t.Errorf("Expected zero totals, got income=%s expenses=%s balance=%s",
			summary.TotalIncome, summary.TotalExpenses, summary.Balance)
	}
	if summary.ByCategory.Income != nil || summary.ByCategory.Expense != nil {
		t.Error("Expected absent breakdowns for empty input")
	}
}

func TestSummaryService_PartitionsByType(t *testing.T) {
	summaryService := NewSummaryService()

	summary := summaryService.Summarize([]domain.Transaction{
		tx(domain.TransactionTypeIncome, "Salary", "3000"),
		tx(domain.TransactionTypeExpense, "Groceries", "120.50"),
		tx(domain.TransactionTypeIncome, "Freelance", "500"),
		tx(domain.TransactionTypeExpense, "Groceries", "79.50"),
		tx(domain.TransactionTypeExpense, "Dining", "60"),
	})

	if !summary.TotalIncome.Equal(d("3500")) {
		t.Errorf("TotalIncome = %s, want 3500", summary.TotalIncome)
	}
	if !summary.TotalExpenses.Equal(d("260")) {
		t.Errorf("TotalExpenses = %s, want 260", summary.TotalExpenses)
	}
	if !summary.Balance.Equal(d("3240")) {
		t.Errorf("Balance = %s, want 3240", summary.Balance)
	}

	if !summary.ByCategory.Expense.Get("Groceries").Equal(d("200")) {
		t.Errorf("Groceries total = %s, want 200", summary.ByCategory.Expense.Get("Groceries"))
	}
	wantOrder := []string{"Groceries", "Dining"}
	if !reflect.DeepEqual(summary.ByCategory.Expense.Keys(), wantOrder) {
		t.Errorf("Expense category order = %v, want %v", summary.ByCategory.Expense.Keys(), wantOrder)
	}
}

func TestSummaryService_OneSidedInputLeavesOtherSideAbsent(t *testing.T) {
	summaryService := NewSummaryService()

	summary := summaryService.Summarize([]domain.Transaction{
		tx(domain.TransactionTypeExpense, "Travel", "900"),
	})
	if summary.ByCategory.Income != nil {
		t.Error("Expected income breakdown to be absent")
	}
	if summary.ByCategory.Expense == nil {
		t.Fatal("Expected expense breakdown to be present")
	}
	if !summary.Balance.Equal(d("-900")) {
		t.Errorf("Balance = %s, want -900", summary.Balance)
	}
}

func TestTopExpenseCategories_SortsDescendingAndTruncates(t *testing.T) {
	summaryService := NewSummaryService()

	summary := summaryService.Summarize([]domain.Transaction{
		tx(domain.TransactionTypeExpense, "Food", "50"),
		tx(domain.TransactionTypeExpense, "Rent", "1000"),
		tx(domain.TransactionTypeExpense, "Fun", "10"),
	})

	top := summaryService.TopExpenseCategories(summary, 2)
	if len(top) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(top))
	}
	if top[0].Name != "Rent" || top[1].Name != "Food" {
		t.Errorf("Top = [%s %s], want [Rent Food]", top[0].Name, top[1].Name)
	}
}

func TestTopExpenseCategories_TiesKeepFirstEncounteredOrder(t *testing.T) {
	summaryService := NewSummaryService()

	summary := summaryService.Summarize([]domain.Transaction{
		tx(domain.TransactionTypeExpense, "B", "100"),
		tx(domain.TransactionTypeExpense, "A", "100"),
		tx(domain.TransactionTypeExpense, "C", "200"),
	})

	top := summaryService.TopExpenseCategories(summary, 0)
	want := []string{"C", "B", "A"}
	for i, entry := range top {
		if entry.Name != want[i] {
			t.Errorf("top[%d] = %s, want %s", i, entry.Name, want[i])
		}
	}
}

func TestTopExpenseCategories_DefaultsToEight(t *testing.T) {
	summaryService := NewSummaryService()

	transactions := make([]domain.Transaction, 0, 10)
	for _, c := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"} {
		transactions = append(transactions, tx(domain.TransactionTypeExpense, c, "10"))
	}
	summary := summaryService.Summarize(transactions)

	top := summaryService.TopExpenseCategories(summary, 0)
	if len(top) != DefaultTopCategories {
		t.Errorf("Expected %d entries, got %d", DefaultTopCategories, len(top))
	}
}

func TestTopExpenseCategories_NoExpenses(t *testing.T) {
	summaryService := NewSummaryService()

	top := summaryService.TopExpenseCategories(&domain.FinancialSummary{}, 5)
	if len(top) != 0 {
		t.Errorf("Expected no entries, got %d", len(top))
	}
}
