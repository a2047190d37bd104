package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/openbudget/budgetview/internal/domain"
)

// CurrentBudget fetches the current month's budget vs. actual data.
func (c *Client) CurrentBudget(ctx context.Context) (*domain.BudgetSnapshot, error) {
	var snapshot domain.BudgetSnapshot
	if err := c.getJSON(ctx, "/budget/current", nil, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// BudgetForMonth fetches the snapshot for a specific month.
func (c *Client) BudgetForMonth(ctx context.Context, year, month int) (*domain.BudgetSnapshot, error) {
	query := url.Values{}
	query.Set("year", strconv.Itoa(year))
	query.Set("month", strconv.Itoa(month))

	var snapshot domain.BudgetSnapshot
	if err := c.getJSON(ctx, "/budget/month", query, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// BudgetHistory fetches the recent months' snapshots, most recent last.
func (c *Client) BudgetHistory(ctx context.Context) ([]domain.BudgetSnapshot, error) {
	var history []domain.BudgetSnapshot
	if err := c.getJSON(ctx, "/budget/history", nil, &history); err != nil {
		return nil, err
	}
	return history, nil
}

// UpdateBudget replaces the current month's budgeted amounts.
func (c *Client) UpdateBudget(ctx context.Context, categories map[string]decimal.Decimal) error {
	body := struct {
		Categories map[string]decimal.Decimal `json:"categories"`
	}{Categories: categories}

	_, err := c.do(ctx, http.MethodPost, "/budget", nil, body)
	return err
}

// SetCategoryBudget sets the budgeted amount for one category.
func (c *Client) SetCategoryBudget(ctx context.Context, category string, amount decimal.Decimal) error {
	body := struct {
		Category string          `json:"category"`
		Amount   decimal.Decimal `json:"amount"`
	}{Category: category, Amount: amount}

	_, err := c.do(ctx, http.MethodPatch, "/budget/category", nil, body)
	return err
}

// ResetBudget clears the current month's budget.
func (c *Client) ResetBudget(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/budget/reset", nil, struct{}{})
	return err
}

// CopyPreviousMonthBudget copies last month's budget into the current month.
func (c *Client) CopyPreviousMonthBudget(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/budget/copy-previous", nil, struct{}{})
	return err
}
