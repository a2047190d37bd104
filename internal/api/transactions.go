package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/openbudget/budgetview/internal/domain"
)

// Transactions fetches a page of transactions. Zero page/limit fall back
// to the API defaults; empty filter fields are omitted from the query.
func (c *Client) Transactions(ctx context.Context, q domain.TransactionQuery) (*domain.TransactionPage, error) {
	page := q.Page
	if page <= 0 {
		page = domain.DefaultPage
	}
	limit := q.Limit
	if limit <= 0 {
		limit = domain.DefaultLimit
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))
	if q.Category != "" {
		query.Set("category", q.Category)
	}
	if q.Type != "" {
		query.Set("type", string(q.Type))
	}
	if q.StartDate != "" {
		query.Set("startDate", q.StartDate)
	}
	if q.EndDate != "" {
		query.Set("endDate", q.EndDate)
	}

	var result domain.TransactionPage
	if err := c.getJSON(ctx, "/transactions", query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateTransaction submits a new transaction. Any identifier on the
// input is dropped; the API assigns one.
func (c *Client) CreateTransaction(ctx context.Context, t domain.Transaction) (*domain.Transaction, error) {
	t.ID = ""

	body, err := c.do(ctx, http.MethodPost, "/transactions", nil, t)
	if err != nil {
		return nil, err
	}

	var created domain.Transaction
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, fmt.Errorf("decode created transaction: %w", err)
	}
	return &created, nil
}

// UpdateTransaction replaces fields of an existing transaction.
func (c *Client) UpdateTransaction(ctx context.Context, id string, fields domain.TransactionUpdate) (*domain.Transaction, error) {
	body, err := c.do(ctx, http.MethodPut, "/transactions/"+url.PathEscape(id), nil, fields)
	if err != nil {
		return nil, err
	}

	var updated domain.Transaction
	if err := json.Unmarshal(body, &updated); err != nil {
		return nil, fmt.Errorf("decode updated transaction: %w", err)
	}
	return &updated, nil
}

// DeleteTransaction removes a transaction by id.
func (c *Client) DeleteTransaction(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/transactions/"+url.PathEscape(id), nil, nil)
	return err
}

// FinancialSummary fetches the server-computed income/expense summary
// for a user.
func (c *Client) FinancialSummary(ctx context.Context, userID string) (*domain.FinancialSummary, error) {
	body := struct {
		UserID string `json:"userId"`
	}{UserID: userID}

	raw, err := c.do(ctx, http.MethodPost, "/transactions/summary", nil, body)
	if err != nil {
		return nil, err
	}

	var summary domain.FinancialSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil, fmt.Errorf("decode financial summary: %w", err)
	}
	return &summary, nil
}
