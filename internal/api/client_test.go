package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openbudget/budgetview/internal/domain"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(Config{
		BaseURL:           server.URL,
		Token:             "test-token",
		RequestsPerSecond: 1000,
	}, zerolog.Nop())
}

func TestCurrentBudget_ParsesSnapshotKeepingKeyOrder(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/budget/current", r.URL.Path)
		w.Write([]byte(`{
			"budget": {"Rent": 1200, "Groceries": 400, "Fun": 50},
			"actualExpenses": {"Groceries": 380.25},
			"month": "2026-08-01T00:00:00.000Z"
		}`))
	}))

	snapshot, err := client.CurrentBudget(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Rent", "Groceries", "Fun"}, snapshot.Budget.Keys())
	assert.True(t, snapshot.ActualExpenses.Get("Groceries").Equal(decimal.RequireFromString("380.25")))
	assert.True(t, snapshot.ActualExpenses.Get("Rent").IsZero())
	assert.Equal(t, 2026, snapshot.Month.Year())
}

func TestClient_SetsAuthAndRequestIDHeaders(t *testing.T) {
	var gotAuth, gotRequestID string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`[]`))
	}))

	_, err := client.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestTransactions_BuildsQueryWithDefaults(t *testing.T) {
	var gotQuery map[string][]string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"transactions": [], "totalPages": 0, "currentPage": 1, "total": 0}`))
	}))

	_, err := client.Transactions(context.Background(), domain.TransactionQuery{
		Category: "Groceries",
		Type:     domain.TransactionTypeExpense,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"1"}, gotQuery["page"])
	assert.Equal(t, []string{"10"}, gotQuery["limit"])
	assert.Equal(t, []string{"Groceries"}, gotQuery["category"])
	assert.Equal(t, []string{"expense"}, gotQuery["type"])
	assert.NotContains(t, gotQuery, "startDate")
	assert.NotContains(t, gotQuery, "endDate")
}

func TestCreateTransaction_StripsClientSideID(t *testing.T) {
	var body map[string]any
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Write([]byte(`{"_id": "srv-1", "type": "expense", "category": "Fun", "amount": 12.5}`))
	}))

	created, err := client.CreateTransaction(context.Background(), domain.Transaction{
		ID:       "stale-local-id",
		Type:     domain.TransactionTypeExpense,
		Category: "Fun",
		Amount:   decimal.RequireFromString("12.5"),
	})
	require.NoError(t, err)

	assert.NotContains(t, body, "_id")
	assert.Equal(t, 12.5, body["amount"], "amount must travel as a bare JSON number")
	assert.Equal(t, "srv-1", created.ID)
}

func TestFinancialSummary_PostsUserID(t *testing.T) {
	var body map[string]string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/transactions/summary", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Write([]byte(`{
			"totalIncome": 3000, "totalExpenses": 1060, "balance": 1940,
			"byCategory": {"expense": {"Rent": 1000, "Food": 60}}
		}`))
	}))

	summary, err := client.FinancialSummary(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, "user-1", body["userId"])
	assert.True(t, summary.Balance.Equal(decimal.NewFromInt(1940)))
	assert.Nil(t, summary.ByCategory.Income)
	assert.Equal(t, []string{"Rent", "Food"}, summary.ByCategory.Expense.Keys())
}

func TestClient_NonOKStatusBecomesAPIError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "budget not found"}`, http.StatusNotFound)
	}))

	_, err := client.CurrentBudget(context.Background())
	require.Error(t, err)

	var apiErr *domain.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "budget not found")
}

func TestDeleteTransaction_UsesEscapedPath(t *testing.T) {
	var gotPath string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.WriteHeader(http.StatusNoContent)
	}))

	err := client.DeleteTransaction(context.Background(), "abc/123")
	require.NoError(t, err)
	assert.Equal(t, "/transactions/abc%2F123", gotPath)
}

func TestUpdateBudget_SendsCategoriesBody(t *testing.T) {
	var body struct {
		Categories map[string]float64 `json:"categories"`
	}
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Write([]byte(`{}`))
	}))

	err := client.UpdateBudget(context.Background(), map[string]decimal.Decimal{
		"Groceries": decimal.NewFromInt(400),
	})
	require.NoError(t, err)
	assert.Equal(t, 400.0, body.Categories["Groceries"])
}

func TestClient_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))

	ctx := context.Background()
	for i := 0; i < breakerFailureThreshold; i++ {
		_, err := client.CurrentBudget(ctx)
		var apiErr *domain.APIError
		require.True(t, errors.As(err, &apiErr), "request %d should reach the server", i)
	}

	// Threshold reached: the next call fails fast without a request.
	_, err := client.CurrentBudget(ctx)
	require.Error(t, err)
	var apiErr *domain.APIError
	assert.False(t, errors.As(err, &apiErr), "breaker should reject before the transport")
}
