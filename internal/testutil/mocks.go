package testutil

import (
	"context"
	"sync"

	"github.com/openbudget/budgetview/internal/domain"
)

// MockStore is an in-memory store.Store with failure injection.
type MockStore struct {
	mu       sync.Mutex
	Values   map[string][]byte
	GetErr   error
	SetErr   error
	SetCalls int
}

// NewMockStore creates a new MockStore
func NewMockStore() *MockStore {
	return &MockStore{Values: make(map[string][]byte)}
}

// Get returns the stored value or domain.ErrNotFound
func (m *MockStore) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	value, ok := m.Values[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return value, nil
}

// Set stores the value, counting calls
func (m *MockStore) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetCalls++
	if m.SetErr != nil {
		return m.SetErr
	}
	m.Values[key] = value
	return nil
}

// MockBudgetFetcher is a mock implementation of service.BudgetFetcher
type MockBudgetFetcher struct {
	Snapshot *domain.BudgetSnapshot
	History  []domain.BudgetSnapshot
	Err      error
}

// CurrentBudget returns the configured snapshot or error
func (m *MockBudgetFetcher) CurrentBudget(_ context.Context) (*domain.BudgetSnapshot, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Snapshot, nil
}

// BudgetHistory returns the configured history or error
func (m *MockBudgetFetcher) BudgetHistory(_ context.Context) ([]domain.BudgetSnapshot, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.History, nil
}

// MockSummaryFetcher is a mock implementation of service.SummaryFetcher
type MockSummaryFetcher struct {
	Summary    *domain.FinancialSummary
	Err        error
	LastUserID string
}

// FinancialSummary returns the configured summary or error
func (m *MockSummaryFetcher) FinancialSummary(_ context.Context, userID string) (*domain.FinancialSummary, error) {
	m.LastUserID = userID
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Summary, nil
}

// MockTransactionLister is a mock implementation of service.TransactionLister
type MockTransactionLister struct {
	Page      *domain.TransactionPage
	Err       error
	LastQuery domain.TransactionQuery
}

// Transactions returns the configured page or error
func (m *MockTransactionLister) Transactions(_ context.Context, q domain.TransactionQuery) (*domain.TransactionPage, error) {
	m.LastQuery = q
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Page, nil
}
