package service

import (
	"encoding/json"
	"errors"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/openbudget/budgetview/internal/domain"
	"github.com/openbudget/budgetview/internal/store"
)

// CategoriesKey is the key the registry persists under. It matches the
// key the web client used, so state carries over.
const CategoriesKey = "budget-tracker-categories"

// CategoryService is the in-memory category registry. It is loaded from
// the store at construction (seeded with the predefined set when empty)
// and persisted after every mutation. The in-memory list stays
// authoritative for the session even when persisting fails, so mutation
// methods never return an error; persistence failures are logged.
//
// The service is not safe for concurrent mutation; callers are expected
// to sequence access, which the CLI does by construction.
type CategoryService struct {
	store      store.Store
	logger     zerolog.Logger
	categories []domain.Category
}

// NewCategoryService creates the registry, restoring persisted state
// when present.
func NewCategoryService(st store.Store, logger zerolog.Logger) *CategoryService {
	s := &CategoryService{store: st, logger: logger}
	s.load()
	return s
}

func (s *CategoryService) load() {
	data, err := s.store.Get(CategoriesKey)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn().Err(err).Msg("failed to load categories, seeding defaults")
		}
		s.categories = domain.PredefinedCategories()
		return
	}

	var categories []domain.Category
	if err := json.Unmarshal(data, &categories); err != nil || len(categories) == 0 {
		s.logger.Warn().Err(err).Msg("persisted categories unreadable, seeding defaults")
		s.categories = domain.PredefinedCategories()
		return
	}
	s.categories = categories
}

// Categories returns a copy of the registry in list order.
func (s *CategoryService) Categories() []domain.Category {
	out := make([]domain.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// Names returns all category names in list order.
func (s *CategoryService) Names() []string {
	names := make([]string, len(s.categories))
	for i, c := range s.categories {
		names[i] = c.Name
	}
	return names
}

// ByType returns the names of categories with the given type,
// preserving list order.
func (s *CategoryService) ByType(t domain.CategoryType) []string {
	var names []string
	for _, c := range s.categories {
		if c.Type == t {
			names = append(names, c.Name)
		}
	}
	return names
}

// ByName looks up a category by exact name.
func (s *CategoryService) ByName(name string) (domain.Category, bool) {
	for _, c := range s.categories {
		if c.Name == name {
			return c, true
		}
	}
	return domain.Category{}, false
}

// TypeOf returns the type of a named category.
func (s *CategoryService) TypeOf(name string) (domain.CategoryType, bool) {
	c, ok := s.ByName(name)
	if !ok {
		return "", false
	}
	return c.Type, true
}

// Add appends a custom category. Adding an existing name is a no-op.
func (s *CategoryService) Add(name string, t domain.CategoryType, description string) {
	if _, exists := s.ByName(name); exists {
		return
	}
	s.categories = append(s.categories, domain.Category{Name: name, Type: t, Description: description})
	s.persist()
}

// Remove deletes a custom category. Predefined and unknown names are
// no-ops.
func (s *CategoryService) Remove(name string) {
	if domain.IsPredefinedCategory(name) {
		return
	}
	for i, c := range s.categories {
		if c.Name == name {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			s.persist()
			return
		}
	}
}

// CategoryUpdate carries the fields Update merges; nil fields are left
// alone.
type CategoryUpdate struct {
	Name        *string
	Type        *domain.CategoryType
	Description *string
}

// Update merges fields into an existing category in place. Unknown
// names are a no-op.
func (s *CategoryService) Update(name string, update CategoryUpdate) {
	for i := range s.categories {
		if s.categories[i].Name != name {
			continue
		}
		if update.Name != nil {
			s.categories[i].Name = *update.Name
		}
		if update.Type != nil {
			s.categories[i].Type = *update.Type
		}
		if update.Description != nil {
			s.categories[i].Description = *update.Description
		}
		s.persist()
		return
	}
}

// IsCustom reports whether a name is outside the predefined set,
// regardless of whether it currently exists in the registry.
func (s *CategoryService) IsCustom(name string) bool {
	return !domain.IsPredefinedCategory(name)
}

// CategoryStats is a category's transaction total and count.
type CategoryStats struct {
	Category domain.Category `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"count"`
}

// WithStats aggregates transactions per category, in first-encountered
// order. Transactions referencing unknown categories are skipped.
func (s *CategoryService) WithStats(transactions []domain.Transaction) []CategoryStats {
	totals := domain.NewCategoryAmounts()
	counts := make(map[string]int)
	for _, t := range transactions {
		totals.Add(t.Category, t.Amount)
		counts[t.Category]++
	}

	var stats []CategoryStats
	for _, name := range totals.Keys() {
		category, ok := s.ByName(name)
		if !ok {
			continue
		}
		stats = append(stats, CategoryStats{
			Category: category,
			Total:    totals.Get(name),
			Count:    counts[name],
		})
	}
	return stats
}

func (s *CategoryService) persist() {
	data, err := json.Marshal(s.categories)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to encode categories")
		return
	}
	if err := s.store.Set(CategoriesKey, data); err != nil {
		s.logger.Warn().Err(err).Msg("failed to persist categories, in-memory state kept")
	}
}
