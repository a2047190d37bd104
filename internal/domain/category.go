package domain

type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Category is a named bucket for transactions. Name is the identity
// (case-sensitive); predefined categories are seeded at registry init
// and can never be removed.
type Category struct {
	Name        string       `json:"name"`
	Type        CategoryType `json:"type"`
	Description string       `json:"description,omitempty"`
}

var predefinedCategories = []Category{
	{Name: "Salary", Type: CategoryTypeIncome},
	{Name: "Freelance", Type: CategoryTypeIncome},
	{Name: "Investment", Type: CategoryTypeIncome},
	{Name: "Bonus", Type: CategoryTypeIncome},
	{Name: "Gift", Type: CategoryTypeIncome},
	{Name: "Other Income", Type: CategoryTypeIncome},
	{Name: "Groceries", Type: CategoryTypeExpense},
	{Name: "Entertainment", Type: CategoryTypeExpense},
	{Name: "Utilities", Type: CategoryTypeExpense},
	{Name: "Transportation", Type: CategoryTypeExpense},
	{Name: "Healthcare", Type: CategoryTypeExpense},
	{Name: "Dining", Type: CategoryTypeExpense},
	{Name: "Shopping", Type: CategoryTypeExpense},
	{Name: "Education", Type: CategoryTypeExpense},
	{Name: "Travel", Type: CategoryTypeExpense},
	{Name: "Rent/Mortgage", Type: CategoryTypeExpense},
	{Name: "Insurance", Type: CategoryTypeExpense},
	{Name: "Savings", Type: CategoryTypeExpense},
	{Name: "Other Expenses", Type: CategoryTypeExpense},
}

var predefinedNames = func() map[string]struct{} {
	names := make(map[string]struct{}, len(predefinedCategories))
	for _, c := range predefinedCategories {
		names[c.Name] = struct{}{}
	}
	return names
}()

// PredefinedCategories returns a fresh copy of the seed category list.
func PredefinedCategories() []Category {
	out := make([]Category, len(predefinedCategories))
	copy(out, predefinedCategories)
	return out
}

// IsPredefinedCategory reports whether name belongs to the seed set,
// regardless of whether the category currently exists in a registry.
func IsPredefinedCategory(name string) bool {
	_, ok := predefinedNames[name]
	return ok
}
