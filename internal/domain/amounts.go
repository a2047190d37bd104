package domain

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// CategoryAmounts is a category-keyed amount map that preserves key
// insertion order. The API serializes these as JSON objects, and the
// summary partitions (over/under budget, chart series) must follow the
// object's key order, so a plain Go map does not work here.
//
// A nil *CategoryAmounts behaves as an empty map for reads.
type CategoryAmounts struct {
	keys   []string
	values map[string]decimal.Decimal
}

// NewCategoryAmounts creates an empty ordered amount map.
func NewCategoryAmounts() *CategoryAmounts {
	return &CategoryAmounts{values: make(map[string]decimal.Decimal)}
}

// Set stores the amount for a category, appending the key on first use.
func (a *CategoryAmounts) Set(category string, amount decimal.Decimal) {
	if a.values == nil {
		a.values = make(map[string]decimal.Decimal)
	}
	if _, ok := a.values[category]; !ok {
		a.keys = append(a.keys, category)
	}
	a.values[category] = amount
}

// Add accumulates amount onto the category's current value.
func (a *CategoryAmounts) Add(category string, amount decimal.Decimal) {
	a.Set(category, a.Get(category).Add(amount))
}

// Get returns the amount for a category, decimal.Zero when absent.
func (a *CategoryAmounts) Get(category string) decimal.Decimal {
	if a == nil {
		return decimal.Zero
	}
	if v, ok := a.values[category]; ok {
		return v
	}
	return decimal.Zero
}

// Has reports whether the category has an entry.
func (a *CategoryAmounts) Has(category string) bool {
	if a == nil {
		return false
	}
	_, ok := a.values[category]
	return ok
}

// Keys returns the category names in insertion order.
func (a *CategoryAmounts) Keys() []string {
	if a == nil {
		return nil
	}
	out := make([]string, len(a.keys))
	copy(out, a.keys)
	return out
}

// Len returns the number of entries.
func (a *CategoryAmounts) Len() int {
	if a == nil {
		return 0
	}
	return len(a.keys)
}

// MarshalJSON writes the entries as a JSON object in insertion order.
func (a *CategoryAmounts) MarshalJSON() ([]byte, error) {
	if a == nil || len(a.keys) == 0 {
		return []byte("{}"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range a.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.WriteString(a.values[key].String())
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object keeping the key order of the document.
func (a *CategoryAmounts) UnmarshalJSON(data []byte) error {
	a.keys = nil
	a.values = make(map[string]decimal.Decimal)

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("category amounts: expected object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("category amounts: expected string key, got %v", keyTok)
		}
		var amount decimal.Decimal
		if err := dec.Decode(&amount); err != nil {
			return fmt.Errorf("category amounts: %q: %w", key, err)
		}
		a.Set(key, amount)
	}

	// closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
