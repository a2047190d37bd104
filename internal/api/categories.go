package api

import (
	"context"

	"github.com/openbudget/budgetview/internal/domain"
)

// Categories fetches the server's category list.
func (c *Client) Categories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := c.getJSON(ctx, "/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
