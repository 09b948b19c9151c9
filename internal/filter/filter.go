// Package filter narrows a review collection to the entries matching a search query.
package filter

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/idilsaglam/reviews/internal/model"
)

// Apply returns, in order, the items whose text contains query ignoring case.
// A blank query returns items unchanged.
func Apply(items []model.Item, query string) []model.Item {
	if strings.TrimSpace(query) == "" {
		return items
	}
	fold := cases.Fold()
	needle := fold.String(query)
	out := make([]model.Item, 0, len(items))
	for _, it := range items {
		if strings.Contains(fold.String(it.Text), needle) {
			out = append(out, it)
		}
	}
	return out
}
