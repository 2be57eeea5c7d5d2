// Package recommend contains the pure recommendation pipeline: ranking the
// corpus against a query, constraint filtering, and composing the final
// explained results. Nothing in this package touches I/O.
package recommend

import "errors"

// ErrEmptyQuery is returned when the ingredient list is empty, or normalizes
// to nothing but whitespace. Scoring an empty query would be mathematically
// valid but practically meaningless, so it is rejected before ranking.
var ErrEmptyQuery = errors.New("ingredient query is empty")

// DefaultTopN and DefaultMaxIngredients mirror the product defaults.
const (
	DefaultTopN           = 5
	DefaultMaxIngredients = 10
)

// DefaultNonVegTerms returns the stock keyword list used by the vegetarian
// filter. Matching is by substring over normalized ingredients, so "egg"
// also excludes "eggplant"; that behavior is deliberate and locked in by
// tests.
func DefaultNonVegTerms() []string {
	return []string{"chicken", "fish", "mutton", "beef", "egg", "bacon", "meat", "pork", "shrimp", "lamb"}
}

// Query is one recommendation request. Ingredients are raw user strings,
// pre-split by the intake layer.
type Query struct {
	Ingredients    []string
	VegetarianOnly bool
	MaxIngredients int
	TopN           int
}

// Result is one recommended recipe with its match explanation. Matched and
// Unmatched partition the recipe's normalized ingredients by presence in the
// normalized query, both in the recipe's own ingredient order.
type Result struct {
	Name      string   `json:"name"`
	Cuisine   string   `json:"cuisine"`
	Matched   []string `json:"matched"`
	Unmatched []string `json:"unmatched"`
	Score     float64  `json:"score"`
}
