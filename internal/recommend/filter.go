package recommend

import (
	"strings"

	"github.com/pageza/smart-leftovers/backend/internal/ingredient"
	"github.com/pageza/smart-leftovers/backend/internal/types"
)

// Filter applies the dietary and complexity constraints, returning the set
// of accepted corpus indices. It is independent of scoring.
//
// A recipe is accepted iff its raw ingredient count is at most
// maxIngredients (inclusive). With vegetarianOnly set, a recipe is also
// rejected when any of its normalized ingredients contains any of the
// nonVegTerms as a substring. A non-positive maxIngredients accepts nothing.
func Filter(recipes []types.RawRecipe, maxIngredients int, vegetarianOnly bool, nonVegTerms []string) map[int]struct{} {
	accepted := make(map[int]struct{})
	if maxIngredients <= 0 {
		return accepted
	}

	for i, r := range recipes {
		if len(r.Ingredients) > maxIngredients {
			continue
		}
		if vegetarianOnly && !isVegetarian(r.Ingredients, nonVegTerms) {
			continue
		}
		accepted[i] = struct{}{}
	}
	return accepted
}

func isVegetarian(ingredients []string, nonVegTerms []string) bool {
	for _, ing := range ingredients {
		normalized := ingredient.Normalize(ing)
		for _, term := range nonVegTerms {
			if strings.Contains(normalized, term) {
				return false
			}
		}
	}
	return true
}
