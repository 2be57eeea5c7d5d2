package recommend

import (
	"fmt"
	"math"
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pageza/smart-leftovers/backend/internal/ingredient"
	"github.com/pageza/smart-leftovers/backend/internal/types"
)

// Compose merges ranking and filtering into the final result list: accepted
// candidates sorted descending by score (stable, so ties keep corpus order),
// truncated to topN, each with its matched/unmatched ingredient breakdown
// against the query. Fewer than topN survivors, or none at all, is not an
// error. A non-positive topN yields an empty list.
func Compose(recipes []types.RawRecipe, scores []float64, accepted map[int]struct{}, queryIngredients []string, topN int) []Result {
	results := []Result{}
	if topN <= 0 {
		return results
	}

	candidates := make([]int, 0, len(accepted))
	for i := range recipes {
		if _, ok := accepted[i]; ok {
			candidates = append(candidates, i)
		}
	}
	sort.SliceStable(candidates, func(a, b int) bool {
		return scores[candidates[a]] > scores[candidates[b]]
	})

	if len(candidates) > topN {
		candidates = candidates[:topN]
	}

	queried := make(map[string]struct{}, len(queryIngredients))
	for _, q := range ingredient.NormalizeAll(queryIngredients) {
		queried[q] = struct{}{}
	}

	title := cases.Title(language.English)
	for _, idx := range candidates {
		r := recipes[idx]
		matched := []string{}
		unmatched := []string{}
		for _, ing := range ingredient.NormalizeAll(r.Ingredients) {
			if _, ok := queried[ing]; ok {
				matched = append(matched, ing)
			} else {
				unmatched = append(unmatched, ing)
			}
		}

		results = append(results, Result{
			Name:      fmt.Sprintf("%s Dish #%d", title.String(r.Cuisine), r.ID),
			Cuisine:   title.String(r.Cuisine),
			Matched:   matched,
			Unmatched: unmatched,
			Score:     math.Round(scores[idx]*1000) / 1000,
		})
	}
	return results
}
