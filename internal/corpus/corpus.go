// Package corpus builds and caches the indexed recipe corpus: the raw
// records plus the fitted TF-IDF space and document matrix. A corpus is
// immutable once built and safe to share across concurrent requests.
package corpus

import (
	"github.com/pageza/smart-leftovers/backend/internal/ingredient"
	"github.com/pageza/smart-leftovers/backend/internal/tfidf"
	"github.com/pageza/smart-leftovers/backend/internal/types"
)

// Corpus holds the recipe set and its weighted term-vector representation.
// Matrix row order matches Recipes order. Rebuilding produces a new Corpus;
// vectors from an older build are never mixed with a newer one.
type Corpus struct {
	Recipes    []types.RawRecipe
	Vectorizer tfidf.Vectorizer
	Matrix     tfidf.Matrix
}

// Build indexes the recipes: each recipe's normalized ingredients become one
// document, and the TF-IDF space is fitted over all documents at once. An
// empty recipe set yields an empty (but usable) corpus.
func Build(recipes []types.RawRecipe) *Corpus {
	docs := make([]string, len(recipes))
	for i, r := range recipes {
		docs[i] = ingredient.Document(r.Ingredients)
	}

	v := tfidf.New()
	matrix := v.FitTransform(docs)

	return &Corpus{
		Recipes:    recipes,
		Vectorizer: v,
		Matrix:     matrix,
	}
}

// Len returns the number of recipes in the corpus.
func (c *Corpus) Len() int {
	return len(c.Recipes)
}
