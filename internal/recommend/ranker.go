package recommend

import (
	"github.com/pageza/smart-leftovers/backend/internal/tfidf"
)

// Rank projects the query document into the fitted vector space and scores
// it against every corpus row by cosine similarity. Returns one score per
// row in corpus order, each in [0,1]. Query tokens outside the fitted
// vocabulary contribute zero weight.
func Rank(v tfidf.Vectorizer, matrix tfidf.Matrix, queryDoc string) []float64 {
	return tfidf.CosineSimilarities(v.Transform(queryDoc), matrix)
}
