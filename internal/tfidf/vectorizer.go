// Package tfidf implements the term-frequency/inverse-document-frequency
// vector space used to rank recipes against a query. The weighting follows
// the common smoothed formulation: idf = ln((1+N)/(1+df)) + 1, with each
// document vector L2-normalized after weighting, so cosine similarity
// between unit vectors reduces to a dot product.
package tfidf

import (
	"math"
	"sort"
	"strings"
)

// Vectorizer is the fit/transform capability the ranking layer depends on.
// Any TF-IDF-capable backend satisfies it.
type Vectorizer interface {
	// Fit learns the vocabulary and term weights from the corpus documents.
	Fit(docs []string)
	// Transform projects a document into the fitted space. Tokens unseen
	// during Fit contribute zero weight.
	Transform(doc string) []float64
}

// Matrix is a dense document-by-term weight matrix, one row per corpus
// document in corpus order.
type Matrix [][]float64

// TFIDF is the fitted vocabulary and IDF weights.
type TFIDF struct {
	vocabulary map[string]int
	idf        []float64
}

// New returns an unfitted TF-IDF vectorizer.
func New() *TFIDF {
	return &TFIDF{vocabulary: make(map[string]int)}
}

// Fit builds the vocabulary over all whitespace-delimited tokens in docs and
// computes smoothed IDF weights. Terms get stable column indices in sorted
// order, so refitting the same corpus yields the same space.
func (v *TFIDF) Fit(docs []string) {
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, tok := range strings.Fields(doc) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	v.vocabulary = make(map[string]int, len(terms))
	v.idf = make([]float64, len(terms))
	n := float64(len(docs))
	for i, term := range terms {
		v.vocabulary[term] = i
		v.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}
}

// Transform converts a document into its L2-normalized TF-IDF vector. A
// document with no in-vocabulary tokens maps to the zero vector.
func (v *TFIDF) Transform(doc string) []float64 {
	vec := make([]float64, len(v.idf))
	for _, tok := range strings.Fields(doc) {
		if idx, ok := v.vocabulary[tok]; ok {
			vec[idx]++
		}
	}
	for idx := range vec {
		vec[idx] *= v.idf[idx]
	}
	normalize(vec)
	return vec
}

// FitTransform fits the vectorizer on docs and returns the resulting weight
// matrix, row order matching docs. An empty corpus yields an empty matrix.
func (v *TFIDF) FitTransform(docs []string) Matrix {
	v.Fit(docs)
	m := make(Matrix, len(docs))
	for i, doc := range docs {
		m[i] = v.Transform(doc)
	}
	return m
}

// Dimension reports the size of the fitted vocabulary.
func (v *TFIDF) Dimension() int {
	return len(v.idf)
}

// CosineSimilarities scores a query vector against every matrix row,
// returning one similarity per row in row order. A pair involving an
// all-zero vector scores 0. With non-negative weights every score lies
// in [0, 1].
func CosineSimilarities(query []float64, m Matrix) []float64 {
	scores := make([]float64, len(m))
	qnorm := norm(query)
	if qnorm == 0 {
		return scores
	}
	for i, row := range m {
		rnorm := norm(row)
		if rnorm == 0 {
			continue
		}
		scores[i] = dot(query, row) / (qnorm * rnorm)
	}
	return scores
}

func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func norm(v []float64) float64 {
	return math.Sqrt(dot(v, v))
}

func normalize(v []float64) {
	n := norm(v)
	if n == 0 {
		return
	}
	for i := range v {
		v[i] /= n
	}
}
