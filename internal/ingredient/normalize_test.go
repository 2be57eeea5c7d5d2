package ingredient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercases", "Fresh Basil", "fresh basil"},
		{"strips digits", "2 eggs", "eggs"},
		{"strips punctuation", "extra-virgin olive oil!", "extravirgin olive oil"},
		{"strips unicode symbols", "crème fraîche™", "crme frache"},
		{"collapses whitespace", "  soy   sauce  ", "soy sauce"},
		{"empty input", "", ""},
		{"symbols only", "1234!?", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{"Fresh Basil", "2% Milk", "  chopped,  onions ", "", "Crème Brûlée #1"}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "normalize should be idempotent for %q", in)
	}
}

func TestNormalizeStripsAllNonLetters(t *testing.T) {
	out := Normalize("a1b2c3 d-e_f .,;'")
	for _, r := range out {
		ok := (r >= 'a' && r <= 'z') || r == ' '
		assert.True(t, ok, "unexpected rune %q in %q", r, out)
	}
}

func TestDocument(t *testing.T) {
	doc := Document([]string{"Whole Milk", "2 Eggs", "Plain Flour"})
	assert.Equal(t, "whole milk eggs plain flour", doc)
}

func TestNormalizeAllKeepsOrder(t *testing.T) {
	out := NormalizeAll([]string{"Milk", "EGG", "flour"})
	assert.Equal(t, []string{"milk", "egg", "flour"}, out)
}
