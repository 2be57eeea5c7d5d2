package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "train.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileSourceLoad(t *testing.T) {
	path := writeDataset(t, `[
		{"id": 10259, "cuisine": "greek", "ingredients": ["romaine lettuce", "feta cheese"]},
		{"id": 25693, "cuisine": "southern_us", "ingredients": ["plain flour"]}
	]`)

	recipes, err := NewFileSource(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, recipes, 2)

	assert.Equal(t, 10259, recipes[0].ID)
	assert.Equal(t, "greek", recipes[0].Cuisine)
	assert.Equal(t, []string{"romaine lettuce", "feta cheese"}, recipes[0].Ingredients)
}

func TestFileSourceMissingFile(t *testing.T) {
	_, err := NewFileSource(filepath.Join(t.TempDir(), "nope.json")).Load(context.Background())
	assert.ErrorIs(t, err, ErrDatasetUnavailable)
}

func TestFileSourceMalformedJSON(t *testing.T) {
	path := writeDataset(t, `{"not": "a list"`)

	_, err := NewFileSource(path).Load(context.Background())
	assert.ErrorIs(t, err, ErrDatasetUnavailable)
}

func TestFileSourceEmptyCorpus(t *testing.T) {
	path := writeDataset(t, `[]`)

	recipes, err := NewFileSource(path).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, recipes)
}
