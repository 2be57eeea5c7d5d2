package dataset

import (
	"context"
	"fmt"
	"os"

	"github.com/pageza/smart-leftovers/backend/internal/types"
)

// FileSource reads the corpus from a JSON file on disk (train.json layout).
type FileSource struct {
	path string
}

// NewFileSource creates a file-backed dataset source
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Load reads and parses the dataset file.
func (s *FileSource) Load(ctx context.Context) ([]types.RawRecipe, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrDatasetUnavailable, s.path, err)
	}
	return decodeRecipes(data)
}
