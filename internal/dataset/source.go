// Package dataset supplies the raw recipe corpus from one of several
// backends. The recommendation core never reads storage directly; it
// receives the already-parsed record sequence from a Source.
package dataset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pageza/smart-leftovers/backend/internal/types"
)

// ErrDatasetUnavailable wraps any I/O or parse failure while loading the
// corpus. Callers match it with errors.Is.
var ErrDatasetUnavailable = errors.New("dataset unavailable")

// Source loads the full recipe corpus.
type Source interface {
	Load(ctx context.Context) ([]types.RawRecipe, error)
}

func decodeRecipes(data []byte) ([]types.RawRecipe, error) {
	var recipes []types.RawRecipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		return nil, fmt.Errorf("%w: parsing corpus: %v", ErrDatasetUnavailable, err)
	}
	return recipes, nil
}
