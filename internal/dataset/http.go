package dataset

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/pageza/smart-leftovers/backend/internal/types"
)

// HTTPSource fetches the corpus JSON from a URL.
type HTTPSource struct {
	client *resty.Client
	url    string
}

// NewHTTPSource creates an HTTP-backed dataset source
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond)
	return &HTTPSource{client: client, url: url}
}

// Load fetches and parses the dataset.
func (s *HTTPSource) Load(ctx context.Context) ([]types.RawRecipe, error) {
	resp, err := s.client.R().SetContext(ctx).Get(s.url)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching %s: %v", ErrDatasetUnavailable, s.url, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: fetching %s: status %d", ErrDatasetUnavailable, s.url, resp.StatusCode())
	}
	return decodeRecipes(resp.Body())
}
