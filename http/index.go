package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/dsdoc/dsdoc"
)

// Ensure IndexService implements dsdoc.StoryIndexService at compile time.
var _ dsdoc.StoryIndexService = (*IndexService)(nil)

// IndexService fetches and decodes story index documents over HTTP.
type IndexService struct {
	client *http.Client
}

// NewIndexService creates a new IndexService with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewIndexService(client *http.Client) *IndexService {
	if client == nil {
		client = http.DefaultClient
	}
	return &IndexService{client: client}
}

// FetchIndex fetches <base>/index.json and decodes it. It returns an
// ENOTFOUND error on a non-2xx response, an EINVALID error when the body is
// not a recognizable story index, and transport errors as-is. No retry at
// this layer.
func (s *IndexService) FetchIndex(ctx context.Context, baseURL string) (*dsdoc.StoryIndex, error) {
	indexURL := dsdoc.IndexURL(dsdoc.NormalizeBaseURL(baseURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, indexURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build index request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, dsdoc.Errorf(dsdoc.ENOTFOUND, "story index not found at %s (HTTP %d)", indexURL, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read index body: %w", err)
	}

	var idx dsdoc.StoryIndex
	if err := json.Unmarshal(body, &idx); err != nil {
		if dsdoc.ErrorCode(err) == dsdoc.EINVALID {
			return nil, err
		}
		return nil, dsdoc.Errorf(dsdoc.EINVALID, "invalid story index format: %v", err)
	}
	if err := idx.Validate(); err != nil {
		return nil, err
	}

	return &idx, nil
}
