package mock

import (
	"context"

	"github.com/dsdoc/dsdoc"
)

var _ dsdoc.StoryIndexService = (*StoryIndexService)(nil)

// StoryIndexService is a mock implementation of dsdoc.StoryIndexService.
type StoryIndexService struct {
	FetchIndexFn func(ctx context.Context, baseURL string) (*dsdoc.StoryIndex, error)
}

func (s *StoryIndexService) FetchIndex(ctx context.Context, baseURL string) (*dsdoc.StoryIndex, error) {
	return s.FetchIndexFn(ctx, baseURL)
}
