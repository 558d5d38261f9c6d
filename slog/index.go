package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/dsdoc/dsdoc"
)

// Ensure LoggingIndexService implements dsdoc.StoryIndexService.
var _ dsdoc.StoryIndexService = (*LoggingIndexService)(nil)

// LoggingIndexService wraps a StoryIndexService with debug logging.
type LoggingIndexService struct {
	next   dsdoc.StoryIndexService
	logger *slog.Logger
}

// NewLoggingIndexService creates a new LoggingIndexService.
func NewLoggingIndexService(next dsdoc.StoryIndexService, logger *slog.Logger) *LoggingIndexService {
	return &LoggingIndexService{next: next, logger: logger}
}

// FetchIndex delegates to the wrapped service and logs the operation.
func (s *LoggingIndexService) FetchIndex(ctx context.Context, baseURL string) (idx *dsdoc.StoryIndex, err error) {
	defer func(begin time.Time) {
		entries := 0
		if idx != nil {
			entries = len(idx.Entries)
		}
		s.logger.Info("index fetch",
			"url", baseURL,
			"entries", entries,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchIndex(ctx, baseURL)
}
