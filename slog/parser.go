package slog

import (
	"log/slog"
	"time"

	"github.com/dsdoc/dsdoc"
)

// Ensure LoggingParser implements dsdoc.PropParser.
var _ dsdoc.PropParser = (*LoggingParser)(nil)

// LoggingParser wraps a PropParser with debug logging.
type LoggingParser struct {
	next   dsdoc.PropParser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next dsdoc.PropParser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// ParseProps delegates to the wrapped parser and logs the outcome,
// including whether the result still looks like placeholder data.
func (p *LoggingParser) ParseProps(html string) (props []dsdoc.Prop, err error) {
	defer func(begin time.Time) {
		p.logger.Info("parse props",
			"props", len(props),
			"low_confidence", dsdoc.LowConfidence(props),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.ParseProps(html)
}
