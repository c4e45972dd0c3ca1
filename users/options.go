package users

import (
	"context"
	"log/slog"

	"golang.org/x/text/language"
)

// Logger is the minimal structured logger used by this package.
// It matches slog.Logger.LogAttrs so *slog.Logger can be passed directly.
type Logger interface {
	LogAttrs(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr)
}

// config holds the options shared by every list operation.
type config struct {
	// logger receives skipped records and degenerate lookups.
	// Defaults to slog.Default().
	logger Logger

	// level is the level used for those messages. Defaults to slog.LevelDebug.
	level slog.Level

	// lang selects the collation rules of SortUsersByName.
	// Defaults to language.English.
	lang language.Tag
}

// Option configures a list operation.
type Option func(*config)

// WithLogger sets a structured Logger.
func WithLogger(l Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithLogLevel sets the level used for log messages.
func WithLogLevel(level slog.Level) Option {
	return func(c *config) {
		c.level = level
	}
}

// WithLanguage sets the language whose collation rules order names.
func WithLanguage(tag language.Tag) Option {
	return func(c *config) {
		c.lang = tag
	}
}

func newConfig(opts []Option) *config {
	c := &config{
		logger: slog.Default(),
		level:  slog.LevelDebug,
		lang:   language.English,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *config) log(msg string, attrs ...slog.Attr) {
	c.logger.LogAttrs(context.Background(), c.level, msg, attrs...)
}
