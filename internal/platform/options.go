package platform

import (
	"log/slog"

	"github.com/aretw0/veil/pkg/redact"
)

// options holds the internal configuration for opening a mapping.
type options struct {
	logger       *slog.Logger
	mustExist    bool
	library      *redact.Library
	errorHandler func(error)
}

// Option defines a functional option for configuring a mapping session.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		logger:  slog.Default(),
		library: nil,
	}
}

// WithLogger sets the logger used by the session and its repository.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMustExist requires the mapping file to already exist; opening a
// missing path becomes an error instead of an empty mapping.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}

// WithLibrary overrides the detector registry used by engines created
// from this session. Defaults to redact.DefaultLibrary().
func WithLibrary(library *redact.Library) Option {
	return func(o *options) {
		o.library = library
	}
}

// WithWatcherErrorHandler registers a callback for errors occurring
// during the Watch loop, which are otherwise only logged.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.errorHandler = fn
	}
}
