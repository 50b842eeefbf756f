package platform

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/veil/pkg/adapters/fs"
	"github.com/aretw0/veil/pkg/core"
	"github.com/aretw0/veil/pkg/mapping"
	"github.com/aretw0/veil/pkg/redact"
)

// Mapping is an open mapping session: the in-memory store plus the
// repository it was loaded from. The store is authoritative between
// Save calls; persistence is an explicit full-document write.
type Mapping struct {
	store   *mapping.Store
	repo    *fs.Repository
	library *redact.Library
	logger  *slog.Logger
}

// Open loads the mapping at path (empty document if the file does not
// exist, unless WithMustExist is set) and returns a session over it.
func Open(path string, opts ...Option) (*Mapping, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	repo := fs.NewRepository(fs.Config{
		Path:         path,
		MustExist:    o.mustExist,
		Logger:       o.logger,
		ErrorHandler: o.errorHandler,
	})

	doc, err := repo.Load(context.Background())
	if err != nil {
		return nil, err
	}

	library := o.library
	if library == nil {
		library = redact.DefaultLibrary()
	}

	return &Mapping{
		store:   mapping.NewStore(doc),
		repo:    repo,
		library: library,
		logger:  o.logger,
	}, nil
}

// Create starts a new empty mapping and persists it at path
// immediately, so the file exists before any entities are added.
// Opening an existing path is an error.
func Create(path string, opts ...Option) (*Mapping, error) {
	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("mapping already exists: %s", path)
	}

	m, err := Open(path, opts...)
	if err != nil {
		return nil, err
	}
	if err := m.Save(context.Background()); err != nil {
		return nil, err
	}
	return m, nil
}

// Store returns the in-memory mapping store.
func (m *Mapping) Store() *mapping.Store {
	return m.store
}

// Path returns the file the mapping was opened from.
func (m *Mapping) Path() string {
	return m.repo.Path
}

// Engine creates a redaction engine over this mapping's store.
// Engines share the store but own their log and counters.
func (m *Mapping) Engine() *redact.Engine {
	return redact.NewEngine(m.store, m.library)
}

// Save persists the store's document back to the path it was opened
// from, refreshing the Updated timestamp.
func (m *Mapping) Save(ctx context.Context) error {
	return m.repo.Save(ctx, m.store.Document())
}

// SaveTo persists the store's document to an explicit path.
func (m *Mapping) SaveTo(ctx context.Context, path string) error {
	return m.repo.SaveTo(ctx, path, m.store.Document())
}

// Watch emits an event whenever the mapping file changes on disk.
// See fs.Repository.Watch for semantics.
func (m *Mapping) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	return m.repo.Watch(ctx, pattern)
}
