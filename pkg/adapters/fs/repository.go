// Package fs persists mapping documents on the local filesystem.
//
// Persistence is a full read-modify-write of one document: writes are
// atomic (temp file + rename) but there is no locking or versioning,
// so concurrent writers can silently lose updates.
package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/aretw0/veil/pkg/core"
)

// Repository loads and saves a mapping document at a fixed path.
// The serialization format is keyed by the file extension; unknown
// extensions fall back to JSON, the canonical format.
type Repository struct {
	Path string

	config      Config
	serializers map[string]Serializer

	mu            sync.RWMutex
	watcherActive bool
}

// Config holds the configuration for the filesystem repository.
type Config struct {
	Path      string
	MustExist bool
	Logger    *slog.Logger
	// ErrorHandler receives runtime watcher failures that would
	// otherwise only be logged.
	ErrorHandler func(error)
}

// NewRepository creates a new filesystem-backed repository.
func NewRepository(config Config) *Repository {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &Repository{
		Path:        config.Path,
		config:      config,
		serializers: DefaultSerializers(),
	}
}

// Load reads the mapping document from disk. A missing file yields an
// empty document unless MustExist is set.
func (r *Repository) Load(ctx context.Context) (*core.Document, error) {
	if r.Path == "" {
		return nil, core.ErrNoPath
	}

	f, err := os.Open(r.Path)
	if err != nil {
		if os.IsNotExist(err) && !r.config.MustExist {
			r.config.Logger.Debug("mapping file not found, starting empty", "path", r.Path)
			return core.NewDocument(), nil
		}
		return nil, fmt.Errorf("failed to open mapping file: %w", err)
	}
	defer f.Close()

	doc, err := r.serializer().Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mapping %s: %w", r.Path, err)
	}
	return doc, nil
}

// Save persists the document to the repository path, refreshing its
// Updated timestamp and creating parent directories as needed.
func (r *Repository) Save(ctx context.Context, doc *core.Document) error {
	return r.SaveTo(ctx, r.Path, doc)
}

// SaveTo persists the document to an explicit path.
func (r *Repository) SaveTo(ctx context.Context, path string, doc *core.Document) error {
	if path == "" {
		return core.ErrNoPath
	}

	doc.Updated = time.Now()

	data, err := r.serializerFor(path).Serialize(doc)
	if err != nil {
		return fmt.Errorf("failed to serialize mapping: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directories: %w", err)
		}
	}

	if err := writeFileAtomic(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write mapping file: %w", err)
	}

	r.config.Logger.Debug("mapping saved", "path", path, "entities", len(doc.Entities))
	return nil
}

func (r *Repository) serializer() Serializer {
	return r.serializerFor(r.Path)
}

func (r *Repository) serializerFor(path string) Serializer {
	if s, ok := r.serializers[filepath.Ext(path)]; ok {
		return s
	}
	return &JSONSerializer{}
}

func (r *Repository) setWatcherActive(active bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.watcherActive = active
}

// WatcherActive reports whether a watch goroutine is currently running.
func (r *Repository) WatcherActive() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.watcherActive
}
