package veil

import (
	"github.com/aretw0/veil/internal/platform"
	"github.com/aretw0/veil/pkg/core"
	"github.com/aretw0/veil/pkg/mapping"
	"github.com/aretw0/veil/pkg/redact"
)

// Version exposes the version of the library.
const Version = "0.1.0"

// --- Types ---

// Entity is a public alias for the domain entity record.
type Entity = core.Entity

// EntityType classifies entities (person, organization, ...).
type EntityType = core.EntityType

// EntityPatch is a partial update applied through Store.Update.
type EntityPatch = core.EntityPatch

// Document is the persisted mapping document.
type Document = core.Document

// LogEntry is one substitution record from a redaction run.
type LogEntry = core.LogEntry

// Store is the authoritative CRUD surface over a mapping document.
type Store = mapping.Store

// Engine is the redaction engine.
type Engine = redact.Engine

// Library is the registry of named pattern detectors.
type Library = redact.Library

// Mapping is an open mapping session (store + persistence).
type Mapping = platform.Mapping

// Predefined entity types. The set is open; callers may use their own.
const (
	TypePerson       = core.TypePerson
	TypeOrganization = core.TypeOrganization
	TypeLocation     = core.TypeLocation
	TypeOther        = core.TypeOther
)

// Merge strategies for Store.Merge.
const (
	MergeSkip      = core.MergeSkip
	MergeOverwrite = core.MergeOverwrite
)

// --- Configuration ---

// Option defines a functional option for opening a mapping.
type Option = platform.Option

// WithLogger sets the logger for the session.
var WithLogger = platform.WithLogger

// WithMustExist requires the mapping file to already exist.
var WithMustExist = platform.WithMustExist

// WithLibrary overrides the default detector registry.
var WithLibrary = platform.WithLibrary

// WithWatcherErrorHandler registers a callback for watch-loop errors.
var WithWatcherErrorHandler = platform.WithWatcherErrorHandler

// --- Factories ---

// Open loads the mapping at path, starting empty if the file does not
// exist (unless WithMustExist is set).
func Open(path string, opts ...Option) (*Mapping, error) {
	return platform.Open(path, opts...)
}

// Create starts a new empty mapping at path, persisting it
// immediately. Fails if the file already exists.
func Create(path string, opts ...Option) (*Mapping, error) {
	return platform.Create(path, opts...)
}

// NewStore creates an in-memory store with no persistence attached.
func NewStore() *Store {
	return mapping.NewStore(nil)
}

// NewEngine creates a redaction engine over a store with the default
// detector library. A nil store behaves as an empty mapping.
func NewEngine(store *Store) *Engine {
	return redact.NewEngine(store, nil)
}

// DefaultLibrary returns the built-in detector set.
func DefaultLibrary() *Library {
	return redact.DefaultLibrary()
}

// RandomID produces a cryptographically random identifier with the
// given prefix, e.g. RandomID("PERSON") -> "PERSON-K2QX81MZ".
func RandomID(prefix string) string {
	return redact.RandomID(prefix)
}
