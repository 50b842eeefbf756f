// Package core defines the domain model shared across the module:
// entities, the mapping document, redaction log entries and the
// result types the other packages exchange.
package core

import "time"

// DocumentVersion is the schema version written to persisted mapping documents.
const DocumentVersion = "1.0"

// EntityType classifies what kind of real-world identifier an entity is.
// The set is open: callers may store types beyond the predefined ones.
type EntityType string

const (
	TypePerson       EntityType = "person"
	TypeOrganization EntityType = "organization"
	TypeLocation     EntityType = "location"
	TypeOther        EntityType = "other"
)

// Entity binds an original term to its alias, plus alternate surface
// forms (variations) that resolve to the same alias.
type Entity struct {
	Original   string     `json:"original" yaml:"original"`
	Alias      string     `json:"alias" yaml:"alias"`
	Type       EntityType `json:"type" yaml:"type"`
	Variations []string   `json:"variations" yaml:"variations"`
	Notes      string     `json:"notes" yaml:"notes"`
	Added      time.Time  `json:"added" yaml:"added"`
}

// Terms returns the original plus all variations, in declaration order.
// Empty strings are skipped.
func (e Entity) Terms() []string {
	terms := make([]string, 0, 1+len(e.Variations))
	if e.Original != "" {
		terms = append(terms, e.Original)
	}
	for _, v := range e.Variations {
		if v != "" {
			terms = append(terms, v)
		}
	}
	return terms
}

// Document is the persisted collection of entities plus metadata.
// It is mutated only through mapping.Store operations; Updated is
// refreshed on every persisted write.
type Document struct {
	Version  string    `json:"version" yaml:"version"`
	Created  time.Time `json:"created" yaml:"created"`
	Updated  time.Time `json:"updated" yaml:"updated"`
	Entities []Entity  `json:"entities" yaml:"entities"`
}

// NewDocument creates an empty mapping document stamped with now.
func NewDocument() *Document {
	now := time.Now()
	return &Document{
		Version: DocumentVersion,
		Created: now,
		Updated: now,
	}
}

// LogKind identifies which redaction strategy produced a log entry.
type LogKind string

const (
	KindEntity  LogKind = "entity"
	KindPattern LogKind = "pattern"
	KindRandom  LogKind = "random"
)

// LogEntry records a single substitution performed during a redaction run.
type LogEntry struct {
	Kind        LogKind `json:"type"`
	Original    string  `json:"original"`
	Replacement string  `json:"replacement"`
	// Pattern is set for kind "pattern": the detector name that fired.
	Pattern string `json:"pattern,omitempty"`
	// MappedFrom is set for kind "entity": the specific term (original
	// or variation) that matched.
	MappedFrom string `json:"mapped_from,omitempty"`
}

// EntityPatch is a partial update for an entity. Nil fields are left
// untouched. Only these four fields are updatable; Original and Added
// are immutable once stored.
type EntityPatch struct {
	Alias      *string
	Type       *EntityType
	Variations *[]string
	Notes      *string
}

// MergeStrategy decides what happens when an incoming entity's
// original collides with an existing one.
type MergeStrategy string

const (
	MergeSkip      MergeStrategy = "skip"
	MergeOverwrite MergeStrategy = "overwrite"
)

// MergeResult summarizes a Store.Merge run.
type MergeResult struct {
	Added       int `json:"added"`
	Skipped     int `json:"skipped"`
	Overwritten int `json:"overwritten"`
}

// ImportResult summarizes a tabular import. Errors holds per-row
// failures; a bad row never aborts the batch.
type ImportResult struct {
	Added   int      `json:"added"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors"`
}

// ValidationReport lists consistency issues found in a document.
type ValidationReport struct {
	Valid  bool     `json:"valid"`
	Issues []string `json:"issues"`
}

// Statistics describes the current shape of a mapping document.
type Statistics struct {
	Total   int                `json:"total"`
	ByType  map[EntityType]int `json:"by_type"`
	Created time.Time          `json:"created"`
	Updated time.Time          `json:"updated"`
}

// PatternFinding is the per-detector section of an analysis report.
type PatternFinding struct {
	Count   int      `json:"count"`
	Samples []string `json:"samples"`
}

// Findings is the read-only analysis report for a text.
type Findings struct {
	Patterns   map[string]PatternFinding `json:"patterns"`
	Statistics struct {
		TotalMatches int `json:"total_matches"`
	} `json:"statistics"`
}

// EventType represents the kind of change observed on a watched
// mapping file.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to a watched mapping file.
type Event struct {
	Type      EventType
	Path      string
	Timestamp int64 // Unix timestamp
}

// String returns a human-readable form of the event. It also satisfies
// interfaces (such as lifecycle event sources) that require a Stringer.
func (e Event) String() string {
	return string(e.Type) + " " + e.Path
}

// Report summarizes the redactions performed since the last ClearLog.
type Report struct {
	RunID           string          `json:"run_id"`
	TotalRedactions int             `json:"total_redactions"`
	ByType          map[LogKind]int `json:"by_type"`
	Details         []LogEntry      `json:"details"`
}
