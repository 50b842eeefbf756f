// Package mapping owns the authoritative CRUD and consistency rules
// over a pseudonym mapping document.
//
// Identity is case-insensitive but case-preserving: uniqueness and
// lookup compare lower-cased keys computed on demand, and the stored
// Original/Alias text is never mutated.
package mapping

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/aretw0/veil/pkg/core"
)

// Store wraps a mapping document with validated mutation operations.
// It is purely in-memory; persistence lives in the fs adapter.
// A Store is not safe for concurrent mutation.
type Store struct {
	doc *core.Document
}

// NewStore creates a store over the given document.
// A nil document starts an empty mapping.
func NewStore(doc *core.Document) *Store {
	if doc == nil {
		doc = core.NewDocument()
	}
	if doc.Version == "" {
		doc.Version = core.DocumentVersion
	}
	return &Store{doc: doc}
}

// Document exposes the underlying document, e.g. for persistence or
// merging into another store. Mutating it directly bypasses the
// store's uniqueness checks; Validate catches the damage after the fact.
func (s *Store) Document() *core.Document {
	return s.doc
}

// Len returns the number of entities in the mapping.
func (s *Store) Len() int {
	return len(s.doc.Entities)
}

// Add appends a new entity. It returns false without mutating anything
// if original or alias is empty, or collides case-insensitively with
// an existing entity.
func (s *Store) Add(original, alias string, typ core.EntityType, variations []string, notes string) bool {
	if original == "" || alias == "" {
		return false
	}
	for _, e := range s.doc.Entities {
		if strings.EqualFold(e.Original, original) {
			return false
		}
		if strings.EqualFold(e.Alias, alias) {
			return false
		}
	}

	if typ == "" {
		typ = core.TypeOther
	}
	s.doc.Entities = append(s.doc.Entities, core.Entity{
		Original:   original,
		Alias:      alias,
		Type:       typ,
		Variations: append([]string(nil), variations...),
		Notes:      notes,
		Added:      time.Now(),
	})
	return true
}

// Remove deletes the first entity whose original matches
// case-insensitively. It reports whether one was removed.
func (s *Store) Remove(original string) bool {
	for i, e := range s.doc.Entities {
		if strings.EqualFold(e.Original, original) {
			s.doc.Entities = append(s.doc.Entities[:i], s.doc.Entities[i+1:]...)
			return true
		}
	}
	return false
}

// Get resolves a term to its entity: the original is checked first,
// then each entity's variations, case-insensitively, in mapping order.
// The returned entity is a copy.
func (s *Store) Get(term string) (core.Entity, bool) {
	idx := s.index(term)
	if idx < 0 {
		return core.Entity{}, false
	}
	return s.doc.Entities[idx], true
}

// Alias is a convenience projection of Get.
func (s *Store) Alias(term string) (string, bool) {
	e, ok := s.Get(term)
	if !ok {
		return "", false
	}
	return e.Alias, true
}

// Update applies a partial update to the entity resolved from term.
// Only alias, type, variations and notes are updatable; nil patch
// fields are left untouched. It returns false if no entity matches.
//
// The new alias is NOT re-validated against the uniqueness rule;
// Validate reports any duplicate introduced this way.
func (s *Store) Update(term string, patch core.EntityPatch) bool {
	idx := s.index(term)
	if idx < 0 {
		return false
	}
	e := &s.doc.Entities[idx]
	if patch.Alias != nil {
		e.Alias = *patch.Alias
	}
	if patch.Type != nil {
		e.Type = *patch.Type
	}
	if patch.Variations != nil {
		e.Variations = append([]string(nil), (*patch.Variations)...)
	}
	if patch.Notes != nil {
		e.Notes = *patch.Notes
	}
	return true
}

// AddVariation appends a variation to the entity resolved from term.
// Adding an already-present variation is a no-op that still reports
// success. It returns false if no entity matches.
func (s *Store) AddVariation(term, variation string) bool {
	idx := s.index(term)
	if idx < 0 {
		return false
	}
	e := &s.doc.Entities[idx]
	for _, v := range e.Variations {
		if v == variation {
			return true
		}
	}
	e.Variations = append(e.Variations, variation)
	return true
}

// List returns entities in mapping order, optionally filtered by type.
// An empty type returns everything.
func (s *Store) List(typ core.EntityType) []core.Entity {
	if typ == "" {
		return append([]core.Entity(nil), s.doc.Entities...)
	}
	var out []core.Entity
	for _, e := range s.doc.Entities {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}

// Statistics summarizes the mapping by entity type.
func (s *Store) Statistics() core.Statistics {
	stats := core.Statistics{
		Total:   len(s.doc.Entities),
		ByType:  make(map[core.EntityType]int),
		Created: s.doc.Created,
		Updated: s.doc.Updated,
	}
	for _, e := range s.doc.Entities {
		typ := e.Type
		if typ == "" {
			typ = core.TypeOther
		}
		stats.ByType[typ]++
	}
	return stats
}

// Validate scans the full entity set for consistency issues:
// duplicate originals, duplicate aliases (both case-insensitive) and
// empty required fields. It catches duplicates however they arose,
// including direct document mutation that bypassed Add.
func (s *Store) Validate() core.ValidationReport {
	var issues []string

	issues = append(issues, duplicateIssues(s.doc.Entities, "original", func(e core.Entity) string { return e.Original })...)
	issues = append(issues, duplicateIssues(s.doc.Entities, "alias", func(e core.Entity) string { return e.Alias })...)

	for i, e := range s.doc.Entities {
		if e.Original == "" {
			issues = append(issues, fmt.Sprintf("entity %d: missing original", i))
		}
		if e.Alias == "" {
			issues = append(issues, fmt.Sprintf("entity %d: missing alias", i))
		}
	}

	return core.ValidationReport{Valid: len(issues) == 0, Issues: issues}
}

func duplicateIssues(entities []core.Entity, field string, value func(core.Entity) string) []string {
	counts := make(map[string]int)
	for _, e := range entities {
		if v := value(e); v != "" {
			counts[strings.ToLower(v)]++
		}
	}

	var dups []string
	for v, n := range counts {
		if n > 1 {
			dups = append(dups, v)
		}
	}
	sort.Strings(dups)

	issues := make([]string, 0, len(dups))
	for _, v := range dups {
		issues = append(issues, fmt.Sprintf("duplicate %s: %q", field, v))
	}
	return issues
}

// Merge reconciles another document into this store. Conflicts are
// keyed on the original (case-insensitive): under MergeSkip the
// existing entity wins, under MergeOverwrite the incoming one replaces
// it. Non-conflicting entities go through the same duplicate-alias
// check as Add; a rejected insertion counts as skipped.
func (s *Store) Merge(other *core.Document, strategy core.MergeStrategy) core.MergeResult {
	var result core.MergeResult
	if other == nil {
		return result
	}

	for _, in := range other.Entities {
		if s.hasOriginal(in.Original) {
			if strategy == core.MergeOverwrite {
				s.Remove(in.Original)
				s.Add(in.Original, in.Alias, in.Type, in.Variations, in.Notes)
				result.Overwritten++
			} else {
				result.Skipped++
			}
			continue
		}

		if s.Add(in.Original, in.Alias, in.Type, in.Variations, in.Notes) {
			result.Added++
		} else {
			result.Skipped++
		}
	}
	return result
}

func (s *Store) hasOriginal(original string) bool {
	for _, e := range s.doc.Entities {
		if strings.EqualFold(e.Original, original) {
			return true
		}
	}
	return false
}

// index resolves a term to an entity index, matching the original
// first and then each entity's variations, in mapping order.
func (s *Store) index(term string) int {
	for i, e := range s.doc.Entities {
		if strings.EqualFold(e.Original, term) {
			return i
		}
		for _, v := range e.Variations {
			if strings.EqualFold(v, term) {
				return i
			}
		}
	}
	return -1
}
