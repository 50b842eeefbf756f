package redact

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/aretw0/veil/pkg/core"
	"github.com/aretw0/veil/pkg/mapping"
)

// Engine rewrites text using a mapping store and a pattern library,
// recording every substitution in an append-only log.
//
// The log and the random-mode counters are instance state, reset only
// by ClearLog; callers processing multiple documents with one engine
// must call ClearLog between them. An Engine is not safe for
// concurrent use; run one engine per goroutine instead.
type Engine struct {
	store    *mapping.Store
	library  *Library
	log      []core.LogEntry
	counters map[string]int
}

// NewEngine creates an engine over the given store and library.
// A nil store behaves as an empty mapping; a nil library falls back to
// the default detector set.
func NewEngine(store *mapping.Store, library *Library) *Engine {
	if store == nil {
		store = mapping.NewStore(nil)
	}
	if library == nil {
		library = DefaultLibrary()
	}
	return &Engine{
		store:    store,
		library:  library,
		counters: make(map[string]int),
	}
}

// Store returns the mapping store the engine substitutes from.
func (e *Engine) Store() *mapping.Store {
	return e.store
}

// Library returns the engine's detector registry.
func (e *Engine) Library() *Library {
	return e.library
}

// RedactEntities replaces every known entity term (original and
// variations, in mapping order) with the entity's alias. Matching is
// whole-word so substrings of longer words are left alone, and
// case-insensitive unless caseSensitive is set. Each replacement is
// logged with the specific term that matched.
func (e *Engine) RedactEntities(text string, caseSensitive bool) string {
	result := text
	for _, entity := range e.store.List("") {
		alias := entity.Alias
		for _, term := range entity.Terms() {
			re, err := termPattern(term, caseSensitive)
			if err != nil {
				continue
			}
			mappedFrom := term
			result = re.ReplaceAllStringFunc(result, func(match string) string {
				e.log = append(e.log, core.LogEntry{
					Kind:        core.KindEntity,
					Original:    match,
					Replacement: alias,
					MappedFrom:  mappedFrom,
				})
				return alias
			})
		}
	}
	return result
}

// RedactPatterns applies the named detectors in caller order (all
// detectors in registry order when names is nil). Unknown names are
// silently skipped. Matches become "[<NAME>-REDACTED]" placeholders,
// or "[<NAME>-NNN]" counters in random mode. Counters start at 1 on a
// pattern's first match and keep incrementing across calls until
// ClearLog.
func (e *Engine) RedactPatterns(text string, names []string, randomMode bool) string {
	if names == nil {
		names = e.library.Names()
	}

	result := text
	for _, name := range names {
		re, ok := e.library.Get(name)
		if !ok {
			continue
		}
		patternName := name
		result = re.ReplaceAllStringFunc(result, func(match string) string {
			replacement := e.patternReplacement(patternName, randomMode)
			e.log = append(e.log, core.LogEntry{
				Kind:        core.KindPattern,
				Pattern:     patternName,
				Original:    match,
				Replacement: replacement,
			})
			return replacement
		})
	}
	return result
}

func (e *Engine) patternReplacement(name string, randomMode bool) string {
	upper := strings.ToUpper(name)
	if !randomMode {
		return fmt.Sprintf("[%s-REDACTED]", upper)
	}
	e.counters[name]++
	return fmt.Sprintf("[%s-%03d]", upper, e.counters[name])
}

// RedactWithRandomIDs replaces each given entity string with a random
// identifier that is stable within this call: the first occurrence of
// a distinct entity mints an ID, later occurrences reuse it.
// Substitution is whole-word and case-insensitive. The returned
// mapping is scoped to this call and never persisted to the store.
func (e *Engine) RedactWithRandomIDs(text string, entities []string, prefix string) (string, map[string]string) {
	if prefix == "" {
		prefix = "ENTITY"
	}

	result := text
	docMapping := make(map[string]string)
	for _, entity := range entities {
		if entity == "" {
			continue
		}
		id, ok := docMapping[entity]
		if !ok {
			id = RandomID(prefix)
			docMapping[entity] = id
		}

		re, err := termPattern(entity, false)
		if err != nil {
			continue
		}
		result = re.ReplaceAllString(result, id)

		e.log = append(e.log, core.LogEntry{
			Kind:        core.KindRandom,
			Original:    entity,
			Replacement: id,
		})
	}
	return result, docMapping
}

// Analyze reports what the detectors would match, without mutating the
// text or the log. Samples are the first seen unique matches per
// detector, capped at 5.
func (e *Engine) Analyze(text string) core.Findings {
	findings := core.Findings{Patterns: make(map[string]core.PatternFinding)}

	for _, name := range e.library.Names() {
		re, _ := e.library.Get(name)
		matches := re.FindAllString(text, -1)
		if len(matches) == 0 {
			continue
		}

		seen := make(map[string]bool)
		var samples []string
		for _, m := range matches {
			if seen[m] {
				continue
			}
			seen[m] = true
			samples = append(samples, m)
			if len(samples) == 5 {
				break
			}
		}

		findings.Patterns[name] = core.PatternFinding{
			Count:   len(matches),
			Samples: samples,
		}
		findings.Statistics.TotalMatches += len(matches)
	}
	return findings
}

// Report summarizes the log since the last ClearLog. Each report
// carries a fresh run id so logs from different documents can be told
// apart once archived.
func (e *Engine) Report() core.Report {
	report := core.Report{
		RunID:           uuid.NewString(),
		TotalRedactions: len(e.log),
		ByType:          make(map[core.LogKind]int),
		Details:         append([]core.LogEntry(nil), e.log...),
	}
	for _, entry := range e.log {
		report.ByType[entry.Kind]++
	}
	return report
}

// Log returns a copy of the redaction log.
func (e *Engine) Log() []core.LogEntry {
	return append([]core.LogEntry(nil), e.log...)
}

// ClearLog resets the log and the random-mode counters. Call it once
// per document before processing.
func (e *Engine) ClearLog() {
	e.log = nil
	e.counters = make(map[string]int)
}

// termPattern builds a whole-word matcher for a literal term.
func termPattern(term string, caseSensitive bool) (*regexp.Regexp, error) {
	source := `\b` + regexp.QuoteMeta(term) + `\b`
	if !caseSensitive {
		source = `(?i)` + source
	}
	return regexp.Compile(source)
}
