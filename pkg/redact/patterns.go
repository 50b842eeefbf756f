// Package redact transforms text: entity substitution from a mapping
// store, regex-based pattern detection, and random-identifier
// assignment, with a structured log of every replacement.
package redact

import "regexp"

// Detectors are heuristic: the patterns may overlap in what they match
// (phone_intl in particular is broad enough to hit fragments of other
// digit sequences), so callers choose which detectors run and in what
// order.
var patternSources = []struct {
	name   string
	source string
}{
	{"email", `\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`},
	{"phone_us", `\b(?:\+?1[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}\b`},
	{"phone_intl", `\b\+?[1-9]\d{1,14}\b`},
	{"ssn", `\b\d{3}[-\s]?\d{2}[-\s]?\d{4}\b`},
	{"credit_card", `\b(?:\d{4}[-\s]?){3}\d{4}\b`},
	{"ip_address", `\b(?:\d{1,3}\.){3}\d{1,3}\b`},
	{"date_mdy", `\b(?:0?[1-9]|1[0-2])[/.-](?:0?[1-9]|[12]\d|3[01])[/.-](?:\d{2}|\d{4})\b`},
	{"date_dmy", `\b(?:0?[1-9]|[12]\d|3[01])[/.-](?:0?[1-9]|1[0-2])[/.-](?:\d{2}|\d{4})\b`},
}

// Library is a fixed registry of named regular-expression detectors
// for common sensitive-data shapes.
type Library struct {
	names    []string
	patterns map[string]*regexp.Regexp
}

// DefaultLibrary returns the built-in detector set. Patterns are
// compiled once per call; the library itself is immutable afterwards.
func DefaultLibrary() *Library {
	l := &Library{
		names:    make([]string, 0, len(patternSources)),
		patterns: make(map[string]*regexp.Regexp, len(patternSources)),
	}
	for _, p := range patternSources {
		l.names = append(l.names, p.name)
		l.patterns[p.name] = regexp.MustCompile(p.source)
	}
	return l
}

// Names returns the detector names in registry order.
func (l *Library) Names() []string {
	return append([]string(nil), l.names...)
}

// Get returns the compiled detector for name, if registered.
func (l *Library) Get(name string) (*regexp.Regexp, bool) {
	re, ok := l.patterns[name]
	return re, ok
}

// Has reports whether name is a registered detector.
func (l *Library) Has(name string) bool {
	_, ok := l.patterns[name]
	return ok
}
