// Package veil is the Composition Root for the Veil pseudonymization
// toolkit.
//
// It connects the core business logic (mapping store, redaction
// engine) with the infrastructure adapters (filesystem persistence)
// using the Hexagonal Architecture pattern.
//
// Philosophy:
//
// Veil treats pseudonymization as bookkeeping. A mapping document is a
// small, human-auditable database binding real-world identifiers to
// stable aliases; the redaction engine consults it so the same term is
// replaced the same way across every document, and regex detectors
// sweep up the sensitive shapes (emails, phone numbers, SSNs) that no
// one registered by hand.
//
// Features:
//
//   - **Consistent aliasing**: entity CRUD with case-insensitive
//     uniqueness over originals and aliases, plus variation lookup.
//   - **Pattern detectors**: a fixed registry of named regexes for
//     common sensitive-data shapes, independently selectable.
//   - **Audit trail**: every substitution is logged per run.
//   - **Reconciliation**: merge and tabular import/export across
//     mapping documents with explicit conflict strategies.
//   - **Atomic persistence**: JSON (canonical) or YAML documents,
//     written via temp-file-and-rename.
//
// Usage:
//
//	// Open (or start) a mapping and register an entity
//	m, err := veil.Open("clients.json")
//	ok := m.Store().Add("John Smith", "Person_A", veil.TypePerson, nil, "")
//
//	// Redact a document: entities first, then pattern detectors
//	engine := m.Engine()
//	text = engine.RedactEntities(text, false)
//	text = engine.RedactPatterns(text, []string{"email", "ssn"}, false)
package veil
