// Package scrub declares the contract for binary-file metadata
// scrubbers. Implementations dispatch to external tools (exiftool,
// qpdf, ffmpeg) per file type; the redaction core never calls into
// this interface and carries no dependency on any implementation.
package scrub

import "context"

// Result reports the outcome of a scrub operation.
type Result struct {
	Success bool     `json:"success"`
	Output  string   `json:"output,omitempty"`
	Error   string   `json:"error,omitempty"`
	Steps   []string `json:"steps,omitempty"`
}

// VerifyResult reports whether a file is free of sensitive metadata.
type VerifyResult struct {
	Clean              bool           `json:"clean"`
	RemainingSensitive []string       `json:"remaining_sensitive"`
	AllMetadata        map[string]any `json:"all_metadata"`
}

// Scrubber removes metadata from files.
type Scrubber interface {
	// Scrub removes metadata from the file at path. An empty outputPath
	// scrubs in place (or next to the input, implementation-defined);
	// the actual destination is reported in the result.
	Scrub(ctx context.Context, path, outputPath string) Result

	// VerifyClean inspects a file and reports any metadata that looks
	// sensitive.
	VerifyClean(ctx context.Context, path string) VerifyResult
}
