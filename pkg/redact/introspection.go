package redact

import "github.com/aretw0/introspection"

// EngineState exposes internal state for observability.
type EngineState struct {
	LogSize   int            `json:"log_size"`
	Counters  map[string]int `json:"counters"`
	Detectors []string       `json:"detectors"`
}

// State implements introspection.Introspectable.
func (e *Engine) State() any {
	counters := make(map[string]int, len(e.counters))
	for name, n := range e.counters {
		counters[name] = n
	}
	return EngineState{
		LogSize:   len(e.log),
		Counters:  counters,
		Detectors: e.library.Names(),
	}
}

// ComponentType implements introspection.Component.
func (e *Engine) ComponentType() string {
	return "redaction-engine"
}

var _ introspection.Introspectable = (*Engine)(nil)
var _ introspection.Component = (*Engine)(nil)
