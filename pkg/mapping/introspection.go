package mapping

import (
	"time"

	"github.com/aretw0/introspection"

	"github.com/aretw0/veil/pkg/core"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Version string                  `json:"version"`
	Total   int                     `json:"total"`
	ByType  map[core.EntityType]int `json:"by_type"`
	Created time.Time               `json:"created"`
	Updated time.Time               `json:"updated"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	stats := s.Statistics()
	return StoreState{
		Version: s.doc.Version,
		Total:   stats.Total,
		ByType:  stats.ByType,
		Created: stats.Created,
		Updated: stats.Updated,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "mapping-store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
