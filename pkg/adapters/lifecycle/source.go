package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/veil/pkg/core"
)

type mappingSource struct {
	events <-chan core.Event
	out    chan lifecycle.Event
}

// NewSource creates a lifecycle.Source that emits mapping change events.
// It bridges the typed event channel returned by Repository.Watch to the
// generic lifecycle Event interface, so a mapping file can participate
// in a lifecycle-supervised application alongside other sources.
func NewSource(events <-chan core.Event) lifecycle.Source {
	return &mappingSource{
		events: events,
		out:    make(chan lifecycle.Event),
	}
}

func (s *mappingSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *mappingSource) Start(ctx context.Context) error {
	// The bridge goroutine itself runs under lifecycle.Go so it is
	// tracked and shut down with the rest of the application.
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
