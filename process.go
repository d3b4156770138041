package clearing

import (
	"fmt"
	"io"
)

// RejectHandler is notified of every event the core rejects. The handler
// decides the run's policy (log and continue, count, ignore); processing
// itself always continues past a rejected event.
type RejectHandler func(ev LedgerEvent, err error)

// Process consumes the whole CSV event stream from r, strictly in arrival
// order, routing each event through a fresh registry.
//
// A rejected event is reported to onReject (which may be nil) and leaves
// its account untouched. A malformed record halts processing; the registry
// is returned alongside the error, in its last-applied state.
func Process(r io.Reader, onReject RejectHandler) (*Registry, error) {
	registry := NewRegistry()
	events := NewEventReader(r)
	for {
		ev, err := events.Read()
		if err == io.EOF {
			return registry, nil
		}
		if err != nil {
			return registry, fmt.Errorf("reading events: %w", err)
		}
		if err := registry.Route(ev); err != nil {
			if onReject != nil {
				onReject(ev, err)
			}
		}
	}
}
