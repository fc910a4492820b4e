package backup

import "context"

// eventBuffer bounds the relay channel. Sends block when a slow consumer
// falls this far behind, which preserves ordering without unbounded memory.
const eventBuffer = 64

// Host runs the Engine on a background goroutine and relays its events to
// the caller over a single ordered channel. One Host per invocation; the
// channel is closed after the terminal DoneEvent, so a plain range loop
// observes every event in emission order and then stops.
type Host struct {
	lister   Lister
	transfer Transferer
	opts     []EngineOption
}

// NewHost creates a Host around the two external collaborators.
func NewHost(lister Lister, transfer Transferer, opts ...EngineOption) *Host {
	return &Host{
		lister:   lister,
		transfer: transfer,
		opts:     opts,
	}
}

// Start launches the run and returns immediately. The returned channel
// yields LogEvents and ProgressEvents in emission order, then exactly one
// DoneEvent, then closes. The engine blocks on its external commands only
// on the background goroutine, never on the caller's.
func (h *Host) Start(ctx context.Context, destinationPath string) <-chan Event {
	events := make(chan Event, eventBuffer)

	go func() {
		defer close(events)

		sinks := Sinks{
			Log:      func(message string) { events <- LogEvent{Message: message} },
			Progress: func(percent int) { events <- ProgressEvent{Percent: percent} },
		}

		engine := NewEngine(h.lister, h.transfer, sinks, h.opts...)
		summary := engine.Run(ctx, destinationPath)

		events <- DoneEvent{Summary: summary}
	}()

	return events
}
