package tsp

import (
	"fmt"
	"sync"
	"time"
)

// MessageKind tags the variant carried by a ProgressMessage. Go has no
// native tagged union, so the message is flattened into one struct with a
// Kind discriminator and variant-specific fields — the same flattening
// idiom this package's result/options records use elsewhere.
type MessageKind int

const (
	// CityChange reports that the solver is now focused on the given point.
	CityChange MessageKind = iota
	// PathUpdate reports a candidate tour and its length.
	PathUpdate
	// EpochUpdate reports the current main-loop iteration.
	EpochUpdate
	// Done is the terminal message and the observer's sole shutdown trigger.
	Done
	// Restart reports that a solver reshuffled after stagnation.
	Restart
)

// ProgressMessage is one event published by a solver. Only the fields
// relevant to Kind are populated; the rest are zero.
type ProgressMessage struct {
	Kind      MessageKind
	CityID    int
	Route     Route
	Distance  float64
	Iteration int
}

func NewCityChange(id int) ProgressMessage { return ProgressMessage{Kind: CityChange, CityID: id} }

func NewPathUpdate(route Route, distance float64) ProgressMessage {
	return ProgressMessage{Kind: PathUpdate, Route: route, Distance: distance}
}

func NewEpochUpdate(iteration int) ProgressMessage {
	return ProgressMessage{Kind: EpochUpdate, Iteration: iteration}
}

func NewDone() ProgressMessage { return ProgressMessage{Kind: Done} }

func NewRestart() ProgressMessage { return ProgressMessage{Kind: Restart} }

// String renders a message for debug/verbose output.
func (m ProgressMessage) String() string {
	switch m.Kind {
	case CityChange:
		return fmt.Sprintf("city_change(%d)", m.CityID)
	case PathUpdate:
		return fmt.Sprintf("path_update(len=%d, distance=%.5f)", len(m.Route), m.Distance)
	case EpochUpdate:
		return fmt.Sprintf("epoch_update(%d)", m.Iteration)
	case Done:
		return "done"
	case Restart:
		return "restart"
	default:
		return "unknown"
	}
}

// Publisher accepts ProgressMessage values published by a solver. Two
// implementations satisfy it — ChannelPublisher (a live observer) and
// SinkPublisher (a discard/debug-print sink) — no inheritance needed, per
// spec.md §9.
type Publisher interface {
	Publish(msg ProgressMessage)
}

// publishRate is the per-send delay a ChannelPublisher sleeps after forwarding
// a message, bounding the event rate a slow observer must keep up with.
const publishRate = 8 * time.Millisecond

// ChannelPublisher forwards messages to a single-producer/single-consumer
// buffered channel owned by the observer. If the buffer is full, the send is
// dropped and logged at most once; the solver never blocks on observer
// liveness.
type ChannelPublisher struct {
	ch           chan ProgressMessage
	disconnected sync.Once
	logFn        func(msg string)
}

// NewChannelPublisher creates a ChannelPublisher with the given channel
// buffer capacity. logFn may be nil, in which case the one-time disconnect
// notice is silently dropped.
func NewChannelPublisher(capacity int, logFn func(string)) *ChannelPublisher {
	return &ChannelPublisher{ch: make(chan ProgressMessage, capacity), logFn: logFn}
}

// Channel exposes the receive side for the observer goroutine.
func (p *ChannelPublisher) Channel() <-chan ProgressMessage {
	return p.ch
}

// Publish sends msg to the observer channel without blocking the solver
// beyond publishRate, per spec.md §4.6/§5.
func (p *ChannelPublisher) Publish(msg ProgressMessage) {
	select {
	case p.ch <- msg:
		time.Sleep(publishRate)
	default:
		p.disconnected.Do(func() {
			if p.logFn != nil {
				p.logFn("tsp: progress observer not keeping up, degrading to best-effort delivery")
			}
		})
	}
}

// SinkPublisher discards every message, optionally printing it when verbose.
type SinkPublisher struct {
	verbose bool
}

// NewSinkPublisher constructs a SinkPublisher; when verbose, messages are
// printed to stdout instead of silently discarded.
func NewSinkPublisher(verbose bool) *SinkPublisher {
	return &SinkPublisher{verbose: verbose}
}

func (p *SinkPublisher) Publish(msg ProgressMessage) {
	if p.verbose {
		fmt.Println(msg.String())
	}
}
