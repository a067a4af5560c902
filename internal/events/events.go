package events

import (
	"sync"

	"montyhall/internal/door"
	"montyhall/internal/player"
)

// Event is a marker interface for all event types.
type Event interface{}

// Listener defines an interface for any component that wants to react to events.
type Listener interface {
	HandleEvent(e Event)
}

// Manager (or Event Bus) manages listeners and dispatches events.
// Publish may be called from several workers at once; delivery is serialized.
type Manager struct {
	mu        sync.Mutex
	listeners []Listener
}

func NewManager() *Manager {
	return &Manager{}
}

func (em *Manager) Subscribe(l Listener) {
	em.mu.Lock()
	defer em.mu.Unlock()
	em.listeners = append(em.listeners, l)
}

func (em *Manager) Publish(e Event) {
	em.mu.Lock()
	defer em.mu.Unlock()
	for _, l := range em.listeners {
		l.HandleEvent(e)
	}
}

// HasListeners reports whether anything is subscribed.
func (em *Manager) HasListeners() bool {
	em.mu.Lock()
	defer em.mu.Unlock()
	return len(em.listeners) > 0
}

// --- Event Types for Rendering ---

// BatchStartedEvent is published before the first trial of a batch.
type BatchStartedEvent struct {
	Strategy player.Strategy
	Trials   int
	Workers  int
}

// TrialResolvedEvent carries the full record of one evaluated trial.
type TrialResolvedEvent struct {
	Index    int
	Prize    door.Door
	Initial  door.Door
	Revealed door.Door
	Final    door.Door
	Strategy player.Strategy
	Won      bool
}

type BatchFinishedEvent struct {
	Strategy player.Strategy
	Trials   int
	Wins     int
}
