package game

import (
	"math/rand"

	"montyhall/internal/events"
	"montyhall/internal/player"

	"github.com/sirupsen/logrus"
)

// BatchBuilder provides a step-by-step API for constructing a Batch.
type BatchBuilder struct {
	eventManager *events.Manager
	log          *logrus.Logger
	rand         *rand.Rand
	strategy     player.Strategy
	trials       int
	workers      int
}

// NewBuilder creates a new BatchBuilder with its required dependencies.
func NewBuilder(logger *logrus.Logger, rand *rand.Rand) *BatchBuilder {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &BatchBuilder{
		log:          logger,
		rand:         rand,
		eventManager: events.NewManager(),
		workers:      1,
	}
}

// EventManager is a public getter for the unexported field.
func (b *BatchBuilder) EventManager() *events.Manager {
	return b.eventManager
}

func (b *BatchBuilder) WithTrials(n int) *BatchBuilder {
	b.trials = n
	return b
}

func (b *BatchBuilder) WithStrategy(s player.Strategy) *BatchBuilder {
	b.strategy = s
	return b
}

func (b *BatchBuilder) WithWorkers(n int) *BatchBuilder {
	b.workers = n
	return b
}

// Build constructs the Batch after all options have been configured.
// No trial is run here.
func (b *BatchBuilder) Build() (*Batch, error) {
	if b.trials <= 0 {
		return nil, &InvalidTrialCountError{Count: b.trials}
	}
	workers := b.workers
	if workers < 1 {
		workers = 1
	}
	if workers > b.trials {
		workers = b.trials
	}
	return &Batch{
		Strategy:     b.strategy,
		Trials:       b.trials,
		Workers:      workers,
		EventManager: b.eventManager,
		log:          b.log,
		rand:         b.rand,
	}, nil
}

// BuildGame constructs an interactive single round for p sharing the
// builder's logger, random source and event manager.
func (b *BatchBuilder) BuildGame(p player.Player) *Game {
	return &Game{
		Player:       p,
		EventManager: b.eventManager,
		log:          b.log,
		rand:         b.rand,
	}
}
