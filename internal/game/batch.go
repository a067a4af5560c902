package game

import (
	"fmt"
	"math/rand"

	"montyhall/internal/door"
	"montyhall/internal/events"
	"montyhall/internal/player"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// InvalidTrialCountError is returned when a batch is requested with no trials.
type InvalidTrialCountError struct {
	Count int
}

func (e *InvalidTrialCountError) Error() string {
	return fmt.Sprintf("invalid trial count %d: must be positive", e.Count)
}

// Result summarizes a finished batch.
type Result struct {
	Strategy player.Strategy
	Trials   int
	Wins     int
	Workers  int

	// WorkerTrials and WorkerWins hold the per-partition counts.
	WorkerTrials []int
	WorkerWins   []int

	// PrizeCounts and InitialCounts are indexed by door-1.
	PrizeCounts   [3]int
	InitialCounts [3]int
}

// WinFraction is Wins/Trials. It is undefined for an empty result.
func (r Result) WinFraction() (float64, error) {
	if r.Trials <= 0 {
		return 0, &InvalidTrialCountError{Count: r.Trials}
	}
	return float64(r.Wins) / float64(r.Trials), nil
}

// Batch runs a fixed number of independent trials under one strategy.
type Batch struct {
	Strategy     player.Strategy
	Trials       int
	Workers      int
	EventManager *events.Manager
	log          *logrus.Logger
	rand         *rand.Rand
}

type partial struct {
	trials        int
	wins          int
	prizeCounts   [3]int
	initialCounts [3]int
}

// partitionSizes splits n trials over w workers, handing the remainder to the
// first workers.
func partitionSizes(n, w int) []int {
	sizes := make([]int, w)
	per, rem := n/w, n%w
	for i := range sizes {
		sizes[i] = per
		if i < rem {
			sizes[i]++
		}
	}
	return sizes
}

// Run executes the batch. A single worker draws straight from the batch's
// source; several workers each own a source seeded from it.
func (b *Batch) Run() (Result, error) {
	b.EventManager.Publish(events.BatchStartedEvent{Strategy: b.Strategy, Trials: b.Trials, Workers: b.Workers})

	sizes := partitionSizes(b.Trials, b.Workers)
	partials := make([]partial, len(sizes))

	var g errgroup.Group
	offset := 0
	for w, n := range sizes {
		w, n := w, n
		rng := b.rand
		if len(sizes) > 1 {
			seed := b.rand.Int63()
			rng = rand.New(rand.NewSource(seed))
			b.log.WithFields(logrus.Fields{"worker": w, "trials": n, "seed": seed}).Debug("Starting worker")
		}
		start := offset
		offset += n
		g.Go(func() error {
			p, err := b.runPartition(start, n, rng)
			partials[w] = p
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, fmt.Errorf("%s batch: %w", b.Strategy, err)
	}

	res := Result{
		Strategy:     b.Strategy,
		Trials:       b.Trials,
		Workers:      len(sizes),
		WorkerTrials: make([]int, len(sizes)),
		WorkerWins:   make([]int, len(sizes)),
	}
	for i, p := range partials {
		res.Wins += p.wins
		res.WorkerTrials[i] = p.trials
		res.WorkerWins[i] = p.wins
		for d := range p.prizeCounts {
			res.PrizeCounts[d] += p.prizeCounts[d]
			res.InitialCounts[d] += p.initialCounts[d]
		}
	}
	b.log.Debugf("%s batch finished: %d/%d wins", b.Strategy, res.Wins, res.Trials)
	b.EventManager.Publish(events.BatchFinishedEvent{Strategy: b.Strategy, Trials: res.Trials, Wins: res.Wins})
	return res, nil
}

// runPartition draws every prize door, then every initial choice, and only
// then evaluates the trials in order.
func (b *Batch) runPartition(start, n int, rng *rand.Rand) (partial, error) {
	p := partial{trials: n}
	prizes := make([]door.Door, n)
	for i := range prizes {
		prizes[i] = door.Random(rng)
	}
	initials := make([]door.Door, n)
	for i := range initials {
		initials[i] = door.Random(rng)
	}

	for i := 0; i < n; i++ {
		t, err := EvaluateTrial(prizes[i], initials[i], b.Strategy, rng)
		if err != nil {
			return p, fmt.Errorf("trial %d: %w", start+i+1, err)
		}
		p.prizeCounts[t.Prize-1]++
		p.initialCounts[t.Initial-1]++
		if t.Won {
			p.wins++
		}
		b.EventManager.Publish(trialEvent(start+i+1, t))
	}
	return p, nil
}

// RunBatch runs trialCount sequential trials under strategy using rng.
func RunBatch(trialCount int, strategy player.Strategy, rng *rand.Rand) (Result, error) {
	batch, err := NewBuilder(nil, rng).WithTrials(trialCount).WithStrategy(strategy).Build()
	if err != nil {
		return Result{}, err
	}
	return batch.Run()
}
