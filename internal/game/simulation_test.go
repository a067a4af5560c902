package game

import (
	"errors"
	"io"
	"math/rand"
	"reflect"
	"testing"

	"montyhall/internal/player"

	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	// For debugging, uncomment the line below:
	// log.SetLevel(logrus.DebugLevel)
	return log
}

func TestRunBatch_Converges(t *testing.T) {
	const trials = 100000

	t.Run("switching wins about two thirds", func(t *testing.T) {
		res, err := RunBatch(trials, player.StrategySwitch, rand.New(rand.NewSource(1)))
		if err != nil {
			t.Fatalf("RunBatch failed: %v", err)
		}
		frac, _ := res.WinFraction()
		if frac < 0.63 || frac > 0.70 {
			t.Errorf("switch win fraction %.4f outside [0.63, 0.70]", frac)
		}
	})

	t.Run("staying wins about one third", func(t *testing.T) {
		res, err := RunBatch(trials, player.StrategyStay, rand.New(rand.NewSource(2)))
		if err != nil {
			t.Fatalf("RunBatch failed: %v", err)
		}
		frac, _ := res.WinFraction()
		if frac < 0.30 || frac > 0.37 {
			t.Errorf("stay win fraction %.4f outside [0.30, 0.37]", frac)
		}
	})
}

func TestRunBatch_InvalidTrialCount(t *testing.T) {
	cases := []struct {
		n int
		s player.Strategy
	}{
		{0, player.StrategySwitch},
		{-5, player.StrategyStay},
	}
	for _, c := range cases {
		_, err := RunBatch(c.n, c.s, rand.New(rand.NewSource(1)))
		var invalid *InvalidTrialCountError
		if !errors.As(err, &invalid) {
			t.Errorf("RunBatch(%d) expected InvalidTrialCountError, got %v", c.n, err)
			continue
		}
		if invalid.Count != c.n {
			t.Errorf("expected count %d in error, got %d", c.n, invalid.Count)
		}
	}
}

func TestResult_WinFractionGuardsEmptyResult(t *testing.T) {
	_, err := Result{}.WinFraction()
	var invalid *InvalidTrialCountError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidTrialCountError, got %v", err)
	}
}

func TestBatch_Accounting(t *testing.T) {
	// GIVEN a parallel batch with an uneven split
	batch, err := NewBuilder(quietLogger(), rand.New(rand.NewSource(11))).
		WithTrials(1001).
		WithStrategy(player.StrategySwitch).
		WithWorkers(4).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	// WHEN it runs
	res, err := batch.Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// THEN every trial is counted exactly once
	t.Run("per-worker counts add up", func(t *testing.T) {
		if !reflect.DeepEqual(res.WorkerTrials, []int{251, 250, 250, 250}) {
			t.Errorf("unexpected partition %v", res.WorkerTrials)
		}
		wins := 0
		for _, w := range res.WorkerWins {
			wins += w
		}
		if wins != res.Wins {
			t.Errorf("worker wins sum to %d, result has %d", wins, res.Wins)
		}
	})

	t.Run("door draws add up", func(t *testing.T) {
		var prizes, initials int
		for d := range res.PrizeCounts {
			prizes += res.PrizeCounts[d]
			initials += res.InitialCounts[d]
		}
		if prizes != 1001 || initials != 1001 {
			t.Errorf("expected 1001 prize and initial draws, got %d and %d", prizes, initials)
		}
	})
}

func TestBatch_ReproducibleForSeed(t *testing.T) {
	run := func(workers int) Result {
		batch, err := NewBuilder(quietLogger(), rand.New(rand.NewSource(99))).
			WithTrials(5000).
			WithStrategy(player.StrategyStay).
			WithWorkers(workers).
			Build()
		if err != nil {
			t.Fatalf("Build failed: %v", err)
		}
		res, err := batch.Run()
		if err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		return res
	}

	if a, b := run(4), run(4); !reflect.DeepEqual(a, b) {
		t.Errorf("parallel batches with the same seed differ: %+v vs %+v", a, b)
	}

	seq, err := RunBatch(5000, player.StrategyStay, rand.New(rand.NewSource(99)))
	if err != nil {
		t.Fatalf("RunBatch failed: %v", err)
	}
	if single := run(1); single.Wins != seq.Wins {
		t.Errorf("single worker batch won %d, RunBatch won %d", single.Wins, seq.Wins)
	}
}

func TestBatch_PublishesEveryTrial(t *testing.T) {
	builder := NewBuilder(quietLogger(), rand.New(rand.NewSource(5)))
	listener := &recordingListener{}
	builder.EventManager().Subscribe(listener)

	batch, err := builder.WithTrials(50).WithStrategy(player.StrategySwitch).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	res, err := batch.Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(listener.trials) != 50 {
		t.Fatalf("expected 50 trial events, got %d", len(listener.trials))
	}
	wins := 0
	for i, ev := range listener.trials {
		if ev.Index != i+1 {
			t.Errorf("event %d has index %d", i, ev.Index)
		}
		if ev.Won {
			wins++
		}
	}
	if wins != res.Wins {
		t.Errorf("events show %d wins, result has %d", wins, res.Wins)
	}
}

func TestBuilder_ClampsWorkers(t *testing.T) {
	batch, err := NewBuilder(quietLogger(), rand.New(rand.NewSource(1))).WithTrials(3).WithWorkers(16).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if batch.Workers != 3 {
		t.Errorf("expected workers clamped to 3, got %d", batch.Workers)
	}

	batch, _ = NewBuilder(quietLogger(), rand.New(rand.NewSource(1))).WithTrials(3).WithWorkers(0).Build()
	if batch.Workers != 1 {
		t.Errorf("expected at least one worker, got %d", batch.Workers)
	}
}
