package cli

import (
	"fmt"
	"io"
	"math/rand"
	"os"

	"montyhall/internal/config"
	"montyhall/internal/game"
	"montyhall/internal/player"
	"montyhall/internal/statistics"

	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"
)

// LineReader is the part of a line editor the CLI needs. *liner.State satisfies it.
type LineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
	Close() error
}

// CLI manages all command-line interactions.
type CLI struct {
	log  *logrus.Logger
	line LineReader
	out  io.Writer
}

// NewCLI creates a new command-line interface manager.
func NewCLI(log *logrus.Logger) *CLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return NewCLIWithIO(log, line, os.Stdout)
}

// NewCLIWithIO creates a CLI around an existing line reader and output.
func NewCLIWithIO(log *logrus.Logger, line LineReader, out io.Writer) *CLI {
	return &CLI{
		log:  log,
		line: line,
		out:  out,
	}
}

// Options are the per-invocation settings that do not live in the config file.
type Options struct {
	Verbose bool
}

// Run is the main entry point for the CLI application.
func (c *CLI) Run(args []string, cfg *config.Config, opts Options, rand *rand.Rand) error {
	defer c.line.Close()

	cmd := "run"
	if len(args) > 0 {
		cmd = args[0]
	}
	switch cmd {
	case "run":
		return c.runSimulationMode(cfg, opts, rand)
	case "play":
		return c.runPlayMode(rand)
	case "help":
		c.printUsage()
		return nil
	default:
		c.printUsage()
		return fmt.Errorf("unknown command '%s'", cmd)
	}
}

func (c *CLI) runSimulationMode(cfg *config.Config, opts Options, rand *rand.Rand) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.NeedsVerboseConfirmation(opts.Verbose) {
		c.log.Warn("This will produce a lot of output!")
		if !c.Confirm("Continue?") {
			C.Info.Fprintln(c.out, "Aborted.")
			return nil
		}
	}

	workers := cfg.Workers
	if opts.Verbose && workers > 1 {
		c.log.Debugf("Verbose output requested; running %d workers as 1", workers)
		workers = 1
	}

	var reports []batchReport
	for i, strategy := range []player.Strategy{player.StrategySwitch, player.StrategyStay} {
		if i > 0 {
			fmt.Fprint(c.out, "\n----------\n\n")
		}
		report, err := c.runBatch(cfg, strategy, workers, opts.Verbose, rand)
		if err != nil {
			return err
		}
		reports = append(reports, report)
	}

	fmt.Fprintln(c.out)
	c.renderResults(reports)
	return nil
}

func (c *CLI) runBatch(cfg *config.Config, strategy player.Strategy, workers int, verbose bool, rand *rand.Rand) (batchReport, error) {
	if strategy.Switches() {
		C.Header.Fprintln(c.out, "Always changing doors")
	} else {
		C.Header.Fprintln(c.out, "Always staying")
	}
	fmt.Fprintf(c.out, "Running simulation with N = %d trials...\n\n", cfg.Trials)

	// Create a builder and subscribe the narrator to it when asked to.
	builder := game.NewBuilder(c.log, rand)
	if verbose {
		builder.EventManager().Subscribe(NewNarrator(c.out))
	}
	batch, err := builder.WithTrials(cfg.Trials).WithStrategy(strategy).WithWorkers(workers).Build()
	if err != nil {
		return batchReport{}, fmt.Errorf("failed to build batch: %w", err)
	}

	res, err := batch.Run()
	if err != nil {
		return batchReport{}, err
	}
	summary, err := statistics.Summarize(res, cfg.Confidence)
	if err != nil {
		return batchReport{}, err
	}

	fmt.Fprintf(c.out, "Number of wins = %d\n", res.Wins)
	fmt.Fprintf(c.out, "Fraction of games won: %v\n", summary.Fraction)

	report := batchReport{result: res, summary: summary, confidence: cfg.Confidence}
	if report.prizeP, err = statistics.UniformityPValue(res.PrizeCounts[:]); err != nil {
		return batchReport{}, err
	}
	if report.initialP, err = statistics.UniformityPValue(res.InitialCounts[:]); err != nil {
		return batchReport{}, err
	}
	if res.Workers > 1 {
		report.spread, err = statistics.WorkerSpread(res)
		if err != nil {
			return batchReport{}, err
		}
		report.hasSpread = true
	}
	return report, nil
}

func (c *CLI) runPlayMode(rand *rand.Rand) error {
	C.Info.Fprintln(c.out, "\n--- Let's Make a Deal ---")
	C.Info.Fprintln(c.out, "A car is behind one door, goats are behind the other two.")

	builder := game.NewBuilder(c.log, rand)
	builder.EventManager().Subscribe(NewNarrator(c.out))
	human := player.NewHumanPlayer("You", c)

	played, won := 0, 0
	for {
		round := builder.BuildGame(human)
		trial, err := round.Play()
		if err != nil {
			return fmt.Errorf("round %d: %w", played+1, err)
		}
		played++
		if trial.Won {
			won++
		}
		C.Info.Fprintf(c.out, "You have won %d of %d rounds.\n", won, played)
		if !c.Confirm("Play again?") {
			C.Info.Fprintln(c.out, "Goodbye!")
			return nil
		}
	}
}
