package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"montyhall/internal/cli"
	"montyhall/internal/config"

	"github.com/sirupsen/logrus"
)

func main() {
	// 1. Parse command-line flags
	logLevel := flag.String("loglevel", "info", "Set logging level (debug, info, warn, error)")
	configPath := flag.String("config", "default_config.json", "Path to the JSON configuration file")
	var (
		trials  int
		verbose bool
	)
	flag.IntVar(&trials, "N", 0, "Number of trials to run per strategy")
	flag.IntVar(&trials, "ntrial", 0, "Number of trials to run per strategy")
	flag.BoolVar(&verbose, "v", false, "Narrate every trial")
	flag.BoolVar(&verbose, "verbose", false, "Narrate every trial")
	workers := flag.Int("workers", 0, "Number of workers sharing the trials")
	seed := flag.Int64("seed", 0, "Random seed (0 picks one from the clock)")
	flag.Parse()

	// 2. Set up top-level dependencies (Logger)
	log := logrus.New()
	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, ForceColors: true})

	// 3. Load configuration; flags given explicitly win over file and environment
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "N", "ntrial":
			cfg.Trials = trials
		case "workers":
			cfg.Workers = *workers
		case "seed":
			cfg.Seed = *seed
		}
	})
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	log.Debugf("Using seed %d", cfg.Seed)

	// 4. Create the CLI, injecting the logger
	ui := cli.NewCLI(log)

	// 5. Run the application
	randSource := rand.New(rand.NewSource(cfg.Seed))
	if err := ui.Run(flag.Args(), cfg, cli.Options{Verbose: verbose}, randSource); err != nil {
		log.Errorf("Application exited with error: %v", err)
		os.Exit(1)
	}
}
