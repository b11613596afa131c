package main

import (
	"math/rand"
	"os"
	"time"

	"coup-toolbox/internal/cli"
	"coup-toolbox/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

func main() {
	// 1. Parse command-line flags
	flags := pflag.NewFlagSet("coup", pflag.ExitOnError)
	configPath := flags.String("config", "default_config.json", "Path to the table settings file")
	flags.String("loglevel", "info", "Set logging level (debug, info, warn, error)")
	seed := flags.Int64("seed", 0, "Seed for role assignment (0 picks one from the clock)")
	_ = flags.Parse(os.Args[1:])

	// 2. Load game configuration; flags override file values
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, ForceColors: true})
	gameConfig, err := config.Load(*configPath, flags)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// 3. Set up the logger level
	level, err := logrus.ParseLevel(gameConfig.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	// 4. Create the CLI, injecting the logger
	ui := cli.NewCLI(log)

	// 5. Run the application
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Debugf("Role seed: %d", *seed)
	if err := ui.Run(flags.Args(), gameConfig, rand.New(rand.NewSource(*seed))); err != nil {
		log.Errorf("Application exited with error: %v", err)
		os.Exit(1)
	}
}
