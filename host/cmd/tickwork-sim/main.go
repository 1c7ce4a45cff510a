package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"tickwork/sim"
)

var (
	configPath = flag.String("config", "", "Rig config file (YAML); defaults apply when empty")
	debug      = flag.Bool("debug", false, "Enable debug logging")
)

func main() {
	flag.Parse()

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.TimeOnly,
	}).Level(level).With().Timestamp().Logger()

	cfg := sim.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = sim.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("config load failed")
		}
	}

	rig, err := sim.NewRig(cfg, log, os.Stdout)
	if err != nil {
		log.Fatal().Err(err).Msg("rig assembly failed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Stdin lines become remote protocol input.
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			rig.Inject(scanner.Text())
		}
	}()

	fmt.Println("rig console ready; type 'help' for commands")
	if err := rig.Run(ctx); err != nil && err != context.Canceled {
		log.Fatal().Err(err).Msg("rig stopped")
	}
}
