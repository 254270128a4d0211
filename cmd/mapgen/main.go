package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/GeneralsMapGen/internal/config"
	"github.com/mitchelldurbincs/GeneralsMapGen/internal/game/events"
	"github.com/mitchelldurbincs/GeneralsMapGen/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/GeneralsMapGen/internal/game/mapgen"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to config file")
	env := flag.String("env", "", "Environment overlay (loads config.<env>.yaml)")
	width := flag.Int("width", -1, "Map width (-1 to use config default)")
	height := flag.Int("height", -1, "Map height (-1 to use config default)")
	players := flag.Int("players", -1, "Number of players (-1 to use config default)")
	seed := flag.Int64("seed", 0, "RNG seed (0 to use config, then the current time)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	watch := flag.Bool("watch", false, "Regenerate the map whenever the config file changes")
	flag.Parse()

	// Initialize configuration
	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	if err := config.LoadEnvironmentConfig(*env); err != nil {
		log.Fatal().Err(err).Msg("Failed to load environment config")
	}

	// Flags override config values
	if *width != -1 {
		config.Set("mapgen.width", *width)
	}
	if *height != -1 {
		config.Set("mapgen.height", *height)
	}
	if *players != -1 {
		config.Set("mapgen.players", *players)
	}
	if *seed != 0 {
		config.Set("mapgen.seed", *seed)
	}
	cfg := config.Get()
	if err := config.Validate(cfg); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	if *logLevel == "" {
		*logLevel = cfg.Logging.Level
	}

	setupLogging(*logLevel, cfg.Logging.Format)

	bus := events.NewEventBus()
	eventLogger := subscribers.NewLoggerSubscriber("event-logger", log.Logger, zerolog.DebugLevel)
	eventLogger.SetDevMode(*logLevel == "debug")
	bus.Subscribe(eventLogger)

	if err := run(cfg, bus); err != nil && !*watch {
		os.Exit(1)
	}
	if !*watch {
		return
	}

	config.WatchConfig(func(c *config.Config, err error) {
		if err != nil {
			log.Error().Err(err).Msg("Ignoring invalid config change")
			return
		}
		log.Info().Str("file", config.ConfigFilePath()).Msg("Config changed, regenerating map")
		_ = run(c, bus)
	})
	log.Info().Str("file", config.ConfigFilePath()).Msg("Watching config for changes")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	sig := <-sigCh
	log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
}

// run generates one map from cfg and prints it
func run(cfg *config.Config, bus *events.EventBus) error {
	mapConfig, err := cfg.Mapgen.ToMapConfig()
	if err != nil {
		log.Error().Err(err).Msg("Invalid map configuration")
		return err
	}

	seed := cfg.Mapgen.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info().
		Int64("seed", seed).
		Int("width", mapConfig.Width).
		Int("height", mapConfig.Height).
		Int("players", mapConfig.PlayerCount).
		Str("topology", mapConfig.Topology.String()).
		Msg("Generating map")

	generator := mapgen.NewGenerator(mapConfig, rand.New(rand.NewSource(seed)))
	generator.SetLogger(log.Logger)
	generator.SetEventPublisher(bus)

	out, err := generator.GenerateMap()
	if err != nil {
		log.Error().Err(err).Int64("seed", seed).Msg("Map generation failed")
		return err
	}

	if cfg.Development.RenderMap {
		fmt.Print(mapgen.Render(out.Board, out.Map.HQs, cfg.Development.Color))
	}
	for player := 0; player < mapConfig.PlayerCount; player++ {
		if hq, ok := out.Map.HQOf(player); ok {
			fmt.Printf("Player %d HQ: %s\n", player, hq)
		}
	}
	return nil
}

func setupLogging(level, format string) {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	// The map goes to stdout, so logs go to stderr
	if format == "json" || os.Getenv("APP_ENV") == "production" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}
}
