package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-logr/logr"

	"chosenoffset.com/tilewalk/internal/audio"
	"chosenoffset.com/tilewalk/internal/game"
	"chosenoffset.com/tilewalk/internal/input"
	"chosenoffset.com/tilewalk/internal/logging"
	ebitenrender "chosenoffset.com/tilewalk/internal/render/ebiten"
	"chosenoffset.com/tilewalk/internal/render/sprites"
	"chosenoffset.com/tilewalk/internal/render/term"
	"chosenoffset.com/tilewalk/internal/simulation"
	"chosenoffset.com/tilewalk/internal/telemetry"
	"chosenoffset.com/tilewalk/internal/world/maploader"
)

const termLogFile = "tilewalk.log"

func main() {
	configPath := flag.String("config", "tilewalk.json", "path to the JSON config file")
	mapName := flag.String("map", "", "map to load (overrides config)")
	seed := flag.Int64("seed", 0, "spawn selection seed, 0 for time-based (overrides config)")
	backend := flag.String("backend", "", `frontend to run: "ebiten" or "term" (overrides config)`)
	flag.Parse()

	// Not fatal - variables might be set directly
	if err := simulation.LoadDotEnv(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := simulation.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		log.Fatalf("Failed to apply environment: %v", err)
	}
	if *mapName != "" {
		cfg.Map = *mapName
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *backend != "" {
		cfg.Backend = *backend
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *simulation.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The terminal frontend owns stdout and stderr while it runs.
	var logOut io.Writer = os.Stderr
	if cfg.Backend == "term" {
		f, err := os.OpenFile(termLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			logOut = io.Discard
		} else {
			defer f.Close()
			logOut = f
		}
	}
	logger := logging.NewWithWriter(logOut, cfg.LogVerbosity)

	if telemetry.Enabled() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			logger.Error(err, "telemetry setup failed, running without traces")
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logger.Error(err, "error shutting down telemetry")
				}
			}()
		}
	}

	maps, err := maploader.Builtin()
	if err != nil {
		return fmt.Errorf("failed to load built-in maps: %w", err)
	}
	if cfg.MapsDir != "" {
		if err := maps.LoadDir(cfg.MapsDir); err != nil {
			return fmt.Errorf("failed to load maps from %s: %w", cfg.MapsDir, err)
		}
	}
	logger.V(1).Info("maps available", "names", maps.Names())

	bindings, err := input.ParseBindings(cfg.Keys)
	if err != nil {
		return fmt.Errorf("invalid key bindings: %w", err)
	}

	session, err := simulation.NewSession(ctx, *cfg, maps, simulation.NewRand(cfg.Seed), logger)
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	var cues *audio.Cues
	if cfg.Audio {
		cues = audio.NewCues(0.3)
		if err := cues.Init(); err != nil {
			logger.Info("audio unavailable, continuing without sound", "reason", err.Error())
		}
		defer cues.Close()
	}

	switch cfg.Backend {
	case "term":
		return runTerminal(ctx, session, bindings, cues, logger)
	case "ebiten", "":
		return runEbiten(session, bindings, cues, logger)
	default:
		return fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}

func runEbiten(session *simulation.Session, bindings input.Bindings, cues *audio.Cues, logger logr.Logger) error {
	cfg := session.Config()

	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	loader := ebitenrender.NewResourceLoader()
	engine := ebitenrender.NewEngine()

	set := sprites.Load(renderer, loader, cfg.AssetDir, cfg.TileSize, logger)
	g := game.New(session, renderer, inputMgr, input.NewPoller(bindings), set, cues, logger)

	engine.SetWindowSize(cfg.ViewportWidth, cfg.ViewportHeight)
	engine.SetWindowTitle("Tilewalk - " + cfg.Map)
	engine.SetTPS(cfg.FPS)

	logger.Info("starting game", "backend", "ebiten")
	return engine.RunGame(g)
}

func runTerminal(ctx context.Context, session *simulation.Session, bindings input.Bindings, cues *audio.Cues, logger logr.Logger) error {
	screen, err := term.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	defer screen.Fini()

	in := term.NewInputManager(term.DefaultHoldWindow)
	g := game.New(session, nil, in, input.NewPoller(bindings), nil, cues, logger)

	logger.Info("starting game", "backend", "term")
	return term.Run(ctx, screen, g, in, session.Config().FPS, logger)
}
