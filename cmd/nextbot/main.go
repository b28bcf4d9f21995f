package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"

	"github.com/lixenwraith/nextbot-maze/audio"
	"github.com/lixenwraith/nextbot-maze/config"
	"github.com/lixenwraith/nextbot-maze/engine"
	"github.com/lixenwraith/nextbot-maze/parameter"
	"github.com/lixenwraith/nextbot-maze/render"
)

var (
	configFlag   = flag.String("config", "", "YAML config file")
	agentsFlag   = flag.Int("agents", -1, "Number of bots (overrides config)")
	seedFlag     = flag.Int64("seed", 0, "Maze and behavior seed, 0 for random")
	modelFlag    = flag.String("model", "", "YAML collision model replacing the maze")
	patternsFlag = flag.String("patterns", "", "Comma-separated bot patterns")
	soundsFlag   = flag.String("sounds", "", "Directory of <index>.wav bot sounds")
	musicFlag    = flag.String("music", "", "Background music wav, looped")
	imagesFlag   = flag.String("images", "", "Directory of <index>.png/.webp/.bmp bot images")
	muteFlag     = flag.Bool("mute", false, "Start with audio disabled")
	debugFlag    = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
	avoidFlag    = flag.Bool("avoid-walls", false, "Bots sidestep walls instead of passing through")
)

func main() {
	var screen tcell.Screen

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\n\x1b[31mNEXTBOT CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	logger, logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	screen, err = tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.HideCursor()

	g := &game{
		cfg:     cfg,
		screen:  screen,
		minimap: render.NewMinimap(screen),
		logger:  logger,
	}

	if cfg.Audio.Enabled {
		sr := beep.SampleRate(parameter.AudioSampleRate)
		bp := audio.NewBeepPlayer(sr, cfg.Audio.MasterVolume)
		if err := bp.Init(sr.N(parameter.AudioBufferDuration)); err != nil {
			logger.Warn("audio unavailable, continuing silent", "err", err)
		} else {
			defer bp.Close()
			bp.SetEffects(cfg.Audio.EffectsVolume)
			bp.SetMusic(cfg.Audio.MusicVolume)
			bp.SetMuted(*muteFlag)
			g.audio = bp
			go loadSounds(bp, cfg.Audio.Sounds, cfg.Pursuit.Agents, logger)
			if cfg.Audio.Music != "" {
				go loadMusic(bp, cfg.Audio.Music, logger)
			}
		}
	}

	if err := g.restart(); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}

	events := make(chan tcell.Event, parameter.EventQueueSize)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	loop := engine.NewLoop(cfg.TickInterval())
	source := func() (engine.TickInput, bool) {
	drain:
		for {
			select {
			case ev := <-events:
				g.handleEvent(ev)
			default:
				break drain
			}
		}
		return engine.TickInput{Intent: g.input.intent(), Paused: g.paused}, !g.quit
	}
	sink := func(engine.TickOutput) {
		g.minimap.RenderFrame(g.session)
	}

	if err := loop.Run(context.Background(), g, source, sink); err != nil {
		logger.Error("loop stopped", "err", err)
	}
	logger.Info("exit", "ticks", g.session.Stats.Ticks)
}

// loadConfig layers defaults, the config file, NEXTBOT_* variables and flags
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *configFlag != "" {
		var err error
		if cfg, err = config.Load(*configFlag); err != nil {
			return cfg, err
		}
	}
	config.ApplyEnv(&cfg)

	if *agentsFlag >= 0 {
		cfg.Pursuit.Agents = *agentsFlag
	}
	if *seedFlag != 0 {
		cfg.Maze.Seed = *seedFlag
	}
	if *modelFlag != "" {
		cfg.Maze.Model = *modelFlag
	}
	if *patternsFlag != "" {
		cfg.Pursuit.Patterns = splitList(*patternsFlag)
	}
	if *soundsFlag != "" {
		cfg.Audio.Sounds = *soundsFlag
	}
	if *musicFlag != "" {
		cfg.Audio.Music = *musicFlag
	}
	if *avoidFlag {
		cfg.Pursuit.AvoidWalls = true
	}
	return cfg, cfg.Validate()
}

// game owns the current session and swaps it on restart
type game struct {
	cfg     config.Config
	screen  tcell.Screen
	minimap *render.Minimap
	audio   *audio.BeepPlayer
	logger  *log.Logger

	session *engine.Session
	input   inputState
	paused  bool
	quit    bool
}

// Step implements engine.Stepper on the current session
func (g *game) Step(in engine.TickInput) engine.TickOutput {
	return g.session.Step(in)
}

func (g *game) restart() error {
	opts := engine.Options{
		Config: g.cfg,
		Logger: g.logger,
		OnDeath: func(r engine.DeathReport) {
			g.logger.Info("caught", "pattern", r.Pattern, "survived", r.Survived, "distance", r.Stats.Distance)
		},
	}
	if g.audio != nil {
		opts.Audio = g.audio
	}

	s, err := engine.NewSession(opts)
	if err != nil {
		return err
	}
	g.session = s
	g.paused = false
	g.input.release()
	go loadVisuals(s.VisualQueue(), *imagesFlag, len(s.Agents), g.logger)
	return nil
}

func (g *game) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
	case *tcell.EventKey:
		switch a := keyAction(ev); a {
		case actQuit:
			g.quit = true
		case actPause:
			if !g.session.Dead() {
				g.paused = !g.paused
				g.input.release()
			}
		case actMute:
			if g.audio != nil {
				g.audio.SetMuted(!g.audio.Muted())
			}
		case actRestart:
			if err := g.restart(); err != nil {
				g.logger.Error("restart failed", "err", err)
			}
		case actZoomIn:
			g.minimap.Zoom(0.5)
		case actZoomOut:
			g.minimap.Zoom(2)
		case actNone:
		default:
			if !g.paused {
				g.input.press(a)
			}
		}
	}
}
