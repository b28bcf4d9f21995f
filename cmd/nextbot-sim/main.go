package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/nextbot-maze/config"
	"github.com/lixenwraith/nextbot-maze/engine"
	"github.com/lixenwraith/nextbot-maze/player"
)

type runStats struct {
	runIndex int
	seed     int64

	caught    bool
	deathTick uint64
	killer    string
	distance  float64
	respawns  int
	spawnMode string
	degraded  bool
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var script string
	var configPath string
	var patterns string
	var agents int
	var verbose bool

	flag.IntVar(&runs, "runs", 10, "number of headless sessions")
	flag.IntVar(&ticks, "ticks", 3600, "tick limit per session")
	flag.Int64Var(&seedBase, "seed-base", 42, "seed of run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&script, "player", "wander", "scripted player: idle, forward, wander")
	flag.StringVar(&configPath, "config", "", "YAML config file")
	flag.StringVar(&patterns, "patterns", "", "comma-separated bot patterns")
	flag.IntVar(&agents, "agents", -1, "number of bots")
	flag.BoolVar(&verbose, "v", false, "log session events to stderr")
	flag.Parse()

	if runs <= 0 || ticks <= 0 {
		fmt.Println("error: -runs and -ticks must be > 0")
		os.Exit(2)
	}
	if _, ok := scripts[script]; !ok {
		fmt.Printf("error: unsupported player script %q (supported: %s)\n", script, scriptNames())
		os.Exit(2)
	}

	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			fmt.Printf("error: %v\n", err)
			os.Exit(1)
		}
	}
	config.ApplyEnv(&cfg)
	cfg.Audio.Enabled = false
	if agents >= 0 {
		cfg.Pursuit.Agents = agents
	}
	if patterns != "" {
		cfg.Pursuit.Patterns = strings.Split(patterns, ",")
	}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}

	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level, Prefix: "nextbot-sim"})

	fmt.Printf("=== Headless Pursuit Report ===\n")
	fmt.Printf("player=%s runs=%d ticks=%d seed_base=%d seed_step=%d agents=%d\n\n",
		script, runs, ticks, seedBase, seedStep, cfg.Pursuit.Agents)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats, err := runSession(i+1, cfg, seed, ticks, script, logger)
		if err != nil {
			fmt.Printf("error: run %d: %v\n", i+1, err)
			os.Exit(1)
		}
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(all, ticks)
}

// scripts drive the player without a terminal
var scripts = map[string]func(tick uint64, s *engine.Session) player.Intent{
	"idle": func(uint64, *engine.Session) player.Intent {
		return player.Intent{}
	},
	"forward": func(tick uint64, s *engine.Session) player.Intent {
		in := player.Intent{Forward: 1}
		if tick > 10 && s.Player.Speed() < 0.01 {
			in.Turn = 1
		}
		return in
	},
	"wander": func(tick uint64, s *engine.Session) player.Intent {
		in := player.Intent{Forward: 1}
		if (tick/90)%2 == 0 {
			in.Turn = 0.5
		} else {
			in.Turn = -0.5
		}
		if tick > 10 && s.Player.Speed() < 0.01 {
			in.Turn = 1
		}
		return in
	},
}

func scriptNames() string {
	names := make([]string, 0, len(scripts))
	for name := range scripts {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func runSession(runIndex int, cfg config.Config, seed int64, ticks int, script string, logger *log.Logger) (runStats, error) {
	cfg.Maze.Seed = seed
	stats := runStats{runIndex: runIndex, seed: seed}

	s, err := engine.NewSession(engine.Options{
		Config: cfg,
		Logger: logger,
		OnDeath: func(r engine.DeathReport) {
			stats.caught = true
			stats.deathTick = r.Stats.Ticks
			stats.killer = r.Pattern.String()
		},
	})
	if err != nil {
		return stats, err
	}
	stats.spawnMode = s.Spawn.Mode.String()
	stats.degraded = s.World.Degraded

	drive := scripts[script]
	for i := 0; i < ticks && !s.Dead(); i++ {
		s.Step(engine.TickInput{Intent: drive(s.Stats.Ticks, s)})
	}

	stats.distance = s.Stats.Distance
	stats.respawns = s.Stats.Respawns
	return stats, nil
}

func printRun(rs runStats) {
	outcome := "survived"
	if rs.caught {
		outcome = fmt.Sprintf("caught@%d by %s", rs.deathTick, rs.killer)
	}
	fmt.Printf("run %2d seed=%-6d spawn=%-6s dist=%7.1f respawns=%-3d %s\n",
		rs.runIndex, rs.seed, rs.spawnMode, rs.distance, rs.respawns, outcome)
}

type aggregate struct {
	runs        int
	caught      int
	meanCatch   float64 // Ticks, over caught runs
	meanDist    float64
	killsByName map[string]int
}

func summarize(all []runStats) aggregate {
	agg := aggregate{runs: len(all), killsByName: map[string]int{}}
	if len(all) == 0 {
		return agg
	}
	var catchTicks float64
	for _, rs := range all {
		agg.meanDist += rs.distance
		if rs.caught {
			agg.caught++
			catchTicks += float64(rs.deathTick)
			agg.killsByName[rs.killer]++
		}
	}
	agg.meanDist /= float64(len(all))
	if agg.caught > 0 {
		agg.meanCatch = catchTicks / float64(agg.caught)
	}
	return agg
}

// rankKillers orders patterns by catches, ties by name
func rankKillers(kills map[string]int) []string {
	names := make([]string, 0, len(kills))
	for name := range kills {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if kills[names[i]] != kills[names[j]] {
			return kills[names[i]] > kills[names[j]]
		}
		return names[i] < names[j]
	})
	return names
}

func printAggregate(all []runStats, ticks int) {
	agg := summarize(all)
	fmt.Printf("\n--- aggregate ---\n")
	fmt.Printf("caught=%d/%d (%.0f%%) mean_catch_tick=%.0f mean_distance=%.1f\n",
		agg.caught, agg.runs, 100*float64(agg.caught)/math.Max(float64(agg.runs), 1), agg.meanCatch, agg.meanDist)
	if agg.caught < agg.runs {
		fmt.Printf("survivors lasted the full %d ticks\n", ticks)
	}
	for _, name := range rankKillers(agg.killsByName) {
		fmt.Printf("  %-12s %d\n", name, agg.killsByName[name])
	}
}
