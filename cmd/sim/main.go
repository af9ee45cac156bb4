// Command sim runs an arena without a window: either flat out for a fixed
// number of simulated seconds, or live in the terminal with -tui.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/milk9111/vanguard/arena"
	"github.com/milk9111/vanguard/common"
	"github.com/milk9111/vanguard/ecs/system"
)

func main() {
	arenaName := flag.String("arena", "arena.yaml", "arena prefab in prefabs/")
	difficulty := flag.String("difficulty", "", "difficulty preset (defaults to the waves file)")
	seed := flag.Int64("seed", 1, "random seed")
	seconds := flag.Float64("seconds", 300, "simulated seconds to run headless")
	dt := flag.Float64("dt", 1.0/60, "fixed timestep in seconds")
	tui := flag.Bool("tui", false, "watch the run in the terminal")
	logLevel := flag.String("log", "warn", "log level (debug|info|warn|error)")
	flag.Parse()

	logger := common.NewLogger(os.Stderr, *logLevel)
	common.Logger = logger

	opts := arena.Options{
		Arena:      *arenaName,
		Difficulty: *difficulty,
		Seed:       *seed,
		Log:        logger,
	}
	if *tui {
		// Log output would tear the terminal screen.
		opts.Log = common.DiscardLogger()
		opts.Cues = &system.RecordingCues{}
	}

	a, err := arena.New(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *tui {
		if err := runTUI(a, *dt); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}
	runHeadless(a, *seconds, *dt, logger)
}

func runHeadless(a *arena.Arena, seconds, dt float64, logger *slog.Logger) {
	if dt <= 0 {
		dt = 1.0 / 60
	}
	elapsed := 0.0
	for elapsed < seconds {
		a.Step(dt)
		elapsed += dt
		if !a.HeroAlive() {
			logger.Warn("hero down", "elapsed", elapsed)
			break
		}
	}

	s := a.Stats
	fmt.Printf("elapsed=%.1fs difficulty=%s waves=%d spawned=%d capped=%d alive=%d kills=%d hero_deaths=%d\n",
		elapsed, a.Difficulty.Name, s.Waves, s.Spawned, s.Capped, a.Director.CurrentAlive(), s.Kills, s.HeroDeaths)
}
