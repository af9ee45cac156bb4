package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/vanguard/arena"
	"github.com/milk9111/vanguard/common"
	"github.com/milk9111/vanguard/prefabs"
)

func main() {
	arenaName := flag.String("arena", "arena.yaml", "arena prefab in prefabs/")
	difficulty := flag.String("difficulty", "", "difficulty preset (defaults to the waves file)")
	seed := flag.Int64("seed", 1, "random seed")
	watch := flag.Bool("watch", true, "reload prefabs and scripts when they change on disk")
	prefabDir := flag.String("prefabs", prefabs.Dir, "directory whose files override the embedded prefabs")
	debug := flag.Bool("debug", false, "draw detection ranges and targets")
	logLevel := flag.String("log", os.Getenv("LOG_LEVEL"), "log level (debug|info|warn|error)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	logger := common.NewLogger(os.Stderr, *logLevel)
	common.Logger = logger
	prefabs.Dir = *prefabDir

	a, err := arena.New(arena.Options{
		Arena:      *arenaName,
		Difficulty: *difficulty,
		Seed:       *seed,
		Log:        logger,
	})
	if err != nil {
		log.Fatal(err)
	}

	var watcher *prefabs.Watcher
	if *watch {
		watcher, err = prefabs.NewWatcher(prefabs.WatchDirs()...)
		if err != nil {
			logger.Warn("prefab watcher disabled", "err", err)
		} else {
			defer watcher.Close()
		}
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("vanguard")
	ebiten.SetTPS(tickRate)

	if err := ebiten.RunGame(NewGame(a, watcher, logger, *debug)); err != nil {
		log.Fatal(err)
	}
}
