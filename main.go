package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/troligtvis/lavafloor/common"
	"github.com/troligtvis/lavafloor/logging"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code so deferred cleanup happens before exit.
func run() int {
	debug := flag.Bool("debug", false, "draw colliders and log at debug level")
	levelName := flag.String("level", "", "level name in levels/ (basename, .yaml optional)")
	watch := flag.Bool("watch", false, "reload prefabs and the level when their files change")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	logger, err := logging.New(*debug)
	if err != nil {
		log.Print(err)
		return 1
	}
	defer logger.Sync() //nolint:errcheck

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("Lava floor")
	ebiten.SetTPS(int(1 / common.TimeStep))

	game := NewGame(*levelName, *debug, *watch, logger)
	defer func() {
		if err := game.Close(); err != nil {
			logger.Warn("closing hot reload watcher", zap.Error(err))
		}
	}()

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game exited", zap.Error(err))
		return 1
	}
	return 0
}
