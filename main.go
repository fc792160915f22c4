package main

import (
	"flag"
	"io"
	"os"

	"github.com/google/logger"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	prefabPath := flag.String("prefab", "", "fortune cookie prefab YAML (default: embedded fortune_cookie.yaml)")
	seed := flag.Int64("seed", 0, "fixed RNG seed, 0 seeds from the clock")
	watch := flag.Bool("watch", false, "reload fortunes when the prefab changes on disk")
	debug := flag.Bool("debug", false, "enable debug mode")
	verbose := flag.Bool("v", false, "verbose logging")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	defer logger.Init("fortunecookie", *verbose, false, logOutput(*verbose)).Close()
	if *verbose {
		logger.SetLevel(1)
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	game, err := NewGame(Config{
		PrefabPath: *prefabPath,
		Seed:       *seed,
		Watch:      *watch,
		Debug:      *debug,
	})
	if err != nil {
		logger.Fatalf("start: %v", err)
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(game.spec.Layout.Width, game.spec.Layout.Height)
	ebiten.SetWindowTitle("fortune cookie")

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatalf("run: %v", err)
	}
}

// logOutput is the log file handed to logger.Init. Verbose logging already
// writes to stdout and stderr; otherwise everything goes to stderr so
// warnings are not lost.
func logOutput(verbose bool) io.Writer {
	if verbose {
		return io.Discard
	}
	return os.Stderr
}
