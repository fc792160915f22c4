// Command fortune-term runs the fortune cookie in a terminal.
package main

import (
	"flag"
	"io"

	"github.com/gdamore/tcell/v2"
	"github.com/google/logger"
	"github.com/milk9111/fortunecookie/cookie"
	"github.com/milk9111/fortunecookie/prefabs"
)

type app struct {
	screen tcell.Screen
	view   *view
	cookie *cookie.Cookie

	mouseDown bool
}

func main() {
	prefabPath := flag.String("prefab", "", "fortune cookie prefab YAML (default: embedded fortune_cookie.yaml)")
	seed := flag.Int64("seed", 0, "fixed RNG seed, 0 seeds from the clock")
	mute := flag.Bool("mute", false, "disable the crack sound")
	flag.Parse()

	// The terminal belongs to tcell, so nothing goes to stdout.
	defer logger.Init("fortune-term", false, false, io.Discard).Close()

	spec, err := loadSpec(*prefabPath)
	if err != nil {
		logger.Fatalf("load prefab: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Fatalf("terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		logger.Fatalf("terminal: %v", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	a := newApp(screen, spec, setupSound(spec, *mute, newCrackSound), *seed)
	a.run()
}

// setupSound returns the crack trigger for spec, or nil when muted or no
// crack is configured. A speaker that fails to start leaves a silent trigger.
func setupSound(spec *prefabs.FortuneCookieSpec, mute bool, build func(volume float64) *crackSound) cookie.Trigger {
	crack, ok := spec.Crack()
	if !ok || mute {
		return nil
	}
	s := build(crack.Volume)
	if err := s.init(); err != nil {
		// Non-fatal, the cookie works without sound
		logger.Warningf("audio initialization failed: %v", err)
	}
	return s
}

func loadSpec(path string) (*prefabs.FortuneCookieSpec, error) {
	if path == "" {
		return prefabs.LoadFortuneCookieSpec()
	}
	return prefabs.LoadFortuneCookieSpecFile(path)
}

func newApp(screen tcell.Screen, spec *prefabs.FortuneCookieSpec, sound cookie.Trigger, seed int64) *app {
	v := newView(spec.Header)
	opts := v.surfaces()
	opts.Fortunes = spec.Fortunes
	opts.Sound = sound
	if seed != 0 {
		opts.RNG = cookie.NewRandSource(seed)
	}

	a := &app{screen: screen, view: v, cookie: cookie.New(opts)}
	a.cookie.Initialize()
	return a
}

func (a *app) run() {
	a.redraw()
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		if !a.handle(ev) {
			return
		}
		a.redraw()
	}
}

// handle applies one event and reports whether the app keeps running.
func (a *app) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyEnter:
			a.cookie.Activate()
		case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			a.cookie.Activate()
		}
	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !a.mouseDown {
			a.cookie.Activate()
		}
		a.mouseDown = down
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *app) redraw() {
	a.screen.Clear()
	w, h := a.screen.Size()
	a.view.draw(a.screen, w, h)
	a.screen.Show()
}
