package main

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/google/logger"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/fortunecookie/assets"
	"github.com/milk9111/fortunecookie/cookie"
	"github.com/milk9111/fortunecookie/prefabs"
)

var defaultBackground = color.NRGBA{R: 0x2b, G: 0x1d, B: 0x14, A: 0xff}

// Config is the command-line configuration of the game.
type Config struct {
	// PrefabPath is a YAML prefab on disk. Empty uses fortune_cookie.yaml.
	PrefabPath string
	// Seed fixes the RNG when non-zero.
	Seed  int64
	Watch bool
	Debug bool
}

type Game struct {
	frames int

	input    *Input
	ui       *CookieUI
	cookie   *cookie.Cookie
	sound    *soundBinding
	clip     *Clipboard
	reloader *Reloader

	spec       *prefabs.FortuneCookieSpec
	background color.Color
	debug      bool

	// clicked is set by the cookie graphic during ui.Update and consumed in
	// the same frame.
	clicked bool
}

func NewGame(cfg Config) (*Game, error) {
	spec, err := loadSpec(cfg.PrefabPath)
	if err != nil {
		return nil, err
	}

	closedImg, err := assets.CookieImage(cookie.ClosedRepresentation, spec.Sprites.Closed)
	if err != nil {
		return nil, fmt.Errorf("load closed sprite: %w", err)
	}
	openImg, err := assets.CookieImage(cookie.OpenRepresentation, spec.Sprites.Open)
	if err != nil {
		return nil, fmt.Errorf("load open sprite: %w", err)
	}

	g := &Game{
		input:      NewInput(),
		spec:       spec,
		background: spec.Colors.Background.ColorOr(defaultBackground),
		debug:      cfg.Debug,
		sound:      &soundBinding{volume: 1},
	}

	if crack, ok := spec.Crack(); ok {
		player, err := assets.NewCrackPlayer(crack.File)
		if err != nil {
			// Non-fatal, the cookie works without sound
			logger.Warningf("crack sound unavailable: %v", err)
		} else {
			g.sound.player = player
			g.sound.volume = crack.Volume
		}
	}

	ui, err := NewCookieUI(spec, closedImg, openImg, g.requestActivate)
	if err != nil {
		return nil, err
	}
	g.ui = ui

	opts := ui.Surfaces()
	opts.Fortunes = spec.Fortunes
	opts.Sound = g.sound
	if cfg.Seed != 0 {
		opts.RNG = cookie.NewRandSource(cfg.Seed)
	}
	g.cookie = cookie.New(opts)
	g.cookie.Initialize()

	g.clip = NewClipboard()

	if cfg.Watch {
		r, err := NewReloader(cfg.PrefabPath)
		if err != nil {
			logger.Warningf("hot reload disabled: %v", err)
		} else {
			g.reloader = r
		}
	}

	logger.Infof("fortune cookie ready with %d fortunes", len(spec.Fortunes))
	return g, nil
}

func loadSpec(path string) (*prefabs.FortuneCookieSpec, error) {
	if path == "" {
		return prefabs.LoadFortuneCookieSpec()
	}
	return prefabs.LoadFortuneCookieSpecFile(path)
}

func (g *Game) requestActivate() {
	g.clicked = true
}

// applyActivation toggles the cookie at most once per frame, however many
// triggers fired.
func (g *Game) applyActivation() {
	if g.input.ActivatePressed || g.clicked {
		g.activate()
	}
	g.clicked = false
}

func (g *Game) activate() {
	g.cookie.Activate()
	logger.V(1).Infof("cookie %s", g.cookie.State())
}

func (g *Game) Update() error {
	g.frames++

	g.input.Update()
	if g.input.QuitPressed {
		return ebiten.Termination
	}

	g.ui.UI.Update()
	g.applyActivation()
	if g.input.CopyPressed {
		g.copyReveal()
	}

	if err := g.sound.flush(); err != nil {
		logger.Warningf("play crack sound: %v", err)
	}

	g.applyReload()
	return nil
}

func (g *Game) copyReveal() {
	reveal, ok := g.cookie.Current()
	if !ok {
		return
	}
	if err := g.clip.Copy(clipboardText(reveal)); err != nil && !errors.Is(err, errClipboardUnavailable) {
		logger.Warningf("copy fortune: %v", err)
	}
}

func clipboardText(r cookie.Reveal) string {
	return r.Fortune + "\n" + r.NumbersText()
}

func (g *Game) applyReload() {
	if g.reloader == nil {
		return
	}
	spec, ok := g.reloader.Poll()
	if !ok {
		return
	}
	g.cookie.SetFortunes(spec.Fortunes)
	logger.Infof("reloaded %d fortunes", len(spec.Fortunes))
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	g.ui.UI.Draw(screen)

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    State: %s", g.frames, ebiten.ActualFPS(), g.cookie.State()))
	}
}

// Close releases the watcher. The game loop has stopped by then.
func (g *Game) Close() error {
	if g.reloader == nil {
		return nil
	}
	return g.reloader.Close()
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return float64(g.spec.Layout.Width), float64(g.spec.Layout.Height)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
