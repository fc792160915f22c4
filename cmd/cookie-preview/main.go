// Command cookie-preview flips between the closed and open cookie sprites so
// replacement art can be checked without clicking through the game.
package main

import (
	"flag"
	"image/color"
	"io"

	"github.com/google/logger"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/fortunecookie/assets"
	"github.com/milk9111/fortunecookie/cookie"
	"github.com/milk9111/fortunecookie/prefabs"
)

const previewSize = 512

type previewGame struct {
	frames      []*ebiten.Image
	current     int
	tick        int
	ticksPerFrm int
}

func newPreviewGame(frames []*ebiten.Image, fps int) *previewGame {
	return &previewGame{frames: frames, ticksPerFrm: ticksPerFrame(fps)}
}

func (g *previewGame) Update() error {
	if len(g.frames) <= 1 {
		return nil
	}
	g.tick++
	if g.tick >= g.ticksPerFrm {
		g.tick = 0
		g.current = (g.current + 1) % len(g.frames)
	}
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x20, 0x1a, 0x17, 0xff})
	if len(g.frames) == 0 {
		return
	}
	frame := g.frames[g.current]
	fw := frame.Bounds().Dx()
	fh := frame.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(previewSize-fw)/2, float64(previewSize-fh)/2)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(frame, op)
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return previewSize, previewSize
}

// ticksPerFrame converts a flip rate into update ticks at 60 TPS.
func ticksPerFrame(fps int) int {
	if fps <= 0 {
		return 1
	}
	return max(60/fps, 1)
}

func loadFrames(sprites prefabs.CookieSprite) ([]*ebiten.Image, error) {
	closed, err := assets.CookieImage(cookie.ClosedRepresentation, sprites.Closed)
	if err != nil {
		return nil, err
	}
	open, err := assets.CookieImage(cookie.OpenRepresentation, sprites.Open)
	if err != nil {
		return nil, err
	}
	return []*ebiten.Image{closed, open}, nil
}

func main() {
	prefabPath := flag.String("prefab", "", "fortune cookie prefab YAML (default: embedded fortune_cookie.yaml)")
	fps := flag.Int("fps", 1, "sprite flips per second")
	flag.Parse()

	defer logger.Init("cookie-preview", true, false, io.Discard).Close()

	var (
		spec *prefabs.FortuneCookieSpec
		err  error
	)
	if *prefabPath == "" {
		spec, err = prefabs.LoadFortuneCookieSpec()
	} else {
		spec, err = prefabs.LoadFortuneCookieSpecFile(*prefabPath)
	}
	if err != nil {
		logger.Fatalf("load prefab: %v", err)
	}

	frames, err := loadFrames(spec.Sprites)
	if err != nil {
		logger.Fatalf("load sprites: %v", err)
	}

	ebiten.SetWindowSize(previewSize, previewSize)
	ebiten.SetWindowTitle("Cookie Sprite Preview")
	if err := ebiten.RunGame(newPreviewGame(frames, *fps)); err != nil {
		logger.Fatal(err)
	}
}
