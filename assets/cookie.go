package assets

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/fortunecookie/cookie"
	"golang.org/x/image/vector"
)

const CookieSize = 192

var (
	cookieBody  = color.NRGBA{R: 0xe3, G: 0xa8, B: 0x5c, A: 0xff}
	cookieShade = color.NRGBA{R: 0xb9, G: 0x7a, B: 0x35, A: 0xff}
	paperSlip   = color.NRGBA{R: 0xfb, G: 0xf7, B: 0xec, A: 0xff}
)

// kappa approximates a quarter circle with one cubic Bézier.
const kappa = 0.5522847

// CookieImage returns the sprite for rep, loading path when it is set and
// drawing the built-in cookie otherwise.
func CookieImage(rep cookie.Representation, path string) (*ebiten.Image, error) {
	if path != "" {
		return LoadImage(path)
	}
	return ebiten.NewImageFromImage(CookieRGBA(rep, CookieSize)), nil
}

// CookieRGBA draws the built-in cookie sprite into a size×size image.
func CookieRGBA(rep cookie.Representation, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float32(size)
	cx, cy := s/2, s/2

	switch rep {
	case cookie.OpenRepresentation:
		// two halves pushed apart with the paper slip between them
		fillRect(dst, paperSlip, cx-s*0.36, cy-s*0.06, cx+s*0.36, cy+s*0.06)
		fillEllipse(dst, cookieBody, cx-s*0.28, cy+s*0.08, s*0.18, s*0.22)
		fillEllipse(dst, cookieBody, cx+s*0.28, cy+s*0.08, s*0.18, s*0.22)
		fillEllipse(dst, cookieShade, cx-s*0.24, cy+s*0.10, s*0.05, s*0.14)
		fillEllipse(dst, cookieShade, cx+s*0.24, cy+s*0.10, s*0.05, s*0.14)
	default:
		fillEllipse(dst, cookieBody, cx, cy, s*0.42, s*0.30)
		fillEllipse(dst, cookieShade, cx, cy+s*0.04, s*0.06, s*0.22)
	}
	return dst
}

func fillEllipse(dst draw.Image, c color.Color, cx, cy, rx, ry float32) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	kx, ky := rx*kappa, ry*kappa
	z.MoveTo(cx+rx, cy)
	z.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	z.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	z.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	z.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	z.ClosePath()
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

func fillRect(dst draw.Image, c color.Color, x0, y0, x1, y1 float32) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.MoveTo(x0, y0)
	z.LineTo(x1, y0)
	z.LineTo(x1, y1)
	z.LineTo(x0, y1)
	z.ClosePath()
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}
