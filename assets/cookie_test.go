package assets

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/milk9111/fortunecookie/cookie"
)

func TestCookieRGBA(t *testing.T) {
	const size = 100

	cases := []struct {
		name string
		rep  cookie.Representation
		x, y int
		want color.NRGBA
	}{
		{"closed_fold", cookie.ClosedRepresentation, 50, 54, cookieShade},
		{"closed_body", cookie.ClosedRepresentation, 20, 50, cookieBody},
		{"closed_corner", cookie.ClosedRepresentation, 1, 1, color.NRGBA{}},
		{"open_slip", cookie.OpenRepresentation, 50, 50, paperSlip},
		{"open_left_half", cookie.OpenRepresentation, 16, 64, cookieBody},
		{"open_corner", cookie.OpenRepresentation, 98, 1, color.NRGBA{}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			img := CookieRGBA(c.rep, size)
			got := color.NRGBAModel.Convert(img.At(c.x, c.y)).(color.NRGBA)
			if got != c.want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", c.x, c.y, got, c.want)
			}
		})
	}
}

func TestCookieRGBADiffersByState(t *testing.T) {
	closed := CookieRGBA(cookie.ClosedRepresentation, 64)
	open := CookieRGBA(cookie.OpenRepresentation, 64)
	if string(closed.Pix) == string(open.Pix) {
		t.Fatalf("expected different sprites for closed and open")
	}
}

func TestCleanAssetPath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"crack.wav", "crack.wav"},
		{"assets/crack.wav", "crack.wav"},
		{"/home/me/game/assets/sprites/open.png", "sprites/open.png"},
		{"/tmp/open.png", "open.png"},
	}

	for _, c := range cases {
		if got := cleanAssetPath(c.in); got != c.want {
			t.Fatalf("cleanAssetPath(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile("does_not_exist.png"); err == nil {
		t.Fatalf("expected error for missing asset")
	}
}

func TestEmbeddedAssets(t *testing.T) {
	cases := []struct {
		path  string
		magic string
	}{
		{"cookie_closed.png", "\x89PNG"},
		{"assets/cookie_open.png", "\x89PNG"},
		{"crack.wav", "RIFF"},
	}

	for _, c := range cases {
		t.Run(c.path, func(t *testing.T) {
			b, err := LoadFile(c.path)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if !bytes.HasPrefix(b, []byte(c.magic)) {
				t.Fatalf("unexpected header % x", b[:min(len(b), 8)])
			}
		})
	}
}

func TestEmbeddedSpritesDecode(t *testing.T) {
	for _, path := range []string{"cookie_closed.png", "cookie_open.png"} {
		b, err := LoadFile(path)
		if err != nil {
			t.Fatalf("load %s: %v", path, err)
		}
		img, _, err := image.Decode(bytes.NewReader(b))
		if err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}
		if img.Bounds().Dx() != CookieSize || img.Bounds().Dy() != CookieSize {
			t.Fatalf("%s is %v, want %dx%d", path, img.Bounds(), CookieSize, CookieSize)
		}
	}
}

func TestSourcesNotEmbedded(t *testing.T) {
	for _, path := range []string{"embed.go", "cookie.go", "cookie_test.go"} {
		if _, err := LoadFile(path); err == nil {
			t.Fatalf("%s should not be embedded", path)
		}
	}
}
