package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	FortuneCookieFile = "fortune_cookie.yaml"

	DefaultHeader = "Tap the cookie to crack it open!"
	DefaultWidth  = 640
	DefaultHeight = 480

	CrackAudioName = "crack"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// FortuneCookieSpec is the prefab for the fortune cookie scene.
type FortuneCookieSpec struct {
	Name     string       `yaml:"name"`
	Header   string       `yaml:"header"`
	Fortunes []string     `yaml:"fortunes"`
	Sprites  CookieSprite `yaml:"sprites"`
	Audio    []AudioSpec  `yaml:"audio"`
	Layout   LayoutSpec   `yaml:"layout"`
	Colors   ColorSpec    `yaml:"colors"`
}

// CookieSprite names the closed and cracked sprites. Empty paths use the
// procedural sprites.
type CookieSprite struct {
	Closed string `yaml:"closed"`
	Open   string `yaml:"open"`
}

type AudioSpec struct {
	Name   string  `yaml:"name"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
}

type LayoutSpec struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type ColorSpec struct {
	Background *YAMLColor `yaml:"background"`
	Panel      *YAMLColor `yaml:"panel"`
	Text       *YAMLColor `yaml:"text"`
}

// Crack returns the crack sound entry, if any.
func (s *FortuneCookieSpec) Crack() (AudioSpec, bool) {
	if s == nil {
		return AudioSpec{}, false
	}
	for _, a := range s.Audio {
		if a.Name == CrackAudioName {
			return a, true
		}
	}
	return AudioSpec{}, false
}

// LoadFortuneCookieSpec loads fortune_cookie.yaml, preferring the copy on
// disk over the embedded one.
func LoadFortuneCookieSpec() (*FortuneCookieSpec, error) {
	spec, err := LoadSpec[FortuneCookieSpec](FortuneCookieFile)
	if err != nil {
		return nil, err
	}
	spec.normalize()
	return &spec, nil
}

// LoadFortuneCookieSpecFile reads a prefab from an explicit path on disk.
func LoadFortuneCookieSpecFile(path string) (*FortuneCookieSpec, error) {
	data, err := LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", path, err)
	}
	spec, err := ParseFortuneCookieSpec(data)
	if err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal %s: %w", path, err)
	}
	return spec, nil
}

// ParseFortuneCookieSpec decodes and normalizes a fortune cookie prefab.
// An empty fortune list is valid.
func ParseFortuneCookieSpec(data []byte) (*FortuneCookieSpec, error) {
	var spec FortuneCookieSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, err
	}
	spec.normalize()
	return &spec, nil
}

func (s *FortuneCookieSpec) normalize() {
	fortunes := make([]string, 0, len(s.Fortunes))
	for _, f := range s.Fortunes {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		fortunes = append(fortunes, f)
	}
	s.Fortunes = fortunes

	s.Header = strings.TrimSpace(s.Header)
	if s.Header == "" {
		s.Header = DefaultHeader
	}

	if s.Layout.Width <= 0 {
		s.Layout.Width = DefaultWidth
	}
	if s.Layout.Height <= 0 {
		s.Layout.Height = DefaultHeight
	}

	for i := range s.Audio {
		s.Audio[i].Volume = clampVolume(s.Audio[i].Volume)
	}
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

type YAMLColor struct {
	color.Color
}

// ColorOr returns the parsed color, or fallback when unset.
func (c *YAMLColor) ColorOr(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
