package cookie

import (
	"regexp"
	"testing"
)

var numbersPattern = regexp.MustCompile(`^Lucky numbers: ([1-9]\d?)-([1-9]\d?)-([1-9]\d?)-([1-9]\d?)-([1-9]\d?)-([1-9]\d?)$`)

type recordingVisibility struct {
	visible bool
	calls   int
}

func (v *recordingVisibility) SetVisible(visible bool) {
	v.visible = visible
	v.calls++
}

type recordingText struct {
	text  string
	calls int
}

func (t *recordingText) SetText(text string) {
	t.text = text
	t.calls++
}

type recordingImage struct {
	rep   Representation
	calls int
}

func (i *recordingImage) SetImage(rep Representation) {
	i.rep = rep
	i.calls++
}

type recordingTrigger struct {
	plays int
}

func (t *recordingTrigger) Play() {
	t.plays++
}

// scriptedRNG replays fixed values, then repeats the last one.
type scriptedRNG struct {
	values []int
	calls  [][2]int
}

func (r *scriptedRNG) IntRange(lo, hi int) int {
	r.calls = append(r.calls, [2]int{lo, hi})
	if len(r.values) == 0 {
		return lo
	}
	v := r.values[0]
	if len(r.values) > 1 {
		r.values = r.values[1:]
	}
	return v
}

type harness struct {
	header  *recordingVisibility
	fortune *recordingText
	numbers *recordingText
	image   *recordingImage
	panel   *recordingVisibility
	sound   *recordingTrigger
	cookie  *Cookie
}

func newHarness(fortunes []string, rng RNG) *harness {
	h := &harness{
		header:  &recordingVisibility{},
		fortune: &recordingText{text: "stale"},
		numbers: &recordingText{text: "stale"},
		image:   &recordingImage{rep: OpenRepresentation},
		panel:   &recordingVisibility{visible: true},
		sound:   &recordingTrigger{},
	}
	h.cookie = New(Options{
		Fortunes:     fortunes,
		Header:       h.header,
		Fortune:      h.fortune,
		LuckyNumbers: h.numbers,
		Image:        h.image,
		Panel:        h.panel,
		Sound:        h.sound,
		RNG:          rng,
	})
	return h
}

func (h *harness) assertClosed(t *testing.T) {
	t.Helper()
	if h.cookie.State() != Closed {
		t.Fatalf("expected closed, got %s", h.cookie.State())
	}
	if h.image.rep != ClosedRepresentation {
		t.Fatalf("expected closed image, got %s", h.image.rep)
	}
	if h.fortune.text != "" || h.numbers.text != "" {
		t.Fatalf("expected empty texts, got fortune=%q numbers=%q", h.fortune.text, h.numbers.text)
	}
	if !h.header.visible {
		t.Fatalf("expected header visible")
	}
	if h.panel.visible {
		t.Fatalf("expected panel hidden")
	}
	if _, ok := h.cookie.Current(); ok {
		t.Fatalf("expected no current reveal while closed")
	}
}

func TestInitialize(t *testing.T) {
	h := newHarness([]string{"A", "B"}, NewRandSource(1))
	h.cookie.Initialize()
	h.assertClosed(t)
	if h.sound.plays != 0 {
		t.Fatalf("initialize should not play sound, got %d plays", h.sound.plays)
	}
}

func TestActivateScenario(t *testing.T) {
	h := newHarness([]string{"A", "B"}, NewRandSource(42))
	h.cookie.Initialize()

	h.cookie.Activate()
	if h.cookie.State() != Open {
		t.Fatalf("expected open, got %s", h.cookie.State())
	}
	if h.image.rep != OpenRepresentation {
		t.Fatalf("expected open image, got %s", h.image.rep)
	}
	if h.fortune.text != "A" && h.fortune.text != "B" {
		t.Fatalf("unexpected fortune %q", h.fortune.text)
	}
	if !numbersPattern.MatchString(h.numbers.text) {
		t.Fatalf("numbers text %q does not match pattern", h.numbers.text)
	}
	if h.header.visible {
		t.Fatalf("expected header hidden")
	}
	if !h.panel.visible {
		t.Fatalf("expected panel visible")
	}
	if h.sound.plays != 1 {
		t.Fatalf("expected 1 play, got %d", h.sound.plays)
	}
	reveal, ok := h.cookie.Current()
	if !ok || reveal.Fortune != h.fortune.text || reveal.NumbersText() != h.numbers.text {
		t.Fatalf("current reveal %+v does not match surfaces", reveal)
	}

	h.cookie.Activate()
	h.assertClosed(t)
	if h.sound.plays != 1 {
		t.Fatalf("closing should not play sound, got %d plays", h.sound.plays)
	}
}

func TestActivateAlternates(t *testing.T) {
	cases := []struct {
		name  string
		count int
		want  State
	}{
		{"zero", 0, Closed},
		{"one", 1, Open},
		{"two", 2, Closed},
		{"seven", 7, Open},
		{"ten", 10, Closed},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := newHarness([]string{"x"}, NewRandSource(int64(c.count)))
			h.cookie.Initialize()
			for i := 0; i < c.count; i++ {
				h.cookie.Activate()
			}
			if h.cookie.State() != c.want {
				t.Fatalf("after %d activations expected %s, got %s", c.count, c.want, h.cookie.State())
			}
			if wantPlays := (c.count + 1) / 2; h.sound.plays != wantPlays {
				t.Fatalf("expected %d plays, got %d", wantPlays, h.sound.plays)
			}
		})
	}
}

func TestFallbackFortune(t *testing.T) {
	cases := []struct {
		name     string
		fortunes []string
	}{
		{"nil", nil},
		{"empty", []string{}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := newHarness(c.fortunes, NewRandSource(7))
			h.cookie.Initialize()
			for i := 0; i < 5; i++ {
				h.cookie.Activate()
				if h.fortune.text != NoFortunes {
					t.Fatalf("expected %q, got %q", NoFortunes, h.fortune.text)
				}
				h.cookie.Activate()
			}
		})
	}
}

func TestLuckyNumbersRangeAndFormat(t *testing.T) {
	c := New(Options{RNG: NewRandSource(99)})
	for i := 0; i < 2000; i++ {
		n := c.GenerateLuckyNumbers()
		for _, v := range n {
			if v < LuckyNumberMin || v > LuckyNumberMax {
				t.Fatalf("draw %d out of range: %v", i, n)
			}
		}
		text := Reveal{Numbers: n}.NumbersText()
		if !numbersPattern.MatchString(text) {
			t.Fatalf("draw %d formatted as %q", i, text)
		}
	}
}

func TestLuckyNumbersKeepDrawOrder(t *testing.T) {
	rng := &scriptedRNG{values: []int{99, 1, 50, 50, 7, 10}}
	c := New(Options{RNG: rng})

	got := c.GenerateLuckyNumbers()
	want := LuckyNumbers{99, 1, 50, 50, 7, 10}
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if got.String() != "99-1-50-50-7-10" {
		t.Fatalf("unexpected format %q", got.String())
	}
	for i, call := range rng.calls {
		if call != [2]int{LuckyNumberMin, LuckyNumberMax} {
			t.Fatalf("call %d used range %v", i, call)
		}
	}
}

func TestPickFortuneUsesWholeList(t *testing.T) {
	fortunes := []string{"a", "b", "c"}
	rng := &scriptedRNG{values: []int{2}}
	c := New(Options{Fortunes: fortunes, RNG: rng})

	if got := c.PickFortune(); got != "c" {
		t.Fatalf("expected c, got %q", got)
	}
	if rng.calls[0] != [2]int{0, 2} {
		t.Fatalf("expected index range [0 2], got %v", rng.calls[0])
	}
}

func TestPickFortuneRepeatsAllowed(t *testing.T) {
	c := New(Options{Fortunes: []string{"a", "b"}, RNG: NewRandSource(3)})
	seen := map[string]int{}
	for i := 0; i < 200; i++ {
		seen[c.PickFortune()]++
	}
	if seen["a"] == 0 || seen["b"] == 0 {
		t.Fatalf("expected both fortunes over 200 picks, got %v", seen)
	}
}

func TestNoSurfaces(t *testing.T) {
	c := New(Options{})
	c.Initialize()
	for i := 0; i < 4; i++ {
		c.Activate()
	}
	if c.State() != Closed {
		t.Fatalf("expected closed, got %s", c.State())
	}
}

func TestFortuneListIsCopied(t *testing.T) {
	fortunes := []string{"original"}
	h := newHarness(fortunes, NewRandSource(5))
	fortunes[0] = "mutated"

	h.cookie.Initialize()
	h.cookie.Activate()
	if h.fortune.text != "original" {
		t.Fatalf("expected original, got %q", h.fortune.text)
	}
}

func TestSetFortunes(t *testing.T) {
	h := newHarness([]string{"old"}, NewRandSource(11))
	h.cookie.Initialize()
	h.cookie.Activate()

	next := []string{"new"}
	h.cookie.SetFortunes(next)
	next[0] = "mutated"
	if got := h.cookie.Fortunes(); len(got) != 1 || got[0] != "new" {
		t.Fatalf("expected [new], got %q", got)
	}
	h.cookie.Fortunes()[0] = "mutated"
	if got := h.cookie.Fortunes(); got[0] != "new" {
		t.Fatalf("Fortunes exposed internal list: %q", got)
	}
	if h.fortune.text != "old" {
		t.Fatalf("displayed fortune changed to %q", h.fortune.text)
	}
	if h.cookie.State() != Open {
		t.Fatalf("state changed to %s", h.cookie.State())
	}

	h.cookie.Activate()
	h.cookie.Activate()
	if h.fortune.text != "new" {
		t.Fatalf("expected new, got %q", h.fortune.text)
	}

	h.cookie.SetFortunes(nil)
	h.cookie.Activate()
	h.cookie.Activate()
	if h.fortune.text != NoFortunes {
		t.Fatalf("expected fallback, got %q", h.fortune.text)
	}
}

func TestRandSourceDeterministic(t *testing.T) {
	a := NewRandSource(2024)
	b := NewRandSource(2024)
	for i := 0; i < 100; i++ {
		if x, y := a.IntRange(1, 99), b.IntRange(1, 99); x != y {
			t.Fatalf("draw %d diverged: %d vs %d", i, x, y)
		}
	}
}

func TestRandSourceBounds(t *testing.T) {
	cases := []struct {
		name   string
		lo, hi int
	}{
		{"single", 5, 5},
		{"inverted", 9, 3},
		{"pair", 0, 1},
		{"lucky", 1, 99},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := NewRandSource(17)
			for i := 0; i < 500; i++ {
				v := s.IntRange(c.lo, c.hi)
				if c.hi <= c.lo {
					if v != c.lo {
						t.Fatalf("expected %d, got %d", c.lo, v)
					}
					continue
				}
				if v < c.lo || v > c.hi {
					t.Fatalf("value %d outside [%d, %d]", v, c.lo, c.hi)
				}
			}
		})
	}
}
