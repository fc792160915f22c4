// Package cookie implements the fortune cookie toggle: a two-state component
// that cracks open to reveal a fortune and six lucky numbers, and closes
// again on the next activation.
//
// The component writes to display surfaces supplied by the host. Every
// surface is optional; a missing one is bound to a no-op.
package cookie

import (
	"strconv"
	"strings"
)

const (
	// NoFortunes is shown when the fortune list is nil or empty.
	NoFortunes = "No fortunes available."

	LuckyNumberCount = 6
	LuckyNumberMin   = 1
	LuckyNumberMax   = 99

	luckyNumbersPrefix = "Lucky numbers: "
)

// State is the toggle mode of a Cookie.
type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Open:
		return "open"
	default:
		return "unknown"
	}
}

// LuckyNumbers holds six draws in draw order.
type LuckyNumbers [LuckyNumberCount]int

// String joins the numbers with hyphens, e.g. "7-42-42-3-99-15".
func (n LuckyNumbers) String() string {
	var b strings.Builder
	for i, v := range n {
		if i > 0 {
			b.WriteByte('-')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

// Reveal is the content shown while a Cookie is open.
type Reveal struct {
	Fortune string
	Numbers LuckyNumbers
}

// NumbersText is the label text for the lucky numbers surface.
func (r Reveal) NumbersText() string {
	return luckyNumbersPrefix + r.Numbers.String()
}

// Options configures a Cookie. Nil surfaces are allowed.
type Options struct {
	Fortunes []string

	Header       Visibility
	Fortune      TextSink
	LuckyNumbers TextSink
	Image        ImageSink
	Panel        Visibility
	Sound        Trigger

	// RNG defaults to a time-seeded source.
	RNG RNG
}

// Cookie is the fortune cookie toggle. It is driven from a single event loop
// and is not safe for concurrent use.
type Cookie struct {
	fortunes []string

	header       Visibility
	fortune      TextSink
	luckyNumbers TextSink
	image        ImageSink
	panel        Visibility
	sound        Trigger
	rng          RNG

	state  State
	reveal Reveal
}

// New creates a closed Cookie. Surfaces are not touched until Initialize.
func New(opts Options) *Cookie {
	rng := opts.RNG
	if rng == nil {
		rng = NewTimeSource()
	}
	return &Cookie{
		fortunes:     copyFortunes(opts.Fortunes),
		header:       visibilityOrNop(opts.Header),
		fortune:      textOrNop(opts.Fortune),
		luckyNumbers: textOrNop(opts.LuckyNumbers),
		image:        imageOrNop(opts.Image),
		panel:        visibilityOrNop(opts.Panel),
		sound:        triggerOrNop(opts.Sound),
		rng:          rng,
		state:        Closed,
	}
}

// Initialize puts the cookie and every bound surface into the closed state.
// Hosts call it once before delivering any activation.
func (c *Cookie) Initialize() {
	c.close()
}

// Activate flips the cookie. Closed cookies crack open and play the sound;
// open cookies reset silently.
func (c *Cookie) Activate() {
	if c.state == Open {
		c.close()
		return
	}
	c.open()
}

func (c *Cookie) open() {
	c.reveal = Reveal{
		Fortune: c.PickFortune(),
		Numbers: c.GenerateLuckyNumbers(),
	}

	c.image.SetImage(OpenRepresentation)
	c.fortune.SetText(c.reveal.Fortune)
	c.luckyNumbers.SetText(c.reveal.NumbersText())
	c.header.SetVisible(false)
	c.panel.SetVisible(true)
	c.sound.Play()

	c.state = Open
}

func (c *Cookie) close() {
	c.reveal = Reveal{}

	c.image.SetImage(ClosedRepresentation)
	c.fortune.SetText("")
	c.luckyNumbers.SetText("")
	c.header.SetVisible(true)
	c.panel.SetVisible(false)

	c.state = Closed
}

// PickFortune returns a fortune chosen uniformly with replacement, or
// NoFortunes when the list is empty.
func (c *Cookie) PickFortune() string {
	if len(c.fortunes) == 0 {
		return NoFortunes
	}
	return c.fortunes[c.rng.IntRange(0, len(c.fortunes)-1)]
}

// GenerateLuckyNumbers draws six independent numbers in [1, 99]. Repeats are
// allowed and the order is kept.
func (c *Cookie) GenerateLuckyNumbers() LuckyNumbers {
	var n LuckyNumbers
	for i := range n {
		n[i] = c.rng.IntRange(LuckyNumberMin, LuckyNumberMax)
	}
	return n
}

// State reports the current toggle state.
func (c *Cookie) State() State {
	return c.state
}

// Current returns the revealed content while the cookie is open.
func (c *Cookie) Current() (Reveal, bool) {
	if c.state != Open {
		return Reveal{}, false
	}
	return c.reveal, true
}

// Fortunes returns a copy of the configured fortune list.
func (c *Cookie) Fortunes() []string {
	return copyFortunes(c.fortunes)
}

// SetFortunes replaces the fortune list used by later activations. What is on
// screen now is left alone.
func (c *Cookie) SetFortunes(fortunes []string) {
	c.fortunes = copyFortunes(fortunes)
}

func copyFortunes(fortunes []string) []string {
	if len(fortunes) == 0 {
		return nil
	}
	return append([]string(nil), fortunes...)
}
