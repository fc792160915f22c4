package cookie

// Representation selects which cookie sprite an ImageSink shows.
type Representation int

const (
	ClosedRepresentation Representation = iota
	OpenRepresentation
)

func (r Representation) String() string {
	switch r {
	case ClosedRepresentation:
		return "closed"
	case OpenRepresentation:
		return "open"
	default:
		return "unknown"
	}
}

// Visibility shows or hides a surface (header label, reveal panel).
type Visibility interface {
	SetVisible(visible bool)
}

// TextSink receives text for a label.
type TextSink interface {
	SetText(text string)
}

// ImageSink swaps the cookie sprite.
type ImageSink interface {
	SetImage(rep Representation)
}

// Trigger fires a one-shot effect such as the crack sound.
type Trigger interface {
	Play()
}

type nopSurface struct{}

func (nopSurface) SetVisible(bool)         {}
func (nopSurface) SetText(string)          {}
func (nopSurface) SetImage(Representation) {}
func (nopSurface) Play()                   {}

// The bindings below hold the surface itself or a no-op, so the toggle never
// branches on nil.

func visibilityOrNop(v Visibility) Visibility {
	if v == nil {
		return nopSurface{}
	}
	return v
}

func textOrNop(t TextSink) TextSink {
	if t == nil {
		return nopSurface{}
	}
	return t
}

func imageOrNop(i ImageSink) ImageSink {
	if i == nil {
		return nopSurface{}
	}
	return i
}

func triggerOrNop(t Trigger) Trigger {
	if t == nil {
		return nopSurface{}
	}
	return t
}
