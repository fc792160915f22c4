package main

import (
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/fortunecookie/cookie"
)

// The bindings adapt ebitenui widgets to the surfaces the cookie writes to.
// All of them tolerate a nil receiver or a missing widget.

type widgetHolder interface {
	GetWidget() *widget.Widget
}

type relayouter interface {
	RequestRelayout()
}

type textBinding struct {
	text     *widget.Text
	relayout relayouter
}

func (b *textBinding) SetText(s string) {
	if b == nil || b.text == nil {
		return
	}
	b.text.Label = s
	if b.relayout != nil {
		b.relayout.RequestRelayout()
	}
}

type visibilityBinding struct {
	target   widgetHolder
	relayout relayouter
}

func (b *visibilityBinding) SetVisible(visible bool) {
	if b == nil || b.target == nil {
		return
	}
	if visible {
		b.target.GetWidget().Visibility = widget.Visibility_Show
	} else {
		b.target.GetWidget().Visibility = widget.Visibility_Hide
	}
	// Visibility changes can affect preferred sizes; request a relayout so the
	// target gets positioned by the parent layout.
	if b.relayout != nil {
		b.relayout.RequestRelayout()
	}
}

type graphicBinding struct {
	graphic *widget.Graphic
	closed  *ebiten.Image
	open    *ebiten.Image
}

func (b *graphicBinding) SetImage(rep cookie.Representation) {
	if b == nil || b.graphic == nil {
		return
	}
	switch rep {
	case cookie.OpenRepresentation:
		b.graphic.Image = b.open
	default:
		b.graphic.Image = b.closed
	}
}

// soundPlayer is the part of *audio.Player the crack sound needs.
type soundPlayer interface {
	IsPlaying() bool
	Pause()
	Rewind() error
	SetVolume(volume float64)
	Play()
}

// soundBinding queues plays and flushes them once per frame, the same way the
// audio system handles play requests.
type soundBinding struct {
	player  soundPlayer
	volume  float64
	pending bool
}

func (b *soundBinding) Play() {
	if b == nil || b.player == nil {
		return
	}
	b.pending = true
}

func (b *soundBinding) flush() error {
	if b == nil || b.player == nil || !b.pending {
		return nil
	}
	b.pending = false

	if b.player.IsPlaying() {
		b.player.Pause()
	}
	b.player.SetVolume(b.volume)
	if err := b.player.Rewind(); err != nil {
		return err
	}
	b.player.Play()
	return nil
}
