package main

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/milk9111/fortunecookie/cookie"
)

var closedArt = []string{
	`    _.--""--._    `,
	`  .'    ||    '.  `,
	` (      ||      ) `,
	`  '.____||____.'  `,
}

var openArt = []string{
	`  _.-"""-.      .-"""-._  `,
	` (       /  ~~  \       ) `,
	`  '-.__.'        '.__.-'  `,
}

const hint = "Enter/Space: crack   q: quit"

// cellWriter is the part of tcell.Screen the view draws through.
type cellWriter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// view is the terminal scene. The cookie writes into it through the surface
// adapters below and draw renders it.
type view struct {
	headerText string

	headerVisible bool
	panelVisible  bool
	fortune       string
	numbers       string
	sprite        cookie.Representation
}

type visibleFlag struct{ on *bool }

func (f visibleFlag) SetVisible(v bool) { *f.on = v }

type textField struct{ text *string }

func (f textField) SetText(s string) { *f.text = s }

type spriteField struct{ rep *cookie.Representation }

func (f spriteField) SetImage(rep cookie.Representation) { *f.rep = rep }

func newView(header string) *view {
	return &view{headerText: header}
}

// surfaces binds the cookie's display surfaces to the view.
func (v *view) surfaces() cookie.Options {
	return cookie.Options{
		Header:       visibleFlag{&v.headerVisible},
		Fortune:      textField{&v.fortune},
		LuckyNumbers: textField{&v.numbers},
		Image:        spriteField{&v.sprite},
		Panel:        visibleFlag{&v.panelVisible},
	}
}

var (
	headerStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	cookieStyle = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	panelStyle  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBeige)
	hintStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

func (v *view) draw(s cellWriter, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}

	y := 1
	if v.headerVisible {
		putCentered(s, width, y, v.headerText, headerStyle)
	}
	y += 2

	art := closedArt
	if v.sprite == cookie.OpenRepresentation {
		art = openArt
	}
	for _, line := range art {
		putCentered(s, width, y, line, cookieStyle)
		y++
	}
	y++

	if v.panelVisible {
		inner := max(runewidth.StringWidth(v.fortune), runewidth.StringWidth(v.numbers)) + 2
		left := (width - inner) / 2
		for row, text := range []string{"", v.fortune, v.numbers, ""} {
			fillRow(s, left, y+row, inner, panelStyle)
			putCentered(s, width, y+row, text, panelStyle)
		}
	}

	putCentered(s, width, height-1, hint, hintStyle)
}

func putCentered(s cellWriter, width, y int, text string, style tcell.Style) {
	x := (width - runewidth.StringWidth(text)) / 2
	put(s, max(x, 0), y, text, style)
}

func put(s cellWriter, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

func fillRow(s cellWriter, x, y, n int, style tcell.Style) {
	put(s, x, y, strings.Repeat(" ", max(n, 0)), style)
}
