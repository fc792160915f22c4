package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds the per-frame key state the cookie scene reacts to. Mouse and
// touch clicks on the cookie go through the UI instead.
type Input struct {
	// ActivatePressed is true on the frame Space, Enter or the gamepad
	// confirm button went down.
	ActivatePressed bool
	// CopyPressed is true on the frame C went down.
	CopyPressed bool
	// QuitPressed is true on the frame Escape went down.
	QuitPressed bool
}

func NewInput() *Input {
	return &Input{}
}

// Update polls the keyboard and the first gamepad.
func (i *Input) Update() {
	activate := inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)

	if ids := ebiten.GamepadIDs(); len(ids) > 0 {
		activate = activate || inpututil.IsStandardGamepadButtonJustPressed(ids[0], ebiten.StandardGamepadButtonRightBottom)
	}

	i.ActivatePressed = activate
	i.CopyPressed = inpututil.IsKeyJustPressed(ebiten.KeyC)
	i.QuitPressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
