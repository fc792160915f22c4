package main

import (
	"errors"

	"github.com/google/logger"
	"golang.design/x/clipboard"
)

var errClipboardUnavailable = errors.New("clipboard unavailable")

// Clipboard copies revealed fortunes to the system clipboard. Without a
// clipboard (headless, missing X11) copying is disabled.
type Clipboard struct {
	write func(text string) error
}

func NewClipboard() *Clipboard {
	if err := clipboard.Init(); err != nil {
		logger.Warningf("clipboard disabled: %v", err)
		return &Clipboard{}
	}
	return &Clipboard{write: func(text string) error {
		clipboard.Write(clipboard.FmtText, []byte(text))
		return nil
	}}
}

func (c *Clipboard) Copy(text string) error {
	if c == nil || c.write == nil {
		return errClipboardUnavailable
	}
	return c.write(text)
}
