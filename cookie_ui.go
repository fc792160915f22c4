package main

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/fortunecookie/cookie"
	"github.com/milk9111/fortunecookie/prefabs"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	defaultPanelColor = color.NRGBA{R: 0xf5, G: 0xea, B: 0xd2, A: 0xf0}
	defaultTextColor  = color.NRGBA{R: 0x3a, G: 0x2a, B: 0x1a, A: 0xff}
	headerColor       = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// CookieUI is the widget tree of the cookie scene plus the widgets the cookie
// writes to.
type CookieUI struct {
	UI      *ebitenui.UI
	Root    *widget.Container
	Column  *widget.Container
	Header  *widget.Text
	Graphic *widget.Graphic
	Panel   *widget.Container
	Fortune *widget.Text
	Numbers *widget.Text

	closedImage *ebiten.Image
	openImage   *ebiten.Image
}

// NewCookieUI builds a centered column: header, cookie graphic, and the
// reveal panel holding the fortune and lucky numbers. Clicking the cookie
// calls onActivate.
func NewCookieUI(spec *prefabs.FortuneCookieSpec, closedImage, openImage *ebiten.Image, onActivate func()) (*CookieUI, error) {
	src, err := ebtext.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	var headerFace ebtext.Face = &ebtext.GoTextFace{Source: src, Size: 22}
	var bodyFace ebtext.Face = &ebtext.GoTextFace{Source: src, Size: 18}

	textColor := spec.Colors.Text.ColorOr(defaultTextColor)
	panelImg := imageui.NewNineSliceColor(spec.Colors.Panel.ColorOr(defaultPanelColor))
	centered := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	c := &CookieUI{closedImage: closedImage, openImage: openImage}

	c.Header = widget.NewText(
		widget.TextOpts.Text(spec.Header, &headerFace, headerColor),
		widget.TextOpts.WidgetOpts(centered),
	)

	c.Graphic = widget.NewGraphic(
		widget.GraphicOpts.Image(closedImage),
		widget.GraphicOpts.WidgetOpts(
			centered,
			widget.WidgetOpts.MouseButtonClickedHandler(func(args *widget.WidgetMouseButtonClickedEventArgs) {
				if onActivate != nil {
					onActivate()
				}
			}),
		),
	)

	c.Fortune = widget.NewText(
		widget.TextOpts.Text("", &bodyFace, textColor),
		widget.TextOpts.WidgetOpts(centered),
	)
	c.Numbers = widget.NewText(
		widget.TextOpts.Text("", &bodyFace, textColor),
		widget.TextOpts.WidgetOpts(centered),
	)

	c.Panel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 14, Bottom: 14, Left: 24, Right: 24}),
		)),
		widget.ContainerOpts.WidgetOpts(
			centered,
			widget.WidgetOpts.MinSize(spec.Layout.Width*3/4, 0),
		),
	)
	c.Panel.AddChild(c.Fortune)
	c.Panel.AddChild(c.Numbers)

	c.Column = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(16),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	c.Column.AddChild(c.Header)
	c.Column.AddChild(c.Graphic)
	c.Column.AddChild(c.Panel)

	c.Root = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	c.Root.AddChild(c.Column)

	c.UI = &ebitenui.UI{Container: c.Root}
	return c, nil
}

// Surfaces returns cookie options bound to the widgets. The caller supplies
// the fortune list, sound and RNG.
func (c *CookieUI) Surfaces() cookie.Options {
	return cookie.Options{
		Header:       &visibilityBinding{target: c.Header, relayout: c.Column},
		Fortune:      &textBinding{text: c.Fortune, relayout: c.Panel},
		LuckyNumbers: &textBinding{text: c.Numbers, relayout: c.Panel},
		Image:        &graphicBinding{graphic: c.Graphic, closed: c.closedImage, open: c.openImage},
		Panel:        &visibilityBinding{target: c.Panel, relayout: c.Column},
	}
}
