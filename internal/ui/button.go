// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/PaliBr/gamejam/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect       image.Rectangle
	Lines      []string
	TextColor  color.Color
	BgColor    color.RGBA
	HoverColor color.RGBA
	Face       font.Face
	Disabled   bool
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, face font.Face, lines ...string) *Button {
	return &Button{
		Rect:       rect,
		Lines:      lines,
		TextColor:  config.TextLightColor,
		BgColor:    config.ButtonColor,
		HoverColor: config.ButtonHoverColor,
		Face:       face,
	}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image, cursorX, cursorY int) {
	bg := b.BgColor
	switch {
	case b.Disabled:
		bg = config.ButtonMutedColor
	case b.Contains(cursorX, cursorY):
		bg = b.HoverColor
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, 2, config.UIBorderColor, false)

	lineHeight := b.Face.Metrics().Height.Ceil()
	top := b.Rect.Min.Y + (b.Rect.Dy()-lineHeight*len(b.Lines))/2 + b.Face.Metrics().Ascent.Ceil()
	for i, line := range b.Lines {
		bounds := text.BoundString(b.Face, line)
		tx := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
		text.Draw(screen, line, b.Face, tx, top+i*lineHeight, b.TextColor)
	}
}
