// Package ui provides the widgets shared by menu views and the loading
// overlay: buttons with 9-slice art, a progress bar and a spinner.
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Colors for flat-rendered widgets
var (
	colorButton         = color.RGBA{200, 200, 200, 255}
	colorButtonHover    = color.RGBA{255, 255, 255, 255}
	colorButtonDisabled = color.RGBA{110, 110, 110, 255}
)

// Debug font cell metrics used to center labels
const (
	glyphW = 6
	glyphH = 16
)

// Button is a clickable rectangle authored in design coordinates and
// rendered at a uniform scale. Art is an optional 9-slice border image;
// without it the button renders as a flat rectangle.
type Button struct {
	Label    string
	OnClick  func()
	Disabled bool

	designX, designY float64
	designW, designH float64

	x, y, w, h float64
	hovered    bool

	art    *ebiten.Image
	border int
}

// NewButton creates a button at the given design-space rectangle.
func NewButton(label string, x, y, w, h float64, onClick func()) *Button {
	return &Button{
		Label:   label,
		OnClick: onClick,
		designX: x, designY: y,
		designW: w, designH: h,
		x: x, y: y, w: w, h: h,
	}
}

// SetArt installs a 9-slice border image with the given corner size.
func (b *Button) SetArt(img *ebiten.Image, border int) {
	b.art = img
	b.border = border
}

// Resize rescales the button uniformly from its design rectangle.
func (b *Button) Resize(scale float64) {
	b.x = b.designX * scale
	b.y = b.designY * scale
	b.w = b.designW * scale
	b.h = b.designH * scale
}

// MoveTo repositions the scaled rectangle; used for anchored layouts.
func (b *Button) MoveTo(x, y float64) {
	b.x = x
	b.y = y
}

// CenterX centers the scaled rectangle horizontally on the given x.
func (b *Button) CenterX(cx float64) {
	b.x = cx - b.w/2
}

// Rect returns the current on-screen rectangle.
func (b *Button) Rect() (x, y, w, h float64) {
	return b.x, b.y, b.w, b.h
}

// Contains reports whether the point lies inside the button.
func (b *Button) Contains(mx, my int) bool {
	fx, fy := float64(mx), float64(my)
	return fx >= b.x && fx < b.x+b.w && fy >= b.y && fy < b.y+b.h
}

// Hover updates the hover state from the mouse position.
func (b *Button) Hover(mx, my int) {
	b.hovered = b.Contains(mx, my)
}

// Hovered reports the current hover state.
func (b *Button) Hovered() bool {
	return b.hovered
}

// Click fires OnClick if the point hits an enabled button.
// Returns true when the click was consumed.
func (b *Button) Click(mx, my int) bool {
	if b.Disabled || !b.Contains(mx, my) {
		return false
	}
	if b.OnClick != nil {
		b.OnClick()
	}
	return true
}

// Draw renders the button and its label.
func (b *Button) Draw(screen *ebiten.Image) {
	if b.art != nil {
		DrawNineSlice(screen, b.art, b.border, b.x, b.y, b.w, b.h, b.hovered && !b.Disabled)
	} else {
		c := colorButton
		if b.Disabled {
			c = colorButtonDisabled
		} else if b.hovered {
			c = colorButtonHover
		}
		ebitenutil.DrawRect(screen, b.x, b.y, b.w, b.h, c)
	}

	tx := int(b.x + (b.w-float64(len(b.Label)*glyphW))/2)
	ty := int(b.y + (b.h-glyphH)/2)
	ebitenutil.DebugPrintAt(screen, b.Label, tx, ty)
}

// DrawNineSlice draws src stretched to the target rectangle while
// keeping the border-sized corners unscaled. brighten lifts the colors
// for the hover state.
func DrawNineSlice(dst, src *ebiten.Image, border int, x, y, w, h float64, brighten bool) {
	sb := src.Bounds()
	sw, sh := sb.Dx(), sb.Dy()
	if border > sw/2 {
		border = sw / 2
	}
	if border > sh/2 {
		border = sh / 2
	}
	if border <= 0 || w < float64(2*border) || h < float64(2*border) {
		drawScaled(dst, src, x, y, w, h, brighten)
		return
	}

	bf := float64(border)
	midW := float64(sw - 2*border)
	midH := float64(sh - 2*border)
	dstMidW := w - 2*bf
	dstMidH := h - 2*bf

	// src x offset, src width, dst x offset, dst width
	cols := [3][4]float64{
		{0, bf, 0, bf},
		{bf, midW, bf, dstMidW},
		{float64(sw) - bf, bf, w - bf, bf},
	}
	rows := [3][4]float64{
		{0, bf, 0, bf},
		{bf, midH, bf, dstMidH},
		{float64(sh) - bf, bf, h - bf, bf},
	}

	for _, r := range rows {
		for _, c := range cols {
			if r[1] <= 0 || c[1] <= 0 {
				continue
			}
			piece := subImage(src, int(c[0]), int(r[0]), int(c[1]), int(r[1]))
			opts := &ebiten.DrawImageOptions{}
			opts.GeoM.Scale(c[3]/c[1], r[3]/r[1])
			opts.GeoM.Translate(x+c[2], y+r[2])
			if brighten {
				opts.ColorScale.Scale(1.2, 1.2, 1.2, 1)
			}
			dst.DrawImage(piece, opts)
		}
	}
}

func drawScaled(dst, src *ebiten.Image, x, y, w, h float64, brighten bool) {
	sb := src.Bounds()
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(w/float64(sb.Dx()), h/float64(sb.Dy()))
	opts.GeoM.Translate(x, y)
	if brighten {
		opts.ColorScale.Scale(1.2, 1.2, 1.2, 1)
	}
	dst.DrawImage(src, opts)
}

func subImage(src *ebiten.Image, x, y, w, h int) *ebiten.Image {
	b := src.Bounds()
	r := b
	r.Min.X = b.Min.X + x
	r.Min.Y = b.Min.Y + y
	r.Max.X = r.Min.X + w
	r.Max.Y = r.Min.Y + h
	return src.SubImage(r).(*ebiten.Image)
}
