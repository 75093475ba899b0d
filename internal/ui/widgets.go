package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var (
	colorBarBG   = color.RGBA{60, 60, 60, 255}
	colorBarFG   = color.RGBA{255, 255, 255, 255}
	colorSpinner = color.RGBA{255, 255, 255, 255}
)

// DrawProgressBar draws a horizontal progress bar filled to pct (0-100).
func DrawProgressBar(screen *ebiten.Image, x, y, w, h float64, pct int) {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	ebitenutil.DrawRect(screen, x, y, w, h, colorBarBG)
	ebitenutil.DrawRect(screen, x+2, y+2, (w-4)*float64(pct)/100, h-4, colorBarFG)
}

// DrawSpinner draws a ring of dots around (cx, cy) with the dot nearest
// angleDeg at full brightness and the rest trailing off behind it.
func DrawSpinner(screen *ebiten.Image, cx, cy float64, angleDeg int) {
	const dots = 8
	const radius = 20.0
	const dotSize = 5.0

	lead := (angleDeg % 360) * dots / 360
	for i := 0; i < dots; i++ {
		theta := float64(i) / dots * 2 * math.Pi
		x := cx + radius*math.Cos(theta) - dotSize/2
		y := cy + radius*math.Sin(theta) - dotSize/2

		// Trail fades with distance behind the lead dot
		dist := (lead - i + dots) % dots
		alpha := 255 - dist*28
		if alpha < 50 {
			alpha = 50
		}
		c := colorSpinner
		c.R = uint8(int(c.R) * alpha / 255)
		c.G = uint8(int(c.G) * alpha / 255)
		c.B = uint8(int(c.B) * alpha / 255)
		c.A = uint8(alpha)
		ebitenutil.DrawRect(screen, x, y, dotSize, dotSize, c)
	}
}
