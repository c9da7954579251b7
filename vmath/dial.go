package vmath

import "math"

// Dial maps clock-face coordinates onto terminal cells
// Angles run clockwise from 12 o'clock; radii are in face units
type Dial struct {
	CX, CY int     // center cell
	Scale  float64 // columns per face unit
	Aspect float64 // cell height / cell width
}

// FitDial centers a dial of half-size extent inside the box at (x, y) sized w x h
// Scale is the largest that keeps the extent inside both dimensions after aspect correction
func FitDial(x, y, w, h int, extent, aspect float64) Dial {
	if aspect <= 0 {
		aspect = 1
	}
	scaleX := float64(w-2) / 2 / extent
	scaleY := float64(h-2) / 2 * aspect / extent
	scale := math.Max(0, math.Min(scaleX, scaleY))
	return Dial{
		CX:     x + w/2,
		CY:     y + h/2,
		Scale:  scale,
		Aspect: aspect,
	}
}

// Point returns the cell at angle and radius
func (d Dial) Point(angle, radius float64) (int, int) {
	fx := math.Sin(angle) * radius * d.Scale
	fy := math.Cos(angle) * radius * d.Scale / d.Aspect
	return d.CX + int(math.Round(fx)), d.CY - int(math.Round(fy))
}

// Right returns the first column right of the face at radius
func (d Dial) Right(radius float64) int {
	return d.CX + int(math.Ceil(radius*d.Scale))
}

// Below returns the first row below the face at radius
func (d Dial) Below(radius float64) int {
	return d.CY + int(math.Ceil(radius*d.Scale/d.Aspect))
}

// TraceLine visits every cell on the Bresenham line from (x0, y0) to (x1, y1), endpoints included
// Stops early when callback returns false
func TraceLine(x0, y0, x1, y1 int, callback func(x, y int) bool) {
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy > 0 {
		dy = -dy
	}
	stepX, stepY := 1, 1
	if x0 > x1 {
		stepX = -1
	}
	if y0 > y1 {
		stepY = -1
	}

	err := dx + dy
	for {
		if !callback(x0, y0) {
			return
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += stepX
		}
		if e2 <= dx {
			err += dx
			y0 += stepY
		}
	}
}
