package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-clock/constants"
	"github.com/lixenwraith/vi-clock/core"
	"github.com/lixenwraith/vi-clock/vmath"
)

// textPanelWidth is the column budget reserved right of the face for the score readout
const textPanelWidth = 16

// Styles for the face; hour, minute and second hands are white, blue and red
var (
	StyleFace       = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	StyleHourMarker = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	StyleMinMarker  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	StyleHourHand   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	StyleMinuteHand = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	StyleSecondHand = tcell.StyleDefault.Foreground(tcell.ColorRed)
	StyleText       = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	StyleEvent      = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	StyleStatus     = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
)

// Hand runes by weight
const (
	RuneHourHand   = '█'
	RuneMinuteHand = '▓'
	RuneSecondHand = '•'
	RuneFace       = '·'
	RuneHourMarker = '■'
	RuneMinMarker  = '.'
)

// FaceRenderer draws one simulation frame onto a tcell screen
type FaceRenderer struct {
	screen   tcell.Screen
	strategy core.Strategy
}

// NewFaceRenderer creates a renderer bound to screen
func NewFaceRenderer(screen tcell.Screen, strategy core.Strategy) *FaceRenderer {
	return &FaceRenderer{screen: screen, strategy: strategy}
}

// Layout computes the dial for a screen of the given size
// The face takes the left area; the bottom row is the status line
func Layout(width, height int) vmath.Dial {
	faceW := width
	if width > 3*textPanelWidth {
		faceW = width - textPanelWidth
	}
	return vmath.FitDial(0, 0, faceW, height-1, constants.FaceExtent, constants.CellAspect)
}

// Render clears the screen, draws the frame and shows it
func (r *FaceRenderer) Render(f core.Frame) {
	r.screen.Clear()
	w, h := r.screen.Size()
	if w <= 0 || h <= 1 {
		r.screen.Show()
		return
	}

	dial := Layout(w, h)
	r.drawFace(dial)
	r.drawHand(dial, f.Angles.Hour, constants.HourHandLength, RuneHourHand, StyleHourHand)
	r.drawHand(dial, f.Angles.Minute, constants.MinuteHandLength, RuneMinuteHand, StyleMinuteHand)
	r.drawHand(dial, f.Angles.Second, constants.SecondHandLength, RuneSecondHand, StyleSecondHand)

	scoreX := dial.Right(constants.FaceRadius) + constants.TextColumnGap
	drawText(r.screen, scoreX, dial.CY, fmt.Sprintf("%s: %s", constants.ScoreLabel, f.ScoreText()), StyleText)

	if label := f.EventLabel(); label != "" {
		style := StyleText
		if f.Paused {
			style = StyleEvent
		}
		row := min(dial.Below(constants.FaceRadius)+1, h-2)
		drawText(r.screen, dial.CX-len(label)/2, row, label, style)
	}

	r.drawStatus(f, w, h)
	r.screen.Show()
}

func (r *FaceRenderer) drawFace(d vmath.Dial) {
	// Ring sampled densely enough to close at any terminal size
	steps := max(72, int(2*math.Pi*constants.FaceRadius*d.Scale))
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		x, y := d.Point(a, constants.FaceRadius)
		r.screen.SetContent(x, y, RuneFace, nil, StyleFace)
	}

	for deg := 0; deg < 360; deg += constants.MinuteMarkerStep {
		a := float64(deg) * math.Pi / 180
		if deg%constants.HourMarkerStep == 0 {
			r.drawSegment(d, a, constants.HourMarkerInner, constants.HourMarkerOuter, RuneHourMarker, StyleHourMarker)
			continue
		}
		r.drawSegment(d, a, constants.MinuteMarkerInner, constants.MinuteMarkerOuter, RuneMinMarker, StyleMinMarker)
	}
}

func (r *FaceRenderer) drawHand(d vmath.Dial, angle, length float64, ch rune, style tcell.Style) {
	r.drawSegment(d, angle, 0, length, ch, style)
}

func (r *FaceRenderer) drawSegment(d vmath.Dial, angle, inner, outer float64, ch rune, style tcell.Style) {
	x0, y0 := d.Point(angle, inner)
	x1, y1 := d.Point(angle, outer)
	vmath.TraceLine(x0, y0, x1, y1, func(x, y int) bool {
		r.screen.SetContent(x, y, ch, nil, style)
		return true
	})
}

func (r *FaceRenderer) drawStatus(f core.Frame, w, h int) {
	status := fmt.Sprintf(" %s │ %s │ events: %d │ frame: %d ",
		f.Time.Format(constants.TimeLayout), r.strategy, f.Count, f.Index)
	if f.Paused {
		status += "│ PAUSED "
	}
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, h-1, ' ', nil, StyleStatus)
	}
	drawText(r.screen, 0, h-1, status, StyleStatus)
}
