package tui

import (
	"github.com/vovakirdan/tui-junction/internal/core"
	"github.com/vovakirdan/tui-junction/internal/junction"
)

// Scene glyphs.
const (
	glyphGrass   = '·'
	glyphRoad    = ' '
	glyphVDash   = '┆'
	glyphHDash   = '┄'
	glyphHBar    = '━'
	glyphVBar    = '┃'
	glyphLight   = '●'
	glyphVehicle = '█'
)

// hudRows is the number of terminal rows reserved below the arena.
const hudRows = 4

// ArenaSize picks the arena grid for a terminal of width x height. Terminal
// cells are about twice as tall as wide, so the square world gets twice as
// many columns as rows.
func ArenaSize(width, height int) (cols, rows int) {
	rows = height - hudRows
	if rows < 8 {
		rows = 8
	}
	cols = rows * 2
	if cols > width {
		cols = width
		rows = cols / 2
	}
	if cols < 2 {
		cols, rows = 2, 1
	}
	return cols, rows
}

// DrawIntersection paints the roads, lane markings, signals and vehicles of
// snap into dst, scaling the world to dst's size. dst is cleared first.
func DrawIntersection(dst *core.Screen, snap junction.Snapshot) {
	cols, rows := dst.Width(), dst.Height()
	scale := func(x, y, w, h int) core.Rect {
		return core.NewRect(x, y, w, h).Scale(junction.WorldW, junction.WorldH, cols, rows)
	}

	dst.Fill(glyphGrass, core.ColorGrass)

	roadW := junction.RoadMax - junction.RoadMin
	dst.DrawRect(scale(junction.RoadMin, 0, roadW, junction.WorldH), glyphRoad, core.ColorDefault)
	dst.DrawRect(scale(0, junction.RoadMin, junction.WorldW, roadW), glyphRoad, core.ColorDefault)

	drawLaneMarkings(dst, scale)
	drawSignals(dst, snap, scale)

	for _, v := range snap.Vehicles {
		r := v.Rect.Scale(junction.WorldW, junction.WorldH, cols, rows)
		dst.DrawRect(r, glyphVehicle, vehicleColor(v))
	}
}

// drawLaneMarkings dashes the lane boundaries on the four approaches,
// leaving the box itself clear.
func drawLaneMarkings(dst *core.Screen, scale func(x, y, w, h int) core.Rect) {
	approach := junction.RoadMin
	for _, at := range []int{250, 350} {
		for _, y := range []int{0, junction.RoadMax} {
			r := scale(at, y, 1, approach)
			dst.DrawDashedVLine(r.X, r.Y, r.H, 1, glyphVDash, core.ColorGray)
		}
		for _, x := range []int{0, junction.RoadMax} {
			r := scale(x, at, approach, 1)
			dst.DrawDashedHLine(r.X, r.Y, r.W, 2, glyphHDash, core.ColorGray)
		}
	}
}

// drawSignals draws a stop bar across each approach's through lane at the
// box edge, colored by that road's light.
func drawSignals(dst *core.Screen, snap junction.Snapshot, scale func(x, y, w, h int) core.Rect) {
	bars := [4]struct {
		rect     core.Rect
		vertical bool
	}{
		junction.North: {scale(250, junction.RoadMin-1, 100, 1), false},
		junction.South: {scale(250, junction.RoadMax, 100, 1), false},
		junction.East:  {scale(junction.RoadMax, 250, 1, 100), true},
		junction.West:  {scale(junction.RoadMin-1, 250, 1, 100), true},
	}

	for _, road := range junction.Roads {
		green := snap.HorizontalGreen
		if road.Vertical() {
			green = snap.VerticalGreen
		}
		color := core.ColorBrightRed
		if green {
			color = core.ColorBrightGreen
		}

		b := bars[road]
		glyph := glyphHBar
		if b.vertical {
			glyph = glyphVBar
		}
		dst.DrawRect(b.rect, glyph, color)
		dst.SetColored(b.rect.X, b.rect.Y, glyphLight, color)
	}
}

// vehicleColor distinguishes lanes: through traffic yellow, left-turners
// cyan, exit-lane traffic white.
func vehicleColor(v junction.VehicleView) core.Color {
	switch v.Lane {
	case junction.LaneThrough:
		return core.ColorYellow
	case junction.LaneLeft:
		return core.ColorBrightCyan
	default:
		return core.ColorWhite
	}
}
