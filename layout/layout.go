package layout

import (
	"math"

	"github.com/jsphweid/pitchscore/constants"
	"github.com/jsphweid/pitchscore/model"
	"github.com/jsphweid/pitchscore/util"
)

// caps the extra measures so huge widths can't overflow int
const maxExtraPerRow = 1 << 20

// MeasuresPerRow: 1 on narrow screens, 2 on medium ones, and from 3 up on
// wide ones, adding one per extra half of the medium breakpoint.
func MeasuresPerRow(width float64) int {
	switch {
	case math.IsNaN(width), width < constants.NarrowBreakpoint:
		return 1
	case width < constants.MediumBreakpoint:
		return 2
	default:
		increment := float64(constants.MediumBreakpoint) / 2
		extra := math.Min(math.Floor((width-constants.MediumBreakpoint)/increment), maxExtraPerRow)
		return 3 + int(extra)
	}
}

func Rows(measureCount int, perRow int) int {
	return util.CeilDiv(measureCount, perRow)
}

// MeasureWidth trims the right edge of a full row's last measure and of a row
// holding a single measure. A partial last row with several measures is left alone.
func MeasureWidth(base float64, col int, inRow int, perRow int) float64 {
	isFirst := col == 0
	isLast := col == inRow-1
	switch {
	case isFirst && inRow == 1:
		return base - constants.StaveWidthOffset
	case isLast && inRow > 1 && inRow == perRow:
		return base - constants.StaveWidthOffset
	default:
		return base
	}
}

func RowY(row int) float64 {
	return float64(row * (constants.StaveHeight + constants.StaveRowMargin))
}

func CanvasHeight(rows int) float64 {
	return RowY(rows)
}

// Compute lays measures out row-major. It is always recomputed from scratch.
// A non-positive or non-finite width still assigns every measure a cell,
// each zero-sized.
func Compute(measureCount int, width float64) model.LayoutGrid {
	if math.IsNaN(width) || math.IsInf(width, 0) {
		width = 0
	}
	width = util.Max(width, 0)
	measureCount = util.Max(measureCount, 0)

	perRow := MeasuresPerRow(width)
	rows := Rows(measureCount, perRow)
	base := width / float64(perRow)

	grid := model.LayoutGrid{
		Width:          width,
		Height:         CanvasHeight(rows),
		Rows:           rows,
		MeasuresPerRow: perRow,
		MeasureWidth:   base,
		Cells:          make([]model.Cell, 0, measureCount),
	}

	for row := 0; row < rows; row++ {
		inRow := util.Min(perRow, measureCount-row*perRow)
		var x float64
		for col := 0; col < inRow; col++ {
			index := row*perRow + col
			w := 0.0
			if width > 0 {
				w = util.Max(MeasureWidth(base, col, inRow, perRow), 0)
			}

			barline := model.SingleBarline
			if index == measureCount-1 {
				barline = model.EndBarline
			}

			grid.Cells = append(grid.Cells, model.Cell{
				Row:          row,
				Col:          col,
				MeasureIndex: index,
				Bounds: model.Rect{
					X:      x,
					Y:      RowY(row),
					Width:  w,
					Height: constants.StaveHeight,
				},
				WithClef: col == 0,
				Barline:  barline,
			})
			x += w
		}
	}

	return grid
}
