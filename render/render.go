package render

import (
	"github.com/jsphweid/pitchscore/constants"
	"github.com/jsphweid/pitchscore/layout"
	"github.com/jsphweid/pitchscore/model"
)

// space kept free right of the last note in every measure
const noteSpaceRightMargin = 20

// Rendered is the output of one full layout pass.
type Rendered struct {
	Grid  model.LayoutGrid
	Notes []model.NoteGlyph
}

// CenterShift is how far to move the note start so the formatted group sits
// in the middle of the note space. Zero when the group already fills it.
func CenterShift(boxes []GlyphBox, noteSpace float64) float64 {
	if len(boxes) == 0 {
		return 0
	}
	first := boxes[0]
	last := boxes[len(boxes)-1]
	actual := last.X + last.Width - first.X
	remaining := noteSpace - actual
	if remaining <= 0 {
		return 0
	}
	return remaining / 2
}

func rowCenterY(cell model.Cell) float64 {
	return cell.Bounds.Y + constants.StaffTopOffset + 2*constants.StaffLineGap
}

// Render computes the grid for width and draws every measure through tk.
// Nothing is drawn for a non-positive width.
func Render(measures []model.Measure, width float64, tk Toolkit) Rendered {
	grid := layout.Compute(len(measures), width)
	res := Rendered{Grid: grid, Notes: []model.NoteGlyph{}}
	if grid.Width <= 0 {
		return res
	}

	for _, cell := range grid.Cells {
		var clef model.Clef
		if cell.WithClef {
			// bass input was already moved up an octave, so always treble
			clef = model.Treble
		}
		metrics := tk.DrawStave(cell.Bounds, clef, cell.Barline)

		slots := measures[cell.MeasureIndex]
		if len(slots) == 0 {
			continue
		}
		noteSpace := cell.Bounds.Right() - metrics.NoteStartX - noteSpaceRightMargin

		// too narrow to format: notes keep zero-width boxes at the note start
		// so they still highlight and take clicks
		boxes := make([]GlyphBox, len(slots))
		if noteSpace > 0 {
			boxes = tk.FormatNotes(slots, noteSpace)
		}
		startX := metrics.NoteStartX + CenterShift(boxes, noteSpace)

		for i, box := range boxes {
			if i >= len(slots) || slots[i].IsRest() {
				continue
			}
			n := slots[i].Note
			glyph := model.NoteGlyph{
				Index:        n.Index,
				RowCenterY:   rowCenterY(cell),
				MeasureIndex: cell.MeasureIndex,
				Key:          n.Key(),
				Bounds: model.Rect{
					X:      startX + box.X,
					Y:      cell.Bounds.Y + constants.StaffTopOffset,
					Width:  box.Width,
					Height: 4 * constants.StaffLineGap,
				},
			}
			if model.ValidTime(n.StartTime) {
				glyph.Timed = true
				glyph.StartTime = n.StartTime
				if model.ValidTime(n.EndTime) {
					glyph.EndTime = n.EndTime
				}
			}
			res.Notes = append(res.Notes, glyph)
		}
	}

	return res
}
