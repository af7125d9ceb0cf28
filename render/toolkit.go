package render

import (
	"github.com/jsphweid/pitchscore/model"
)

// StaveMetrics is what the notation toolkit reports after drawing a stave.
type StaveMetrics struct {
	// first x a note may be drawn at, after padding and the clef glyph
	NoteStartX float64
}

// GlyphBox is a formatted tickable, x relative to the note start.
type GlyphBox struct {
	X     float64
	Width float64
}

// Toolkit is the notation library seam. Only these two calls are used.
type Toolkit interface {
	// DrawStave draws a measure. clef is empty for every measure but the
	// first of a row.
	DrawStave(bounds model.Rect, clef model.Clef, barline model.BarlineType) StaveMetrics
	// FormatNotes spreads the slots over width and reports where each landed.
	FormatNotes(slots model.Measure, width float64) []GlyphBox
}

type DrawnStave struct {
	Bounds  model.Rect
	Clef    model.Clef
	Barline model.BarlineType
}

// FixedToolkit uses constant glyph metrics. It stands in for a real engraver
// on servers and terminals, and records what it was asked to draw.
type FixedToolkit struct {
	LeftPadding   float64
	ClefWidth     float64
	NoteWidth     float64
	AccidentalPad float64
	RestWidth     float64

	Staves []DrawnStave
}

func NewFixedToolkit() *FixedToolkit {
	return &FixedToolkit{
		LeftPadding:   12,
		ClefWidth:     38,
		NoteWidth:     14,
		AccidentalPad: 10,
		RestWidth:     12,
	}
}

func (tk *FixedToolkit) DrawStave(bounds model.Rect, clef model.Clef, barline model.BarlineType) StaveMetrics {
	tk.Staves = append(tk.Staves, DrawnStave{Bounds: bounds, Clef: clef, Barline: barline})
	start := bounds.X + tk.LeftPadding
	if clef != "" {
		start += tk.ClefWidth
	}
	return StaveMetrics{NoteStartX: start}
}

func (tk *FixedToolkit) glyphWidth(slot model.Slot) float64 {
	if slot.IsRest() {
		return tk.RestWidth
	}
	if slot.Note.Accidental != model.Natural {
		return tk.NoteWidth + tk.AccidentalPad
	}
	return tk.NoteWidth
}

// FormatNotes gives every slot an equal share of width.
func (tk *FixedToolkit) FormatNotes(slots model.Measure, width float64) []GlyphBox {
	boxes := make([]GlyphBox, 0, len(slots))
	if len(slots) == 0 {
		return boxes
	}
	step := width / float64(len(slots))
	for i, slot := range slots {
		boxes = append(boxes, GlyphBox{X: float64(i) * step, Width: tk.glyphWidth(slot)})
	}
	return boxes
}

func (tk *FixedToolkit) Reset() {
	tk.Staves = nil
}
