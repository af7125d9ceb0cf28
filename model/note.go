package model

import "fmt"

type Accidental int

const (
	Natural Accidental = iota
	Sharp
	Flat
)

func (a Accidental) String() string {
	switch a {
	case Sharp:
		return "#"
	case Flat:
		return "b"
	default:
		return ""
	}
}

type Stem int

const (
	StemUp Stem = iota
	StemDown
)

func (s Stem) String() string {
	if s == StemDown {
		return "down"
	}
	return "up"
}

// RenderableNote is a PitchEvent ready to be drawn on the treble staff.
// Octave already includes the clef shift.
type RenderableNote struct {
	Letter     byte
	Accidental Accidental
	Octave     int
	Stem       Stem

	// index of the source event, kept so glyphs can be matched to timings
	Index     int
	StartTime float64
	EndTime   float64
}

// Key returns the note in "c#/4" form.
func (n RenderableNote) Key() string {
	return fmt.Sprintf("%c%v/%d", n.Letter+('a'-'A'), n.Accidental, n.Octave)
}

func (n RenderableNote) String() string {
	return fmt.Sprintf("%c%v%d", n.Letter, n.Accidental, n.Octave)
}

type RestKind int

const (
	WholeRest RestKind = iota
	HalfRest
	QuarterRest
	EighthRest
	SixteenthRest
)

// Beats is measured in quarter notes.
func (r RestKind) Beats() float64 {
	switch r {
	case WholeRest:
		return 4
	case HalfRest:
		return 2
	case QuarterRest:
		return 1
	case EighthRest:
		return 0.5
	default:
		return 0.25
	}
}

func (r RestKind) String() string {
	return [...]string{"wr", "hr", "qr", "8r", "16r"}[r]
}

// Slot is one position in a measure: either a note or a padding rest.
type Slot struct {
	Note *RenderableNote
	Rest RestKind
}

func (s Slot) IsRest() bool {
	return s.Note == nil
}

// NOTE: every note is one beat no matter what the analysis service said
func (s Slot) Beats() float64 {
	if s.IsRest() {
		return s.Rest.Beats()
	}
	return 1
}

type Measure []Slot

func (m Measure) Beats() float64 {
	var total float64
	for _, s := range m {
		total += s.Beats()
	}
	return total
}

func (m Measure) Notes() []RenderableNote {
	var res []RenderableNote
	for _, s := range m {
		if !s.IsRest() {
			res = append(res, *s.Note)
		}
	}
	return res
}
