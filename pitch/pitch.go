package pitch

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/jsphweid/pitchscore/constants"
	"github.com/jsphweid/pitchscore/model"
)

var labelPattern = regexp.MustCompile(`^([A-G])(♯|#|♭|b)?(\d+)$`)

// FormatError means the analysis service sent a label we can't read.
type FormatError struct {
	Label string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid note format: %q", e.Label)
}

// OctaveShift is how far every note of a piece is moved up for display.
// Bass input is drawn on the treble staff one octave up.
func OctaveShift(clef model.Clef) int {
	if clef == model.Bass {
		return 1
	}
	return 0
}

// ParseClef maps the analysis service's clef string. Anything that isn't
// "bass" is treated as treble.
func ParseClef(s string) model.Clef {
	if model.Clef(s) == model.Bass {
		return model.Bass
	}
	return model.Treble
}

func parseAccidental(s string) model.Accidental {
	switch s {
	case "♯", "#":
		return model.Sharp
	case "♭", "b":
		return model.Flat
	default:
		return model.Natural
	}
}

func letterIndex(letter byte) int {
	// C D E F G A B
	return [...]int{5, 6, 0, 1, 2, 3, 4}[letter-'A']
}

// Height puts every letter/octave on one line so they can be compared.
// Accidentals don't move a note on the staff.
func Height(letter byte, octave int) int {
	return octave*7 + letterIndex(letter)
}

func StemFor(letter byte, octave int) model.Stem {
	if Height(letter, octave) >= Height(constants.ReferenceLetter, constants.ReferenceOctave) {
		return model.StemDown
	}
	return model.StemUp
}

func Normalize(event model.ApiNote, clef model.Clef) (model.RenderableNote, error) {
	match := labelPattern.FindStringSubmatch(event.Note)
	if match == nil {
		return model.RenderableNote{}, &FormatError{Label: event.Note}
	}

	octave, err := strconv.Atoi(match[3])
	if err != nil {
		// only reachable with absurdly long digit runs
		return model.RenderableNote{}, &FormatError{Label: event.Note}
	}
	// NOTE: no range check, an octave of 12 is drawn as an octave of 12
	octave += OctaveShift(clef)

	letter := match[1][0]
	return model.RenderableNote{
		Letter:     letter,
		Accidental: parseAccidental(match[2]),
		Octave:     octave,
		Stem:       StemFor(letter, octave),
		StartTime:  event.StartTime,
		EndTime:    event.EndTime,
	}, nil
}
