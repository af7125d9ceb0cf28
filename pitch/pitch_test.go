package pitch

import (
	"fmt"
	"testing"

	"github.com/jsphweid/pitchscore/model"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func note(label string) model.ApiNote {
	return model.ApiNote{Note: label, StartTime: 1, EndTime: 2}
}

func TestNormalizesPlainNote(t *testing.T) {
	n, err := Normalize(note("E3"), model.Treble)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(byte('E'), n.Letter)
	assert.Equal(model.Natural, n.Accidental)
	assert.Equal(3, n.Octave)
	assert.Equal("e/3", n.Key())
	assert.Equal(1.0, n.StartTime)
	assert.Equal(2.0, n.EndTime)
}

func TestAccidentalSpellingsAreEquivalent(t *testing.T) {
	cases := map[string]model.Accidental{
		"D♯3": model.Sharp,
		"D#3": model.Sharp,
		"D♭3": model.Flat,
		"Db3": model.Flat,
	}
	for label, want := range cases {
		t.Run(label, func(t *testing.T) {
			n, err := Normalize(note(label), model.Treble)
			assert.NoError(t, err)
			assert.Equal(t, want, n.Accidental)
			assert.Equal(t, byte('D'), n.Letter)
			assert.Equal(t, 3, n.Octave)
		})
	}
}

func TestBassShiftsUpOneOctave(t *testing.T) {
	n, err := Normalize(note("C3"), model.Bass)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(byte('C'), n.Letter)
	assert.Equal(model.Natural, n.Accidental)
	assert.Equal(4, n.Octave)
	assert.Equal("c/4", n.Key())
}

func TestOutOfRangeOctaveIsKept(t *testing.T) {
	n, err := Normalize(note("A12"), model.Bass)
	assert.NoError(t, err)
	assert.Equal(t, 13, n.Octave)
}

func TestRejectsMalformedLabels(t *testing.T) {
	for _, label := range []string{"", "H4", "c4", "C", "C#", "4C", "C##4", "C4 ", "Cx4", "C-1"} {
		t.Run(fmt.Sprintf("label %q", label), func(t *testing.T) {
			_, err := Normalize(note(label), model.Treble)
			var fe *FormatError
			assert.True(t, errors.As(err, &fe))
			assert.Equal(t, label, fe.Label)
		})
	}
}

func TestStemDirection(t *testing.T) {
	cases := []struct {
		label string
		clef  model.Clef
		want  model.Stem
	}{
		{"B4", model.Treble, model.StemDown},
		{"A4", model.Treble, model.StemUp},
		{"C5", model.Treble, model.StemDown},
		{"C4", model.Treble, model.StemUp},
		{"B♭4", model.Treble, model.StemDown},
		{"A3", model.Bass, model.StemUp},
		{"B3", model.Bass, model.StemDown},
	}
	for _, c := range cases {
		t.Run(c.label+" "+string(c.clef), func(t *testing.T) {
			n, err := Normalize(note(c.label), c.clef)
			assert.NoError(t, err)
			assert.Equal(t, c.want, n.Stem)
		})
	}
}

func TestNormalizeIsDeterministic(t *testing.T) {
	for _, label := range []string{"C4", "F♯5", "Gb2", "B4"} {
		for _, clef := range []model.Clef{model.Treble, model.Bass} {
			first, err := Normalize(note(label), clef)
			assert.NoError(t, err)
			for i := 0; i < 3; i++ {
				again, err := Normalize(note(label), clef)
				assert.NoError(t, err)
				assert.Equal(t, first, again)
			}
		}
	}
}

func TestParseClef(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(model.Bass, ParseClef("bass"))
	assert.Equal(model.Treble, ParseClef("treble"))
	assert.Equal(model.Treble, ParseClef("alto"))
	assert.Equal(model.Treble, ParseClef(""))
}
