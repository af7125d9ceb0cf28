package score

import (
	"regexp"

	"github.com/jsphweid/pitchscore/constants"
	"github.com/jsphweid/pitchscore/measure"
	"github.com/jsphweid/pitchscore/model"
	"github.com/jsphweid/pitchscore/pitch"
	"github.com/pkg/errors"
)

var audioExtension = regexp.MustCompile(`(?i)\.(mp3|wav|m4a)$`)

const untitled = "Untitled"

// Score is everything derived from one analysis result. It is never
// modified after Build.
type Score struct {
	Title    string
	Clef     model.Clef
	Notes    []model.RenderableNote
	Measures []model.Measure
}

func Title(data model.SheetMusicData) string {
	if data.OriginalFilename == "" {
		return untitled
	}
	return audioExtension.ReplaceAllString(data.OriginalFilename, "")
}

// Build is all-or-nothing: the first bad pitch label fails the whole score.
func Build(data model.SheetMusicData) (*Score, error) {
	return BuildWithMeter(data, constants.BeatsPerMeasure)
}

func BuildWithMeter(data model.SheetMusicData, beatsPerMeasure int) (*Score, error) {
	clef := pitch.ParseClef(data.Clef)

	notes := make([]model.RenderableNote, 0, len(data.Notes))
	for i, event := range data.Notes {
		n, err := pitch.Normalize(event, clef)
		if err != nil {
			return nil, errors.Wrapf(err, "note %d", i)
		}
		n.Index = i
		notes = append(notes, n)
	}

	return &Score{
		Title:    Title(data),
		Clef:     clef,
		Notes:    notes,
		Measures: measure.Segment(notes, beatsPerMeasure),
	}, nil
}

// MeasureOf returns which measure holds note i, or -1.
func (s *Score) MeasureOf(i int) int {
	for m, slots := range s.Measures {
		for _, slot := range slots {
			if !slot.IsRest() && slot.Note.Index == i {
				return m
			}
		}
	}
	return -1
}
