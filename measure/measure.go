package measure

import (
	"github.com/jsphweid/pitchscore/model"
)

var restsLargestFirst = []model.RestKind{
	model.WholeRest,
	model.HalfRest,
	model.QuarterRest,
	model.EighthRest,
	model.SixteenthRest,
}

// FillWithRests returns the fewest rests adding up to beats, largest first.
// Anything left below a sixteenth still gets a sixteenth so the loop ends.
func FillWithRests(beats float64) []model.Slot {
	var rests []model.Slot
	remaining := beats
	for remaining > 0 {
		kind := model.SixteenthRest
		for _, k := range restsLargestFirst {
			if remaining >= k.Beats() {
				kind = k
				break
			}
		}
		rests = append(rests, model.Slot{Rest: kind})
		remaining -= kind.Beats()
	}
	return rests
}

// Segment groups notes into measures of beatsPerMeasure beats. Every note is
// one beat. A short last measure is padded with rests.
func Segment(notes []model.RenderableNote, beatsPerMeasure int) []model.Measure {
	var measures []model.Measure
	if beatsPerMeasure <= 0 {
		return measures
	}
	capacity := float64(beatsPerMeasure)

	var current model.Measure
	var beats float64
	for i := range notes {
		n := notes[i]
		slot := model.Slot{Note: &n}

		if beats+slot.Beats() > capacity && len(current) > 0 {
			current = append(current, FillWithRests(capacity-beats)...)
			measures = append(measures, current)
			current = nil
			beats = 0
		}

		current = append(current, slot)
		beats += slot.Beats()

		if beats == capacity {
			measures = append(measures, current)
			current = nil
			beats = 0
		}
	}

	if len(current) > 0 {
		current = append(current, FillWithRests(capacity-beats)...)
		measures = append(measures, current)
	}

	return measures
}
