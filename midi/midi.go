package midi

import (
	"bytes"
	"io"
	"os"

	"github.com/jsphweid/pitchscore/constants"
	"github.com/jsphweid/pitchscore/model"
	"github.com/jsphweid/pitchscore/score"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	TicksPerQuarter = 480
	Tempo           = 120
	velocity        = 100
)

var semitones = map[byte]int{'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11}

// Key is the MIDI key number of the note as displayed, C4 = 60.
func Key(n model.RenderableNote) (uint8, error) {
	key := (n.Octave+1)*12 + semitones[n.Letter]
	switch n.Accidental {
	case model.Sharp:
		key++
	case model.Flat:
		key--
	}
	if key < 0 || key > 127 {
		return 0, errors.Errorf("%v is outside the MIDI key range", n)
	}
	return uint8(key), nil
}

// Build turns the score into a one track SMF: every note a quarter, rests as gaps.
func Build(sc *score.Score) (*smf.SMF, error) {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(TicksPerQuarter)

	var track smf.Track
	track.Add(0, smf.MetaMeter(constants.BeatsPerMeasure, 4))
	track.Add(0, smf.MetaTempo(Tempo))

	var delta uint32
	for _, m := range sc.Measures {
		for _, slot := range m {
			ticks := uint32(slot.Beats() * TicksPerQuarter)
			if slot.IsRest() {
				delta += ticks
				continue
			}
			key, err := Key(*slot.Note)
			if err != nil {
				return nil, err
			}
			track.Add(delta, midi.NoteOn(0, key, velocity))
			track.Add(ticks, midi.NoteOff(0, key))
			delta = 0
		}
	}
	track.Close(delta)

	if err := s.Add(track); err != nil {
		return nil, errors.Wrap(err, "could not add track")
	}
	return s, nil
}

func Export(sc *score.Score, w io.Writer) error {
	s, err := Build(sc)
	if err != nil {
		return err
	}
	_, err = s.WriteTo(w)
	return errors.Wrap(err, "could not write midi")
}

func ExportFile(sc *score.Score, path string) error {
	var buf bytes.Buffer
	if err := Export(sc, &buf); err != nil {
		return err
	}
	return errors.Wrap(os.WriteFile(path, buf.Bytes(), 0644), "could not write midi file")
}

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrap(err, "error reading midi file")
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return nil, errors.Wrap(err, "error parsing midi file")
	}
	return res, nil
}
