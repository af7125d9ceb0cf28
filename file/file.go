package file

import (
	"encoding/json"
	"io"
	"os"

	"github.com/jsphweid/pitchscore/model"
	"github.com/pkg/errors"
)

func DecodeAnalysis(r io.Reader) (model.SheetMusicData, error) {
	var data model.SheetMusicData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return data, errors.Wrap(err, "could not decode analysis result")
	}
	return data, nil
}

// ReadAnalysis loads an analysis-service response saved to disk.
func ReadAnalysis(path string) (model.SheetMusicData, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.SheetMusicData{}, errors.Wrap(err, "could not open analysis file")
	}
	defer f.Close()
	return DecodeAnalysis(f)
}
