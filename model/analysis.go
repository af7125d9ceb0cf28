package model

import (
	"encoding/json"
	"math"
	"strconv"
)

// ApiNote is a single detected pitch event as returned by the analysis service.
// Duration is carried through but never used for layout.
type ApiNote struct {
	Note      string  `json:"note"`
	Duration  float64 `json:"duration"`
	StartTime float64 `json:"start_time"`
	EndTime   float64 `json:"end_time"`
}

type rawApiNote struct {
	Note      string          `json:"note"`
	Duration  json.RawMessage `json:"duration"`
	StartTime json.RawMessage `json:"start_time"`
	EndTime   json.RawMessage `json:"end_time"`
}

// parseTime accepts numbers and numeric strings. Anything else is NaN.
func parseTime(raw json.RawMessage) float64 {
	if len(raw) == 0 || string(raw) == "null" {
		return math.NaN()
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return math.NaN()
}

// UnmarshalJSON never fails on bad timing values, those notes just never
// light up during playback.
func (n *ApiNote) UnmarshalJSON(data []byte) error {
	var raw rawApiNote
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	n.Note = raw.Note
	n.Duration = parseTime(raw.Duration)
	if math.IsNaN(n.Duration) {
		n.Duration = 0
	}
	n.StartTime = parseTime(raw.StartTime)
	n.EndTime = parseTime(raw.EndTime)
	return nil
}

// MarshalJSON writes missing times as null.
func (n ApiNote) MarshalJSON() ([]byte, error) {
	out := struct {
		Note      string   `json:"note"`
		Duration  float64  `json:"duration"`
		StartTime *float64 `json:"start_time"`
		EndTime   *float64 `json:"end_time"`
	}{Note: n.Note, Duration: n.Duration}
	if ValidTime(n.StartTime) {
		out.StartTime = &n.StartTime
	}
	if ValidTime(n.EndTime) {
		out.EndTime = &n.EndTime
	}
	return json.Marshal(out)
}

func ValidTime(t float64) bool {
	return !math.IsNaN(t) && !math.IsInf(t, 0)
}

type SheetMusicData struct {
	Clef             string    `json:"clef"`
	Notes            []ApiNote `json:"notes"`
	FileUrl          string    `json:"file_url,omitempty"`
	OriginalFilename string    `json:"original_filename,omitempty"`
}

type Clef string

const (
	Treble Clef = "treble"
	Bass   Clef = "bass"
)
