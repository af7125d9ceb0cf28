package model

type CreateScoreResponse struct {
	Id     string       `json:"id"`
	Title  string       `json:"title"`
	Layout *ScoreLayout `json:"layout,omitempty"`
}

type ScoreLayout struct {
	Grid  LayoutGrid  `json:"grid"`
	Notes []NoteGlyph `json:"notes"`
}

type ActiveNoteResponse struct {
	Time        float64 `json:"time"`
	ActiveIndex *int    `json:"active_index"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
