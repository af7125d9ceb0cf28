//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsphweid/pitchscore/cmd"
	"github.com/jsphweid/pitchscore/db"
	"github.com/jsphweid/pitchscore/logger"
	"github.com/jsphweid/pitchscore/model"
	"github.com/stretchr/testify/assert"
)

func createReqBody(clef string, labels ...string) io.Reader {
	data := model.SheetMusicData{Clef: clef, OriginalFilename: "scale.mp3"}
	for i, l := range labels {
		data.Notes = append(data.Notes, model.ApiNote{
			Note:      l,
			Duration:  1,
			StartTime: float64(i),
			EndTime:   float64(i + 1),
		})
	}
	b, err := json.Marshal(data)
	if err != nil {
		panic(err.Error())
	}
	return bytes.NewReader(b)
}

func do(t *testing.T, h http.Handler, method string, url string, body io.Reader) (*http.Response, []byte) {
	req := httptest.NewRequest(method, url, body)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	resp := w.Result()
	respBody, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	return resp, respBody
}

func create(t *testing.T, h http.Handler, labels ...string) model.CreateScoreResponse {
	resp, body := do(t, h, http.MethodPost, "/v1/scores?width=800", createReqBody("treble", labels...))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var created model.CreateScoreResponse
	assert.NoError(t, json.Unmarshal(body, &created))
	return created
}

func TestCreateScoreWithLayout(t *testing.T) {
	h := cmd.NewHandler(db.NewMemoryStore(), logger.Discard())
	created := create(t, h, "C4", "E4", "G4", "C5", "E5")

	assert := assert.New(t)
	assert.NotEmpty(created.Id)
	assert.Equal("scale", created.Title)
	assert.NotNil(created.Layout)
	assert.Equal(2, created.Layout.Grid.MeasuresPerRow)
	assert.Equal(1, created.Layout.Grid.Rows)
	assert.Len(created.Layout.Grid.Cells, 2)
	assert.Len(created.Layout.Notes, 5)
	assert.Equal(4, created.Layout.Notes[4].Index)
	assert.Equal(1, created.Layout.Notes[4].MeasureIndex)
}

func TestRelayoutStoredScore(t *testing.T) {
	h := cmd.NewHandler(db.NewMemoryStore(), logger.Discard())
	created := create(t, h, "C4", "D4", "E4", "F4", "G4", "A4", "B4", "C5", "D5")

	resp, body := do(t, h, http.MethodGet, "/v1/scores/"+created.Id+"/layout?width=320", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var layout model.ScoreLayout
	assert.NoError(t, json.Unmarshal(body, &layout))
	assert.Equal(t, 1, layout.Grid.MeasuresPerRow)
	assert.Equal(t, 3, layout.Grid.Rows)
	assert.Equal(t, model.EndBarline, layout.Grid.Cells[2].Barline)

	resp, _ = do(t, h, http.MethodGet, "/v1/scores/"+created.Id+"/layout", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestActiveNote(t *testing.T) {
	h := cmd.NewHandler(db.NewMemoryStore(), logger.Discard())
	created := create(t, h, "C4", "E4", "G4")
	base := "/v1/scores/" + created.Id + "/active"

	cases := []struct {
		query string
		want  *int
	}{
		{"?t=1.5", intPtr(1)},
		{"?t=0.9", intPtr(0)},
		{"?t=-1", nil},
		{"?t=-1&prev=2", intPtr(2)},
	}
	for _, c := range cases {
		t.Run(c.query, func(t *testing.T) {
			resp, body := do(t, h, http.MethodGet, base+c.query, nil)
			assert.Equal(t, http.StatusOK, resp.StatusCode)

			var active model.ActiveNoteResponse
			assert.NoError(t, json.Unmarshal(body, &active))
			assert.Equal(t, c.want, active.ActiveIndex)
		})
	}
}

func intPtr(i int) *int {
	return &i
}

func TestBadPitchIsRejected(t *testing.T) {
	h := cmd.NewHandler(db.NewMemoryStore(), logger.Discard())
	resp, body := do(t, h, http.MethodPost, "/v1/scores", createReqBody("treble", "C4", "X9"))

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	var errResp model.ErrorResponse
	assert.NoError(t, json.Unmarshal(body, &errResp))
	assert.Contains(t, errResp.Error, "X9")
}

func TestMalformedBody(t *testing.T) {
	h := cmd.NewHandler(db.NewMemoryStore(), logger.Discard())
	resp, _ := do(t, h, http.MethodPost, "/v1/scores", bytes.NewReader([]byte("{")))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUnknownScore(t *testing.T) {
	h := cmd.NewHandler(db.NewMemoryStore(), logger.Discard())
	resp, _ := do(t, h, http.MethodGet, "/v1/scores/nope/layout?width=800", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMidiDownload(t *testing.T) {
	h := cmd.NewHandler(db.NewMemoryStore(), logger.Discard())
	created := create(t, h, "C4", "E4")

	resp, body := do(t, h, http.MethodGet, "/v1/scores/"+created.Id+"/midi", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "audio/midi", resp.Header.Get("Content-Type"))
	assert.Equal(t, "MThd", string(body[:4]))
}

func TestCors(t *testing.T) {
	h := cmd.NewHandler(db.NewMemoryStore(), logger.Discard())
	req := httptest.NewRequest(http.MethodGet, "/v1/scores/nope/layout?width=1", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, "*", w.Result().Header.Get("Access-Control-Allow-Origin"))
}
