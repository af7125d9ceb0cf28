package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/jsphweid/pitchscore/constants"
	"github.com/jsphweid/pitchscore/db"
	"github.com/jsphweid/pitchscore/file"
	"github.com/jsphweid/pitchscore/logger"
	"github.com/jsphweid/pitchscore/midi"
	"github.com/jsphweid/pitchscore/model"
	"github.com/jsphweid/pitchscore/pitch"
	"github.com/jsphweid/pitchscore/playback"
	"github.com/jsphweid/pitchscore/render"
	"github.com/jsphweid/pitchscore/score"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var (
	servePort  int
	serveTable string
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", constants.GetPort(), "port to listen on")
	serveCmd.Flags().StringVar(&serveTable, "table", constants.GetScoreTable(), "DynamoDB table, empty keeps scores in memory")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves score layouts over HTTP",
	Long:  `Serves score layouts over HTTP`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		store, err := newStore(serveTable, log)
		if err != nil {
			return err
		}
		addr := fmt.Sprintf(":%d", servePort)
		log.Infof("listening on %v", addr)
		return http.ListenAndServe(addr, NewHandler(store, log))
	},
}

func newStore(table string, log *logger.Logger) (db.Store, error) {
	if table == "" {
		log.Infof("keeping scores in memory")
		return db.NewMemoryStore(), nil
	}
	client, err := db.NewDynamoClient(constants.GetAwsRegion(), constants.GetDynamoEndpoint())
	if err != nil {
		return nil, err
	}
	log.Infof("keeping scores in DynamoDB table %v", table)
	return db.NewDynamoStore(client, table), nil
}

type server struct {
	store db.Store
	log   *logger.Logger
}

// NewHandler wires the routes behind CORS.
func NewHandler(store db.Store, log *logger.Logger) http.Handler {
	s := &server{store: store, log: log}

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/v1/scores", s.handleCreate).Methods("POST")
	router.HandleFunc("/v1/scores/{id}/layout", s.handleLayout).Methods("GET")
	router.HandleFunc("/v1/scores/{id}/active", s.handleActive).Methods("GET")
	router.HandleFunc("/v1/scores/{id}/midi", s.handleMidi).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins: constants.GetCorsOrigins(),
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})
	return c.Handler(router)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}

// buildError maps score construction failures to a status code.
func buildError(err error) int {
	var fe *pitch.FormatError
	if errors.As(err, &fe) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func parseWidth(r *http.Request) (float64, bool, error) {
	raw := r.URL.Query().Get("width")
	if raw == "" {
		return 0, false, nil
	}
	w, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		return 0, false, errors.Errorf("bad width %q", raw)
	}
	return w, true, nil
}

func layoutFor(sc *score.Score, width float64) *model.ScoreLayout {
	res := render.Render(sc.Measures, width, render.NewFixedToolkit())
	return &model.ScoreLayout{Grid: res.Grid, Notes: res.Notes}
}

// loadScore fetches and rebuilds a stored score, writing the error response
// itself when it can't.
func (s *server) loadScore(w http.ResponseWriter, r *http.Request) (*score.Score, bool) {
	id := mux.Vars(r)["id"]
	data, ok, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.log.Errorf("could not load score %v: %v", id, err)
		writeError(w, http.StatusInternalServerError, "could not load score")
		return nil, false
	}
	if !ok {
		writeError(w, http.StatusNotFound, "no such score")
		return nil, false
	}
	sc, err := score.Build(data)
	if err != nil {
		writeError(w, buildError(err), err.Error())
		return nil, false
	}
	return sc, true
}

func (s *server) handleCreate(w http.ResponseWriter, r *http.Request) {
	data, err := file.DecodeAnalysis(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	width, hasWidth, err := parseWidth(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sc, err := score.Build(data)
	if err != nil {
		s.log.Warnf("rejected score: %v", err)
		writeError(w, buildError(err), err.Error())
		return
	}

	id, err := s.store.Put(r.Context(), data)
	if err != nil {
		s.log.Errorf("could not store score: %v", err)
		writeError(w, http.StatusInternalServerError, "could not store score")
		return
	}
	s.log.Infof("stored score %v (%d notes)", id, len(sc.Notes))

	res := model.CreateScoreResponse{Id: id, Title: sc.Title}
	if hasWidth {
		res.Layout = layoutFor(sc, width)
	}
	writeJSON(w, http.StatusCreated, res)
}

func (s *server) handleLayout(w http.ResponseWriter, r *http.Request) {
	width, ok, err := parseWidth(r)
	if err != nil || !ok {
		writeError(w, http.StatusBadRequest, "width is required")
		return
	}
	sc, ok := s.loadScore(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, layoutFor(sc, width))
}

// handleActive answers "which note is playing at t" for clients that don't
// run their own controller. prev is the index the client shows now.
func (s *server) handleActive(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	t, err := strconv.ParseFloat(q.Get("t"), 64)
	if err != nil || math.IsNaN(t) || math.IsInf(t, 0) {
		writeError(w, http.StatusBadRequest, "t is required")
		return
	}
	prev := playback.None
	if raw := q.Get("prev"); raw != "" {
		if prev, err = strconv.Atoi(raw); err != nil || prev < playback.None {
			writeError(w, http.StatusBadRequest, "bad prev")
			return
		}
	}
	sc, ok := s.loadScore(w, r)
	if !ok {
		return
	}

	notes := layoutFor(sc, constants.MediumBreakpoint).Notes
	if prev >= len(notes) {
		prev = playback.None
	}
	res := model.ActiveNoteResponse{Time: t}
	if active := playback.ActiveIndex(notes, t, prev); active != playback.None {
		res.ActiveIndex = &active
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *server) handleMidi(w http.ResponseWriter, r *http.Request) {
	sc, ok := s.loadScore(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := midi.Export(sc, &buf); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	w.Header().Set("Content-Type", "audio/midi")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", sc.Title+".mid"))
	w.Write(buf.Bytes())
}
