package db

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/jsphweid/pitchscore/model"
)

// Store keeps analysis results so a score can be laid out again later
// without re-running the analysis.
type Store interface {
	Put(ctx context.Context, data model.SheetMusicData) (string, error)
	Get(ctx context.Context, id string) (model.SheetMusicData, bool, error)
}

func newId() string {
	return uuid.New().String()
}

type MemoryStore struct {
	mu     sync.RWMutex
	scores map[string]model.SheetMusicData
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{scores: make(map[string]model.SheetMusicData)}
}

func (s *MemoryStore) Put(_ context.Context, data model.SheetMusicData) (string, error) {
	id := newId()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scores[id] = data
	return id, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (model.SheetMusicData, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.scores[id]
	return data, ok, nil
}
