package service

import (
	"context"
	"errors"

	"github.com/kosakata/vocab-services/internal/vocabsvc/models"
	"github.com/kosakata/vocab-services/internal/vocabsvc/store"
)

// ErrWordNotFound is returned when a word id has no row behind it.
var ErrWordNotFound = errors.New("service: word not found")

type WordService struct {
	store *store.WordStore
}

func NewWordService(store *store.WordStore) *WordService {
	return &WordService{store: store}
}

func (s *WordService) ListWords(ctx context.Context) ([]models.Word, error) {
	return s.store.ListWords(ctx)
}

func (s *WordService) GetByID(ctx context.Context, id int64) (*models.Word, error) {
	w, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, ErrWordNotFound
	}
	return w, nil
}

// AddWord seeds a vocabulary entry. Scheduling state starts at the column
// defaults; the word is due immediately.
func (s *WordService) AddWord(ctx context.Context, w models.Word) (*models.Word, error) {
	if w.PartOfSpeech == "" {
		w.PartOfSpeech = "noun"
	}
	if w.DifficultyScore == 0 {
		w.DifficultyScore = 1.0
	}
	id, err := s.store.InsertWord(ctx, w)
	if err != nil {
		return nil, err
	}
	return s.store.GetByID(ctx, id)
}
