package service

import (
	"context"

	"github.com/kosakata/vocab-services/internal/vocabsvc/models"
	"github.com/kosakata/vocab-services/internal/vocabsvc/store"
)

type UserService struct {
	store *store.UserStore
}

func NewUserService(store *store.UserStore) *UserService {
	return &UserService{store: store}
}

// Login resolves an anonymous class code to a learner, creating one on
// first sight.
func (s *UserService) Login(ctx context.Context, anonCode, className string) (*models.User, error) {
	return s.store.GetOrCreateByAnonCode(ctx, anonCode, className)
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.store.GetByID(ctx, id)
}
