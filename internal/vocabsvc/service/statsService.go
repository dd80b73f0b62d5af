package service

import (
	"context"
	"time"

	"github.com/kosakata/vocab-services/internal/vocabsvc/models"
	"github.com/kosakata/vocab-services/internal/vocabsvc/store"
)

type StatsService struct {
	wordStore    *store.WordStore
	reviewStore  *store.ReviewStore
	sessionStore *store.SessionStore
}

func NewStatsService(wordStore *store.WordStore, reviewStore *store.ReviewStore,
	sessionStore *store.SessionStore) *StatsService {
	return &StatsService{
		wordStore:    wordStore,
		reviewStore:  reviewStore,
		sessionStore: sessionStore,
	}
}

// Stats is the learner dashboard block.
type Stats struct {
	TotalWords    int     `json:"total_words"`
	MasteredWords int     `json:"mastered_words"`
	AvgEase       float64 `json:"avg_ease"`
	DueReviews    int     `json:"due_reviews"`
	TodayReviews  int     `json:"today_reviews"`
}

func (s *StatsService) GetStats(ctx context.Context) (*Stats, error) {
	wordStats, err := s.wordStore.GetStats(ctx)
	if err != nil {
		return nil, err
	}
	due, err := s.wordStore.CountDue(ctx, time.Now())
	if err != nil {
		return nil, err
	}
	today, err := s.reviewStore.CountReviewsToday(ctx)
	if err != nil {
		return nil, err
	}
	return &Stats{
		TotalWords:    wordStats.TotalWords,
		MasteredWords: wordStats.MasteredWords,
		AvgEase:       wordStats.AvgEase,
		DueReviews:    due,
		TodayReviews:  today,
	}, nil
}

func (s *StatsService) CountDue(ctx context.Context) (int, error) {
	return s.wordStore.CountDue(ctx, time.Now())
}

// AdminStats is the aggregate view for the admin dashboard.
type AdminStats struct {
	Overview       *store.SessionOverview   `json:"overview"`
	RecentSessions []models.LearningSession `json:"recent_sessions"`
}

func (s *StatsService) GetAdminStats(ctx context.Context) (*AdminStats, error) {
	overview, err := s.sessionStore.GetOverview(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.sessionStore.GetRecentSessions(ctx, 10)
	if err != nil {
		return nil, err
	}
	return &AdminStats{Overview: overview, RecentSessions: recent}, nil
}

func (s *StatsService) GetExportRows(ctx context.Context) ([]store.ExportRow, error) {
	return s.sessionStore.GetExportRows(ctx)
}
