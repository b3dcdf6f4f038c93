package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"mindmate/internal/domain"
	"mindmate/internal/insights"
)

const (
	moodRateAction = "mood_check"
	// moodInsightScan bounds how many recent check-ins feed the
	// insight rules.
	moodInsightScan = 30
)

// MoodService persists mood check-ins and derives insights for them.
type MoodService struct {
	store domain.Store
	log   zerolog.Logger
}

func NewMoodService(store domain.Store, log zerolog.Logger) *MoodService {
	return &MoodService{store: store, log: log}
}

type MoodSaveInput struct {
	UserID string
	Mood   string
	Notes  string
}

type MoodSaveResult struct {
	MoodCheckID string   `json:"mood_check_id"`
	Mood        string   `json:"mood"`
	Insights    []string `json:"insights"`
	Timestamp   string   `json:"timestamp"`
}

// Save validates the mood tag against the fixed vocabulary, persists
// the check-in, and returns the insight list built from the saved
// check-in and the user's recent history.
func (s *MoodService) Save(ctx context.Context, in MoodSaveInput) (*MoodSaveResult, error) {
	mood := strings.TrimSpace(in.Mood)
	if mood == "" {
		return nil, fmt.Errorf("%w: mood is required", domain.ErrInvalidInput)
	}
	if !domain.IsValidMood(mood) {
		return nil, fmt.Errorf("%w: invalid mood value", domain.ErrInvalidInput)
	}

	allowed, err := s.store.CheckRateLimit(ctx, in.UserID, moodRateAction)
	if err != nil {
		return nil, fmt.Errorf("check rate limit: %w", err)
	}
	if !allowed {
		return nil, domain.ErrRateLimited
	}

	id, err := s.store.SaveMoodCheck(ctx, &domain.MoodCheck{
		UserID: in.UserID,
		Mood:   mood,
		Notes:  strings.TrimSpace(in.Notes),
	})
	if err != nil {
		return nil, fmt.Errorf("save mood check: %w", err)
	}

	if err := s.store.RecordRateLimit(ctx, in.UserID, moodRateAction); err != nil {
		s.log.Warn().Err(err).Str("user_id", in.UserID).Msg("record rate limit failed")
	}

	recent, err := s.store.GetMoodChecks(ctx, in.UserID, moodInsightScan)
	if err != nil {
		return nil, fmt.Errorf("get mood checks: %w", err)
	}

	s.log.Info().Str("user_id", in.UserID).Str("mood", mood).Str("mood_check_id", id).Msg("mood check saved")

	return &MoodSaveResult{
		MoodCheckID: id,
		Mood:        mood,
		Insights:    insights.MoodInsights(mood, recent),
		Timestamp:   formatTimestamp(time.Now()),
	}, nil
}

// List returns the most recent check-ins newest-first.
func (s *MoodService) List(ctx context.Context, userID string, limit int) ([]MoodEntry, error) {
	if limit <= 0 {
		limit = moodInsightScan
	}
	checks, err := s.store.GetMoodChecks(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("get mood checks: %w", err)
	}
	return toMoodEntries(checks), nil
}
