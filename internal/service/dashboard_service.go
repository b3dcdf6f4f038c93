package service

import (
	"context"
	"fmt"
	"time"

	"mindmate/internal/domain"
	"mindmate/internal/insights"
)

// Scan bounds for the dashboard aggregations. The statistics scan is a
// large bounded page approximating "all records", not an unbounded
// table scan.
const (
	statsScanLimit        = 1000
	distributionScanLimit = 100
	recentChatsLimit      = 5
	moodCheckScanLimit    = 50
	moodCheckWindowDays   = 7
)

// DashboardData is the bundle returned by the dashboard read.
type DashboardData struct {
	Statistics  insights.Statistics `json:"statistics"`
	RecentChats []ChatEntry         `json:"recentChats"`
	MoodData    map[string]int      `json:"moodData"`
	MoodChecks  []MoodEntry         `json:"moodChecks"`
}

// DashboardService computes per-user summary statistics and the
// sentiment distribution by scanning that user's own records.
type DashboardService struct {
	store domain.Store
}

func NewDashboardService(store domain.Store) *DashboardService {
	return &DashboardService{store: store}
}

func (s *DashboardService) Data(ctx context.Context, userID string) (*DashboardData, error) {
	now := time.Now()

	allChats, err := s.store.GetChatHistory(ctx, userID, statsScanLimit)
	if err != nil {
		return nil, fmt.Errorf("get chats for statistics: %w", err)
	}
	stats := insights.ComputeStatistics(allChats, now)

	recent, err := s.store.GetRecentChats(ctx, userID, recentChatsLimit)
	if err != nil {
		return nil, fmt.Errorf("get recent chats: %w", err)
	}

	distChats := allChats
	if len(distChats) > distributionScanLimit {
		distChats = distChats[:distributionScanLimit]
	}
	moodData := insights.SentimentDistribution(distChats, now)

	checks, err := s.store.GetMoodChecks(ctx, userID, moodCheckScanLimit)
	if err != nil {
		return nil, fmt.Errorf("get mood checks: %w", err)
	}
	windowed := insights.FilterMoodChecksSince(checks, moodCheckWindowDays, now)

	return &DashboardData{
		Statistics:  stats,
		RecentChats: toChatEntries(recent),
		MoodData:    moodData,
		MoodChecks:  toMoodEntries(windowed),
	}, nil
}
