package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"mindmate/internal/domain"
	"mindmate/internal/service"
)

func TestDashboardData(t *testing.T) {
	st := new(MockStore)
	svc := service.NewDashboardService(st)

	now := time.Now()
	allChats := []*domain.ChatMessage{
		{UserMessage: "a", AIResponse: "ra", Sentiment: "POSITIVE", CreatedAt: now.Add(-time.Hour)},
		{UserMessage: "b", AIResponse: "rb", Sentiment: "NEGATIVE", CreatedAt: now.AddDate(0, 0, -2)},
		{UserMessage: "c", AIResponse: "rc", Sentiment: "POSITIVE", CreatedAt: now.AddDate(0, 0, -10)},
		{UserMessage: "d", AIResponse: "rd", Sentiment: "neutral", CreatedAt: now.AddDate(0, 0, -40)},
	}
	recent := allChats[:2]
	checks := []*domain.MoodCheck{
		{Mood: "happy", CreatedAt: now.Add(-time.Hour)},
		{Mood: "sad", CreatedAt: now.AddDate(0, 0, -10)}, // outside the 7-day window
	}

	st.On("GetChatHistory", mock.Anything, "1", 1000).Return(allChats, nil)
	st.On("GetRecentChats", mock.Anything, "1", 5).Return(recent, nil)
	st.On("GetMoodChecks", mock.Anything, "1", 50).Return(checks, nil)

	data, err := svc.Data(context.Background(), "1")
	assert.NoError(t, err)

	assert.Equal(t, 4, data.Statistics.TotalChats)
	assert.Equal(t, 2, data.Statistics.WeeklyChats)
	assert.Equal(t, 3, data.Statistics.MonthlyChats)
	// 2 positive, 1 negative, the lowercase "neutral" label excluded:
	// (1+1-1)/3 rounded to two decimals.
	assert.Equal(t, 0.33, data.Statistics.AvgSentiment)
	assert.Equal(t, 0, data.Statistics.DaysSinceLastChat)

	assert.Len(t, data.RecentChats, 2)

	// Labels bucket verbatim within the trailing 30 days; the 40-day-old
	// record is out of range.
	assert.Equal(t, map[string]int{"POSITIVE": 2, "NEGATIVE": 1}, data.MoodData)

	assert.Len(t, data.MoodChecks, 1)
	assert.Equal(t, "happy", data.MoodChecks[0].Mood)
}

func TestDashboardDataEmpty(t *testing.T) {
	st := new(MockStore)
	svc := service.NewDashboardService(st)

	st.On("GetChatHistory", mock.Anything, "1", 1000).Return([]*domain.ChatMessage{}, nil)
	st.On("GetRecentChats", mock.Anything, "1", 5).Return([]*domain.ChatMessage{}, nil)
	st.On("GetMoodChecks", mock.Anything, "1", 50).Return([]*domain.MoodCheck{}, nil)

	data, err := svc.Data(context.Background(), "1")
	assert.NoError(t, err)
	assert.Equal(t, 0, data.Statistics.TotalChats)
	assert.Equal(t, 0.0, data.Statistics.AvgSentiment)
	assert.Equal(t, 0, data.Statistics.DaysSinceLastChat)
	assert.Empty(t, data.RecentChats)
	assert.Empty(t, data.MoodData)
	assert.Empty(t, data.MoodChecks)
}
