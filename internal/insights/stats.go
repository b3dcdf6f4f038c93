// Package insights holds the backend-independent aggregation math used
// by the dashboard and the mood check-in flow. It operates on the
// normalized record shapes; fetching is the drivers' job.
package insights

import (
	"math"
	"strings"
	"time"

	"mindmate/internal/domain"
)

// Statistics is the dashboard summary bundle for one user.
type Statistics struct {
	TotalChats        int     `json:"total_chats"`
	WeeklyChats       int     `json:"weekly_chats"`
	MonthlyChats      int     `json:"monthly_chats"`
	AvgSentiment      float64 `json:"avg_sentiment"`
	DaysSinceLastChat int     `json:"days_since_last_chat"`
}

// ComputeStatistics scans the fetched chat records once.
//
// Sentiment scoring: POSITIVE counts +1, NEGATIVE counts -1, matched
// case-insensitively. Any other label, and records without a label, are
// excluded from both the sum and the divisor.
func ComputeStatistics(chats []*domain.ChatMessage, now time.Time) Statistics {
	oneWeekAgo := now.AddDate(0, 0, -7)
	oneMonthAgo := now.AddDate(0, 0, -30)

	var stats Statistics
	stats.TotalChats = len(chats)

	sentimentSum := 0
	sentimentCount := 0
	var lastChat time.Time

	for _, chat := range chats {
		if !chat.CreatedAt.Before(oneWeekAgo) {
			stats.WeeklyChats++
		}
		if !chat.CreatedAt.Before(oneMonthAgo) {
			stats.MonthlyChats++
		}

		switch strings.ToUpper(chat.Sentiment) {
		case "POSITIVE":
			sentimentSum++
			sentimentCount++
		case "NEGATIVE":
			sentimentSum--
			sentimentCount++
		}

		if chat.CreatedAt.After(lastChat) {
			lastChat = chat.CreatedAt
		}
	}

	if sentimentCount > 0 {
		avg := float64(sentimentSum) / float64(sentimentCount)
		stats.AvgSentiment = math.Round(avg*100) / 100
	}
	if !lastChat.IsZero() {
		days := int(math.Floor(now.Sub(lastChat).Hours() / 24))
		if days > 0 {
			stats.DaysSinceLastChat = days
		}
	}
	return stats
}

// SentimentDistribution counts occurrences per sentiment label among
// chats created within the last 30 days. Labels are bucketed verbatim,
// case-sensitively: "POSITIVE" and "Positive" are distinct keys.
func SentimentDistribution(chats []*domain.ChatMessage, now time.Time) map[string]int {
	thirtyDaysAgo := now.AddDate(0, 0, -30)
	dist := map[string]int{}
	for _, chat := range chats {
		if chat.CreatedAt.Before(thirtyDaysAgo) || chat.Sentiment == "" {
			continue
		}
		dist[chat.Sentiment]++
	}
	return dist
}

// FilterMoodChecksSince keeps check-ins created within the trailing
// number of days, preserving input order.
func FilterMoodChecksSince(checks []*domain.MoodCheck, days int, now time.Time) []*domain.MoodCheck {
	cutoff := now.AddDate(0, 0, -days)
	filtered := make([]*domain.MoodCheck, 0, len(checks))
	for _, c := range checks {
		if !c.CreatedAt.Before(cutoff) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
