package insights_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mindmate/internal/domain"
	"mindmate/internal/insights"
)

func checksFor(moods ...string) []*domain.MoodCheck {
	out := make([]*domain.MoodCheck, 0, len(moods))
	for _, m := range moods {
		out = append(out, &domain.MoodCheck{Mood: m})
	}
	return out
}

func TestMoodInsights(t *testing.T) {
	t.Run("TooFewChecksSkipsTrend", func(t *testing.T) {
		got := insights.MoodInsights("sad", checksFor("sad", "sad"))
		// Reflection plus three suggestions, no trend message.
		assert.Len(t, got, 4)
		assert.Contains(t, got[0], "It's okay to feel sad sometimes")
	})

	t.Run("ConcernWhenNoPositive", func(t *testing.T) {
		got := insights.MoodInsights("sad", checksFor("sad", "anxious", "angry"))
		assert.Equal(t, "You might want to consider talking to someone about how you're feeling.", got[0])
		assert.Len(t, got, 5)
	})

	t.Run("PositiveTrend", func(t *testing.T) {
		got := insights.MoodInsights("happy", checksFor("happy", "calm", "excited", "happy", "sad"))
		assert.Equal(t, "You've been feeling more positive lately!", got[0])
	})

	t.Run("MixedTrendHasNoMessage", func(t *testing.T) {
		got := insights.MoodInsights("calm", checksFor("happy", "sad", "anxious"))
		// One positive mood: neither rule fires.
		assert.Contains(t, got[0], "Feeling calm is a great state")
		assert.Len(t, got, 4)
	})

	t.Run("OnlyNewestSevenClassified", func(t *testing.T) {
		// Four positives pushed past position seven must not count.
		moods := []string{"sad", "sad", "sad", "sad", "sad", "sad", "sad",
			"happy", "happy", "happy", "happy"}
		got := insights.MoodInsights("sad", checksFor(moods...))
		assert.Equal(t, "You might want to consider talking to someone about how you're feeling.", got[0])
	})

	t.Run("NeutralMoodSuggestionsOnly", func(t *testing.T) {
		got := insights.MoodInsights("neutral", nil)
		assert.Equal(t, []string{
			"Check in with yourself",
			"Do something you enjoy",
			"Connect with others",
		}, got)
	})
}
