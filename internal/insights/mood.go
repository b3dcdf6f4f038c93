package insights

import "mindmate/internal/domain"

var positiveMoods = map[string]bool{
	"happy":   true,
	"excited": true,
	"calm":    true,
}

// moodReflections is the fixed per-mood reflection sentence appended to
// every check-in. "neutral" deliberately has no entry.
var moodReflections = map[string]string{
	"sad":      "It's okay to feel sad sometimes. Consider reaching out to a friend or family member.",
	"anxious":  "Anxiety can be overwhelming. Try some deep breathing exercises or meditation.",
	"angry":    "Anger is a valid emotion. Consider what might be causing it and how to address it constructively.",
	"happy":    "Great to see you're feeling happy! What's contributing to this positive mood?",
	"excited":  "Excitement is wonderful! Channel this energy into something productive.",
	"calm":     "Feeling calm is a great state to be in. Enjoy this peaceful moment.",
	"confused": "Confusion is normal. Take time to process your thoughts and feelings.",
}

// moodSuggestions is the static per-mood action lookup. No
// randomization, no personalization beyond the mood tag.
var moodSuggestions = map[string][]string{
	"sad": {
		"Consider journaling about your feelings",
		"Listen to uplifting music",
		"Take a walk in nature",
	},
	"anxious": {
		"Try the 4-7-8 breathing technique",
		"Practice mindfulness meditation",
		"Write down your worries",
	},
	"angry": {
		"Take deep breaths and count to 10",
		"Go for a run or do physical exercise",
		"Write a letter you don't send",
	},
	"happy": {
		"Share your joy with others",
		"Do something creative",
		"Practice gratitude",
	},
	"excited": {
		"Channel your energy into a project",
		"Share your excitement with friends",
		"Plan something fun",
	},
	"calm": {
		"Enjoy this peaceful moment",
		"Practice meditation or yoga",
		"Read a good book",
	},
	"confused": {
		"Take time to reflect",
		"Talk to someone you trust",
		"Write down your thoughts",
	},
	"neutral": {
		"Check in with yourself",
		"Do something you enjoy",
		"Connect with others",
	},
}

// Messages emitted by the trend rule.
const (
	trendPositiveMessage = "You've been feeling more positive lately!"
	trendConcernMessage  = "You might want to consider talking to someone about how you're feeling."
)

// MoodInsights builds the insight list returned after saving a mood
// check. recentChecks is the user's most recent check-ins newest-first,
// including the one just saved.
//
// Trend rule: with at least 3 fetched check-ins, classify the newest 7
// mood tags; 4 or more positive tags produce an encouraging message,
// zero positive tags a gentle concern message. Then the fixed
// mood-specific reflection and suggested actions are appended.
func MoodInsights(currentMood string, recentChecks []*domain.MoodCheck) []string {
	var insights []string

	if len(recentChecks) >= 3 {
		n := len(recentChecks)
		if n > 7 {
			n = 7
		}
		positiveCount := 0
		for _, c := range recentChecks[:n] {
			if positiveMoods[c.Mood] {
				positiveCount++
			}
		}
		if positiveCount >= 4 {
			insights = append(insights, trendPositiveMessage)
		} else if positiveCount == 0 {
			insights = append(insights, trendConcernMessage)
		}
	}

	if reflection, ok := moodReflections[currentMood]; ok {
		insights = append(insights, reflection)
	}
	insights = append(insights, moodSuggestions[currentMood]...)

	return insights
}
