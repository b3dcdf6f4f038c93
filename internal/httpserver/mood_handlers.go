package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"mindmate/internal/service"
)

type saveMoodCheckRequest struct {
	Mood  string `json:"mood"`
	Notes string `json:"notes,omitempty"`
}

func handleSaveMoodCheck(moodSvc *service.MoodService, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := CurrentUser(r)
		if user == nil {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
			return
		}

		var req saveMoodCheckRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
			return
		}

		result, err := moodSvc.Save(r.Context(), service.MoodSaveInput{
			UserID: user.ID,
			Mood:   req.Mood,
			Notes:  req.Notes,
		})
		if err != nil {
			writeError(w, log, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"success":       true,
			"mood_check_id": result.MoodCheckID,
			"mood":          result.Mood,
			"insights":      result.Insights,
			"timestamp":     result.Timestamp,
		})
	}
}

func handleListMoodChecks(moodSvc *service.MoodService, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := CurrentUser(r)
		if user == nil {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
			return
		}

		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		entries, err := moodSvc.List(r.Context(), user.ID, limit)
		if err != nil {
			writeError(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"success":     true,
			"mood_checks": entries,
		})
	}
}
