package httpserver

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"mindmate/internal/service"
)

func handleDashboard(dashSvc *service.DashboardService, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := CurrentUser(r)
		if user == nil {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
			return
		}

		data, err := dashSvc.Data(r.Context(), user.ID)
		if err != nil {
			writeError(w, log, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"success":     true,
			"statistics":  data.Statistics,
			"recentChats": data.RecentChats,
			"moodData":    data.MoodData,
			"moodChecks":  data.MoodChecks,
			"timestamp":   time.Now().UTC().Format("2006-01-02 15:04:05"),
		})
	}
}
