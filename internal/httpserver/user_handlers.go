package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"mindmate/internal/domain"
	"mindmate/internal/service"
)

type updateProfileRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

func handleGetProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := CurrentUser(r)
		if user == nil {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}

func handleUpdateProfile(userSvc *service.UserService, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := CurrentUser(r)
		if user == nil {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
			return
		}

		var req updateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
			return
		}

		updated, err := userSvc.UpdateProfile(r.Context(), user.ID, domain.UserUpdate{
			Username: req.Username,
			Email:    req.Email,
		})
		if err != nil {
			writeError(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}
}
