package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"mindmate/internal/service"
)

type sendChatRequest struct {
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
	Sender  string `json:"sender,omitempty"`
}

func handleSendChat(chatSvc *service.ChatService, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := CurrentUser(r)
		if user == nil {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
			return
		}

		var req sendChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
			return
		}

		result, err := chatSvc.Send(r.Context(), service.SendInput{
			UserID:   user.ID,
			Username: user.Username,
			Message:  req.Message,
			Action:   req.Action,
			Sender:   req.Sender,
		})
		if err != nil {
			writeError(w, log, err)
			return
		}

		if result.Fallback {
			// The body is still well-formed: the user always gets some
			// supportive response even when the AI service is down.
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{
				"reply":      result.Reply,
				"sentiment":  result.Sentiment,
				"confidence": result.Confidence,
				"error":      "Service temporarily unavailable",
			})
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"success":    true,
			"chat_id":    result.ChatID,
			"reply":      result.Reply,
			"sentiment":  result.Sentiment,
			"confidence": result.Confidence,
		})
	}
}

func handleChatHistory(chatSvc *service.ChatService, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := CurrentUser(r)
		if user == nil {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
			return
		}

		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		entries, err := chatSvc.History(r.Context(), user.ID, limit)
		if err != nil {
			writeError(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"chats":   entries,
		})
	}
}

func handleAIHealth(chatSvc *service.ChatService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if chatSvc.AIHealthy(r.Context()) {
			writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
			return
		}
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
	}
}
