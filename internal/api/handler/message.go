// internal/api/handler/message.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"msgboard/internal/domain"
	"msgboard/internal/service"
	"msgboard/internal/util"
)

var messageFilterFields = []string{"content", "userId"}

// MessageHandler handles HTTP requests for the message resource.
type MessageHandler struct {
	service service.MessageService
	logger  *slog.Logger
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(svc service.MessageService, logger *slog.Logger) *MessageHandler {
	return &MessageHandler{
		service: svc,
		logger:  logger,
	}
}

// List handles GET /messages. content matches as a case-insensitive
// substring; userId matches exactly and must be an integer.
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if err := checkFilters(query, messageFilterFields...); err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	filter := domain.MessageFilter{Content: query.Get("content")}
	if raw := query.Get("userId"); raw != "" {
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondWithError(h.logger, w, util.NewBadRequest("Invalid filter: userId must be an integer"))
			return
		}
		filter.UserID = &userID
	}

	messages, err := h.service.List(r.Context(), filter)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, map[string]interface{}{"data": messages})
}

// createMessageRequest is the body of POST /messages.
type createMessageRequest struct {
	UserID  int64  `json:"userId"`
	Content string `json:"content"`
}

// Create handles POST /messages. Both userId and content are required, and
// userId must reference an existing user.
func (h *MessageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.NewBadRequest("Invalid request body"))
		return
	}

	if req.UserID == 0 || req.Content == "" {
		respondWithError(h.logger, w, util.NewBadRequest("userId and content are required"))
		return
	}

	message, err := h.service.Create(r.Context(), domain.CreateMessageParams{
		UserID:  req.UserID,
		Content: req.Content,
	})
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusCreated, map[string]interface{}{"data": message})
}

// Update handles PATCH /messages/{messageID}. Only the content field may be
// updated; any other key fails the request.
func (h *MessageHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "messageID", "message")
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	var body map[string]*string
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(h.logger, w, util.NewBadRequest("Invalid request body"))
		return
	}
	if err := checkFields(body, "content"); err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	message, err := h.service.UpdateContent(r.Context(), id, body["content"])
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, map[string]interface{}{"data": message})
}

// Delete handles DELETE /messages/{messageID}.
func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "messageID", "message")
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	message, err := h.service.Delete(r.Context(), id)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, map[string]interface{}{"data": message})
}
