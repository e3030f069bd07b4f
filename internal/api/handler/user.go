// internal/api/handler/user.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"msgboard/internal/domain"
	"msgboard/internal/service"
	"msgboard/internal/util"
)

// Allow-lists for the user resource. Listing never filters on password.
var (
	userFilterFields = []string{"userName", "firstName", "familyName", "address"}
	userUpdateFields = []string{"userName", "password", "firstName", "familyName", "address"}
)

// UserHandler handles HTTP requests for the user resource.
type UserHandler struct {
	service service.UserService
	logger  *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		service: svc,
		logger:  logger,
	}
}

// List handles GET /users. Optional query filters narrow the result; an
// unknown filter key fails before the store is touched.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if err := checkFilters(query, userFilterFields...); err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	filter := domain.UserFilter{
		UserName:   query.Get("userName"),
		FirstName:  query.Get("firstName"),
		FamilyName: query.Get("familyName"),
		Address:    query.Get("address"),
	}

	users, err := h.service.List(r.Context(), filter)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, map[string]interface{}{"data": users})
}

// GetByID handles GET /users/{userID}. The result is an array with zero or
// one element.
func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "userID", "user")
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	users, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, map[string]interface{}{"data": users})
}

// createUserRequest is the body of POST /users.
type createUserRequest struct {
	UserName   string  `json:"userName"`
	Password   string  `json:"password"`
	FirstName  *string `json:"firstName"`
	FamilyName *string `json:"familyName"`
	Address    *string `json:"address"`
}

// Create handles POST /users. userName and password are required; the
// profile fields default to NULL.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.NewBadRequest("Invalid request body"))
		return
	}

	if req.UserName == "" || req.Password == "" {
		respondWithError(h.logger, w, util.NewBadRequest("userName and password are required"))
		return
	}

	user, err := h.service.Create(r.Context(), domain.CreateUserParams{
		UserName:   req.UserName,
		Password:   req.Password,
		FirstName:  req.FirstName,
		FamilyName: req.FamilyName,
		Address:    req.Address,
	})
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusCreated, map[string]interface{}{"data": user})
}

// Replace handles PUT /users/{userID}: a full update requiring every field
// to be present. The optional fields may be empty strings but must appear
// in the body; userName and password must be non-empty.
func (h *UserHandler) Replace(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "userID", "user")
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	var body map[string]*string
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(h.logger, w, util.NewBadRequest("Invalid request body"))
		return
	}

	params := domain.UpdateUserParams{}
	targets := map[string]**string{
		"userName":   &params.UserName,
		"password":   &params.Password,
		"firstName":  &params.FirstName,
		"familyName": &params.FamilyName,
		"address":    &params.Address,
	}
	for _, field := range userUpdateFields {
		value, ok := body[field]
		if !ok || value == nil {
			respondWithError(h.logger, w, util.NewBadRequest(
				"All user fields (userName, password, firstName, familyName, and address) are required for a full update."))
			return
		}
		*targets[field] = value
	}
	if *params.UserName == "" || *params.Password == "" {
		respondWithError(h.logger, w, util.NewBadRequest(
			"All user fields (userName, password, firstName, familyName, and address) are required for a full update."))
		return
	}

	user, err := h.service.Update(r.Context(), id, params)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, map[string]interface{}{"data": user})
}

// Update handles PATCH /users/{userID}: a partial update touching only the
// supplied fields. Any key outside the allow-list fails the request.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "userID", "user")
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	var body map[string]*string
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(h.logger, w, util.NewBadRequest("Invalid request body"))
		return
	}
	if err := checkFields(body, userUpdateFields...); err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	user, err := h.service.Update(r.Context(), id, domain.UpdateUserParams{
		UserName:   body["userName"],
		Password:   body["password"],
		FirstName:  body["firstName"],
		FamilyName: body["familyName"],
		Address:    body["address"],
	})
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, map[string]interface{}{"data": user})
}

// Delete handles DELETE /users/{userID}. The user's messages are removed by
// the store's cascade rule.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "userID", "user")
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	user, err := h.service.Delete(r.Context(), id)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, map[string]interface{}{"data": user})
}
