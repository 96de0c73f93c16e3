package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"sociograph/application/services"
	"sociograph/domain/social"
	"sociograph/pkg/common"
	apperrors "sociograph/pkg/errors"
	"sociograph/pkg/utils"
)

// NetworkHandler handles user and connection HTTP requests.
type NetworkHandler struct {
	service *services.NetworkService
	logger  *zap.Logger
}

// NewNetworkHandler creates a new network handler
func NewNetworkHandler(service *services.NetworkService, logger *zap.Logger) *NetworkHandler {
	return &NetworkHandler{
		service: service,
		logger:  logger,
	}
}

// CreateUserRequest represents the request body for adding a user.
// Pointer fields distinguish an absent id from the valid id 0.
type CreateUserRequest struct {
	ID *int64 `json:"id" validate:"required,gte=0"`
}

// CreateConnectionRequest represents the request body for connecting two
// users.
type CreateConnectionRequest struct {
	SourceID *int64 `json:"source_id" validate:"required,gte=0"`
	TargetID *int64 `json:"target_id" validate:"required,gte=0"`
}

// CreateUser handles POST /users
func (h *NetworkHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := common.ParseJSONBody(r, &req, 1<<16); err != nil {
		common.RespondAppError(w, apperrors.NewValidationError("Invalid request body: "+err.Error()))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondAppError(w, apperrors.NewValidationError(err.Error()))
		return
	}

	h.service.AddUser(r.Context(), social.UserID(*req.ID))

	common.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"id": *req.ID,
	})
}

// GetUser handles GET /users/{userID}
func (h *NetworkHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUserID(w, r, "userID")
	if !ok {
		return
	}

	if !h.service.HasUser(r.Context(), id) {
		common.RespondAppError(w, apperrors.NewNotFoundError("user"))
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"id":           id,
		"friend_count": h.service.FriendCount(r.Context(), id),
	})
}

// ListFriends handles GET /users/{userID}/friends. An unknown user is a
// valid empty result, not an error.
func (h *NetworkHandler) ListFriends(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUserID(w, r, "userID")
	if !ok {
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"id":      id,
		"friends": h.service.Friends(r.Context(), id),
	})
}

// CreateConnection handles POST /connections
func (h *NetworkHandler) CreateConnection(w http.ResponseWriter, r *http.Request) {
	var req CreateConnectionRequest
	if err := common.ParseJSONBody(r, &req, 1<<16); err != nil {
		common.RespondAppError(w, apperrors.NewValidationError("Invalid request body: "+err.Error()))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondAppError(w, apperrors.NewValidationError(err.Error()))
		return
	}

	source := social.UserID(*req.SourceID)
	target := social.UserID(*req.TargetID)
	if err := h.service.Connect(r.Context(), source, target); err != nil {
		h.logger.Warn("Failed to create connection",
			zap.Int64("source", int64(source)),
			zap.Int64("target", int64(target)),
			zap.Error(err),
		)
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"source_id": source,
		"target_id": target,
	})
}

// DeleteConnection handles DELETE /connections?source=&target=. Removing
// a connection that does not exist still succeeds.
func (h *NetworkHandler) DeleteConnection(w http.ResponseWriter, r *http.Request) {
	source, err := parseQueryID(r, "source")
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	target, err := parseQueryID(r, "target")
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	h.service.Disconnect(r.Context(), source, target)

	w.WriteHeader(http.StatusNoContent)
}

// GetStats handles GET /stats
func (h *NetworkHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, http.StatusOK, h.service.Stats(r.Context()))
}

// parseUserID reads an integer id from a chi URL parameter, responding
// with a validation error on malformed input.
func parseUserID(w http.ResponseWriter, r *http.Request, param string) (social.UserID, bool) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		common.RespondAppError(w, apperrors.NewValidationError("Invalid user id: "+raw))
		return 0, false
	}
	return social.UserID(id), true
}

func parseQueryID(r *http.Request, param string) (social.UserID, error) {
	raw := r.URL.Query().Get(param)
	if raw == "" {
		return 0, apperrors.NewValidationError(param + " query parameter is required")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperrors.NewValidationError("Invalid " + param + " id: " + raw)
	}
	return social.UserID(id), nil
}
