package handlers

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"sociograph/application/services"
	"sociograph/pkg/common"
	apperrors "sociograph/pkg/errors"
)

// RecommendationHandler serves friend recommendation queries.
type RecommendationHandler struct {
	service *services.RecommendationService
	logger  *zap.Logger
}

// NewRecommendationHandler creates a new recommendation handler
func NewRecommendationHandler(service *services.RecommendationService, logger *zap.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		service: service,
		logger:  logger,
	}
}

// GetRecommendations handles
// GET /users/{userID}/recommendations?strategy=&max_distance=.
// The strategy defaults to weighted; max_distance defaults to the
// configured bound. An unknown user yields an empty result list.
func (h *RecommendationHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUserID(w, r, "userID")
	if !ok {
		return
	}

	strategyName := r.URL.Query().Get("strategy")
	if strategyName == "" {
		strategyName = string(services.StrategyWeighted)
	}
	strategy, err := services.ParseStrategy(strategyName)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	maxDistance := 0
	if raw := r.URL.Query().Get("max_distance"); raw != "" {
		maxDistance, err = strconv.Atoi(raw)
		if err != nil || maxDistance < 1 {
			common.RespondAppError(w, apperrors.NewValidationError("max_distance must be a positive integer"))
			return
		}
	}

	results, err := h.service.Recommend(r.Context(), id, strategy, maxDistance)
	if err != nil {
		h.logger.Error("Failed to compute recommendations",
			zap.Int64("userID", int64(id)),
			zap.String("strategy", string(strategy)),
			zap.Error(err),
		)
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"user_id":  id,
		"strategy": strategy,
		"results":  results,
	})
}
