package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"sociograph/application/services"
	"sociograph/pkg/common"
)

// GraphHandler exports whole-graph snapshots for visualization clients.
type GraphHandler struct {
	service *services.NetworkService
	logger  *zap.Logger
}

// NewGraphHandler creates a new graph handler
func NewGraphHandler(service *services.NetworkService, logger *zap.Logger) *GraphHandler {
	return &GraphHandler{
		service: service,
		logger:  logger,
	}
}

// GetGraphData handles GET /graph. Every response carries a fresh
// snapshot id so clients can correlate renders with exports.
func (h *GraphHandler) GetGraphData(w http.ResponseWriter, r *http.Request) {
	snapshot := h.service.Snapshot(r.Context())
	stats := h.service.Stats(r.Context())

	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"snapshot_id":      uuid.New().String(),
		"generated_at":     time.Now().UTC().Format(time.RFC3339),
		"users":            snapshot.Users,
		"connections":      snapshot.Connections,
		"user_count":       stats.Users,
		"connection_count": stats.Connections,
	})
}
