package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/model"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/response"
)

type DashboardSource interface {
	GetDashboardData(ctx context.Context) (*model.Dashboard, error)
}

// DashboardHandler handles admin dashboard endpoints.
type DashboardHandler struct {
	dashboard DashboardSource
	log       zerolog.Logger
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboard DashboardSource, log zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboard: dashboard,
		log:       log.With().Str("component", "dashboard_handler").Logger(),
	}
}

// GetDashboardData godoc
// GET /api/v1/admin/dashboard
// Returns catalog counts, submissions per department and the latest submissions.
func (h *DashboardHandler) GetDashboardData(c *gin.Context) {
	data, err := h.dashboard.GetDashboardData(c.Request.Context())
	if err != nil {
		failWithError(c, h.log, err)
		return
	}

	response.Success(c, http.StatusOK, data)
}
