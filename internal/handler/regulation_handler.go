package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/model"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/response"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/validator"
)

// RegulationRegistry is what RegulationHandler needs from the regulation service.
type RegulationRegistry interface {
	List(ctx context.Context) ([]model.Regulation, error)
	ListActive(ctx context.Context) ([]model.Regulation, error)
	ForBatch(ctx context.Context, batch string) (*model.RegulationForBatch, error)
	Create(ctx context.Context, req model.RegulationRequest) (*model.Regulation, error)
	Update(ctx context.Context, id int, req model.RegulationRequest) (*model.Regulation, error)
	Delete(ctx context.Context, id int) error
}

type RegulationHandler struct {
	registry RegulationRegistry
	log      zerolog.Logger
}

func NewRegulationHandler(registry RegulationRegistry, log zerolog.Logger) *RegulationHandler {
	return &RegulationHandler{
		registry: registry,
		log:      log.With().Str("component", "regulation_handler").Logger(),
	}
}

// List godoc
// GET /api/v1/regulations
func (h *RegulationHandler) List(c *gin.Context) {
	regs, err := h.registry.List(c.Request.Context())
	if err != nil {
		failWithError(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"regulations": regs})
}

// ListActive godoc
// GET /api/v1/regulations/active
func (h *RegulationHandler) ListActive(c *gin.Context) {
	regs, err := h.registry.ListActive(c.Request.Context())
	if err != nil {
		failWithError(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"regulations": regs})
}

// ForBatch godoc
// GET /api/v1/regulations/for-batch/:batch
func (h *RegulationHandler) ForBatch(c *gin.Context) {
	res, err := h.registry.ForBatch(c.Request.Context(), c.Param("batch"))
	if err != nil {
		failWithError(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

// Create godoc
// POST /api/v1/admin/regulations
func (h *RegulationHandler) Create(c *gin.Context) {
	var req model.RegulationRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	reg, err := h.registry.Create(c.Request.Context(), req)
	if err != nil {
		failWithError(c, h.log, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"regulation": reg})
}

// Update godoc
// PUT /api/v1/admin/regulations/:id
func (h *RegulationHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req model.RegulationRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	reg, err := h.registry.Update(c.Request.Context(), id, req)
	if err != nil {
		failWithError(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"regulation": reg})
}

// Delete godoc
// DELETE /api/v1/admin/regulations/:id
func (h *RegulationHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.registry.Delete(c.Request.Context(), id); err != nil {
		failWithError(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}
