package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/model"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/response"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/validator"
)

// WizardFlow is what WizardHandler needs from the wizard service.
type WizardFlow interface {
	Start(ctx context.Context) (*model.WizardView, error)
	Get(ctx context.Context, id string) (*model.WizardView, error)
	Advance(ctx context.Context, id, value string) (*model.WizardView, error)
	Back(ctx context.Context, id string) (*model.WizardView, error)
	Subjects(ctx context.Context, id string) ([]model.Subject, error)
}

type WizardHandler struct {
	wizards WizardFlow
	log     zerolog.Logger
}

func NewWizardHandler(wizards WizardFlow, log zerolog.Logger) *WizardHandler {
	return &WizardHandler{
		wizards: wizards,
		log:     log.With().Str("component", "wizard_handler").Logger(),
	}
}

// Start godoc
// POST /api/v1/wizard
func (h *WizardHandler) Start(c *gin.Context) {
	view, err := h.wizards.Start(c.Request.Context())
	if err != nil {
		failWithError(c, h.log, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"wizard": view})
}

// Get godoc
// GET /api/v1/wizard/:id
func (h *WizardHandler) Get(c *gin.Context) {
	id, ok := wizardID(c)
	if !ok {
		return
	}
	view, err := h.wizards.Get(c.Request.Context(), id)
	if err != nil {
		failWithError(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"wizard": view})
}

// Advance godoc
// POST /api/v1/wizard/:id/advance
func (h *WizardHandler) Advance(c *gin.Context) {
	id, ok := wizardID(c)
	if !ok {
		return
	}
	var req model.WizardAdvanceRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	view, err := h.wizards.Advance(c.Request.Context(), id, req.Value)
	if err != nil {
		failWithError(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"wizard": view})
}

// Back godoc
// POST /api/v1/wizard/:id/back
func (h *WizardHandler) Back(c *gin.Context) {
	id, ok := wizardID(c)
	if !ok {
		return
	}
	view, err := h.wizards.Back(c.Request.Context(), id)
	if err != nil {
		failWithError(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"wizard": view})
}

// Subjects godoc
// GET /api/v1/wizard/:id/subjects
// Only available once every selection has been made.
func (h *WizardHandler) Subjects(c *gin.Context) {
	id, ok := wizardID(c)
	if !ok {
		return
	}
	subjects, err := h.wizards.Subjects(c.Request.Context(), id)
	if err != nil {
		failWithError(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"subjects": subjects})
}

func wizardID(c *gin.Context) (string, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return "", false
	}
	return id.String(), true
}
