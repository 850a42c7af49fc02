package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/model"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/response"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/validator"
)

// SubjectCatalog is what SubjectHandler needs from the subject service.
type SubjectCatalog interface {
	List(ctx context.Context, f model.SubjectFilter) ([]model.Subject, error)
	Batches(ctx context.Context, f model.BatchFilter) ([]string, error)
	GetByID(ctx context.Context, id int) (*model.Subject, error)
	Create(ctx context.Context, req model.SubjectRequest) (*model.Subject, error)
	Update(ctx context.Context, id int, req model.SubjectRequest) (*model.Subject, error)
	Delete(ctx context.Context, id int) error
}

type SubjectHandler struct {
	subjects SubjectCatalog
	log      zerolog.Logger
}

func NewSubjectHandler(subjects SubjectCatalog, log zerolog.Logger) *SubjectHandler {
	return &SubjectHandler{
		subjects: subjects,
		log:      log.With().Str("component", "subject_handler").Logger(),
	}
}

// List godoc
// GET /api/v1/subjects?semester=&department=&batch=&regulation=
// GET /api/v1/admin/subjects
func (h *SubjectHandler) List(c *gin.Context) {
	var f model.SubjectFilter
	if fields := validator.BindQuery(c, &f); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	subjects, err := h.subjects.List(c.Request.Context(), f)
	if err != nil {
		failWithError(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"subjects": subjects})
}

// Batches godoc
// GET /api/v1/batches?semester=&department=
func (h *SubjectHandler) Batches(c *gin.Context) {
	var f model.BatchFilter
	if fields := validator.BindQuery(c, &f); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	batches, err := h.subjects.Batches(c.Request.Context(), f)
	if err != nil {
		failWithError(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"batches": batches})
}

// Departments godoc
// GET /api/v1/departments
func (h *SubjectHandler) Departments(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"departments": model.Departments})
}

// Get godoc
// GET /api/v1/admin/subjects/:id
func (h *SubjectHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	sub, err := h.subjects.GetByID(c.Request.Context(), id)
	if err != nil {
		failWithError(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"subject": sub})
}

// Create godoc
// POST /api/v1/admin/subjects
func (h *SubjectHandler) Create(c *gin.Context) {
	var req model.SubjectRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	sub, err := h.subjects.Create(c.Request.Context(), req)
	if err != nil {
		failWithError(c, h.log, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"subject": sub})
}

// Update godoc
// PUT /api/v1/admin/subjects/:id
func (h *SubjectHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req model.SubjectRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	sub, err := h.subjects.Update(c.Request.Context(), id, req)
	if err != nil {
		failWithError(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"subject": sub})
}

// Delete godoc
// DELETE /api/v1/admin/subjects/:id
func (h *SubjectHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.subjects.Delete(c.Request.Context(), id); err != nil {
		failWithError(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

// paramID parses the :id path parameter, writing a 400 when it is invalid.
func paramID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return 0, false
	}
	return id, true
}
