package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/model"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/response"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/validator"
)

// SubmissionLog is what SubmissionHandler needs from the submission service.
type SubmissionLog interface {
	List(ctx context.Context, f model.SubmissionFilter) ([]model.Submission, *response.Pagination, error)
	Export(ctx context.Context, f model.SubmissionFilter) ([]byte, error)
}

type SubmissionHandler struct {
	submissions SubmissionLog
	log         zerolog.Logger
}

func NewSubmissionHandler(submissions SubmissionLog, log zerolog.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		submissions: submissions,
		log:         log.With().Str("component", "submission_handler").Logger(),
	}
}

// List godoc
// GET /api/v1/admin/submissions?page=&per_page=&username=&semester=&department=&batch=
func (h *SubmissionHandler) List(c *gin.Context) {
	var f model.SubmissionFilter
	if fields := validator.BindQuery(c, &f); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	subs, page, err := h.submissions.List(c.Request.Context(), f)
	if err != nil {
		failWithError(c, h.log, err)
		return
	}
	response.SuccessWithPagination(c, http.StatusOK, gin.H{"submissions": subs}, page)
}

// Export godoc
// GET /api/v1/admin/submissions/export
func (h *SubmissionHandler) Export(c *gin.Context) {
	var f model.SubmissionFilter
	if fields := validator.BindQuery(c, &f); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	body, err := h.submissions.Export(c.Request.Context(), f)
	if err != nil {
		failWithError(c, h.log, err)
		return
	}
	name := fmt.Sprintf("submissions_%s.xlsx", time.Now().UTC().Format("20060102_150405"))
	response.Spreadsheet(c, name, body)
}
