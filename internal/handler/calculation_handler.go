package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/model"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/report"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/response"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/validator"
)

// Calculator is what CalculationHandler needs from the calculation service.
type Calculator interface {
	CalculateSGPA(ctx context.Context, req model.SGPARequest) (*model.SGPAReport, error)
	EvaluateSGPA(ctx context.Context, req model.SGPARequest) (*model.SGPAReport, error)
	CalculateCGPA(req model.CGPARequest) (*model.CGPAResult, error)
}

type CalculationHandler struct {
	calc Calculator
	log  zerolog.Logger
}

func NewCalculationHandler(calc Calculator, log zerolog.Logger) *CalculationHandler {
	return &CalculationHandler{
		calc: calc,
		log:  log.With().Str("component", "calculation_handler").Logger(),
	}
}

// SGPA godoc
// POST /api/v1/calculate/sgpa
// Computes the semester average and records the submission.
func (h *CalculationHandler) SGPA(c *gin.Context) {
	var req model.SGPARequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	rep, err := h.calc.CalculateSGPA(c.Request.Context(), req)
	if err != nil {
		failWithError(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, rep)
}

// SGPAReport godoc
// POST /api/v1/calculate/sgpa/report
// Same input as SGPA; answers with the grade report as a spreadsheet.
func (h *CalculationHandler) SGPAReport(c *gin.Context) {
	var req model.SGPARequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	rep, err := h.calc.EvaluateSGPA(c.Request.Context(), req)
	if err != nil {
		failWithError(c, h.log, err)
		return
	}
	body, err := report.GradeReport(rep)
	if err != nil {
		failWithError(c, h.log, err)
		return
	}

	name := fmt.Sprintf("%s_%s_%s.xlsx", rep.Username, rep.Department, strings.ReplaceAll(rep.Semester, " ", ""))
	response.Spreadsheet(c, name, body)
}

// CGPA godoc
// POST /api/v1/calculate/cgpa
func (h *CalculationHandler) CGPA(c *gin.Context) {
	var req model.CGPARequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	res, err := h.calc.CalculateCGPA(req)
	if err != nil {
		failWithError(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}
