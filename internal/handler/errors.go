package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/grading"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/response"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/service"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/wizard"
)

// errorMapping ties a domain error to its HTTP status and response code.
var errorMapping = []struct {
	err    error
	status int
	code   response.ErrCode
}{
	{grading.ErrInvalidBatchFormat, http.StatusBadRequest, response.ErrInvalidBatchFormat},
	{grading.ErrZeroDenominator, http.StatusUnprocessableEntity, response.ErrZeroDenominator},
	{grading.ErrInvalidCGPAInput, http.StatusBadRequest, response.ErrInvalidCGPAInput},
	{grading.ErrInvalidGradePoint, http.StatusBadRequest, response.ErrInvalidGradePoint},
	{service.ErrIncompleteGrades, http.StatusBadRequest, response.ErrIncompleteGrades},
	{service.ErrUnknownSubject, http.StatusBadRequest, response.ErrUnknownSubject},
	{service.ErrRegulationNotFound, http.StatusNotFound, response.ErrRegulationNotFound},
	{service.ErrOverlappingRange, http.StatusConflict, response.ErrOverlappingRange},
	{service.ErrWizardNotFound, http.StatusNotFound, response.ErrWizardNotFound},
	{service.ErrNotFound, http.StatusNotFound, response.ErrNotFound},
	{wizard.ErrInvalidStep, http.StatusBadRequest, response.ErrInvalidWizardStep},
	{wizard.ErrUnknownDepartment, http.StatusBadRequest, response.ErrInvalidWizardStep},
	{wizard.ErrInvalidSemester, http.StatusBadRequest, response.ErrInvalidWizardStep},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, response.ErrInvalidCredentials},
	{service.ErrAdminNotConfigured, http.StatusServiceUnavailable, response.ErrInternal},
}

// failWithError writes the response for a service error. Known domain errors
// carry their message in fields.detail; anything else is logged as a 500.
func failWithError(c *gin.Context, log zerolog.Logger, err error) {
	var termErr *grading.InvalidTermError
	if errors.As(err, &termErr) {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrInvalidCGPAInput, map[string]string{
			fmt.Sprintf("terms[%d]", termErr.Index): termErr.Reason,
		})
		return
	}

	for _, m := range errorMapping {
		if errors.Is(err, m.err) {
			response.FailWithFields(c, m.status, m.code, map[string]string{"detail": detail(err, m.err)})
			return
		}
	}

	log.Error().Err(err).Str("path", c.FullPath()).Msg("Request failed")
	response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
}

// detail strips the sentinel prefix from a wrapped error message.
func detail(err, sentinel error) string {
	msg := err.Error()
	if rest, ok := strings.CutPrefix(msg, sentinel.Error()+": "); ok {
		return rest
	}
	return msg
}
