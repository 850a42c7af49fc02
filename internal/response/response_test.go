package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestFail_EnvelopeCarriesCodeAndRequestID(t *testing.T) {
	r := gin.New()
	r.Use(response.RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) {
		response.Fail(c, http.StatusUnprocessableEntity, response.ErrZeroDenominator)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "6f1d1a3e-2a8e-4f3a-9d7c-0b8e3c2a1f00")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var body response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, response.ErrZeroDenominator, body.Error.Code)
	assert.Equal(t, "All subjects failed. SGPA cannot be calculated.", body.Error.Message)
	assert.Equal(t, "6f1d1a3e-2a8e-4f3a-9d7c-0b8e3c2a1f00", body.Metadata.RequestID)
	assert.Equal(t, "6f1d1a3e-2a8e-4f3a-9d7c-0b8e3c2a1f00", w.Header().Get("X-Request-ID"))
}

func TestRequestID_ReplacesGarbageHeader(t *testing.T) {
	r := gin.New()
	r.Use(response.RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) { response.Success(c, http.StatusOK, "ok") })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "<script>")
	r.ServeHTTP(w, req)

	assert.NotEqual(t, "<script>", w.Header().Get("X-Request-ID"))
	assert.Len(t, w.Header().Get("X-Request-ID"), 36)
}

func TestNewPagination(t *testing.T) {
	assert.Equal(t, 3, response.NewPagination(1, 20, 41).TotalPages)
	assert.Equal(t, 0, response.NewPagination(1, 20, 0).TotalPages)
	assert.Equal(t, 0, response.NewPagination(1, 0, 10).TotalPages)
}
