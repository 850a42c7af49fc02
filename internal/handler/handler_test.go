package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/config"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/grading"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/handler"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/middleware"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/model"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/response"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/service"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/validator"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/wizard"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.Setup()
}

type envelope struct {
	Data  json.RawMessage     `json:"data"`
	Error *response.ErrorBody `json:"error"`
}

func do(t *testing.T, r http.Handler, method, path string, body any, header ...string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Header().Get("Content-Type") != response.XLSXContentType {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}

// ─── Calculation ────────────────────────────────────────────────────

type catalog []model.Subject

func (c catalog) ForSelection(_ context.Context, _, _, batch string) ([]model.Subject, grading.RegulationID, error) {
	id, err := grading.ResolveRegulation(batch)
	return c, id, err
}

type recorder struct{ got []model.Submission }

func (r *recorder) Record(_ context.Context, sub model.Submission) error {
	r.got = append(r.got, sub)
	return nil
}

func calculationRouter(rec *recorder) *gin.Engine {
	subjects := catalog{
		{ID: 1, Label: "Algorithms (21IT301)", Credit: 3},
		{ID: 2, Label: "Cloud Lab (21IT321)", Credit: 4},
	}
	h := handler.NewCalculationHandler(service.NewCalculationService(subjects, rec, zerolog.Nop()), zerolog.Nop())

	r := gin.New()
	r.POST("/sgpa", h.SGPA)
	r.POST("/sgpa/report", h.SGPAReport)
	r.POST("/cgpa", h.CGPA)
	return r
}

func sgpaBody(grades map[string]int) gin.H {
	return gin.H{
		"username":   "412523104001",
		"semester":   "Sem-3",
		"department": "IT",
		"batch":      "2024-2028",
		"grades":     grades,
	}
}

func TestCalculationHandler_SGPA(t *testing.T) {
	rec := &recorder{}
	r := calculationRouter(rec)

	w, env := do(t, r, http.MethodPost, "/sgpa", sgpaBody(map[string]int{"1": 9, "2": 8}))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var rep model.SGPAReport
	require.NoError(t, json.Unmarshal(env.Data, &rep))
	// (27 + 32) / 7
	assert.Equal(t, "8.429", rep.SGPA)
	assert.Equal(t, 21, rep.Regulation)
	require.Len(t, rec.got, 1)
	assert.Equal(t, "412523104001", rec.got[0].Username)
}

func TestCalculationHandler_SGPAErrors(t *testing.T) {
	r := calculationRouter(&recorder{})

	cases := []struct {
		name   string
		body   gin.H
		status int
		code   response.ErrCode
	}{
		{"all failed", sgpaBody(map[string]int{"1": 0, "2": 0}), http.StatusUnprocessableEntity, response.ErrZeroDenominator},
		{"missing grade", sgpaBody(map[string]int{"1": 9}), http.StatusBadRequest, response.ErrIncompleteGrades},
		{"unknown subject", sgpaBody(map[string]int{"1": 9, "2": 8, "7": 9}), http.StatusBadRequest, response.ErrUnknownSubject},
		{"off-scale grade", sgpaBody(map[string]int{"1": 3, "2": 8}), http.StatusBadRequest, response.ErrValidation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, env := do(t, r, http.MethodPost, "/sgpa", tc.body)
			assert.Equal(t, tc.status, w.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tc.code, env.Error.Code)
		})
	}

	body := sgpaBody(map[string]int{"1": 9, "2": 8})
	body["batch"] = "twenty-one"
	w, env := do(t, r, http.MethodPost, "/sgpa", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Error.Fields, "batch")
}

func TestCalculationHandler_Report(t *testing.T) {
	rec := &recorder{}
	r := calculationRouter(rec)

	w, _ := do(t, r, http.MethodPost, "/sgpa/report", sgpaBody(map[string]int{"1": 9, "2": 8}))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, response.XLSXContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "412523104001_IT_Sem-3.xlsx")
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("PK")), "xlsx is a zip archive")
	assert.Empty(t, rec.got, "downloading a report does not record a submission")
}

func TestCalculationHandler_CGPA(t *testing.T) {
	r := calculationRouter(&recorder{})

	w, env := do(t, r, http.MethodPost, "/cgpa", gin.H{"terms": []gin.H{
		{"sgpa": 8.5, "credits": 22},
		{"sgpa": 7.9, "credits": 20},
		{"sgpa": 9.1, "credits": 24},
	}})
	require.Equal(t, http.StatusOK, w.Code)
	var res model.CGPAResult
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, "8.536", res.CGPA)

	w, env = do(t, r, http.MethodPost, "/cgpa", gin.H{"terms": []gin.H{
		{"sgpa": 8.5, "credits": 22},
		{"sgpa": 0, "credits": 20},
	}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, response.ErrInvalidCGPAInput, env.Error.Code)
	assert.Contains(t, env.Error.Fields, "terms[1]")
}

// ─── Auth ───────────────────────────────────────────────────────────

func TestAuthHandler_LoginAndProfile(t *testing.T) {
	auth, err := service.NewAuthService(&config.Config{
		JWTSecret:     "test-secret",
		JWTExpiry:     time.Hour,
		BcryptCost:    bcrypt.MinCost,
		AdminUsername: "admin",
		AdminPassword: "hunter22",
	})
	require.NoError(t, err)
	h := handler.NewAuthHandler(auth, zerolog.Nop())

	r := gin.New()
	r.POST("/login", h.AdminLogin)
	r.GET("/me", middleware.RequireAdminJWT(auth), h.GetAdminProfile)

	w, env := do(t, r, http.MethodPost, "/login", gin.H{"username": "admin", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, response.ErrInvalidCredentials, env.Error.Code)

	w, env = do(t, r, http.MethodPost, "/login", gin.H{"username": "admin"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Error.Fields, "password")

	w, env = do(t, r, http.MethodPost, "/login", gin.H{"username": "admin", "password": "hunter22"})
	require.Equal(t, http.StatusOK, w.Code)
	var login model.AdminLoginResponse
	require.NoError(t, json.Unmarshal(env.Data, &login))
	require.NotEmpty(t, login.Token)

	w, env = do(t, r, http.MethodGet, "/me", nil, "Authorization", "Bearer "+login.Token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"username":"admin"`)
}

// ─── Wizard ─────────────────────────────────────────────────────────

type memWizards map[string]wizard.State

func (m memWizards) Load(_ context.Context, id string) (wizard.State, error) {
	st, ok := m[id]
	if !ok {
		return wizard.State{}, service.ErrWizardNotFound
	}
	return st, nil
}

func (m memWizards) Save(_ context.Context, st wizard.State) error {
	m[st.ID] = st
	return nil
}

type wizardCatalog struct{}

func (wizardCatalog) Batches(context.Context, model.BatchFilter) ([]string, error) {
	return []string{"2024-2028", "2025-2029"}, nil
}

func (wizardCatalog) List(_ context.Context, f model.SubjectFilter) ([]model.Subject, error) {
	return []model.Subject{{ID: 1, Label: "Algorithms (21IT301)", Credit: 3, Semester: f.Semester, Department: f.Department}}, nil
}

type builtIn struct{}

func (builtIn) ResolveBatch(_ context.Context, batch string) (grading.RegulationID, error) {
	return grading.ResolveRegulation(batch)
}

func TestWizardHandler_Flow(t *testing.T) {
	svc := service.NewWizardService(memWizards{}, wizardCatalog{}, builtIn{})
	h := handler.NewWizardHandler(svc, zerolog.Nop())

	r := gin.New()
	r.POST("/wizard", h.Start)
	r.GET("/wizard/:id", h.Get)
	r.POST("/wizard/:id/advance", h.Advance)
	r.POST("/wizard/:id/back", h.Back)
	r.GET("/wizard/:id/subjects", h.Subjects)

	w, env := do(t, r, http.MethodPost, "/wizard", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var started struct {
		Wizard model.WizardView `json:"wizard"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &started))
	id := started.Wizard.ID
	assert.Equal(t, 1, started.Wizard.Step)

	w, env = do(t, r, http.MethodGet, "/wizard/"+id+"/subjects", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, response.ErrInvalidWizardStep, env.Error.Code)

	for _, v := range []string{"2025-2029", "it", "3"} {
		w, _ = do(t, r, http.MethodPost, "/wizard/"+id+"/advance", gin.H{"value": v})
		require.Equal(t, http.StatusOK, w.Code, v)
	}

	w, env = do(t, r, http.MethodGet, "/wizard/"+id+"/subjects", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), "Sem-3")

	w, env = do(t, r, http.MethodPost, "/wizard/"+id+"/back", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"stage":"semester"`)

	w, env = do(t, r, http.MethodPost, "/wizard/"+id+"/advance", gin.H{"value": "Sem-12"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, response.ErrInvalidWizardStep, env.Error.Code)
}

func TestWizardHandler_UnknownAndMalformedIDs(t *testing.T) {
	svc := service.NewWizardService(memWizards{}, wizardCatalog{}, builtIn{})
	h := handler.NewWizardHandler(svc, zerolog.Nop())
	r := gin.New()
	r.GET("/wizard/:id", h.Get)

	w, env := do(t, r, http.MethodGet, "/wizard/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, response.ErrInvalidID, env.Error.Code)

	w, env = do(t, r, http.MethodGet, "/wizard/7b0c4a52-3f57-4f0e-9d7e-5d1c2d3e4f50", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, response.ErrWizardNotFound, env.Error.Code)
}

// ─── System ─────────────────────────────────────────────────────────

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func TestSystemHandler_Health(t *testing.T) {
	r := gin.New()
	r.GET("/ok", handler.NewSystemHandler(pinger{}, nil, zerolog.Nop()).Health)
	r.GET("/down", handler.NewSystemHandler(pinger{err: context.DeadlineExceeded}, nil, zerolog.Nop()).Health)

	w, env := do(t, r, http.MethodGet, "/ok", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"status":"ok"`)

	w, env = do(t, r, http.MethodGet, "/down", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, string(env.Data), `"database":"unreachable"`)
}
