package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/middleware"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/model"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/response"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/validator"
)

// AdminAuthenticator checks the admin credential and issues tokens.
type AdminAuthenticator interface {
	Login(username, password string) (*model.AdminLoginResponse, error)
}

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	auth AdminAuthenticator
	log  zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth AdminAuthenticator, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		auth: auth,
		log:  log.With().Str("component", "auth_handler").Logger(),
	}
}

// AdminLogin godoc
// POST /api/v1/auth/admin/login
// Validates the admin username and password, returns a JWT.
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req model.AdminLoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	res, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		h.log.Warn().Str("ip", c.ClientIP()).Str("username", req.Username).Msg("Admin login rejected")
		failWithError(c, h.log, err)
		return
	}

	h.log.Info().Str("username", res.Username).Msg("Admin logged in")
	response.Success(c, http.StatusOK, res)
}

// GetAdminProfile godoc
// GET /api/v1/auth/admin/me
func (h *AuthHandler) GetAdminProfile(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	admin := gin.H{"username": claims.Username}
	if claims.ExpiresAt != nil {
		admin["expires_at"] = claims.ExpiresAt.Time
	}
	response.Success(c, http.StatusOK, gin.H{"admin": admin})
}
