package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/lms-portal-api/internal/models"
	"github.com/campushub/lms-portal-api/internal/service"
	appErrors "github.com/campushub/lms-portal-api/pkg/errors"
	"github.com/campushub/lms-portal-api/pkg/response"
)

// AuthHandler exposes authentication endpoints and the legacy
// unauthenticated profile lookups.
type AuthHandler struct {
	auth        *service.AuthService
	students    *service.StudentService
	instructors *service.InstructorService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(auth *service.AuthService, students *service.StudentService, instructors *service.InstructorService) *AuthHandler {
	return &AuthHandler{auth: auth, students: students, instructors: instructors}
}

// Login godoc
// @Summary Authenticate with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body models.LoginRequest true "Credentials"
// @Success 200 {object} response.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Refresh godoc
// @Summary Exchange a refresh token for a new token pair
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body models.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} response.Envelope
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req models.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.auth.Refresh(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Logout godoc
// @Summary Revoke the caller's refresh token
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body models.RefreshTokenRequest true "Refresh token"
// @Success 204
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	var req models.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	if err := h.auth.Logout(c.Request.Context(), req.RefreshToken, claims.UserID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// StudentProfile godoc
// @Summary Look up a student profile by id
// @Tags Auth
// @Produce json
// @Param student_id path string true "Student id"
// @Success 200 {object} response.Envelope
// @Router /auth/student/{student_id} [get]
func (h *AuthHandler) StudentProfile(c *gin.Context) {
	student, err := h.students.Get(c.Request.Context(), c.Param("student_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student, nil)
}

// InstructorProfile godoc
// @Summary Look up an instructor profile by id
// @Tags Auth
// @Produce json
// @Param instructor_id path string true "Instructor id"
// @Success 200 {object} response.Envelope
// @Router /auth/instructor/{instructor_id} [get]
func (h *AuthHandler) InstructorProfile(c *gin.Context) {
	instructor, err := h.instructors.Get(c.Request.Context(), c.Param("instructor_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, instructor, nil)
}
