package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/dcnearshore/taskboard/internal/application"
	"github.com/dcnearshore/taskboard/internal/interface/middleware"
	"github.com/dcnearshore/taskboard/pkg/response"
	"github.com/dcnearshore/taskboard/pkg/validation"
)

const tokenType = "Bearer"

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register handles POST /api/register. A duplicate email is rejected with
// 400 and a plain message, matching the documented API.
func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrors(c, validation.ToFieldErrors(err))
		return
	}

	u, tok, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			response.Message(c, http.StatusBadRequest, "User already exists")
			return
		}
		response.InternalError(c)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{
		"message":    "User created successfully",
		"user":       u,
		"token":      tok.Plaintext,
		"token_type": tokenType,
		"expires_at": tok.ExpiresAt,
	})
}

// Login handles POST /api/login. The response carries the token only, no
// user object.
func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrors(c, validation.ToFieldErrors(err))
		return
	}

	tok, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.Message(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		response.InternalError(c)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{
		"message":    "User logged in successfully",
		"token":      tok.Plaintext,
		"token_type": tokenType,
		"expires_at": tok.ExpiresAt,
	})
}

// Logout handles POST /api/logout. The route is gated on bearer-token
// presence; when the token resolves to a user, every token that user
// holds is revoked. The success message is returned either way.
func (h *UserHandler) Logout(c *gin.Context) {
	if u, ok := middleware.CurrentUser(c); ok {
		if err := h.Svc.Logout(c.Request.Context(), u.ID); err != nil {
			response.InternalError(c)
			return
		}
	}
	response.Message(c, http.StatusOK, "User logged out successfully")
}
