package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"imf-gadget-api/internal/app"
	"imf-gadget-api/internal/transport/http/middleware"
	"imf-gadget-api/internal/transport/http/response"
)

type AuthHandler struct {
	authService *app.AuthService
}

type CredentialsRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

func NewAuthHandler(authService *app.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Username and password are required.")
		return
	}

	result, err := h.authService.Register(c.Request.Context(), app.RegisterInput{
		UserName: req.UserName,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, "Username and password are required.")
		case errors.Is(err, app.ErrUserExists):
			response.Error(c, http.StatusConflict, "User already exists.")
		default:
			response.Error(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":  result.User,
		"token": result.Token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Username and password are required.")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), app.LoginInput{
		UserName: req.UserName,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, "Username and password are required.")
		case errors.Is(err, app.ErrInvalidCredential):
			response.Error(c, http.StatusUnauthorized, "Invalid username or password.")
		default:
			response.Error(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  result.User,
		"token": result.Token,
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	userIDAny, exists := c.Get(middleware.ContextUserIDKey)
	if !exists {
		response.Message(c, http.StatusUnauthorized, "No token provided")
		return
	}

	userID, ok := userIDAny.(uint)
	if !ok {
		response.Message(c, http.StatusForbidden, "Invalid or expired token")
		return
	}

	user, err := h.authService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	if user == nil {
		response.Message(c, http.StatusForbidden, "Invalid or expired token")
		return
	}

	c.JSON(http.StatusOK, user)
}
