package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openshelf/library-api/internal/auth"
)

// AuthController handles signup, login and password changes.
type AuthController struct {
	service *auth.Service
}

// NewAuthController creates a new AuthController.
func NewAuthController(service *auth.Service) *AuthController {
	return &AuthController{service: service}
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup registers a new user and returns the generated user id.
func (controller *AuthController) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "username, email, and password are required")
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		respondBadRequest(c, "username, email, and password are required")
		return
	}

	user, err := controller.service.Signup(req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserExists):
			respondError(c, http.StatusConflict, "username or email already exists")
		case errors.Is(err, auth.ErrPasswordTooLong):
			respondBadRequest(c, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "an error occurred during registration")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully",
		"user_id": user.UserID,
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login validates credentials and returns a user summary.
func (controller *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "username and password are required")
		return
	}
	if req.Username == "" || req.Password == "" {
		respondBadRequest(c, "username and password are required")
		return
	}

	user, err := controller.service.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		respondError(c, http.StatusInternalServerError, "an error occurred during login")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"user": gin.H{
			"user_id":  user.UserID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

type changePasswordRequest struct {
	UserID          string `json:"user_id"`
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ChangePassword verifies the current password and replaces it.
func (controller *AuthController) ChangePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "user_id, current_password, and new_password are required")
		return
	}
	if req.UserID == "" || req.CurrentPassword == "" || req.NewPassword == "" {
		respondBadRequest(c, "user_id, current_password, and new_password are required")
		return
	}

	err := controller.service.ChangePassword(req.UserID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrPasswordTooShort), errors.Is(err, auth.ErrPasswordTooLong):
			respondBadRequest(c, err.Error())
		case errors.Is(err, auth.ErrUserNotFound):
			respondNotFound(c, "user")
		case errors.Is(err, auth.ErrInvalidPassword):
			respondError(c, http.StatusUnauthorized, "current password is incorrect")
		default:
			respondError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Password changed successfully",
	})
}
