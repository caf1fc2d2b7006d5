package handlers

import (
	"net/http"

	"canteen-api/apperr"
	"canteen-api/middleware"
	"canteen-api/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	accounts *services.AccountService
}

func NewAuthHandler(accounts *services.AccountService) *AuthHandler {
	return &AuthHandler{accounts: accounts}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a customer account. No token is issued; the caller
// logs in separately.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.Validation("Missing required fields"))
		return
	}
	if appErr := h.accounts.Register(req.Name, req.Email, req.Password); appErr != nil {
		fail(c, appErr)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.Validation("Missing email or password"))
		return
	}
	token, appErr := h.accounts.Login(req.Email, req.Password)
	if appErr != nil {
		fail(c, appErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": token})
}

// Profile returns the authenticated user's details.
func (h *AuthHandler) Profile(c *gin.Context) {
	user, appErr := h.accounts.Profile(middleware.GetUserID(c))
	if appErr != nil {
		fail(c, appErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"logged_in_as": user.Name,
		"email":        user.Email,
		"role":         user.Role,
	})
}
