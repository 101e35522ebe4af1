package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"logitrack-app/internal/auth"
	"logitrack-app/internal/utils"
	"logitrack-app/pkg/datastore"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthHandler struct {
	Store *datastore.Store
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := auth.Authenticate(h.Store.Users.List(), req.Username, req.Password)
	if err != nil {
		// One message for every failure cause.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":       token,
		"id":          user.ID,
		"username":    user.Username,
		"role":        user.Role,
		"permissions": user.Permissions,
	})
}
