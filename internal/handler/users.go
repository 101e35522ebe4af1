package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"logitrack-app/internal/models"
	"logitrack-app/internal/utils"
	"logitrack-app/pkg/datastore"
)

// UserHandler is the SuperAdmin-only management surface for system accounts.
type UserHandler struct {
	Store *datastore.Store
}

type UserRequest struct {
	Username    string             `json:"username" binding:"required"`
	Password    string             `json:"password"`
	Role        models.UserRole    `json:"role" binding:"required"`
	Permissions []models.AppModule `json:"permissions"`
}

func (r UserRequest) validate() string {
	if !models.ValidUserRole(r.Role) {
		return "Invalid user role"
	}
	for _, p := range r.Permissions {
		if !models.ValidModule(p) {
			return "Unknown module in permissions"
		}
	}
	return ""
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Users.List())
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password is required"})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := h.Store.Users.Add(models.SystemUser{
		Username:     req.Username,
		PasswordHash: hash,
		Role:         req.Role,
		Permissions:  req.Permissions,
	})
	c.JSON(http.StatusCreated, user)
}

// UpdateUser replaces the account. An empty password keeps the current
// hash; a non-empty one is re-hashed.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	existing, found := h.Store.Users.Get(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	hash := existing.PasswordHash
	if req.Password != "" {
		var err error
		hash, err = utils.HashPassword(req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
	}

	user := models.SystemUser{
		ID:           id,
		Username:     req.Username,
		PasswordHash: hash,
		Role:         req.Role,
		Permissions:  req.Permissions,
	}
	h.Store.Users.Update(user)
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if !h.Store.Users.Delete(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
