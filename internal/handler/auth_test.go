package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logitrack-app/config"
	"logitrack-app/internal/models"
	"logitrack-app/internal/utils"
	"logitrack-app/pkg/datastore"
)

func authRouter(t *testing.T) (*gin.Engine, *datastore.Store) {
	t.Helper()
	config.AppConfig = &config.Config{
		Server: config.ServerConfig{JWTSecret: "test-secret", JWTExpirationHours: 1},
	}

	store := datastore.New()
	hash, err := utils.HashPassword("admin123")
	require.NoError(t, err)
	store.Users.Add(models.SystemUser{
		Username:     "SuperAdmin",
		PasswordHash: hash,
		Role:         models.RoleSuperAdmin,
		Permissions:  models.KnownModules,
	})

	h := &AuthHandler{Store: store}
	r := gin.New()
	r.POST("/auth/login", h.Login)
	return r, store
}

func TestLoginSuccess(t *testing.T) {
	r, _ := authRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/login", gin.H{"username": "SuperAdmin", "password": "admin123"})
	requireStatus(t, w, http.StatusOK)

	resp := decodeBody[map[string]any](t, w)
	assert.Equal(t, "SuperAdmin", resp["username"])
	assert.NotEmpty(t, resp["token"])
	assert.Len(t, resp["permissions"], 3)

	claims, err := utils.ValidateToken(resp["token"].(string))
	require.NoError(t, err)
	assert.Equal(t, "SuperAdmin", claims.Username)
	assert.Equal(t, models.RoleSuperAdmin, claims.Role)
}

func TestLoginFailuresShareOneMessage(t *testing.T) {
	r, _ := authRouter(t)

	wrongPass := doJSON(t, r, http.MethodPost, "/auth/login", gin.H{"username": "SuperAdmin", "password": "wrong"})
	unknown := doJSON(t, r, http.MethodPost, "/auth/login", gin.H{"username": "nobody", "password": "admin123"})

	requireStatus(t, wrongPass, http.StatusUnauthorized)
	requireStatus(t, unknown, http.StatusUnauthorized)
	assert.Equal(t, wrongPass.Body.String(), unknown.Body.String(),
		"responses must not reveal whether the username exists")
}

func TestLoginRejectsMissingFields(t *testing.T) {
	r, _ := authRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/login", gin.H{"username": "SuperAdmin"})
	requireStatus(t, w, http.StatusBadRequest)
}

func TestLoginNeverLeaksPasswordHash(t *testing.T) {
	r, store := authRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/login", gin.H{"username": "SuperAdmin", "password": "admin123"})
	requireStatus(t, w, http.StatusOK)

	user, ok := store.Users.Get(1)
	require.True(t, ok)
	assert.NotContains(t, w.Body.String(), user.PasswordHash)
}
