package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"logitrack-app/config"
	"logitrack-app/internal/models"
)

type Claims struct {
	UserID      int                `json:"user_id"`
	Username    string             `json:"username"`
	Role        models.UserRole    `json:"role"`
	Permissions []models.AppModule `json:"permissions"`
	jwt.RegisteredClaims
}

func GenerateToken(user models.SystemUser) (string, error) {
	expiry := time.Duration(config.AppConfig.Server.JWTExpirationHours) * time.Hour
	claims := Claims{
		UserID:      user.ID,
		Username:    user.Username,
		Role:        user.Role,
		Permissions: user.Permissions,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.Server.JWTSecret))
}

func ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.AppConfig.Server.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
