// Package auth is the session/access gate: it verifies a supplied secret
// against a stored credential and answers module-permission questions.
package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"logitrack-app/internal/models"
	"logitrack-app/internal/utils"
)

// ErrInvalidCredentials is returned for every authentication failure. An
// unknown username and a wrong password are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid credentials")

// dummyHash keeps the unknown-username path doing the same bcrypt work as
// the wrong-password path, so response timing does not reveal which one
// failed. The hashed value is never a valid password.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("logitrack-no-such-user"), bcrypt.DefaultCost)

// Authenticate matches username exactly (case-sensitive, first match in
// iteration order) and verifies the password against the stored bcrypt hash.
func Authenticate(users []models.SystemUser, username, password string) (models.SystemUser, error) {
	for _, u := range users {
		if u.Username == username {
			if utils.CheckPasswordHash(password, u.PasswordHash) {
				return u, nil
			}
			return models.SystemUser{}, ErrInvalidCredentials
		}
	}

	bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
	return models.SystemUser{}, ErrInvalidCredentials
}

// HasPermission reports whether module is in the user's permission set.
func HasPermission(user models.SystemUser, module models.AppModule) bool {
	return user.HasPermission(module)
}
