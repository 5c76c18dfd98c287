package utils

import (
	"os"
	"time"

	"github.com/MagicPie0/TopForm-sub000/models"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWT issues the HS256 token the frontend holds for the whole
// session. The userId claim is what the middleware trusts downstream.
func GenerateJWT(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"userId":   user.ID,
		"username": user.Username,
		"email":    user.Email,
		"name":     user.Name,
		"exp":      time.Now().Add(2 * time.Hour).Unix(),
	}
	if user.BirthDate != nil {
		claims["birthDate"] = user.BirthDate.Format("2006-01-02")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
