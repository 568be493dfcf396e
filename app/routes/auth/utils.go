package auth

import (
	"time"

	"capstone-management/app/config"
	"capstone-management/app/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

type JWTClaims struct {
	UserID    string  `json:"user_id"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	SRN       *string `json:"srn,omitempty"`
	FacultyID *int    `json:"faculty_id,omitempty"`
	jwt.RegisteredClaims
}

func GenerateJWT(u *models.User) (string, error) {
	claims := JWTClaims{
		UserID:    u.ID,
		Email:     u.Email,
		Role:      u.Role,
		SRN:       u.SRN,
		FacultyID: u.FacultyID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "capstone-management",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.AppConfig.JWTSecret)
}

func ValidateJWT(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return config.AppConfig.JWTSecret, nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrInvalidKey
}

// AuthContextFrom turns validated claims into the explicit authorization
// context the service layer requires.
func AuthContextFrom(claims *JWTClaims) models.AuthContext {
	return models.AuthContext{
		UserID:    claims.UserID,
		Email:     claims.Email,
		Role:      claims.Role,
		SRN:       claims.SRN,
		FacultyID: claims.FacultyID,
	}
}
