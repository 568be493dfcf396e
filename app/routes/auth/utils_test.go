package auth

import (
	"testing"

	"capstone-management/app/config"
	"capstone-management/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundtrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("correct horse battery", hash))
	assert.False(t, CheckPasswordHash("wrong password", hash))
}

func TestJWTRoundtrip(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: []byte("test-secret")}

	facultyID := 3
	user := &models.User{
		ID:        "u-1",
		Email:     "prof@univ.edu",
		Role:      models.RoleFaculty,
		FacultyID: &facultyID,
	}

	token, err := GenerateJWT(user)
	require.NoError(t, err)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, models.RoleFaculty, claims.Role)
	require.NotNil(t, claims.FacultyID)
	assert.Equal(t, 3, *claims.FacultyID)

	actx := AuthContextFrom(claims)
	assert.True(t, actx.IsFaculty())
	assert.False(t, actx.IsAdmin())
}

func TestValidateJWT_RejectsGarbage(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: []byte("test-secret")}

	_, err := ValidateJWT("not.a.token")
	assert.Error(t, err)
}

func TestValidateJWT_RejectsWrongSecret(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: []byte("secret-a")}
	token, err := GenerateJWT(&models.User{ID: "u-2", Email: "x@univ.edu", Role: models.RoleAdmin})
	require.NoError(t, err)

	config.AppConfig = &config.Config{JWTSecret: []byte("secret-b")}
	_, err = ValidateJWT(token)
	assert.Error(t, err)
}
