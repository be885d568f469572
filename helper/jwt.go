package helper

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ChristianRende22/Web-proyecto/app/model"
	"github.com/ChristianRende22/Web-proyecto/config"
)

const AccessTokenTTL = 30 * time.Minute

// Refresh token lifetime depends on the "remember me" flag picked at login:
// durable across browser restarts, or roughly one working session.
const (
	RememberedRefreshTTL = 7 * 24 * time.Hour
	SessionRefreshTTL    = 12 * time.Hour
)

func GenerateToken(e model.Employee) (string, error) {
	claims := model.JWTClaims{
		UserID: e.ID,
		Email:  e.Email,
		Role:   e.Role,
		Type:   "access",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	secret := config.GetJWTSecret()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func GenerateRefreshToken(e model.Employee, rememberMe bool) (string, error) {
	claims := model.JWTClaims{
		UserID: e.ID,
		Email:  e.Email,
		Role:   e.Role,
		Type:   "refresh",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(RefreshTokenTTL(rememberMe))),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	secret := config.GetJWTSecret()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func RefreshTokenTTL(rememberMe bool) time.Duration {
	if rememberMe {
		return RememberedRefreshTTL
	}
	return SessionRefreshTTL
}

func ValidateToken(tokenString string) (*model.JWTClaims, error) {
	secret := config.GetJWTSecret()
	token, err := jwt.ParseWithClaims(tokenString, &model.JWTClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*model.JWTClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrSignatureInvalid
}
