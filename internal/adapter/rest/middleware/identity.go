package middleware

import (
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/Abdurahmanit/GroupProject/motel-service/internal/motel/domain"
)

// IdentityClaims is the token shape the identity provider issues: the
// subject plus the profile fields mirrored into the local users collection.
// Roles are never read from the token.
type IdentityClaims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTConfig builds the echo-jwt configuration for the secured route group.
// A missing or invalid token short-circuits with 401 before any handler
// runs, which keeps "log in required" distinct from "permission denied".
func JWTConfig(secret string) echojwt.Config {
	return echojwt.Config{
		SigningKey: []byte(secret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(IdentityClaims)
		},
	}
}

// Identity extracts the verified caller identity placed in the context by
// the JWT middleware. Nil means anonymous (public route or broken token),
// which usecases translate into an unauthenticated failure where identity
// is required.
func Identity(c echo.Context) *domain.Identity {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil
	}
	claims, ok := token.Claims.(*IdentityClaims)
	if !ok {
		return nil
	}
	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return nil
	}
	return &domain.Identity{
		Subject: domain.UserID(subject),
		Name:    claims.Name,
		Email:   claims.Email,
	}
}
