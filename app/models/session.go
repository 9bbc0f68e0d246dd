package models

import "github.com/golang-jwt/jwt/v5"

// SessionClaims is carried by the dashboard session cookie.
type SessionClaims struct {
	jwt.RegisteredClaims
}
