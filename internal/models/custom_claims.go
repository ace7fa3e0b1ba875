package models

import "github.com/golang-jwt/jwt/v5"

// CustomClaims is the claim set carried by bearer tokens. UserID is the
// canonical identity; Email and Role are informational copies taken at
// issue time.
type CustomClaims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role,omitempty"`
	TokenType string `json:"token_type"`
}
