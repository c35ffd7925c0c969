package models

import "github.com/dgrijalva/jwt-go"

// Session identifies the signed-in user behind a request. Discovery routes
// never require one; booking does.
type Session struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// Claims is the JWT payload issued by the hosted auth backend.
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.StandardClaims
}
