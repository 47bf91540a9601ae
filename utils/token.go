package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

// The client never holds the signing secret, so tokens are inspected without
// signature verification. A token that does not parse as a JWT is treated as
// opaque: the backend remains the authority on its validity.

// TokenSubject extracts the 'sub' claim from a bearer token.
func TokenSubject(tokenString string) (string, error) {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return "", err
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("token does not contain a valid 'sub' claim")
	}
	return sub, nil
}

// TokenExpired reports whether the token carries an 'exp' claim in the past.
// Opaque or claimless tokens are never reported as expired.
func TokenExpired(tokenString string) bool {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return false
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return false
	}
	return time.Now().After(time.Unix(int64(exp), 0))
}
