package server

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// This file is only for test purpose and is only loaded by test framework.

// CreateToken returns a guard token for the given owner id, signed the way
// the identity provider does.
func CreateToken(ctrl Controller, ownerID string) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": ownerID,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	signed, err := token.SignedString(ctrl.SigningKey)
	if err != nil {
		panic(err)
	}
	return signed
}
