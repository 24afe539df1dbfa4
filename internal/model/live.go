package model

import "github.com/golang-jwt/jwt/v5"

// LiveConnectClaims authorize opening the shared live channel. The subject
// carries the member ID.
type LiveConnectClaims struct {
	jwt.RegisteredClaims
}
