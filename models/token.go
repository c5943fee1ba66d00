// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Flowdash Authors

package models

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT bearer token with convenience accessors for
// authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry,
// etc.).
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in the Authorization
// header or stored in the client cookie jar.
type Token struct {
	// Token is the underlying JWT token used for signing and claim
	// inspection. Excluded from JSON serialization because only the compact
	// string form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	// Excluded from JSON serialization; use [Token.String] to retrieve it.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	// Internal server-side cache, excluded from JSON serialization.
	UserID string `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" (subject)
// claim. Returns an error if the subject claim is missing or empty.
func (t *Token) GetUserID() (string, error) {
	userID, err := t.GetSubject()
	if err != nil {
		return "", err
	}
	if userID == "" {
		return "", errors.New("empty subject in token")
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token. It implements
// the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
