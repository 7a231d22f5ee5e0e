// Copyright (c) 2026 Knowledge Hunting. All rights reserved.
// Author: dev@knowledgehunting.app

// Package sec provides bearer-token verification primitives.
//
// # Architecture
//
// Tokens are minted by an external trust issuer; this service never signs
// anything. The verifier holds only the issuer's RSA public key and checks
// signature, issuer, and expiry locally on every call. Verification results
// are never cached, so issuer-side revocation takes effect on the next request.
package sec

import (
	"crypto/rsa"
	"fmt"
	"os"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims represents the payload embedded inside a bearer access token.
//
// The verified email is the caller's identity for ownership checks; name and
// picture are carried along so handlers can stamp author metadata without a
// user lookup.
type AuthClaims struct {
	jwt.RegisteredClaims

	Email   string `json:"email"`
	Name    string `json:"name,omitempty"`
	Picture string `json:"picture,omitempty"`
}

// TokenVerifier validates bearer tokens issued by the trusted identity provider.
type TokenVerifier struct {
	publicKey *rsa.PublicKey
	issuer    string
}

// NewTokenVerifier creates a TokenVerifier.
// It reads the issuer's RSA public key from the provided filesystem path.
func NewTokenVerifier(publicKeyPath, issuer string) (*TokenVerifier, error) {
	publicKeyData, err := os.ReadFile(publicKeyPath)
	if err != nil {
		return nil, fmt.Errorf("sec: failed to read public key from %s: %w", publicKeyPath, err)
	}

	publicKey, err := jwt.ParseRSAPublicKeyFromPEM(publicKeyData)
	if err != nil {
		return nil, fmt.Errorf("sec: failed to parse public key: %w", err)
	}

	return &TokenVerifier{
		publicKey: publicKey,
		issuer:    issuer,
	}, nil
}

// NewTokenVerifierFromKey creates a TokenVerifier from an in-memory public key.
// Used by tests and by callers that obtain the key through other channels.
func NewTokenVerifierFromKey(publicKey *rsa.PublicKey, issuer string) *TokenVerifier {
	return &TokenVerifier{publicKey: publicKey, issuer: issuer}
}

// VerifyToken checks the signature, issuer, and validity window of a bearer
// token string and returns the verified claims.
//
// Any issuer rejection (expired, malformed, wrong signature) surfaces as an
// error; callers map it to an Unauthorized outcome. A token without an email
// claim is rejected because the email is the principal identity.
func (verifier *TokenVerifier) VerifyToken(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return verifier.publicKey, nil
	}, jwt.WithIssuer(verifier.issuer))

	if err != nil {
		return nil, fmt.Errorf("sec: invalid token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("sec: invalid token claims")
	}

	if claims.Email == "" {
		return nil, fmt.Errorf("sec: token carries no email claim")
	}

	return claims, nil
}
