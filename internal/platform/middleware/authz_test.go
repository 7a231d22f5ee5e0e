// Copyright (c) 2026 Knowledge Hunting. All rights reserved.
// Author: dev@knowledgehunting.app

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/knowledgehunting/api/internal/platform/ctxutil"
	"github.com/knowledgehunting/api/internal/platform/middleware"
	"github.com/knowledgehunting/api/internal/platform/sec"
)

// stubVerifier accepts the single token it was configured with.
type stubVerifier struct {
	token  string
	claims *sec.AuthClaims
}

func (v *stubVerifier) VerifyToken(tokenStr string) (*sec.AuthClaims, error) {
	if tokenStr == v.token {
		return v.claims, nil
	}
	return nil, errors.New("unknown token")
}

// echoPrincipal records whether the handler ran and which principal it saw.
func echoPrincipal(invoked *bool, seen **sec.AuthClaims) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		*invoked = true
		*seen = ctxutil.GetPrincipal(request.Context())
		writer.WriteHeader(http.StatusOK)
	})
}

/*
TestAuthenticate_Anonymous verifies that a request without credentials
proceeds with no principal in context.
*/
func TestAuthenticate_Anonymous(t *testing.T) {
	verifier := &stubVerifier{token: "valid", claims: &sec.AuthClaims{Email: "writer@example.com"}}

	var invoked bool
	var seen *sec.AuthClaims
	handler := middleware.Authenticate(verifier)(echoPrincipal(&invoked, &seen))

	request := httptest.NewRequest(http.MethodGet, "/articles", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, invoked)
	assert.Nil(t, seen)
}

/*
TestAuthenticate_ValidToken verifies that a valid bearer token puts the
verified claims into the request context.
*/
func TestAuthenticate_ValidToken(t *testing.T) {
	verifier := &stubVerifier{token: "valid", claims: &sec.AuthClaims{Email: "writer@example.com"}}

	var invoked bool
	var seen *sec.AuthClaims
	handler := middleware.Authenticate(verifier)(echoPrincipal(&invoked, &seen))

	request := httptest.NewRequest(http.MethodGet, "/articles", nil)
	request.Header.Set("Authorization", "Bearer valid")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, invoked)
	assert.NotNil(t, seen)
	assert.Equal(t, "writer@example.com", seen.Email)
}

/*
TestAuthenticate_MalformedCarrier verifies that a broken Authorization
header is rejected before the verifier is ever consulted.
*/
func TestAuthenticate_MalformedCarrier(t *testing.T) {
	testCases := []struct {
		name   string
		header string
	}{
		{name: "missing scheme", header: "valid"},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "extra parts", header: "Bearer valid extra"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			verifier := &stubVerifier{token: "valid", claims: &sec.AuthClaims{Email: "writer@example.com"}}

			var invoked bool
			var seen *sec.AuthClaims
			handler := middleware.Authenticate(verifier)(echoPrincipal(&invoked, &seen))

			request := httptest.NewRequest(http.MethodGet, "/articles", nil)
			request.Header.Set("Authorization", testCase.header)
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
			assert.False(t, invoked)
		})
	}
}

/*
TestAuthenticate_InvalidToken verifies that a rejected token yields
HTTP 401 and never reaches the handler.
*/
func TestAuthenticate_InvalidToken(t *testing.T) {
	verifier := &stubVerifier{token: "valid", claims: &sec.AuthClaims{Email: "writer@example.com"}}

	var invoked bool
	var seen *sec.AuthClaims
	handler := middleware.Authenticate(verifier)(echoPrincipal(&invoked, &seen))

	request := httptest.NewRequest(http.MethodGet, "/articles", nil)
	request.Header.Set("Authorization", "Bearer forged")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.False(t, invoked)
}

/*
TestRequireAuth verifies that anonymous requests are blocked while
authenticated ones pass through.
*/
func TestRequireAuth(t *testing.T) {
	var invoked bool
	var seen *sec.AuthClaims
	handler := middleware.RequireAuth(echoPrincipal(&invoked, &seen))

	// 1. Anonymous request is rejected
	request := httptest.NewRequest(http.MethodPost, "/articles", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.False(t, invoked)

	// 2. Authenticated request passes through
	ctx := ctxutil.WithPrincipal(request.Context(), &sec.AuthClaims{Email: "writer@example.com"})
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, request.WithContext(ctx))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, invoked)
}

/*
TestRequireOwnership verifies the identity-ownership gate: anonymous
callers get 401, a principal asking for someone else's resource gets 403
without the handler running, and the owner gets through.
*/
func TestRequireOwnership(t *testing.T) {
	newRouter := func(invoked *bool, seen **sec.AuthClaims) chi.Router {
		router := chi.NewRouter()
		router.With(middleware.RequireOwnership("email")).
			Get("/my-articles/{email}", echoPrincipal(invoked, seen).ServeHTTP)
		return router
	}

	// 1. Anonymous caller
	var invoked bool
	var seen *sec.AuthClaims
	router := newRouter(&invoked, &seen)

	request := httptest.NewRequest(http.MethodGet, "/my-articles/writer@example.com", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.False(t, invoked)

	// 2. Wrong principal is forbidden and the handler never runs
	invoked = false
	ctx := ctxutil.WithPrincipal(request.Context(), &sec.AuthClaims{Email: "intruder@example.com"})
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, request.WithContext(ctx))

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.False(t, invoked)

	// 3. Owner passes
	invoked = false
	ctx = ctxutil.WithPrincipal(request.Context(), &sec.AuthClaims{Email: "writer@example.com"})
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, request.WithContext(ctx))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, invoked)
	assert.Equal(t, "writer@example.com", seen.Email)
}
