package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-todo-api/internal/interface/middleware"
)

func TestSignup(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/users", `{"email":"Alice@Example.com","password":"secret1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	token := rec.Header().Get(middleware.AuthHeader)
	assert.NotEmpty(t, token)

	body := decode(t, rec)
	assert.Len(t, body["id"], 24)
	assert.Equal(t, "alice@example.com", body["email"])
	assert.NotContains(t, body, "password")
	assert.NotContains(t, body, "tokens")
	assert.NotContains(t, rec.Body.String(), "secret1")

	stored, err := ts.users.GetByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	require.Len(t, stored.Tokens, 1)
	assert.Equal(t, token, stored.Tokens[0].Token)
}

func TestSignupRejects(t *testing.T) {
	ts := newTestServer(t)
	ts.signup(t, "taken@example.com", "secret1")

	for name, body := range map[string]string{
		"duplicate email":  `{"email":"taken@example.com","password":"secret1"}`,
		"duplicate case":   `{"email":"TAKEN@example.com","password":"secret1"}`,
		"invalid email":    `{"email":"taken","password":"secret1"}`,
		"short password":   `{"email":"new@example.com","password":"12345"}`,
		"missing password": `{"email":"new@example.com"}`,
		"invalid json":     `{"email":`,
	} {
		t.Run(name, func(t *testing.T) {
			rec := ts.do(t, http.MethodPost, "/users", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, rec.Header().Get(middleware.AuthHeader))
		})
	}
}

func TestMe(t *testing.T) {
	ts := newTestServer(t)
	id, token := ts.signup(t, "bob@example.com", "secret1")

	rec := ts.do(t, http.MethodGet, "/users/me", "", middleware.AuthHeader, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"`+id+`","email":"bob@example.com"}`, rec.Body.String())

	for name, tok := range map[string]string{"missing": "", "garbage": "not-a-jwt", "tampered": token + "x"} {
		t.Run(name, func(t *testing.T) {
			rec := ts.do(t, http.MethodGet, "/users/me", "", middleware.AuthHeader, tok)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Empty(t, rec.Body.String())
		})
	}
}

func TestLogin(t *testing.T) {
	ts := newTestServer(t)
	id, signupToken := ts.signup(t, "carol@example.com", "secret1")

	rec := ts.do(t, http.MethodPost, "/users/login", `{"email":"Carol@Example.com","password":"secret1"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	loginToken := rec.Header().Get(middleware.AuthHeader)
	assert.NotEmpty(t, loginToken)
	assert.NotEqual(t, signupToken, loginToken)
	assert.JSONEq(t, `{"id":"`+id+`","email":"carol@example.com"}`, rec.Body.String())

	for _, tok := range []string{signupToken, loginToken} {
		assert.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/users/me", "", middleware.AuthHeader, tok).Code)
	}
}

func TestLoginRejects(t *testing.T) {
	ts := newTestServer(t)
	ts.signup(t, "dave@example.com", "secret1")

	for name, body := range map[string]string{
		"wrong password": `{"email":"dave@example.com","password":"secret2"}`,
		"unknown email":  `{"email":"nobody@example.com","password":"secret1"}`,
		"missing fields": `{}`,
	} {
		t.Run(name, func(t *testing.T) {
			rec := ts.do(t, http.MethodPost, "/users/login", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, rec.Header().Get(middleware.AuthHeader))
		})
	}
}

func TestLogoutRevokesPresentedToken(t *testing.T) {
	ts := newTestServer(t)
	_, first := ts.signup(t, "erin@example.com", "secret1")
	rec := ts.do(t, http.MethodPost, "/users/login", `{"email":"erin@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	second := rec.Header().Get(middleware.AuthHeader)

	rec = ts.do(t, http.MethodDelete, "/users/me/token", "", middleware.AuthHeader, first)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())

	assert.Equal(t, http.StatusUnauthorized, ts.do(t, http.MethodGet, "/users/me", "", middleware.AuthHeader, first).Code)
	assert.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/users/me", "", middleware.AuthHeader, second).Code)
	assert.Equal(t, http.StatusUnauthorized, ts.do(t, http.MethodDelete, "/users/me/token", "").Code)
}
