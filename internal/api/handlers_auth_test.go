// Amazon Q Dashboard - Developer Productivity Analytics
// Copyright 2026 CoderXLab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/coderxlab/amazonq-dashboard-sub000

package api

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/goccy/go-json"

	"github.com/coderxlab/amazonq-dashboard-sub000/internal/models"
)

func TestLoginAndProtectedEndpoint(t *testing.T) {
	cfg := testConfig()
	cfg.Security.AuthMode = "jwt"
	cfg.Security.JWTSecret = "0123456789abcdef0123456789abcdef"
	cfg.Security.AdminUsername = "admin"
	cfg.Security.AdminPassword = "local-dev-password"

	srv, _ := newTestServer(t, cfg)

	// Protected endpoint without a token.
	status, envelope := getJSON(t, srv.URL+"/api/v1/users")
	if status != http.StatusUnauthorized {
		t.Fatalf("unauthenticated status = %d", status)
	}
	if envelope.Error.Code != models.ErrCodeUnauthorized {
		t.Errorf("code = %q", envelope.Error.Code)
	}

	// Login with bad credentials.
	body, _ := json.Marshal(map[string]string{"username": "admin", "password": "wrong"})
	resp, err := http.Post(srv.URL+"/api/v1/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("bad login status = %d", resp.StatusCode)
	}

	// Login with the configured credential.
	body, _ = json.Marshal(map[string]string{"username": "admin", "password": "local-dev-password"})
	resp, err = http.Post(srv.URL+"/api/v1/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d", resp.StatusCode)
	}

	var loginEnvelope models.APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&loginEnvelope); err != nil {
		t.Fatal(err)
	}
	var loginData struct {
		Token     string `json:"token"`
		TokenType string `json:"token_type"`
	}
	decodeData(t, loginEnvelope, &loginData)
	if loginData.Token == "" || loginData.TokenType != "Bearer" {
		t.Fatalf("login data = %+v", loginData)
	}

	// Protected endpoint with the token.
	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/users", nil)
	req.Header.Set("Authorization", "Bearer "+loginData.Token)
	authResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	authResp.Body.Close()
	if authResp.StatusCode != http.StatusOK {
		t.Errorf("authenticated status = %d", authResp.StatusCode)
	}
}

func TestLoginRejectsMissingFields(t *testing.T) {
	srv, _ := newTestServer(t, testConfig())

	body, _ := json.Marshal(map[string]string{"username": "admin"})
	resp, err := http.Post(srv.URL+"/api/v1/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var envelope models.APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatal(err)
	}
	if envelope.Error.Code != models.ErrCodeInvalidParameters {
		t.Errorf("code = %q", envelope.Error.Code)
	}
}
