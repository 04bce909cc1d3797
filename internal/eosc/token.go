package eosc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// TokenSource exchanges a long-lived AAI refresh credential for short-lived
// bearer tokens used by the provider portal. The token is cached between
// calls; Invalidate drops the cache so the next call fetches a fresh one
// (the portal client does this once after a 401).
type TokenSource struct {
	tokenURL     string
	refreshToken string
	clientID     string
	scope        string
	httpClient   *http.Client

	mu    sync.Mutex
	token string
}

// NewTokenSource creates a token source for the given identity endpoint.
func NewTokenSource(tokenURL, refreshToken, clientID, scope string, timeout time.Duration) *TokenSource {
	return &TokenSource{
		tokenURL:     tokenURL,
		refreshToken: refreshToken,
		clientID:     clientID,
		scope:        scope,
		httpClient:   &http.Client{Timeout: timeout},
	}
}

// Token returns a bearer token, fetching one if none is cached.
func (t *TokenSource) Token(ctx context.Context) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.token != "" {
		return t.token, nil
	}

	token, err := t.fetch(ctx)
	if err != nil {
		return "", err
	}
	t.token = token
	return token, nil
}

// Invalidate drops the cached token.
func (t *TokenSource) Invalidate() {
	t.mu.Lock()
	t.token = ""
	t.mu.Unlock()
}

func (t *TokenSource) fetch(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", t.refreshToken)
	form.Set("client_id", t.clientID)
	form.Set("scope", t.scope)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token exchange: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", newStatusError("token exchange", resp.StatusCode, body)
	}

	var payload struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("token exchange: decoding response: %w", err)
	}
	if payload.AccessToken == "" {
		return "", fmt.Errorf("token exchange: response carries no access token")
	}
	return payload.AccessToken, nil
}
