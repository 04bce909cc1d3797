package eosc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIsCached(t *testing.T) {
	fetches := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches++
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		assert.Equal(t, "my-refresh", r.PostForm.Get("refresh_token"))
		assert.Equal(t, "my-client", r.PostForm.Get("client_id"))
		assert.Equal(t, "openid email profile", r.PostForm.Get("scope"))
		w.Write([]byte(`{"access_token":"bearer-1"}`))
	}))
	defer server.Close()

	tokens := NewTokenSource(server.URL, "my-refresh", "my-client", "openid email profile", 5*time.Second)

	first, err := tokens.Token(context.Background())
	require.NoError(t, err)
	second, err := tokens.Token(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "bearer-1", first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, fetches, "second call must be served from cache")
}

func TestInvalidateForcesRefetch(t *testing.T) {
	fetches := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches++
		if fetches == 1 {
			w.Write([]byte(`{"access_token":"bearer-1"}`))
			return
		}
		w.Write([]byte(`{"access_token":"bearer-2"}`))
	}))
	defer server.Close()

	tokens := NewTokenSource(server.URL, "my-refresh", "my-client", "openid", 5*time.Second)

	first, err := tokens.Token(context.Background())
	require.NoError(t, err)
	tokens.Invalidate()
	second, err := tokens.Token(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "bearer-1", first)
	assert.Equal(t, "bearer-2", second)
	assert.Equal(t, 2, fetches)
}

func TestTokenExchangeFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
	}))
	defer server.Close()

	tokens := NewTokenSource(server.URL, "expired", "my-client", "openid", 5*time.Second)
	_, err := tokens.Token(context.Background())
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, statusErr.Status)
}

func TestTokenExchangeEmptyToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	tokens := NewTokenSource(server.URL, "my-refresh", "my-client", "openid", 5*time.Second)
	_, err := tokens.Token(context.Background())
	assert.Error(t, err)
}
