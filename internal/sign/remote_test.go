package sign

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/iudanet/apisign/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewRemote проверяет создание клиента hashd
func TestNewRemote(t *testing.T) {
	remote := NewRemote("http://127.0.0.1:7391/")

	assert.Equal(t, "http://127.0.0.1:7391", remote.baseURL)
	assert.NotNil(t, remote.httpClient)
	assert.Equal(t, 5*time.Second, remote.httpClient.Timeout)
}

// TestRemote_MD5UpperHex проверяет успешный запрос дайджеста
func TestRemote_MD5UpperHex(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/v1/hash", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req api.HashRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		require.NoError(t, err)
		assert.Equal(t, "20240115093000eyJhIjoxfQ==p@ss", req.Input)

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(api.HashResponse{
			Digest: "652CBFCDD797E41B1428770556BD48DC",
		})
	}))
	defer server.Close()

	remote := NewRemote(server.URL)
	got, err := remote.MD5UpperHex(context.Background(), "20240115093000eyJhIjoxfQ==p@ss")

	require.NoError(t, err)
	assert.Equal(t, "652CBFCDD797E41B1428770556BD48DC", got)
}

// TestRemote_MD5UpperHex_MalformedDigest: дайджест не по форме отвергается
func TestRemote_MD5UpperHex_MalformedDigest(t *testing.T) {
	tests := []struct {
		name   string
		digest string
	}{
		{name: "lowercase hex", digest: "652cbfcdd797e41b1428770556bd48dc"},
		{name: "too short", digest: "652CBF"},
		{name: "not hex", digest: "ZZZZBFCDD797E41B1428770556BD48DC"},
		{name: "empty", digest: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				_ = json.NewEncoder(w).Encode(api.HashResponse{Digest: tt.digest})
			}))
			defer server.Close()

			remote := NewRemote(server.URL)
			_, err := remote.MD5UpperHex(context.Background(), "input")

			require.Error(t, err)
			assert.Contains(t, err.Error(), "malformed digest")
		})
	}
}

// TestRemote_MD5UpperHex_ServerError проверяет обработку ошибок демона
func TestRemote_MD5UpperHex_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: "invalid request body"})
	}))
	defer server.Close()

	remote := NewRemote(server.URL)
	_, err := remote.MD5UpperHex(context.Background(), "input")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "hashd error (400): invalid request body")
}

// TestRemote_Ping проверяет health check демона
func TestRemote_Ping(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantErrMsg string
		statusCode int
	}{
		{
			name:       "ok",
			statusCode: http.StatusOK,
			body:       `{"status":"ok"}`,
		},
		{
			name:       "unexpected status value",
			statusCode: http.StatusOK,
			body:       `{"status":"degraded"}`,
			wantErrMsg: "unexpected health status",
		},
		{
			name:       "http error",
			statusCode: http.StatusInternalServerError,
			body:       `{"error":"boom"}`,
			wantErrMsg: "hashd error (500)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			err := NewRemote(server.URL).Ping(context.Background())
			if tt.wantErrMsg == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErrMsg)
		})
	}
}

// TestRemote_ContextCancellation проверяет отмену запроса через контекст
func TestRemote_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	remote := NewRemote(server.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := remote.MD5UpperHex(ctx, "input")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "context deadline exceeded")
}
