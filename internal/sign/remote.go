package sign

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/iudanet/apisign/pkg/api"
)

// Remote вычисляет дайджест через локальный демон hashd.
type Remote struct {
	httpClient *http.Client
	baseURL    string
}

// NewRemote создает клиент hashd. baseURL без завершающего слеша,
// например http://127.0.0.1:7391.
func NewRemote(baseURL string) *Remote {
	return &Remote{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			// Демон локальный, долгих ответов не бывает
			Timeout: 5 * time.Second,
		},
	}
}

// MD5UpperHex запрашивает дайджест у демона и проверяет его форму.
func (r *Remote) MD5UpperHex(ctx context.Context, input string) (string, error) {
	var resp api.HashResponse
	err := r.doRequest(ctx, http.MethodPost, "/api/v1/hash", api.HashRequest{Input: input}, &resp)
	if err != nil {
		return "", fmt.Errorf("hash request failed: %w", err)
	}

	if !isUpperHexDigest(resp.Digest) {
		return "", fmt.Errorf("malformed digest from hashd: %q", resp.Digest)
	}

	return resp.Digest, nil
}

// Ping проверяет, что демон запущен и отвечает.
func (r *Remote) Ping(ctx context.Context) error {
	var resp api.HealthResponse
	err := r.doRequest(ctx, http.MethodGet, "/api/v1/health", nil, &resp)
	if err != nil {
		return fmt.Errorf("health request failed: %w", err)
	}

	if resp.Status != "ok" {
		return fmt.Errorf("unexpected health status: %q", resp.Status)
	}

	return nil
}

// doRequest выполняет HTTP запрос к демону
func (r *Remote) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	url := r.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("hashd error (%d): %s", resp.StatusCode, errResp.Error)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// isUpperHexDigest проверяет форму дайджеста: ровно 32 символа 0-9A-F.
func isUpperHexDigest(s string) bool {
	if len(s) != 32 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'A' || c > 'F') {
			return false
		}
	}
	return true
}
