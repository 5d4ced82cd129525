package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid https url",
			url:     "https://gw.example.com/api/v2/send",
			wantErr: false,
		},
		{
			name:    "valid http url with port",
			url:     "http://10.0.0.5:8080/gateway",
			wantErr: false,
		},
		{
			name:    "invalid - empty",
			url:     "",
			wantErr: true,
			errMsg:  "url cannot be empty",
		},
		{
			name:    "invalid - no scheme",
			url:     "gw.example.com/api",
			wantErr: true,
			errMsg:  "url scheme must be http or https",
		},
		{
			name:    "invalid - ftp scheme",
			url:     "ftp://gw.example.com/api",
			wantErr: true,
			errMsg:  "url scheme must be http or https",
		},
		{
			name:    "invalid - scheme only",
			url:     "https://",
			wantErr: true,
			errMsg:  "url host cannot be empty",
		},
		{
			name:    "invalid - control character",
			url:     "https://gw.example.com/\x7f",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.url)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.errMsg != "" {
				assert.Contains(t, err.Error(), tt.errMsg)
			}
		})
	}
}

func TestValidateTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		ts      string
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid timestamp",
			ts:      "20240115093000",
			wantErr: false,
		},
		{
			name:    "valid new year midnight",
			ts:      "20250101000000",
			wantErr: false,
		},
		{
			name:    "invalid - empty",
			ts:      "",
			wantErr: true,
			errMsg:  "timestamp cannot be empty",
		},
		{
			name:    "invalid - too short",
			ts:      "20240115",
			wantErr: true,
			errMsg:  "exactly 14 digits",
		},
		{
			name:    "invalid - too long",
			ts:      "202401150930001",
			wantErr: true,
			errMsg:  "exactly 14 digits",
		},
		{
			name:    "invalid - non-digits",
			ts:      "2024-01-15 09:",
			wantErr: true,
			errMsg:  "only digits",
		},
		{
			name:    "invalid - month 13",
			ts:      "20241315093000",
			wantErr: true,
			errMsg:  "not a valid date",
		},
		{
			name:    "invalid - february 30",
			ts:      "20240230093000",
			wantErr: true,
			errMsg:  "not a valid date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTimestamp(tt.ts)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.errMsg != "" {
				assert.Contains(t, err.Error(), tt.errMsg)
			}
		})
	}
}

func TestValidateTimeoutMs(t *testing.T) {
	tests := []struct {
		name      string
		timeoutMs int
		wantErr   bool
	}{
		{name: "lower bound", timeoutMs: 1000, wantErr: false},
		{name: "upper bound", timeoutMs: 600000, wantErr: false},
		{name: "typical value", timeoutMs: 30000, wantErr: false},
		{name: "below lower bound", timeoutMs: 999, wantErr: true},
		{name: "zero", timeoutMs: 0, wantErr: true},
		{name: "negative", timeoutMs: -5, wantErr: true},
		{name: "above upper bound", timeoutMs: 600001, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTimeoutMs(tt.timeoutMs)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "simple name", input: "Staging", wantErr: false},
		{name: "name with spaces", input: "Prod EU gateway", wantErr: false},
		{name: "cyrillic name", input: "Тестовый стенд", wantErr: false},
		{name: "empty", input: "", wantErr: true},
		{name: "whitespace only", input: "   \t", wantErr: true},
		{name: "too long", input: strings.Repeat("x", 129), wantErr: true},
		{name: "max length ok", input: strings.Repeat("x", 128), wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
