package sign

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestLocal_MD5UpperHex проверяет локальную реализацию на известных векторах
func TestLocal_MD5UpperHex(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: "D41D8CD98F00B204E9800998ECF8427E",
		},
		{
			name:     "hello",
			input:    "hello",
			expected: "5D41402ABC4B2A76B9719D911017C592",
		},
		{
			name:     "abc",
			input:    "abc",
			expected: "900150983CD24FB0D6963F7D28E17F72",
		},
	}

	local := Local{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := local.MD5UpperHex(context.Background(), tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// TestSigner_Sign проверяет формулу подписи на зафиксированном векторе
func TestSigner_Sign(t *testing.T) {
	signer := NewSigner(nil, testLogger())

	got := signer.Sign(context.Background(), "20240115093000", "eyJhIjoxfQ==", "p@ss")

	assert.Equal(t, "652CBFCDD797E41B1428770556BD48DC", got)
}

// TestSigner_Sign_EmptyComponents: подпись не вычисляется, если хотя бы
// один компонент пуст
func TestSigner_Sign_EmptyComponents(t *testing.T) {
	tests := []struct {
		name      string
		timestamp string
		data      string
		password  string
	}{
		{name: "no timestamp", timestamp: "", data: "eyJhIjoxfQ==", password: "p@ss"},
		{name: "no data", timestamp: "20240115093000", data: "", password: "p@ss"},
		{name: "no password", timestamp: "20240115093000", data: "eyJhIjoxfQ==", password: ""},
		{name: "all empty", timestamp: "", data: "", password: ""},
	}

	signer := NewSigner(nil, testLogger())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := signer.Sign(context.Background(), tt.timestamp, tt.data, tt.password)
			assert.Empty(t, got)
		})
	}
}

// TestSigner_NativePreferred: при живом провайдере подпись берется у него
func TestSigner_NativePreferred(t *testing.T) {
	native := &HasherMock{
		MD5UpperHexFunc: func(ctx context.Context, input string) (string, error) {
			return "652CBFCDD797E41B1428770556BD48DC", nil
		},
	}

	signer := NewSigner(native, testLogger())
	got := signer.Sign(context.Background(), "20240115093000", "eyJhIjoxfQ==", "p@ss")

	assert.Equal(t, "652CBFCDD797E41B1428770556BD48DC", got)
	assert.True(t, signer.Native())

	// Провайдер получает именно конкатенацию timestamp+data+password
	calls := native.MD5UpperHexCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "20240115093000eyJhIjoxfQ==p@ss", calls[0].Input)
}

// TestSigner_FallbackOnNativeError: ошибка провайдера не ломает подпись,
// результат совпадает с локальным MD5, деградация необратима
func TestSigner_FallbackOnNativeError(t *testing.T) {
	native := &HasherMock{
		MD5UpperHexFunc: func(ctx context.Context, input string) (string, error) {
			return "", errors.New("hashd exploded")
		},
	}

	signer := NewSigner(native, testLogger())

	got := signer.Sign(context.Background(), "20240115093000", "eyJhIjoxfQ==", "p@ss")
	assert.Equal(t, "652CBFCDD797E41B1428770556BD48DC", got)
	assert.False(t, signer.Native())

	// Второй вызов уже не трогает отказавший провайдер
	got = signer.Sign(context.Background(), "20240115093000", "eyJhIjoxfQ==", "secret")
	assert.Equal(t, "73C98F0652469629488F74D8503171F7", got)
	assert.Len(t, native.MD5UpperHexCalls(), 1)
}

// TestDetect проверяет стартовую проверку доступности hashd
func TestDetect(t *testing.T) {
	t.Run("hashd alive", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "GET", r.Method)
			assert.Equal(t, "/api/v1/health", r.URL.Path)
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		}))
		defer server.Close()

		signer := Detect(context.Background(), server.URL, testLogger())
		assert.True(t, signer.Native())
	})

	t.Run("hashd down", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close() // демон недоступен

		signer := Detect(context.Background(), server.URL, testLogger())
		assert.False(t, signer.Native())

		// Подпись все равно работает
		got := signer.Sign(context.Background(), "20240115093000", "eyJhIjoxfQ==", "p@ss")
		assert.Equal(t, "652CBFCDD797E41B1428770556BD48DC", got)
	})

	t.Run("not configured", func(t *testing.T) {
		signer := Detect(context.Background(), "", testLogger())
		assert.False(t, signer.Native())
	})
}
