package cli

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/apisign/internal/models"
	"github.com/iudanet/apisign/internal/service"
)

// okSendFunc возвращает заглушку Send с заданным HTTP статусом
func okSendFunc(status int) func(ctx context.Context, req models.PresetRequest, forcedTimestamp string, timeout time.Duration) (models.HistoryItem, error) {
	return func(ctx context.Context, req models.PresetRequest, forcedTimestamp string, timeout time.Duration) (models.HistoryItem, error) {
		st := status
		return models.HistoryItem{
			ID:         "h1",
			Status:     &st,
			OK:         st >= 200 && st <= 299,
			DurationMs: 42,
			Summary: models.RequestSummary{
				Timestamp: "20240115093000",
				Sign:      "652CBFCDD797E41B1428770556BD48DC",
			},
			ResponseText: `{"result":"ok"}`,
		}, nil
	}
}

func TestCli_runSend_AdHoc(t *testing.T) {
	ctx := context.Background()

	mockIO := newTestIO()
	mockService := &service.ServiceMock{SendFunc: okSendFunc(200)}
	cli := &Cli{io: mockIO, service: mockService, cfg: testConfig()}

	err := cli.runSend(ctx, []string{
		"-url", "https://gw.example.com/api",
		"-appkey", "demo",
		"-password", "p@ss",
		"-data", `{"a":1}`,
	})
	require.NoError(t, err)

	calls := mockService.SendCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "https://gw.example.com/api", calls[0].Req.URL)
	assert.Equal(t, "demo", calls[0].Req.AppKey)
	assert.Equal(t, "p@ss", calls[0].Req.Password)
	assert.Equal(t, `{"a":1}`, calls[0].Req.DataRaw)
	assert.Equal(t, "eyJhIjoxfQ==", calls[0].Req.DataB64)
	assert.Equal(t, "", calls[0].ForcedTimestamp)
	assert.Equal(t, 30*time.Second, calls[0].Timeout, "default timeout comes from config")

	output := printfOutput(mockIO)
	assert.Contains(t, output, "200 OK")
	assert.Contains(t, output, "652CBFCDD797E41B1428770556BD48DC")
	assert.Contains(t, output, "20240115093000")
}

func TestCli_runSend_UsesActivePreset(t *testing.T) {
	groups := testGroups()
	preset := groups.Groups[0].Presets[0]

	mockService := &service.ServiceMock{
		ActiveRequestFunc: func() (models.GroupItem, models.PresetItem, error) {
			return groups.Groups[0], preset, nil
		},
		SendFunc: okSendFunc(200),
	}
	cli := &Cli{io: newTestIO(), service: mockService, cfg: testConfig()}

	err := cli.runSend(context.Background(), nil)
	require.NoError(t, err)

	calls := mockService.SendCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, preset.Request, calls[0].Req)
}

func TestCli_runSend_NoSelection(t *testing.T) {
	mockService := &service.ServiceMock{
		ActiveRequestFunc: func() (models.GroupItem, models.PresetItem, error) {
			return models.GroupItem{}, models.PresetItem{}, service.ErrNoSelection
		},
	}
	cli := &Cli{io: newTestIO(), service: mockService, cfg: testConfig()}

	err := cli.runSend(context.Background(), nil)
	require.ErrorIs(t, err, service.ErrNoSelection)
	assert.Empty(t, mockService.SendCalls())
}

func TestCli_runSend_PresetFlagSelects(t *testing.T) {
	mockService := &service.ServiceMock{
		GroupsFunc: func() models.StorageGroups { return testGroups() },
		SelectPresetFunc: func(ctx context.Context, groupID, presetID string) error {
			return nil
		},
		SendFunc: okSendFunc(200),
	}
	cli := &Cli{io: newTestIO(), service: mockService, cfg: testConfig()}

	err := cli.runSend(context.Background(), []string{"-preset", "refund"})
	require.NoError(t, err)

	selects := mockService.SelectPresetCalls()
	require.Len(t, selects, 1)
	assert.Equal(t, "g1", selects[0].GroupID)
	assert.Equal(t, "p2", selects[0].PresetID)

	sends := mockService.SendCalls()
	require.Len(t, sends, 1)
	assert.Equal(t, "https://gw.example.com/refund", sends[0].Req.URL)
}

func TestCli_runSend_ForcedTimestamp(t *testing.T) {
	mockService := &service.ServiceMock{SendFunc: okSendFunc(200)}
	cli := &Cli{io: newTestIO(), service: mockService, cfg: testConfig()}

	err := cli.runSend(context.Background(), []string{
		"-url", "https://example.com",
		"-timestamp", "20240115093000",
	})
	require.NoError(t, err)

	calls := mockService.SendCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "20240115093000", calls[0].ForcedTimestamp)
}

func TestCli_runSend_DataB64(t *testing.T) {
	mockService := &service.ServiceMock{SendFunc: okSendFunc(200)}
	cli := &Cli{io: newTestIO(), service: mockService, cfg: testConfig()}

	err := cli.runSend(context.Background(), []string{
		"-url", "https://example.com",
		"-data-b64", "eyJhIjoxfQ==",
	})
	require.NoError(t, err)

	calls := mockService.SendCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "eyJhIjoxfQ==", calls[0].Req.DataB64)
	assert.Equal(t, `{"a":1}`, calls[0].Req.DataRaw, "raw form is restored from base64")
}

func TestCli_runSend_InvalidDataB64(t *testing.T) {
	mockService := &service.ServiceMock{SendFunc: okSendFunc(200)}
	cli := &Cli{io: newTestIO(), service: mockService, cfg: testConfig()}

	err := cli.runSend(context.Background(), []string{
		"-url", "https://example.com",
		"-data-b64", "!!!not-base64!!!",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid base64")
	assert.Empty(t, mockService.SendCalls())
}

func TestCli_runSend_Validation(t *testing.T) {
	tests := []struct {
		name   string
		errMsg string
		args   []string
	}{
		{
			name:   "invalid url scheme",
			args:   []string{"-url", "ftp://example.com"},
			errMsg: "url scheme",
		},
		{
			name:   "invalid forced timestamp",
			args:   []string{"-url", "https://example.com", "-timestamp", "2024-01-15"},
			errMsg: "14 digits",
		},
		{
			name:   "timeout below range",
			args:   []string{"-url", "https://example.com", "-timeout", "500"},
			errMsg: "timeout",
		},
		{
			name:   "timeout above range",
			args:   []string{"-url", "https://example.com", "-timeout", "700000"},
			errMsg: "timeout",
		},
		{
			name:   "group without preset",
			args:   []string{"-group", "Payments"},
			errMsg: "-preset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &service.ServiceMock{
				GroupsFunc: func() models.StorageGroups { return testGroups() },
			}
			cli := &Cli{io: newTestIO(), service: mockService, cfg: testConfig()}

			err := cli.runSend(context.Background(), tt.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
			assert.Empty(t, mockService.SendCalls(), "nothing should be sent")
		})
	}
}

func TestCli_runSend_InvalidJSONWarns(t *testing.T) {
	mockIO := newTestIO()
	mockService := &service.ServiceMock{SendFunc: okSendFunc(200)}
	cli := &Cli{io: mockIO, service: mockService, cfg: testConfig()}

	err := cli.runSend(context.Background(), []string{
		"-url", "https://example.com",
		"-data", "{oops",
	})
	require.NoError(t, err, "invalid JSON is a warning, not an error")

	require.Len(t, mockService.SendCalls(), 1)
	assert.True(t, containsLine(printedLines(mockIO), "not valid JSON"))
}

func TestCli_runSend_AskPassword(t *testing.T) {
	mockIO := newTestIO()
	mockIO.ReadPasswordFunc = func(prompt string) (string, error) {
		return "prompted-secret", nil
	}
	mockService := &service.ServiceMock{SendFunc: okSendFunc(200)}
	cli := &Cli{io: mockIO, service: mockService, cfg: testConfig()}

	err := cli.runSend(context.Background(), []string{
		"-url", "https://example.com",
		"-ask-password",
	})
	require.NoError(t, err)

	require.Len(t, mockIO.ReadPasswordCalls(), 1)
	calls := mockService.SendCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "prompted-secret", calls[0].Req.Password)
}

func TestCli_runSend_PasswordPrecedence(t *testing.T) {
	t.Run("env config fills empty secret", func(t *testing.T) {
		cfg := testConfig()
		cfg.Password = "env-secret"
		mockService := &service.ServiceMock{SendFunc: okSendFunc(200)}
		cli := &Cli{io: newTestIO(), service: mockService, cfg: cfg}

		err := cli.runSend(context.Background(), []string{"-url", "https://example.com"})
		require.NoError(t, err)
		assert.Equal(t, "env-secret", mockService.SendCalls()[0].Req.Password)
	})

	t.Run("flag beats env config", func(t *testing.T) {
		cfg := testConfig()
		cfg.Password = "env-secret"
		mockService := &service.ServiceMock{SendFunc: okSendFunc(200)}
		cli := &Cli{io: newTestIO(), service: mockService, cfg: cfg}

		err := cli.runSend(context.Background(), []string{
			"-url", "https://example.com",
			"-password", "flag-secret",
		})
		require.NoError(t, err)
		assert.Equal(t, "flag-secret", mockService.SendCalls()[0].Req.Password)
	})

	t.Run("stored preset secret beats env config", func(t *testing.T) {
		groups := testGroups()
		cfg := testConfig()
		cfg.Password = "env-secret"
		mockService := &service.ServiceMock{
			ActiveRequestFunc: func() (models.GroupItem, models.PresetItem, error) {
				return groups.Groups[0], groups.Groups[0].Presets[0], nil
			},
			SendFunc: okSendFunc(200),
		}
		cli := &Cli{io: newTestIO(), service: mockService, cfg: cfg}

		err := cli.runSend(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, "p@ss", mockService.SendCalls()[0].Req.Password)
	})
}

func TestCli_runSend_NotSignedNote(t *testing.T) {
	mockIO := newTestIO()
	mockService := &service.ServiceMock{
		SendFunc: func(ctx context.Context, req models.PresetRequest, forcedTimestamp string, timeout time.Duration) (models.HistoryItem, error) {
			st := 200
			return models.HistoryItem{Status: &st, OK: true, Summary: models.RequestSummary{Timestamp: "20240115093000"}}, nil
		},
	}
	cli := &Cli{io: mockIO, service: mockService, cfg: testConfig()}

	err := cli.runSend(context.Background(), []string{"-url", "https://example.com"})
	require.NoError(t, err)
	assert.True(t, containsLine(printedLines(mockIO), "not signed"))
}

func TestCli_runSend_TransportError(t *testing.T) {
	mockService := &service.ServiceMock{
		SendFunc: func(ctx context.Context, req models.PresetRequest, forcedTimestamp string, timeout time.Duration) (models.HistoryItem, error) {
			return models.HistoryItem{}, errors.New("request failed: connection refused")
		},
	}
	cli := &Cli{io: newTestIO(), service: mockService, cfg: testConfig()}

	err := cli.runSend(context.Background(), []string{"-url", "https://example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "send failed")
	assert.Contains(t, err.Error(), "connection refused")
}
