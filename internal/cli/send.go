package cli

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"time"

	"github.com/iudanet/apisign/internal/codec"
	"github.com/iudanet/apisign/internal/models"
	"github.com/iudanet/apisign/internal/validation"
)

// runSend подписывает и отправляет запрос. Без -url отправляется текущий
// выбранный пресет, флаги перекрывают его сохраненные значения.
func (c *Cli) runSend(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("send", flag.ContinueOnError)
	fs.SetOutput(c.io)

	var (
		urlFlag     = fs.String("url", "", "endpoint URL (empty = use active preset)")
		appKey      = fs.String("appkey", "", "gateway application key")
		password    = fs.String("password", "", "signing secret (prefer APISIGN_PASSWORD or -ask-password)")
		askPassword = fs.Bool("ask-password", false, "prompt for the signing secret")
		data        = fs.String("data", "", "payload JSON, encoded to base64 before sending")
		dataB64     = fs.String("data-b64", "", "payload as base64, sent as is")
		ver         = fs.String("ver", "", `protocol version (empty = "1")`)
		timestamp   = fs.String("timestamp", "", "fixed timestamp yyyyMMddHHmmss (empty = generated)")
		timeoutMs   = fs.Int("timeout", 0, "send timeout in milliseconds (default from config)")
		groupKey    = fs.String("group", "", "group name or id")
		presetKey   = fs.String("preset", "", "preset name or id")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	// Базовые параметры: явный пресет, иначе текущий выбор, иначе пустые
	var req models.PresetRequest
	switch {
	case *presetKey != "":
		groups := c.service.Groups()
		group, err := resolveGroup(groups, *groupKey)
		if err != nil {
			return err
		}
		preset, err := resolvePreset(groups, group, *presetKey)
		if err != nil {
			return err
		}
		// Явно названный пресет становится выбранным
		if err := c.service.SelectPreset(ctx, group.ID, preset.ID); err != nil {
			return fmt.Errorf("failed to select preset: %w", err)
		}
		req = preset.Request
	case *groupKey != "":
		return fmt.Errorf("-group makes sense only together with -preset")
	case *urlFlag == "":
		_, preset, err := c.service.ActiveRequest()
		if err != nil {
			return err
		}
		req = preset.Request
	}

	if *urlFlag != "" {
		req.URL = *urlFlag
	}
	if *appKey != "" {
		req.AppKey = *appKey
	}
	if *ver != "" {
		req.Ver = *ver
	}
	if *data != "" {
		if !codec.IsValidJSON(*data) {
			c.io.Println("Warning: payload is not valid JSON, sending anyway")
		}
		req.DataRaw = *data
		req.DataB64 = codec.Encode(*data)
	}
	if *dataB64 != "" {
		raw, err := codec.Decode(*dataB64)
		if err != nil {
			return fmt.Errorf("invalid base64 payload: %w", err)
		}
		req.DataB64 = *dataB64
		req.DataRaw = raw
	}

	// Секрет: флаг, интерактивный ввод, сохраненный в пресете, env
	switch {
	case *password != "":
		req.Password = *password
	case *askPassword:
		secret, err := c.io.ReadPassword("Signing secret: ")
		if err != nil {
			return fmt.Errorf("failed to read secret: %w", err)
		}
		req.Password = secret
	case req.Password == "" && c.cfg.Password != "":
		req.Password = c.cfg.Password
	}

	if err := validation.ValidateURL(req.URL); err != nil {
		return err
	}
	if *timestamp != "" {
		if err := validation.ValidateTimestamp(*timestamp); err != nil {
			return err
		}
	}
	timeout := *timeoutMs
	if timeout == 0 {
		timeout = c.cfg.TimeoutMs
	}
	if err := validation.ValidateTimeoutMs(timeout); err != nil {
		return err
	}

	item, err := c.service.Send(ctx, req, *timestamp, time.Duration(timeout)*time.Millisecond)
	if err != nil {
		return fmt.Errorf("send failed: %w", err)
	}

	c.printSendResult(item)
	return nil
}

// printSendResult печатает итог успешной отправки
func (c *Cli) printSendResult(item models.HistoryItem) {
	if item.Status != nil {
		c.io.Printf("Status:    %d %s\n", *item.Status, http.StatusText(*item.Status))
	}
	c.io.Printf("Duration:  %d ms\n", item.DurationMs)
	c.io.Printf("Timestamp: %s\n", item.Summary.Timestamp)
	if item.Summary.Sign != "" {
		c.io.Printf("Sign:      %s\n", item.Summary.Sign)
	} else {
		c.io.Println("Sign:      (request was not signed)")
	}
	c.io.Println()
	c.io.Println(item.ResponseText)
}
