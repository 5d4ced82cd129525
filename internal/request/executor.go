// Package request собирает и отправляет подписанный multipart/form-data
// запрос на шлюз.
package request

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/iudanet/apisign/internal/models"
	"github.com/iudanet/apisign/internal/sign"
)

// Executor отправляет запросы пресета на шлюз.
type Executor struct {
	client *http.Client
	signer *sign.Signer
}

// NewExecutor создает исполнитель. Таймаут задается контекстом на каждый
// вызов Execute, у клиента собственного таймаута нет.
func NewExecutor(signer *sign.Signer) *Executor {
	return &Executor{
		signer: signer,
		client: &http.Client{
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				return nil
			},
		},
	}
}

// Execution результат одной отправки, дошедшей до чтения HTTP ответа.
type Execution struct {
	ResponseText string `json:"response_text"` // ResponseText тело ответа целиком
	Timestamp    string `json:"timestamp"`     // Timestamp фактически отправленная метка времени
	Sign         string `json:"sign"`          // Sign фактически отправленная подпись ("" = без подписи)
	DurationMs   int64  `json:"duration_ms"`   // DurationMs от отправки до полного чтения тела
	Status       *int   `json:"status"`        // Status HTTP статус ответа
	OK           bool   `json:"ok"`            // OK true только для статусов 2xx
}

// Execute строит multipart форму, подписывает и отправляет запрос.
//
// Метка времени: forcedTimestamp имеет приоритет над сохраненной в пресете,
// если обе пусты — генерируется из текущего локального времени.
// Полезная нагрузка берется из req.DataB64 как есть: исполнитель никогда не
// перекодирует ее из DataRaw, устаревший DataB64 уйдет на провод устаревшим.
//
// Ответ сервера с любым статусом — успешное выполнение (OK=false вне 2xx,
// тело сохраняется). Ошибка возвращается только когда ответ не был получен
// или дочитан: DNS, отказ соединения, таймаут.
func (e *Executor) Execute(ctx context.Context, req *models.PresetRequest, forcedTimestamp string, timeout time.Duration) (*Execution, error) {
	timestamp := forcedTimestamp
	if timestamp == "" {
		timestamp = req.Timestamp
	}
	if timestamp == "" {
		timestamp = models.NewTimestamp()
	}

	ver := req.Ver
	if ver == "" {
		ver = "1"
	}

	signature := e.signer.Sign(ctx, timestamp, req.DataB64, req.Password)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	// Порядок полей формы зафиксирован протоколом шлюза
	fields := []struct {
		name  string
		value string
	}{
		{name: "appkey", value: req.AppKey},
		{name: "timestamp", value: timestamp},
		{name: "data", value: req.DataB64},
		{name: "sign", value: signature},
		{name: "ver", value: ver},
	}
	for _, field := range fields {
		if err := writer.WriteField(field.name, field.value); err != nil {
			return nil, fmt.Errorf("failed to write form field %q: %w", field.name, err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize form: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, req.URL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	start := time.Now()

	resp, err := e.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	status := resp.StatusCode
	return &Execution{
		ResponseText: string(respBody),
		Timestamp:    timestamp,
		Sign:         signature,
		DurationMs:   time.Since(start).Round(time.Millisecond).Milliseconds(),
		Status:       &status,
		OK:           status >= 200 && status < 300,
	}, nil
}
