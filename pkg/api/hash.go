package api

// HashRequest представляет запрос на вычисление MD5 дайджеста
type HashRequest struct {
	Input string `json:"input"` // входная строка целиком (timestamp+data+password)
}

// HashResponse представляет ответ с вычисленным дайджестом
type HashResponse struct {
	Digest string `json:"digest"` // 32 символа hex в верхнем регистре
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status string `json:"status"` // "ok" если демон жив
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
