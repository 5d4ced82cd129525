// Package codec кодирует полезную нагрузку запроса между текстовым
// и проводным Base64 представлением.
package codec

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// Encode кодирует текст в Base64 (стандартный алфавит, с паддингом).
// Пустая строка остается пустой строкой.
func Encode(s string) string {
	if s == "" {
		return ""
	}
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// Decode декодирует Base64 обратно в текст. Пустая строка допустима
// и дает пустой результат. Некорректный вход возвращает ошибку с
// диагностикой, многобайтовые UTF-8 последовательности восстанавливаются
// без потерь.
func Decode(s string) (string, error) {
	if s == "" {
		return "", nil
	}

	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return "", fmt.Errorf("failed to decode base64: %w", err)
	}

	return string(data), nil
}

// IsValidJSON сообщает, является ли строка полным корректным JSON
// документом. Значение не сохраняется, выполняется только проверка.
// Пустая строка считается некорректной.
func IsValidJSON(s string) bool {
	if s == "" {
		return false
	}
	return json.Valid([]byte(s))
}
