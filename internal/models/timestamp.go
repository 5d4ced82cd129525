package models

import "time"

// TimestampLayout формат метки времени подписи: yyyyMMddHHmmss, локальное время.
const TimestampLayout = "20060102150405"

// NewTimestamp возвращает текущее локальное время в формате подписи.
func NewTimestamp() string {
	return time.Now().Format(TimestampLayout)
}
