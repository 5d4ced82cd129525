// Package sign вычисляет подпись запроса: MD5 от конкатенации
// timestamp+data+password, 32 символа hex в верхнем регистре.
// Алгоритм зафиксирован протоколом шлюза.
package sign

import "context"

//go:generate moq -out hasher_mock.go . Hasher

// Hasher вычисляет MD5 дайджест строки в верхнем регистре.
// Реализации: Local (crypto/md5 в процессе) и Remote (демон hashd).
type Hasher interface {
	MD5UpperHex(ctx context.Context, input string) (string, error)
}
