package sign

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// Local вычисляет дайджест в процессе через crypto/md5.
// Никогда не возвращает ошибку.
type Local struct{}

func (Local) MD5UpperHex(_ context.Context, input string) (string, error) {
	sum := md5.Sum([]byte(input))
	return strings.ToUpper(hex.EncodeToString(sum[:])), nil
}
