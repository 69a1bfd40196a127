// Package fair - схема commit-reveal для сидов: генерация и коммитмент сидов,
// развертка потока байт через HMAC и взвешенный маппинг символов.
package fair

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// Commit - SHA-256 сида в hex нижнего регистра
func Commit(seed string) string {
	h := sha256.Sum256([]byte(seed))
	return hex.EncodeToString(h[:])
}

// VerifyCommitment проверяет, что commitment - это SHA-256 сида
func VerifyCommitment(seed, commitment string) bool {
	return subtle.ConstantTimeCompare(
		[]byte(Commit(seed)),
		[]byte(commitment),
	) == 1
}

// HMACSHA256 - 32 байта HMAC-SHA256 от msg по ключу key
func HMACSHA256(key, msg []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(msg)
	return mac.Sum(nil)
}
