package fair

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"unicode/utf8"

	"fluttering_riches/internal/model"
)

const (
	// SeedAlphabet - символы, из которых собираются сиды
	SeedAlphabet = "0123456789abcdefABCDEF"

	DefaultSecretSeedLength = 64
	DefaultClientSeedLength = 20
)

// GenerateSeed - случайный сид заданной длины из SeedAlphabet
func GenerateSeed(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("%w: seed length %d", model.ErrMalformedSeedMaterial, length)
	}
	alphabetLen := big.NewInt(int64(len(SeedAlphabet)))
	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("read random seed: %w", err)
		}
		b[i] = SeedAlphabet[n.Int64()]
	}
	return string(b), nil
}

// ValidateSeed отклоняет сиды, которые нельзя захэшировать как UTF-8 текст
func ValidateSeed(seed string) error {
	if seed == "" {
		return fmt.Errorf("%w: empty seed", model.ErrMalformedSeedMaterial)
	}
	if !utf8.ValidString(seed) {
		return fmt.Errorf("%w: seed is not valid UTF-8", model.ErrMalformedSeedMaterial)
	}
	return nil
}
