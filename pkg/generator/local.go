package generator

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

// maxDraws bounds the redraw loop. Trivial patterns are a vanishing
// fraction of the 10^8 candidate space, so hitting this limit means the
// entropy source is broken.
const maxDraws = 10000

// ErrMaxDraws is returned when the generator cannot produce a
// non-trivial number within the redraw budget.
var ErrMaxDraws = errors.New("exceeded redraw budget without a non-trivial number")

// LocalNumberGenerator produces random 9-digit Brazilian mobile local
// numbers. Every number starts with the mandatory ninth digit 9 and is
// never a trivial pattern.
type LocalNumberGenerator struct{}

func NewLocalNumberGenerator() *LocalNumberGenerator {
	return &LocalNumberGenerator{}
}

// Generate draws a fresh local number from the platform entropy source.
func (g *LocalNumberGenerator) Generate() (string, error) {
	for i := 0; i < maxDraws; i++ {
		tail, err := randomDigits(8)
		if err != nil {
			return "", err
		}
		seq := "9" + tail
		if !IsTrivial(seq) {
			return seq, nil
		}
	}
	return "", ErrMaxDraws
}

// randomDigits returns n cryptographically secure decimal digits.
func randomDigits(n int) (string, error) {
	b := make([]byte, n)
	for i := range b {
		num, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("reading entropy: %w", err)
		}
		b[i] = byte('0' + num.Int64())
	}
	return string(b), nil
}
