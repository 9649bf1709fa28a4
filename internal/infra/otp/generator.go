// Package otp draws event code values.
package otp

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"ledger/config"
	"ledger/internal/domain/service"
	"ledger/internal/errors"
)

type numericGenerator struct {
	digits int
	space  *big.Int
	rand   io.Reader
}

// NewGenerator returns a generator of ledger.codeLength digit codes.
func NewGenerator(cfg *config.Config) service.CodeGenerator {
	digits := config.MinCodeLength
	if cfg != nil && cfg.Ledger != nil && cfg.Ledger.CodeLength > digits {
		digits = cfg.Ledger.CodeLength
	}

	return newNumericGenerator(digits, rand.Reader)
}

func newNumericGenerator(digits int, source io.Reader) *numericGenerator {
	return &numericGenerator{
		digits: digits,
		space:  new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil),
		rand:   source,
	}
}

// Generate draws uniformly from [0, 10^digits) and zero-pads the result.
func (g *numericGenerator) Generate() (string, error) {
	n, err := rand.Int(g.rand, g.space)
	if err != nil {
		return "", errors.Wrap(err, "draw event code")
	}

	return fmt.Sprintf("%0*d", g.digits, n), nil
}
