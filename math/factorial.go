package math

import (
	"math/big"

	"github.com/pkg/errors"
)

// MaxInt64Input is the largest n whose factorial fits in an int64.
const MaxInt64Input = 20

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrOverflow        = errors.New("result overflows int64")
)

// Factorial calculates n! with arbitrary precision.
// Negative n yields an error matching ErrInvalidArgument.
func Factorial(n int64) (*big.Int, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "cannot compute factorial of values less than 0: %d", n)
	}

	return fact(n), nil
}

// fact assumes n >= 0.
func fact(n int64) *big.Int {
	if n == 0 {
		return big.NewInt(1)
	}

	return new(big.Int).Mul(big.NewInt(n), fact(n-1))
}

// Int64 is the fixed-width form of Factorial. It refuses n > MaxInt64Input
// with ErrOverflow instead of wrapping around.
func Int64(n int64) (int64, error) {
	if n < 0 {
		return 0, errors.Wrapf(ErrInvalidArgument, "cannot compute factorial of values less than 0: %d", n)
	}
	if n > MaxInt64Input {
		return 0, errors.Wrapf(ErrOverflow, "factorial of %d", n)
	}

	return fact(n).Int64(), nil
}
