package tools

import (
	"math/big"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/pkg/errors"

	fmath "github.com/vadiminshakov/factorial/math"
)

// DefaultMaxInput bounds n unless SetMaxInput says otherwise.
const DefaultMaxInput int64 = 10000

var ErrInputTooLarge = errors.New("input exceeds configured limit")

var maxInput atomic.Int64

func init() {
	maxInput.Store(DefaultMaxInput)
}

// SetMaxInput changes the largest n the tools will compute. Values <= 0
// restore DefaultMaxInput.
func SetMaxInput(n int64) {
	if n <= 0 {
		n = DefaultMaxInput
	}
	maxInput.Store(n)
}

// MaxInput reports the current limit.
func MaxInput() int64 {
	return maxInput.Load()
}

// Compute applies the input limit and delegates to math.Factorial.
func Compute(n int64) (*big.Int, error) {
	if limit := MaxInput(); n > limit {
		return nil, errors.Wrapf(ErrInputTooLarge, "n = %d, limit %d", n, limit)
	}

	return fmath.Factorial(n)
}

// factorial computes n! for args["n"].
func factorial(args map[string]interface{}) (string, error) {
	raw, ok := args["n"]
	if !ok {
		return "", errors.New("parameter 'n' is required")
	}

	n, err := toInt64(raw)
	if err != nil {
		return "", err
	}

	v, err := Compute(n)
	if err != nil {
		return "", err
	}

	return v.String(), nil
}

func toInt64(v interface{}) (int64, error) {
	switch x := v.(type) {
	case int:
		return int64(x), nil
	case int64:
		return x, nil
	case float64:
		if x != float64(int64(x)) {
			return 0, errors.Errorf("parameter 'n' must be an integer, got %v", x)
		}
		return int64(x), nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64)
		if err != nil {
			return 0, errors.Wrapf(err, "parameter 'n' must be an integer, got %q", x)
		}
		return n, nil
	default:
		return 0, errors.Errorf("parameter 'n' must be an integer, got %T", v)
	}
}
