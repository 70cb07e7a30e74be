package math

import (
	"math/big"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestFactorial(t *testing.T) {
	testCases := []struct {
		input    int64
		expected string
	}{
		{0, "1"},
		{1, "1"},
		{2, "2"},
		{3, "6"},
		{4, "24"},
		{5, "120"},
		{10, "3628800"},
		{20, "2432902008176640000"},
		{21, "51090942171709440000"},
		{25, "15511210043330985984000000"},
	}

	for _, tc := range testCases {
		result, err := Factorial(tc.input)
		if err != nil {
			t.Fatalf("Factorial(%d) returned error: %v", tc.input, err)
		}
		if result.String() != tc.expected {
			t.Errorf("Factorial(%d) = %s; expected %s", tc.input, result, tc.expected)
		}
	}
}

func TestFactorialRecurrence(t *testing.T) {
	prev, err := Factorial(0)
	if err != nil {
		t.Fatal(err)
	}

	for n := int64(1); n <= 60; n++ {
		cur, err := Factorial(n)
		if err != nil {
			t.Fatalf("Factorial(%d) returned error: %v", n, err)
		}
		want := new(big.Int).Mul(big.NewInt(n), prev)
		if cur.Cmp(want) != 0 {
			t.Fatalf("Factorial(%d) = %s; expected %d * %s", n, cur, n, prev)
		}
		prev = cur
	}
}

func TestFactorialNegative(t *testing.T) {
	for _, n := range []int64{-1, -2, -100} {
		result, err := Factorial(n)
		if err == nil {
			t.Fatalf("Factorial(%d) = %s; expected error", n, result)
		}
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Factorial(%d) error %v does not match ErrInvalidArgument", n, err)
		}
	}

	_, err := Factorial(-1)
	if !strings.Contains(err.Error(), "-1") {
		t.Errorf("error message %q does not mention the input", err.Error())
	}
}

func TestFactorialIdempotent(t *testing.T) {
	first, _ := Factorial(12)
	first.SetInt64(0)

	second, _ := Factorial(12)
	if second.String() != "479001600" {
		t.Errorf("Factorial(12) = %s after mutating an earlier result", second)
	}
}

func TestInt64(t *testing.T) {
	testCases := []struct {
		input    int64
		expected int64
	}{
		{0, 1},
		{1, 1},
		{5, 120},
		{10, 3628800},
		{20, 2432902008176640000},
	}

	for _, tc := range testCases {
		result, err := Int64(tc.input)
		if err != nil {
			t.Fatalf("Int64(%d) returned error: %v", tc.input, err)
		}
		if result != tc.expected {
			t.Errorf("Int64(%d) = %d; expected %d", tc.input, result, tc.expected)
		}
	}
}

func TestInt64Errors(t *testing.T) {
	if _, err := Int64(MaxInt64Input + 1); !errors.Is(err, ErrOverflow) {
		t.Errorf("Int64(%d) error = %v; expected ErrOverflow", MaxInt64Input+1, err)
	}
	if _, err := Int64(-3); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Int64(-3) error = %v; expected ErrInvalidArgument", err)
	}
}
