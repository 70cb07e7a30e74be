package ui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in    string
		group bool
		want  string
	}{
		{"3628800", false, "3628800"},
		{"1", true, "1"},
		{"120", true, "120"},
		{"1000", true, "1,000"},
		{"3628800", true, "3,628,800"},
		{"2432902008176640000", true, "2,432,902,008,176,640,000"},
		{"-1234", true, "-1,234"},
		{"1234.5678", true, "1,234.5678"},
		{"abc", true, "abc"},
	}

	for _, tc := range tests {
		require.Equal(t, tc.want, FormatNumber(tc.in, tc.group), "FormatNumber(%q, %v)", tc.in, tc.group)
	}
}

func TestFormatResultWithoutColor(t *testing.T) {
	SetColor(false)
	t.Cleanup(func() { SetColor(true) })

	require.Equal(t, "5! = 120", FormatResult("5!", "120", false))
	require.Equal(t, "10! = 3,628,800", FormatResult("10!", "3628800", true))
	require.Equal(t, "❌ boom", Error("boom"))
}
