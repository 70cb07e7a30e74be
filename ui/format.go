package ui

import (
	"strings"
)

// FormatNumber optionally inserts thousands separators into a decimal
// number string. Signs and fractional parts are preserved; anything that is
// not a plain number is returned unchanged.
func FormatNumber(s string, group bool) string {
	if !group {
		return s
	}

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	intPart, frac, hasFrac := strings.Cut(s, ".")
	if intPart == "" || strings.Trim(intPart, "0123456789") != "" {
		return sign + s
	}

	var b strings.Builder
	b.WriteString(sign)
	lead := len(intPart) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(intPart[:lead])
	for i := lead; i < len(intPart); i += 3 {
		b.WriteByte(',')
		b.WriteString(intPart[i : i+3])
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}

// FormatResult renders "expr = value" for REPL output.
func FormatResult(expr, value string, group bool) string {
	return Dim(expr+" =") + " " + BrightWhite(FormatNumber(value, group))
}
