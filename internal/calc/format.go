package calc

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrorDisplay is the display sentinel shown after a failed evaluation.
const ErrorDisplay = "Error"

// editablePattern matches display text that digits may be appended to. It is
// also the acceptance rule for pasted text.
var editablePattern = regexp.MustCompile(`^-?\d*\.?\d*$`)

// IsEditable reports whether s is a plain decimal literal (no exponent, no
// sentinel) that typing may extend.
func IsEditable(s string) bool {
	return editablePattern.MatchString(s)
}

// FormatNumber renders v as the shortest decimal string that parses back to
// v. Magnitudes below 1e-6 or at/above 1e21 use exponent notation.
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}

	abs := math.Abs(v)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(v, 'e', -1, 64)
		mantissa, exp, _ := strings.Cut(s, "e")
		sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
		if digits == "" {
			digits = "0"
		}
		return mantissa + "e" + sign + digits
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParseDisplay converts display text to a number. Text that is not a number
// (the error sentinel, a lone ".") parses as NaN.
func ParseDisplay(s string) float64 {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// Format applies digit grouping to an unformatted display value. Only the
// integer digits are grouped; the sign and the fractional part are kept as-is.
// Feeding an already grouped string back in is not supported.
func Format(display string, useSeparator bool) string {
	if !useSeparator || display == ErrorDisplay {
		return display
	}

	intPart, frac, hasFrac := strings.Cut(display, ".")
	sign := ""
	if strings.HasPrefix(intPart, "-") {
		sign, intPart = "-", intPart[1:]
	}
	if !allDigits(intPart) {
		return display
	}

	out := sign + group(intPart)
	if hasFrac {
		out += "." + frac
	}
	return out
}

func group(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
