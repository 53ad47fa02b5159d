package cnpj

import (
	"errors"
	"regexp"
	"strings"
)

const (
	// Length is the number of characters in a normalized CNPJ.
	Length = 14

	baseLength = 12
)

// ErrInvalidBase is returned by CheckDigits when the base is not 12
// alphanumeric characters.
var ErrInvalidBase = errors.New("cnpj: base must have 12 alphanumeric characters")

var nonAlphanumeric = regexp.MustCompile(`[^A-Za-z0-9]`)

var (
	firstWeights  = [...]int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	secondWeights = [...]int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// Normalize strips everything outside [0-9A-Za-z] and uppercases the result.
// Empty or whitespace-only input yields "".
func Normalize(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	return strings.ToUpper(nonAlphanumeric.ReplaceAllString(raw, ""))
}

// CheckDigits computes the two check digits for a 12-character base.
// Punctuation in base is ignored.
func CheckDigits(base string) (string, error) {
	b := Normalize(base)
	if len(b) != baseLength {
		return "", ErrInvalidBase
	}
	return checkDigits(b), nil
}

// checkDigits expects an already normalized 12-character base.
func checkDigits(base string) string {
	values := make([]int, 0, baseLength+1)
	for i := 0; i < baseLength; i++ {
		values = append(values, charValue(base[i]))
	}

	first := checkDigit(values, firstWeights[:])
	values = append(values, first)
	second := checkDigit(values, secondWeights[:])

	return string([]byte{byte('0' + first), byte('0' + second)})
}

// charValue maps '0'-'9' to 0-9 and 'A'-'Z' to 17-42.
func charValue(c byte) int {
	return int(c) - '0'
}

func checkDigit(values, weights []int) int {
	sum := 0
	for i, v := range values {
		sum += v * weights[i]
	}
	if r := sum % 11; r >= 2 {
		return 11 - r
	}
	return 0
}

// verify reports whether n, a normalized value, is a well-formed CNPJ with
// matching check digits.
func verify(n string) bool {
	if len(n) != Length || allSame(n) {
		return false
	}
	return checkDigits(n[:baseLength]) == n[baseLength:]
}

func allSame(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}
