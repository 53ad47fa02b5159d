package cnpj

import "strings"

// Format renders value as XX.XXX.XXX/XXXX-XX. The value is cleaned and
// left-padded with zeros like Compact; check digits are not verified.
// Values longer than 14 characters are returned cleaned but unmasked.
func Format(value string) string {
	c := Compact(value)
	if len(c) != Length {
		return c
	}
	return mask(c)
}

// Compact strips punctuation, uppercases and left-pads value with zeros to
// 14 characters. Empty or whitespace-only input yields "".
func Compact(value string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	c := Normalize(value)
	if len(c) < Length {
		c = strings.Repeat("0", Length-len(c)) + c
	}
	return c
}

// mask expects exactly Length characters.
func mask(c string) string {
	var b strings.Builder
	b.Grow(Length + 4)
	b.WriteString(c[0:2])
	b.WriteByte('.')
	b.WriteString(c[2:5])
	b.WriteByte('.')
	b.WriteString(c[5:8])
	b.WriteByte('/')
	b.WriteString(c[8:12])
	b.WriteByte('-')
	b.WriteString(c[12:14])
	return b.String()
}
