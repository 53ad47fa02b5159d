package cnpj

import (
	"errors"
	"fmt"
	"strings"
)

// Scheme identifies which family of CNPJ a value belongs to.
type Scheme int

const (
	Unknown Scheme = iota
	// Numeric is the legacy all-digit CNPJ.
	Numeric
	// Alphanumeric admits uppercase letters in the 12 base characters.
	Alphanumeric
)

// ErrUnknownScheme is returned by ParseScheme for unrecognised names.
var ErrUnknownScheme = errors.New("cnpj: unknown scheme")

var schemeNames = map[Scheme]string{
	Unknown:      "unknown",
	Numeric:      "numeric",
	Alphanumeric: "alphanumeric",
}

func (s Scheme) String() string {
	if name, ok := schemeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Scheme(%d)", int(s))
}

// ParseScheme maps "numeric" or "alphanumeric" (case-insensitive) to a Scheme.
func ParseScheme(name string) (Scheme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "numeric":
		return Numeric, nil
	case "alphanumeric":
		return Alphanumeric, nil
	}
	return Unknown, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
}

// Classify normalizes s and reports its scheme. Values that are not 14
// characters long after normalization are Unknown.
func Classify(s string) Scheme {
	n := Normalize(s)
	if len(n) != Length {
		return Unknown
	}
	return classify(n)
}

func classify(n string) Scheme {
	for i := 0; i < baseLength; i++ {
		if c := n[i]; c >= 'A' && c <= 'Z' {
			return Alphanumeric
		}
	}
	return Numeric
}
