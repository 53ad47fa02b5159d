package cnpj

import "strings"

// Result is the outcome of Validate.
type Result struct {
	// Valid is true for a CNPJ with matching check digits, or for empty
	// input when empty values are allowed.
	Valid bool
	// Empty is true when the input was empty or whitespace-only.
	Empty bool
	// Value holds the compact or masked CNPJ when Valid and not Empty.
	Value  string
	Scheme Scheme
}

type options struct {
	allowEmpty bool
	formatted  bool
}

// Option configures Validate.
type Option func(*options)

// RejectEmpty makes empty or whitespace-only input invalid.
func RejectEmpty() Option {
	return func(o *options) { o.allowEmpty = false }
}

// Formatted makes a successful Validate return the masked form
// (XX.XXX.XXX/XXXX-XX) instead of the compact one.
func Formatted() Option {
	return func(o *options) { o.formatted = true }
}

// Validate sanitizes candidate and verifies its check digits under the
// numeric or alphanumeric scheme. Empty input is accepted unless
// RejectEmpty is given. Failures carry no reason: wrong length, repeated
// characters and checksum mismatch all produce Valid == false.
func Validate(candidate string, opts ...Option) Result {
	o := options{allowEmpty: true}
	for _, opt := range opts {
		opt(&o)
	}

	if strings.TrimSpace(candidate) == "" {
		return Result{Valid: o.allowEmpty, Empty: true}
	}

	n := Normalize(candidate)
	if !verify(n) {
		return Result{}
	}

	r := Result{Valid: true, Value: n, Scheme: classify(n)}
	if o.formatted {
		r.Value = mask(n)
	}
	return r
}

// IsValid reports whether candidate is a valid, non-empty CNPJ.
func IsValid(candidate string) bool {
	return Validate(candidate, RejectEmpty()).Valid
}
