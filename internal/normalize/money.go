package normalize

import "math"

// ReaisToCents converts a nullable float64 BRL amount to nullable int64 centavos.
// Uses math.Round to avoid truncation bias.
func ReaisToCents(v *float64) *int64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return nil
	}
	c := int64(math.Round(*v * 100))
	return &c
}
