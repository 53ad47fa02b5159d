// Package cnpj validates and formats Brazilian CNPJ identifiers.
//
// Both the legacy all-digit CNPJ and the alphanumeric CNPJ are supported.
// Each character of the 12-character base contributes its ASCII code minus
// 48 to a mod-11 weighted sum, so digits keep their face value and letters
// map to 17 through 42. The two trailing check digits are always decimal.
//
// All functions are pure and safe for concurrent use.
package cnpj
