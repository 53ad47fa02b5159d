package normalize

import (
	"strings"
	"time"
)

// Date formats found in registry extracts. The federal open-data dumps use
// YYYYMMDD; spreadsheets exported in Brazil use DD/MM/YYYY.
var dateFormats = []string{
	"20060102",
	"2006-01-02",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2006/01/02",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05",
}

// ParseDate attempts to parse a date string in multiple common formats.
// Returns nil if the input is empty, unparseable, or the all-zero
// placeholder "00000000".
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" || s == "00000000" {
		return nil
	}
	for _, fmt := range dateFormats {
		if t, err := time.Parse(fmt, s); err == nil {
			return &t
		}
	}
	return nil
}
