package normalize

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"

	"github.com/gyeh/cnpjload/internal/model"
)

// FileHash computes the hex-encoded SHA-256 of the file at path.
func FileHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open file for hash: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash file: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// ContentHash computes a SHA-256 over the normalized company fields of s.
// Batch, file and row position are excluded, so the same company written
// with different punctuation or in another file hashes the same.
func ContentHash(s *model.StagingRow) []byte {
	h := sha256.New()
	writeField(h, &s.CNPJ)
	writeField(h, &s.CompanyName)
	writeField(h, s.TradeName)
	writeField(h, s.LegalNature)
	writeField(h, s.State)
	writeField(h, s.City)

	var opened *string
	if s.OpenedOn != nil {
		v := s.OpenedOn.Format("2006-01-02")
		opened = &v
	}
	writeField(h, opened)

	buf := make([]byte, 9)
	if s.CapitalCents != nil {
		buf[0] = 1
		binary.LittleEndian.PutUint64(buf[1:], uint64(*s.CapitalCents))
	}
	h.Write(buf)
	return h.Sum(nil)
}

// writeField writes a presence byte then the value and a null terminator,
// so nil and "" hash differently.
func writeField(h hash.Hash, v *string) {
	if v == nil {
		h.Write([]byte{0})
		return
	}
	h.Write([]byte{1})
	io.WriteString(h, *v)
	h.Write([]byte{0})
}
