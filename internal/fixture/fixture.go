// Package fixture generates synthetic company registry files for tests and
// local runs.
package fixture

import (
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/cnpjload/internal/model"
	"github.com/gyeh/cnpjload/pkg/cnpj"
)

const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

var (
	states      = []string{"SP", "RJ", "MG", "RS", "pr", "ba", "São Paulo"}
	cities      = []string{"São Paulo", "Rio de Janeiro", "Belo  Horizonte", "Porto Alegre", "Curitiba"}
	words       = []string{"Padaria", "Comércio", "Indústria", "Serviços", "Transportes", "Açaí", "Tecnologia"}
	suffixes    = []string{"LTDA", "S.A.", "ME", "EIRELI"}
	natures     = []string{"206-2", "213-5", "230-5", "2062"}
	openedOnFmt = []string{"20060102", "02/01/2006", "2006-01-02"}
)

// Mix sets the share of each kind of row, in percent. Whatever is left
// after Alphanumeric, Invalid and Empty is numeric.
type Mix struct {
	Alphanumeric int
	Invalid      int
	Empty        int
}

// DefaultMix is used by the mkfixture command.
var DefaultMix = Mix{Alphanumeric: 25, Invalid: 10, Empty: 5}

// Generator produces deterministic registry rows for a seed.
type Generator struct {
	rng *rand.Rand
	mix Mix
}

// NewGenerator returns a Generator seeded with seed.
func NewGenerator(seed uint64, mix Mix) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), mix: mix}
}

// Rows returns n generated rows.
func (g *Generator) Rows(n int) []model.CompanyRow {
	rows := make([]model.CompanyRow, n)
	for i := range rows {
		rows[i] = g.row()
	}
	return rows
}

func (g *Generator) row() model.CompanyRow {
	r := model.CompanyRow{CompanyName: g.name()}

	p := g.rng.IntN(100)
	switch {
	case p < g.mix.Empty:
		r.CNPJ = ""
	case p < g.mix.Empty+g.mix.Invalid:
		r.CNPJ = g.present(corrupt(g.ValidNumeric()))
	case p < g.mix.Empty+g.mix.Invalid+g.mix.Alphanumeric:
		r.CNPJ = g.present(g.ValidAlphanumeric())
	default:
		r.CNPJ = g.present(g.ValidNumeric())
	}

	if g.rng.IntN(2) == 0 {
		trade := words[g.rng.IntN(len(words))]
		r.TradeName = &trade
	}
	nature := natures[g.rng.IntN(len(natures))]
	r.LegalNature = &nature
	state := states[g.rng.IntN(len(states))]
	r.State = &state
	city := cities[g.rng.IntN(len(cities))]
	r.City = &city

	opened := time.Date(1970+g.rng.IntN(55), time.Month(1+g.rng.IntN(12)), 1+g.rng.IntN(28), 0, 0, 0, 0, time.UTC).
		Format(openedOnFmt[g.rng.IntN(len(openedOnFmt))])
	r.OpenedOn = &opened
	capital := float64(g.rng.IntN(10_000_000)) / 100
	r.Capital = &capital
	return r
}

// ValidNumeric returns a compact numeric CNPJ with correct check digits.
func (g *Generator) ValidNumeric() string {
	for {
		var b strings.Builder
		for i := 0; i < 8; i++ {
			b.WriteByte(alphabet[g.rng.IntN(10)])
		}
		fmt.Fprintf(&b, "%04d", 1+g.rng.IntN(3))
		if v, ok := complete(b.String()); ok {
			return v
		}
	}
}

// ValidAlphanumeric returns a compact alphanumeric CNPJ with correct check
// digits and at least one letter in the base.
func (g *Generator) ValidAlphanumeric() string {
	for {
		base := make([]byte, 12)
		for i := range base {
			base[i] = alphabet[g.rng.IntN(len(alphabet))]
		}
		base[g.rng.IntN(12)] = alphabet[10+g.rng.IntN(26)]
		if v, ok := complete(string(base)); ok {
			return v
		}
	}
}

func complete(base string) (string, bool) {
	dv, err := cnpj.CheckDigits(base)
	if err != nil {
		return "", false
	}
	v := base + dv
	return v, cnpj.IsValid(v)
}

// corrupt bumps the last check digit so the value no longer validates.
func corrupt(v string) string {
	last := v[len(v)-1]
	return v[:len(v)-1] + string('0'+(last-'0'+1)%10)
}

// present renders v the way it might appear in a hand-maintained sheet.
func (g *Generator) present(v string) string {
	switch g.rng.IntN(4) {
	case 0:
		return cnpj.Format(v)
	case 1:
		return strings.ToLower(v)
	case 2:
		return " " + cnpj.Format(v) + " "
	default:
		return v
	}
}

func (g *Generator) name() string {
	n := 1 + g.rng.IntN(3)
	parts := make([]string, 0, n+1)
	for i := 0; i < n; i++ {
		parts = append(parts, words[g.rng.IntN(len(words))])
	}
	parts = append(parts, suffixes[g.rng.IntN(len(suffixes))])
	return strings.Join(parts, " ")
}

// WriteParquet writes rows to path as a registry Parquet file.
func WriteParquet(path string, rows []model.CompanyRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create fixture: %w", err)
	}
	w := parquet.NewGenericWriter[model.CompanyRow](f)
	if _, err := w.Write(rows); err != nil {
		f.Close()
		return fmt.Errorf("write fixture rows: %w", err)
	}
	if err := w.Close(); err != nil {
		f.Close()
		return fmt.Errorf("close fixture writer: %w", err)
	}
	return f.Close()
}
