package utils

import (
	"strconv"
	"strings"
)

// FloatFormat is a strconv verb/precision pair used by every text writer.
type FloatFormat struct {
	Verb byte
	Prec int
}

var (
	// LegacyFormat reproduces default iostream output: 0.1, 1e-07, 1.23457e+06
	LegacyFormat = FloatFormat{Verb: 'g', Prec: 6}
	// ScientificFormat reproduces std::scientific: 1.000000e+00
	ScientificFormat = FloatFormat{Verb: 'e', Prec: 6}
	// ExactFormat is the shortest text that parses back to the same bits
	ExactFormat = FloatFormat{Verb: 'g', Prec: -1}
)

// Exact keeps the verb and drops the precision limit.
func (f FloatFormat) Exact() FloatFormat {
	return FloatFormat{Verb: f.Verb, Prec: -1}
}

func (f FloatFormat) Append(dst []byte, val float64) []byte {
	return strconv.AppendFloat(dst, val, f.Verb, f.Prec, 64)
}

func (f FloatFormat) Format(val float64) string {
	return string(f.Append(nil, val))
}

// ParseFloat accepts Fortran style D exponents (1.5D+02) along with Go syntax.
func ParseFloat(s string) (float64, error) {
	if strings.ContainsAny(s, "dD") {
		s = strings.NewReplacer("d", "e", "D", "e").Replace(s)
	}
	return strconv.ParseFloat(s, 64)
}
