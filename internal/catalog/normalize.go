package catalog

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"mostruario_digital/internal/domain/entities"
)

// accentFolder strips combining diacritical marks: NFD decomposition,
// remove the marks, recompose. Shared and safe for concurrent use.
var accentFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Clean is the null-safety gate applied before any other transform. Null
// cells, NaN numbers and the textual sentinels "nan", "None" and "NaT"
// all collapse to the empty string; anything else becomes its trimmed
// string form.
func Clean(c Cell) string {
	switch c.Kind {
	case KindNull:
		return ""
	case KindNumber:
		if math.IsNaN(c.Num) {
			return ""
		}
		return formatNumber(c.Num)
	default:
		return CleanString(c.Text)
	}
}

func CleanString(s string) string {
	s = strings.TrimSpace(s)
	switch s {
	case "", "nan", "None", "NaT":
		return ""
	}
	return s
}

// CanonicalSupplierID normalizes the inconsistently recorded supplier
// identifiers into one join key: "123", "123.0" and a 123.0-typed numeric
// cell all map to "123". Non-integral numbers keep their shortest decimal
// form; non-numeric ids pass through trimmed.
func CanonicalSupplierID(c Cell) string {
	if c.Kind == KindNumber {
		if math.IsNaN(c.Num) {
			return ""
		}
		return canonicalNumericID(c.Num)
	}
	s := strings.TrimSpace(c.Text)
	if c.Kind == KindNull || s == "" {
		return ""
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	return canonicalNumericID(f)
}

func canonicalNumericID(f float64) string {
	r := math.Round(f)
	if math.Abs(f-r) < 1e-9 {
		return strconv.FormatInt(int64(r), 10)
	}
	return formatNumber(f)
}

// formatNumber renders the shortest decimal representation, no trailing
// zeros or decimal point.
func formatNumber(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FoldAccents removes diacritical marks so that "indisponível" and
// "indisponivel" compare equal after lowercasing.
func FoldAccents(s string) string {
	out, _, err := transform.String(accentFolder, s)
	if err != nil {
		return s
	}
	return out
}

// SearchKey is the canonical comparison form for search and status
// matching: accent-folded and lowercased.
func SearchKey(s string) string {
	return strings.ToLower(FoldAccents(s))
}

// StatusColorFor maps a free-text status to its presentation color token.
func StatusColorFor(status string) string {
	switch SearchKey(strings.TrimSpace(status)) {
	case "indisponivel":
		return entities.StatusColorUnavailable
	case "suspenso":
		return entities.StatusColorSuspended
	case "ativo":
		return entities.StatusColorActive
	default:
		return entities.StatusColorNeutral
	}
}

// StaticPath rewrites an arbitrary source-filesystem path into its
// web-servable form: everything from the "static/" segment onward, with a
// single leading slash. Paths without a "static/" segment pass through
// unchanged, a documented lossy behavior for files outside the servable
// tree.
func StaticPath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return ""
	}
	p = strings.ReplaceAll(p, "\\", "/")
	idx := strings.Index(p, "static/")
	if idx < 0 {
		return p
	}
	rel := p[idx:]
	if !strings.HasPrefix(rel, "/") {
		return "/" + rel
	}
	return rel
}
