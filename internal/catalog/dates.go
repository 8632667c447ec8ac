package catalog

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Supplier sheets are authored independently with no enforced date format:
// the same physical column may mix "15/03/2024" text, ISO text and raw
// spreadsheet serial numbers. Resolution is three-tiered, evaluated per
// column first and per cell as the last resort. A value that matches
// nothing resolves to absent, never an error.

// serialEpoch is the spreadsheet day-zero (1899-12-30), which already
// absorbs the historical 1900 leap-year bug of that convention.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// PresentationLayout is the single output format for resolved dates.
const PresentationLayout = "02/01/2006"

// dayFirstLayouts back the first tier: the catalog's preferred dd/mm
// reading. Unpadded layout digits also accept zero-padded values.
var dayFirstLayouts = []string{
	"2/1/2006",
	"2-1-2006",
	"2006-1-2",
	"2/1/2006 15:04:05",
	"2006-1-2 15:04:05",
}

// explicitLayouts back the per-cell fallback tier, in priority order:
// DD/MM/YYYY, YYYY-MM-DD, DD-MM-YYYY, MM/DD/YYYY, YYYY/MM/DD.
var explicitLayouts = []string{
	"2/1/2006",
	"2006-1-2",
	"2-1-2006",
	"1/2/2006",
	"2006/1/2",
}

// ResolveSeries resolves one column of cells into calendar dates. The
// zero time marks an unresolved cell. Strategy, first tier with any hit
// wins for the whole series:
//  1. day-first calendar parse of the text values
//  2. numeric values as day offsets from the serial epoch
//  3. per-cell parse against the explicit layout list
func ResolveSeries(cells []Cell) []time.Time {
	out := make([]time.Time, len(cells))

	hit := false
	for i, c := range cells {
		if t, ok := parseDayFirst(Clean(c)); ok {
			out[i] = t
			hit = true
		}
	}
	if hit {
		return out
	}

	for i, c := range cells {
		if days, ok := numericValue(c); ok {
			out[i] = serialDate(days)
			hit = true
		}
	}
	if hit {
		return out
	}

	for i, c := range cells {
		out[i] = parseExplicit(Clean(c))
	}
	return out
}

// ResolveCell resolves a single value as a one-element series.
func ResolveCell(c Cell) (time.Time, bool) {
	t := ResolveSeries([]Cell{c})[0]
	return t, !t.IsZero()
}

// FormatDate renders a resolved date for presentation; absent dates render
// as the empty string.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(PresentationLayout)
}

func parseDayFirst(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dayFirstLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseExplicit(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range explicitLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func numericValue(c Cell) (float64, bool) {
	switch c.Kind {
	case KindNumber:
		if math.IsNaN(c.Num) {
			return 0, false
		}
		return c.Num, true
	case KindText:
		f, err := strconv.ParseFloat(strings.TrimSpace(c.Text), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// serialDate converts a day-count offset (fractional days carry the time
// of day) from the serial epoch.
func serialDate(days float64) time.Time {
	whole := math.Floor(days)
	frac := days - whole
	return serialEpoch.
		AddDate(0, 0, int(whole)).
		Add(time.Duration(math.Round(frac * float64(24*time.Hour))))
}
