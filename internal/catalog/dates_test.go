package catalog

import (
	"testing"
	"time"
)

func TestResolveCell(t *testing.T) {
	cases := []struct {
		name string
		in   Cell
		want string
	}{
		{"day-first text", TextCell("15/03/2024"), "15/03/2024"},
		{"iso text", TextCell("2024-03-15"), "15/03/2024"},
		{"dashed day-first", TextCell("15-03-2024"), "15/03/2024"},
		{"serial number", NumberCell(45000), "15/03/2023"},
		{"serial as text", TextCell("45000"), "15/03/2023"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ResolveCell(tc.in)
			if !ok {
				t.Fatalf("expected %v to resolve", tc.in)
			}
			if FormatDate(got) != tc.want {
				t.Fatalf("got %s, want %s", FormatDate(got), tc.want)
			}
		})
	}

	t.Run("unparseable resolves absent, not error", func(t *testing.T) {
		if _, ok := ResolveCell(TextCell("not-a-date")); ok {
			t.Fatalf("expected absent")
		}
		if _, ok := ResolveCell(NullCell()); ok {
			t.Fatalf("expected absent")
		}
	})

	t.Run("serial epoch is 1899-12-30", func(t *testing.T) {
		got, ok := ResolveCell(NumberCell(1))
		if !ok {
			t.Fatalf("expected resolution")
		}
		want := time.Date(1899, time.December, 31, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Fatalf("got %v, want %v", got, want)
		}
	})
}

func TestResolveSeries(t *testing.T) {
	t.Run("day-first tier wins for the whole series", func(t *testing.T) {
		out := ResolveSeries([]Cell{
			TextCell("15/03/2024"),
			TextCell("garbage"),
			NullCell(),
		})
		if FormatDate(out[0]) != "15/03/2024" {
			t.Fatalf("unexpected first value: %v", out[0])
		}
		if !out[1].IsZero() || !out[2].IsZero() {
			t.Fatalf("failures inside a resolved series must stay absent")
		}
	})

	t.Run("numeric series falls to serial tier", func(t *testing.T) {
		out := ResolveSeries([]Cell{NumberCell(45000), NumberCell(45001)})
		if FormatDate(out[0]) != "15/03/2023" || FormatDate(out[1]) != "16/03/2023" {
			t.Fatalf("unexpected serial resolution: %v", out)
		}
	})

	t.Run("explicit per-cell fallback handles month-first", func(t *testing.T) {
		// 25 cannot be a month, so the day-first tier fails for every cell
		// and the MM/DD/YYYY layout resolves it.
		out := ResolveSeries([]Cell{TextCell("03/25/2024")})
		if FormatDate(out[0]) != "25/03/2024" {
			t.Fatalf("got %s, want 25/03/2024", FormatDate(out[0]))
		}
	})

	t.Run("all failing series resolves absent", func(t *testing.T) {
		out := ResolveSeries([]Cell{TextCell("not-a-date"), TextCell("???")})
		for _, v := range out {
			if !v.IsZero() {
				t.Fatalf("expected absent values, got %v", out)
			}
		}
	})
}
