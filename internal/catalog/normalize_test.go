package catalog

import (
	"math"
	"testing"

	"mostruario_digital/internal/domain/entities"
)

func TestClean(t *testing.T) {
	cases := []struct {
		name string
		in   Cell
		want string
	}{
		{"null cell", NullCell(), ""},
		{"nan number", NumberCell(math.NaN()), ""},
		{"text sentinel nan", TextCell("nan"), ""},
		{"text sentinel None", TextCell("None"), ""},
		{"text sentinel NaT", TextCell(" NaT "), ""},
		{"trims text", TextCell("  Couro  "), "Couro"},
		{"integral number", NumberCell(7), "7"},
		{"fractional number", NumberCell(7.5), "7.5"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Clean(tc.in); got != tc.want {
				t.Fatalf("Clean(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestCanonicalSupplierID(t *testing.T) {
	t.Run("integer text, float text and numeric cell agree", func(t *testing.T) {
		want := "123"
		for _, c := range []Cell{TextCell("123"), TextCell("123.0"), NumberCell(123.0)} {
			if got := CanonicalSupplierID(c); got != want {
				t.Fatalf("CanonicalSupplierID(%v) = %q, want %q", c, got, want)
			}
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		for _, raw := range []string{"123", "123.0", "12.50", "ABC-7", "", "  9 "} {
			once := CanonicalSupplierID(TextCell(raw))
			twice := CanonicalSupplierID(TextCell(once))
			if once != twice {
				t.Fatalf("not idempotent for %q: %q then %q", raw, once, twice)
			}
		}
	})

	t.Run("non-integral keeps shortest decimal", func(t *testing.T) {
		if got := CanonicalSupplierID(TextCell("12.50")); got != "12.5" {
			t.Fatalf("expected 12.5, got %q", got)
		}
	})

	t.Run("alphanumeric passes through trimmed", func(t *testing.T) {
		if got := CanonicalSupplierID(TextCell(" ABC-7 ")); got != "ABC-7" {
			t.Fatalf("expected ABC-7, got %q", got)
		}
	})
}

func TestFoldAccents(t *testing.T) {
	if got := SearchKey("Indisponível"); got != "indisponivel" {
		t.Fatalf("expected indisponivel, got %q", got)
	}
	if got := FoldAccents("Composição"); got != "Composicao" {
		t.Fatalf("expected Composicao, got %q", got)
	}
}

func TestStatusColorFor(t *testing.T) {
	cases := map[string]string{
		"Indisponível": entities.StatusColorUnavailable,
		"indisponivel": entities.StatusColorUnavailable,
		"SUSPENSO":     entities.StatusColorSuspended,
		"Ativo":        entities.StatusColorActive,
		"em análise":   entities.StatusColorNeutral,
		"":             entities.StatusColorNeutral,
	}
	for status, want := range cases {
		if got := StatusColorFor(status); got != want {
			t.Fatalf("StatusColorFor(%q) = %q, want %q", status, got, want)
		}
	}
}

func TestStaticPath(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{`C:\catalogo\static/imagens/sofa.jpg`, "/static/imagens/sofa.jpg"},
		{"/srv/app/static/img/a.png", "/static/img/a.png"},
		{"/tmp/fora-da-arvore/a.png", "/tmp/fora-da-arvore/a.png"},
		{"   ", ""},
	}
	for _, tc := range cases {
		if got := StaticPath(tc.in); got != tc.want {
			t.Fatalf("StaticPath(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
