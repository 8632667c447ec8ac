package catalog

import "testing"

func TestUnify_ProductsSheetSelection(t *testing.T) {
	t.Run("matches PRODUTOS case and whitespace insensitively", func(t *testing.T) {
		wb := Workbook{Sheets: []Sheet{
			{Name: "SUP7", Rows: []Row{{"FORNECEDOR": TextCell("7")}}},
			{Name: "  produtos ", Rows: []Row{{"PRODUTO": TextCell("Sofa X")}}},
		}}
		u := Unify(wb)
		if len(u.Products) != 1 || Clean(u.Products[0][ColProduct]) != "Sofa X" {
			t.Fatalf("unexpected products table: %+v", u.Products)
		}
		if len(u.Finishes) != 1 {
			t.Fatalf("expected one finish row, got %d", len(u.Finishes))
		}
	})

	t.Run("falls back to the first sheet", func(t *testing.T) {
		wb := Workbook{Sheets: []Sheet{
			{Name: "Planilha1", Rows: []Row{{"PRODUTO": TextCell("Mesa Y")}}},
			{Name: "SUP2", Rows: []Row{{"FORNECEDOR": TextCell("2")}}},
		}}
		u := Unify(wb)
		if len(u.Products) != 1 || Clean(u.Products[0][ColProduct]) != "Mesa Y" {
			t.Fatalf("first sheet should be the products table: %+v", u.Products)
		}
	})
}

func TestUnify_HeaderNormalization(t *testing.T) {
	wb := Workbook{Sheets: []Sheet{
		{Name: "PRODUTOS", Rows: []Row{{" produto ": TextCell("Sofa X"), "Marca": TextCell("Acme")}}},
	}}
	u := Unify(wb)
	row := u.Products[0]
	if Clean(row[ColProduct]) != "Sofa X" || Clean(row[ColBrand]) != "Acme" {
		t.Fatalf("headers not normalized: %+v", row)
	}
}

func TestUnify_FillDown(t *testing.T) {
	wb := Workbook{Sheets: []Sheet{
		{Name: "PRODUTOS", Rows: []Row{
			{"PRODUTO": TextCell("A"), "MARCA": TextCell("Acme"), "FORNECEDOR": NumberCell(7)},
			{"PRODUTO": NullCell()},
			{"PRODUTO": TextCell("  ")},
			{"PRODUTO": TextCell("B")},
		}},
	}}
	u := Unify(wb)

	want := []string{"A", "A", "A", "B"}
	for i, w := range want {
		if got := Clean(u.Products[i][ColProduct]); got != w {
			t.Fatalf("row %d: got %q, want %q", i, got, w)
		}
	}
	// MARCA and FORNECEDOR propagate over rows that omit the column.
	if Clean(u.Products[2][ColBrand]) != "Acme" {
		t.Fatalf("brand did not fill down: %+v", u.Products[2])
	}
	if Clean(u.Products[3][ColSupplierKey]) != "7" {
		t.Fatalf("supplier key not derived from filled column: %+v", u.Products[3])
	}
}

func TestUnify_SupplierKeyDerivation(t *testing.T) {
	t.Run("from FORNECEDOR with float typing", func(t *testing.T) {
		wb := Workbook{Sheets: []Sheet{
			{Name: "PRODUTOS", Rows: []Row{{"PRODUTO": TextCell("X"), "FORNECEDOR": NumberCell(7.0)}}},
			{Name: "SUP7", Rows: []Row{{"FORNECEDOR": TextCell("7"), "ACABAMENTO": TextCell("Couro")}}},
		}}
		u := Unify(wb)
		if Clean(u.Products[0][ColSupplierKey]) != "7" || Clean(u.Finishes[0][ColSupplierKey]) != "7" {
			t.Fatalf("join keys disagree: %+v vs %+v", u.Products[0], u.Finishes[0])
		}
	})

	t.Run("falls back to a header containing FORNECEDOR", func(t *testing.T) {
		wb := Workbook{Sheets: []Sheet{
			{Name: "PRODUTOS", Rows: []Row{{"PRODUTO": TextCell("X")}}},
			{Name: "SUP9", Rows: []Row{{"COD FORNECEDOR": TextCell("9.0")}}},
		}}
		u := Unify(wb)
		if Clean(u.Finishes[0][ColSupplierKey]) != "9" {
			t.Fatalf("fallback supplier column not used: %+v", u.Finishes[0])
		}
	})
}

func TestUnify_ConcatenatesNonEmptySheets(t *testing.T) {
	wb := Workbook{Sheets: []Sheet{
		{Name: "PRODUTOS", Rows: []Row{{"PRODUTO": TextCell("X")}}},
		{Name: "SUP1", Rows: []Row{{"FORNECEDOR": TextCell("1"), "ACABAMENTO": TextCell("Linho")}}},
		{Name: "Vazia"},
		{Name: "SUP2", Rows: []Row{{"FORNECEDOR": TextCell("2"), "STATUS": TextCell("Ativo")}}},
	}}
	u := Unify(wb)
	if len(u.Finishes) != 2 {
		t.Fatalf("expected 2 finish rows, got %d", len(u.Finishes))
	}
	// Column union: a column absent in one sheet reads as a null cell.
	if c := ValueByAlias(u.Finishes[0], "STATUS"); !c.IsNull() {
		t.Fatalf("expected null STATUS on SUP1 row, got %+v", c)
	}
}

func TestValueByAlias(t *testing.T) {
	row := Row{
		"TIPO_ACABAMENTO": TextCell("Revestimento"),
		"COMPOSICAO":      NullCell(),
	}
	if got := Clean(FinishField(row, "category")); got != "Revestimento" {
		t.Fatalf("alias resolution failed: %q", got)
	}
	if c := FinishField(row, "composition"); !c.IsNull() {
		t.Fatalf("null-valued candidate must be skipped, got %+v", c)
	}
	if c := FinishField(row, "status"); !c.IsNull() {
		t.Fatalf("missing column must behave as null, got %+v", c)
	}
}
