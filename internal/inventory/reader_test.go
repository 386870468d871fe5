package inventory

import (
	"strings"
	"testing"

	pkgerrors "github.com/angelmondragon/cardvault-importer/pkg/errors"
)

const sampleCSV = `name,set,condition,language,finish,altered,quantity,source_id,scryfall_id,price
Lightning Bolt,M10,near_mint,en,normal,false,4,inv-001,id-bolt,1.25
Delver of Secrets,ISD,played,en,foil,false,1,inv-002,id-delver,0.5
`

func TestReadAll(t *testing.T) {
	records, err := ReadAll(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ScryfallID != "id-bolt" || records[1].ScryfallID != "id-delver" {
		t.Fatalf("expected file order preserved, got %+v", records)
	}
	if records[0].Foil || !records[1].Foil {
		t.Fatalf("unexpected foil flags: %+v", records)
	}
	if records[1].UnitPriceCents != 50 {
		t.Fatalf("expected 50 cents, got %d", records[1].UnitPriceCents)
	}
}

func TestReadAll_HeaderOnly(t *testing.T) {
	records, err := ReadAll(strings.NewReader("name,set,condition\n"))
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}

func TestReadAll_Empty(t *testing.T) {
	records, err := ReadAll(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ReadAll on empty input: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}

func TestReadAll_MalformedRowFailsWithLine(t *testing.T) {
	input := "header\nLightning Bolt,M10,near_mint,en,normal,false,not-a-number,inv-001,id-bolt,1.25\n"
	_, err := ReadAll(strings.NewReader(input))
	if err == nil {
		t.Fatal("expected error for malformed quantity")
	}
	if pkgerrors.CodeOf(err) != pkgerrors.CodeMalformedRecord {
		t.Fatalf("expected MALFORMED_RECORD, got %s", pkgerrors.CodeOf(err))
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("expected line number in error, got %q", err.Error())
	}
}

func TestReadFile_MissingFile(t *testing.T) {
	_, err := ReadFile("/nonexistent/collection.csv")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	// An unreadable file is not a malformed row.
	if pkgerrors.CodeOf(err) != pkgerrors.CodeInternal {
		t.Fatalf("expected INTERNAL_ERROR for unreadable file, got %s", pkgerrors.CodeOf(err))
	}
}
