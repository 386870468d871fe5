package importer

import (
	"testing"
	"time"

	"github.com/angelmondragon/cardvault-importer/pkg/db/models"
)

func TestRunTotalsCountsRecordsAndWeighsValue(t *testing.T) {
	var totals RunTotals

	first := make([]models.Card, 5)
	for i := range first {
		first[i] = models.Card{UnitPriceCents: 100, Quantity: 2}
	}
	second := make([]models.Card, 3)
	for i := range second {
		second[i] = models.Card{UnitPriceCents: 200, Quantity: 1}
	}

	totals.AddBatch(first)
	totals.AddBatch(second)

	summary := totals.Summary(time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC))
	if summary.TotalCards != 8 {
		t.Fatalf("expected 8 records counted (not quantity-weighted), got %d", summary.TotalCards)
	}
	wantValue := int64(5*100*2 + 3*200*1)
	if summary.TotalValueCents != wantValue {
		t.Fatalf("expected value %d, got %d", wantValue, summary.TotalValueCents)
	}
	if summary.GeneratedAt.IsZero() {
		t.Fatal("expected generatedAt to be set")
	}
	if summary.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Fatal("expected summary id to be generated")
	}
}

func TestRunTotalsEmptyBatch(t *testing.T) {
	var totals RunTotals
	totals.AddBatch(nil)

	summary := totals.Summary(time.Now())
	if summary.TotalCards != 0 || summary.TotalValueCents != 0 {
		t.Fatalf("expected zero totals, got %+v", summary)
	}
}
