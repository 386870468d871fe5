package importer

import (
	"time"

	"github.com/angelmondragon/cardvault-importer/pkg/db/models"
	"github.com/google/uuid"
)

// RunTotals accumulates the collection-wide counters for one run. The card
// counter is the number of enriched records, not quantity-weighted; value is
// quantity-weighted. Both only ever grow and are read once, at run end.
type RunTotals struct {
	totalCards      int
	totalValueCents int64
}

func (t *RunTotals) AddBatch(cards []models.Card) {
	t.totalCards += len(cards)
	for _, card := range cards {
		t.totalValueCents += card.TotalValueCents()
	}
}

func (t *RunTotals) Summary(generatedAt time.Time) models.CollectionSummary {
	return models.CollectionSummary{
		ID:              uuid.New(),
		TotalCards:      t.totalCards,
		TotalValueCents: t.totalValueCents,
		GeneratedAt:     generatedAt,
	}
}
