package models

import (
	"time"

	"github.com/google/uuid"
)

// CollectionSummary is the single valuation document written at the end of a
// successful run. It is never updated; the next run deletes and replaces it.
type CollectionSummary struct {
	ID              uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	TotalCards      int       `gorm:"column:total_cards;not null"`
	TotalValueCents int64     `gorm:"column:total_value_cents;not null"`
	GeneratedAt     time.Time `gorm:"column:generated_at;not null"`
}
