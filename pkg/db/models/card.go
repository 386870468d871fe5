package models

import (
	"time"

	"github.com/google/uuid"
)

// Card is one enriched inventory row. Every enrichment field is populated
// before a card is ever written; partially enriched rows never reach the
// database.
type Card struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Foil           bool      `gorm:"column:foil;not null"`
	Quantity       int       `gorm:"column:quantity;not null"`
	SourceID       string    `gorm:"column:source_id;not null"`
	ScryfallID     string    `gorm:"column:scryfall_id;not null"`
	UnitPriceCents int       `gorm:"column:unit_price_cents;not null"`

	Name    string `gorm:"column:name;not null"`
	SetCode string `gorm:"column:set_code;not null"`
	SetName string `gorm:"column:set_name;not null"`
	Rarity  string `gorm:"column:rarity;not null"`
	Layout  string `gorm:"column:layout;not null"`

	FrontSmall  string  `gorm:"column:front_small;not null"`
	FrontNormal string  `gorm:"column:front_normal;not null"`
	FrontLarge  string  `gorm:"column:front_large;not null"`
	BackSmall   *string `gorm:"column:back_small"`
	BackNormal  *string `gorm:"column:back_normal"`
	BackLarge   *string `gorm:"column:back_large"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TotalValueCents is the card's contribution to the collection valuation.
func (c Card) TotalValueCents() int64 {
	return int64(c.UnitPriceCents) * int64(c.Quantity)
}
