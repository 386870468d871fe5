package importer

import (
	"fmt"

	"github.com/angelmondragon/cardvault-importer/internal/inventory"
	"github.com/angelmondragon/cardvault-importer/internal/scryfall"
	"github.com/angelmondragon/cardvault-importer/pkg/db/models"
	pkgerrors "github.com/angelmondragon/cardvault-importer/pkg/errors"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// mergeBatch fuses the lookup metadata onto the batch's records, producing
// one fully enriched Card per matched metadata object. Records whose id never
// comes back are dropped from the output and from totals — a deliberate
// carry-over of the reference behavior, not an oversight. Duplicate ids in
// the batch resolve to the first matching record.
func mergeBatch(batch []inventory.Record, metadata []scryfall.CardData) ([]models.Card, error) {
	cards := make([]models.Card, 0, len(metadata))
	for _, data := range metadata {
		record, ok := findRecord(batch, data.ID)
		if !ok {
			// The service answered with an id we never asked for; treat it
			// like any other broken response.
			return nil, pkgerrors.New(pkgerrors.CodeEnrichmentFailed,
				fmt.Sprintf("metadata id %q matches no record in batch", data.ID))
		}

		card, err := buildCard(record, data)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func findRecord(batch []inventory.Record, id string) (inventory.Record, bool) {
	for _, record := range batch {
		if record.ScryfallID == id {
			return record, true
		}
	}
	return inventory.Record{}, false
}

func buildCard(record inventory.Record, data scryfall.CardData) (models.Card, error) {
	if err := validate.Struct(data); err != nil {
		return models.Card{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err,
			fmt.Sprintf("metadata for %q is incomplete", data.ID))
	}

	front, back, err := imageSet(data)
	if err != nil {
		return models.Card{}, err
	}

	card := models.Card{
		ID:             uuid.New(),
		Foil:           record.Foil,
		Quantity:       record.Quantity,
		SourceID:       record.SourceID,
		ScryfallID:     record.ScryfallID,
		UnitPriceCents: record.UnitPriceCents,
		Name:           data.Name,
		SetCode:        data.Set,
		SetName:        data.SetName,
		Rarity:         data.Rarity,
		Layout:         data.Layout,
		FrontSmall:     front.Small,
		FrontNormal:    front.Normal,
		FrontLarge:     front.Large,
	}
	if back != nil {
		card.BackSmall = &back.Small
		card.BackNormal = &back.Normal
		card.BackLarge = &back.Large
	}
	return card, nil
}

// imageSet resolves the two metadata shapes: a unified image_uris object
// populates the front only; card_faces populate front and, when a second
// face carries images, back. Anything else is an unrecoverable merge error.
func imageSet(data scryfall.CardData) (front *scryfall.ImageURIs, back *scryfall.ImageURIs, err error) {
	switch {
	case data.ImageURIs != nil:
		front = data.ImageURIs
	case len(data.CardFaces) > 0 && data.CardFaces[0].ImageURIs != nil:
		front = data.CardFaces[0].ImageURIs
		if len(data.CardFaces) > 1 {
			back = data.CardFaces[1].ImageURIs
		}
	default:
		return nil, nil, pkgerrors.New(pkgerrors.CodeEnrichmentFailed,
			fmt.Sprintf("metadata for %q carries no image set", data.ID))
	}

	if err := validate.Struct(front); err != nil {
		return nil, nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err,
			fmt.Sprintf("front images for %q are incomplete", data.ID))
	}
	if back != nil {
		if err := validate.Struct(back); err != nil {
			return nil, nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err,
				fmt.Sprintf("back images for %q are incomplete", data.ID))
		}
	}
	return front, back, nil
}
