package inventory

import (
	"fmt"
	"strconv"

	pkgerrors "github.com/angelmondragon/cardvault-importer/pkg/errors"
	"github.com/shopspring/decimal"
)

// Record is one normalized inventory row: a copy-group of a single physical
// card awaiting enrichment.
type Record struct {
	Foil           bool
	Quantity       int
	SourceID       string
	ScryfallID     string
	UnitPriceCents int
}

// Column positions in the export format (0-based). The decode layer tolerates
// ragged rows, so NormalizeRow re-checks the width itself.
const (
	colFinish     = 4
	colQuantity   = 6
	colSourceID   = 7
	colScryfallID = 8
	colUnitPrice  = 9

	minColumns = 10
)

const finishNormal = "normal"

// NormalizeRow converts a decoded CSV row into a Record. Malformed numeric
// columns are not recoverable; the caller aborts the run.
func NormalizeRow(row []string) (Record, error) {
	if len(row) < minColumns {
		return Record{}, pkgerrors.New(pkgerrors.CodeMalformedRecord,
			fmt.Sprintf("row has %d columns, need at least %d", len(row), minColumns))
	}

	quantity, err := strconv.Atoi(row[colQuantity])
	if err != nil {
		return Record{}, pkgerrors.Wrap(pkgerrors.CodeMalformedRecord, err,
			fmt.Sprintf("parsing quantity %q", row[colQuantity]))
	}
	if quantity < 1 {
		return Record{}, pkgerrors.New(pkgerrors.CodeMalformedRecord,
			fmt.Sprintf("quantity %d must be at least 1", quantity))
	}

	price, err := decimal.NewFromString(row[colUnitPrice])
	if err != nil {
		return Record{}, pkgerrors.Wrap(pkgerrors.CodeMalformedRecord, err,
			fmt.Sprintf("parsing unit price %q", row[colUnitPrice]))
	}

	return Record{
		Foil:           row[colFinish] != finishNormal,
		Quantity:       quantity,
		SourceID:       row[colSourceID],
		ScryfallID:     row[colScryfallID],
		UnitPriceCents: int(price.Shift(2).Round(0).IntPart()),
	}, nil
}
