package inventory

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	pkgerrors "github.com/angelmondragon/cardvault-importer/pkg/errors"
)

// ReadFile decodes the whole inventory export, skipping the header line and
// normalizing every row in file order. The first malformed row fails the read.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		// The file itself is unreadable; no row was ever decoded.
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "opening inventory file")
	}
	defer func() { _ = f.Close() }()

	return ReadAll(f)
}

// ReadAll normalizes every data row from the reader. Ragged rows are accepted
// at the decode layer; NormalizeRow enforces the minimum width.
func ReadAll(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeMalformedRecord, err, "reading header row")
	}

	var records []Record
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeMalformedRecord, err,
				fmt.Sprintf("reading line %d", line))
		}

		record, err := NormalizeRow(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, record)
	}

	return records, nil
}
