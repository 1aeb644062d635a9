// SPDX-License-Identifier: MIT

package survey

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMalformedCSV indicates a row that cannot be parsed into a Record.
var ErrMalformedCSV = errors.New("survey: malformed csv")

// Header is the column layout read and written by ReadCSV and WriteCSV.
var Header = []string{"participant_id", "category", "degree"}

// ReadCSV parses participant_id,category,degree rows. A leading header row
// equal to Header is skipped. The table is validated before returning.
func ReadCSV(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ReadCSV: %w: %w", ErrMalformedCSV, err)
	}
	// first is the 1-based file line of rows[0]
	first := 1
	if len(rows) > 0 && strings.EqualFold(rows[0][0], Header[0]) {
		rows = rows[1:]
		first = 2
	}

	t := make(Table, 0, len(rows))
	for i, row := range rows {
		id, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("ReadCSV: line %d: participant_id %q: %w", first+i, row[0], ErrMalformedCSV)
		}
		deg, err := strconv.Atoi(row[2])
		if err != nil {
			return nil, fmt.Errorf("ReadCSV: line %d: degree %q: %w", first+i, row[2], ErrMalformedCSV)
		}
		t = append(t, Record{ParticipantID: id, Category: row[1], Degree: deg})
	}

	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("ReadCSV: %w", err)
	}
	return t, nil
}

// WriteCSV writes t with a Header row.
func WriteCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}
	for _, r := range t {
		row := []string{strconv.Itoa(r.ParticipantID), r.Category, strconv.Itoa(r.Degree)}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("WriteCSV: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
