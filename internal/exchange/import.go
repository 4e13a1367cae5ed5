package exchange

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sulta24/feedback-app/internal/board"
)

// wireRecord mirrors board.Record with pointer fields so missing keys are
// distinguishable from zero values during validation.
type wireRecord struct {
	ID        *string `json:"id"`
	Text      *string `json:"text"`
	Votes     *int    `json:"votes"`
	Category  *string `json:"category"`
	CreatedAt *int64  `json:"createdAt"`
}

// Import parses and validates a board export. The top-level value must be a
// JSON array, and every element must carry an id (string), text (string),
// votes (number), a category from the closed set, and createdAt (number).
//
// Validation is all-or-nothing: any malformed element rejects the whole
// import and no records are returned. Records are not deduplicated or
// checked for id collisions — an import is intended as a full replace of
// the board, not a merge.
func Import(r io.Reader) ([]board.Record, error) {
	var wire []wireRecord
	if err := json.NewDecoder(r).Decode(&wire); err != nil {
		return nil, fmt.Errorf("invalid import file: %w", err)
	}

	records := make([]board.Record, 0, len(wire))
	for i, w := range wire {
		rec, err := w.validate()
		if err != nil {
			return nil, fmt.Errorf("invalid import file: record %d: %w", i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// validate checks one wire record for field presence and converts it.
func (w wireRecord) validate() (board.Record, error) {
	switch {
	case w.ID == nil:
		return board.Record{}, fmt.Errorf("missing field %q", "id")
	case w.Text == nil:
		return board.Record{}, fmt.Errorf("missing field %q", "text")
	case w.Votes == nil:
		return board.Record{}, fmt.Errorf("missing field %q", "votes")
	case w.Category == nil:
		return board.Record{}, fmt.Errorf("missing field %q", "category")
	case w.CreatedAt == nil:
		return board.Record{}, fmt.Errorf("missing field %q", "createdAt")
	}

	category, err := board.ParseCategory(*w.Category)
	if err != nil {
		return board.Record{}, err
	}

	return board.Record{
		ID:        *w.ID,
		Text:      *w.Text,
		Votes:     *w.Votes,
		Category:  category,
		CreatedAt: *w.CreatedAt,
	}, nil
}
