// Package exchange implements the board's import/export boundary: a
// standalone JSON document holding only the records array. Validation lives
// entirely on this side; board.Store.ReplaceAll trusts what it is given.
package exchange

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sulta24/feedback-app/internal/board"
)

// SuggestedFilename is the default name for exported board files.
const SuggestedFilename = "product_feedback_board.json"

// Export writes the records as a human-readable (indented) JSON array.
// Every record carries exactly the fields id, text, votes, category,
// createdAt.
func Export(w io.Writer, records []board.Record) error {
	// Encode an empty array as [], not null.
	if records == nil {
		records = []board.Record{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding records: %w", err)
	}

	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}
