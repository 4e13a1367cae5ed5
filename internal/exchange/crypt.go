package exchange

import (
	"bytes"
	"fmt"
	"io"

	"filippo.io/age"

	"github.com/sulta24/feedback-app/internal/board"
)

// ageHeader is the first line of every age-encrypted file.
const ageHeader = "age-encryption.org/v1"

// IsEncrypted reports whether data looks like an age-encrypted export.
func IsEncrypted(data []byte) bool {
	return bytes.HasPrefix(data, []byte(ageHeader))
}

// ExportEncrypted writes the records as an age passphrase-encrypted export.
// The plaintext inside is exactly what Export produces, so a decrypted file
// imports like any plain one.
func ExportEncrypted(w io.Writer, passphrase string, records []board.Record) error {
	recipient, err := age.NewScryptRecipient(passphrase)
	if err != nil {
		return fmt.Errorf("creating scrypt recipient: %w", err)
	}

	encWriter, err := age.Encrypt(w, recipient)
	if err != nil {
		return fmt.Errorf("creating encrypted writer: %w", err)
	}

	if err := Export(encWriter, records); err != nil {
		return err
	}

	if err := encWriter.Close(); err != nil {
		return fmt.Errorf("finalizing encryption: %w", err)
	}
	return nil
}

// ImportEncrypted decrypts an age passphrase-encrypted export and imports
// its records with the same all-or-nothing validation as Import.
func ImportEncrypted(r io.Reader, passphrase string) ([]board.Record, error) {
	identity, err := age.NewScryptIdentity(passphrase)
	if err != nil {
		return nil, fmt.Errorf("creating scrypt identity: %w", err)
	}

	decReader, err := age.Decrypt(r, identity)
	if err != nil {
		return nil, fmt.Errorf("decrypting import file: %w", err)
	}

	return Import(decReader)
}
