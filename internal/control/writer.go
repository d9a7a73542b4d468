package control

import (
	"bytes"
	"io"
	"strings"

	"github.com/desclint/desclint/internal/models"
)

// Write serializes a record in insertion order. Continuation lines are
// folded back with a single leading space, blank lines as " .", so a
// record parsed from canonical input round-trips byte for byte.
func Write(w io.Writer, rec *models.Record) error {
	for _, field := range rec.Fields() {
		lines := strings.Split(field.Value, "\n")

		if _, err := io.WriteString(w, field.Name+": "+lines[0]+"\n"); err != nil {
			return err
		}

		for _, line := range lines[1:] {
			if line == "" {
				line = "."
			}
			if _, err := io.WriteString(w, " "+line+"\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

// Marshal serializes a record to a byte slice.
func Marshal(rec *models.Record) []byte {
	var buf bytes.Buffer
	Write(&buf, rec)
	return buf.Bytes()
}
