// Package control reads and writes the line-oriented control format:
// "Field: value" pairs where indented lines continue the previous value.
package control

import (
	"bufio"
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/desclint/desclint/internal/models"
)

// fieldRe matches a field header line. The '@' admits fields like
// Authors@R, '.' fields like Config.testthat.edition.
var fieldRe = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9@.-]*):(.*)$`)

// Parse reads a single metadata record from raw text. A repeated field
// name is rejected rather than silently keeping one of the values.
func Parse(data []byte) (*models.Record, error) {
	rec := models.NewRecord()

	var currentField string
	var currentValue strings.Builder
	terminated := false
	lineNo := 0

	flush := func() error {
		if currentField == "" {
			return nil
		}
		if err := rec.Add(currentField, currentValue.String()); err != nil {
			return &models.LintError{
				Type:  models.ErrMalformedField,
				Field: currentField,
				Err:   err,
			}
		}
		currentField = ""
		currentValue.Reset()
		return nil
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()
		lineNo++

		// A blank line ends the record; only trailing blanks are allowed.
		if strings.TrimSpace(line) == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			terminated = true
			continue
		}

		if terminated {
			return nil, &models.LintError{
				Type: models.ErrMalformedField,
				Err:  fmt.Errorf("line %d: content after end of record", lineNo),
			}
		}

		// Continuation lines start with space or tab.
		if line[0] == ' ' || line[0] == '\t' {
			if currentField == "" {
				return nil, &models.LintError{
					Type: models.ErrMalformedField,
					Err:  fmt.Errorf("line %d: continuation line before any field", lineNo),
				}
			}
			currentValue.WriteString("\n")
			currentValue.WriteString(unfoldLine(line))
			continue
		}

		matches := fieldRe.FindStringSubmatch(line)
		if matches == nil {
			return nil, &models.LintError{
				Type: models.ErrMalformedField,
				Err:  fmt.Errorf("line %d: not a field header or continuation: %q", lineNo, line),
			}
		}

		if err := flush(); err != nil {
			return nil, err
		}

		currentField = matches[1]
		currentValue.WriteString(strings.TrimSpace(matches[2]))
	}

	if err := scanner.Err(); err != nil {
		return nil, &models.LintError{
			Type: models.ErrMalformedField,
			Err:  err,
		}
	}

	if err := flush(); err != nil {
		return nil, err
	}

	if rec.Len() == 0 {
		return nil, &models.LintError{
			Type: models.ErrMalformedField,
			Err:  fmt.Errorf("no fields found"),
		}
	}

	return rec, nil
}

// unfoldLine strips continuation indentation. A lone "." marks a blank
// line inside a folded value.
func unfoldLine(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "." {
		return ""
	}
	return trimmed
}
