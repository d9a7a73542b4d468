package control

import (
	"bytes"
	"errors"
	"testing"

	"github.com/desclint/desclint/internal/models"
)

func TestParseBasicRecord(t *testing.T) {
	input := []byte("Package: dplyr\nVersion: 1.1.4\nLicense: MIT + file LICENSE\n")

	rec, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if rec.Len() != 3 {
		t.Fatalf("Expected 3 fields, got %d", rec.Len())
	}

	if v, _ := rec.Get("Package"); v != "dplyr" {
		t.Errorf("Package = %q, want %q", v, "dplyr")
	}
	if v, _ := rec.Get("Version"); v != "1.1.4" {
		t.Errorf("Version = %q, want %q", v, "1.1.4")
	}

	// Field order must be preserved
	fields := rec.Fields()
	if fields[0].Name != "Package" || fields[2].Name != "License" {
		t.Errorf("Field order not preserved: %v", fields)
	}
}

func TestParseContinuationLines(t *testing.T) {
	input := []byte("Description: A fast, consistent tool for working with\n" +
		" data frame like objects, both in memory and out of\n" +
		" memory.\n")

	rec, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := "A fast, consistent tool for working with\n" +
		"data frame like objects, both in memory and out of\n" +
		"memory."
	if v, _ := rec.Get("Description"); v != want {
		t.Errorf("Description = %q, want %q", v, want)
	}
}

func TestParseDotContinuationIsBlankLine(t *testing.T) {
	input := []byte("Description: First paragraph.\n .\n Second paragraph.\n")

	rec, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := "First paragraph.\n\nSecond paragraph."
	if v, _ := rec.Get("Description"); v != want {
		t.Errorf("Description = %q, want %q", v, want)
	}
}

func TestParseFieldNameWithAt(t *testing.T) {
	input := []byte("Authors@R: person(\"Jane\", \"Doe\")\n")

	rec, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !rec.Has("Authors@R") {
		t.Error("Authors@R field not parsed")
	}
}

func TestParseContinuationBeforeHeader(t *testing.T) {
	_, err := Parse([]byte(" stray continuation\nPackage: x\n"))
	assertMalformed(t, err)
}

func TestParseDuplicateFieldRejected(t *testing.T) {
	_, err := Parse([]byte("Package: a\nVersion: 1.0\nPackage: b\n"))
	assertMalformed(t, err)
}

func TestParseGarbageLine(t *testing.T) {
	_, err := Parse([]byte("Package: a\nthis is not a field\n"))
	assertMalformed(t, err)
}

func TestParseContentAfterBlankLine(t *testing.T) {
	_, err := Parse([]byte("Package: a\n\nVersion: 1.0\n"))
	assertMalformed(t, err)
}

func TestParseEmptyInput(t *testing.T) {
	_, err := Parse([]byte("\n\n"))
	assertMalformed(t, err)
}

func TestRoundTrip(t *testing.T) {
	input := "Package: ggvis\n" +
		"Version: 0.4.9\n" +
		"Title: Interactive Grammar of Graphics\n" +
		"Description: An implementation of an interactive grammar of graphics.\n" +
		" Rendering is done in the browser.\n" +
		" .\n" +
		" Second paragraph here.\n" +
		"Imports: dplyr, rlang\n"

	rec, err := Parse([]byte(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	output := Marshal(rec)
	if !bytes.Equal(output, []byte(input)) {
		t.Errorf("Round trip mismatch:\ngot:\n%s\nwant:\n%s", output, input)
	}
}

func assertMalformed(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("Expected an error, got nil")
	}
	var lintErr *models.LintError
	if !errors.As(err, &lintErr) {
		t.Fatalf("Expected LintError, got %T: %v", err, err)
	}
	if lintErr.Type != models.ErrMalformedField {
		t.Errorf("Error type = %s, want MalformedField", lintErr.Type)
	}
}
