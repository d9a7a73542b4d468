package test

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desclint/desclint/internal/archive"
	"github.com/desclint/desclint/internal/control"
	"github.com/desclint/desclint/internal/models"
	"github.com/desclint/desclint/internal/scanner"
	"github.com/desclint/desclint/internal/validator"
)

const goodDescription = "Package: ggvis\n" +
	"Version: 0.4.9\n" +
	"Title: Interactive Grammar of Graphics\n" +
	"Description: An implementation of an interactive grammar of graphics,\n" +
	" taking the best parts of the grammar and adding new features.\n" +
	"License: GPL-2\n" +
	"Authors@R: c(\n" +
	" person(\"Winston\", \"Chang\", email = \"winston@posit.co\", role = c(\"aut\", \"cre\")),\n" +
	" person(\"Hadley\", \"Wickham\", role = \"aut\"))\n" +
	"Imports: dplyr (>= 0.5.0), rlang, shiny (>= 1.0)\n" +
	"Suggests: knitr, testthat\n"

const badDescription = "Package: broken\n" +
	"Title: A Package That Has Problems And Also A Very Long Title That Never Ends.\n" +
	"Description: Missing its version and license.\n" +
	"Imports: dplyr\n" +
	"Suggests: dplyr\n" +
	"Authors@R: person(\"Sam\", \"Smith\", role = \"aut\")\n"

// TestEndToEnd exercises the full pipeline: scan a tree, extract from
// bundles, parse, and validate.
func TestEndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	dir := t.TempDir()

	// Good package as a bare DESCRIPTION in a directory
	goodDir := filepath.Join(dir, "ggvis")
	if err := os.MkdirAll(goodDir, 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(goodDir, "DESCRIPTION"), []byte(goodDescription), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	// Bad package inside a source bundle
	writeBundle(t, filepath.Join(dir, "broken_0.1.tar.gz"), "broken/DESCRIPTION", badDescription)

	inputs, err := scanner.NewFileSystemScanner().Scan(context.Background(), dir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(inputs) != 2 {
		t.Fatalf("Expected 2 inputs, got %d", len(inputs))
	}

	v := validator.New(models.DefaultLintConfig())
	results := make(map[string]*models.Result)

	for _, input := range inputs {
		var data []byte
		var err error

		switch input.Type {
		case scanner.TypeBundle:
			data, err = archive.ExtractDescription(input.Path)
		default:
			data, err = os.ReadFile(input.Path)
		}
		if err != nil {
			t.Fatalf("Loading %s failed: %v", input.Path, err)
		}

		rec, err := control.Parse(data)
		if err != nil {
			t.Fatalf("Parsing %s failed: %v", input.Path, err)
		}

		name, _ := rec.Get("Package")
		results[name] = v.Validate(rec)
	}

	good, ok := results["ggvis"]
	if !ok {
		t.Fatal("ggvis not validated")
	}
	if good.Blocking() {
		t.Errorf("ggvis should be clean, got errors: %v", good.Errors)
	}
	if len(good.Warnings) != 0 {
		t.Errorf("ggvis should have no warnings, got: %v", good.Warnings)
	}

	bad, ok := results["broken"]
	if !ok {
		t.Fatal("broken not validated")
	}
	if !bad.Blocking() {
		t.Fatal("broken should have blocking errors")
	}

	wantErrors := map[string]bool{"Version": false, "License": false, "Authors@R": false}
	for _, violation := range bad.Errors {
		if _, tracked := wantErrors[violation.Field]; tracked {
			wantErrors[violation.Field] = true
		}
	}
	for field, seen := range wantErrors {
		if !seen {
			t.Errorf("Expected a blocking error for %s, got: %v", field, bad.Errors)
		}
	}

	wantWarnings := map[string]bool{"Title": false, "Suggests": false}
	for _, violation := range bad.Warnings {
		if _, tracked := wantWarnings[violation.Field]; tracked {
			wantWarnings[violation.Field] = true
		}
	}
	for field, seen := range wantWarnings {
		if !seen {
			t.Errorf("Expected a warning for %s, got: %v", field, bad.Warnings)
		}
	}
}

// TestConfigOverride checks that a YAML config loosens the thresholds.
func TestConfigOverride(t *testing.T) {
	dir := t.TempDir()

	configPath := filepath.Join(dir, "lint.yaml")
	config := "title-limit: 120\nline-limit: 200\nextra-licenses:\n  - Proprietary\n"
	if err := os.WriteFile(configPath, []byte(config), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := models.LoadLintConfig(configPath)
	if err != nil {
		t.Fatalf("LoadLintConfig failed: %v", err)
	}
	if cfg.TitleLimit != 120 || cfg.LineLimit != 200 {
		t.Errorf("Config = %+v", cfg)
	}

	rec, err := control.Parse([]byte(badDescription))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	result := validator.New(cfg).Validate(rec)
	for _, w := range result.Warnings {
		if w.Field == "Title" && strings.Contains(w.Message, "characters") {
			t.Errorf("Long title should pass with raised limit: %v", w)
		}
	}
}

func writeBundle(t *testing.T, path, entryName, content string) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	defer f.Close()

	gw := gzip.NewWriter(f)
	tw := tar.NewWriter(gw)
	if err := tw.WriteHeader(&tar.Header{Name: entryName, Mode: 0644, Size: int64(len(content))}); err != nil {
		t.Fatalf("WriteHeader failed: %v", err)
	}
	if _, err := tw.Write([]byte(content)); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("tar close failed: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("gzip close failed: %v", err)
	}
}
