package scanner

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
)

// Magic bytes for bundle compression detection
var (
	// Gzip magic bytes (.tar.gz / .tgz bundles)
	gzipMagic = []byte{0x1F, 0x8B}

	// XZ magic bytes (.tar.xz bundles)
	xzMagic = []byte{0xFD, 0x37, 0x7A, 0x58, 0x5A, 0x00}

	// Zstandard magic bytes (.tar.zst bundles)
	zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}
)

// DetectInputType determines the input type based on filename and magic bytes
func DetectInputType(path string) (InputType, error) {
	basename := filepath.Base(path)

	// A bare DESCRIPTION file
	if basename == "DESCRIPTION" {
		return TypeDescription, nil
	}

	// Source bundles: compressed tarballs
	if strings.HasSuffix(basename, ".tar") {
		return TypeBundle, nil
	}

	compressed := strings.HasSuffix(basename, ".tar.gz") ||
		strings.HasSuffix(basename, ".tgz") ||
		strings.HasSuffix(basename, ".tar.xz") ||
		strings.HasSuffix(basename, ".tar.zst")
	if !compressed {
		return TypeUnknown, nil
	}

	// Confirm by magic bytes so a mislabeled file is not fed to the
	// wrong decompressor.
	f, err := os.Open(path)
	if err != nil {
		return TypeUnknown, err
	}
	defer f.Close()

	header := make([]byte, 6)
	n, err := f.Read(header)
	if err != nil && n == 0 {
		return TypeUnknown, err
	}
	header = header[:n]

	if bytes.HasPrefix(header, gzipMagic) || bytes.HasPrefix(header, xzMagic) || bytes.HasPrefix(header, zstdMagic) {
		return TypeBundle, nil
	}

	return TypeUnknown, nil
}
