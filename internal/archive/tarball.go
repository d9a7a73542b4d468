// Package archive reads DESCRIPTION files out of source bundles
// (tarballs compressed with gzip, xz or zstd).
package archive

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"

	"github.com/desclint/desclint/internal/models"
)

// ExtractDescription reads the DESCRIPTION file from a source bundle.
// The file is expected at the top level or directly under the bundle's
// single package directory ("pkg/DESCRIPTION").
func ExtractDescription(bundlePath string) ([]byte, error) {
	f, err := os.Open(bundlePath)
	if err != nil {
		return nil, &models.LintError{
			Type: models.ErrFileOp,
			Err:  fmt.Errorf("failed to open bundle: %w", err),
		}
	}
	defer f.Close()

	tarReader, closer, err := newTarReader(f, bundlePath)
	if err != nil {
		return nil, err
	}
	if closer != nil {
		defer closer()
	}

	for {
		header, err := tarReader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &models.LintError{
				Type: models.ErrFileOp,
				Err:  fmt.Errorf("failed to read bundle: %w", err),
			}
		}

		if isDescriptionEntry(header.Name) {
			data, err := io.ReadAll(tarReader)
			if err != nil {
				return nil, &models.LintError{
					Type: models.ErrFileOp,
					Err:  fmt.Errorf("failed to read DESCRIPTION entry: %w", err),
				}
			}
			return data, nil
		}
	}

	return nil, &models.LintError{
		Type: models.ErrFileOp,
		Err:  fmt.Errorf("no DESCRIPTION found in %s", bundlePath),
	}
}

// newTarReader picks a decompressor based on the bundle extension.
func newTarReader(f *os.File, name string) (*tar.Reader, func(), error) {
	switch {
	case strings.HasSuffix(name, ".tar.gz") || strings.HasSuffix(name, ".tgz"):
		gr, err := gzip.NewReader(f)
		if err != nil {
			return nil, nil, &models.LintError{
				Type: models.ErrFileOp,
				Err:  fmt.Errorf("failed to open gzip stream: %w", err),
			}
		}
		return tar.NewReader(gr), func() { gr.Close() }, nil
	case strings.HasSuffix(name, ".tar.xz"):
		xr, err := xz.NewReader(f)
		if err != nil {
			return nil, nil, &models.LintError{
				Type: models.ErrFileOp,
				Err:  fmt.Errorf("failed to open xz stream: %w", err),
			}
		}
		return tar.NewReader(xr), nil, nil
	case strings.HasSuffix(name, ".tar.zst"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, nil, &models.LintError{
				Type: models.ErrFileOp,
				Err:  fmt.Errorf("failed to open zstd stream: %w", err),
			}
		}
		return tar.NewReader(zr), zr.Close, nil
	case strings.HasSuffix(name, ".tar"):
		return tar.NewReader(f), nil, nil
	default:
		return nil, nil, &models.LintError{
			Type: models.ErrFileOp,
			Err:  fmt.Errorf("unsupported bundle type: %s", name),
		}
	}
}

// isDescriptionEntry matches DESCRIPTION at the top level or one
// directory deep. Deeper matches (vignette skeletons etc.) are ignored.
func isDescriptionEntry(name string) bool {
	clean := path.Clean(strings.TrimPrefix(name, "./"))
	if path.Base(clean) != "DESCRIPTION" {
		return false
	}
	return strings.Count(clean, "/") <= 1
}
