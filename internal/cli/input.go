package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/desclint/desclint/internal/archive"
	"github.com/desclint/desclint/internal/models"
	"github.com/desclint/desclint/internal/scanner"
)

// resolveInputs turns command-line paths into concrete metadata inputs.
// A directory either holds a DESCRIPTION directly or, with recursive,
// is scanned for DESCRIPTION files and source bundles.
func resolveInputs(ctx context.Context, paths []string, recursive bool) ([]scanner.ScannedInput, error) {
	var inputs []scanner.ScannedInput
	sc := scanner.NewFileSystemScanner()

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, &models.LintError{
				Type: models.ErrFileOp,
				Err:  fmt.Errorf("cannot stat %s: %w", path, err),
			}
		}

		if info.IsDir() {
			if recursive {
				scanned, err := sc.Scan(ctx, path)
				if err != nil {
					return nil, &models.LintError{
						Type: models.ErrFileOp,
						Err:  err,
					}
				}
				inputs = append(inputs, scanned...)
				continue
			}

			descPath := filepath.Join(path, "DESCRIPTION")
			descInfo, err := os.Stat(descPath)
			if err != nil {
				return nil, &models.LintError{
					Type: models.ErrFileOp,
					Err:  fmt.Errorf("no DESCRIPTION in %s (use --recursive to scan)", path),
				}
			}
			inputs = append(inputs, scanner.ScannedInput{
				Path: descPath,
				Type: scanner.TypeDescription,
				Size: descInfo.Size(),
			})
			continue
		}

		inputType, err := sc.DetectType(path)
		if err != nil {
			return nil, &models.LintError{
				Type: models.ErrFileOp,
				Err:  fmt.Errorf("cannot detect type of %s: %w", path, err),
			}
		}
		if inputType == scanner.TypeUnknown {
			// An explicitly named file is treated as a DESCRIPTION,
			// whatever it is called.
			inputType = scanner.TypeDescription
		}

		inputs = append(inputs, scanner.ScannedInput{
			Path: path,
			Type: inputType,
			Size: info.Size(),
		})
	}

	return inputs, nil
}

// loadDescription reads the DESCRIPTION contents of one input.
func loadDescription(input scanner.ScannedInput) ([]byte, error) {
	switch input.Type {
	case scanner.TypeBundle:
		if checksum, err := archive.CalculateChecksums(input.Path); err == nil {
			logrus.Debugf("Bundle %s: %d bytes, sha256 %s", input.Path, checksum.Size, checksum.SHA256)
		}
		return archive.ExtractDescription(input.Path)
	default:
		data, err := os.ReadFile(input.Path)
		if err != nil {
			return nil, &models.LintError{
				Type: models.ErrFileOp,
				Err:  fmt.Errorf("failed to read %s: %w", input.Path, err),
			}
		}
		return data, nil
	}
}
