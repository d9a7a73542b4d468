package scanner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// FileSystemScanner implements Scanner interface for filesystem scanning
type FileSystemScanner struct{}

// NewFileSystemScanner creates a new filesystem scanner
func NewFileSystemScanner() *FileSystemScanner {
	return &FileSystemScanner{}
}

// Scan recursively scans a directory for metadata inputs
func (s *FileSystemScanner) Scan(ctx context.Context, dir string) ([]ScannedInput, error) {
	var inputs []ScannedInput

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		// Check context cancellation
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if info.IsDir() {
			return nil
		}

		inputType, err := s.DetectType(path)
		if err != nil {
			logrus.Warnf("Failed to detect type for %s: %v", path, err)
			return nil
		}

		if inputType == TypeUnknown {
			return nil
		}

		logrus.Debugf("Found %s input: %s", inputType, path)

		inputs = append(inputs, ScannedInput{
			Path: path,
			Type: inputType,
			Size: info.Size(),
		})

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to scan directory: %w", err)
	}

	logrus.Infof("Found %d metadata inputs in %s", len(inputs), dir)
	return inputs, nil
}

// DetectType determines the input type of a file
func (s *FileSystemScanner) DetectType(path string) (InputType, error) {
	return DetectInputType(path)
}
