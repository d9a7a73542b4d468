package scanner

import "context"

// InputType represents the kind of metadata input found on disk
type InputType int

const (
	TypeUnknown InputType = iota
	TypeDescription
	TypeBundle
)

// String returns the string representation of InputType
func (t InputType) String() string {
	switch t {
	case TypeDescription:
		return "description"
	case TypeBundle:
		return "bundle"
	default:
		return "unknown"
	}
}

// ScannedInput represents a metadata input found during scanning
type ScannedInput struct {
	Path string
	Type InputType
	Size int64
}

// Scanner interface for detecting and scanning metadata inputs
type Scanner interface {
	// Scan recursively scans a directory for metadata inputs
	Scan(ctx context.Context, dir string) ([]ScannedInput, error)

	// DetectType determines the input type of a file
	DetectType(path string) (InputType, error)
}
