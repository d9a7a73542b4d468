// Package version implements the version ordering used in package
// metadata: dot or hyphen delimited non-negative integers, compared
// component-wise with missing trailing components treated as zero.
package version

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/desclint/desclint/internal/models"
)

// Version is a parsed version: an ordered sequence of non-negative integers.
type Version []int

// Parse parses a version string. Components are split on '.' and '-';
// every component must be a non-negative integer.
func Parse(s string) (Version, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, &models.LintError{
			Type: models.ErrInvalidVersion,
			Err:  fmt.Errorf("empty version"),
		}
	}

	parts := strings.FieldsFunc(trimmed, func(r rune) bool {
		return r == '.' || r == '-'
	})

	// FieldsFunc drops empty components, so "1..2" and "1." would pass
	// silently. Count separators to catch them.
	if len(parts) != strings.Count(trimmed, ".")+strings.Count(trimmed, "-")+1 {
		return nil, &models.LintError{
			Type: models.ErrInvalidVersion,
			Err:  fmt.Errorf("empty component in version %q", s),
		}
	}

	v := make(Version, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return nil, &models.LintError{
				Type: models.ErrInvalidVersion,
				Err:  fmt.Errorf("non-numeric component %q in version %q", part, s),
			}
		}
		v = append(v, n)
	}

	return v, nil
}

// String renders the version with dot separators. "1.9" and "1.9.0"
// parse to different lengths and render back distinctly.
func (v Version) String() string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ".")
}

// Compare returns -1, 0 or 1 ordering a against b. The shorter version
// is zero-extended, so 1.9 equals 1.9.0.
func Compare(a, b Version) int {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		var av, bv int
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		if av < bv {
			return -1
		}
		if av > bv {
			return 1
		}
	}
	return 0
}

// CompareStrings parses both arguments and compares them.
func CompareStrings(a, b string) (int, error) {
	av, err := Parse(a)
	if err != nil {
		return 0, err
	}
	bv, err := Parse(b)
	if err != nil {
		return 0, err
	}
	return Compare(av, bv), nil
}

// Sort orders version strings ascending in place.
func Sort(versions []string) error {
	type entry struct {
		raw    string
		parsed Version
	}

	entries := make([]entry, len(versions))
	for i, s := range versions {
		v, err := Parse(s)
		if err != nil {
			return err
		}
		entries[i] = entry{raw: s, parsed: v}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return Compare(entries[i].parsed, entries[j].parsed) < 0
	})

	for i, e := range entries {
		versions[i] = e.raw
	}
	return nil
}

// Satisfies reports whether version have meets the constraint (op, want).
func Satisfies(have string, op models.ConstraintOp, want string) (bool, error) {
	cmp, err := CompareStrings(have, want)
	if err != nil {
		return false, err
	}

	switch op {
	case models.OpGreaterEqual:
		return cmp >= 0, nil
	case models.OpGreater:
		return cmp > 0, nil
	case models.OpEqual:
		return cmp == 0, nil
	case models.OpLessEqual:
		return cmp <= 0, nil
	case models.OpLess:
		return cmp < 0, nil
	default:
		return false, &models.LintError{
			Type: models.ErrInvalidConstraint,
			Err:  fmt.Errorf("unknown operator %q", op),
		}
	}
}
