// Package depends parses dependency fields: comma-separated package
// names with optional parenthesized version constraints.
package depends

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/desclint/desclint/internal/models"
	"github.com/desclint/desclint/internal/version"
)

var constraintRe = regexp.MustCompile(`^(.*?)\s*\(\s*([<>=]+)\s+([^)\s]+)\s*\)$`)

// ParseField parses the raw value of a dependency field. Unparsable
// entries are reported but do not stop the remaining entries from being
// parsed; the returned specs cover only the entries that parsed.
func ParseField(field, value string) ([]models.DependencySpec, []error) {
	var specs []models.DependencySpec
	var errs []error

	for _, token := range splitTopLevel(value) {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		spec, err := parseEntry(field, token)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		specs = append(specs, spec)
	}

	return specs, errs
}

// splitTopLevel splits on commas outside parentheses.
func splitTopLevel(value string) []string {
	var parts []string
	depth := 0
	start := 0

	for i, r := range value {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				parts = append(parts, value[start:i])
				start = i + 1
			}
		}
	}

	return append(parts, value[start:])
}

func parseEntry(field, token string) (models.DependencySpec, error) {
	matches := constraintRe.FindStringSubmatch(token)
	if matches == nil {
		// Bare package name, no constraint.
		if strings.ContainsAny(token, "() \t") {
			return models.DependencySpec{}, &models.LintError{
				Type:  models.ErrInvalidConstraint,
				Field: field,
				Err:   fmt.Errorf("malformed entry %q", token),
			}
		}
		return models.DependencySpec{Name: token}, nil
	}

	name := strings.TrimSpace(matches[1])
	if name == "" {
		return models.DependencySpec{}, &models.LintError{
			Type:  models.ErrInvalidConstraint,
			Field: field,
			Err:   fmt.Errorf("missing package name in %q", token),
		}
	}

	op := models.ConstraintOp(matches[2])
	if !knownOp(op) {
		return models.DependencySpec{}, &models.LintError{
			Type:  models.ErrInvalidConstraint,
			Field: field,
			Err:   fmt.Errorf("unknown operator %q in %q", matches[2], token),
		}
	}

	if _, err := version.Parse(matches[3]); err != nil {
		return models.DependencySpec{}, &models.LintError{
			Type:  models.ErrInvalidVersion,
			Field: field,
			Err:   fmt.Errorf("bad version in %q: %w", token, err),
		}
	}

	return models.DependencySpec{
		Name: name,
		Constraint: &models.Constraint{
			Op:      op,
			Version: matches[3],
		},
	}, nil
}

func knownOp(op models.ConstraintOp) bool {
	for _, known := range models.KnownOps {
		if op == known {
			return true
		}
	}
	return false
}
