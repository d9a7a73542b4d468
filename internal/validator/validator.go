// Package validator applies the structural and stylistic rules for
// metadata records, collecting blocking errors and advisory warnings
// instead of stopping at the first finding.
package validator

import (
	"regexp"
	"strings"

	"github.com/desclint/desclint/internal/authors"
	"github.com/desclint/desclint/internal/depends"
	"github.com/desclint/desclint/internal/models"
	"github.com/desclint/desclint/internal/version"
)

// Fields that every record must carry.
var requiredFields = []string{"Package", "Version", "Title", "Description", "License"}

// packageNameRe: a letter, then letters, digits or periods.
var packageNameRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9.]*$`)

// knownLicenses are the License values accepted without a warning.
var knownLicenses = []string{
	"GPL-2",
	"GPL-3",
	"GPL (>= 2)",
	"GPL (>= 3)",
	"LGPL (>= 2.1)",
	"AGPL-3",
	"MIT + file LICENSE",
	"BSD_2_clause + file LICENSE",
	"BSD_3_clause + file LICENSE",
	"Apache License (>= 2)",
	"CC0",
	"CC BY 4.0",
	"Unlimited",
}

// Validator applies lint rules to parsed records.
type Validator struct {
	cfg models.LintConfig
}

// New creates a validator with the given thresholds.
func New(cfg models.LintConfig) *Validator {
	return &Validator{cfg: cfg}
}

// Validate checks one record and returns every finding at once.
func (v *Validator) Validate(rec *models.Record) *models.Result {
	result := &models.Result{Record: rec}

	v.checkRequired(rec, result)
	v.checkPackageName(rec, result)
	v.checkVersion(rec, result)
	v.checkTitle(rec, result)
	v.checkDescription(rec, result)
	v.checkDependencies(rec, result)
	v.checkLicense(rec, result)
	v.checkAuthors(rec, result)

	return result
}

func (v *Validator) checkRequired(rec *models.Record, result *models.Result) {
	for _, field := range requiredFields {
		if !rec.Has(field) {
			result.AddError(field, "missing required field")
		}
	}
}

func (v *Validator) checkPackageName(rec *models.Record, result *models.Result) {
	name, ok := rec.Get("Package")
	if !ok {
		return
	}

	if !packageNameRe.MatchString(name) {
		result.AddError("Package", "invalid package name %q: must start with a letter and contain only letters, digits and periods", name)
		return
	}
	if strings.HasSuffix(name, ".") {
		result.AddError("Package", "invalid package name %q: must not end with a period", name)
	}
}

func (v *Validator) checkVersion(rec *models.Record, result *models.Result) {
	raw, ok := rec.Get("Version")
	if !ok {
		return
	}

	ver, err := version.Parse(raw)
	if err != nil {
		result.AddError("Version", "invalid version %q", raw)
		return
	}

	if len(ver) < 2 {
		result.AddError("Version", "version %q must have at least two components", raw)
	}
}

func (v *Validator) checkTitle(rec *models.Record, result *models.Result) {
	title, ok := rec.Get("Title")
	if !ok {
		return
	}

	if len(title) > v.cfg.TitleLimit {
		result.AddWarning("Title", "title is %d characters, limit is %d", len(title), v.cfg.TitleLimit)
	}
	if strings.HasSuffix(strings.TrimSpace(title), ".") {
		result.AddWarning("Title", "title should not end with a period")
	}
}

func (v *Validator) checkDescription(rec *models.Record, result *models.Result) {
	desc, ok := rec.Get("Description")
	if !ok {
		return
	}

	for i, line := range strings.Split(desc, "\n") {
		if len(line) > v.cfg.LineLimit {
			result.AddWarning("Description", "line %d is %d characters, limit is %d", i+1, len(line), v.cfg.LineLimit)
		}
	}
}

func (v *Validator) checkDependencies(rec *models.Record, result *models.Result) {
	// seen tracks which dependency field first listed each package.
	seen := make(map[string]string)
	imports := make(map[string]bool)

	for _, field := range models.DependencyFields {
		value, ok := rec.Get(field)
		if !ok {
			continue
		}

		specs, errs := depends.ParseField(field, value)
		for _, err := range errs {
			result.AddError(field, "%v", err)
		}

		for _, spec := range specs {
			// R itself may appear in Depends alongside package deps.
			if spec.Name == "R" {
				continue
			}

			if field == "Imports" {
				imports[spec.Name] = true
			}
			if field == "Suggests" && imports[spec.Name] {
				result.AddWarning(field, "%s is listed in both Imports and Suggests", spec.Name)
				continue
			}

			if prev, dup := seen[spec.Name]; dup {
				result.AddWarning(field, "%s already listed in %s", spec.Name, prev)
				continue
			}
			seen[spec.Name] = field
		}
	}
}

func (v *Validator) checkLicense(rec *models.Record, result *models.Result) {
	license, ok := rec.Get("License")
	if !ok {
		return
	}

	for _, known := range knownLicenses {
		if license == known {
			return
		}
	}
	for _, known := range v.cfg.ExtraLicenses {
		if license == known {
			return
		}
	}

	result.AddWarning("License", "unrecognized license %q", license)
}

func (v *Validator) checkAuthors(rec *models.Record, result *models.Result) {
	var list []models.Author

	if value, ok := rec.Get("Authors@R"); ok {
		parsed, errs := authors.Parse(value)
		for _, err := range errs {
			result.AddError("Authors@R", "%v", err)
		}
		list = parsed

		for _, author := range parsed {
			for _, role := range author.Roles {
				if !models.KnownRoles[role] {
					result.AddWarning("Authors@R", "unknown role %q for %s", role, author.Name())
				}
			}
		}
	} else if value, ok := rec.Get("Maintainer"); ok {
		author, err := authors.ParseMaintainer(value)
		if err != nil {
			result.AddError("Maintainer", "%v", err)
			return
		}
		list = []models.Author{author}
	} else {
		result.AddError("Authors@R", "record has neither Authors@R nor Maintainer")
		return
	}

	creators := 0
	for _, author := range list {
		if !author.HasRole(models.RoleCreator) {
			continue
		}
		creators++
		if author.Email == "" {
			result.AddError("Authors@R", "creator %s has no email address", author.Name())
		}
	}

	if creators == 0 && len(list) > 0 {
		result.AddError("Authors@R", "no author with the creator role")
	}
}
