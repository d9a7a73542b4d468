// Package authors parses the Authors@R field (a restricted subset of
// person() call syntax) and the classic Maintainer field.
package authors

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/desclint/desclint/internal/models"
)

var (
	quotedRe     = regexp.MustCompile(`"([^"]*)"|'([^']*)'`)
	maintainerRe = regexp.MustCompile(`^(.*?)\s*<([^<>@\s]+@[^<>\s]+)>$`)
)

// Parse parses an Authors@R value: one or more person(...) entries,
// optionally wrapped in c(...). Entries that cannot be parsed are
// reported and skipped; the rest are returned.
func Parse(value string) ([]models.Author, []error) {
	var list []models.Author
	var errs []error

	entries := extractPersons(value)
	if len(entries) == 0 {
		return nil, []error{&models.LintError{
			Type:  models.ErrValidation,
			Field: "Authors@R",
			Err:   fmt.Errorf("no person() entries found"),
		}}
	}

	for _, entry := range entries {
		author, err := parsePerson(entry)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		list = append(list, author)
	}

	return list, errs
}

// ParseMaintainer parses a classic "Name <email>" Maintainer value into
// a single author with the creator role.
func ParseMaintainer(value string) (models.Author, error) {
	matches := maintainerRe.FindStringSubmatch(strings.TrimSpace(value))
	if matches == nil {
		return models.Author{}, &models.LintError{
			Type:  models.ErrValidation,
			Field: "Maintainer",
			Err:   fmt.Errorf("expected \"Name <email>\", got %q", value),
		}
	}

	author := models.Author{
		Email: matches[2],
		Roles: []string{models.RoleCreator},
	}

	name := strings.Fields(matches[1])
	switch len(name) {
	case 0:
	case 1:
		author.Given = name[0]
	default:
		author.Given = strings.Join(name[:len(name)-1], " ")
		author.Family = name[len(name)-1]
	}

	return author, nil
}

// extractPersons returns the argument text of every person(...) call,
// matching parentheses and skipping quoted strings.
func extractPersons(value string) []string {
	var entries []string

	for i := 0; i+6 < len(value); i++ {
		if !strings.HasPrefix(value[i:], "person") {
			continue
		}
		// Must be a call, not part of a longer identifier.
		if i > 0 && isIdentChar(value[i-1]) {
			continue
		}
		j := i + len("person")
		for j < len(value) && (value[j] == ' ' || value[j] == '\t' || value[j] == '\n') {
			j++
		}
		if j >= len(value) || value[j] != '(' {
			continue
		}

		inner, end, ok := balancedParens(value, j)
		if !ok {
			break
		}
		entries = append(entries, inner)
		i = end
	}

	return entries
}

func isIdentChar(c byte) bool {
	return c == '.' || c == '_' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// balancedParens returns the text between the paren at open and its
// match, plus the index of the closing paren.
func balancedParens(s string, open int) (string, int, bool) {
	depth := 0
	var quote byte

	for i := open; i < len(s); i++ {
		c := s[i]
		if quote != 0 {
			if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'':
			quote = c
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return s[open+1 : i], i, true
			}
		}
	}

	return "", 0, false
}

// splitArgs splits an argument list on top-level commas, respecting
// quotes and nested calls like c("aut", "cre").
func splitArgs(s string) []string {
	var args []string
	depth := 0
	var quote byte
	start := 0

	for i := 0; i < len(s); i++ {
		c := s[i]
		if quote != 0 {
			if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'':
			quote = c
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				args = append(args, s[start:i])
				start = i + 1
			}
		}
	}

	return append(args, s[start:])
}

func parsePerson(inner string) (models.Author, error) {
	var author models.Author
	positional := 0

	for _, arg := range splitArgs(inner) {
		arg = strings.TrimSpace(arg)
		if arg == "" {
			continue
		}

		name, value, named := splitNamedArg(arg)
		if !named {
			// Positional arguments: given name, then family name.
			s, ok := unquote(arg)
			if !ok {
				return models.Author{}, &models.LintError{
					Type:  models.ErrValidation,
					Field: "Authors@R",
					Err:   fmt.Errorf("unparsable person argument %q", arg),
				}
			}
			switch positional {
			case 0:
				author.Given = s
			case 1:
				author.Family = s
			}
			positional++
			continue
		}

		switch name {
		case "given":
			author.Given, _ = unquote(value)
		case "family":
			author.Family, _ = unquote(value)
		case "email":
			author.Email, _ = unquote(value)
		case "role":
			author.Roles = stringVector(value)
		case "comment":
			author.Comment = strings.Join(stringVector(value), ", ")
		}
	}

	if author.Given == "" && author.Family == "" {
		return models.Author{}, &models.LintError{
			Type:  models.ErrValidation,
			Field: "Authors@R",
			Err:   fmt.Errorf("person entry without a name: %q", strings.TrimSpace(inner)),
		}
	}

	return author, nil
}

// splitNamedArg splits "name = value" at a top-level '='.
func splitNamedArg(arg string) (name, value string, ok bool) {
	var quote byte
	for i := 0; i < len(arg); i++ {
		c := arg[i]
		if quote != 0 {
			if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'':
			quote = c
		case '=':
			return strings.TrimSpace(arg[:i]), strings.TrimSpace(arg[i+1:]), true
		case '(':
			// A call before any '=' means the arg is positional.
			return "", "", false
		}
	}
	return "", "", false
}

func unquote(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1], true
	}
	return s, false
}

// stringVector extracts the quoted strings of a value that is either a
// single string or a c(...) vector.
func stringVector(value string) []string {
	var out []string
	for _, m := range quotedRe.FindAllStringSubmatch(value, -1) {
		if m[1] != "" || strings.HasPrefix(m[0], `"`) {
			out = append(out, m[1])
		} else {
			out = append(out, m[2])
		}
	}
	return out
}
