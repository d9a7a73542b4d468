package models

// Role codes from the fixed vocabulary used in Authors@R person entries.
const (
	RoleAuthor      = "aut"
	RoleCompiler    = "com"
	RoleCopyright   = "cph"
	RoleCreator     = "cre"
	RoleContributor = "ctb"
	RoleContractor  = "ctr"
	RoleDataContrib = "dtc"
	RoleFunder      = "fnd"
	RoleReviewer    = "rev"
	RoleThesis      = "ths"
	RoleTranslator  = "trl"
)

// KnownRoles is the accepted role vocabulary.
var KnownRoles = map[string]bool{
	RoleAuthor:      true,
	RoleCompiler:    true,
	RoleCopyright:   true,
	RoleCreator:     true,
	RoleContributor: true,
	RoleContractor:  true,
	RoleDataContrib: true,
	RoleFunder:      true,
	RoleReviewer:    true,
	RoleThesis:      true,
	RoleTranslator:  true,
}

// Author is one person entry from an Authors@R field or a Maintainer field.
type Author struct {
	Given   string
	Family  string
	Email   string
	Roles   []string
	Comment string
}

// HasRole reports whether the author carries the given role code.
func (a Author) HasRole(role string) bool {
	for _, r := range a.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Name returns the display name of the author.
func (a Author) Name() string {
	if a.Given == "" {
		return a.Family
	}
	if a.Family == "" {
		return a.Given
	}
	return a.Given + " " + a.Family
}
