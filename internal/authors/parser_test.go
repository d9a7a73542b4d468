package authors

import (
	"testing"

	"github.com/desclint/desclint/internal/models"
)

func TestParseSinglePerson(t *testing.T) {
	value := `person("Hadley", "Wickham", email = "hadley@posit.co", role = c("aut", "cre"))`

	list, errs := Parse(value)
	if len(errs) != 0 {
		t.Fatalf("Unexpected errors: %v", errs)
	}
	if len(list) != 1 {
		t.Fatalf("Expected 1 author, got %d", len(list))
	}

	a := list[0]
	if a.Given != "Hadley" || a.Family != "Wickham" {
		t.Errorf("Name = %q %q, want Hadley Wickham", a.Given, a.Family)
	}
	if a.Email != "hadley@posit.co" {
		t.Errorf("Email = %q", a.Email)
	}
	if !a.HasRole(models.RoleAuthor) || !a.HasRole(models.RoleCreator) {
		t.Errorf("Roles = %v, want aut and cre", a.Roles)
	}
}

func TestParseVectorOfPersons(t *testing.T) {
	value := "c(\n" +
		`  person("Jenny", "Bryan", email = "jenny@posit.co", role = c("aut", "cre")),` + "\n" +
		`  person("Posit Software", role = c("cph", "fnd")),` + "\n" +
		`  person("Jim", "Hester", role = "aut", comment = c(ORCID = "0000-0002-2739-7082"))` + "\n" +
		")"

	list, errs := Parse(value)
	if len(errs) != 0 {
		t.Fatalf("Unexpected errors: %v", errs)
	}
	if len(list) != 3 {
		t.Fatalf("Expected 3 authors, got %d", len(list))
	}

	if list[1].Given != "Posit Software" || !list[1].HasRole(models.RoleFunder) {
		t.Errorf("Second author = %+v", list[1])
	}
	if list[2].Comment != "0000-0002-2739-7082" {
		t.Errorf("Comment = %q", list[2].Comment)
	}
}

func TestParseNamedGivenFamily(t *testing.T) {
	value := `person(given = "Yihui", family = "Xie", role = "aut")`

	list, errs := Parse(value)
	if len(errs) != 0 {
		t.Fatalf("Unexpected errors: %v", errs)
	}
	if list[0].Given != "Yihui" || list[0].Family != "Xie" {
		t.Errorf("Author = %+v", list[0])
	}
}

func TestParseSingleQuotes(t *testing.T) {
	value := `person('Jane', 'Doe', role = 'cre', email = 'jane@example.org')`

	list, errs := Parse(value)
	if len(errs) != 0 {
		t.Fatalf("Unexpected errors: %v", errs)
	}
	if list[0].Given != "Jane" || list[0].Email != "jane@example.org" {
		t.Errorf("Author = %+v", list[0])
	}
}

func TestParseNoPersons(t *testing.T) {
	_, errs := Parse("just some text")
	if len(errs) != 1 {
		t.Fatalf("Expected 1 error, got %v", errs)
	}
}

func TestParsePersonWithoutName(t *testing.T) {
	list, errs := Parse(`person(role = "aut")`)
	if len(errs) != 1 {
		t.Fatalf("Expected 1 error, got %v", errs)
	}
	if len(list) != 0 {
		t.Errorf("Expected no authors, got %v", list)
	}
}

func TestParseMaintainer(t *testing.T) {
	a, err := ParseMaintainer("Hadley Wickham <hadley@posit.co>")
	if err != nil {
		t.Fatalf("ParseMaintainer failed: %v", err)
	}

	if a.Given != "Hadley" || a.Family != "Wickham" {
		t.Errorf("Name = %q %q", a.Given, a.Family)
	}
	if a.Email != "hadley@posit.co" {
		t.Errorf("Email = %q", a.Email)
	}
	if !a.HasRole(models.RoleCreator) {
		t.Errorf("Roles = %v, want cre", a.Roles)
	}
}

func TestParseMaintainerMalformed(t *testing.T) {
	if _, err := ParseMaintainer("no email here"); err == nil {
		t.Error("Expected error for maintainer without email")
	}
}
