package models

// ConstraintOp is a version comparison operator in a dependency constraint.
type ConstraintOp string

const (
	OpGreaterEqual ConstraintOp = ">="
	OpGreater      ConstraintOp = ">"
	OpEqual        ConstraintOp = "=="
	OpLessEqual    ConstraintOp = "<="
	OpLess         ConstraintOp = "<"
)

// KnownOps lists the accepted constraint operators.
var KnownOps = []ConstraintOp{OpGreaterEqual, OpGreater, OpEqual, OpLessEqual, OpLess}

// Constraint is a version requirement attached to a dependency.
type Constraint struct {
	Op      ConstraintOp
	Version string
}

// DependencySpec is one entry of a dependency field: a package name with
// an optional version constraint.
type DependencySpec struct {
	Name       string
	Constraint *Constraint
}

// String renders the spec the way it appears in a dependency field.
func (d DependencySpec) String() string {
	if d.Constraint == nil {
		return d.Name
	}
	return d.Name + " (" + string(d.Constraint.Op) + " " + d.Constraint.Version + ")"
}

// DependencyFields lists the record fields that hold dependency lists,
// in the order they are conventionally written.
var DependencyFields = []string{"Depends", "Imports", "Suggests", "LinkingTo", "Enhances"}
