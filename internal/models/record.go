package models

import "fmt"

// Field is a single field of a metadata record. Value holds the folded
// value with continuation lines joined by "\n" and indentation stripped.
type Field struct {
	Name  string
	Value string
}

// Record is an ordered set of metadata fields. Field names are unique
// and case-sensitive; insertion order is preserved so a record can be
// serialized back in the order it was read.
type Record struct {
	fields []Field
	index  map[string]int
}

// NewRecord creates an empty record.
func NewRecord() *Record {
	return &Record{
		index: make(map[string]int),
	}
}

// Add appends a field to the record. Adding a name that is already
// present is rejected rather than overwriting the earlier value.
func (r *Record) Add(name, value string) error {
	if _, ok := r.index[name]; ok {
		return fmt.Errorf("duplicate field %q", name)
	}
	r.index[name] = len(r.fields)
	r.fields = append(r.fields, Field{Name: name, Value: value})
	return nil
}

// Get returns the value of a field and whether it is present.
func (r *Record) Get(name string) (string, bool) {
	i, ok := r.index[name]
	if !ok {
		return "", false
	}
	return r.fields[i].Value, true
}

// Has reports whether a field is present.
func (r *Record) Has(name string) bool {
	_, ok := r.index[name]
	return ok
}

// Fields returns the fields in insertion order.
func (r *Record) Fields() []Field {
	return r.fields
}

// Len returns the number of fields.
func (r *Record) Len() int {
	return len(r.fields)
}
