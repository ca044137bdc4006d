package record

// Field is one named value inside a Record.
type Field struct {
	Name  string
	Value Value
}

// Record is an ordered field-name-to-value mapping.
//
// Field names are unique within a record. Records are produced once per row at
// load time and treated as immutable afterwards; use Clone before handing one
// to code that may modify it.
type Record []Field

// Dataset is the full ordered sequence of records materialized by one load.
type Dataset []Record

// FromStrings zips names against values, producing string fields.
// The caller guarantees len(names) == len(values).
func FromStrings(names, values []string) Record {
	r := make(Record, len(names))
	for i := range names {
		r[i] = Field{Name: names[i], Value: String(values[i])}
	}
	return r
}

// Get returns the value of the named field.
func (r Record) Get(name string) (Value, bool) {
	for i := range r {
		if r[i].Name == name {
			return r[i].Value, true
		}
	}
	return Value{}, false
}

// Has reports whether the record contains the named field.
func (r Record) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Names returns the field names in order.
func (r Record) Names() []string {
	names := make([]string, len(r))
	for i := range r {
		names[i] = r[i].Name
	}
	return names
}

// Equal reports whether both records hold the same fields in the same order.
func (r Record) Equal(o Record) bool {
	if len(r) != len(o) {
		return false
	}
	for i := range r {
		if r[i].Name != o[i].Name || !r[i].Value.Equal(o[i].Value) {
			return false
		}
	}
	return true
}

// Clone creates a deep copy of the record.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	c := make(Record, len(r))
	for i := range r {
		c[i] = Field{Name: r[i].Name, Value: r[i].Value.clone()}
	}
	return c
}
