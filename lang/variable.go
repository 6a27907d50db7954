package lang

// Variable is a named, declared value. It is also a [Value]: wherever it is
// used as an argument it is written as its bare name, so later changes made
// with [Variable.Set] are never inlined.
//
// Variables are created with [Document.AddVariable].
type Variable struct {
	name    string
	value   Value
	section string
	comment string
}

func (*Variable) isValue() {}

// VariableOption configures a declared [Variable].
type VariableOption func(*Variable)

// WithSection groups the variable under the named section.
func WithSection(section string) VariableOption {
	return func(v *Variable) { v.section = section }
}

// WithComment places a line comment above the variable's declaration.
func WithComment(comment string) VariableOption {
	return func(v *Variable) { v.comment = comment }
}

// Name returns the declared name.
func (v *Variable) Name() string { return v.name }

// Value returns the current value.
func (v *Variable) Value() Value { return v.value }

// Set replaces the declared value.
func (v *Variable) Set(value Value) { v.value = value }

// Section returns the section name, or "" if the variable is unsectioned.
func (v *Variable) Section() string { return v.section }

// Comment returns the declaration comment, or "" if there is none.
func (v *Variable) Comment() string { return v.comment }

// Node returns the assignment statement that declares v.
func (v *Variable) Node() *Node {
	return NewAssignment(v.name, v.value)
}
