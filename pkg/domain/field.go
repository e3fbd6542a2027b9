package domain

// FieldName identifies one of the two synchronized fields.
type FieldName string

const (
	// FieldAddress is the dotted-decimal IPv4 address field.
	FieldAddress FieldName = "address"
	// FieldBinary is the 32-bit binary field.
	FieldBinary FieldName = "binary"
)

// Valid reports whether n names a known field.
func (n FieldName) Valid() bool {
	return n == FieldAddress || n == FieldBinary
}

// FieldState is the validation state of a single field.
type FieldState string

const (
	// FieldStateEmpty means the field holds no value and no error.
	FieldStateEmpty FieldState = "EMPTY"
	// FieldStateValid means the field holds a value that converts cleanly.
	FieldStateValid FieldState = "VALID"
	// FieldStateInvalid means the field carries an advisory error message.
	FieldStateInvalid FieldState = "INVALID"
)

// Field is the current content of one field.
type Field struct {
	// Value is the text of the field. For the binary field it never contains separators.
	Value string `json:"value"`
	// Error is the advisory message shown next to the field; empty when there is none.
	Error string `json:"error,omitempty"`
}

// State derives the field's state. An error always wins over the value,
// since an invalid edit on the other field may have cleared this value
// while leaving its message in place.
func (f Field) State() FieldState {
	switch {
	case f.Error != "":
		return FieldStateInvalid
	case f.Value == "":
		return FieldStateEmpty
	default:
		return FieldStateValid
	}
}

// State is the pair of synchronized fields. When both values are set and
// neither field carries an error they denote the same 32-bit address.
type State struct {
	Address Field `json:"address"`
	Binary  Field `json:"binary"`
}

// Field returns the field named n.
func (s State) Field(n FieldName) Field {
	if n == FieldBinary {
		return s.Binary
	}

	return s.Address
}

// Edit replaces the whole text of one field, as a keystroke does in an input box.
type Edit struct {
	Field FieldName `json:"field"`
	Value string    `json:"value"`
}
