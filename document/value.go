package document

import "strconv"

// Kind identifies the JSON type of a Value. The set is closed; layout and
// serialization dispatch on it with exhaustive switches.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the lowercase JSON type name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a parsed JSON value. It is a tagged variant: exactly the fields
// relevant to Kind are meaningful. Object member order is insertion order
// from the source document. Numbers keep their source text so display and
// re-serialization are lossless.
//
// Values are immutable once parsed.
type Value struct {
	Kind Kind

	Bool   bool
	Number string
	Str    string

	// Array elements, in order.
	Items []*Value

	// Object members, in order. Keys[i] names Members[i].
	Keys    []string
	Members []*Value
}

// IsComposite reports whether the value is an array or object.
func (v *Value) IsComposite() bool {
	return v.Kind == KindArray || v.Kind == KindObject
}

// Len returns the number of children for composites, 0 otherwise.
func (v *Value) Len() int {
	switch v.Kind {
	case KindArray:
		return len(v.Items)
	case KindObject:
		return len(v.Members)
	default:
		return 0
	}
}

// Primitive returns the rendered text of a non-composite value, without
// surrounding quotes for strings.
func (v *Value) Primitive() string {
	switch v.Kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindNumber:
		return v.Number
	case KindString:
		return v.Str
	default:
		return ""
	}
}
