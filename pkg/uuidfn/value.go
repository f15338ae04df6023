package uuidfn

// Kind discriminates the shapes of a Value.
type Kind int

const (
	// KindNull covers SQL NULL, absent arguments and any type the codec
	// does not accept (integers, floats).
	KindNull Kind = iota
	KindText
	KindBlob
)

// Value is a dynamically typed SQLite scalar as seen by the function set,
// used both for arguments and for results. The Kind field is inspected
// once at decode entry and selects which payload field is meaningful.
type Value struct {
	Kind Kind
	Text string
	Blob []byte
}

// TextValue wraps a TEXT scalar.
func TextValue(s string) Value { return Value{Kind: KindText, Text: s} }

// BlobValue wraps a BLOB scalar.
func BlobValue(b []byte) Value { return Value{Kind: KindBlob, Blob: b} }

// NullValue is the typed absence result: decode failures map to it, and
// hosts translate it to SQL NULL.
func NullValue() Value { return Value{Kind: KindNull} }

// IsNull reports whether v carries no payload.
func (v Value) IsNull() bool { return v.Kind == KindNull }
