package uuidfn

import "fmt"

// Func is one SQL function registration: a name, a fixed argument count
// and the pure application over SQLite scalars. Deterministic marks
// functions whose result depends only on their arguments; generators must
// not carry it or query planners may cache their results.
type Func struct {
	Name          string
	Arity         int
	Deterministic bool
	Apply         func(args []Value) Value
}

// Registrar is the host capability the function set is installed
// through, typically a database engine's create-function hook.
type Registrar interface {
	Register(name string, arity int, deterministic bool, apply func(args []Value) Value) error
}

// Functions returns the SQL surface in registration order.
//
// uuid_blob and uuid7_blob are overloaded on arity with distinct
// semantics: the zero-argument form always generates a fresh UUID, the
// one-argument form always decodes and re-encodes its argument — even a
// NULL argument yields NULL, never a fresh value.
func Functions() []Func {
	return []Func{
		{Name: "uuid", Arity: 0, Apply: func([]Value) Value {
			return TextValue(EncodeText(NewRandom()))
		}},
		{Name: "uuid_str", Arity: 1, Deterministic: true, Apply: func(args []Value) Value {
			return reencodeText(args[0])
		}},
		{Name: "uuid_blob", Arity: 0, Apply: func([]Value) Value {
			return BlobValue(EncodeBlob(NewRandom()))
		}},
		{Name: "uuid_blob", Arity: 1, Deterministic: true, Apply: func(args []Value) Value {
			return reencodeBlob(args[0])
		}},
		{Name: "uuid7", Arity: 0, Apply: func([]Value) Value {
			return TextValue(EncodeText(NewOrdered()))
		}},
		{Name: "uuid7_blob", Arity: 0, Apply: func([]Value) Value {
			return BlobValue(EncodeBlob(NewOrdered()))
		}},
		{Name: "uuid7_blob", Arity: 1, Deterministic: true, Apply: func(args []Value) Value {
			return reencodeBlob(args[0])
		}},
	}
}

// Register installs every function through r. The first registration
// failure stops the sequence and is returned; there is no rollback of the
// registrations that already succeeded.
func Register(r Registrar) error {
	for _, fn := range Functions() {
		if err := r.Register(fn.Name, fn.Arity, fn.Deterministic, fn.Apply); err != nil {
			return fmt.Errorf("register %s/%d: %w", fn.Name, fn.Arity, err)
		}
	}
	return nil
}

// reencodeText normalizes any accepted encoding to canonical text.
func reencodeText(arg Value) Value {
	u, ok := Decode(arg)
	if !ok {
		return NullValue()
	}
	return TextValue(EncodeText(u))
}

// reencodeBlob normalizes any accepted encoding to the 16-byte form.
func reencodeBlob(arg Value) Value {
	u, ok := Decode(arg)
	if !ok {
		return NullValue()
	}
	return BlobValue(EncodeBlob(u))
}
