// Package sqliteext wires the uuid SQL functions into the pure-Go
// modernc.org/sqlite driver. It is the only package that touches driver
// values; the function semantics live in pkg/uuidfn.
package sqliteext

import (
	"database/sql/driver"
	"fmt"
	"sync"

	sqlite "modernc.org/sqlite"

	"github.com/weiawesome/sqlite-uuid/pkg/uuidfn"
)

// DriverName is the database/sql driver the functions are installed into.
const DriverName = "sqlite"

var (
	once    sync.Once
	onceErr error
)

// Register installs the uuid function set into the modernc.org/sqlite
// driver. The driver's registry is process-wide, so Register is
// idempotent: the first call does the work, later calls return its
// result. Functions are visible on connections opened after Register.
func Register() error {
	once.Do(func() {
		r := &driverRegistrar{overloads: map[string]*overloadSet{}}
		if onceErr = uuidfn.Register(r); onceErr != nil {
			return
		}
		onceErr = r.install()
	})
	return onceErr
}

// overloadSet holds every arity registered under one SQL function name.
type overloadSet struct {
	byArity map[int]func([]uuidfn.Value) uuidfn.Value
	// deterministic only when every overload of the name is; the driver
	// registry keys functions by name, so overloaded names share one
	// flag and the safe direction is non-deterministic.
	deterministic bool
}

// driverRegistrar adapts the per-(name, arity) Registrar contract to the
// name-keyed registry of modernc.org/sqlite. Registrations are collected
// first and installed together so arity overloads can be folded into one
// variadic driver function.
type driverRegistrar struct {
	names     []string
	overloads map[string]*overloadSet
}

func (r *driverRegistrar) Register(name string, arity int, deterministic bool, apply func([]uuidfn.Value) uuidfn.Value) error {
	set := r.overloads[name]
	if set == nil {
		set = &overloadSet{byArity: map[int]func([]uuidfn.Value) uuidfn.Value{}, deterministic: true}
		r.overloads[name] = set
		r.names = append(r.names, name)
	}
	if _, dup := set.byArity[arity]; dup {
		return fmt.Errorf("duplicate registration for %s/%d", name, arity)
	}
	set.byArity[arity] = apply
	set.deterministic = set.deterministic && deterministic
	return nil
}

// install pushes the collected functions into the driver, preserving
// registration order. The first driver error aborts the rest.
func (r *driverRegistrar) install() error {
	for _, name := range r.names {
		set := r.overloads[name]

		nArg := int32(-1) // any count; dispatched below
		if len(set.byArity) == 1 {
			for arity := range set.byArity {
				nArg = int32(arity)
			}
		}

		xFunc := func(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
			apply, ok := set.byArity[len(args)]
			if !ok {
				return nil, fmt.Errorf("wrong number of arguments to function %s()", name)
			}
			in := make([]uuidfn.Value, len(args))
			for i, a := range args {
				in[i] = fromDriver(a)
			}
			return toDriver(apply(in)), nil
		}

		var err error
		if set.deterministic {
			err = sqlite.RegisterDeterministicScalarFunction(name, nArg, xFunc)
		} else {
			err = sqlite.RegisterScalarFunction(name, nArg, xFunc)
		}
		if err != nil {
			return fmt.Errorf("sqlite register %s: %w", name, err)
		}
	}
	return nil
}

// fromDriver maps a driver scalar onto the codec's value union. Types the
// codec never accepts (integers, floats) fold into the null shape.
func fromDriver(v driver.Value) uuidfn.Value {
	switch t := v.(type) {
	case string:
		return uuidfn.TextValue(t)
	case []byte:
		return uuidfn.BlobValue(t)
	default:
		return uuidfn.NullValue()
	}
}

// toDriver maps a result back to a driver scalar; the null shape becomes
// SQL NULL.
func toDriver(v uuidfn.Value) driver.Value {
	switch v.Kind {
	case uuidfn.KindText:
		return v.Text
	case uuidfn.KindBlob:
		return v.Blob
	default:
		return nil
	}
}
