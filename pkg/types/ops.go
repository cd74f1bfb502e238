package types

import (
	"github.com/chiefpi/tasty-query/pkg/errs"
	"github.com/chiefpi/tasty-query/pkg/names"
	"github.com/chiefpi/tasty-query/pkg/symbols"
)

// Select builds the reference denoted by selecting name off of this,
// wrapping this as the new reference's prefix. It fails with BadSelection
// if `this` is not a path type (spec §4.3).
func Select(this Type, name names.Name) (Type, error) {
	if !IsPathType(this) {
		return nil, errs.BadSelection(this, "cannot select %q from non-path type %s", name, this)
	}
	if names.IsType(name) {
		return NewTypeRef(this, name), nil
	}
	return NewTermRef(this, name), nil
}

// SelectIn behaves like Select but additionally records the declaring
// owner for overload-resolution purposes.
func SelectIn(this Type, signed names.SignedName, owner symbols.Symbol) (Type, error) {
	if !IsPathType(this) {
		return nil, errs.BadSelection(this, "cannot selectIn %q from non-path type %s", signed, this)
	}
	ref := NewTermRef(this, signed)
	ref.DeclaringOwner = owner
	if sym, ok := owner.Lookup(signed); ok {
		ref.Sym = sym
	}
	return ref, nil
}

// WidenOverloads is the identity on every type except OverloadedType, for
// which it picks the unique MethodType alternative or fails with
// AmbiguousOverload.
func WidenOverloads(t Type) (Type, error) {
	overloaded, ok := t.(OverloadedType)
	if !ok {
		return t, nil
	}
	var method Type
	count := 0
	for _, alt := range overloaded.Alternatives {
		widened, err := WidenOverloads(alt)
		if err != nil {
			return nil, err
		}
		if _, isMethod := widened.(MethodType); isMethod {
			method = widened
			count++
		}
	}
	if count == 1 {
		return method, nil
	}
	return nil, errs.AmbiguousOverload(t, "cannot disambiguate among %d overload alternatives", len(overloaded.Alternatives))
}
