// Package errs defines the error taxonomy raised by the type algebra and
// the loader. Every error is attached to the (symbol, span) pair it
// diagnoses where one is available, per the "diagnostics attached to
// (symbol, span) pairs" contract consumers are expected to rely on.
package errs

import "fmt"

// Kind discriminates the error taxonomy.
type Kind string

const (
	KindTypeComputation   Kind = "TypeComputationError"
	KindNonMethodRef       Kind = "NonMethodReference"
	KindBadSelection       Kind = "BadSelection"
	KindMissingTopLevel    Kind = "MissingTopLevelTasty"
	KindAmbiguousOverload  Kind = "AmbiguousOverload"
	KindDecoder            Kind = "DecoderError"
)

// Diagnostic is a taxonomy error optionally tied to the tree node or
// symbol that produced it. Either one is recorded in Node as a
// fmt.Stringer so this package never imports tree/symbols (avoiding an
// import cycle);
// callers that want the original value type-assert it back out.
type Diagnostic struct {
	Kind    Kind
	Message string
	Node    fmt.Stringer
	Wrapped error
}

func (d *Diagnostic) Error() string {
	if d.Node != nil {
		return fmt.Sprintf("%s: %s (at %s)", d.Kind, d.Message, d.Node)
	}
	return fmt.Sprintf("%s: %s", d.Kind, d.Message)
}

func (d *Diagnostic) Unwrap() error { return d.Wrapped }

func new_(kind Kind, node fmt.Stringer, format string, args ...any) *Diagnostic {
	return &Diagnostic{Kind: kind, Message: fmt.Sprintf(format, args...), Node: node}
}

// TypeComputationError reports that a tree's type could not be derived —
// an unsupported node shape or missing information.
func TypeComputationError(node fmt.Stringer, format string, args ...any) *Diagnostic {
	return new_(KindTypeComputation, node, format, args...)
}

// NonMethodReference reports Apply/TypeApply applied to a non-method or
// non-polymorphic type.
func NonMethodReference(node fmt.Stringer, format string, args ...any) *Diagnostic {
	return new_(KindNonMethodRef, node, format, args...)
}

// BadSelection reports a Select whose qualifier type is not a path type.
func BadSelection(node fmt.Stringer, format string, args ...any) *Diagnostic {
	return new_(KindBadSelection, node, format, args...)
}

// MissingTopLevelTasty reports a classfile that declares a TASTy backing
// kind with no companion TASTy entry present.
func MissingTopLevelTasty(class fmt.Stringer) *Diagnostic {
	return new_(KindMissingTopLevel, class, "classfile declares TASTy but no companion TASTy entry is present")
}

// AmbiguousOverload reports that selectIn could not disambiguate among an
// overload set.
func AmbiguousOverload(node fmt.Stringer, format string, args ...any) *Diagnostic {
	return new_(KindAmbiguousOverload, node, format, args...)
}

// DecoderError wraps an error propagated verbatim from a collaborator
// (the TASTy unpickler or the class-file parser).
func DecoderError(node fmt.Stringer, wrapped error) *Diagnostic {
	d := new_(KindDecoder, node, "decoder error: %v", wrapped)
	d.Wrapped = wrapped
	return d
}

// Is reports whether err is a *Diagnostic of the given kind.
func Is(err error, kind Kind) bool {
	d, ok := err.(*Diagnostic)
	return ok && d.Kind == kind
}
