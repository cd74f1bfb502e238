// Package decode defines the glue interfaces Loader calls into to turn
// raw classfile and TASTy bytes into initialized symbols and trees. The
// decoders themselves — a JVM classfile parser and a TASTy unpickler —
// are out of scope; this package only fixes the contract Loader
// depends on, per the external-interfaces boundary.
package decode

import "github.com/chiefpi/tasty-query/pkg/symbols"

// ClassData is the opaque byte payload of one classfile.
type ClassData struct {
	DebugPath string
	Bytes     []byte
}

// ClassKind is the closed set of classfile encodings ClassfileParser can
// report.
type ClassKind interface {
	isClassKind()
}

// Scala2 marks a classfile carrying a legacy pickle-encoded structure.
type Scala2 struct {
	Structure         []byte
	RuntimeAnnotStart int
}

func (Scala2) isClassKind() {}

// Java marks a classfile with no TASTy or pickle companion: a plain JVM
// class, optionally carrying a generic-signature attribute.
type Java struct {
	Structure        []byte
	GenericSignature string
}

func (Java) isClassKind() {}

// Tasty is the sentinel reported when the classfile declares a TASTy
// attribute; the actual tree data comes from the companion TASTy entry,
// not from this classfile's bytes.
type Tasty struct{}

func (Tasty) isClassKind() {}

// Other marks a classfile kind the loader silently ignores.
type Other struct{}

func (Other) isClassKind() {}

// ClassfileParser inspects classfile bytes and populates the symbols
// they declare as initialized, for the kinds that carry their own
// member structure (Scala2, Java). TASTy-kind classfiles are handled by
// the companion TastyUnpickler instead.
type ClassfileParser interface {
	ReadKind(data ClassData) (ClassKind, error)
	LoadScala2Class(cls symbols.Symbol, structure []byte, runtimeAnnotStart int) error
	LoadJavaClass(cls symbols.Symbol, structure []byte, genericSignature string) error
}

// PositionSection is the first staged unpickler TastyUnpickler yields:
// consuming it produces per-node source spans keyed by tree index.
type PositionSection interface {
	// SpanOf returns the recorded span for the index-th tree in
	// encounter order, or the zero Span if none was recorded.
	SpanOf(index int) (startLine, startCol, endLine, endCol int, ok bool)
}

// TreeSection is the second staged unpickler: consuming it, against an
// already-consumed PositionSection, produces the top-level tree forest.
type TreeSection interface {
	// Trees decodes and returns the top-level tree list (any type
	// assertable back to []tree.Tree by the caller, kept as `any` to
	// avoid decode importing tree).
	Trees() (any, error)
}

// TastyUnpickler builds the two staged unpicklers a TASTy byte payload
// decodes through, in order: positions, then trees.
type TastyUnpickler interface {
	UnpicklePositions() (PositionSection, error)
	UnpickleTrees(PositionSection) (TreeSection, error)
}
