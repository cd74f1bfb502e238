package main

import (
	"github.com/chiefpi/tasty-query/pkg/decode"
	"github.com/chiefpi/tasty-query/pkg/symbols"
	"github.com/chiefpi/tasty-query/pkg/tree"
)

// noopDecoder stands in for the real classfile parser and TASTy
// unpickler, both out-of-scope external collaborators specified only by
// interface. It classifies every classfile as Other and unpickles every
// TASTy payload to an empty tree forest, so `tastyq load` exercises the
// loader's control flow end-to-end without requiring a real decoder.
type noopDecoder struct{}

func (noopDecoder) ReadKind(decode.ClassData) (decode.ClassKind, error) {
	return decode.Other{}, nil
}

func (noopDecoder) LoadScala2Class(symbols.Symbol, []byte, int) error { return nil }
func (noopDecoder) LoadJavaClass(symbols.Symbol, []byte, string) error { return nil }

func (noopDecoder) New(bytes []byte) (decode.TastyUnpickler, error) {
	return noopUnpickler{}, nil
}

type noopUnpickler struct{}

func (noopUnpickler) UnpicklePositions() (decode.PositionSection, error) {
	return noopPositions{}, nil
}

func (noopUnpickler) UnpickleTrees(decode.PositionSection) (decode.TreeSection, error) {
	return noopTrees{}, nil
}

type noopPositions struct{}

func (noopPositions) SpanOf(int) (int, int, int, int, bool) { return 0, 0, 0, 0, false }

type noopTrees struct{}

func (noopTrees) Trees() (any, error) { return []tree.Tree{}, nil }
