package classpath

import (
	"fmt"
	"testing"

	"github.com/chiefpi/tasty-query/pkg/decode"
	"github.com/chiefpi/tasty-query/pkg/names"
	"github.com/chiefpi/tasty-query/pkg/symbols"
	"github.com/chiefpi/tasty-query/pkg/tree"
	"github.com/chiefpi/tasty-query/pkg/types"
)

type fakeParser struct {
	kinds map[string]decode.ClassKind
}

func (p *fakeParser) ReadKind(data decode.ClassData) (decode.ClassKind, error) {
	if k, ok := p.kinds[data.DebugPath]; ok {
		return k, nil
	}
	return decode.Other{}, nil
}

func (p *fakeParser) LoadScala2Class(symbols.Symbol, []byte, int) error { return nil }
func (p *fakeParser) LoadJavaClass(symbols.Symbol, []byte, string) error { return nil }

type fakeUnpickler struct {
	forest []tree.Tree
	err    error
}

func (u *fakeUnpickler) UnpicklePositions() (decode.PositionSection, error) {
	return fakePositions{}, nil
}

func (u *fakeUnpickler) UnpickleTrees(decode.PositionSection) (decode.TreeSection, error) {
	if u.err != nil {
		return nil, u.err
	}
	return fakeTrees{forest: u.forest}, nil
}

type fakePositions struct{}

func (fakePositions) SpanOf(int) (int, int, int, int, bool) { return 0, 0, 0, 0, false }

type fakeTrees struct{ forest []tree.Tree }

func (t fakeTrees) Trees() (any, error) { return t.forest, nil }

type fakeFactory struct {
	unpicklers map[string]*fakeUnpickler
}

func (f *fakeFactory) New(bytes []byte) (decode.TastyUnpickler, error) {
	key := string(bytes)
	if u, ok := f.unpicklers[key]; ok {
		return u, nil
	}
	return nil, fmt.Errorf("fakeFactory: no unpickler registered for %q", key)
}

func newTestLoader(parser *fakeParser, factory *fakeFactory) (*Loader, *symbols.Table) {
	table := symbols.NewTable()
	cp := NewClasspath(nil)
	return NewLoader(cp, table, parser, factory), table
}

func TestInitPackagesIsIdempotent(t *testing.T) {
	cp := NewClasspath([]PackageData{{Name: "a.b"}})
	table := symbols.NewTable()
	l := NewLoader(cp, table, &fakeParser{}, &fakeFactory{})

	if err := l.InitPackages(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(l.packages); got != 1 {
		t.Fatalf("pending packages = %d, want 1", got)
	}
	if err := l.InitPackages(); err != nil {
		t.Fatalf("unexpected error on second call: %v", err)
	}
	if got := len(l.packages); got != 1 {
		t.Fatalf("second InitPackages call changed pending packages to %d", got)
	}
}

func TestScanPackageSkipsNestedAndModuleNames(t *testing.T) {
	cp := NewClasspath([]PackageData{{
		Name: "p",
		Classes: []ClassEntry{
			{SimpleName: "Foo", DebugPath: "p/Foo.class"},
			{SimpleName: "Foo$Inner", DebugPath: "p/Foo$Inner.class"},
			{SimpleName: "Foo$", DebugPath: "p/Foo$.class"},
		},
	}})
	l, table := newTestLoader(&fakeParser{}, &fakeFactory{})
	l.Classpath = cp
	if err := l.InitPackages(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var pkg *symbols.PackageClassSymbol
	for p := range l.packages {
		pkg = p
	}
	if err := l.ScanPackage(pkg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(l.entries); got != 1 {
		t.Fatalf("entered roots = %d, want 1 (only the unsuffixed name)", got)
	}
	if !pkg.Initialised() {
		t.Fatalf("expected package to be marked initialised")
	}
	_ = table
}

func TestScanPackageIsIdempotent(t *testing.T) {
	cp := NewClasspath([]PackageData{{
		Name:    "p",
		Classes: []ClassEntry{{SimpleName: "Foo", DebugPath: "p/Foo.class"}},
	}})
	l, _ := newTestLoader(&fakeParser{}, &fakeFactory{})
	l.Classpath = cp
	if err := l.InitPackages(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var pkg *symbols.PackageClassSymbol
	for p := range l.packages {
		pkg = p
	}
	if err := l.ScanPackage(pkg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before := len(l.entries)
	if err := l.ScanPackage(pkg); err != nil {
		t.Fatalf("unexpected error on second call: %v", err)
	}
	if got := len(l.entries); got != before {
		t.Fatalf("second ScanPackage call changed entries from %d to %d", before, got)
	}
}

func rootClassSymbol(t *testing.T, l *Loader) *symbols.ClassSymbol {
	t.Helper()
	for cls := range l.entries {
		return cls
	}
	t.Fatalf("no pending entries")
	return nil
}

func TestScanClassUnpicklesTastyOnlyEntry(t *testing.T) {
	leaf := tree.NewFreeIdent(names.Simple("x"), types.NoType)
	factory := &fakeFactory{unpicklers: map[string]*fakeUnpickler{
		"tasty-bytes": {forest: []tree.Tree{leaf}},
	}}
	cp := NewClasspath([]PackageData{{
		Name:   "p",
		Tastys: []ClassEntry{{SimpleName: "Foo", Bytes: []byte("tasty-bytes")}},
	}})
	l, _ := newTestLoader(&fakeParser{}, factory)
	l.Classpath = cp
	if err := l.InitPackages(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var pkg *symbols.PackageClassSymbol
	for p := range l.packages {
		pkg = p
	}
	if err := l.ScanPackage(pkg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cls := rootClassSymbol(t, l)

	ok, err := l.ScanClass(cls)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("expected ScanClass to report success")
	}
	if !cls.Initialised() {
		t.Fatalf("expected class symbol to be marked initialised")
	}
	forest, ok := l.TopLevelTasty(cls)
	if !ok {
		t.Fatalf("expected TopLevelTasty to find cached trees")
	}
	if len(forest) != 1 || forest[0] != leaf {
		t.Fatalf("unexpected forest: %v", forest)
	}
}

func TestScanClassIsIdempotent(t *testing.T) {
	factory := &fakeFactory{unpicklers: map[string]*fakeUnpickler{
		"bytes": {forest: []tree.Tree{tree.NewFreeIdent(names.Simple("x"), types.NoType)}},
	}}
	cp := NewClasspath([]PackageData{{
		Name:   "p",
		Tastys: []ClassEntry{{SimpleName: "Foo", Bytes: []byte("bytes")}},
	}})
	l, _ := newTestLoader(&fakeParser{}, factory)
	l.Classpath = cp
	_ = l.InitPackages()
	var pkg *symbols.PackageClassSymbol
	for p := range l.packages {
		pkg = p
	}
	_ = l.ScanPackage(pkg)
	cls := rootClassSymbol(t, l)

	if _, err := l.ScanClass(cls); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ok, err := l.ScanClass(cls)
	if err != nil {
		t.Fatalf("unexpected error on second call: %v", err)
	}
	if ok {
		t.Fatalf("expected second ScanClass call to report no-op")
	}
}

func TestScanClassReportsMissingTopLevelTasty(t *testing.T) {
	parser := &fakeParser{kinds: map[string]decode.ClassKind{
		"p/Foo.class": decode.Tasty{},
	}}
	cp := NewClasspath([]PackageData{{
		Name:    "p",
		Classes: []ClassEntry{{SimpleName: "Foo", DebugPath: "p/Foo.class"}},
	}})
	l, _ := newTestLoader(parser, &fakeFactory{})
	l.Classpath = cp
	_ = l.InitPackages()
	var pkg *symbols.PackageClassSymbol
	for p := range l.packages {
		pkg = p
	}
	_ = l.ScanPackage(pkg)
	cls := rootClassSymbol(t, l)

	if _, err := l.ScanClass(cls); err == nil {
		t.Fatalf("expected an error for a TASTy-kind classfile with no companion entry")
	}
}

func TestTopLevelTastyRejectsUninitialisedClass(t *testing.T) {
	l, table := newTestLoader(&fakeParser{}, &fakeFactory{})
	cls, err := table.CreateClassSymbol(table.Root.Name(), table.Root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := l.TopLevelTasty(cls); ok {
		t.Fatalf("expected no cached trees for an uninitialised class")
	}
}
