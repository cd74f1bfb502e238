package classpath

import (
	"fmt"
	"strings"

	"github.com/chiefpi/tasty-query/pkg/decode"
	"github.com/chiefpi/tasty-query/pkg/errs"
	"github.com/chiefpi/tasty-query/pkg/names"
	"github.com/chiefpi/tasty-query/pkg/symbols"
	"github.com/chiefpi/tasty-query/pkg/tree"
)

// topLevelSuffix is the one classfile-name suffix exempt from the
// nested-class ("$ before the final character") classification: TASTy's
// own "$package" top-level marker for package-object members.
const topLevelSuffix = "$package"

// LoadRoot is a capability token: only ScanClass constructs one (via the
// unexported newLoadRoot), so only the call path it dispatches into may
// install a root's initialized state.
type LoadRoot struct{ issued bool }

func newLoadRoot() LoadRoot { return LoadRoot{issued: true} }

// UnpicklerFactory builds a fresh TastyUnpickler over one TASTy file's
// bytes.
type UnpicklerFactory interface {
	New(bytes []byte) (decode.TastyUnpickler, error)
}

// Loader owns a Classpath and lazily, on demand, turns its packages and
// classes into symbols and trees: package inventory happens once and
// eagerly (InitPackages), class inspection happens once per class and
// only when asked (ScanClass).
type Loader struct {
	Classpath Classpath
	Table     *symbols.Table
	Parser    decode.ClassfileParser
	Unpickler UnpicklerFactory

	searched bool
	packages map[*symbols.PackageClassSymbol]PackageData
	entries  map[*symbols.ClassSymbol]*Entry
	trees    map[*symbols.ClassSymbol][]tree.Tree
}

// NewLoader builds a Loader over cp, creating symbols in table and
// parsing classfiles/TASTy through parser/unpickler.
func NewLoader(cp Classpath, table *symbols.Table, parser decode.ClassfileParser, unpickler UnpicklerFactory) *Loader {
	return &Loader{
		Classpath: cp,
		Table:     table,
		Parser:    parser,
		Unpickler: unpickler,
		packages:  make(map[*symbols.PackageClassSymbol]PackageData),
		entries:   make(map[*symbols.ClassSymbol]*Entry),
		trees:     make(map[*symbols.ClassSymbol][]tree.Tree),
	}
}

// InitPackages performs package inventory at most once: every package in
// the classpath gains a symbol, and the loader's pending-package map is
// populated for ScanPackage to drain.
func (l *Loader) InitPackages() error {
	if l.searched {
		return nil
	}
	for _, pkg := range l.Classpath.Packages() {
		segments := strings.Split(pkg.Name, ".")
		pkgSym, err := l.Table.ToPackageName(segments)
		if err != nil {
			return err
		}
		l.packages[pkgSym] = pkg
	}
	l.searched = true
	return nil
}

// ScanPackage removes pkg from the pending-package map (ensuring
// at-most-once) and enters a root for every retained class/tasty entry,
// skipping nested and module/companion classes.
func (l *Loader) ScanPackage(pkg *symbols.PackageClassSymbol) error {
	data, pending := l.packages[pkg]
	if !pending {
		return nil
	}
	delete(l.packages, pkg)

	byName := indexBySimpleName(data)
	for name, entry := range byName {
		if isNestedOrModule(name) {
			continue
		}
		_, _, classType, err := l.Table.EnterRoot(name, pkg)
		if err != nil {
			return err
		}
		l.entries[classType] = entry
	}

	pkg.MarkInitialised()
	return nil
}

type namedEntry struct {
	entry              Entry
	hasClass, hasTasty bool
}

// indexBySimpleName groups a package's flat class/tasty entries by their
// shared simple name, classifying each group's EntryKind.
func indexBySimpleName(data PackageData) map[string]*Entry {
	byName := make(map[string]*namedEntry)
	for _, c := range data.Classes {
		e := byName[c.SimpleName]
		if e == nil {
			e = &namedEntry{}
			byName[c.SimpleName] = e
		}
		e.hasClass = true
		e.entry.ClassData = decode.ClassData{DebugPath: c.DebugPath, Bytes: c.Bytes}
	}
	for _, t := range data.Tastys {
		e := byName[t.SimpleName]
		if e == nil {
			e = &namedEntry{}
			byName[t.SimpleName] = e
		}
		e.hasTasty = true
		e.entry.TastyData = t.Bytes
	}
	out := make(map[string]*Entry, len(byName))
	for name, e := range byName {
		entry := e.entry
		switch {
		case !e.hasClass:
			entry.Kind = EntryTastyOnly
		case e.hasTasty:
			entry.Kind = EntryClassAndTasty
		default:
			entry.Kind = EntryClassOnly
		}
		out[name] = &entry
	}
	return out
}

// isNestedOrModule reports whether name encodes a nested class ($ before
// the final character, excluding the top-level package-object suffix) or
// a module/companion class (ends in $, length > 1) — both of which
// scanPackage skips, since they are reached through their enclosing root
// rather than entered as roots themselves.
func isNestedOrModule(name string) bool {
	if strings.HasSuffix(name, topLevelSuffix) {
		return false
	}
	if idx := strings.IndexByte(name, '$'); idx >= 0 && idx < len(name)-1 {
		return true
	}
	if len(name) > 1 && strings.HasSuffix(name, "$") {
		return true
	}
	return false
}

// ScanClass dispatches cls's recorded Entry to the classfile parser or
// the TASTy unpickler, guarded by the presence of an entry in the lookup
// map (so a second call on the same class short-circuits to false).
func (l *Loader) ScanClass(cls *symbols.ClassSymbol) (bool, error) {
	entry, ok := l.entries[cls]
	if !ok {
		return false, nil
	}
	delete(l.entries, cls)
	token := newLoadRoot()

	switch entry.Kind {
	case EntryClassOnly, EntryClassAndTasty:
		kind, err := l.Parser.ReadKind(entry.ClassData)
		if err != nil {
			return false, err
		}
		return l.dispatchClassKind(cls, entry, kind, token)
	case EntryTastyOnly:
		return l.unpickleTasty(cls, entry.TastyData, token)
	default:
		return false, fmt.Errorf("classpath: class %q has no recorded entry kind", cls)
	}
}

func (l *Loader) dispatchClassKind(cls *symbols.ClassSymbol, entry *Entry, kind decode.ClassKind, token LoadRoot) (bool, error) {
	switch k := kind.(type) {
	case decode.Scala2:
		if err := l.Parser.LoadScala2Class(cls, k.Structure, k.RuntimeAnnotStart); err != nil {
			return false, err
		}
		return l.installRoot(cls, token), nil
	case decode.Java:
		if err := l.Parser.LoadJavaClass(cls, k.Structure, k.GenericSignature); err != nil {
			return false, err
		}
		return l.installRoot(cls, token), nil
	case decode.Tasty:
		if entry.Kind != EntryClassAndTasty {
			return false, errs.MissingTopLevelTasty(cls)
		}
		return l.unpickleTasty(cls, entry.TastyData, token)
	default:
		// decode.Other and any future kind: silently ignored.
		return false, nil
	}
}

func (l *Loader) unpickleTasty(cls *symbols.ClassSymbol, bytes []byte, token LoadRoot) (bool, error) {
	unpickler, err := l.Unpickler.New(bytes)
	if err != nil {
		return false, err
	}
	positions, err := unpickler.UnpicklePositions()
	if err != nil {
		return false, err
	}
	treeSection, err := unpickler.UnpickleTrees(positions)
	if err != nil {
		return false, err
	}
	decoded, err := treeSection.Trees()
	if err != nil {
		return false, err
	}
	forest, ok := decoded.([]tree.Tree)
	if !ok {
		return false, fmt.Errorf("classpath: tasty unpickler returned %T, not []tree.Tree", decoded)
	}
	if !l.installRoot(cls, token) {
		return false, nil
	}
	l.trees[cls] = forest
	return true, nil
}

// installRoot marks cls initialized, under the LoadRoot capability that
// only ScanClass's call path can construct.
func (l *Loader) installRoot(cls *symbols.ClassSymbol, token LoadRoot) bool {
	if !token.issued || cls.Initialised() {
		return false
	}
	cls.MarkInitialised()
	return true
}

// TopLevelTasty returns the cached top-level trees for cls, if it is
// owned by a package, already an initialized root, and not the
// object-class shadow of a real class.
func (l *Loader) TopLevelTasty(cls *symbols.ClassSymbol) ([]tree.Tree, bool) {
	if !cls.IsPackageMember() || !cls.Initialised() {
		return nil, false
	}
	if typeName, ok := cls.Name().(names.TypeName); ok && names.IsObjectClassSuffixed(typeName.Underlying) {
		return nil, false
	}
	forest, ok := l.trees[cls]
	return forest, ok
}
