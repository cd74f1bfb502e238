package classpath

import "github.com/chiefpi/tasty-query/pkg/decode"

// ClassEntry is one named classfile or TASTy payload inside a
// PackageData.
type ClassEntry struct {
	SimpleName string
	DebugPath  string
	Bytes      []byte
}

// PackageData is the flat inventory of one package's class and TASTy
// entries, as handed to the loader before any class is actually
// inspected.
type PackageData struct {
	Name    string
	Classes []ClassEntry
	Tastys  []ClassEntry
}

// Classpath is an immutable ordered sequence of PackageData.
type Classpath struct {
	packages []PackageData
}

// NewClasspath builds a Classpath over packages, in the given order.
func NewClasspath(packages []PackageData) Classpath {
	return Classpath{packages: append([]PackageData{}, packages...)}
}

// Packages returns the classpath's packages in order.
func (c Classpath) Packages() []PackageData {
	return append([]PackageData{}, c.packages...)
}

// ClassFilter names the (package, class) pairs WithFilter retains.
type ClassFilter struct {
	Package string
	Class   string
}

// WithFilter returns a narrowed Classpath retaining only the requested
// (package, class) pairs; packages with no retained classes are dropped.
func (c Classpath) WithFilter(wanted []ClassFilter) Classpath {
	keep := make(map[ClassFilter]struct{}, len(wanted))
	for _, w := range wanted {
		keep[w] = struct{}{}
	}
	var out []PackageData
	for _, pkg := range c.packages {
		filtered := PackageData{Name: pkg.Name}
		for _, cls := range pkg.Classes {
			if _, ok := keep[ClassFilter{Package: pkg.Name, Class: cls.SimpleName}]; ok {
				filtered.Classes = append(filtered.Classes, cls)
			}
		}
		for _, t := range pkg.Tastys {
			if _, ok := keep[ClassFilter{Package: pkg.Name, Class: t.SimpleName}]; ok {
				filtered.Tastys = append(filtered.Tastys, t)
			}
		}
		if len(filtered.Classes) > 0 || len(filtered.Tastys) > 0 {
			out = append(out, filtered)
		}
	}
	return NewClasspath(out)
}

// EntryKind discriminates what backing data a scanned root has.
type EntryKind string

const (
	EntryClassAndTasty EntryKind = "ClassAndTasty"
	EntryTastyOnly     EntryKind = "TastyOnly"
	EntryClassOnly     EntryKind = "ClassOnly"
)

// Entry records which of a root's backing payloads scanPackage found,
// deferring the actual parse to scanClass.
type Entry struct {
	Kind      EntryKind
	ClassData decode.ClassData
	TastyData []byte
}
