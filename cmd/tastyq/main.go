package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/chiefpi/tasty-query/pkg/classpath"
	"github.com/chiefpi/tasty-query/pkg/context"
	"github.com/chiefpi/tasty-query/pkg/names"
	"github.com/chiefpi/tasty-query/pkg/symbols"
)

const cliToolVersion = "tastyq-cli 0.0.0-dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 1
	}
	switch args[0] {
	case "--help", "-h":
		printUsage()
		return 0
	case "--version", "-V", "version":
		fmt.Fprintln(os.Stdout, cliToolVersion)
		return 0
	case "load":
		return runLoad(args[1:])
	case "fmt-name":
		return runFmtName(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", args[0])
		printUsage()
		return 1
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  tastyq load <classpath.yml> <pkg.Class>")
	fmt.Fprintln(os.Stderr, "  tastyq fmt-name <raw.dotted.name>")
}

func runLoad(args []string) int {
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "tastyq load requires a classpath manifest and a pkg.Class target")
		return 1
	}
	manifestPath, target := args[0], args[1]

	manifest, err := classpath.LoadManifest(manifestPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read manifest: %v\n", err)
		return 1
	}
	if manifest.Root == nil {
		fmt.Fprintln(os.Stderr, `manifest has no root named "root"`)
		return 1
	}

	cacheDir, err := resolveTastyqHome()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to resolve TASTYQ_HOME: %v\n", err)
		return 1
	}
	resolver := classpath.NewResolver(cacheDir)
	dir, err := resolver.Resolve(manifest.Root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to resolve root %q: %v\n", manifest.Root.OriginalName, err)
		return 1
	}

	packages, err := buildPackageData(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to inventory %s: %v\n", dir, err)
		return 1
	}

	table := symbols.NewTable()
	loader := classpath.NewLoader(classpath.NewClasspath(packages), table, noopDecoder{}, noopDecoder{})
	if err := loader.InitPackages(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize packages: %v\n", err)
		return 1
	}

	pkgPath, className, err := splitTarget(target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	pkgSym, err := table.ToPackageName(pkgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to resolve package %q: %v\n", strings.Join(pkgPath, "."), err)
		return 1
	}

	ctx := context.New(table)
	if err := loader.ScanPackage(pkgSym); err != nil {
		fmt.Fprintf(os.Stderr, "failed to scan package %q: %v\n", strings.Join(pkgPath, "."), err)
		return 1
	}

	sym, found := ctx.FindSymbol(append(append([]string{}, pkgPath...), className))
	if !found {
		fmt.Fprintf(os.Stderr, "class %q not found in package %q\n", className, strings.Join(pkgPath, "."))
		return 1
	}
	classSym, ok := sym.(*symbols.ClassSymbol)
	if !ok {
		fmt.Fprintf(os.Stderr, "%q did not resolve to a class symbol\n", className)
		return 1
	}

	scanned, err := loader.ScanClass(classSym)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to scan class %q: %v\n", target, err)
		return 1
	}

	printLoadSummary(os.Stdout, pkgSym, classSym, scanned)
	return 0
}

// splitTarget parses "a.b.Foo" into package path ["a","b"] and class
// name "Foo" (the final dotted segment).
func splitTarget(target string) ([]string, string, error) {
	segments := strings.Split(target, ".")
	if len(segments) < 2 {
		return nil, "", fmt.Errorf("tastyq: target %q must be of the form pkg.Class", target)
	}
	return segments[:len(segments)-1], segments[len(segments)-1], nil
}

func printLoadSummary(w *os.File, pkg *symbols.PackageClassSymbol, cls *symbols.ClassSymbol, scanned bool) {
	fmt.Fprintf(w, "package %s: initialised=%v\n", pkg.Name(), pkg.Initialised())
	fmt.Fprintf(w, "class %s: initialised=%v scanned=%v\n", cls.Name(), cls.Initialised(), scanned)
	members := pkg.Members()
	memberNames := make([]string, 0, len(members))
	for name := range members {
		memberNames = append(memberNames, name.String())
	}
	sort.Strings(memberNames)
	fmt.Fprintf(w, "package members: %s\n", strings.Join(memberNames, ", "))
}

func resolveTastyqHome() (string, error) {
	if home := strings.TrimSpace(os.Getenv("TASTYQ_HOME")); home != "" {
		abs, err := filepath.Abs(home)
		if err != nil {
			return "", fmt.Errorf("resolve TASTYQ_HOME %q: %w", home, err)
		}
		return abs, nil
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve user home: %w", err)
	}
	return filepath.Join(userHome, ".tastyq"), nil
}

func runFmtName(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "tastyq fmt-name requires exactly one raw dotted name")
		return 1
	}
	segments := strings.Split(args[0], ".")
	var built names.Name = names.Simple(segments[0])
	for _, seg := range segments[1:] {
		built = names.Select(built, names.Simple(seg))
	}
	fmt.Fprintf(os.Stdout, "tag=%s text=%s\n", built.Tag(), built.String())
	return 0
}
