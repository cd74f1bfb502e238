package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/chiefpi/tasty-query/pkg/classpath"
)

// buildPackageData walks dir and groups every *.class/*.tasty file it
// finds by its containing directory, turning that directory's path
// (relative to dir, "/" replaced with ".") into a package name. Files
// sitting directly in dir itself (no containing package directory) are
// skipped — this is the small in-memory fixture builder standing in for
// the out-of-scope filesystem walker, not a full classpath scanner.
func buildPackageData(dir string) ([]classpath.PackageData, error) {
	byPackage := make(map[string]*classpath.PackageData)

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := filepath.Ext(path)
		if ext != ".class" && ext != ".tasty" {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		relDir := filepath.Dir(rel)
		if relDir == "." {
			return nil
		}
		pkgName := strings.ReplaceAll(filepath.ToSlash(relDir), "/", ".")

		bytes, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		simpleName := strings.TrimSuffix(filepath.Base(rel), ext)

		pkg := byPackage[pkgName]
		if pkg == nil {
			pkg = &classpath.PackageData{Name: pkgName}
			byPackage[pkgName] = pkg
		}
		entry := classpath.ClassEntry{SimpleName: simpleName, DebugPath: rel, Bytes: bytes}
		if ext == ".class" {
			pkg.Classes = append(pkg.Classes, entry)
		} else {
			pkg.Tastys = append(pkg.Tastys, entry)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("tastyq: walk %s: %w", dir, err)
	}

	names := make([]string, 0, len(byPackage))
	for name := range byPackage {
		names = append(names, name)
	}
	sort.Strings(names)

	packages := make([]classpath.PackageData, 0, len(names))
	for _, name := range names {
		packages = append(packages, *byPackage[name])
	}
	return packages, nil
}
