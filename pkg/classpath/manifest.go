// Package classpath implements the classpath abstraction and the
// demand-driven loader built on top of it: package inventory up front,
// class inspection only when a symbol is actually needed.
package classpath

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Manifest is the parsed contents of a classpath manifest file: the
// named roots a Resolver materializes into local directories before
// Loader ever touches them.
type Manifest struct {
	Path string
	Name string
	Root *RootSpec // the entry point root, by convention named "root"

	Roots      map[string]*RootSpec
	RootOrder  []string
}

// RootSpec describes one classpath root: either a local directory/jar
// already on disk, or a git-hosted one that a Resolver must fetch.
type RootSpec struct {
	Name         string
	OriginalName string

	// Path, if set, names a local directory or jar containing class and
	// TASTy files.
	Path string

	// Git, if set, names a repository a Resolver clones. Exactly one of
	// Rev, Tag, Branch may be set; none means the repository's default
	// branch.
	Git    string
	Rev    string
	Tag    string
	Branch string

	// Subdir narrows the cloned repository to one directory within it.
	Subdir string
}

// IsGit reports whether this root must be fetched via a Resolver rather
// than read directly off disk.
func (r *RootSpec) IsGit() bool { return r != nil && r.Git != "" }

// ValidationError collects every rule a classpath manifest broke, so a
// caller sees the whole set of problems in one report rather than
// stopping at the first one.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "classpath manifest rejected with no recorded issues"
	}
	lines := make([]string, 0, len(e.Issues)+1)
	lines = append(lines, fmt.Sprintf("classpath manifest has %d problem(s):", len(e.Issues)))
	for _, issue := range e.Issues {
		lines = append(lines, "  * "+issue)
	}
	return strings.Join(lines, "\n")
}

// LoadManifest reads and decodes a classpath manifest file, rejecting
// unknown YAML fields, then runs it through validate before handing it
// back to the caller.
func LoadManifest(path string) (*Manifest, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("classpath: no manifest path given")
	}
	absPath, absErr := filepath.Abs(path)
	if absErr != nil {
		return nil, fmt.Errorf("classpath: could not make %s absolute: %w", path, absErr)
	}

	raw, err := decodeManifestFile(absPath)
	if err != nil {
		return nil, err
	}

	manifest := raw.toManifest(absPath)
	if err := manifest.validate(); err != nil {
		return nil, err
	}
	return manifest, nil
}

// decodeManifestFile opens and strictly decodes the YAML document at
// absPath, distinguishing an unreadable file, an empty document, and a
// malformed one so LoadManifest's caller gets a specific failure reason.
func decodeManifestFile(absPath string) (manifestFile, error) {
	file, err := os.Open(absPath)
	if err != nil {
		return manifestFile{}, fmt.Errorf("classpath: cannot read manifest at %s: %w", absPath, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var raw manifestFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return manifestFile{}, fmt.Errorf("classpath: manifest at %s has no content", absPath)
		}
		return manifestFile{}, fmt.Errorf("classpath: invalid YAML in %s: %w", absPath, err)
	}
	return raw, nil
}

func (m *Manifest) validate() error {
	var verrs ValidationError
	if m.Name == "" {
		verrs.Issues = append(verrs.Issues, "name must be provided")
	}
	seen := make(map[string]string, len(m.Roots))
	for _, name := range m.RootOrder {
		root := m.Roots[name]
		if root.OriginalName == "" {
			verrs.Issues = append(verrs.Issues, "roots must not use empty keys")
			continue
		}
		if other, exists := seen[root.Name]; exists {
			verrs.Issues = append(verrs.Issues, fmt.Sprintf("roots %q and %q collide after sanitization", other, root.OriginalName))
		} else {
			seen[root.Name] = root.OriginalName
		}
		verrs.Issues = append(verrs.Issues, root.validate()...)
	}
	if m.Root == nil {
		verrs.Issues = append(verrs.Issues, `no root named "root"`)
	}
	if len(verrs.Issues) > 0 {
		return &verrs
	}
	return nil
}

func (r *RootSpec) validate() []string {
	var issues []string
	hasPath := r.Path != ""
	hasGit := r.Git != ""
	if hasPath && hasGit {
		issues = append(issues, fmt.Sprintf("root %q: path and git are mutually exclusive", r.OriginalName))
	}
	if !hasPath && !hasGit {
		issues = append(issues, fmt.Sprintf("root %q: must specify path or git", r.OriginalName))
	}
	refCount := 0
	for _, ref := range []string{r.Rev, r.Tag, r.Branch} {
		if ref != "" {
			refCount++
		}
	}
	if refCount > 1 {
		issues = append(issues, fmt.Sprintf("root %q: rev, tag, and branch are mutually exclusive", r.OriginalName))
	}
	if !hasGit && refCount > 0 {
		issues = append(issues, fmt.Sprintf("root %q: rev/tag/branch apply only to git roots", r.OriginalName))
	}
	return issues
}

type manifestFile struct {
	Name  string            `yaml:"name"`
	Roots rootMap           `yaml:"roots"`
}

type rootYAML struct {
	Path   string `yaml:"path"`
	Git    string `yaml:"git"`
	Rev    string `yaml:"rev"`
	Tag    string `yaml:"tag"`
	Branch string `yaml:"branch"`
	Subdir string `yaml:"subdir"`
}

type rootMap struct {
	items []rootMapEntry
}

type rootMapEntry struct {
	name string
	spec *rootYAML
}

func (rm *rootMap) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == 0 || (value.Kind == yaml.ScalarNode && value.Tag == "!!null") {
		rm.items = nil
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("manifest: roots must be a mapping")
	}
	items := make([]rootMapEntry, 0, len(value.Content)/2)
	for i := 0; i < len(value.Content); i += 2 {
		var key string
		if err := value.Content[i].Decode(&key); err != nil {
			return err
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("manifest: roots must not use empty keys")
		}
		entry := new(rootYAML)
		if err := value.Content[i+1].Decode(entry); err != nil {
			return fmt.Errorf("manifest: root %q: %w", key, err)
		}
		items = append(items, rootMapEntry{name: key, spec: entry})
	}
	rm.items = items
	return nil
}

func (mf manifestFile) toManifest(path string) *Manifest {
	result := &Manifest{
		Path:      path,
		Name:      sanitizeSegment(strings.TrimSpace(mf.Name)),
		Roots:     make(map[string]*RootSpec, len(mf.Roots.items)),
		RootOrder: make([]string, 0, len(mf.Roots.items)),
	}
	for _, item := range mf.Roots.items {
		spec := &RootSpec{
			Name:         sanitizeSegment(item.name),
			OriginalName: item.name,
			Path:         strings.TrimSpace(item.spec.Path),
			Git:          strings.TrimSpace(item.spec.Git),
			Rev:          strings.TrimSpace(item.spec.Rev),
			Tag:          strings.TrimSpace(item.spec.Tag),
			Branch:       strings.TrimSpace(item.spec.Branch),
			Subdir:       strings.TrimSpace(item.spec.Subdir),
		}
		result.Roots[spec.Name] = spec
		result.RootOrder = append(result.RootOrder, spec.Name)
		if spec.Name == "root" {
			result.Root = spec
		}
	}
	return result
}

// sanitizeSegment normalizes a manifest key to a trimmed, lowercase
// identifier with underscores replaced by hyphens, so lookups are
// forgiving of the mapping key's original casing and separator style.
func sanitizeSegment(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "_", "-")
	return s
}
