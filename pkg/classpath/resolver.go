package classpath

import (
	"fmt"
	"os"
	"path/filepath"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Resolver materializes a manifest's git-hosted roots into a local
// cache directory, so Loader only ever deals with plain filesystem
// paths. Local (non-git) roots pass through unchanged.
type Resolver struct {
	// CacheDir is the directory cloned repositories are checked out
	// under, one subdirectory per root name.
	CacheDir string
}

// NewResolver builds a Resolver caching clones under cacheDir.
func NewResolver(cacheDir string) *Resolver {
	return &Resolver{CacheDir: cacheDir}
}

// Resolve returns the local directory root should be read from, cloning
// it first if it names a git repository.
func (r *Resolver) Resolve(root *RootSpec) (string, error) {
	if root == nil {
		return "", fmt.Errorf("classpath: nil root")
	}
	if !root.IsGit() {
		if root.Path == "" {
			return "", fmt.Errorf("classpath: root %q has neither path nor git source", root.OriginalName)
		}
		return root.Path, nil
	}

	dest := filepath.Join(r.CacheDir, root.Name)
	repo, err := r.clone(dest, root)
	if err != nil {
		return "", err
	}
	if err := checkout(repo, root); err != nil {
		return "", fmt.Errorf("classpath: checkout root %q: %w", root.OriginalName, err)
	}

	if root.Subdir == "" {
		return dest, nil
	}
	return filepath.Join(dest, root.Subdir), nil
}

func (r *Resolver) clone(dest string, root *RootSpec) (*git.Repository, error) {
	if info, err := os.Stat(filepath.Join(dest, ".git")); err == nil && info.IsDir() {
		repo, err := git.PlainOpen(dest)
		if err != nil {
			return nil, fmt.Errorf("classpath: open cached clone of %q: %w", root.OriginalName, err)
		}
		if err := fetch(repo); err != nil {
			return nil, fmt.Errorf("classpath: fetch root %q: %w", root.OriginalName, err)
		}
		return repo, nil
	}

	opts := &git.CloneOptions{URL: root.Git}
	if root.Branch != "" {
		opts.ReferenceName = plumbing.NewBranchReferenceName(root.Branch)
	}
	repo, err := git.PlainClone(dest, false, opts)
	if err != nil {
		return nil, fmt.Errorf("classpath: clone root %q from %s: %w", root.OriginalName, root.Git, err)
	}
	return repo, nil
}

func fetch(repo *git.Repository) error {
	err := repo.Fetch(&git.FetchOptions{})
	if err == git.NoErrAlreadyUpToDate {
		return nil
	}
	return err
}

func checkout(repo *git.Repository, root *RootSpec) error {
	wt, err := repo.Worktree()
	if err != nil {
		return err
	}
	opts := &git.CheckoutOptions{}
	switch {
	case root.Rev != "":
		opts.Hash = plumbing.NewHash(root.Rev)
	case root.Tag != "":
		opts.Branch = plumbing.NewTagReferenceName(root.Tag)
	case root.Branch != "":
		opts.Branch = plumbing.NewBranchReferenceName(root.Branch)
	default:
		return nil // already on the default branch from clone
	}
	return wt.Checkout(opts)
}
