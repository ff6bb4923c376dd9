package driver

import (
	"fmt"
	"os"
	"path/filepath"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// ReadSource returns the contents of the script at path. With a non-empty
// rev the file is read as it was committed at that revision in the git
// repository enclosing path, instead of from the working tree.
func ReadSource(path, rev string) (string, error) {
	if rev == "" {
		buf, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(buf), nil
	}

	return readSourceAt(path, rev)
}

func readSourceAt(path, rev string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}

	repo, err := git.PlainOpenWithOptions(filepath.Dir(absPath), &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return "", fmt.Errorf("open repository for %s: %w", path, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("worktree: %w", err)
	}

	root, err := filepath.EvalSymlinks(worktree.Filesystem.Root())
	if err != nil {
		return "", fmt.Errorf("resolve repository root: %w", err)
	}
	dir, err := filepath.EvalSymlinks(filepath.Dir(absPath))
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	rel, err := filepath.Rel(root, filepath.Join(dir, filepath.Base(absPath)))
	if err != nil {
		return "", fmt.Errorf("locate %s in repository: %w", path, err)
	}

	hash, err := repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return "", fmt.Errorf("resolve revision %q: %w", rev, err)
	}

	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return "", fmt.Errorf("load commit %s: %w", hash, err)
	}

	file, err := commit.File(filepath.ToSlash(rel))
	if err != nil {
		return "", fmt.Errorf("%s at %s: %w", rel, rev, err)
	}

	return file.Contents()
}
