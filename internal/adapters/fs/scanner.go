// Package fs provides file system adapters for scanning directories and writing artifacts.
package fs

import (
	"context"
	iofs "io/fs"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/fileslist/internal/core/domain"
	"go.trai.ch/fileslist/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileScanner = (*Scanner)(nil)

// Scanner implements ports.FileScanner using doublestar globs over os.DirFS.
type Scanner struct{}

// NewScanner creates a new Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan resolves the given patterns against baseDir.
// Paths inside .git, .jj and node_modules are never returned.
func (s *Scanner) Scan(ctx context.Context, baseDir string, patterns, ignores []string) (domain.FileList, error) {
	info, err := os.Stat(baseDir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrBaseDirNotFound.Error()), "base", baseDir)
	}
	if !info.IsDir() {
		return nil, zerr.With(domain.ErrBaseDirNotFound, "base", baseDir)
	}

	ignores, err = normalizePatterns(ignores)
	if err != nil {
		return nil, err
	}

	fsys := os.DirFS(baseDir)
	unique := make(map[string]struct{})

	for _, pattern := range patterns {
		pattern, err := normalizePattern(pattern)
		if err != nil {
			return nil, err
		}

		walkErr := doublestar.GlobWalk(fsys, pattern, func(p string, _ iofs.DirEntry) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if skipped(p) || ignored(p, ignores) {
				return nil
			}
			unique[p] = struct{}{}
			return nil
		}, doublestar.WithFilesOnly(), doublestar.WithFailOnIOErrors())
		if walkErr != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			return nil, zerr.With(zerr.Wrap(walkErr, domain.ErrScanFailed.Error()), "pattern", pattern)
		}
	}

	// Sorted so output does not depend on directory traversal order.
	files := make(domain.FileList, 0, len(unique))
	for p := range unique {
		files = append(files, p)
	}
	slices.Sort(files)

	return files, nil
}

func normalizePatterns(patterns []string) ([]string, error) {
	res := make([]string, 0, len(patterns))
	for _, p := range patterns {
		n, err := normalizePattern(p)
		if err != nil {
			return nil, err
		}
		res = append(res, n)
	}
	return res, nil
}

// normalizePattern turns a user pattern into one valid for an fs.FS rooted at the base directory.
func normalizePattern(pattern string) (string, error) {
	p := strings.ReplaceAll(pattern, "\\", "/")
	for strings.HasPrefix(p, "./") {
		p = strings.TrimPrefix(p, "./")
	}
	if p == "" || strings.HasPrefix(p, "/") || !doublestar.ValidatePattern(p) {
		return "", zerr.With(domain.ErrInvalidPattern, "pattern", pattern)
	}
	return p, nil
}

// skipped reports whether any segment of p, the file name included, is a skipped name.
// A ".git" file is a worktree link and is dropped like the directory.
func skipped(p string) bool {
	for segment := range strings.SplitSeq(p, "/") {
		if domain.SkippedDirs[segment] {
			return true
		}
	}
	return false
}

// ignored reports whether p, or one of its parent directories, matches an ignore pattern.
func ignored(p string, ignores []string) bool {
	for _, ignore := range ignores {
		for candidate := p; candidate != "." && candidate != "/"; candidate = path.Dir(candidate) {
			if ok, _ := doublestar.Match(ignore, candidate); ok {
				return true
			}
		}
	}
	return false
}
