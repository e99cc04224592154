// Package scan finds the source files a code map is built from.
//
// A Scanner walks a directory tree, skipping well-known vendor and cache
// directories plus anything the root .gitignore rules out, and returns the
// matching source files with enough metadata to fingerprint the set for
// caching.
package scan

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
	"time"

	ignore "github.com/sabhiram/go-gitignore"
)

// DefaultExcludeDirs are directory names skipped in every scan unless the
// options override them.
var DefaultExcludeDirs = []string{".git", ".venv", "venv", "__pycache__", "node_modules"}

// DefaultExtensions are the file suffixes collected by default.
var DefaultExtensions = []string{".py"}

// File is one scanned source file.
type File struct {
	// Path is the slash-separated path relative to the scan root.
	Path    string
	Size    int64
	ModTime time.Time
}

// Options configures a Scanner. Zero values fall back to the defaults.
type Options struct {
	// ExcludeDirs lists directory names to skip entirely. Nil means
	// DefaultExcludeDirs; an empty non-nil slice disables the skipping.
	ExcludeDirs []string
	// ExcludeFiles lists file names to skip.
	ExcludeFiles []string
	// Extensions lists the file suffixes to collect. Nil means
	// DefaultExtensions.
	Extensions []string
	// UseGitignore applies the .gitignore at the scan root, when present,
	// on top of the exclude lists.
	UseGitignore bool
}

// Scanner walks directory trees for source files. The zero value is not
// usable - construct one with New.
type Scanner struct {
	excludeDirs  map[string]struct{}
	excludeFiles map[string]struct{}
	extensions   []string
	useGitignore bool
}

// New returns a Scanner for the given options.
func New(opts Options) *Scanner {
	dirs := opts.ExcludeDirs
	if dirs == nil {
		dirs = DefaultExcludeDirs
	}
	exts := opts.Extensions
	if exts == nil {
		exts = DefaultExtensions
	}

	s := &Scanner{
		excludeDirs:  make(map[string]struct{}, len(dirs)),
		excludeFiles: make(map[string]struct{}, len(opts.ExcludeFiles)),
		extensions:   slices.Clone(exts),
		useGitignore: opts.UseGitignore,
	}
	for _, d := range dirs {
		s.excludeDirs[d] = struct{}{}
	}
	for _, f := range opts.ExcludeFiles {
		s.excludeFiles[f] = struct{}{}
	}
	return s
}

// Scan walks root and returns the matching files sorted by path. The root
// must be a directory. Paths in the result are relative to root and use
// forward slashes on every platform.
func (s *Scanner) Scan(ctx context.Context, root string) ([]File, error) {
	rootFS, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve scan root: %w", err)
	}

	var matcher *ignore.GitIgnore
	if s.useGitignore {
		matcher, err = ignore.CompileIgnoreFile(filepath.Join(rootFS, ".gitignore"))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read .gitignore: %w", err)
		}
	}

	var files []File
	err = filepath.WalkDir(rootFS, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(rootFS, path)
		if err != nil {
			return err
		}
		if rel == "." {
			if !d.IsDir() {
				return fmt.Errorf("scan root %s is not a directory", root)
			}
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if _, skip := s.excludeDirs[d.Name()]; skip {
				return fs.SkipDir
			}
			if matcher != nil && matcher.MatchesPath(rel+"/") {
				return fs.SkipDir
			}
			return nil
		}

		if !s.matchesExtension(d.Name()) {
			return nil
		}
		if _, skip := s.excludeFiles[d.Name()]; skip {
			return nil
		}
		if matcher != nil && matcher.MatchesPath(rel) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return fmt.Errorf("stat %s: %w", rel, err)
		}
		files = append(files, File{Path: rel, Size: info.Size(), ModTime: info.ModTime()})
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(files, func(a, b File) int {
		return strings.Compare(a.Path, b.Path)
	})
	return files, nil
}

func (s *Scanner) matchesExtension(name string) bool {
	for _, ext := range s.extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
