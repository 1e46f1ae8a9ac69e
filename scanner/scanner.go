// Package scanner discovers source files and classifies them by language.
package scanner

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/arjunmahishi/tshl/language"
	"github.com/arjunmahishi/tshl/types"
)

// DefaultIgnoreDirs returns the default list of directories to ignore.
func DefaultIgnoreDirs() map[string]struct{} {
	return map[string]struct{}{
		".git":          {},
		".hg":           {},
		".svn":          {},
		".jj":           {},
		"node_modules":  {},
		"vendor":        {},
		"dist":          {},
		"build":         {},
		"target":        {},
		".venv":         {},
		"__pycache__":   {},
		".mypy_cache":   {},
		".pytest_cache": {},
		".next":         {},
		".cache":        {},
		".turbo":        {},
		"coverage":      {},
	}
}

// Config holds scanner configuration.
type Config struct {
	Root       string
	Registry   *language.Registry
	IgnoreDirs map[string]struct{}
	MaxBytes   int64
}

// Scanner discovers files the registry has a language for.
type Scanner struct {
	cfg Config
}

// New creates a new Scanner with the given configuration.
func New(cfg Config) *Scanner {
	if cfg.IgnoreDirs == nil {
		cfg.IgnoreDirs = DefaultIgnoreDirs()
	}
	return &Scanner{cfg: cfg}
}

// Collect walks the root and returns a FileJob for every recognised file.
func (s *Scanner) Collect() ([]types.FileJob, error) {
	absRoot, err := filepath.Abs(s.cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("resolve root: %w", err)
	}

	var jobs []types.FileJob
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path == absRoot {
				return nil
			}
			if s.shouldIgnoreDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		lang := s.cfg.Registry.Select(path)
		if lang == nil {
			return nil
		}

		if s.cfg.MaxBytes > 0 {
			info, err := d.Info()
			if err != nil {
				// Skip files we can't stat
				return nil
			}
			if info.Size() > s.cfg.MaxBytes {
				return nil
			}
		}

		rel, err := filepath.Rel(absRoot, path)
		if err != nil {
			rel = path
		}

		jobs = append(jobs, types.FileJob{
			AbsPath:     path,
			DisplayPath: filepath.ToSlash(rel),
			Language:    lang.Name(),
		})
		return nil
	})

	if err != nil {
		return nil, err
	}

	return jobs, nil
}

// CollectSingle returns a single file as a FileJob. It fails if no language
// matches the file.
func (s *Scanner) CollectSingle(filePath string) (types.FileJob, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return types.FileJob{}, fmt.Errorf("resolve path: %w", err)
	}

	lang := s.cfg.Registry.Select(absPath)
	if lang == nil {
		return types.FileJob{}, fmt.Errorf("no language for %s", filePath)
	}

	return types.FileJob{
		AbsPath:     absPath,
		DisplayPath: filepath.Base(absPath),
		Language:    lang.Name(),
	}, nil
}

func (s *Scanner) shouldIgnoreDir(name string) bool {
	_, ok := s.cfg.IgnoreDirs[name]
	return ok
}
