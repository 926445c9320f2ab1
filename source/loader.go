/*
File    : C-Like/source/loader.go
*/

// Package source defines the SourceLoader collaborator: the parser
// consumes file text through this interface rather than touching the
// filesystem directly, keeping include resolution testable without a
// real filesystem.
package source

import (
	"os"
	"path/filepath"

	"github.com/carb0ned0/C-Like/clikeerr"
	"github.com/carb0ned0/C-Like/token"
)

// Loader resolves an #include path relative to a base directory and
// returns the file's canonical path (used as the include-dedup key) and
// its text. It fails with clikeerr.ParseIncludeIO when the file cannot
// be read.
type Loader interface {
	Read(relativePath, baseDir string) (canonicalPath string, text string, err error)

	// Canonicalize returns the same dedup key Read would produce for
	// path, without reading its contents. The parser uses this to seed
	// include-cycle detection with the root file's own identity, so a
	// cycle that loops back to the root is caught the same way a cycle
	// between two included files is.
	Canonicalize(path string) (string, error)
}

// OSLoader reads included files from the local filesystem, canonicalizing
// paths with filepath.Abs + filepath.Clean so "./x" and "x" under the
// same base dedupe to the same include.
type OSLoader struct{}

// NewOSLoader returns the default filesystem-backed Loader.
func NewOSLoader() OSLoader { return OSLoader{} }

func (OSLoader) Read(relativePath, baseDir string) (string, string, error) {
	full := relativePath
	if !filepath.IsAbs(full) {
		full = filepath.Join(baseDir, relativePath)
	}
	canonical, err := OSLoader{}.Canonicalize(full)
	if err != nil {
		return "", "", clikeerr.New(clikeerr.ParseIncludeIO, token.Position{}, "cannot resolve include path %q: %v", relativePath, err)
	}

	data, err := os.ReadFile(canonical)
	if err != nil {
		return "", "", clikeerr.New(clikeerr.ParseIncludeIO, token.Position{}, "cannot read include %q: %v", relativePath, err)
	}
	return canonical, string(data), nil
}

func (OSLoader) Canonicalize(path string) (string, error) {
	full := path
	if !filepath.IsAbs(full) {
		var err error
		full, err = filepath.Abs(full)
		if err != nil {
			return "", err
		}
	}
	return filepath.Clean(full), nil
}
