// Package lang holds the embedded language definitions and the grammars
// compiled into the binary.
package lang

import (
	"embed"
	"io/fs"
)

//go:embed languages
var languages embed.FS

// Bundle is the embedded resource bundle. Each language lives in its own
// directory holding config.toml and highlights.scm.
var Bundle fs.FS = mustSub(languages, "languages")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
