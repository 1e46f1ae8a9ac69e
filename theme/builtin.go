package theme

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed themes/*.toml
var builtinFS embed.FS

// DefaultName is the theme used when none is requested.
const DefaultName = "one-dark"

// Builtin loads one of the embedded themes.
func Builtin(name string) (*Theme, error) {
	data, err := fs.ReadFile(builtinFS, path.Join("themes", name+".toml"))
	if err != nil {
		return nil, fmt.Errorf("builtin theme %q: %w", name, err)
	}
	return Parse(data)
}

// BuiltinNames lists the embedded themes.
func BuiltinNames() []string {
	entries, _ := fs.ReadDir(builtinFS, "themes")
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".toml"))
	}
	sort.Strings(names)
	return names
}
