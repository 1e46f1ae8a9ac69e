package lang

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/rust"
	"github.com/smacker/go-tree-sitter/toml"
)

// Grammars returns the grammars linked into the binary, keyed by the name
// used in a language's config.toml.
func Grammars() map[string]func() *sitter.Language {
	return map[string]func() *sitter.Language{
		"go":   golang.GetLanguage,
		"rust": rust.GetLanguage,
		"toml": toml.GetLanguage,
	}
}
