//go:build cgo

package skeleton

import (
	sitter "github.com/smacker/go-tree-sitter"
	golang "github.com/smacker/go-tree-sitter/golang"
	javascript "github.com/smacker/go-tree-sitter/javascript"
	python "github.com/smacker/go-tree-sitter/python"
	rust "github.com/smacker/go-tree-sitter/rust"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

const (
	goTagQuery = `(function_declaration name: (identifier) @name) @definition.function
(method_declaration name: (field_identifier) @name) @definition.method
(type_spec name: (type_identifier) @name) @definition.type`

	rustTagQuery = `(function_item name: (identifier) @name) @definition.function
(struct_item name: (type_identifier) @name) @definition.struct
(enum_item name: (type_identifier) @name) @definition.enum
(trait_item name: (type_identifier) @name) @definition.trait`

	pythonTagQuery = `(function_definition name: (identifier) @name) @definition.function
(class_definition name: (identifier) @name) @definition.class`

	typescriptTagQuery = `(function_declaration name: (identifier) @name) @definition.function
(class_declaration name: (type_identifier) @name) @definition.class
(method_definition name: (property_identifier) @name) @definition.method
(interface_declaration name: (type_identifier) @name) @definition.interface`

	javascriptTagQuery = `(function_declaration name: (identifier) @name) @definition.function
(class_declaration name: (identifier) @name) @definition.class
(method_definition name: (property_identifier) @name) @definition.method`
)

// grammar binds a tree-sitter language to the tag query used by symbol mode.
type grammar struct {
	language *sitter.Language
	tagQuery string
}

// grammarsByExtension is the closed capability table: the supported set is
// fixed and small, so dispatch is a plain map lookup rather than runtime
// polymorphism.
var grammarsByExtension = map[string]grammar{
	".go":  {language: golang.GetLanguage(), tagQuery: goTagQuery},
	".rs":  {language: rust.GetLanguage(), tagQuery: rustTagQuery},
	".py":  {language: python.GetLanguage(), tagQuery: pythonTagQuery},
	".ts":  {language: typescript.GetLanguage(), tagQuery: typescriptTagQuery},
	".tsx": {language: tsx.GetLanguage(), tagQuery: typescriptTagQuery},
	".js":  {language: javascript.GetLanguage(), tagQuery: javascriptTagQuery},
	".jsx": {language: javascript.GetLanguage(), tagQuery: javascriptTagQuery},
}

// IsSupportedExtension reports whether a grammar is registered for the extension.
func IsSupportedExtension(extension string) bool {
	_, supported := grammarsByExtension[normalizeExtension(extension)]
	return supported
}
