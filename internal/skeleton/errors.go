// Package skeleton compresses source files into depth-bounded structural
// abbreviations by walking their tree-sitter parse trees.
package skeleton

import "errors"

// ErrUnsupportedLanguage indicates that no grammar is registered for a file extension.
var ErrUnsupportedLanguage = errors.New("skeleton: unsupported language")

// ErrParseFailed indicates that the parser produced no tree at all. Trees
// containing error nodes do not trigger it; partial structure is still walked.
var ErrParseFailed = errors.New("skeleton: parse failed")

// emptyStructurePlaceholder is returned when a walk collects no tokens.
const emptyStructurePlaceholder = "(no structure found)"
