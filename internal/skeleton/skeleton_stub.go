//go:build !cgo

package skeleton

import (
	"fmt"

	"github.com/temirov/pluck/internal/types"
)

// Extract reports every extension unsupported when cgo is unavailable, so
// callers fall back to full file content on platforms that cannot build the
// tree-sitter bindings.
func Extract(source []byte, extension string, maximumDepth int) (string, error) {
	return "", fmt.Errorf("%w: tree-sitter bindings require cgo", ErrUnsupportedLanguage)
}

// ExtractTags reports every extension unsupported when cgo is unavailable.
func ExtractTags(source []byte, extension string) ([]types.Tag, error) {
	return nil, fmt.Errorf("%w: tree-sitter bindings require cgo", ErrUnsupportedLanguage)
}

// IsSupportedExtension always reports false when cgo is unavailable.
func IsSupportedExtension(extension string) bool {
	return false
}
