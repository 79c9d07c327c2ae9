//go:build cgo

package skeleton

import (
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// Extract parses the source bytes with the grammar registered for the file
// extension and walks the tree up to maximumDepth, collecting tokens in
// visitation order. Terminal nodes contribute their trimmed text whenever they
// are visited; a non-terminal node contributes its whitespace-collapsed span
// exactly when the walk reaches it at maximumDepth, otherwise the walk
// descends into its children. Tokens are joined with single spaces.
//
// A tree containing error nodes is walked as-is: partial skeletons of
// malformed input remain useful, so only a missing tree is fatal.
func Extract(source []byte, extension string, maximumDepth int) (string, error) {
	registeredGrammar, supported := grammarsByExtension[normalizeExtension(extension)]
	if !supported {
		return "", fmt.Errorf("%w: no grammar registered for extension %q", ErrUnsupportedLanguage, extension)
	}

	parser := sitter.NewParser()
	parser.SetLanguage(registeredGrammar.language)
	tree := parser.Parse(nil, source)
	if tree == nil {
		return "", ErrParseFailed
	}
	defer tree.Close()

	var tokens []string
	collectTokens(tree.RootNode(), 0, maximumDepth, source, &tokens)
	if len(tokens) == 0 {
		return emptyStructurePlaceholder, nil
	}
	return strings.Join(tokens, " "), nil
}

// collectTokens walks the tree depth-first. Depth zero is the root; every
// recursion into children increments the depth by one. Descent stops at
// maximumDepth, leaving sibling traversal at shallower depths unaffected.
func collectTokens(node *sitter.Node, currentDepth int, maximumDepth int, source []byte, tokens *[]string) {
	if node == nil || currentDepth > maximumDepth {
		return
	}

	if node.ChildCount() == 0 {
		leafText := strings.TrimSpace(node.Content(source))
		if leafText != "" {
			*tokens = append(*tokens, leafText)
		}
		return
	}

	if currentDepth == maximumDepth {
		collapsedSpan := strings.Join(strings.Fields(node.Content(source)), " ")
		if collapsedSpan != "" {
			*tokens = append(*tokens, collapsedSpan)
		}
		return
	}

	for childIndex := 0; childIndex < int(node.ChildCount()); childIndex++ {
		collectTokens(node.Child(childIndex), currentDepth+1, maximumDepth, source, tokens)
	}
}

// normalizeExtension lower-cases the extension and ensures a leading dot.
func normalizeExtension(extension string) string {
	normalized := strings.ToLower(strings.TrimSpace(extension))
	if normalized == "" {
		return normalized
	}
	if !strings.HasPrefix(normalized, ".") {
		normalized = "." + normalized
	}
	return normalized
}
