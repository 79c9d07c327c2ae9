//go:build cgo

package skeleton

import (
	"fmt"
	"sort"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/temirov/pluck/internal/types"
)

const (
	nameCaptureName         = "name"
	definitionCapturePrefix = "definition."
)

// ExtractTags runs the registered tag query for the file extension and
// returns the declared symbols sorted by their position in the source.
func ExtractTags(source []byte, extension string) ([]types.Tag, error) {
	registeredGrammar, supported := grammarsByExtension[normalizeExtension(extension)]
	if !supported {
		return nil, fmt.Errorf("%w: no grammar registered for extension %q", ErrUnsupportedLanguage, extension)
	}

	parser := sitter.NewParser()
	parser.SetLanguage(registeredGrammar.language)
	tree := parser.Parse(nil, source)
	if tree == nil {
		return nil, ErrParseFailed
	}
	defer tree.Close()

	tagQuery, queryError := sitter.NewQuery([]byte(registeredGrammar.tagQuery), registeredGrammar.language)
	if queryError != nil {
		return nil, fmt.Errorf("compile tag query for %q: %w", extension, queryError)
	}
	defer tagQuery.Close()

	queryCursor := sitter.NewQueryCursor()
	defer queryCursor.Close()
	queryCursor.Exec(tagQuery, tree.RootNode())

	var tags []types.Tag
	for {
		match, hasMatch := queryCursor.NextMatch()
		if !hasMatch {
			break
		}
		match = queryCursor.FilterPredicates(match, source)

		var symbolName string
		var symbolKind string
		var definitionNode *sitter.Node
		for _, capture := range match.Captures {
			captureName := tagQuery.CaptureNameForId(capture.Index)
			switch {
			case captureName == nameCaptureName:
				symbolName = strings.TrimSpace(capture.Node.Content(source))
			case strings.HasPrefix(captureName, definitionCapturePrefix):
				symbolKind = strings.TrimPrefix(captureName, definitionCapturePrefix)
				definitionNode = capture.Node
			}
		}
		if symbolName == "" || definitionNode == nil {
			continue
		}
		tags = append(tags, types.Tag{
			Name:      symbolName,
			Kind:      symbolKind,
			StartByte: definitionNode.StartByte(),
			LineText:  firstLine(definitionNode.Content(source)),
		})
	}

	sort.Slice(tags, func(left, right int) bool {
		return tags[left].StartByte < tags[right].StartByte
	})
	return tags, nil
}

// firstLine returns the trimmed first line of a definition span.
func firstLine(text string) string {
	if newlineIndex := strings.IndexByte(text, '\n'); newlineIndex >= 0 {
		text = text[:newlineIndex]
	}
	return strings.TrimSpace(text)
}
