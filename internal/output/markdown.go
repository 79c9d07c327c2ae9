// Package output assembles resolved files into the final Markdown bundle and
// formats the terminal resolution report and summary.
package output

import (
	"fmt"
	"strings"

	"github.com/temirov/pluck/internal/types"
)

const fileSectionFormat = "%s\n```%s\n%s\n```\n\n"

// BuildBundle concatenates one fenced section per rendered file. Each section
// carries the display path, a language hint derived from the file extension,
// and the rendered body with trailing whitespace trimmed. Skeleton and symbol
// bodies omit the language hint because they are not complete, compilable
// source.
func BuildBundle(renderedFiles []types.RenderedFile) string {
	var bundleBuilder strings.Builder
	for _, renderedFile := range renderedFiles {
		languageHint := renderedFile.LanguageHint
		if renderedFile.Mode != types.RenderModeFull {
			languageHint = ""
		}
		body := strings.TrimRight(renderedFile.Body, " \t\n")
		fmt.Fprintf(&bundleBuilder, fileSectionFormat, renderedFile.File.DisplayPath, languageHint, body)
	}
	return bundleBuilder.String()
}

// FormatTags renders extracted symbol tags as one line per declaration.
func FormatTags(tags []types.Tag) string {
	var tagBuilder strings.Builder
	for tagIndex, tag := range tags {
		if tagIndex > 0 {
			tagBuilder.WriteByte('\n')
		}
		fmt.Fprintf(&tagBuilder, "%s %s: %s", tag.Kind, tag.Name, tag.LineText)
	}
	return tagBuilder.String()
}
