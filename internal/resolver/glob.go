package resolver

import (
	"github.com/gobwas/glob"

	"github.com/temirov/pluck/internal/types"
)

// expandGlob matches a glob token against the slash-normalized relative path
// of every file in the search space. The pattern is compiled with '/' as the
// separator so a single '*' never crosses directory boundaries. An invalid
// pattern matches nothing; the caller reports the token as not found.
func (resolver *Resolver) expandGlob(token string) []types.ResolvedFile {
	compiledPattern, compileError := glob.Compile(token, '/')
	if compileError != nil {
		return nil
	}
	var matches []types.ResolvedFile
	for _, reachableFile := range resolver.reachableFiles() {
		if compiledPattern.Match(reachableFile.DisplayPath) {
			matches = append(matches, reachableFile)
		}
	}
	return matches
}
