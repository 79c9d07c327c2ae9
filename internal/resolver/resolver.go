// Package resolver turns loose user-supplied tokens into a concrete,
// conflict-free set of source files. A token may be a literal path, a
// directory, a glob pattern, or a partial name fragment; each token is
// evaluated independently and reported with its own outcome.
package resolver

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/temirov/pluck/internal/types"
	"github.com/temirov/pluck/internal/utils"
)

// globMetacharacters marks a token as a glob pattern when any of them occur.
const globMetacharacters = "*?["

// ResolvedFileSet is the deduplicated, first-seen-ordered list of files
// produced by resolving every token. No path appears twice even when it
// matched several tokens.
type ResolvedFileSet []types.ResolvedFile

// Resolver resolves input tokens against a fixed search root.
type Resolver struct {
	searchRoot        string
	exclusionPatterns []string

	searchSpaceLoaded bool
	searchSpace       []types.ResolvedFile
}

// NewResolver constructs a Resolver rooted at searchRoot. Exclusion patterns
// restrict the fragment and glob search space; they never hide a file the
// user names directly by path or directory.
func NewResolver(searchRoot string, exclusionPatterns []string) (*Resolver, error) {
	absoluteRoot, absoluteError := filepath.Abs(searchRoot)
	if absoluteError != nil {
		return nil, absoluteError
	}
	return &Resolver{
		searchRoot:        filepath.Clean(absoluteRoot),
		exclusionPatterns: utils.DeduplicatePatterns(exclusionPatterns),
	}, nil
}

// SearchRoot returns the absolute directory the resolver scans.
func (resolver *Resolver) SearchRoot() string {
	return resolver.searchRoot
}

// Resolve evaluates every token in order and returns the deduplicated file
// set together with a per-token resolution report. Ambiguous and NotFound
// tokens never abort resolution of the remaining tokens; the caller decides
// whether to proceed with the resolved subset.
func (resolver *Resolver) Resolve(tokens []string) (ResolvedFileSet, []types.TokenOutcome) {
	outcomes := make([]types.TokenOutcome, 0, len(tokens))
	fileSet := ResolvedFileSet{}
	seenAbsolutePaths := make(map[string]struct{})

	for _, token := range tokens {
		outcome := resolver.resolveToken(token)
		outcomes = append(outcomes, outcome)
		if outcome.Kind != types.OutcomeResolved && outcome.Kind != types.OutcomeResolvedMany {
			continue
		}
		for _, resolvedFile := range outcome.Files {
			if _, duplicate := seenAbsolutePaths[resolvedFile.AbsolutePath]; duplicate {
				continue
			}
			seenAbsolutePaths[resolvedFile.AbsolutePath] = struct{}{}
			fileSet = append(fileSet, resolvedFile)
		}
	}

	return fileSet, outcomes
}

// resolveToken applies the resolution phases to a single token: literal file,
// directory expansion, glob expansion, then name-fragment search.
func (resolver *Resolver) resolveToken(token string) types.TokenOutcome {
	directPath := token
	if !filepath.IsAbs(directPath) {
		directPath = filepath.Join(resolver.searchRoot, directPath)
	}
	if pathInformation, statError := os.Stat(directPath); statError == nil {
		if pathInformation.Mode().IsRegular() {
			return types.TokenOutcome{
				Token: token,
				Kind:  types.OutcomeResolved,
				Files: []types.ResolvedFile{resolver.describeFile(directPath)},
			}
		}
		if pathInformation.IsDir() {
			return types.TokenOutcome{
				Token: token,
				Kind:  types.OutcomeResolvedMany,
				Files: resolver.expandDirectory(directPath),
			}
		}
	}

	if strings.ContainsAny(token, globMetacharacters) {
		globMatches := resolver.expandGlob(token)
		if len(globMatches) == 0 {
			return types.TokenOutcome{Token: token, Kind: types.OutcomeNotFound}
		}
		return types.TokenOutcome{Token: token, Kind: types.OutcomeResolvedMany, Files: globMatches}
	}

	return resolver.resolveFragment(token)
}

// resolveFragment scans every file under the search root and classifies
// candidates as exact filename matches or partial substring matches. Exact
// matches always take priority: when any exist, every partial candidate for
// the token is discarded before ambiguity is evaluated.
func (resolver *Resolver) resolveFragment(token string) types.TokenOutcome {
	candidates := resolver.fragmentCandidates(token)

	exactCandidates := make([]types.Candidate, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.Kind == types.MatchKindExactFilename {
			exactCandidates = append(exactCandidates, candidate)
		}
	}
	if len(exactCandidates) > 0 {
		candidates = exactCandidates
	}

	switch len(candidates) {
	case 0:
		return types.TokenOutcome{Token: token, Kind: types.OutcomeNotFound}
	case 1:
		return types.TokenOutcome{
			Token: token,
			Kind:  types.OutcomeResolved,
			Files: []types.ResolvedFile{candidates[0].File},
		}
	default:
		conflictingPaths := make([]string, 0, len(candidates))
		for _, candidate := range candidates {
			conflictingPaths = append(conflictingPaths, candidate.File.DisplayPath)
		}
		return types.TokenOutcome{Token: token, Kind: types.OutcomeAmbiguous, Conflicts: conflictingPaths}
	}
}

// fragmentCandidates matches a bare token against the filename and relative
// path of every file reachable from the search root. A token containing a
// path separator can still match: it is compared as a substring of the
// slash-normalized relative path.
func (resolver *Resolver) fragmentCandidates(token string) []types.Candidate {
	normalizedToken := filepath.ToSlash(token)
	var candidates []types.Candidate
	for _, reachableFile := range resolver.reachableFiles() {
		relativePath := reachableFile.DisplayPath
		if filepath.Base(relativePath) == token {
			candidates = append(candidates, types.Candidate{File: reachableFile, Kind: types.MatchKindExactFilename})
			continue
		}
		if strings.Contains(relativePath, normalizedToken) {
			candidates = append(candidates, types.Candidate{File: reachableFile, Kind: types.MatchKindPartial})
		}
	}
	return candidates
}

// describeFile builds the ResolvedFile for an absolute path, using the path
// relative to the search root for display.
func (resolver *Resolver) describeFile(absolutePath string) types.ResolvedFile {
	cleanPath := filepath.Clean(absolutePath)
	return types.ResolvedFile{
		DisplayPath:  utils.RelativePathOrSelf(cleanPath, resolver.searchRoot),
		AbsolutePath: cleanPath,
	}
}
