package resolver

import (
	"io/fs"
	"path/filepath"

	"github.com/temirov/pluck/internal/types"
	"github.com/temirov/pluck/internal/utils"
)

// expandDirectory enumerates every regular file transitively beneath the
// directory in deterministic lexical order. Unreadable entries are skipped so
// permission problems inside a subtree do not fail the whole token. Directory
// expansion includes everything the user asked for; exclusion patterns apply
// only to the fragment and glob search space.
func (resolver *Resolver) expandDirectory(directoryPath string) []types.ResolvedFile {
	var files []types.ResolvedFile
	filepath.WalkDir(directoryPath, func(walkedPath string, entry fs.DirEntry, walkError error) error {
		if walkError != nil {
			if entry != nil && entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if entry.IsDir() || !entry.Type().IsRegular() {
			return nil
		}
		files = append(files, resolver.describeFile(walkedPath))
		return nil
	})
	return files
}

// reachableFiles returns every regular file under the search root, excluding
// the .git directory and any path matching an exclusion pattern. The walk is
// performed once and cached; the resolver never observes filesystem changes
// made during a single invocation.
func (resolver *Resolver) reachableFiles() []types.ResolvedFile {
	if resolver.searchSpaceLoaded {
		return resolver.searchSpace
	}
	resolver.searchSpaceLoaded = true

	filepath.WalkDir(resolver.searchRoot, func(walkedPath string, entry fs.DirEntry, walkError error) error {
		if walkError != nil {
			if entry != nil && entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		relativePath := utils.RelativePathOrSelf(walkedPath, resolver.searchRoot)
		if entry.IsDir() {
			if entry.Name() == gitDirectoryName && walkedPath != resolver.searchRoot {
				return filepath.SkipDir
			}
			if relativePath != "." && utils.ShouldIgnoreByPath(relativePath, resolver.exclusionPatterns) {
				return filepath.SkipDir
			}
			return nil
		}
		if !entry.Type().IsRegular() {
			return nil
		}
		if utils.ShouldIgnoreByPath(relativePath, resolver.exclusionPatterns) {
			return nil
		}
		resolver.searchSpace = append(resolver.searchSpace, types.ResolvedFile{
			DisplayPath:  relativePath,
			AbsolutePath: filepath.Clean(walkedPath),
		})
		return nil
	})
	return resolver.searchSpace
}

// gitDirectoryName is excluded from the fragment and glob search space.
const gitDirectoryName = ".git"
