// Package types defines every cross-package data structure used by the pluck CLI.
package types

const (
	// RenderModeFull includes the complete file content in the bundle.
	RenderModeFull = "full"
	// RenderModeSkeleton replaces file content with a depth-bounded parse tree walk.
	RenderModeSkeleton = "skeleton"
	// RenderModeSymbols replaces file content with declared symbol tags.
	RenderModeSymbols = "symbols"
)

// MatchKind classifies how a candidate path matched an input token.
type MatchKind string

const (
	MatchKindExactPath     MatchKind = "exact_path"
	MatchKindExactFilename MatchKind = "exact_filename"
	MatchKindGlob          MatchKind = "glob"
	MatchKindPartial       MatchKind = "partial_substring"
)

// OutcomeKind identifies how a single input token resolved.
type OutcomeKind string

const (
	// OutcomeResolved marks a token that matched exactly one file.
	OutcomeResolved OutcomeKind = "resolved"
	// OutcomeResolvedMany marks a directory or glob expansion; never ambiguous.
	OutcomeResolvedMany OutcomeKind = "resolved_many"
	// OutcomeAmbiguous marks a token that still matched several files after
	// exact matches were given priority over partial ones.
	OutcomeAmbiguous OutcomeKind = "ambiguous"
	// OutcomeNotFound marks a token that matched nothing.
	OutcomeNotFound OutcomeKind = "not_found"
)

// ResolvedFile pairs the path shown to the user with the absolute path used
// for reading and duplicate detection.
type ResolvedFile struct {
	DisplayPath  string
	AbsolutePath string
}

// Candidate records one path matched by a token together with the match kind.
type Candidate struct {
	File ResolvedFile
	Kind MatchKind
}

// TokenOutcome reports the resolution result for one input token.
type TokenOutcome struct {
	Token string
	Kind  OutcomeKind
	// Files holds the matched files for Resolved and ResolvedMany outcomes.
	Files []ResolvedFile
	// Conflicts holds the display paths that made an Ambiguous token ambiguous.
	Conflicts []string
}

// Tag is a declared symbol extracted through a grammar's tag query.
type Tag struct {
	Name      string
	Kind      string
	StartByte uint32
	LineText  string
}

// RenderedFile is one resolved file prepared for the output bundle.
type RenderedFile struct {
	File         ResolvedFile
	Mode         string
	LanguageHint string
	Body         string
	SizeBytes    int64
	Tokens       int
}

// OutputSummary aggregates bundle statistics for the terminal report.
type OutputSummary struct {
	TotalFiles  int
	TotalSize   string
	TotalLines  int
	TotalTokens int
	Model       string
}
