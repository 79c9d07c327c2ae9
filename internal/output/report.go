package output

import (
	"fmt"
	"strings"

	"github.com/temirov/pluck/internal/types"
	"github.com/temirov/pluck/internal/utils"
)

// maximumAmbiguousPathsShown caps the conflicting paths listed per ambiguous
// token; the remainder is summarized as a count.
const maximumAmbiguousPathsShown = 8

// FormatResolutionReport renders the failures among token outcomes as
// human-readable lines for stderr. Successful outcomes produce no lines; an
// empty result means every token resolved.
func FormatResolutionReport(outcomes []types.TokenOutcome) []string {
	var reportLines []string

	for _, outcome := range outcomes {
		switch outcome.Kind {
		case types.OutcomeNotFound:
			reportLines = append(reportLines, fmt.Sprintf("input '%s' could not be found", outcome.Token))
		case types.OutcomeAmbiguous:
			reportLines = append(reportLines, fmt.Sprintf("input '%s' is ambiguous, matched:", outcome.Token))
			for conflictIndex, conflictingPath := range outcome.Conflicts {
				if conflictIndex == maximumAmbiguousPathsShown {
					remaining := len(outcome.Conflicts) - maximumAmbiguousPathsShown
					suffix := "es"
					if remaining == 1 {
						suffix = ""
					}
					reportLines = append(reportLines, fmt.Sprintf("  ... and %d more match%s", remaining, suffix))
					break
				}
				reportLines = append(reportLines, "  -> "+conflictingPath)
			}
		}
	}

	return reportLines
}

// FormatSummaryLine renders the aggregate bundle statistics as a single line.
func FormatSummaryLine(summary types.OutputSummary) string {
	var summaryBuilder strings.Builder
	fmt.Fprintf(&summaryBuilder, "%d files, %s, %d lines", summary.TotalFiles, summary.TotalSize, summary.TotalLines)
	if summary.TotalTokens > 0 {
		fmt.Fprintf(&summaryBuilder, ", %d tokens (%s)", summary.TotalTokens, summary.Model)
	}
	return summaryBuilder.String()
}

// Summarize aggregates rendered files into the bundle summary.
func Summarize(renderedFiles []types.RenderedFile, bundle string, tokenModel string) types.OutputSummary {
	var totalBytes int64
	totalTokens := 0
	for _, renderedFile := range renderedFiles {
		totalBytes += renderedFile.SizeBytes
		totalTokens += renderedFile.Tokens
	}
	summary := types.OutputSummary{
		TotalFiles: len(renderedFiles),
		TotalSize:  utils.FormatFileSize(totalBytes),
		TotalLines: strings.Count(bundle, "\n"),
	}
	if totalTokens > 0 {
		summary.TotalTokens = totalTokens
		summary.Model = tokenModel
	}
	return summary
}
