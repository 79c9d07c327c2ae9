package cli

import (
	"testing"

	"github.com/spf13/cobra"

	"github.com/temirov/pluck/internal/config"
	"github.com/temirov/pluck/internal/types"
)

func newFlagTestCommand(testingHandle *testing.T) *cobra.Command {
	command := &cobra.Command{Use: "pluck"}
	command.Flags().String(modeFlagName, types.RenderModeFull, modeFlagDescription)
	command.Flags().Int(depthFlagName, defaultSkeletonDepth, depthFlagDescription)
	command.Flags().Bool(noClipboardFlagName, false, noClipboardFlagDescription)
	command.Flags().Bool(tokensFlagName, false, tokensFlagDescription)
	command.Flags().String(modelFlagName, defaultTokenizerModelName, modelFlagDescription)
	return command
}

// TestIsSupportedMode verifies the accepted rendering mode values.
func TestIsSupportedMode(testingHandle *testing.T) {
	for _, supportedMode := range []string{types.RenderModeFull, types.RenderModeSkeleton, types.RenderModeSymbols} {
		if !isSupportedMode(supportedMode) {
			testingHandle.Fatalf("expected mode %q to be supported", supportedMode)
		}
	}
	for _, unsupportedMode := range []string{"", "outline", "FULL"} {
		if isSupportedMode(unsupportedMode) {
			testingHandle.Fatalf("expected mode %q to be rejected", unsupportedMode)
		}
	}
}

// TestMergeOptionsConfigurationFillsUnsetFlags verifies configuration values
// apply when the corresponding flags were not set on the command line.
func TestMergeOptionsConfigurationFillsUnsetFlags(testingHandle *testing.T) {
	command := newFlagTestCommand(testingHandle)
	configuredDepth := 2
	configuredClipboard := false
	configuredTokens := true
	configuration := config.ApplicationConfiguration{
		Mode:      "Skeleton",
		Skeleton:  config.SkeletonConfiguration{Depth: &configuredDepth},
		Clipboard: &configuredClipboard,
		Tokens:    config.TokenConfiguration{Enabled: &configuredTokens, Model: "o200k-model"},
		Paths:     config.PathConfiguration{Exclude: []string{"vendor/"}},
	}
	flagOptions := bundleOptions{
		mode:             types.RenderModeFull,
		skeletonDepth:    defaultSkeletonDepth,
		clipboardEnabled: true,
		tokenModel:       defaultTokenizerModelName,
	}

	merged := mergeOptions(command, configuration, flagOptions)
	if merged.mode != types.RenderModeSkeleton {
		testingHandle.Fatalf("expected lower-cased configured mode, got %q", merged.mode)
	}
	if merged.skeletonDepth != configuredDepth {
		testingHandle.Fatalf("expected configured depth %d, got %d", configuredDepth, merged.skeletonDepth)
	}
	if merged.clipboardEnabled {
		testingHandle.Fatalf("expected configured clipboard setting to apply")
	}
	if !merged.tokensEnabled || merged.tokenModel != "o200k-model" {
		testingHandle.Fatalf("expected configured token settings, got %+v", merged)
	}
	if len(merged.exclusionPatterns) != 1 || merged.exclusionPatterns[0] != "vendor/" {
		testingHandle.Fatalf("expected configured exclusions, got %v", merged.exclusionPatterns)
	}
}

// TestMergeOptionsExplicitFlagsWin verifies set flags override configuration.
func TestMergeOptionsExplicitFlagsWin(testingHandle *testing.T) {
	command := newFlagTestCommand(testingHandle)
	for flagName, flagValue := range map[string]string{
		modeFlagName:  types.RenderModeSymbols,
		depthFlagName: "6",
	} {
		if setError := command.Flags().Set(flagName, flagValue); setError != nil {
			testingHandle.Fatalf("set flag %s: %v", flagName, setError)
		}
	}
	configuredDepth := 2
	configuration := config.ApplicationConfiguration{
		Mode:     types.RenderModeSkeleton,
		Skeleton: config.SkeletonConfiguration{Depth: &configuredDepth},
	}
	flagOptions := bundleOptions{mode: types.RenderModeSymbols, skeletonDepth: 6, clipboardEnabled: true}

	merged := mergeOptions(command, configuration, flagOptions)
	if merged.mode != types.RenderModeSymbols {
		testingHandle.Fatalf("expected flag mode to win, got %q", merged.mode)
	}
	if merged.skeletonDepth != 6 {
		testingHandle.Fatalf("expected flag depth to win, got %d", merged.skeletonDepth)
	}
}

// TestMergeOptionsCombinesExclusionSources verifies configured and flag-given
// exclusion patterns are combined without duplicates.
func TestMergeOptionsCombinesExclusionSources(testingHandle *testing.T) {
	command := newFlagTestCommand(testingHandle)
	configuration := config.ApplicationConfiguration{
		Paths: config.PathConfiguration{Exclude: []string{"vendor/", "*.lock"}},
	}
	flagOptions := bundleOptions{
		mode:              types.RenderModeFull,
		exclusionPatterns: []string{"*.lock", "dist/"},
	}

	merged := mergeOptions(command, configuration, flagOptions)
	expectedPatterns := []string{"vendor/", "*.lock", "dist/"}
	if len(merged.exclusionPatterns) != len(expectedPatterns) {
		testingHandle.Fatalf("expected %v, got %v", expectedPatterns, merged.exclusionPatterns)
	}
	for patternIndex, expectedPattern := range expectedPatterns {
		if merged.exclusionPatterns[patternIndex] != expectedPattern {
			testingHandle.Fatalf("pattern %d: expected %q, got %q", patternIndex, expectedPattern, merged.exclusionPatterns[patternIndex])
		}
	}
}
