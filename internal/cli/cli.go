// Package cli provides the command line interface.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/pluck/internal/config"
	"github.com/temirov/pluck/internal/output"
	"github.com/temirov/pluck/internal/resolver"
	"github.com/temirov/pluck/internal/services/clipboard"
	"github.com/temirov/pluck/internal/skeleton"
	"github.com/temirov/pluck/internal/tokenizer"
	"github.com/temirov/pluck/internal/types"
	"github.com/temirov/pluck/internal/utils"
)

const (
	exclusionFlagName    = "e"
	modeFlagName         = "mode"
	depthFlagName        = "depth"
	noClipboardFlagName  = "no-clipboard"
	tokensFlagName       = "tokens"
	modelFlagName        = "model"
	configFileFlagName   = "config"
	versionFlagName      = "version"
	versionTemplate      = "pluck version: %s\n"
	rootUse              = "pluck [inputs...]"
	rootShortDescription = "pluck command line interface"
	rootLongDescription  = `pluck builds context strings from code files for LLMs and copies them to the clipboard.
Inputs may be file paths, directories, glob patterns, or partial file names.
Use --mode to include full content, depth-bounded skeletons, or declared symbols.`
	rootUsageExample = `  # Copy two files and everything under tests/
  pluck src/main.go tests

  # Resolve a partial name and pluck its skeleton
  pluck resolver --mode skeleton --depth 2

  # Expand a glob without touching the clipboard
  pluck 'internal/*/options.go' --no-clipboard`

	configUse                   = "config"
	configShortDescription      = "manage pluck configuration"
	configInitUse               = "init"
	configInitShortDescription  = "write a default configuration file"
	configGlobalFlagName        = "global"
	configForceFlagName         = "force"
	configGlobalFlagDescription = "write the global configuration instead of a local one"
	configForceFlagDescription  = "overwrite an existing configuration file"
	configInitializedFormat     = "configuration written to %s\n"

	exclusionFlagDescription   = "exclude path pattern from partial-name and glob search"
	modeFlagDescription        = "rendering mode: full, skeleton, or symbols"
	depthFlagDescription       = "maximum parse tree depth for skeleton mode"
	noClipboardFlagDescription = "print the bundle to stdout instead of copying it"
	tokensFlagDescription      = "include token counts in the summary"
	modelFlagDescription       = "tokenizer model used for token counting"
	configFileFlagDescription  = "path to a configuration file"
	versionFlagDescription     = "display application version"

	defaultSkeletonDepth      = 4
	defaultTokenizerModelName = "gpt-4o"

	invalidModeMessage          = "invalid mode value '%s'"
	invalidDepthMessage         = "depth must not be negative, got %d"
	workingDirectoryErrorFormat = "unable to determine working directory: %w"
	warningSkipFileFormat       = "skipping %s: %v"
	warningBinaryFileFormat     = "skipping binary file %s"
	extractionFallbackFormat    = "---\n-- could not extract structure from %s: %v\n-- falling back to full file content\n---\n\n%s"
	noFilesResolvedMessage      = "no files were resolved from the given inputs"
	unresolvedInputsMessage     = "could not proceed due to unresolved inputs"
	clipboardCopiedFormat       = "copied %s to clipboard"
	clipboardFailedFormat       = "clipboard copy failed, writing to stdout: %v"
)

// isSupportedMode reports whether the provided rendering mode is recognized.
func isSupportedMode(mode string) bool {
	switch mode {
	case types.RenderModeFull, types.RenderModeSkeleton, types.RenderModeSymbols:
		return true
	default:
		return false
	}
}

// Execute runs the pluck application.
func Execute(logger *zap.Logger) error {
	rootCommand := createRootCommand(logger)
	return rootCommand.Execute()
}

// bundleOptions stores the effective settings for one invocation.
type bundleOptions struct {
	mode              string
	skeletonDepth     int
	exclusionPatterns []string
	clipboardEnabled  bool
	tokensEnabled     bool
	tokenModel        string
}

// createRootCommand builds the root Cobra command.
func createRootCommand(logger *zap.Logger) *cobra.Command {
	var showVersion bool
	var renderMode string
	var skeletonDepth int
	var noClipboard bool
	var tokensEnabled bool
	var tokenModel string
	var exclusionPatterns []string
	var configFilePath string

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		Example:      rootUsageExample,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		PersistentPreRun: func(command *cobra.Command, arguments []string) {
			if showVersion {
				fmt.Printf(versionTemplate, utils.GetApplicationVersion())
				os.Exit(0)
			}
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			if len(arguments) == 0 {
				return command.Help()
			}

			workingDirectory, workingDirectoryError := os.Getwd()
			if workingDirectoryError != nil {
				return fmt.Errorf(workingDirectoryErrorFormat, workingDirectoryError)
			}

			applicationConfiguration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{
				WorkingDirectory: workingDirectory,
				ExplicitFilePath: configFilePath,
			})
			if configurationError != nil {
				return configurationError
			}

			options := mergeOptions(command, applicationConfiguration, bundleOptions{
				mode:              strings.ToLower(renderMode),
				skeletonDepth:     skeletonDepth,
				exclusionPatterns: exclusionPatterns,
				clipboardEnabled:  !noClipboard,
				tokensEnabled:     tokensEnabled,
				tokenModel:        tokenModel,
			})
			if !isSupportedMode(options.mode) {
				return fmt.Errorf(invalidModeMessage, options.mode)
			}
			if options.skeletonDepth < 0 {
				return fmt.Errorf(invalidDepthMessage, options.skeletonDepth)
			}

			return runPluck(logger, workingDirectory, arguments, options)
		},
	}

	rootCommand.PersistentFlags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	rootCommand.Flags().StringVar(&renderMode, modeFlagName, types.RenderModeFull, modeFlagDescription)
	rootCommand.Flags().IntVar(&skeletonDepth, depthFlagName, defaultSkeletonDepth, depthFlagDescription)
	rootCommand.Flags().BoolVar(&noClipboard, noClipboardFlagName, false, noClipboardFlagDescription)
	rootCommand.Flags().BoolVar(&tokensEnabled, tokensFlagName, false, tokensFlagDescription)
	rootCommand.Flags().StringVar(&tokenModel, modelFlagName, defaultTokenizerModelName, modelFlagDescription)
	rootCommand.Flags().StringArrayVarP(&exclusionPatterns, exclusionFlagName, exclusionFlagName, nil, exclusionFlagDescription)
	rootCommand.Flags().StringVar(&configFilePath, configFileFlagName, "", configFileFlagDescription)
	rootCommand.AddCommand(createConfigCommand())
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// mergeOptions overlays command line flags onto configuration file defaults.
// A flag the user actually set always wins over the configuration file.
func mergeOptions(command *cobra.Command, configuration config.ApplicationConfiguration, flagOptions bundleOptions) bundleOptions {
	merged := flagOptions

	if !command.Flags().Changed(modeFlagName) && configuration.Mode != "" {
		merged.mode = strings.ToLower(configuration.Mode)
	}
	if !command.Flags().Changed(depthFlagName) && configuration.Skeleton.Depth != nil {
		merged.skeletonDepth = *configuration.Skeleton.Depth
	}
	if !command.Flags().Changed(noClipboardFlagName) && configuration.Clipboard != nil {
		merged.clipboardEnabled = *configuration.Clipboard
	}
	if !command.Flags().Changed(tokensFlagName) && configuration.Tokens.Enabled != nil {
		merged.tokensEnabled = *configuration.Tokens.Enabled
	}
	if !command.Flags().Changed(modelFlagName) && configuration.Tokens.Model != "" {
		merged.tokenModel = configuration.Tokens.Model
	}
	merged.exclusionPatterns = utils.DeduplicatePatterns(append(append([]string{}, configuration.Paths.Exclude...), flagOptions.exclusionPatterns...))

	return merged
}

// createConfigCommand returns the config subcommand with its init action.
func createConfigCommand() *cobra.Command {
	configCommand := &cobra.Command{
		Use:   configUse,
		Short: configShortDescription,
	}

	var writeGlobal bool
	var forceOverwrite bool
	initCommand := &cobra.Command{
		Use:   configInitUse,
		Short: configInitShortDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			target := config.InitTargetLocal
			if writeGlobal {
				target = config.InitTargetGlobal
			}
			writtenPath, initializeError := config.InitializeConfiguration(config.InitOptions{
				Target: target,
				Force:  forceOverwrite,
			})
			if initializeError != nil {
				return initializeError
			}
			fmt.Printf(configInitializedFormat, writtenPath)
			return nil
		},
	}
	initCommand.Flags().BoolVar(&writeGlobal, configGlobalFlagName, false, configGlobalFlagDescription)
	initCommand.Flags().BoolVar(&forceOverwrite, configForceFlagName, false, configForceFlagDescription)

	configCommand.AddCommand(initCommand)
	return configCommand
}

// runPluck resolves the input tokens, renders every resolved file, and
// delivers the assembled bundle to the clipboard or stdout.
func runPluck(logger *zap.Logger, workingDirectory string, inputTokens []string, options bundleOptions) error {
	inputResolver, resolverError := resolver.NewResolver(workingDirectory, options.exclusionPatterns)
	if resolverError != nil {
		return resolverError
	}

	fileSet, outcomes := inputResolver.Resolve(inputTokens)

	reportLines := output.FormatResolutionReport(outcomes)
	if len(reportLines) > 0 {
		for _, reportLine := range reportLines {
			logger.Error(reportLine)
		}
		return errors.New(unresolvedInputsMessage)
	}

	var tokenCounter tokenizer.Counter
	tokenModel := ""
	if options.tokensEnabled {
		createdCounter, resolvedModel, counterError := tokenizer.NewCounter(tokenizer.Config{Model: options.tokenModel})
		if counterError != nil {
			return counterError
		}
		tokenCounter = createdCounter
		tokenModel = resolvedModel
	}

	renderedFiles := renderFiles(logger, fileSet, options, tokenCounter)
	if len(renderedFiles) == 0 {
		return errors.New(noFilesResolvedMessage)
	}

	bundle := output.BuildBundle(renderedFiles)
	summary := output.Summarize(renderedFiles, bundle, tokenModel)

	delivered := false
	if options.clipboardEnabled {
		clipboardService := clipboard.NewService()
		if clipboardService.Supported() {
			if copyError := clipboardService.Copy(bundle); copyError != nil {
				logger.Warn(fmt.Sprintf(clipboardFailedFormat, copyError))
			} else {
				delivered = true
				logger.Info(fmt.Sprintf(clipboardCopiedFormat, utils.FormatFileSize(int64(len(bundle)))))
			}
		}
	}
	if !delivered {
		fmt.Print(bundle)
	}

	logger.Info(output.FormatSummaryLine(summary))
	return nil
}

// renderFiles reads and renders every resolved file in order. Read failures
// and binary files are reported and excluded; a structure extraction failure
// falls back to full content so the user still gets output for that file.
func renderFiles(logger *zap.Logger, fileSet resolver.ResolvedFileSet, options bundleOptions, tokenCounter tokenizer.Counter) []types.RenderedFile {
	renderedFiles := make([]types.RenderedFile, 0, len(fileSet))
	for _, resolvedFile := range fileSet {
		content, readError := os.ReadFile(resolvedFile.AbsolutePath)
		if readError != nil {
			logger.Warn(fmt.Sprintf(warningSkipFileFormat, resolvedFile.DisplayPath, readError))
			continue
		}
		if utils.IsBinary(content) {
			logger.Warn(fmt.Sprintf(warningBinaryFileFormat, resolvedFile.DisplayPath))
			continue
		}

		fileExtension := filepath.Ext(resolvedFile.DisplayPath)
		renderedFile := types.RenderedFile{
			File:         resolvedFile,
			Mode:         options.mode,
			LanguageHint: strings.TrimPrefix(fileExtension, "."),
			SizeBytes:    int64(len(content)),
		}

		switch options.mode {
		case types.RenderModeSkeleton:
			extractedSkeleton, extractError := skeleton.Extract(content, fileExtension, options.skeletonDepth)
			if extractError != nil {
				renderedFile.Mode = types.RenderModeFull
				renderedFile.Body = fmt.Sprintf(extractionFallbackFormat, resolvedFile.DisplayPath, extractError, string(content))
			} else {
				renderedFile.Body = extractedSkeleton
			}
		case types.RenderModeSymbols:
			extractedTags, extractError := skeleton.ExtractTags(content, fileExtension)
			if extractError != nil {
				renderedFile.Mode = types.RenderModeFull
				renderedFile.Body = fmt.Sprintf(extractionFallbackFormat, resolvedFile.DisplayPath, extractError, string(content))
			} else {
				renderedFile.Body = output.FormatTags(extractedTags)
			}
		default:
			renderedFile.Body = string(content)
		}

		if tokenCounter != nil {
			tokenCount, countError := tokenCounter.CountString(renderedFile.Body)
			if countError != nil {
				logger.Warn(fmt.Sprintf(warningSkipFileFormat, resolvedFile.DisplayPath, countError))
			} else {
				renderedFile.Tokens = tokenCount
			}
		}

		renderedFiles = append(renderedFiles, renderedFile)
	}
	return renderedFiles
}
