package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/temirov/pluck/internal/config"
	"github.com/temirov/pluck/internal/utils"
)

const (
	globalConfigContent = `mode: full
skeleton:
  depth: 4
clipboard: true
paths:
  exclude:
    - vendor/
`
	localConfigContent = `mode: skeleton
skeleton:
  depth: 2
clipboard: false
tokens:
  enabled: true
  model: gpt-4o
paths:
  exclude:
    - vendor/
    - "*.lock"
`
)

// writeGlobalConfig points the user home at a temporary directory containing
// a global configuration file.
func writeGlobalConfig(testingHandle *testing.T, content string) string {
	homeDirectory := testingHandle.TempDir()
	testingHandle.Setenv("HOME", homeDirectory)
	configurationDirectory := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName)
	if makeDirError := os.MkdirAll(configurationDirectory, 0o755); makeDirError != nil {
		testingHandle.Fatalf("mkdir global config directory: %v", makeDirError)
	}
	if content != "" {
		globalPath := filepath.Join(configurationDirectory, "config.yaml")
		if writeError := os.WriteFile(globalPath, []byte(content), 0o600); writeError != nil {
			testingHandle.Fatalf("write global config: %v", writeError)
		}
	}
	return homeDirectory
}

// TestLoadApplicationConfigurationMissingFiles verifies that absent
// configuration files yield a zero configuration without error.
func TestLoadApplicationConfigurationMissingFiles(testingHandle *testing.T) {
	writeGlobalConfig(testingHandle, "")
	loaded, loadError := config.LoadApplicationConfiguration(config.LoadOptions{WorkingDirectory: testingHandle.TempDir()})
	if loadError != nil {
		testingHandle.Fatalf("LoadApplicationConfiguration error: %v", loadError)
	}
	if loaded.Mode != "" || loaded.Clipboard != nil || loaded.Skeleton.Depth != nil {
		testingHandle.Fatalf("expected zero configuration, got %+v", loaded)
	}
}

// TestLoadApplicationConfigurationLocalOverridesGlobal verifies merge
// precedence between the global and the working-directory file.
func TestLoadApplicationConfigurationLocalOverridesGlobal(testingHandle *testing.T) {
	writeGlobalConfig(testingHandle, globalConfigContent)
	workingDirectory := testingHandle.TempDir()
	localPath := filepath.Join(workingDirectory, utils.ConfigFileName)
	if writeError := os.WriteFile(localPath, []byte(localConfigContent), 0o600); writeError != nil {
		testingHandle.Fatalf("write local config: %v", writeError)
	}

	loaded, loadError := config.LoadApplicationConfiguration(config.LoadOptions{WorkingDirectory: workingDirectory})
	if loadError != nil {
		testingHandle.Fatalf("LoadApplicationConfiguration error: %v", loadError)
	}
	if loaded.Mode != "skeleton" {
		testingHandle.Fatalf("expected local mode to win, got %q", loaded.Mode)
	}
	if loaded.Skeleton.Depth == nil || *loaded.Skeleton.Depth != 2 {
		testingHandle.Fatalf("expected local depth 2, got %+v", loaded.Skeleton.Depth)
	}
	if loaded.Clipboard == nil || *loaded.Clipboard {
		testingHandle.Fatalf("expected clipboard disabled by local config, got %+v", loaded.Clipboard)
	}
	if loaded.Tokens.Enabled == nil || !*loaded.Tokens.Enabled || loaded.Tokens.Model != "gpt-4o" {
		testingHandle.Fatalf("unexpected token configuration: %+v", loaded.Tokens)
	}
	expectedExclusions := []string{"vendor/", "*.lock"}
	if len(loaded.Paths.Exclude) != len(expectedExclusions) {
		testingHandle.Fatalf("expected deduplicated exclusions %v, got %v", expectedExclusions, loaded.Paths.Exclude)
	}
	for patternIndex, expectedPattern := range expectedExclusions {
		if loaded.Paths.Exclude[patternIndex] != expectedPattern {
			testingHandle.Fatalf("exclusion %d: expected %q, got %q", patternIndex, expectedPattern, loaded.Paths.Exclude[patternIndex])
		}
	}
}

// TestLoadApplicationConfigurationExplicitPath verifies an explicit file path
// replaces working-directory discovery.
func TestLoadApplicationConfigurationExplicitPath(testingHandle *testing.T) {
	writeGlobalConfig(testingHandle, "")
	workingDirectory := testingHandle.TempDir()
	explicitPath := filepath.Join(workingDirectory, "custom-config.yaml")
	if writeError := os.WriteFile(explicitPath, []byte("mode: symbols\n"), 0o600); writeError != nil {
		testingHandle.Fatalf("write explicit config: %v", writeError)
	}

	loaded, loadError := config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory: workingDirectory,
		ExplicitFilePath: "custom-config.yaml",
	})
	if loadError != nil {
		testingHandle.Fatalf("LoadApplicationConfiguration error: %v", loadError)
	}
	if loaded.Mode != "symbols" {
		testingHandle.Fatalf("expected explicit config mode, got %q", loaded.Mode)
	}
}

// TestMergeKeepsBaseWhenOverrideUnset verifies field-level merge semantics.
func TestMergeKeepsBaseWhenOverrideUnset(testingHandle *testing.T) {
	baseDepth := 4
	baseClipboard := true
	base := config.ApplicationConfiguration{
		Mode:      "full",
		Skeleton:  config.SkeletonConfiguration{Depth: &baseDepth},
		Clipboard: &baseClipboard,
		Tokens:    config.TokenConfiguration{Model: "gpt-4o"},
	}
	merged := base.Merge(config.ApplicationConfiguration{Mode: "skeleton"})
	if merged.Mode != "skeleton" {
		testingHandle.Fatalf("expected override mode, got %q", merged.Mode)
	}
	if merged.Skeleton.Depth == nil || *merged.Skeleton.Depth != baseDepth {
		testingHandle.Fatalf("expected base depth preserved, got %+v", merged.Skeleton.Depth)
	}
	if merged.Clipboard == nil || !*merged.Clipboard {
		testingHandle.Fatalf("expected base clipboard preserved, got %+v", merged.Clipboard)
	}
	if merged.Tokens.Model != "gpt-4o" {
		testingHandle.Fatalf("expected base token model preserved, got %q", merged.Tokens.Model)
	}
}

// TestInitializeConfigurationLocal verifies the local template write and the
// existing-file guard.
func TestInitializeConfigurationLocal(testingHandle *testing.T) {
	workingDirectory := testingHandle.TempDir()
	writtenPath, initError := config.InitializeConfiguration(config.InitOptions{
		Target:           config.InitTargetLocal,
		WorkingDirectory: workingDirectory,
	})
	if initError != nil {
		testingHandle.Fatalf("InitializeConfiguration error: %v", initError)
	}
	if writtenPath != filepath.Join(workingDirectory, utils.ConfigFileName) {
		testingHandle.Fatalf("unexpected destination path: %s", writtenPath)
	}
	templateBytes, readError := os.ReadFile(writtenPath)
	if readError != nil {
		testingHandle.Fatalf("read initialized config: %v", readError)
	}
	if !strings.Contains(string(templateBytes), "mode: full") {
		testingHandle.Fatalf("unexpected template content: %s", templateBytes)
	}

	if _, secondInitError := config.InitializeConfiguration(config.InitOptions{
		Target:           config.InitTargetLocal,
		WorkingDirectory: workingDirectory,
	}); secondInitError == nil {
		testingHandle.Fatalf("expected error when configuration already exists")
	}

	if _, forcedInitError := config.InitializeConfiguration(config.InitOptions{
		Target:           config.InitTargetLocal,
		WorkingDirectory: workingDirectory,
		Force:            true,
	}); forcedInitError != nil {
		testingHandle.Fatalf("forced initialization failed: %v", forcedInitError)
	}
}

// TestInitializeConfigurationGlobal verifies the global target creates the
// configuration directory under the user home.
func TestInitializeConfigurationGlobal(testingHandle *testing.T) {
	homeDirectory := testingHandle.TempDir()
	testingHandle.Setenv("HOME", homeDirectory)
	writtenPath, initError := config.InitializeConfiguration(config.InitOptions{Target: config.InitTargetGlobal})
	if initError != nil {
		testingHandle.Fatalf("InitializeConfiguration error: %v", initError)
	}
	expectedPath := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName, "config.yaml")
	if writtenPath != expectedPath {
		testingHandle.Fatalf("expected %s, got %s", expectedPath, writtenPath)
	}
	if _, statError := os.Stat(writtenPath); statError != nil {
		testingHandle.Fatalf("expected configuration file on disk: %v", statError)
	}
}
