// Package iofs prepares the file system scaffolding: configuration, cache,
// log and data directories, plus default config files on first run.
package iofs

import (
	_ "embed"
	"os"

	"github.com/gnames/inatrank/pkg/config"
)

//go:embed config.yaml
var ConfigYAML string

//go:embed weights.yaml
var WeightsYAML string

// EnsureDirs creates the standard directories when they are missing.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.CacheDir(homeDir),
		config.LogDir(homeDir),
		config.DefaultDataDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// EnsureConfigFile writes the embedded default config.yaml on first run.
func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.WriteFile(configPath, []byte(ConfigYAML), 0644); err != nil {
		return CopyFileError(configPath, err)
	}

	return nil
}

// EnsureWeightsFile writes the embedded default weights.yaml on first run.
func EnsureWeightsFile(homeDir string) error {
	weightsPath := config.WeightsFilePath(homeDir)

	if _, err := os.Stat(weightsPath); err == nil {
		return nil
	}

	if err := os.WriteFile(weightsPath, []byte(WeightsYAML), 0644); err != nil {
		return CopyFileError(weightsPath, err)
	}

	return nil
}
