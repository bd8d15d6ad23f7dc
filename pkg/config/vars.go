package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// AppName is used in generating file system paths.
var AppName = "inatrank"

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/inatrank by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/inatrank by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/inatrank/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// DefaultDataDir returns the default directory for datasets, checkpoints,
// images and reports. Returns ~/.local/share/inatrank/data by default.
func DefaultDataDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "data")
}

// ConfigFilePath returns the full path to the config.yaml file.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// WeightsFilePath returns the full path to the weights.yaml file with
// the ranking weight table.
func WeightsFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "weights.yaml")
}

// HTTPCacheFilePath returns the SQLite file backing the HTTP response cache.
func HTTPCacheFilePath(homeDir string) string {
	return filepath.Join(CacheDir(homeDir), "inat_requests.db")
}

// ObservationsFile returns the path of the processed observations dataset.
func (c *Config) ObservationsFile() string {
	return filepath.Join(c.DataDir, "observations.json")
}

// MinifiedFile returns the path of the minified JSON observation export.
func (c *Config) MinifiedFile() string {
	return filepath.Join(c.DataDir, "observations_min.json")
}

// ReportFile returns the path of the generated HTML report.
func (c *Config) ReportFile() string {
	return filepath.Join(c.DataDir, "report.html")
}

// ImageDir returns the directory for downloaded observation photos.
func (c *Config) ImageDir() string {
	return filepath.Join(c.DataDir, "images")
}

// UserStatsFile returns the checkpoint file for observer statistics.
// The file is scoped per iconic taxon, e.g. user_stats_arachnida.json.
func (c *Config) UserStatsFile() string {
	name := fmt.Sprintf("user_stats_%s.json", strings.ToLower(c.IconicTaxon))
	return filepath.Join(c.DataDir, name)
}

// IQAReportFiles returns the default image quality assessment report files.
func (c *Config) IQAReportFiles() []string {
	return []string{
		filepath.Join(c.DataDir, "iqa_technical.json"),
		filepath.Join(c.DataDir, "iqa_aesthetic.json"),
	}
}
