package config

import (
	"os"
	"path/filepath"
)

// FileBaseName is the config file name without extension
const FileBaseName = "libutils"

var extensions = []string{".toml", ".yaml", ".yml"}

// DefaultSearchPaths returns the working directory followed by the user
// config directory ($XDG_CONFIG_HOME/libutils or its platform equivalent)
func DefaultSearchPaths() []string {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, FileBaseName))
	}
	return paths
}

// Discover returns the first libutils.toml, libutils.yaml or libutils.yml
// found in dirs, or "" when there is none
func Discover(dirs []string) string {
	for _, dir := range dirs {
		for _, ext := range extensions {
			path := filepath.Join(dir, FileBaseName+ext)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path
			}
		}
	}
	return ""
}
