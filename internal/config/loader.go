package config

import (
	"os"
	"path/filepath"
)

var defaultConfigNames = []string{"config.yaml", "config.json"}

// GetConfigPath resolves the config file to load, or "" when none exists.
// Lookup order: the flag value, $PARAMINDEX_CONFIG_PATH, then config.yaml
// and config.json in the working directory and in the executable's
// directory.
func GetConfigPath(configFilePathFlag string) string {
	for _, candidate := range configCandidates(configFilePathFlag) {
		if isRegularFile(candidate) {
			return candidate
		}
	}
	return ""
}

func configCandidates(flagPath string) []string {
	var candidates []string
	if flagPath != "" {
		candidates = append(candidates, flagPath)
	}
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		candidates = append(candidates, envPath)
	}

	var dirs []string
	if cwd, err := os.Getwd(); err == nil {
		dirs = append(dirs, cwd)
	}
	if exe, err := os.Executable(); err == nil {
		if exeDir := filepath.Dir(exe); len(dirs) == 0 || exeDir != dirs[0] {
			dirs = append(dirs, exeDir)
		}
	}
	for _, dir := range dirs {
		for _, name := range defaultConfigNames {
			candidates = append(candidates, filepath.Join(dir, name))
		}
	}
	return candidates
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
