// Package config resolves the cache root and the persisted defaults
// (default site and contest) kept in constants.json under the cache root.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	cacheDirName      = "ACedIt"
	constantsFileName = "constants.json"
	langsFileName     = "langs.toml"

	KeyDefaultSite    = "default_site"
	KeyDefaultContest = "default_contest"
)

// CacheRoot returns the per-user cache directory, creating it if absent.
func CacheRoot() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("resolve user cache dir: %w", err)
	}
	root := filepath.Join(base, cacheDirName)
	if err := os.MkdirAll(root, 0o755); err != nil {
		return "", fmt.Errorf("create cache root: %w", err)
	}
	return root, nil
}

// LangsPath is the optional TOML file overriding the built-in language table.
func LangsPath(root string) string {
	return filepath.Join(root, langsFileName)
}

// Defaults holds the values applied when -s / -c flags are omitted.
type Defaults struct {
	Site    string
	Contest string
}

// LoadDefaults reads constants.json. A missing or unreadable file just
// yields empty defaults, matching the original behavior.
func LoadDefaults(root string) Defaults {
	data, err := os.ReadFile(filepath.Join(root, constantsFileName))
	if err != nil {
		return Defaults{}
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Defaults{}
	}
	var d Defaults
	if v, ok := raw[KeyDefaultSite].(string); ok {
		d.Site = v
	}
	if v, ok := raw[KeyDefaultContest].(string); ok {
		d.Contest = v
	}
	return d
}

// SetDefault read-modify-writes one key in constants.json, preserving any
// other keys already stored there.
func SetDefault(root, key, value string) error {
	path := filepath.Join(root, constantsFileName)
	raw := make(map[string]any)
	if data, err := os.ReadFile(path); err == nil {
		// Ignore a corrupt file and start over, like the original did.
		_ = json.Unmarshal(data, &raw)
	}
	raw[key] = value
	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", constantsFileName, err)
	}
	return nil
}
