// Package config loads and saves the on-disk JSON configuration: the
// screenshot hotkey, whether the app launches on Windows startup, and
// the optional cloud upload targets for solved-run artifacts.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// HotkeyConfig names the key that triggers a capture-and-solve run.
type HotkeyConfig struct {
	Fullscreen string `json:"fullscreen"`
}

// StartupConfig mirrors whether the Windows Run key is set.
type StartupConfig struct {
	LaunchOnStartup bool `json:"launchOnStartup"`
}

// R2Config holds Cloudflare R2 (S3-compatible) upload settings.
// Credentials themselves live in internal/credstore, never here.
type R2Config struct {
	AccountID string `json:"accountId,omitempty"`
	Bucket    string `json:"bucket,omitempty"`
	PublicURL string `json:"publicUrl,omitempty"`
}

// GDriveConfig holds the Google Drive destination folder. OAuth2
// tokens live in internal/credstore, never here.
type GDriveConfig struct {
	FolderID string `json:"folderId,omitempty"`
}

// CloudConfig groups the two upload destinations. Both are optional;
// a run with neither configured simply skips upload.
type CloudConfig struct {
	R2     R2Config     `json:"r2,omitempty"`
	GDrive GDriveConfig `json:"gdrive,omitempty"`
}

// Config is the full on-disk shape. Unknown/missing fields decode to
// their zero value, so a config file written by an older build still
// loads: a field not yet invented just stays empty.
type Config struct {
	Hotkeys HotkeyConfig  `json:"hotkeys"`
	Startup StartupConfig `json:"startup"`
	Cloud   CloudConfig   `json:"cloud,omitempty"`
}

// Default returns the out-of-box configuration.
func Default() *Config {
	return &Config{
		Hotkeys: HotkeyConfig{Fullscreen: "PrintScreen"},
		Startup: StartupConfig{LaunchOnStartup: false},
	}
}

// Load reads and decodes the config file at path. A missing file is
// not an error — the caller gets Default() back.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save encodes cfg and writes it to path.
func Save(path string, cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
