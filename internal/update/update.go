// Package update checks whether a newer release is available. Version
// strings are compared with semver rather than string equality so
// pre-release/build metadata suffixes don't produce false positives.
package update

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Masterminds/semver/v3"
)

// ManifestURL is the release manifest polled for the latest tagged
// version. It is a var, not a const, so tests and alternate builds
// can point it at a fixture server.
var ManifestURL = "https://releases.example.com/breachcore/latest.json"

type manifest struct {
	Version string `json:"version"`
	URL     string `json:"url"`
}

// CheckResult reports whether currentVersion is behind the manifest's
// published version.
type CheckResult struct {
	UpdateAvailable bool
	LatestVersion   string
	DownloadURL     string
}

// Check compares currentVersion against the published manifest.
func Check(currentVersion string) (CheckResult, error) {
	resp, err := http.Get(ManifestURL)
	if err != nil {
		return CheckResult{}, fmt.Errorf("update: fetch manifest: %w", err)
	}
	defer resp.Body.Close()

	var m manifest
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		return CheckResult{}, fmt.Errorf("update: decode manifest: %w", err)
	}

	newer, err := IsNewer(currentVersion, m.Version)
	if err != nil {
		return CheckResult{}, err
	}

	return CheckResult{UpdateAvailable: newer, LatestVersion: m.Version, DownloadURL: m.URL}, nil
}

// IsNewer reports whether latest is a strictly greater semver version
// than current.
func IsNewer(current, latest string) (bool, error) {
	curVer, err := semver.NewVersion(current)
	if err != nil {
		return false, fmt.Errorf("update: parse current version %q: %w", current, err)
	}
	latestVer, err := semver.NewVersion(latest)
	if err != nil {
		return false, fmt.Errorf("update: parse latest version %q: %w", latest, err)
	}
	return curVer.LessThan(latestVer), nil
}
