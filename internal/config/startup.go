package config

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/windows/registry"
)

const (
	startupKeyPath = `Software\Microsoft\Windows\CurrentVersion\Run`
	appName        = "BreachCore"
)

// IsStartupEnabled reports whether breachcore is registered to launch at
// Windows sign-in.
func IsStartupEnabled() (bool, error) {
	key, err := registry.OpenKey(registry.CURRENT_USER, startupKeyPath, registry.QUERY_VALUE)
	if err != nil {
		return false, err
	}
	defer key.Close()

	_, _, err = key.GetStringValue(appName)
	if err == registry.ErrNotExist {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

// SetStartupEnabled registers or unregisters breachcore as a sign-in
// launch target, backing the -enable-startup/-disable-startup flags.
func SetStartupEnabled(enabled bool) error {
	if enabled {
		return enableStartup()
	}
	return disableStartup()
}

// enableStartup points the Run key at the currently running executable,
// so the hotkey listener comes up again after every sign-in without the
// user launching it by hand.
func enableStartup() error {
	exePath, err := os.Executable()
	if err != nil {
		return err
	}
	exePath, err = filepath.Abs(exePath)
	if err != nil {
		return err
	}

	key, err := registry.OpenKey(registry.CURRENT_USER, startupKeyPath, registry.SET_VALUE)
	if err != nil {
		return err
	}
	defer key.Close()

	return key.SetStringValue(appName, `"`+exePath+`"`)
}

func disableStartup() error {
	key, err := registry.OpenKey(registry.CURRENT_USER, startupKeyPath, registry.SET_VALUE)
	if err != nil {
		return err
	}
	defer key.Close()

	err = key.DeleteValue(appName)
	if err == registry.ErrNotExist {
		return nil
	}
	return err
}
