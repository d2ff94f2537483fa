// Package where resolves the filesystem locations used by nestshade.
package where

import (
	"os"
	"path/filepath"

	"github.com/nestshade/nestshade/constant"
	"github.com/nestshade/nestshade/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the configuration directory.
const EnvConfigPath = "NESTSHADE_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config returns the configuration directory, honoring NESTSHADE_CONFIG_PATH and falling back to the user config dir.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base, err := os.UserConfigDir()
	if err != nil {
		base = filepath.Join(".", "config")
	}
	return ensureDir(filepath.Join(base, constant.Nestshade))
}

// ConfigFile returns the path of the TOML configuration file.
func ConfigFile() string {
	return filepath.Join(Config(), constant.Nestshade+".toml")
}

// Logs returns the directory holding daily log files.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}
