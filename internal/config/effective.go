package config

import (
	"fmt"
	"os"

	"github.com/karinto/litscan/internal/opts"
)

// Effective resolves the options a command starts from: defaults,
// then the discovered config file, then LITSCAN_* environment
// variables. CLI flags are layered on top by the caller before the
// final NormalizeAndValidate. The returned string names the config
// file used ("" when none was found).
func Effective(startDir string, getenv func(string) string) (opts.Options, string, error) {
	if getenv == nil {
		getenv = os.Getenv
	}

	path, _, err := Find(startDir, getenv("LITSCAN_CONFIG"), getenv("XDG_CONFIG_HOME"), getenv("HOME"))
	if err != nil {
		return opts.Options{}, "", fmt.Errorf("locate config: %w", err)
	}

	var fileLayer Config
	if path != "" {
		fileLayer, err = Load(path)
		if err != nil {
			return opts.Options{}, path, fmt.Errorf("load config: %w", err)
		}
	}

	envLayer, err := FromEnv(getenv)
	if err != nil {
		return opts.Options{}, path, fmt.Errorf("read environment: %w", err)
	}

	merged := Merge(opts.Defaults(), fileLayer, envLayer)
	return merged, path, nil
}
