package config

import (
	"errors"
	"strings"

	"github.com/karinto/litscan/internal/opts"
)

// FromEnv builds a config layer from LITSCAN_* environment variables.
// getenv is injectable so tests can run without touching the process
// environment.
func FromEnv(getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	var cfg Config
	var errs []error

	setString := func(target **string, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		value := raw
		*target = &value
	}
	setList := func(target **[]string, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		list := opts.SplitMulti([]string{raw})
		if len(list) == 0 {
			empty := make([]string, 0)
			*target = &empty
			return
		}
		copyVals := make([]string, len(list))
		copy(copyVals, list)
		*target = &copyVals
	}
	setBool := func(target **bool, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		v, err := opts.ParseBool(raw, key)
		if err != nil {
			errs = append(errs, err)
			return
		}
		value := v
		*target = &value
	}
	setInt := func(target **int, key string, min, max int) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		v, err := opts.ParseIntInRange(raw, key, min, max)
		if err != nil {
			errs = append(errs, err)
			return
		}
		value := v
		*target = &value
	}

	setString(&cfg.Scan.Lang, "LITSCAN_LANG")
	setString(&cfg.Scan.Output, "LITSCAN_OUTPUT")
	setString(&cfg.Scan.Color, "LITSCAN_COLOR")
	setString(&cfg.Scan.Fields, "LITSCAN_FIELDS")
	setBool(&cfg.Scan.AutoDetect, "LITSCAN_AUTO_DETECT")
	setInt(&cfg.Scan.DebounceMS, "LITSCAN_DEBOUNCE_MS", 50, 60_000)

	setList(&cfg.Transform.Languages, "LITSCAN_LANGUAGES")
	setList(&cfg.Transform.Styles, "LITSCAN_STYLES")
	setString(&cfg.Transform.Action, "LITSCAN_ACTION")
	setBool(&cfg.Transform.InlineActions, "LITSCAN_INLINE_ACTIONS")

	if len(errs) > 0 {
		return cfg, errors.Join(errs...)
	}
	return cfg, nil
}
