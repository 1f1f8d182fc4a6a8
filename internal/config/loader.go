package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/karinto/litscan/internal/opts"
)

var scanKeyMap = map[string]string{
	"lang":        "lang",
	"language":    "lang",
	"output":      "output",
	"format":      "output",
	"color":       "color",
	"fields":      "fields",
	"auto_detect": "auto_detect",
	"autodetect":  "auto_detect",
	"debounce_ms": "debounce_ms",
	"debounce":    "debounce_ms",
}

var transformKeyMap = map[string]string{
	"languages":          "languages",
	"target_languages":   "languages",
	"styles":             "styles",
	"enhancement_styles": "styles",
	"action":             "action",
	"default_action":     "action",
	"inline_actions":     "inline_actions",
}

// Load reads one config file. The extension selects the decoder; the
// content is decoded into a raw map first so unknown keys and key
// aliases can be reported precisely.
func Load(path string) (Config, error) {
	var cfg Config
	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	ext := strings.ToLower(filepath.Ext(path))
	var raw map[string]any
	switch ext {
	case ".yaml", ".yml":
		if decodeErr := yaml.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	case ".toml":
		if decodeErr := toml.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	case ".json":
		if decodeErr := json.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	if raw == nil {
		return cfg, nil
	}
	decoded, err := decodeConfigMap(raw)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return decoded, nil
}

func decodeConfigMap(raw map[string]any) (Config, error) {
	var cfg Config
	scanSection := make(map[string]any)
	transformSection := make(map[string]any)

	if block, ok := raw["scan"]; ok {
		sub, err := toStringKeyMap(block)
		if err != nil {
			return cfg, fmt.Errorf("scan: %w", err)
		}
		if err := fillSection(scanSection, sub, scanKeyMap, "scan"); err != nil {
			return cfg, err
		}
	}
	if block, ok := raw["transform"]; ok {
		sub, err := toStringKeyMap(block)
		if err != nil {
			return cfg, fmt.Errorf("transform: %w", err)
		}
		if err := fillSection(transformSection, sub, transformKeyMap, "transform"); err != nil {
			return cfg, err
		}
	}

	// セクション外のキーも受け付ける(フラットな設定ファイル向け)。
	for key, value := range raw {
		norm := normalizeKey(key)
		switch norm {
		case "scan", "transform":
			continue
		default:
			if canonical, ok := scanKeyMap[norm]; ok {
				scanSection[canonical] = value
				continue
			}
			if canonical, ok := transformKeyMap[norm]; ok {
				transformSection[canonical] = value
				continue
			}
			return cfg, fmt.Errorf("unknown config key: %s", key)
		}
	}

	if err := assignScan(scanSection, &cfg.Scan); err != nil {
		return cfg, fmt.Errorf("scan: %w", err)
	}
	if err := assignTransform(transformSection, &cfg.Transform); err != nil {
		return cfg, fmt.Errorf("transform: %w", err)
	}
	return cfg, nil
}

func fillSection(dst, src map[string]any, allowed map[string]string, section string) error {
	for key, value := range src {
		canonical, ok := allowed[normalizeKey(key)]
		if !ok {
			return fmt.Errorf("unknown %s key: %s", section, key)
		}
		dst[canonical] = value
	}
	return nil
}

func assignScan(section map[string]any, dst *ScanConfig) error {
	for key, value := range section {
		switch key {
		case "lang":
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			trimmed := strings.TrimSpace(str)
			dst.Lang = &trimmed
		case "output":
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			trimmed := strings.TrimSpace(str)
			dst.Output = &trimmed
		case "color":
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			trimmed := strings.TrimSpace(str)
			dst.Color = &trimmed
		case "fields":
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			trimmed := strings.TrimSpace(str)
			dst.Fields = &trimmed
		case "auto_detect":
			b, err := expectBool(value, key)
			if err != nil {
				return err
			}
			dst.AutoDetect = &b
		case "debounce_ms":
			n, err := expectInt(value, key)
			if err != nil {
				return err
			}
			dst.DebounceMS = &n
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
	}
	return nil
}

func assignTransform(section map[string]any, dst *TransformConfig) error {
	for key, value := range section {
		switch key {
		case "languages":
			list, err := expectStringList(value, key)
			if err != nil {
				return err
			}
			dst.Languages = &list
		case "styles":
			list, err := expectStringList(value, key)
			if err != nil {
				return err
			}
			dst.Styles = &list
		case "action":
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			trimmed := strings.TrimSpace(str)
			dst.Action = &trimmed
		case "inline_actions":
			b, err := expectBool(value, key)
			if err != nil {
				return err
			}
			dst.InlineActions = &b
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
	}
	return nil
}

func expectString(value any, field string) (string, error) {
	if value == nil {
		return "", fmt.Errorf("%s cannot be null", field)
	}
	if s, ok := value.(string); ok {
		return s, nil
	}
	return "", fmt.Errorf("expected string for %s, got %T", field, value)
}

func expectBool(value any, field string) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		return opts.ParseBool(v, field)
	default:
		return false, fmt.Errorf("expected bool for %s, got %T", field, value)
	}
}

func expectInt(value any, field string) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("expected integer for %s, got %v", field, value)
		}
		return int(v), nil
	case json.Number:
		n, err := strconv.Atoi(v.String())
		if err != nil {
			return 0, fmt.Errorf("invalid integer value for %s: %v", field, value)
		}
		return n, nil
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0, fmt.Errorf("invalid integer value for %s: %q", field, v)
		}
		n, err := strconv.Atoi(trimmed)
		if err != nil {
			return 0, fmt.Errorf("invalid integer value for %s: %q", field, v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("expected integer for %s, got %T", field, value)
	}
}

func expectStringList(value any, field string) ([]string, error) {
	switch v := value.(type) {
	case string:
		parts := opts.SplitMulti([]string{v})
		return normalizeList(parts), nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			str, err := expectString(item, field)
			if err != nil {
				return nil, err
			}
			out = append(out, str)
		}
		return normalizeList(out), nil
	case []string:
		return normalizeList(v), nil
	default:
		return nil, fmt.Errorf("expected string or list for %s, got %T", field, value)
	}
}

func normalizeList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}

func toStringKeyMap(v any) (map[string]any, error) {
	switch typed := v.(type) {
	case map[string]any:
		return typed, nil
	case map[any]any:
		out := make(map[string]any, len(typed))
		for k, value := range typed {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string key: %v", k)
			}
			out[key] = value
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected map, got %T", v)
	}
}

func normalizeKey(key string) string {
	norm := strings.ToLower(strings.TrimSpace(key))
	norm = strings.ReplaceAll(norm, "-", "_")
	return norm
}
