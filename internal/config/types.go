// Package config は .litscan 設定ファイルと環境変数を読み込み、
// 欠損値を区別するためポインタ型で層を表現します。
package config

// ScanConfig holds detection-side settings. Nil means "not set in
// this layer"; merging resolves the layers into opts.Options.
type ScanConfig struct {
	Lang       *string `yaml:"lang" toml:"lang" json:"lang"`
	Output     *string `yaml:"output" toml:"output" json:"output"`
	Color      *string `yaml:"color" toml:"color" json:"color"`
	Fields     *string `yaml:"fields" toml:"fields" json:"fields"`
	AutoDetect *bool   `yaml:"auto_detect" toml:"auto_detect" json:"auto_detect"`
	DebounceMS *int    `yaml:"debounce_ms" toml:"debounce_ms" json:"debounce_ms"`
}

// TransformConfig holds transform-side settings.
type TransformConfig struct {
	Languages     *[]string `yaml:"languages" toml:"languages" json:"languages"`
	Styles        *[]string `yaml:"styles" toml:"styles" json:"styles"`
	Action        *string   `yaml:"action" toml:"action" json:"action"`
	InlineActions *bool     `yaml:"inline_actions" toml:"inline_actions" json:"inline_actions"`
}

// Config is one configuration layer (file or environment).
type Config struct {
	Scan      ScanConfig      `yaml:"scan" toml:"scan" json:"scan"`
	Transform TransformConfig `yaml:"transform" toml:"transform" json:"transform"`
}

func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
