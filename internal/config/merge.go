package config

import (
	"strings"

	"github.com/karinto/litscan/internal/opts"
)

// Merge layers the given configs over base, later layers winning.
// Ordering is: defaults, config file, environment, then CLI flags
// applied by the caller afterwards.
func Merge(base opts.Options, layers ...Config) opts.Options {
	out := base
	for _, layer := range layers {
		out.Lang = ResolveAndTrim(out.Lang, layer.Scan.Lang)
		out.Output = ResolveAndTrim(out.Output, layer.Scan.Output)
		out.Color = ResolveAndTrim(out.Color, layer.Scan.Color)
		out.Fields = ResolveAndTrim(out.Fields, layer.Scan.Fields)
		out.AutoDetect = ResolveBool(out.AutoDetect, layer.Scan.AutoDetect)
		out.DebounceMS = ResolveInt(out.DebounceMS, layer.Scan.DebounceMS)

		out.Languages = ResolveStrings(out.Languages, layer.Transform.Languages)
		out.Styles = ResolveStrings(out.Styles, layer.Transform.Styles)
		out.Action = ResolveAndTrim(out.Action, layer.Transform.Action)
		out.InlineActions = ResolveBool(out.InlineActions, layer.Transform.InlineActions)
	}
	if strings.TrimSpace(out.Output) == "" {
		out.Output = "table"
	}
	if strings.TrimSpace(out.Color) == "" {
		out.Color = "auto"
	}
	return out
}
