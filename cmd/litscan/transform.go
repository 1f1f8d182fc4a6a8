package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/pkg/browser"

	"github.com/karinto/litscan/internal/action"
	"github.com/karinto/litscan/internal/config"
	"github.com/karinto/litscan/internal/model"
	"github.com/karinto/litscan/internal/scanner"
	"github.com/karinto/litscan/internal/transform"
)

// transformCmd backs both `litscan translate` and `litscan enhance`.
// The input is either -text (the active selection) or -file with -item
// (a detected string literal).
func transformCmd(kind string, args []string) int {
	base, _, err := config.Effective(".", os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "litscan: %v\n", err)
		return exitError
	}

	fs := flag.NewFlagSet("litscan "+kind, flag.ExitOnError)
	var (
		text    = fs.String("text", "", "text to transform (alternative to -file/-item)")
		file    = fs.String("file", "", "source document")
		item    = fs.Int("item", 0, "index of the detected item in -file (0-based)")
		lang    = fs.String("lang", base.Lang, "language id for -file (blank = auto-detect)")
		to      = fs.String("to", firstOf(base.Languages), "target language (translate)")
		style   = fs.String("style", firstOf(base.Styles), "enhancement style (enhance)")
		act     = fs.String("action", base.Action, "replace|annotate|copy|scratch")
		open    = fs.Bool("open", false, "open the scratch file in the default viewer")
		verbose = fs.Bool("verbose", false, "debug logging")
	)
	_ = fs.Parse(args)

	log := newLogger(*verbose)

	actKind, err := action.Normalize(*act)
	if err != nil {
		fmt.Fprintf(os.Stderr, "litscan: %v\n", err)
		return exitError
	}

	var d model.Detection
	hasSpan := false
	switch {
	case *text != "":
		d = model.Detection{Text: *text}
	case *file != "":
		sc := scanner.New(log)
		detections, languageID, err := loadAndDetect(*file, *lang, base.AutoDetect, sc)
		if err != nil {
			return warnUser("%v", err)
		}
		if len(detections) == 0 {
			return warnUser("no string literals detected in %s (%s)", *file, languageID)
		}
		if *item < 0 || *item >= len(detections) {
			return warnUser("item %d out of range: %s has %d detected string(s)", *item, *file, len(detections))
		}
		d = detections[*item]
		hasSpan = true
	default:
		return warnUser("nothing to %s: pass -text or -file (with -item)", kind)
	}

	var out string
	switch kind {
	case "translate":
		out, err = transform.NewTranslator().Translate(context.Background(), d.Text, *to)
	default:
		out, err = transform.NewEnhancer().Enhance(context.Background(), d.Text, *style)
	}
	if err != nil {
		log.Error().Err(err).Str("kind", kind).Msg("transform failed")
		fmt.Fprintln(os.Stderr, "litscan: transform failed, see log for details")
		return exitError
	}

	// ファイル内スパンがない入力 (-text) はファイルを書き換えられない。
	if !hasSpan && (actKind == action.Replace || actKind == action.Annotate) {
		fmt.Println(out)
		return exitOK
	}

	res, err := action.Apply(actKind, *file, d, out)
	if err != nil {
		log.Error().Err(err).Str("action", string(actKind)).Msg("action failed")
		fmt.Fprintln(os.Stderr, "litscan: transform failed, see log for details")
		return exitError
	}
	switch {
	case res.ScratchPath != "":
		fmt.Println(res.ScratchPath)
		if *open {
			if err := browser.OpenFile(res.ScratchPath); err != nil {
				log.Warn().Err(err).Msg("could not open scratch file")
			}
		}
	case res.Changed:
		line, col := d.Location()
		fmt.Printf("%s %s at %d:%d\n", actKind, *file, line, col)
	default:
		fmt.Println(out)
	}
	return exitOK
}

func firstOf(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
