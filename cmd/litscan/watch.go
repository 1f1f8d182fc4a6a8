package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/karinto/litscan/internal/config"
	"github.com/karinto/litscan/internal/opts"
	"github.com/karinto/litscan/internal/scanner"
	"github.com/karinto/litscan/internal/watch"
)

func watchCmd(args []string) int {
	base, _, err := config.Effective(".", os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "litscan: %v\n", err)
		return exitError
	}

	fs := flag.NewFlagSet("litscan watch", flag.ExitOnError)
	var (
		file     = fs.String("file", "", "source document to watch")
		lang     = fs.String("lang", base.Lang, "language id (blank = auto-detect)")
		out      = fs.String("output", base.Output, "table|tsv|json|ndjson|csv|md")
		fields   = fs.String("fields", base.Fields, "comma-separated columns")
		color    = fs.String("color", base.Color, "auto|always|never")
		debounce = fs.Int("debounce-ms", base.DebounceMS, "quiescence before rescan")
		verbose  = fs.Bool("verbose", false, "debug logging")
	)
	_ = fs.Parse(args)

	log := newLogger(*verbose)

	o := base
	o.File = *file
	o.Lang = *lang
	o.Output = *out
	o.Fields = *fields
	o.Color = *color
	o.DebounceMS = *debounce
	if err := opts.NormalizeAndValidate(&o); err != nil {
		fmt.Fprintf(os.Stderr, "litscan: %v\n", err)
		return exitError
	}
	if o.File == "" {
		return warnUser("no file given: pass -file path/to/source")
	}

	sc := scanner.New(log)
	rescan := func() {
		detections, languageID, err := loadAndDetect(o.File, o.Lang, o.AutoDetect, sc)
		if err != nil {
			// 監視中のファイルは消えることがある。スキャン失敗は
			// ログに残して空リストとして扱う。
			log.Warn().Err(err).Msg("rescan failed")
			detections = nil
			languageID = "plaintext"
		}
		wlog := scanLogContext(log, o.File, languageID)
		wlog.Info().Int("count", len(detections)).Msg("rescan")
		if err := render(os.Stdout, detections, o); err != nil {
			wlog.Error().Err(err).Msg("render failed")
		}
	}

	rescan()

	w, err := watch.NewWatcher(o.File, o.Debounce(), rescan, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "litscan: %v\n", err)
		return exitError
	}
	defer w.Close()
	go w.Run()

	log.Info().Str("file", o.File).Dur("debounce", o.Debounce()).Msg("watching (ctrl+c to stop)")
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	return exitOK
}
