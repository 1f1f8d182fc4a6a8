package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/karinto/litscan/internal/config"
	"github.com/karinto/litscan/internal/detect"
	"github.com/karinto/litscan/internal/opts"
	"github.com/karinto/litscan/internal/panel"
	"github.com/karinto/litscan/internal/scanner"
)

func panelCmd(args []string) int {
	base, _, err := config.Effective(".", os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "litscan: %v\n", err)
		return exitError
	}

	fs := flag.NewFlagSet("litscan panel", flag.ExitOnError)
	var (
		file    = fs.String("file", "", "source document")
		lang    = fs.String("lang", base.Lang, "language id (blank = auto-detect)")
		verbose = fs.Bool("verbose", false, "debug logging")
	)
	_ = fs.Parse(args)

	log := newLogger(*verbose)

	o := base
	o.File = *file
	o.Lang = *lang
	if err := opts.NormalizeAndValidate(&o); err != nil {
		fmt.Fprintf(os.Stderr, "litscan: %v\n", err)
		return exitError
	}
	if o.File == "" {
		return warnUser("no file given: pass -file path/to/source")
	}

	data, err := os.ReadFile(o.File)
	if err != nil {
		return warnUser("cannot read %s: %v", o.File, err)
	}
	languageID := detect.Normalize(o.Lang)
	if languageID == "" && o.AutoDetect {
		languageID = detect.FromPathAndContent(o.File, data)
	}
	if languageID == "" {
		languageID = "plaintext"
	}

	if err := panel.Run(o.File, languageID, o, scanner.New(log), log); err != nil {
		log.Error().Err(err).Msg("panel exited with error")
		return exitError
	}
	return exitOK
}
