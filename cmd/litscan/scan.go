package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog"

	"github.com/karinto/litscan/internal/config"
	"github.com/karinto/litscan/internal/detect"
	"github.com/karinto/litscan/internal/model"
	"github.com/karinto/litscan/internal/opts"
	"github.com/karinto/litscan/internal/output"
	"github.com/karinto/litscan/internal/scanner"
	"github.com/karinto/litscan/internal/termcolor"
	"github.com/karinto/litscan/internal/textutil"
)

const tableTextWidth = 80

func scanCmd(args []string) int {
	base, cfgPath, err := config.Effective(".", os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "litscan: %v\n", err)
		return exitError
	}

	fs := flag.NewFlagSet("litscan scan", flag.ExitOnError)
	var (
		file    = fs.String("file", "", "source document to scan")
		lang    = fs.String("lang", base.Lang, "language id (blank = auto-detect)")
		out     = fs.String("output", base.Output, "table|tsv|json|ndjson|csv|md")
		fields  = fs.String("fields", base.Fields, "comma-separated columns (location,line,start_char,end_char,quote,lang,text)")
		color   = fs.String("color", base.Color, "auto|always|never")
		noAuto  = fs.Bool("no-auto-detect", !base.AutoDetect, "disable language auto-detection")
		verbose = fs.Bool("verbose", false, "debug logging")
	)
	_ = fs.Parse(args)

	log := newLogger(*verbose)
	if cfgPath != "" {
		log.Debug().Str("path", cfgPath).Msg("config loaded")
	}

	o := base
	o.File = *file
	o.Lang = *lang
	o.Output = *out
	o.Fields = *fields
	o.Color = *color
	o.AutoDetect = !*noAuto
	if err := opts.NormalizeAndValidate(&o); err != nil {
		fmt.Fprintf(os.Stderr, "litscan: %v\n", err)
		return exitError
	}

	if o.File == "" {
		return warnUser("no file given: pass -file path/to/source")
	}

	sc := scanner.New(log)
	detections, languageID, err := loadAndDetect(o.File, o.Lang, o.AutoDetect, sc)
	if err != nil {
		return warnUser("%v", err)
	}
	log.Debug().Str("lang", languageID).Int("count", len(detections)).Msg("scan complete")

	if err := render(os.Stdout, detections, o); err != nil {
		fmt.Fprintf(os.Stderr, "litscan: %v\n", err)
		return exitError
	}
	return exitOK
}

// loadAndDetect reads the document, resolves its language id and runs
// detection. A missing or unreadable file is a user error, not a scan
// failure.
func loadAndDetect(path, lang string, autoDetect bool, sc *scanner.Scanner) ([]model.Detection, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("cannot read %s: %w", path, err)
	}
	languageID := detect.Normalize(lang)
	if languageID == "" && autoDetect {
		languageID = detect.FromPathAndContent(path, data)
	}
	if languageID == "" {
		languageID = "plaintext"
	}
	return sc.Detect(string(data), languageID), languageID, nil
}

func render(w io.Writer, detections []model.Detection, o opts.Options) error {
	sel, err := output.ParseFields(o.Fields)
	if err != nil {
		return err
	}
	switch o.Output {
	case "json":
		return output.WriteJSON(w, detections)
	case "ndjson":
		return output.WriteNDJSON(w, detections)
	case "csv":
		return output.WriteCSV(w, detections, sel)
	case "md":
		return output.WriteMarkdownTable(w, detections, sel)
	case "tsv":
		return printTSV(w, detections, sel)
	default:
		mode, err := termcolor.ParseMode(o.Color)
		if err != nil {
			return err
		}
		if mode == termcolor.ModeAuto {
			mode = termcolor.DetectMode(os.Stdout, termcolor.EnvMap(os.Environ()))
		}
		return printTable(w, detections, sel, mode == termcolor.ModeAlways)
	}
}

func printTSV(w io.Writer, detections []model.Detection, sel output.FieldSelection) error {
	tw := tabwriter.NewWriter(w, 0, 8, 0, '\t', 0) // tabs only
	fmt.Fprintln(tw, strings.Join(output.Headers(sel.Fields), "\t"))
	for _, d := range detections {
		fmt.Fprintln(tw, strings.Join(output.RowValues(d, sel.Fields), "\t"))
	}
	return tw.Flush()
}

// printTable pads by visible width instead of using tabwriter: ANSI
// color codes would be counted as cell content there.
func printTable(w io.Writer, detections []model.Detection, sel output.FieldSelection, colored bool) error {
	headers := output.Headers(sel.Fields)
	rows := make([][]string, len(detections))
	for i, d := range detections {
		row := output.RowValues(d, sel.Fields)
		for j, f := range sel.Fields {
			if f == "text" {
				row[j] = textutil.TruncateByWidth(textutil.Sanitize(row[j]), tableTextWidth, "…")
			}
		}
		rows[i] = row
	}

	widths := make([]int, len(headers))
	for j, h := range headers {
		widths[j] = textutil.VisibleWidth(h)
	}
	for _, row := range rows {
		for j, cell := range row {
			if wdt := textutil.VisibleWidth(cell); wdt > widths[j] {
				widths[j] = wdt
			}
		}
	}

	var b strings.Builder
	for j, h := range headers {
		b.WriteString(textutil.PadRight(h, widths[j]))
		if j < len(headers)-1 {
			b.WriteString("  ")
		}
	}
	b.WriteString("\n")
	for i, row := range rows {
		for j, cell := range row {
			padded := textutil.PadRight(cell, widths[j])
			if colored {
				padded = styleCell(sel.Fields[j], detections[i], padded)
			}
			b.WriteString(padded)
			if j < len(row)-1 {
				b.WriteString("  ")
			}
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func styleCell(field string, d model.Detection, cell string) string {
	switch field {
	case "quote":
		return termcolor.Apply(termcolor.QuoteStyle(d.QuoteKind), cell, true)
	case "location", "line", "start_char", "end_char":
		return termcolor.Apply(termcolor.LocationStyle, cell, true)
	default:
		return cell
	}
}

// scanLoggerFields is shared by watch/serve so their records carry the
// same keys as scan.
func scanLogContext(log zerolog.Logger, path, languageID string) zerolog.Logger {
	return log.With().Str("file", path).Str("lang", languageID).Logger()
}
