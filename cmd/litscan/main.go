// litscan は単一のソース文書から文字列リテラルを検出し、一覧表示と
// モック変換(翻訳/強調)を提供する CLI です。
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

const (
	exitOK    = 0
	exitError = 1
	// ユーザ入力の不備(ファイル未指定、空の選択)は 2 で区別する。
	exitUsage = 2
)

func main() {
	args := os.Args[1:]
	if len(args) > 0 {
		switch args[0] {
		case "scan":
			os.Exit(scanCmd(args[1:]))
		case "translate":
			os.Exit(transformCmd("translate", args[1:]))
		case "enhance":
			os.Exit(transformCmd("enhance", args[1:]))
		case "panel":
			os.Exit(panelCmd(args[1:]))
		case "watch":
			os.Exit(watchCmd(args[1:]))
		case "serve":
			os.Exit(serveCmd(args[1:]))
		case "help", "-h", "-help", "--help":
			usage(os.Stdout)
			os.Exit(exitOK)
		}
	}
	// サブコマンド省略時は scan。
	os.Exit(scanCmd(args))
}

func usage(w *os.File) {
	fmt.Fprintln(w, `usage: litscan [command] [flags]

commands:
  scan       detect string literals in a file (default)
  translate  mock-translate text or a detected item
  enhance    mock-enhance text or a detected item
  panel      interactive terminal panel
  watch      re-detect on file change
  serve      browser panel

run 'litscan <command> -h' for command flags`)
}

// newLogger builds the stderr console logger shared by all commands.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// warnUser prints a user-facing warning (not a log record) and returns
// the usage exit code.
func warnUser(format string, args ...any) int {
	fmt.Fprintf(os.Stderr, "litscan: "+format+"\n", args...)
	return exitUsage
}
