//go:build e2e

package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/rs/zerolog"

	"github.com/karinto/litscan/internal/opts"
	"github.com/karinto/litscan/internal/scanner"
	"github.com/karinto/litscan/internal/transform"
	"github.com/karinto/litscan/internal/web"
)

func TestWebパネルは検出テキストをHTMLエスケープして表示する(t *testing.T) {
	t.Parallel()

	if !hasBrowser() {
		t.Skip("Chrome/Chromiumが見つからないためスキップします")
	}

	dir := t.TempDir()
	doc := filepath.Join(dir, "page.ts")
	content := "const tip = \"hello <img src=x onerror=alert(1)> & friends\";\n"
	if err := os.WriteFile(doc, []byte(content), 0o644); err != nil {
		t.Fatalf("フィクスチャの書き込みに失敗しました: %v", err)
	}

	log := zerolog.Nop()
	s := &server{
		base: opts.Defaults(),
		sc:   scanner.New(log),
		tr:   transform.NewTranslator().WithDelay(0),
		en:   transform.NewEnhancer().WithDelay(0),
		log:  log,
	}
	mux := http.NewServeMux()
	web.Register(mux)
	mux.HandleFunc("/api/scan", s.handleScan)
	mux.HandleFunc("/api/transform", s.handleTransform)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	// chromedp navigation can take some time in CI environments.
	ctx, cancel = context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	var cellText, cellHTML string
	var nodeCount int

	err := chromedp.Run(ctx,
		chromedp.Navigate(srv.URL),
		chromedp.WaitVisible(`#scan-form`, chromedp.ByQuery),
		chromedp.SendKeys(`#file`, doc, chromedp.ByID),
		chromedp.Submit(`#scan-form`, chromedp.ByQuery),
		chromedp.WaitVisible(`#results`, chromedp.ByID),
		chromedp.Text(`#rows tr td:nth-child(4)`, &cellText, chromedp.ByQuery),
		chromedp.InnerHTML(`#rows tr td:nth-child(4)`, &cellHTML, chromedp.ByQuery),
		chromedp.Evaluate(`document.querySelectorAll('#rows img, #rows script').length`, &nodeCount),
	)
	if err != nil {
		t.Fatalf("chromedpの操作に失敗しました: %v", err)
	}

	if !strings.Contains(cellText, "<img src=x onerror=alert(1)>") {
		t.Fatalf("セルのテキストが期待値と異なります: %q", cellText)
	}
	if !strings.Contains(cellText, "& friends") {
		t.Fatalf("セルのテキストから特殊文字が消えています: %q", cellText)
	}
	if !strings.Contains(cellHTML, "&lt;img") || !strings.Contains(cellHTML, "&amp; friends") {
		t.Fatalf("セルのHTMLがエスケープされていません: %q", cellHTML)
	}
	if nodeCount != 0 {
		t.Fatalf("危険なノードが挿入されています: %d", nodeCount)
	}
}

func hasBrowser() bool {
	candidates := []string{"google-chrome", "google-chrome-stable", "chromium", "chromium-browser"}
	for _, name := range candidates {
		if _, err := exec.LookPath(name); err == nil {
			return true
		}
	}
	return false
}
