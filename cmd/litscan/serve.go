package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/pkg/browser"
	"github.com/rs/zerolog"

	"github.com/karinto/litscan/internal/action"
	"github.com/karinto/litscan/internal/config"
	"github.com/karinto/litscan/internal/model"
	"github.com/karinto/litscan/internal/opts"
	"github.com/karinto/litscan/internal/scanner"
	"github.com/karinto/litscan/internal/transform"
	"github.com/karinto/litscan/internal/web"
)

type scanResponse struct {
	File       string            `json:"file"`
	LanguageID string            `json:"language_id"`
	Detections []model.Detection `json:"detections"`
	Languages  []string          `json:"languages"`
	Styles     []string          `json:"styles"`
}

type transformRequest struct {
	Kind   string `json:"kind"`
	File   string `json:"file"`
	Lang   string `json:"lang"`
	Item   int    `json:"item"`
	Text   string `json:"text"`
	Target string `json:"target"`
	Style  string `json:"style"`
	Action string `json:"action"`
}

type transformResponse struct {
	Status string `json:"status"`
	Output string `json:"output"`
	Rescan bool   `json:"rescan"`
}

type server struct {
	base opts.Options
	sc   *scanner.Scanner
	tr   *transform.Translator
	en   *transform.Enhancer
	log  zerolog.Logger
}

func serveCmd(args []string) int {
	base, _, err := config.Effective(".", os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "litscan: %v\n", err)
		return exitError
	}

	fs := flag.NewFlagSet("litscan serve", flag.ExitOnError)
	var (
		port    = fs.Int("p", 8080, "port")
		open    = fs.Bool("open", false, "open the panel in the default browser")
		verbose = fs.Bool("verbose", false, "debug logging")
	)
	_ = fs.Parse(args)

	log := newLogger(*verbose)
	if err := opts.NormalizeAndValidate(&base); err != nil {
		fmt.Fprintf(os.Stderr, "litscan: %v\n", err)
		return exitError
	}

	s := &server{
		base: base,
		sc:   scanner.New(log),
		tr:   transform.NewTranslator(),
		en:   transform.NewEnhancer(),
		log:  log,
	}

	mux := http.NewServeMux()
	web.Register(mux)
	mux.HandleFunc("/api/scan", s.handleScan)
	mux.HandleFunc("/api/transform", s.handleTransform)

	addr := fmt.Sprintf(":%d", *port)
	url := fmt.Sprintf("http://localhost:%d/", *port)
	log.Info().Str("addr", addr).Msg("litscan serve listening")
	if *open {
		go func() {
			time.Sleep(200 * time.Millisecond)
			if err := browser.OpenURL(url); err != nil {
				log.Warn().Err(err).Msg("could not open browser")
			}
		}()
	}
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Error().Err(err).Msg("server stopped")
		return exitError
	}
	return exitOK
}

func (s *server) handleScan(w http.ResponseWriter, r *http.Request) {
	o, err := opts.ApplyWebQueryToOptions(s.base, r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if o.File == "" {
		http.Error(w, "missing file parameter", http.StatusBadRequest)
		return
	}
	detections, languageID, err := loadAndDetect(o.File, o.Lang, o.AutoDetect, s.sc)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if detections == nil {
		detections = []model.Detection{}
	}
	writeJSON(w, scanResponse{
		File:       o.File,
		LanguageID: languageID,
		Detections: detections,
		Languages:  o.Languages,
		Styles:     o.Styles,
	})
}

func (s *server) handleTransform(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req transformRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	actKind, err := action.Normalize(req.Action)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	d, hasSpan, status := s.resolveItem(req)
	if status != 0 {
		http.Error(w, "item not found", status)
		return
	}

	var out string
	switch req.Kind {
	case "translate":
		out, err = s.tr.Translate(r.Context(), d.Text, req.Target)
	case "enhance":
		out, err = s.en.Enhance(r.Context(), d.Text, req.Style)
	default:
		http.Error(w, "unknown transform kind", http.StatusBadRequest)
		return
	}
	if err != nil {
		s.log.Error().Err(err).Str("kind", req.Kind).Msg("transform failed")
		http.Error(w, "transform failed", http.StatusInternalServerError)
		return
	}

	resp := transformResponse{Output: out, Status: fmt.Sprintf("%s: %s", req.Kind, out)}
	if hasSpan || actKind == action.Copy || actKind == action.Scratch {
		res, err := action.Apply(actKind, req.File, d, out)
		if err != nil {
			s.log.Error().Err(err).Str("action", string(actKind)).Msg("action failed")
			http.Error(w, "transform failed", http.StatusInternalServerError)
			return
		}
		if res.ScratchPath != "" {
			resp.Status = "scratch: " + res.ScratchPath
		}
		resp.Rescan = res.Changed
	}
	writeJSON(w, resp)
}

// resolveItem finds the detection the request refers to. A request with
// only text (no file) transforms the text without a document span.
// The lang override must match the one used for the scan, otherwise the
// item index would point into a different detection list.
func (s *server) resolveItem(req transformRequest) (model.Detection, bool, int) {
	if req.File == "" {
		if req.Text == "" {
			return model.Detection{}, false, http.StatusBadRequest
		}
		return model.Detection{Text: req.Text}, false, 0
	}
	detections, _, err := loadAndDetect(req.File, req.Lang, s.base.AutoDetect, s.sc)
	if err != nil {
		return model.Detection{}, false, http.StatusBadRequest
	}
	if req.Item < 0 || req.Item >= len(detections) {
		return model.Detection{}, false, http.StatusNotFound
	}
	return detections[req.Item], true, 0
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	_ = json.NewEncoder(w).Encode(v)
}
