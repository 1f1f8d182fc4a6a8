// Package scanner は文書テキストから文字列リテラルを検出する
// 行単位・正規表現ベースのエンジンを提供します。字句解析器では
// ないため検出はヒューリスティックであり、複数行にまたがる
// リテラルは対象外です（既知の制限）。
package scanner

import (
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/karinto/litscan/internal/model"
)

// Scanner は 1 つの走査コンテキストを表します。直近の走査結果を
// 自身のフィールドとして保持し、走査のたびに丸ごと差し替えます
// （マージはしない）。複数ゴルーチンから共有しても安全です。
type Scanner struct {
	mu   sync.Mutex
	last []model.Detection
	log  zerolog.Logger
}

// New は走査コンテキストを作成します。
func New(log zerolog.Logger) *Scanner {
	return &Scanner{log: log}
}

// Detect は文書全文を走査し、検出結果を行昇順・行内は開始桁昇順
// （同位置はパターン適用順）で返します。走査中の予期しない失敗は
// ログに記録し、空の結果を返します。呼び出し元へは決して伝播
// させません。
func (s *Scanner) Detect(documentText, languageID string) []model.Detection {
	detections := s.scan(documentText, languageID)
	s.mu.Lock()
	s.last = detections
	s.mu.Unlock()
	return detections
}

// Last は直近の走査結果のコピーを返します。
func (s *Scanner) Last() []model.Detection {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.last) == 0 {
		return nil
	}
	out := make([]model.Detection, len(s.last))
	copy(out, s.last)
	return out
}

func (s *Scanner) scan(documentText, languageID string) (out []model.Detection) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error().Interface("panic", r).Str("language_id", languageID).
				Msg("detection scan failed")
			out = nil
		}
	}()

	patterns := patternsForLanguage(languageID)
	lines := strings.Split(documentText, "\n")
	for lineIdx, line := range lines {
		var hits []model.Detection
		for _, p := range patterns {
			for _, m := range p.re.FindAllStringSubmatchIndex(line, -1) {
				content := firstGroup(line, m)
				if utf8.RuneCountInString(strings.TrimSpace(content)) < 2 {
					continue
				}
				if looksLikeCode(content) {
					continue
				}
				hits = append(hits, model.Detection{
					Text:       content,
					Line:       lineIdx,
					StartChar:  m[0],
					EndChar:    m[1],
					QuoteKind:  p.kind,
					LanguageID: languageID,
				})
			}
		}
		// stable: ties keep pattern-application order
		sort.SliceStable(hits, func(i, j int) bool {
			return hits[i].StartChar < hits[j].StartChar
		})
		out = append(out, hits...)
	}
	return out
}

// firstGroup extracts the first non-empty capture group of a submatch
// index slice.
func firstGroup(line string, m []int) string {
	for g := 1; g*2 < len(m); g++ {
		start, end := m[g*2], m[g*2+1]
		if start < 0 {
			continue
		}
		if start == end {
			continue
		}
		return line[start:end]
	}
	return ""
}
