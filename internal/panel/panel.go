// Package panel は検出結果を一覧表示する端末サイドパネルです。
// 行の選択、位置へのジャンプ表示、モック翻訳/強調の実行と
// 出力アクションの切り替えをキー操作で行います。
package panel

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/karinto/litscan/internal/action"
	"github.com/karinto/litscan/internal/model"
	"github.com/karinto/litscan/internal/opts"
	"github.com/karinto/litscan/internal/scanner"
	"github.com/karinto/litscan/internal/textutil"
	"github.com/karinto/litscan/internal/transform"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	locationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

var quoteBadgeStyles = map[model.QuoteKind]lipgloss.Style{
	model.QuoteDouble:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	model.QuoteSingle:       lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	model.QuoteTemplate:     lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	model.QuoteTripleDouble: lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
	model.QuoteTripleSingle: lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
	model.QuoteVerbatim:     lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
}

// Model is the Bubble Tea model behind `litscan panel`.
type Model struct {
	path       string
	languageID string
	options    opts.Options

	scanner    *scanner.Scanner
	translator *transform.Translator
	enhancer   *transform.Enhancer
	log        zerolog.Logger

	detections []model.Detection
	cursor     int
	langIndex  int
	styleIndex int
	actIndex   int
	actions    []action.Kind

	spinner spinner.Model
	busy    bool
	status  string
	lastErr string
	width   int
	done    bool
}

type transformDoneMsg struct {
	status     string
	err        error
	detections []model.Detection
}

// New builds the panel model for a document file.
func New(path, languageID string, options opts.Options, sc *scanner.Scanner, log zerolog.Logger) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	m := &Model{
		path:       path,
		languageID: languageID,
		options:    options,
		scanner:    sc,
		translator: transform.NewTranslator(),
		enhancer:   transform.NewEnhancer(),
		log:        log,
		spinner:    sp,
		actions:    action.Kinds(),
		width:      80,
	}
	for i, k := range m.actions {
		if string(k) == options.Action {
			m.actIndex = i
		}
	}
	m.detections = sc.Detect(string(data), languageID)
	return m, nil
}

func (m *Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		return m, nil
	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case transformDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.log.Error().Err(msg.err).Msg("transform failed")
			m.lastErr = "transform failed, see log"
			return m, nil
		}
		m.lastErr = ""
		m.status = msg.status
		if msg.detections != nil {
			m.detections = msg.detections
			if m.cursor >= len(m.detections) {
				m.cursor = len(m.detections) - 1
			}
			if m.cursor < 0 {
				m.cursor = 0
			}
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.busy {
		// 変換中はキャンセル系のみ受け付ける。
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.done = true
			return m, tea.Quit
		}
		return m, nil
	}
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.done = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.detections)-1 {
			m.cursor++
		}
	case "enter":
		if d, ok := m.selected(); ok {
			line, col := d.Location()
			m.status = fmt.Sprintf("at %d:%d (chars %d-%d)", line, col, d.StartChar, d.EndChar)
		}
	case "l":
		if len(m.options.Languages) > 0 {
			m.langIndex = (m.langIndex + 1) % len(m.options.Languages)
			m.status = "target language: " + m.targetLanguage()
		}
	case "s":
		if len(m.options.Styles) > 0 {
			m.styleIndex = (m.styleIndex + 1) % len(m.options.Styles)
			m.status = "style: " + m.style()
		}
	case "a":
		if m.options.InlineActions {
			m.actIndex = (m.actIndex + 1) % len(m.actions)
			m.status = "action: " + string(m.currentAction())
		}
	case "t":
		if d, ok := m.selected(); ok {
			m.busy = true
			m.status = "translating to " + m.targetLanguage()
			return m, tea.Batch(m.spinner.Tick, m.translateCmd(d))
		}
	case "e":
		if d, ok := m.selected(); ok {
			m.busy = true
			m.status = "enhancing (" + m.style() + ")"
			return m, tea.Batch(m.spinner.Tick, m.enhanceCmd(d))
		}
	}
	return m, nil
}

func (m *Model) selected() (model.Detection, bool) {
	if m.cursor < 0 || m.cursor >= len(m.detections) {
		return model.Detection{}, false
	}
	return m.detections[m.cursor], true
}

func (m *Model) targetLanguage() string {
	if len(m.options.Languages) == 0 {
		return "Spanish"
	}
	return m.options.Languages[m.langIndex]
}

func (m *Model) style() string {
	if len(m.options.Styles) == 0 {
		return "formal"
	}
	return m.options.Styles[m.styleIndex]
}

func (m *Model) currentAction() action.Kind {
	return m.actions[m.actIndex]
}

func (m *Model) translateCmd(d model.Detection) tea.Cmd {
	target := m.targetLanguage()
	return func() tea.Msg {
		out, err := m.translator.Translate(context.Background(), d.Text, target)
		if err != nil {
			return transformDoneMsg{err: err}
		}
		return m.applyAndRescan(d, out)
	}
}

func (m *Model) enhanceCmd(d model.Detection) tea.Cmd {
	style := m.style()
	return func() tea.Msg {
		out, err := m.enhancer.Enhance(context.Background(), d.Text, style)
		if err != nil {
			return transformDoneMsg{err: err}
		}
		return m.applyAndRescan(d, out)
	}
}

// applyAndRescan runs the current output action and, when the document
// changed on disk, re-detects so the list reflects the new content.
func (m *Model) applyAndRescan(d model.Detection, out string) transformDoneMsg {
	kind := m.currentAction()
	res, err := action.Apply(kind, m.path, d, out)
	if err != nil {
		return transformDoneMsg{err: err}
	}
	msg := transformDoneMsg{status: fmt.Sprintf("%s: %s", kind, textutil.TruncateByWidth(out, 60, "…"))}
	if res.ScratchPath != "" {
		msg.status = "scratch: " + res.ScratchPath
	}
	if res.Changed {
		data, readErr := os.ReadFile(m.path)
		if readErr != nil {
			return transformDoneMsg{err: readErr}
		}
		msg.detections = m.scanner.Detect(string(data), m.languageID)
	}
	return msg
}

func (m *Model) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder

	header := fmt.Sprintf("%s [%s] %d strings", m.path, m.languageID, len(m.detections))
	if m.busy {
		header = m.spinner.View() + " " + header
	}
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	if len(m.detections) == 0 {
		b.WriteString(helpStyle.Render("  no string literals detected"))
		b.WriteString("\n")
	}

	textWidth := m.width - 28
	if textWidth < 20 {
		textWidth = 20
	}
	for i, d := range m.detections {
		marker := "  "
		if i == m.cursor {
			marker = cursorStyle.Render("> ")
		}
		line, col := d.Location()
		loc := locationStyle.Render(fmt.Sprintf("%5d:%-4d", line, col))
		badge := quoteBadgeStyles[d.QuoteKind].Render(fmt.Sprintf("%-13s", d.QuoteKind))
		text := textutil.TruncateByWidth(textutil.Sanitize(d.Text), textWidth, "…")
		b.WriteString(fmt.Sprintf("%s%s %s %s\n", marker, loc, badge, text))
	}

	b.WriteString("\n")
	if m.lastErr != "" {
		b.WriteString(errorStyle.Render(m.lastErr))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	help := "↑/↓ move · enter locate · q quit"
	if m.options.InlineActions {
		help = fmt.Sprintf("↑/↓ move · enter locate · t translate(%s) · e enhance(%s) · l/s cycle · a action(%s) · q quit",
			m.targetLanguage(), m.style(), m.currentAction())
	}
	b.WriteString(helpStyle.Render(help))
	b.WriteString("\n")
	return b.String()
}

// Run starts the interactive panel and blocks until the user quits.
func Run(path, languageID string, options opts.Options, sc *scanner.Scanner, log zerolog.Logger) error {
	m, err := New(path, languageID, options, sc, log)
	if err != nil {
		return err
	}
	program := tea.NewProgram(m, tea.WithOutput(os.Stdout))
	_, err = program.Run()
	return err
}
