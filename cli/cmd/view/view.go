package view

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/scad/lang"
	"github.com/ardnew/scad/log"
	"github.com/ardnew/scad/model"
)

// reloadMsg carries the result of re-rendering the model.
type reloadMsg struct {
	source string
	err    error
}

// editDeclinedMsg is sent when the user declined to re-edit a model that
// no longer renders.
type editDeclinedMsg struct{}

// editErrorMsg is sent when the editor could not be run.
type editErrorMsg struct{ err error }

const (
	filterPrompt = "/"

	defaultWidth  = 80
	defaultHeight = 24

	// chromeHeight is the number of lines below the viewport: the filter
	// line and the status bar.
	chromeHeight = 2
)

// Run starts the previewer for the model file at path.
func Run(
	ctx context.Context,
	path string,
	cacheDir string,
	logger log.Logger,
) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	logger.TraceContext(
		ctx,
		"view start",
		slog.String("path", path),
		slog.String("cache_dir", cacheDir),
	)

	source, err := load(ctx, path, logger)
	if err != nil {
		return err
	}

	history := NewHistory(filepath.Join(cacheDir, baseHistory))
	if err := history.Load(); err != nil {
		logger.WarnContext(ctx, "could not load history", slog.Any("error", err))
	}

	logger.TraceContext(
		ctx,
		"view history loaded",
		slog.Int("entry_count", history.Len()),
	)

	m := newModel(ctx, path, source, history, logger)

	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	_, err = p.Run()

	return err
}

// load reads, builds, and renders the model at path, bypassing the model
// cache so that edits on disk are always seen.
func load(ctx context.Context, path string, logger log.Logger) (string, error) {
	m, err := model.ReadFile(
		ctx,
		path,
		model.WithLogger(logger),
		model.WithCache(false),
	)
	if err != nil {
		return "", err
	}

	doc, err := m.Build(ctx, lang.WithLogger(logger))
	if err != nil {
		return "", err
	}

	return doc.Render(ctx)
}

// viewer is the Bubble Tea model for the previewer.
type viewer struct {
	ctxFunc    func() context.Context
	path       string
	lines      []string
	logger     log.Logger
	pane       viewport.Model
	input      textinput.Model
	history    *History
	historyIdx int
	matches    fuzzy.Matches
	status     string
	width      int
	height     int
	quitting   bool
}

func newModel(
	ctx context.Context,
	path string,
	source string,
	history *History,
	logger log.Logger,
) viewer {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(filterPrompt)
	ti.Placeholder = "fuzzy filter"
	ti.CharLimit = 256
	ti.Width = defaultWidth - len(filterPrompt) - 1

	m := viewer{
		ctxFunc:    func() context.Context { return ctx },
		path:       path,
		logger:     logger,
		pane:       viewport.New(defaultWidth, defaultHeight-chromeHeight),
		input:      ti,
		history:    history,
		historyIdx: history.Len(),
		width:      defaultWidth,
		height:     defaultHeight,
	}

	m.setSource(source)

	return m
}

// setSource replaces the displayed source and reapplies the filter.
func (m *viewer) setSource(source string) {
	m.lines = strings.Split(source, "\n")
	m.refilter()
}

// refilter recomputes matches for the current query and refreshes the pane.
func (m *viewer) refilter() {
	m.matches = filterLines(m.lines, m.input.Value())
	m.pane.SetContent(renderLines(m.matches, len(m.lines)))
	m.pane.GotoTop()
}

func (m viewer) Init() tea.Cmd {
	return nil
}

func (m viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.input.Focused() {
			return m.handleFilterKey(msg)
		}

		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.pane.Width = msg.Width
		m.pane.Height = max(1, msg.Height-chromeHeight)
		m.input.Width = max(1, msg.Width-len(filterPrompt)-1)

		return m, nil

	case reloadMsg:
		if msg.err != nil {
			m.status = errorStyle.Render("✗ " + msg.err.Error())

			return m, nil
		}

		m.setSource(msg.source)
		m.status = resultStyle.Render("✔ rendered")

		m.logger.TraceContext(
			m.ctxFunc(),
			"view reload complete",
			slog.Int("line_count", len(m.lines)),
		)

		return m, nil

	case editDeclinedMsg:
		m.status = hintStyle.Render("✗ edit abandoned; showing previous render")

		return m, nil

	case editErrorMsg:
		m.status = errorStyle.Render("✗ editor: " + msg.err.Error())

		return m, nil
	}

	var cmd tea.Cmd

	m.pane, cmd = m.pane.Update(msg)

	return m, cmd
}

func (m viewer) handleKey(msg tea.KeyMsg) (viewer, tea.Cmd) {
	m.logger.TraceContext(
		m.ctxFunc(),
		"view keypress",
		slog.String("key", msg.String()),
	)

	switch msg.String() {
	case "q", "ctrl+c", "ctrl+d":
		m.quitting = true

		return m, tea.Quit

	case "/":
		m.historyIdx = m.history.Len()
		m.status = ""

		return m, m.input.Focus()

	case "esc":
		m.input.SetValue("")
		m.refilter()

		return m, nil

	case "r":
		return m, m.reload()

	case "e":
		return m.edit()
	}

	var cmd tea.Cmd

	m.pane, cmd = m.pane.Update(msg)

	return m, cmd
}

func (m viewer) handleFilterKey(msg tea.KeyMsg) (viewer, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true

		return m, tea.Quit

	case tea.KeyEsc:
		m.input.SetValue("")
		m.input.Blur()
		m.refilter()

		return m, nil

	case tea.KeyEnter:
		if err := m.history.Add(m.input.Value()); err != nil {
			m.status = errorStyle.Render("✗ history: " + err.Error())
		}

		m.input.Blur()

		return m, nil

	case tea.KeyUp:
		return m.historyMove(-1), nil

	case tea.KeyDown:
		return m.historyMove(+1), nil
	}

	var cmd tea.Cmd

	m.historyIdx = m.history.Len()
	m.input, cmd = m.input.Update(msg)
	m.refilter()

	return m, cmd
}

// historyMove steps through the query history. Moving past the newest entry
// clears the filter.
func (m viewer) historyMove(step int) viewer {
	idx := m.historyIdx + step
	if idx < 0 || idx > m.history.Len() {
		return m
	}

	m.historyIdx = idx

	query, err := m.history.At(idx)
	if err != nil {
		query = ""
	}

	m.input.SetValue(query)
	m.input.CursorEnd()
	m.refilter()

	return m
}

func (m viewer) reload() tea.Cmd {
	ctx, path, logger := m.ctxFunc(), m.path, m.logger

	return func() tea.Msg {
		source, err := load(ctx, path, logger)

		return reloadMsg{source: source, err: err}
	}
}

func (m viewer) edit() (viewer, tea.Cmd) {
	cmd := &editModelCommand{
		path:    m.path,
		ctxFunc: m.ctxFunc,
		logger:  m.logger,
	}

	return m, tea.Exec(cmd, func(err error) tea.Msg {
		if errors.Is(err, ErrEditDeclined) {
			return editDeclinedMsg{}
		}

		if err != nil {
			return editErrorMsg{err: err}
		}

		return reloadMsg{source: cmd.source}
	})
}

func (m viewer) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.pane.View())
	b.WriteString("\n")

	switch {
	case m.input.Focused() || m.input.Value() != "":
		b.WriteString(m.input.View())

	case m.status != "":
		b.WriteString(m.status)

	default:
		b.WriteString(hintStyle.Render(
			"/ filter · e edit · r reload · ↑↓ scroll · q quit",
		))
	}

	b.WriteString("\n")
	b.WriteString(m.statusBar())

	return b.String()
}

// statusBar describes the file, the match count, and the signature of the
// builtin named by the filter, if any.
func (m viewer) statusBar() string {
	info := fmt.Sprintf(" %s  %d/%d lines  %3.f%% ",
		filepath.Base(m.path),
		len(m.matches),
		len(m.lines),
		m.pane.ScrollPercent()*100,
	)

	bar := statusStyle.Render(info)

	query := strings.TrimSpace(m.input.Value())
	if b, ok := lang.LookupBuiltin(query); ok {
		bar += " " + signatureStyle.Render(b.Signature()) +
			" " + hintStyle.Render(b.Summary)
	}

	if w := lipgloss.Width(bar); w > m.width && m.width > 0 {
		bar = lipgloss.NewStyle().MaxWidth(m.width).Render(bar)
	}

	return bar
}
