package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/grindlemire/go-webobj/internal/manifest"
	"github.com/grindlemire/go-webobj/internal/render"
	"github.com/grindlemire/go-webobj/internal/telemetry"
	"github.com/grindlemire/go-webobj/internal/viewport"
)

// statusLines is the number of terminal rows the preview keeps for itself.
const statusLines = 1

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// previewModel is the Bubble Tea model of the preview subcommand. Window
// size messages feed a viewport signal the engine watches, so every
// terminal resize becomes a relayout.
type previewModel struct {
	doc    *manifest.Document
	inst   *manifest.Instance
	signal *viewport.Manual
	stop   func()

	titles bool
	passes int
	err    error
}

// Compile-time interface compliance check
var _ tea.Model = (*previewModel)(nil)

func newPreviewModel(doc *manifest.Document, inst *manifest.Instance, titles bool) *previewModel {
	sig := viewport.NewManual(doc.Viewport.Width, doc.Viewport.Height)
	return &previewModel{
		doc:    doc,
		inst:   inst,
		signal: sig,
		stop:   inst.Engine.Watch(sig),
		titles: titles,
	}
}

// runPreview implements the preview subcommand.
func runPreview(tp *telemetry.Provider, args []string) error {
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	titles := fs.Bool("titles", true, "write node names into borders")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("preview takes exactly one manifest")
	}

	doc, err := manifest.Load(fs.Arg(0))
	if err != nil {
		return err
	}
	opts := doc.Options()
	opts.Tracer = tp.Tracer()
	inst, err := doc.Instantiate(opts)
	if err != nil {
		return err
	}

	m := newPreviewModel(doc, inst, *titles)
	defer m.stop()

	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	if pm, ok := final.(*previewModel); ok && pm.err != nil {
		return pm.err
	}
	return nil
}

// Init implements tea.Model
func (m *previewModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "t":
			m.titles = !m.titles
		case "r":
			if err := m.inst.Engine.NotifySizeChanged(m.inst.Root, true); err != nil {
				m.err = err
				return m, tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		m.signal.Set(msg.Width, max(msg.Height-statusLines, 0))
	}

	if err := m.relayout(); err != nil {
		m.err = err
		return m, tea.Quit
	}
	return m, nil
}

// relayout runs a pass when the engine has one pending.
func (m *previewModel) relayout() error {
	if !m.inst.Engine.Pending() {
		return nil
	}
	if err := m.inst.Engine.Flush(context.Background()); err != nil {
		return err
	}
	m.passes++
	return nil
}

// View implements tea.Model
func (m *previewModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n", m.err))
	}

	w, h := m.signal.Size()
	canvas := render.Draw(m.inst.Tree, m.inst.Root, render.Options{Titles: m.titles})
	rows := strings.Split(canvas.StringTrimmed(), "\n")
	if len(rows) > h {
		rows = rows[:h]
	}
	for i, r := range rows {
		rows[i] = runewidth.Truncate(r, w, "")
	}
	for len(rows) < h {
		rows = append(rows, "")
	}

	status := fmt.Sprintf("%s  %dx%d  passes %d  [t] titles  [r] remeasure  [q] quit",
		m.doc.Name, w, h, m.passes)
	return strings.Join(rows, "\n") + "\n" + statusStyle.Render(status)
}
