package ui

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/lumipallolabs/liveprops/internal/core"
	"github.com/lumipallolabs/liveprops/internal/fileinfo"
	"github.com/lumipallolabs/liveprops/internal/logging"
	"github.com/lumipallolabs/liveprops/internal/model"
)

const (
	initialText     = "Select an item…"
	calculatingText = "Calculating…"
)

// Supervisor runs the aggregation for selections that need one
type Supervisor interface {
	Start(sel model.Selection) (core.JobID, bool)
	Stop()
}

// openResultMsg reports the outcome of an open request
type openResultMsg struct {
	err error
}

// App is the main TUI application model
type App struct {
	sup Supervisor

	// UI Components
	header  Header
	help    HelpOverlay
	helpBar help.Model
	keys    KeyMap
	version string

	// Current selection
	sel  model.Selection
	kind model.Kind
	seen bool

	// Single file
	details    fileinfo.Details
	detailsErr error

	// Aggregation; events for any other job are ignored
	job          core.JobID
	pending      bool
	phase        core.PulsePhase
	placeholders [len(slotNames)]bool
	totals       model.Totals
	hasTotals    bool
	scanErr      error

	err error

	// Dimensions
	width  int
	height int
}

// slotNames labels each counter in the properties card
var slotNames = [...]string{
	core.SlotSize:    "Total size:",
	core.SlotFiles:   "Total files:",
	core.SlotFolders: "Total folders:",
}

// NewApp creates a new application instance
func NewApp(sup Supervisor, version, source string) App {
	return App{
		sup:     sup,
		header:  NewHeader(version, source),
		help:    NewHelpOverlay(version, source),
		helpBar: help.New(),
		keys:    DefaultKeyMap(),
		version: version,
	}
}

// Init implements tea.Model
func (a App) Init() tea.Cmd {
	return tea.SetWindowTitle("liveprops")
}

// Update implements tea.Model
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.header.SetWidth(msg.Width)
		a.help.SetSize(msg.Width, msg.Height)
		a.helpBar.Width = msg.Width
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case eventMsg:
		a.handleEvent(msg.event)
		return a, nil

	case openResultMsg:
		a.err = msg.err
		return a, nil
	}

	return a, nil
}

// handleEvent dispatches one core event
func (a *App) handleEvent(event core.Event) {
	switch e := event.(type) {
	case core.SelectionChangedEvent:
		a.onSelectionChanged(e.Selection)
	case core.ScanPendingEvent:
		a.onScanPending(e.Job, e.Slots)
	case core.ScanTickEvent:
		a.onScanTick(e.Job, e.Slots, e.Phase)
	case core.ScanResultEvent:
		a.onScanResult(e.Job, e.Totals)
	case core.ScanFailedEvent:
		a.onScanFailed(e.Job, e.Err)
	case core.MonitorStoppedEvent:
		logging.Debug.Printf("[UI] monitor stopped: %v", e.Err)
		a.header.SetMonitorStopped(e.Err)
	}
}

// onSelectionChanged rebuilds the panel for sel. Whatever was running for
// the previous selection is cancelled.
func (a *App) onSelectionChanged(sel model.Selection) {
	a.sel = sel
	a.seen = true
	a.kind = model.Classify(sel)
	a.err = nil

	a.details, a.detailsErr = fileinfo.Details{}, nil
	a.job = uuid.Nil
	a.pending = false
	a.phase = core.PhaseA
	a.placeholders = [len(slotNames)]bool{}
	a.totals, a.hasTotals = model.Totals{}, false
	a.scanErr = nil

	switch a.kind {
	case model.KindNone:
		a.sup.Stop()
	case model.KindFile:
		a.sup.Stop()
		a.details, a.detailsErr = fileinfo.Lookup(sel.Paths[0])
	default:
		if id, ok := a.sup.Start(sel); ok {
			a.job = id
			a.pending = true
			a.setPlaceholders(core.AllSlots)
		}
	}

	a.header.SetScanning(a.pending)
	logging.Debug.Printf("[UI] selection %s with %d path(s), job %s", a.kind, len(sel.Paths), a.job)
}

// onScanPending shows placeholders in slots for job
func (a *App) onScanPending(job core.JobID, slots []core.CounterSlot) {
	if job != a.job {
		return
	}
	a.pending = true
	a.phase = core.PhaseA
	a.setPlaceholders(slots)
	a.header.SetScanning(true)
}

// onScanTick switches the placeholder style to phase
func (a *App) onScanTick(job core.JobID, slots []core.CounterSlot, phase core.PulsePhase) {
	if job != a.job || !a.pending {
		return
	}
	a.setPlaceholders(slots)
	a.phase = phase
}

// onScanResult replaces the placeholders with the totals of job
func (a *App) onScanResult(job core.JobID, totals model.Totals) {
	if job != a.job {
		return
	}
	a.totals = totals
	a.hasTotals = true
	a.pending = false
	a.placeholders = [len(slotNames)]bool{}
	a.header.SetScanning(false)
}

// onScanFailed stops the pulse; the placeholders stay
func (a *App) onScanFailed(job core.JobID, err error) {
	if job != a.job {
		return
	}
	a.pending = false
	a.phase = core.PhaseA
	a.scanErr = err
	a.header.SetScanning(false)
}

func (a *App) setPlaceholders(slots []core.CounterSlot) {
	for _, s := range slots {
		if int(s) >= 0 && int(s) < len(a.placeholders) {
			a.placeholders[s] = true
		}
	}
}

// handleKey handles keyboard input
func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Help overlay - any key closes it
	if a.help.IsVisible() {
		a.help.SetVisible(false)
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		a.sup.Stop()
		return a, tea.Quit

	case key.Matches(msg, a.keys.Help):
		a.help.Toggle()
		return a, nil

	case key.Matches(msg, a.keys.Rescan):
		if a.seen {
			a.onSelectionChanged(a.sel)
		}
		return a, nil

	case key.Matches(msg, a.keys.Open):
		target := a.revealTarget()
		if target == "" {
			return a, nil
		}
		return a, func() tea.Msg {
			return openResultMsg{err: openInFileManager(target)}
		}
	}

	return a, nil
}

// revealTarget is the path the file manager should show
func (a App) revealTarget() string {
	switch len(a.sel.Paths) {
	case 0:
		return ""
	case 1:
		return a.sel.Paths[0]
	}
	if a.sel.Label != "" {
		return a.sel.Label
	}
	return filepath.Dir(a.sel.Paths[0])
}

// View implements tea.Model
func (a App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	if a.help.IsVisible() {
		return a.help.View()
	}

	header := a.header.View()
	bar := HelpStyle.Width(a.width).MaxHeight(1).Render(a.helpBar.View(a.keys))

	var footer []string
	if a.err != nil {
		footer = append(footer, ErrorStyle.Padding(0, 1).Render(fmt.Sprintf("Error: %v", a.err)))
	}
	footer = append(footer, bar)
	footerView := lipgloss.JoinVertical(lipgloss.Left, footer...)

	bodyHeight := a.height - lipgloss.Height(header) - lipgloss.Height(footerView)
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	var body string
	if !a.seen || a.kind == model.KindNone {
		body = lipgloss.Place(a.width, bodyHeight, lipgloss.Center, lipgloss.Center, EmptyStyle.Render(initialText))
	} else {
		body = lipgloss.Place(a.width, bodyHeight, lipgloss.Left, lipgloss.Top, a.renderPanel())
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footerView)
}
