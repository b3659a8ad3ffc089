package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Header displays the app name and the monitor status (1 line)
type Header struct {
	width      int
	version    string
	source     string
	scanning   bool
	monitorErr error
	stopped    bool
}

// NewHeader creates a new header component
func NewHeader(version, source string) Header {
	return Header{
		version: version,
		source:  source,
	}
}

// SetScanning sets the scanning state
func (h *Header) SetScanning(scanning bool) {
	h.scanning = scanning
}

// SetMonitorStopped records that the selection monitor is gone
func (h *Header) SetMonitorStopped(err error) {
	h.stopped = true
	h.monitorErr = err
}

// MonitorStopped reports whether the monitor has terminated
func (h Header) MonitorStopped() bool {
	return h.stopped
}

// SetWidth sets the header width
func (h *Header) SetWidth(w int) {
	h.width = w
}

// Update handles messages
func (h Header) Update(msg tea.Msg) (Header, tea.Cmd) {
	return h, nil
}

// View renders the header
// liveprops 0.1.0                        ● watching file
func (h Header) View() string {
	nameStyle := lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	versionStyle := lipgloss.NewStyle().
		Foreground(ColorDim)

	left := nameStyle.Render("liveprops")
	if h.version != "" {
		left += versionStyle.Render(" " + h.version)
	}

	var right string
	switch {
	case h.stopped:
		text := "monitor stopped"
		if h.monitorErr != nil {
			text += ": " + h.monitorErr.Error()
		}
		right = ErrorStyle.Render("● " + text)
	case h.scanning:
		right = lipgloss.NewStyle().Foreground(ColorPrimary).Render("● scanning")
	default:
		right = lipgloss.NewStyle().Foreground(ColorSuccess).Render("●") +
			versionStyle.Render(" watching "+h.source)
	}

	gap := h.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 2 {
		gap = 2
	}
	return HeaderStyle.Width(h.width).MaxHeight(1).Render(left + strings.Repeat(" ", gap) + right)
}
