package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lumipallolabs/liveprops/internal/core"
	"github.com/lumipallolabs/liveprops/internal/fileinfo"
	"github.com/lumipallolabs/liveprops/internal/model"
)

const (
	keyColumnWidth = 16 // Width of the key column in cards
	maxCardWidth   = 80
)

// renderPanel renders the hero line and the cards for the current selection
func (a App) renderPanel() string {
	width := a.width - 2
	if width > maxCardWidth {
		width = maxCardWidth
	}

	sections := []string{a.renderHero(width)}
	sections = append(sections, renderCard("Details", a.detailRows(), width))
	sections = append(sections, renderCard("Properties", a.propertyRows(), width))
	if a.kind == model.KindFile && a.detailsErr == nil {
		sections = append(sections, renderCard("Attributes", a.attributeRows(), width))
	}

	return lipgloss.NewStyle().Padding(0, 1).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// renderHero shows the selection kind with an icon
func (a App) renderHero(width int) string {
	var icon, text string
	switch a.kind {
	case model.KindMulti:
		icon, text = "🗂️", fmt.Sprintf("%d items selected", len(a.sel.Paths))
	case model.KindFolder:
		icon, text = "📁", "Folder"
	default:
		icon, text = "📄", "File"
	}
	hero := HeroIconStyle.Render(icon) + "  " + HeroTextStyle.Render(text)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, hero) + "\n"
}

func (a App) detailRows() []string {
	if len(a.sel.Paths) == 1 {
		return []string{
			row("Name:", ValueStyle.Render(a.sel.Name())),
			row("Path:", PathStyle.Render(a.sel.Location())),
		}
	}
	location := a.sel.Location()
	if location == "" {
		location = "-"
	}
	return []string{row("Location:", PathStyle.Render(location))}
}

func (a App) propertyRows() []string {
	if a.kind == model.KindFile {
		if a.detailsErr != nil {
			return []string{row("Error:", ErrorStyle.Render(a.detailsErr.Error()))}
		}
		d := a.details
		fileType := d.Type
		if fileType == "" {
			fileType = "-"
		}
		return []string{
			row("Size:", ValueStyle.Render(FormatSize(d.Size))),
			row("Modified:", ValueStyle.Render(fileinfo.FormatTime(d.Modified))),
			row("Created:", ValueStyle.Render(fileinfo.FormatTime(d.Created))),
			row("Type:", ValueStyle.Render(fileType)),
		}
	}

	rows := make([]string, 0, len(slotNames)+1)
	for _, slot := range core.AllSlots {
		rows = append(rows, row(slotNames[slot], a.counterValue(slot)))
	}
	if a.scanErr != nil {
		rows = append(rows, row("Error:", ErrorStyle.Render(a.scanErr.Error())))
	}
	return rows
}

func (a App) attributeRows() []string {
	readOnly := "No"
	if a.details.ReadOnly {
		readOnly = "Yes"
	}
	return []string{row("Read-only:", ValueStyle.Render(readOnly))}
}

// counterValue renders one aggregated counter, or its placeholder
func (a App) counterValue(slot core.CounterSlot) string {
	if a.placeholders[slot] {
		style := ValueStyle
		if a.pending && a.phase == core.PhaseB {
			style = PulseStyle
		}
		return style.Render(calculatingText)
	}
	if !a.hasTotals {
		return EmptyStyle.Render("-")
	}

	switch slot {
	case core.SlotSize:
		return ValueStyle.Render(FormatSize(a.totals.Size))
	case core.SlotFiles:
		return ValueStyle.Render(FormatCount(a.totals.Files))
	case core.SlotFolders:
		return ValueStyle.Render(FormatCount(a.totals.Folders))
	}
	return ""
}

// renderCard draws a titled, bordered card
func renderCard(title string, rows []string, width int) string {
	var content strings.Builder
	content.WriteString(CardTitleStyle.Render(title))
	for _, r := range rows {
		content.WriteString("\n")
		content.WriteString(r)
	}
	// Border takes two columns
	return CardStyle.Width(width - 2).Render(content.String())
}

func row(key, value string) string {
	return KeyStyle.Width(keyColumnWidth).Render(key) + value
}
