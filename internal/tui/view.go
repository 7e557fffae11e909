package tui

import (
	"fmt"
	"strings"

	"github.com/akasprzok/graphdrawer/internal/axes"
	"github.com/akasprzok/graphdrawer/internal/charts"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	var s strings.Builder

	// Status bar
	s.WriteString(m.renderStatusBar())
	s.WriteString("\n")

	// Shared inputs
	s.WriteString(m.renderInput("File", m.fileInput.View(), FocusFile))
	s.WriteString("\n")
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderInput("Title", m.titleInput.View(), FocusTitle),
		m.renderInput("X axis", m.xLabelInput.View(), FocusXLabel),
	))
	s.WriteString("\n")

	// Axis dependent panes
	s.WriteString(m.renderAxisPanes())
	s.WriteString("\n")

	// Results area
	s.WriteString(m.renderResults())
	s.WriteString("\n")

	// Help bar
	s.WriteString(m.renderHelpBar())

	return s.String()
}

func (m Model) renderStatusBar() string {
	modeStyle := lipgloss.NewStyle().Bold(true)
	singleStyle := modeStyle
	dualStyle := modeStyle

	activeStyle := modeStyle.Background(lipgloss.Color("63")).Foreground(lipgloss.Color("231"))

	switch m.mode {
	case axes.SingleAxis:
		singleStyle = activeStyle
	case axes.DualAxis:
		dualStyle = activeStyle
	}

	modeText := fmt.Sprintf("  Graph Drawer   Mode: %s | %s",
		singleStyle.Render(" "+axes.SingleAxis.Label()+" "),
		dualStyle.Render(" "+axes.DualAxis.Label()+" "))

	statusText := ""
	if m.status != "" {
		statusText = "   " + m.status
	}

	statusStyle := lipgloss.NewStyle().
		Background(lipgloss.Color("236")).
		Foreground(lipgloss.Color("252")).
		Width(m.width).
		Padding(0, 1)

	return statusStyle.Render(modeText + statusText)
}

func (m Model) renderInput(label, view string, f Focus) string {
	title := lipgloss.NewStyle().Bold(true).Render(label + ": ")
	return boxStyle(m.focus == f).Render(title + view)
}

// renderAxisPanes lays out the panes the current mode requires, one column
// per axis.
func (m Model) renderAxisPanes() string {
	var left, right []string
	for _, pane := range axes.Panes(m.mode) {
		switch pane {
		case axes.PaneLeftColumns:
			left = append(left, boxStyle(m.focus == FocusLeftColumns).Render(m.leftColumns.View()))
		case axes.PaneLeftLabel:
			left = append(left, m.renderInput("Left label", m.leftLabelInput.View(), FocusLeftLabel))
		case axes.PaneRightColumns:
			right = append(right, boxStyle(m.focus == FocusRightColumns).Render(m.rightColumns.View()))
		case axes.PaneRightLabel:
			right = append(right, m.renderInput("Right label", m.rightLabelInput.View(), FocusRightLabel))
		}
	}
	if len(right) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, left...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, left...),
		lipgloss.JoinVertical(lipgloss.Left, right...),
	)
}

func (m Model) renderResults() string {
	switch m.state {
	case StateNoFile:
		return m.renderEmptyState()
	case StateLoading:
		return m.renderLoadingState()
	case StateError:
		return m.renderErrorState()
	case StatePlotted:
		return m.renderChartState()
	default:
		return MutedStyle.Padding(1, 4).Render("Select columns and press Enter or ctrl+p to plot")
	}
}

func (Model) renderEmptyState() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(2, 4)
	return emptyStyle.Render("Enter a CSV file path and press Enter to load it")
}

func (m Model) renderLoadingState() string {
	loadingStyle := lipgloss.NewStyle().Padding(2, 4)
	return loadingStyle.Render(fmt.Sprintf("%s Loading %s", m.spinner.View(), m.fileInput.Value()))
}

func (m Model) renderErrorState() string {
	errorStyle := lipgloss.NewStyle().Padding(1, 2)
	if m.err == nil {
		return errorStyle.Render(ErrorStyle.Render("Error"))
	}
	return errorStyle.Render(ErrorStyle.Render("Error: ") + m.err.Error())
}

func (m Model) renderChartState() string {
	chartStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(blurredBorder)
	legend := charts.RenderLegend(m.legend)
	if m.selectedSeries >= 0 && m.selectedSeries < len(m.legend) {
		legend += "\n" + WarningStyle.Render("showing "+m.legend[m.selectedSeries].Name)
	}
	return lipgloss.JoinVertical(lipgloss.Left, chartStyle.Render(m.chartContent), legend)
}

func (m Model) renderHelpBar() string {
	var help string
	switch {
	case m.state == StateLoading:
		help = "ctrl+c: quit"
	case m.focus.isColumnList():
		help = "↑/↓: move  space: select  tab: next  ctrl+x: axis mode  enter: plot  ctrl+b: bars  [/]: series  q: quit"
	case m.focus == FocusFile:
		help = "enter: load file  tab: next  ctrl+x: axis mode  ctrl+s: save  ctrl+c: quit"
	default:
		help = "tab: next  ctrl+x: axis mode  enter: plot  ctrl+b: bars  esc: clear  ctrl+c: quit"
	}
	return MutedStyle.Render(help)
}
