package card

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// Dracula color scheme.
var (
	Background  = lipgloss.Color("#282a36")
	CurrentLine = lipgloss.Color("#44475a")
	Foreground  = lipgloss.Color("#f8f8f2")
	Comment     = lipgloss.Color("#6272a4")
	Cyan        = lipgloss.Color("#8be9fd")
	Green       = lipgloss.Color("#50fa7b")
	Purple      = lipgloss.Color("#bd93f9")
	Red         = lipgloss.Color("#ff5555")
	Yellow      = lipgloss.Color("#f1fa8c")
)

var (
	boxStyle         = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(CurrentLine).Padding(0, 1)
	categoryStyle    = lipgloss.NewStyle().Foreground(Purple).Bold(true)
	matchStyle       = lipgloss.NewStyle().Foreground(Green)
	titleStyle       = lipgloss.NewStyle().Foreground(Foreground).Bold(true)
	descriptionStyle = lipgloss.NewStyle().Foreground(Comment)
	priceStyle       = lipgloss.NewStyle().Foreground(Yellow).Bold(true)

	// MessageStyle is used for the no results placeholder.
	MessageStyle = lipgloss.NewStyle().Foreground(Comment).Padding(1, 2)
	// ErrorStyle is used for connection errors.
	ErrorStyle = lipgloss.NewStyle().Foreground(Red).Padding(1, 2)
)

const minWidth = 20

// Render draws a card for a terminal of the given width.
func Render(c Card, width int) string {
	inner := max(width-boxStyle.GetHorizontalFrameSize(), minWidth)

	header := categoryStyle.Render(strings.ToUpper(c.Category))
	if c.HasMatch() {
		badge := matchStyle.Render("Match: " + c.Match)
		gap := max(inner-lipgloss.Width(header)-lipgloss.Width(badge), 1)
		header += strings.Repeat(" ", gap) + badge
	}

	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString("\n")
	sb.WriteString(titleStyle.Render(wordwrap.String(c.Title, inner)))
	sb.WriteString("\n")
	sb.WriteString(descriptionStyle.Render(wordwrap.String(c.Description, inner)))
	sb.WriteString("\n\n")
	sb.WriteString(priceStyle.Render(c.Price))

	return boxStyle.Width(inner + boxStyle.GetHorizontalPadding()).Render(sb.String())
}

// RenderList draws the cards one after another, in order.
func RenderList(cards []Card, width int) string {
	rendered := make([]string, len(cards))
	for i, c := range cards {
		rendered[i] = Render(c, width)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}
