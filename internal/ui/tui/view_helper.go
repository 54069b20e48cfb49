package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/starapp/internal/domain"
)

func renderReading(t Theme, r domain.Reading) string {
	e := r.Entry

	var b strings.Builder
	b.WriteString(e.Symbol)
	b.WriteString("\n\n")
	b.WriteString(t.SignName.Render(e.Name))
	b.WriteString("\n")
	b.WriteString(t.DateRange.Render(e.DateRange))
	b.WriteString("\n\n")
	b.WriteString(t.Divider.Render(strings.Repeat("─", 24)))
	b.WriteString("\n\n")
	b.WriteString(t.StoneLabel.Render("YOUR BIRTHSTONE"))
	b.WriteString("\n\n")
	b.WriteString(t.Swatch(e.BirthstoneColor))
	b.WriteString("\n\n")
	b.WriteString(t.StoneName.Render(e.Birthstone))

	return t.ResultCard.Render(b.String())
}

func renderAlert(t Theme, msg string) string {
	return t.Alert.Render(msg + "\n\n" + t.Help.Render("enter ok"))
}

// joinBlocks stacks non-empty blocks with a blank line between them.
func joinBlocks(blocks ...string) string {
	out := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if b != "" {
			out = append(out, b)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, interleave(out, "")...)
}

func interleave(in []string, sep string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, 0, len(in)*2-1)
	for i, s := range in {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, s)
	}
	return out
}
