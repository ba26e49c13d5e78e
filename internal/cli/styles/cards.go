package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/canvasclip/internal/domain/entity"
)

// CardsRenderer renders the outcome of copy and paste commands.
type CardsRenderer struct {
	theme *Theme
}

// NewCardsRenderer creates a new cards renderer with the given theme.
func NewCardsRenderer(theme *Theme) *CardsRenderer {
	return &CardsRenderer{theme: theme}
}

// RenderCards renders pasted cards as a table of type, id, position and a
// single-line content preview.
func (r *CardsRenderer) RenderCards(cards []entity.Card) string {
	if len(cards) == 0 {
		return r.RenderEmpty()
	}

	rows := make([]table.Row, len(cards))
	for i, card := range cards {
		rows[i] = CardRow(card)
	}
	t := NewStyledTable(r.theme, CardTableColumns(cards), rows, len(rows)+2, false)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n  %s %s\n\n",
		lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconCheck),
		r.theme.Title.Render(fmt.Sprintf("%d card(s) pasted", len(cards))),
	))
	sb.WriteString(t.View())
	sb.WriteString("\n")
	return sb.String()
}

// RenderEmpty renders the message shown when a paste produced no cards.
func (r *CardsRenderer) RenderEmpty() string {
	return fmt.Sprintf("\n  %s %s\n",
		r.theme.WarningStyle.Render(IconWarning),
		r.theme.Subtle.Render("Nothing to paste"),
	)
}

// RenderCopied renders the confirmation shown after a copy.
func (r *CardsRenderer) RenderCopied(count int, target string) string {
	return fmt.Sprintf("\n  %s Copied %s card(s) to %s\n",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Highlight.Render(fmt.Sprintf("%d", count)),
		r.theme.Subtle.Render(target),
	)
}

// RenderError renders an error message.
func (r *CardsRenderer) RenderError(err error) string {
	return fmt.Sprintf("\n  %s %s\n", r.theme.ErrorStyle.Render(IconX), r.theme.ErrorStyle.Render(err.Error()))
}

// Preview collapses content to one line of at most width runes.
// Inline data URIs are shortened to their media type.
func Preview(content string, width int) string {
	if strings.HasPrefix(content, "data:") {
		if i := strings.IndexByte(content, ','); i > 0 {
			return content[:i] + ",…"
		}
	}
	line := strings.Join(strings.Fields(content), " ")
	runes := []rune(line)
	if width > 1 && len(runes) > width {
		return string(runes[:width-1]) + "…"
	}
	return line
}
