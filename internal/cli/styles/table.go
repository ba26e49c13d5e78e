package styles

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/canvasclip/internal/domain/entity"
)

const (
	typeColumnWidth    = 10
	posColumnWidth     = 16
	previewColumnWidth = 48
	minIDColumnWidth   = 4
)

// NewStyledTable creates a themed table model. height counts the header.
// An unfocused table renders every row with the cell style.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, height int, focused bool) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(focused),
		table.WithHeight(height),
		table.WithWidth(tableWidth(columns)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Cell = s.Cell.
		Foreground(theme.Text)
	if focused {
		s.Selected = s.Selected.
			Foreground(theme.Text).
			Background(theme.Surface).
			Bold(true)
	} else {
		s.Selected = lipgloss.NewStyle()
	}

	t.SetStyles(s)
	// The header grew a border; recompute the viewport against it.
	t.SetHeight(height)
	return t
}

// CardTableColumns returns the columns of the pasted cards table. The id
// column fits the longest id so uuid7 ids are never cut.
func CardTableColumns(cards []entity.Card) []table.Column {
	idWidth := minIDColumnWidth
	for _, card := range cards {
		idWidth = max(idWidth, len(card.ID))
	}
	return []table.Column{
		{Title: "Type", Width: typeColumnWidth},
		{Title: "ID", Width: idWidth},
		{Title: "Pos", Width: posColumnWidth},
		{Title: "Content", Width: previewColumnWidth},
	}
}

// CardRow converts a card to a table row.
func CardRow(card entity.Card) table.Row {
	return table.Row{
		string(card.Type),
		string(card.ID),
		fmt.Sprintf("%g,%g", card.Pos.X, card.Pos.Y),
		Preview(card.Content, previewColumnWidth),
	}
}

// tableWidth is the sum of the column widths plus the default cell padding.
func tableWidth(columns []table.Column) int {
	w := 0
	for _, c := range columns {
		w += c.Width + 2
	}
	return w
}
