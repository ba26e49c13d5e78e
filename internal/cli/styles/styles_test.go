package styles

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/canvasclip/internal/domain/build"
	"github.com/bnema/canvasclip/internal/domain/entity"
	"github.com/bnema/canvasclip/internal/infrastructure/config"
)

func TestPreview(t *testing.T) {
	tests := []struct {
		name    string
		content string
		width   int
		want    string
	}{
		{"short", "hello", 10, "hello"},
		{"collapses whitespace", "a\n\n  b\tc", 10, "a b c"},
		{"truncates", "abcdefghij", 5, "abcd…"},
		{"data uri", "data:image/png;base64,AAAA", 10, "data:image/png;base64,…"},
		{"multibyte", "ééééé", 3, "éé…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Preview(tt.content, tt.width))
		})
	}
}

func TestCardsRenderer_RenderCards(t *testing.T) {
	r := NewCardsRenderer(NewTheme())
	cards := []entity.Card{
		{ID: "c1", Type: entity.CardTypeText, Pos: entity.Position{X: 10, Y: 20}, Content: "hello world"},
		{ID: "c2", Type: entity.CardTypeImage, Pos: entity.Position{X: 30, Y: 40}, Content: "https://example.com/a.png"},
	}

	out := r.RenderCards(cards)

	assert.Contains(t, out, "2 card(s) pasted")
	for _, header := range []string{"Type", "ID", "Pos", "Content"} {
		assert.Contains(t, out, header)
	}
	assert.Contains(t, out, "c1")
	assert.Contains(t, out, "30,40")
	assert.Contains(t, out, "hello world")
	assert.Contains(t, out, "https://example.com/a.png")
}

func TestCardTableColumns_FitLongestID(t *testing.T) {
	id := entity.CardID("0199a5d2-7c1e-7f3a-9b7e-2f6d8c1a4e50")
	columns := CardTableColumns([]entity.Card{{ID: "a"}, {ID: id}})

	assert.Equal(t, "ID", columns[1].Title)
	assert.Equal(t, len(id), columns[1].Width)
	assert.Equal(t, minIDColumnWidth, CardTableColumns(nil)[1].Width)
}

func TestCardRow(t *testing.T) {
	row := CardRow(entity.Card{ID: "c9", Type: entity.CardTypeStructured, Pos: entity.Position{X: 1.5, Y: -2}, Content: "a\nb"})

	assert.Equal(t, []string{"structured", "c9", "1.5,-2", "a b"}, []string(row))
}

func TestCardsRenderer_Messages(t *testing.T) {
	r := NewCardsRenderer(NewTheme())

	assert.Contains(t, r.RenderCards(nil), "Nothing to paste")
	assert.Contains(t, r.RenderCopied(3, "clipboard"), "3")
	assert.Contains(t, r.RenderError(errors.New("boom")), "boom")
}

func TestConfigRenderer_RenderConfig(t *testing.T) {
	out := NewConfigRenderer(NewTheme()).RenderConfig(config.DefaultConfig())

	assert.Contains(t, out, "paste.image_stagger")
	assert.Contains(t, out, "plaintext, markdown")
	assert.Contains(t, out, "timestamp")
}

func TestAboutRenderer_Render(t *testing.T) {
	out := NewAboutRenderer(NewTheme()).Render(build.Info{Version: "1.2.3", Commit: "abc"})

	assert.Contains(t, out, "1.2.3")
	assert.Contains(t, out, build.RepoURL())
}
