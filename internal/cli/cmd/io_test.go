package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/canvasclip/internal/domain/entity"
)

func TestParseDrop(t *testing.T) {
	tests := []struct {
		in      string
		want    entity.Position
		wantErr bool
	}{
		{in: "0,0", want: entity.Position{}},
		{in: "120.5, -40", want: entity.Position{X: 120.5, Y: -40}},
		{in: "12", wantErr: true},
		{in: "a,1", wantErr: true},
		{in: "1,b", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseDrop(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadCards(t *testing.T) {
	src := `[
	  {"id": "a", "type": "text", "pos": {"x": 1, "y": 2}, "content": "hi"},
	  {"type": "image", "pos": {"x": 3, "y": 4}, "content": "https://example.com/a.png"}
	]`

	cards, err := readCards(strings.NewReader(src))
	require.NoError(t, err)

	require.Len(t, cards, 2)
	assert.Equal(t, entity.CardID("a"), cards[0].ID)
	assert.Equal(t, entity.CardID("2"), cards[1].ID)
	assert.Equal(t, entity.CardTypeImage, cards[1].Type)
}

func TestReadCards_Rejects(t *testing.T) {
	_, err := readCards(strings.NewReader(`[{"type": "video"}]`))
	assert.ErrorContains(t, err, "unknown card type")

	_, err = readCards(strings.NewReader(`{`))
	assert.Error(t, err)
}
