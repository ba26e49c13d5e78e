package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bnema/canvasclip/internal/domain/entity"
)

const stdioPath = "-"

// parseDrop parses an "x,y" canvas position.
func parseDrop(s string) (entity.Position, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return entity.Position{}, fmt.Errorf("invalid position %q (want x,y)", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return entity.Position{}, fmt.Errorf("invalid x in %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return entity.Position{}, fmt.Errorf("invalid y in %q: %w", s, err)
	}
	return entity.Position{X: x, Y: y}, nil
}

// readCards decodes a JSON array of cards. Cards without an id get a
// positional one so the selection stays well formed.
func readCards(r io.Reader) ([]entity.Card, error) {
	var cards []entity.Card
	if err := json.NewDecoder(r).Decode(&cards); err != nil {
		return nil, fmt.Errorf("decode cards: %w", err)
	}
	for i := range cards {
		if !cards[i].Type.Valid() {
			return nil, fmt.Errorf("card %d: unknown card type %q", i, cards[i].Type)
		}
		if cards[i].ID == "" {
			cards[i].ID = entity.CardID(strconv.Itoa(i + 1))
		}
	}
	return cards, nil
}

// openInput opens path for reading, or stdin for "-" and "".
func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == stdioPath {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}

// openOutput opens path for writing, or stdout for "-".
func openOutput(path string) (io.WriteCloser, error) {
	if path == stdioPath {
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	return f, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
