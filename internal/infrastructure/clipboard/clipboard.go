// Package clipboard provides clipboard transports: a system adapter using
// wl-clipboard (Wayland) with X11 fallback, and a JSON payload bundle.
package clipboard

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/bnema/canvasclip/internal/application/port"
	"github.com/bnema/canvasclip/internal/domain/entity"
	"github.com/bnema/canvasclip/internal/logging"
)

// runner executes a clipboard tool and returns its stdout.
type runner func(ctx context.Context, name string, args []string, stdin io.Reader) ([]byte, error)

func execRunner(ctx context.Context, name string, args []string, stdin io.Reader) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if stdin != nil {
		cmd.Stdin = stdin
		return nil, cmd.Run()
	}
	return cmd.Output()
}

type tool int

const (
	toolNone tool = iota
	toolWayland
	toolXclip
	toolXsel
)

// Adapter implements port.PayloadSource and port.CopyTransport using
// system clipboard tools. Uses wl-clipboard for Wayland, falls back to
// xclip or xsel for X11.
type Adapter struct {
	tool     tool
	copyCmd  string
	pasteCmd string
	run      runner
}

// New creates a new clipboard adapter.
// Detects Wayland vs X11 and selects appropriate clipboard tool.
func New() *Adapter {
	a := &Adapter{run: execRunner}

	// Check for Wayland first
	if os.Getenv("WAYLAND_DISPLAY") != "" {
		if path, err := exec.LookPath("wl-copy"); err == nil {
			if pastePath, err := exec.LookPath("wl-paste"); err == nil {
				a.tool, a.copyCmd, a.pasteCmd = toolWayland, path, pastePath
			}
		}
	}

	// Fall back to X11 if Wayland tools not available
	if a.tool == toolNone && os.Getenv("DISPLAY") != "" {
		if path, err := exec.LookPath("xclip"); err == nil {
			a.tool, a.copyCmd, a.pasteCmd = toolXclip, path, path
		} else if path, err := exec.LookPath("xsel"); err == nil {
			a.tool, a.copyCmd, a.pasteCmd = toolXsel, path, path
		}
	}

	return a
}

// Available reports whether a clipboard tool was found.
func (a *Adapter) Available() bool {
	return a.tool != toolNone
}

// WriteText copies text to the clipboard.
func (a *Adapter) WriteText(ctx context.Context, text string) error {
	log := logging.FromContext(ctx)

	var args []string
	switch a.tool {
	case toolWayland:
		args = []string{"--type", "text/plain;charset=utf-8"}
	case toolXclip:
		args = []string{"-selection", "clipboard"}
	case toolXsel:
		args = []string{"--clipboard", "--input"}
	default:
		log.Error().Err(ErrNoClipboardTool).Msg("clipboard write failed")
		return ErrNoClipboardTool
	}

	if _, err := a.run(ctx, a.copyCmd, args, strings.NewReader(text)); err != nil {
		log.Error().Err(err).Str("tool", a.copyCmd).Msg("clipboard write failed")
		return fmt.Errorf("clipboard write failed: %w", err)
	}

	log.Debug().Str("tool", a.copyCmd).Int("len", len(text)).Msg("clipboard write success")
	return nil
}

// TriggerCopy implements port.CopyTransport. System clipboard tools own a
// selection with a single content, so only the plain-text representation
// reaches the system clipboard.
func (a *Adapter) TriggerCopy(ctx context.Context, handler port.CopyHandler) error {
	payload, ok := handler.Redeem()
	if !ok {
		return ErrHandlerSpent
	}
	logging.FromContext(ctx).Debug().
		Int("cards_len", len(payload.Cards)).
		Msg("system clipboard offers text/plain only; structured cards representation dropped")
	return a.WriteText(ctx, payload.PlainText)
}

// ReadPayload implements port.PayloadSource. Offered types are listed
// once; text items are read lazily and the preferred image type is read
// eagerly as the payload's single file.
func (a *Adapter) ReadPayload(ctx context.Context) (port.Payload, error) {
	log := logging.FromContext(ctx)

	if a.tool == toolNone {
		log.Error().Err(ErrNoClipboardTool).Msg("clipboard read failed")
		return nil, ErrNoClipboardTool
	}

	types, err := a.listTypes(ctx)
	if err != nil {
		log.Debug().Err(err).Str("tool", a.pasteCmd).Msg("clipboard type listing failed (may be empty)")
		return &systemPayload{}, nil
	}

	payload := &systemPayload{}
	labels := map[string]bool{}
	for _, raw := range types {
		label := normalizeType(raw)
		if label == "" || labels[label] {
			continue
		}
		labels[label] = true
		if !strings.HasPrefix(label, "image/") {
			payload.items = append(payload.items, &systemItem{adapter: a, label: label, raw: raw})
		}
	}

	if imageType := preferredImageType(types); imageType != "" {
		data, err := a.readType(ctx, imageType)
		if err != nil {
			log.Debug().Err(err).Str("type", imageType).Msg("failed to read clipboard image")
		} else if len(data) > 0 {
			file := entity.OfferedFile{
				Name:     "clipboard" + extensionFor(imageType),
				MIMEType: imageType,
				Data:     data,
			}
			payload.files = append(payload.files, file)
			payload.items = append([]port.PayloadItem{fileItem{mime: imageType}}, payload.items...)
		}
	}

	log.Debug().Strs("types", types).Int("files", len(payload.files)).Msg("clipboard payload read")
	return payload, nil
}

func (a *Adapter) listTypes(ctx context.Context) ([]string, error) {
	var args []string
	switch a.tool {
	case toolWayland:
		args = []string{"--list-types"}
	case toolXclip:
		args = []string{"-selection", "clipboard", "-t", "TARGETS", "-o"}
	case toolXsel:
		// xsel cannot enumerate targets; assume text.
		return []string{entity.RepresentationPlainText}, nil
	}

	out, err := a.run(ctx, a.pasteCmd, args, nil)
	if err != nil {
		return nil, err
	}

	var types []string
	for _, line := range strings.Split(string(out), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			types = append(types, line)
		}
	}
	return types, nil
}

func (a *Adapter) readType(ctx context.Context, typ string) ([]byte, error) {
	var args []string
	switch a.tool {
	case toolWayland:
		args = []string{"--no-newline", "--type", typ}
	case toolXclip:
		args = []string{"-selection", "clipboard", "-t", typ, "-o"}
	case toolXsel:
		args = []string{"--clipboard", "--output"}
	default:
		return nil, ErrNoClipboardTool
	}
	return a.run(ctx, a.pasteCmd, args, nil)
}

// normalizeType maps platform target names onto representation labels.
// X11 bookkeeping targets map to "".
func normalizeType(raw string) string {
	switch raw {
	case "TARGETS", "TIMESTAMP", "MULTIPLE", "SAVE_TARGETS", "DELETE", "INSERT_SELECTION", "INSERT_PROPERTY":
		return ""
	case "UTF8_STRING", "STRING", "TEXT", "COMPOUND_TEXT":
		return entity.RepresentationPlainText
	}
	if strings.HasPrefix(raw, "text/plain") {
		return entity.RepresentationPlainText
	}
	return raw
}

// preferredImageType picks the one image encoding to read. Clipboard
// owners usually offer the same picture in several formats.
func preferredImageType(types []string) string {
	first := ""
	for _, t := range types {
		if !strings.HasPrefix(t, "image/") {
			continue
		}
		if t == "image/png" {
			return t
		}
		if first == "" {
			first = t
		}
	}
	return first
}

func extensionFor(mimeType string) string {
	sub := strings.TrimPrefix(mimeType, "image/")
	if i := strings.IndexAny(sub, "+;"); i >= 0 {
		sub = sub[:i]
	}
	if sub == "jpeg" {
		sub = "jpg"
	}
	return filepath.Ext("x." + sub)
}

type systemPayload struct {
	files []entity.OfferedFile
	items []port.PayloadItem
}

func (p *systemPayload) Files() []entity.OfferedFile { return p.files }
func (p *systemPayload) Items() []port.PayloadItem   { return p.items }

type systemItem struct {
	adapter *Adapter
	label   string
	raw     string
}

func (i *systemItem) Kind() entity.ItemKind { return entity.ItemKindString }
func (i *systemItem) Type() string          { return i.label }

func (i *systemItem) Text(ctx context.Context) (string, error) {
	out, err := i.adapter.readType(ctx, i.raw)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", i.raw, err)
	}
	return string(bytes.TrimSuffix(out, []byte{0})), nil
}

type fileItem struct {
	mime string
}

func (f fileItem) Kind() entity.ItemKind { return entity.ItemKindFile }
func (f fileItem) Type() string          { return f.mime }

func (f fileItem) Text(context.Context) (string, error) {
	return "", fmt.Errorf("%s is a file item", f.mime)
}
