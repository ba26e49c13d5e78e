package clipboard

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/canvasclip/internal/domain/entity"
)

type call struct {
	name  string
	args  []string
	stdin string
}

// fakeTool records invocations and answers paste commands from a type table.
type fakeTool struct {
	calls  []call
	listed string
	data   map[string]string
	err    error
}

func (f *fakeTool) run(_ context.Context, name string, args []string, stdin io.Reader) ([]byte, error) {
	c := call{name: name, args: args}
	if stdin != nil {
		b, _ := io.ReadAll(stdin)
		c.stdin = string(b)
	}
	f.calls = append(f.calls, c)
	if f.err != nil {
		return nil, f.err
	}
	for i, a := range args {
		if a == "--list-types" || a == "TARGETS" {
			return []byte(f.listed), nil
		}
		if (a == "--type" || a == "-t") && i+1 < len(args) {
			return []byte(f.data[args[i+1]]), nil
		}
	}
	return nil, nil
}

func waylandAdapter(f *fakeTool) *Adapter {
	return &Adapter{tool: toolWayland, copyCmd: "wl-copy", pasteCmd: "wl-paste", run: f.run}
}

type fakeHandler struct {
	payload entity.OutboundPayload
	spent   bool
}

func (h *fakeHandler) Redeem() (entity.OutboundPayload, bool) {
	if h.spent {
		return entity.OutboundPayload{}, false
	}
	h.spent = true
	return h.payload, true
}

func TestAdapter_ReadPayload_Wayland(t *testing.T) {
	f := &fakeTool{
		listed: "text/plain;charset=utf-8\nUTF8_STRING\nvscode-editor-data\nimage/bmp\nimage/png\n",
		data: map[string]string{
			"text/plain;charset=utf-8": "hello",
			"vscode-editor-data":       `{"mode":"go"}`,
			"image/png":                "\x89PNG",
		},
	}
	a := waylandAdapter(f)

	payload, err := a.ReadPayload(context.Background())
	require.NoError(t, err)

	files := payload.Files()
	require.Len(t, files, 1)
	assert.Equal(t, "image/png", files[0].MIMEType)
	assert.Equal(t, "clipboard.png", files[0].Name)
	assert.Equal(t, []byte("\x89PNG"), files[0].Data)

	items := payload.Items()
	require.Len(t, items, 3)
	assert.Equal(t, entity.ItemKindFile, items[0].Kind())
	assert.Equal(t, entity.RepresentationPlainText, items[1].Type())
	assert.Equal(t, entity.RepresentationEditorContext, items[2].Type())

	text, err := items[1].Text(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
}

func TestAdapter_ReadPayload_ListFailureIsEmpty(t *testing.T) {
	f := &fakeTool{err: errors.New("nothing is copied")}
	a := waylandAdapter(f)

	payload, err := a.ReadPayload(context.Background())
	require.NoError(t, err)
	assert.Empty(t, payload.Files())
	assert.Empty(t, payload.Items())
}

func TestAdapter_NoTool(t *testing.T) {
	a := &Adapter{run: (&fakeTool{}).run}

	_, err := a.ReadPayload(context.Background())
	assert.ErrorIs(t, err, ErrNoClipboardTool)
	assert.ErrorIs(t, a.WriteText(context.Background(), "x"), ErrNoClipboardTool)
	assert.False(t, a.Available())
}

func TestAdapter_TriggerCopy_WritesPlainText(t *testing.T) {
	f := &fakeTool{}
	a := waylandAdapter(f)
	h := &fakeHandler{payload: entity.OutboundPayload{PlainText: "a\n\nb", Cards: "[]"}}

	require.NoError(t, a.TriggerCopy(context.Background(), h))

	require.Len(t, f.calls, 1)
	assert.Equal(t, "wl-copy", f.calls[0].name)
	assert.Equal(t, "a\n\nb", f.calls[0].stdin)

	assert.ErrorIs(t, a.TriggerCopy(context.Background(), h), ErrHandlerSpent)
}

func TestAdapter_XclipArgs(t *testing.T) {
	f := &fakeTool{listed: "TARGETS\nTIMESTAMP\nUTF8_STRING\n", data: map[string]string{"UTF8_STRING": "x11 text"}}
	a := &Adapter{tool: toolXclip, copyCmd: "xclip", pasteCmd: "xclip", run: f.run}

	payload, err := a.ReadPayload(context.Background())
	require.NoError(t, err)

	items := payload.Items()
	require.Len(t, items, 1)
	text, err := items[0].Text(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "x11 text", text)
	assert.Equal(t, []string{"-selection", "clipboard", "-t", "TARGETS", "-o"}, f.calls[0].args)
}

func TestNormalizeType(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"text/plain;charset=utf-8", entity.RepresentationPlainText},
		{"UTF8_STRING", entity.RepresentationPlainText},
		{"TARGETS", ""},
		{"cards", "cards"},
		{"image/png", "image/png"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeType(tt.raw))
		})
	}
}

func TestPreferredImageType(t *testing.T) {
	assert.Equal(t, "image/png", preferredImageType([]string{"image/bmp", "image/png"}))
	assert.Equal(t, "image/jpeg", preferredImageType([]string{"text/plain", "image/jpeg", "image/bmp"}))
	assert.Empty(t, preferredImageType([]string{"text/plain"}))
}

func TestExtensionFor(t *testing.T) {
	assert.Equal(t, ".png", extensionFor("image/png"))
	assert.Equal(t, ".jpg", extensionFor("image/jpeg"))
	assert.Equal(t, ".svg", extensionFor("image/svg+xml"))
}

func TestSystemItem_TrimsTrailingNUL(t *testing.T) {
	f := &fakeTool{data: map[string]string{"text/plain": "abc\x00"}}
	item := &systemItem{adapter: waylandAdapter(f), label: "text/plain", raw: "text/plain"}

	text, err := item.Text(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc", text)
	assert.False(t, strings.ContainsRune(text, 0))
}
