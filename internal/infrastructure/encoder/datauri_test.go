package encoder

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/canvasclip/internal/domain/entity"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestDataURI_UsesDeclaredType(t *testing.T) {
	enc := NewDataURI(0)

	out, err := enc.EncodeInline(context.Background(), entity.OfferedFile{MIMEType: "image/webp", Data: []byte("abc")})

	require.NoError(t, err)
	assert.Equal(t, "data:image/webp;base64,"+base64.StdEncoding.EncodeToString([]byte("abc")), out)
}

func TestDataURI_SniffsMissingType(t *testing.T) {
	enc := NewDataURI(0)

	out, err := enc.EncodeInline(context.Background(), entity.OfferedFile{Data: pngHeader})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "data:image/png;base64,"), out)
}

func TestDataURI_RejectsEmptyAndOversized(t *testing.T) {
	enc := NewDataURI(4)

	_, err := enc.EncodeInline(context.Background(), entity.OfferedFile{MIMEType: "image/png"})
	assert.ErrorIs(t, err, ErrEmptyFile)

	_, err = enc.EncodeInline(context.Background(), entity.OfferedFile{MIMEType: "image/png", Data: []byte("12345")})
	var tooLarge *TooLargeError
	require.True(t, errors.As(err, &tooLarge))
	assert.Equal(t, 5, tooLarge.Size)
	assert.Equal(t, 4, tooLarge.Limit)
}

func TestDataURI_HonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewDataURI(0).EncodeInline(ctx, entity.OfferedFile{MIMEType: "image/png", Data: []byte("x")})

	assert.ErrorIs(t, err, context.Canceled)
}
