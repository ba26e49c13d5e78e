// Package encoder converts pasted files into self-contained data URIs.
package encoder

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"github.com/bnema/canvasclip/internal/domain/entity"
	"github.com/bnema/canvasclip/internal/logging"
)

// ErrEmptyFile is returned for files without content.
var ErrEmptyFile = errors.New("file is empty")

// DataURI implements port.FileEncoder with base64 data URIs.
type DataURI struct {
	maxBytes int
}

// NewDataURI creates an encoder. Files larger than maxBytes are rejected;
// zero or negative disables the limit.
func NewDataURI(maxBytes int) *DataURI {
	return &DataURI{maxBytes: maxBytes}
}

// EncodeInline implements port.FileEncoder.
func (e *DataURI) EncodeInline(ctx context.Context, file entity.OfferedFile) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(file.Data) == 0 {
		return "", ErrEmptyFile
	}
	if e.maxBytes > 0 && len(file.Data) > e.maxBytes {
		return "", &TooLargeError{Size: len(file.Data), Limit: e.maxBytes}
	}

	mime := mediaType(file)

	var b strings.Builder
	b.Grow(len("data:;base64,") + len(mime) + base64.StdEncoding.EncodedLen(len(file.Data)))
	b.WriteString("data:")
	b.WriteString(mime)
	b.WriteString(";base64,")
	b.WriteString(base64.StdEncoding.EncodeToString(file.Data))

	logging.FromContext(ctx).Debug().Str("type", mime).Int("bytes", len(file.Data)).Msg("encoded file inline")
	return b.String(), nil
}

// mediaType prefers the declared MIME type and sniffs the content otherwise.
func mediaType(file entity.OfferedFile) string {
	declared := strings.TrimSpace(file.MIMEType)
	if declared != "" {
		return declared
	}
	sniffed := http.DetectContentType(file.Data)
	if i := strings.IndexByte(sniffed, ';'); i >= 0 {
		sniffed = sniffed[:i]
	}
	return sniffed
}
