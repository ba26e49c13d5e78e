package port

import (
	"context"

	"github.com/bnema/canvasclip/internal/domain/entity"
)

// FileEncoder converts binary file content to a self-contained textual form.
type FileEncoder interface {
	EncodeInline(ctx context.Context, file entity.OfferedFile) (string, error)
}
