package port

import "context"

// ImageProbe checks whether a string is a loadable image reference.
type ImageProbe interface {
	// Loadable returns true if ref can be fetched and decoded as an image.
	Loadable(ctx context.Context, ref string) bool
}
