package clipboard

import "errors"

var (
	// ErrNoClipboardTool is returned when neither wl-clipboard nor xclip/xsel is installed.
	ErrNoClipboardTool = errors.New("no clipboard tool available (install wl-clipboard or xclip)")
	// ErrHandlerSpent is returned when a copy handler has nothing left to serve.
	ErrHandlerSpent = errors.New("copy handler already redeemed or invalidated")
)
