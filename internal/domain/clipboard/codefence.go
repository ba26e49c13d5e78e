package clipboard

import "strings"

const fence = "```"

// FormatCode wraps text as markdown code: a fenced block tagged with mode
// when the text spans several lines, inline backticks otherwise.
func FormatCode(text, mode string) string {
	if strings.Contains(text, "\n") {
		return fence + mode + "\n" + text + "\n" + fence
	}
	return "`" + text + "`"
}

// FormatForMode applies FormatCode only when mode is a code mode.
func FormatForMode(text, mode string, proseModes []string) string {
	if !IsCodeMode(mode, proseModes) {
		return text
	}
	return FormatCode(text, mode)
}
