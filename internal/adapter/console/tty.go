package console

import (
	"os"

	"golang.org/x/term"
)

// IsOutputTerminal reports whether stdout is a terminal. Colorized hunk
// output is only useful when it is; piped or redirected output gets plain
// text.
func IsOutputTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// StylesFor resolves the configured color mode ("auto", "always", or
// "never") into a style set. Unknown modes behave like "auto".
func StylesFor(mode string) Styles {
	switch mode {
	case "always":
		return DefaultStyles()
	case "never":
		return PlainStyles()
	}
	if IsOutputTerminal() {
		return DefaultStyles()
	}
	return PlainStyles()
}
