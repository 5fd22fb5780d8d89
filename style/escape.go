package style

import "strings"

// drawtext text passes through three unescaping steps: the filtergraph
// parser (quotes), the option parser (backslash before ':' and '\'') and
// drawtext's own expansion (backslash, '%').
var (
	expansionEscaper = strings.NewReplacer(
		`\`, `\\`,
		`%`, `\%`,
	)
	optionEscaper = strings.NewReplacer(
		`\`, `\\`,
		`'`, `\'`,
		`:`, `\:`,
	)
)

// EscapeText makes overlay text safe inside a drawtext text='...' option.
func EscapeText(s string) string {
	return quoteInner(optionEscaper.Replace(expansionEscaper.Replace(s)))
}

// EscapePath prepares a font file path for a fontfile='...' option.
func EscapePath(path string) string {
	path = strings.ReplaceAll(path, `\`, "/")
	return quoteInner(optionEscaper.Replace(path))
}

// quoteInner escapes s for use between single quotes in a filtergraph.
// Backslashes are literal inside quotes, so a quote has to close the
// quoted run, appear escaped, and reopen it.
func quoteInner(s string) string {
	return strings.ReplaceAll(s, `'`, `'\''`)
}
