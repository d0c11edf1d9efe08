package output

import (
	"regexp"
	"unicode/utf8"
)

// ANSI escape sequences used by the printers.
const (
	Reset    = "\x1b[0m"
	FgBlack  = "\x1b[30m"
	FgRed    = "\x1b[31m"
	FgGreen  = "\x1b[32m"
	FgYellow = "\x1b[33m"
	BgBlack  = "\x1b[40m"
	BgGreen  = "\x1b[42m"
)

// ansiEscape matches CSI sequences such as "\x1b[31m".
var ansiEscape = regexp.MustCompile(`\x1b\[[0-?]*[ -/]*[@-~]`)

// StripANSI removes escape sequences from s.
func StripANSI(s string) string {
	return ansiEscape.ReplaceAllString(s, "")
}

// PrintingWidth returns the number of terminal columns s occupies.
func PrintingWidth(s string) int {
	return utf8.RuneCountInString(StripANSI(s))
}
