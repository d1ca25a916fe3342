package tablefit

import (
	"regexp"
	"strings"
)

// Format classifies the shape of raw tabular text.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatSQL      Format = "sql"
	FormatTSV      Format = "tsv"
	FormatCSV      Format = "csv"

	// FormatUnknown is returned for blank input. Callers must treat it as
	// "no data"; [Parse] dispatches it to the CSV parser, which finds
	// nothing.
	FormatUnknown Format = "unknown"
)

// String returns the format name.
func (f Format) String() string { return string(f) }

var (
	// A row that, ignoring surrounding whitespace, starts and ends with a pipe.
	markdownRowRE = regexp.MustCompile(`^\s*\|.*\|\s*$`)
	// An ASCII-art border as printed by database shells: +----+----+.
	sqlBorderRE = regexp.MustCompile(`^\+[-+]+\+$`)
	// A bare pipe-delimited row with no leading/trailing whitespace allowance.
	pipeRowRE = regexp.MustCompile(`^\|.*\|$`)
	// A markdown separator row: pipes, spaces, and hyphens only.
	markdownSepRE = regexp.MustCompile(`^\|[\s\-|]+\|$`)
)

// Detect classifies text as one of the supported input formats. Checks run
// in a fixed order and the first match wins: markdown when more than half
// of the non-blank lines are pipe-delimited, then sql, then tsv when more
// than 70% of the non-blank lines contain a tab, then csv as the fallback.
// Blank input yields [FormatUnknown].
//
// The sql check intentionally fires for any text with one |...| line plus a
// pipe anywhere, which can claim pipe-containing CSV. That precedence is
// load-bearing for compatibility and must not be reordered.
func Detect(text string) Format {
	lines := nonBlankLines(text)
	if len(lines) == 0 {
		return FormatUnknown
	}

	piped := 0
	for _, line := range lines {
		if markdownRowRE.MatchString(line) {
			piped++
		}
	}
	if piped*2 > len(lines) {
		return FormatMarkdown
	}

	hasPipeRow := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if sqlBorderRE.MatchString(trimmed) {
			return FormatSQL
		}
		if pipeRowRE.MatchString(trimmed) {
			hasPipeRow = true
		}
	}
	if hasPipeRow && strings.Contains(text, "|") {
		return FormatSQL
	}

	tabbed := 0
	for _, line := range lines {
		if strings.Contains(line, "\t") {
			tabbed++
		}
	}
	if tabbed*10 > len(lines)*7 {
		return FormatTSV
	}

	return FormatCSV
}

func nonBlankLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
