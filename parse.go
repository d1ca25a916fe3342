package tablefit

import "strings"

// Parse converts raw tabular text into a grid of cell strings. The format
// is detected once with [Detect] and the matching parser runs; the unknown
// tag deliberately falls back to the CSV parser rather than failing, so
// Parse never returns an error. Blank input, or input where no line matched
// the detected shape, yields an empty grid — the caller's signal that there
// was nothing to parse.
//
// Rows in the returned grid may have differing lengths; [Render] pads them.
//
// CSV parsing is intentionally naive: lines split on every comma and each
// cell loses at most one matching pair of outer quotes ("..." or '...').
// Commas inside quoted fields are not protected.
func Parse(text string) [][]string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	switch Detect(text) {
	case FormatMarkdown:
		return parseMarkdown(text)
	case FormatSQL:
		return parseSQL(text)
	case FormatTSV:
		return parseTSV(text)
	case FormatCSV:
		return parseCSV(text)
	default:
		// Unknown tag: fall back to CSV. Kept as an explicit guarded case so
		// the quirk survives refactors of the Format set.
		return parseCSV(text)
	}
}

// parseMarkdown keeps trimmed lines that start and end with a pipe, drops
// separator rows (pipes, spaces, and hyphens with at least one hyphen), and
// splits the rest on pipes.
func parseMarkdown(text string) [][]string {
	var grid [][]string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "|") || !strings.HasSuffix(line, "|") {
			continue
		}
		// A pure separator needs a hyphen; a row of pipes and spaces alone
		// is data.
		if markdownSepRE.MatchString(line) && strings.Contains(line, "-") {
			continue
		}
		if cells := splitPipeRow(line); len(cells) > 0 {
			grid = append(grid, cells)
		}
	}
	return grid
}

// parseSQL reads the row lines of an ASCII-art table, skipping +---+ border
// lines.
func parseSQL(text string) [][]string {
	var grid [][]string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if sqlBorderRE.MatchString(line) {
			continue
		}
		if !strings.HasPrefix(line, "|") || !strings.HasSuffix(line, "|") {
			continue
		}
		if cells := splitPipeRow(line); len(cells) > 0 {
			grid = append(grid, cells)
		}
	}
	return grid
}

func parseCSV(text string) [][]string {
	var grid [][]string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Split(line, ",")
		cells := make([]string, len(parts))
		for i, part := range parts {
			cells[i] = stripOuterQuotes(strings.TrimSpace(part))
		}
		grid = append(grid, cells)
	}
	return grid
}

func parseTSV(text string) [][]string {
	var grid [][]string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Split(line, "\t")
		cells := make([]string, len(parts))
		for i, part := range parts {
			cells[i] = strings.TrimSpace(part)
		}
		grid = append(grid, cells)
	}
	return grid
}

// splitPipeRow strips one outer pipe from each end and splits on the rest,
// trimming every cell.
func splitPipeRow(line string) []string {
	inner := strings.TrimPrefix(line, "|")
	inner = strings.TrimSuffix(inner, "|")
	parts := strings.Split(inner, "|")
	cells := make([]string, len(parts))
	for i, part := range parts {
		cells[i] = strings.TrimSpace(part)
	}
	return cells
}

// stripOuterQuotes removes a single matching pair of surrounding quotes.
// An unmatched or lone quote is left alone.
func stripOuterQuotes(cell string) string {
	if len(cell) < 2 {
		return cell
	}
	first, last := cell[0], cell[len(cell)-1]
	if first == last && (first == '"' || first == '\'') {
		return cell[1 : len(cell)-1]
	}
	return cell
}
