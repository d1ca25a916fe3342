package tablefit

import (
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Defaults for [Options] fields left at zero.
const (
	DefaultMaxWidth           = 100
	DefaultMinColWidth        = 3
	DefaultMaxColsBeforeSplit = 10
)

// Options controls rendering. The zero value is usable: every field falls
// back to its default.
type Options struct {
	// MaxWidth is the character budget for one rendered table, including
	// pipes and padding.
	MaxWidth int

	// MinColWidth is the floor a squeezed column never shrinks below.
	MinColWidth int

	// MaxColsBeforeSplit forces the split strategy past this column count,
	// regardless of widths.
	MaxColsBeforeSplit int
}

func (o Options) withDefaults() Options {
	if o.MaxWidth <= 0 {
		o.MaxWidth = DefaultMaxWidth
	}
	if o.MinColWidth <= 0 {
		o.MinColWidth = DefaultMinColWidth
	}
	if o.MaxColsBeforeSplit <= 0 {
		o.MaxColsBeforeSplit = DefaultMaxColsBeforeSplit
	}
	return o
}

// Reformat parses text and renders the result in one call.
func Reformat(text string, opts Options) string {
	return Render(Parse(text), opts)
}

// Render formats a grid as one or more markdown tables within the width
// budget. The first row is the header. Rows are padded to a common length,
// columns with no non-blank value anywhere are dropped, and if the full
// table exceeds Options.MaxWidth the columns are either proportionally
// squeezed (values hard-truncated, single table) or split across several
// tables joined by blank lines. When the first column's non-blank values
// are all distinct it is repeated in every split table.
//
// Render never fails: an empty grid, or one whose every column is blank,
// yields an empty string. Output uses ASCII pipes, hyphens, and spaces
// only, with no alignment colons and no trailing newline.
func Render(grid [][]string, opts Options) string {
	opts = opts.withDefaults()
	if len(grid) == 0 {
		return ""
	}
	grid = normalize(grid)
	keep := nonVacuousColumns(grid)
	if len(keep) == 0 {
		return ""
	}
	grid = project(grid, keep)
	widths := columnWidths(grid)

	if renderedWidth(widths) <= opts.MaxWidth {
		return renderTable(grid, widths)
	}

	key := isKeyColumn(grid)
	if !mustSplit(widths, opts) {
		if out, ok := squeeze(grid, widths, opts); ok {
			return out
		}
	}
	return renderSplit(grid, widths, key, opts)
}

// normalize pads every row to the length of the longest one so column
// indexing is uniform.
func normalize(grid [][]string) [][]string {
	numCols := 0
	for _, row := range grid {
		if len(row) > numCols {
			numCols = len(row)
		}
	}
	out := make([][]string, len(grid))
	for i, row := range grid {
		padded := make([]string, numCols)
		copy(padded, row)
		out[i] = padded
	}
	return out
}

// nonVacuousColumns returns the indices of columns holding at least one
// non-blank value.
func nonVacuousColumns(grid [][]string) []int {
	if len(grid) == 0 {
		return nil
	}
	var keep []int
	for col := range grid[0] {
		for _, row := range grid {
			if strings.TrimSpace(row[col]) != "" {
				keep = append(keep, col)
				break
			}
		}
	}
	return keep
}

// project builds a new grid containing only the given columns, in the given
// order. Indices past a row's end become empty cells.
func project(grid [][]string, cols []int) [][]string {
	out := make([][]string, len(grid))
	for i, row := range grid {
		cells := make([]string, len(cols))
		for j, col := range cols {
			if col < len(row) {
				cells[j] = row[col]
			}
		}
		out[i] = cells
	}
	return out
}

// columnWidths returns the display width of the widest cell per column.
func columnWidths(grid [][]string) []int {
	if len(grid) == 0 {
		return nil
	}
	widths := make([]int, len(grid[0]))
	for _, row := range grid {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); i < len(widths) && w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// renderedWidth is the total character width of a table with these column
// widths: each column renders as " value " (width+2) and there is one pipe
// per column plus a trailing pipe.
func renderedWidth(widths []int) int {
	total := 0
	for _, w := range widths {
		total += w
	}
	return total + 3*len(widths) + 1
}

// isKeyColumn reports whether the first column's non-blank values are all
// distinct. Blank values are ignored, so an all-blank column still counts.
func isKeyColumn(grid [][]string) bool {
	seen := make(map[string]bool, len(grid))
	for _, row := range grid {
		v := strings.TrimSpace(row[0])
		if v == "" {
			continue
		}
		if seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// mustSplit reports whether squeezing is off the table: too many columns,
// or columns already too narrow on average to shrink meaningfully.
func mustSplit(widths []int, opts Options) bool {
	if len(widths) > opts.MaxColsBeforeSplit {
		return true
	}
	total := 0
	for _, w := range widths {
		total += w
	}
	return total/len(widths) < 2*opts.MinColWidth
}

// squeeze scales every column down proportionally, trims any leftover
// excess from the widest columns first, hard-truncates cell values to the
// final widths, and renders one table. It reports false when the budget
// leaves less than MinColWidth per column after overhead, in which case the
// caller falls through to the split strategy.
func squeeze(grid [][]string, widths []int, opts Options) (string, bool) {
	numCols := len(widths)
	available := opts.MaxWidth - (3*numCols + 1)
	if available <= numCols*opts.MinColWidth {
		return "", false
	}

	content := 0
	for _, w := range widths {
		content += w
	}
	adjusted := make([]int, numCols)
	sum := 0
	for i, w := range widths {
		aw := w * available / content
		if aw < opts.MinColWidth {
			aw = opts.MinColWidth
		}
		adjusted[i] = aw
		sum += aw
	}
	if excess := sum - available; excess > 0 {
		adjusted = trimWidest(adjusted, excess, opts.MinColWidth)
	}

	truncated := make([][]string, len(grid))
	for r, row := range grid {
		cells := make([]string, numCols)
		for i := range cells {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			cells[i] = runewidth.Truncate(cell, adjusted[i], "")
		}
		truncated[r] = cells
	}
	return renderTable(truncated, adjusted), true
}

// trimWidest removes excess width starting from the widest columns, never
// taking a column below floor. The order is a stable sort by descending
// width, so equal-width columns give up width in original column order.
func trimWidest(widths []int, excess, floor int) []int {
	out := make([]int, len(widths))
	copy(out, widths)
	order := make([]int, len(out))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return out[order[a]] > out[order[b]]
	})
	for _, i := range order {
		if excess <= 0 {
			break
		}
		take := out[i] - floor
		if take > excess {
			take = excess
		}
		if take > 0 {
			out[i] -= take
			excess -= take
		}
	}
	return out
}

// renderSplit partitions the columns into width-bounded groups and renders
// each group as its own table over the untruncated grid.
func renderSplit(grid [][]string, widths []int, key bool, opts Options) string {
	groups := splitGroups(widths, key, opts.MaxWidth)
	tables := make([]string, len(groups))
	for gi, cols := range groups {
		sub := project(grid, cols)
		tables[gi] = renderTable(sub, columnWidths(sub))
	}
	return strings.Join(tables, "\n\n")
}

// splitGroups packs column indices greedily: a column joins the current
// group while the group still renders within maxWidth, otherwise it opens
// the next group. Column 0 always opens the first group; when it is a key
// column it also seeds every subsequent group.
func splitGroups(widths []int, key bool, maxWidth int) [][]int {
	var groups [][]int
	cur := []int{0}
	for i := 1; i < len(widths); i++ {
		tentative := append(append([]int{}, cur...), i)
		if groupWidth(widths, tentative) <= maxWidth {
			cur = tentative
			continue
		}
		groups = append(groups, cur)
		if key {
			cur = []int{0, i}
		} else {
			cur = []int{i}
		}
	}
	return append(groups, cur)
}

func groupWidth(widths []int, cols []int) int {
	total := 0
	for _, col := range cols {
		total += widths[col]
	}
	return total + 3*len(cols) + 1
}

// renderTable emits header, separator, and data rows for a grid whose
// columns already have final widths.
func renderTable(grid [][]string, widths []int) string {
	lines := make([]string, 0, len(grid)+1)
	lines = append(lines, renderRow(grid[0], widths), renderSeparator(widths))
	for _, row := range grid[1:] {
		lines = append(lines, renderRow(row, widths))
	}
	return strings.Join(lines, "\n")
}

func renderRow(row []string, widths []int) string {
	var sb strings.Builder
	sb.WriteByte('|')
	for i, w := range widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		sb.WriteByte(' ')
		sb.WriteString(padRight(cell, w))
		sb.WriteString(" |")
	}
	return sb.String()
}

func renderSeparator(widths []int) string {
	var sb strings.Builder
	sb.WriteByte('|')
	for _, w := range widths {
		sb.WriteString(strings.Repeat("-", w+2))
		sb.WriteByte('|')
	}
	return sb.String()
}

func padRight(s string, width int) string {
	if pad := width - runewidth.StringWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
