package tablefit_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablefit/tablefit"
)

func TestRenderBasic(t *testing.T) {
	t.Parallel()
	out := tablefit.Reformat("Name,Age\nJohn Smith,32\nJane Doe,28", tablefit.Options{})
	want := strings.Join([]string{
		"| Name       | Age |",
		"|------------|-----|",
		"| John Smith | 32  |",
		"| Jane Doe   | 28  |",
	}, "\n")
	assert.Equal(t, want, out)
}

func TestRenderEmptyGrid(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "", tablefit.Render(nil, tablefit.Options{}))
	assert.Equal(t, "", tablefit.Render([][]string{}, tablefit.Options{}))
}

func TestRenderAllColumnsVacuous(t *testing.T) {
	t.Parallel()
	grid := [][]string{{"", "  "}, {" ", ""}}
	assert.Equal(t, "", tablefit.Render(grid, tablefit.Options{}))
}

func TestRenderElidesVacuousColumn(t *testing.T) {
	t.Parallel()
	grid := [][]string{{"A", "", "B"}, {"1", "", "2"}}
	want := strings.Join([]string{
		"| A | B |",
		"|---|---|",
		"| 1 | 2 |",
	}, "\n")
	assert.Equal(t, want, tablefit.Render(grid, tablefit.Options{}))
}

func TestRenderPadsRaggedRows(t *testing.T) {
	t.Parallel()
	grid := [][]string{{"A", "B"}, {"1"}}
	want := strings.Join([]string{
		"| A | B |",
		"|---|---|",
		"| 1 |   |",
	}, "\n")
	assert.Equal(t, want, tablefit.Render(grid, tablefit.Options{}))
}

func TestRenderMarkdownRoundTrip(t *testing.T) {
	t.Parallel()
	grid := [][]string{
		{"Name", "Age", "City"},
		{"John Smith", "32", "Oslo"},
		{"Jane Doe", "28", "Bergen"},
	}
	first := tablefit.Render(grid, tablefit.Options{})
	reparsed := tablefit.Parse(first)
	require.Equal(t, grid, reparsed)
	assert.Equal(t, first, tablefit.Render(reparsed, tablefit.Options{}))
}

func TestRenderSqueezeSingleTable(t *testing.T) {
	t.Parallel()
	long := strings.Repeat("x", 30)
	grid := [][]string{
		{"ColA", "ColB", "ColC", "ColD"},
		{long, long, long, long},
	}
	out := tablefit.Render(grid, tablefit.Options{})
	require.NotEmpty(t, out)
	// Few wide columns squeeze into one table, never split.
	assert.NotContains(t, out, "\n\n")
	// 30-char values are hard-cut to the adjusted width with no ellipsis.
	assert.NotContains(t, out, long)
	assert.Contains(t, out, strings.Repeat("x", 21))
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len(line), 100)
	}
}

func TestRenderSqueezeRespectsMinColWidth(t *testing.T) {
	t.Parallel()
	// One huge column next to narrow ones: the narrow ones bottom out at
	// the floor instead of scaling to zero.
	grid := [][]string{
		{"ID", "Description", "Flag"},
		{"1", strings.Repeat("d", 200), "on"},
	}
	out := tablefit.Render(grid, tablefit.Options{MaxWidth: 60})
	require.NotEmpty(t, out)
	assert.NotContains(t, out, "\n\n")
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len(line), 60)
	}
}

func TestRenderSplitElevenColumns(t *testing.T) {
	t.Parallel()
	header := make([]string, 11)
	row := make([]string, 11)
	for i := range header {
		header[i] = strings.Repeat("h", 10)
		row[i] = strings.Repeat("v", 10)
	}
	out := tablefit.Render([][]string{header, row}, tablefit.Options{})
	// Past the column cap the table always splits, regardless of widths.
	assert.Contains(t, out, "\n\n")
}

func TestRenderSplitRepeatsKeyColumn(t *testing.T) {
	t.Parallel()
	grid := [][]string{
		{"ID", "Name", "Email", "Phone", "City", "State"},
		{"1", "Al", "a@x.y", "555-1", "Oslo", "NO"},
		{"2", "Bo", "b@x.y", "555-2", "Rome", "IT"},
		{"3", "Cy", "c@x.y", "555-3", "Bern", "CH"},
	}
	out := tablefit.Render(grid, tablefit.Options{MaxWidth: 30})
	tables := strings.Split(out, "\n\n")
	require.Greater(t, len(tables), 1)
	for _, table := range tables {
		assert.Contains(t, table, "| ID ")
	}
}

func TestRenderSplitSkipsDuplicateFirstColumn(t *testing.T) {
	t.Parallel()
	grid := [][]string{
		{"ID", "Name", "Email", "Phone", "City", "State"},
		{"1", "Al", "a@x.y", "555-1", "Oslo", "NO"},
		{"1", "Bo", "b@x.y", "555-2", "Rome", "IT"},
		{"3", "Cy", "c@x.y", "555-3", "Bern", "CH"},
	}
	out := tablefit.Render(grid, tablefit.Options{MaxWidth: 30})
	tables := strings.Split(out, "\n\n")
	require.Greater(t, len(tables), 1)
	for _, table := range tables[1:] {
		assert.NotContains(t, table, "| ID ")
	}
}

func TestRenderSplitTablesFitBudget(t *testing.T) {
	t.Parallel()
	grid := [][]string{
		{"ID", "Name", "Email", "Phone", "City", "State"},
		{"1", "Al", "a@x.y", "555-1", "Oslo", "NO"},
		{"2", "Bo", "b@x.y", "555-2", "Rome", "IT"},
	}
	out := tablefit.Render(grid, tablefit.Options{MaxWidth: 30})
	for _, line := range strings.Split(out, "\n") {
		if line == "" {
			continue
		}
		assert.LessOrEqual(t, len(line), 30)
	}
}

func TestRenderSplitValuesNotTruncated(t *testing.T) {
	t.Parallel()
	// The split path renders the original values, unlike the squeeze path.
	grid := [][]string{
		{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"},
		{"v1", "v2", "v3", "v4", "v5", "v6", "v7", "v8", strings.Repeat("w", 40), "v10", "v11"},
	}
	out := tablefit.Render(grid, tablefit.Options{})
	assert.Contains(t, out, strings.Repeat("w", 40))
}

func TestRenderNoAlignmentColons(t *testing.T) {
	t.Parallel()
	out := tablefit.Reformat("a,b\n1,2", tablefit.Options{})
	assert.NotContains(t, out, ":")
}

func TestRenderSingleColumn(t *testing.T) {
	t.Parallel()
	grid := [][]string{{"Value"}, {"one"}, {"two"}}
	want := strings.Join([]string{
		"| Value |",
		"|-------|",
		"| one   |",
		"| two   |",
	}, "\n")
	assert.Equal(t, want, tablefit.Render(grid, tablefit.Options{}))
}

func TestRenderWideRunes(t *testing.T) {
	t.Parallel()
	// Full-width characters occupy two cells; padding accounts for that.
	grid := [][]string{{"Name", "City"}, {"你好", "X"}}
	out := tablefit.Render(grid, tablefit.Options{})
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "| 你好 | X    |", lines[2])
}

func TestReformatBlankInput(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "", tablefit.Reformat("", tablefit.Options{}))
	assert.Equal(t, "", tablefit.Reformat("  \n ", tablefit.Options{}))
}

func TestRenderCustomBudgetOptions(t *testing.T) {
	t.Parallel()
	grid := [][]string{
		{"A", "B", "C"},
		{"aaaa", "bbbb", "cccc"},
	}
	// Fits the default budget in one piece.
	assert.NotContains(t, tablefit.Render(grid, tablefit.Options{}), "\n\n")
	// A lowered column cap forces the split path.
	out := tablefit.Render(grid, tablefit.Options{MaxWidth: 20, MaxColsBeforeSplit: 2})
	assert.Contains(t, out, "\n\n")
}
