// Package tablefit reformats loosely structured tabular text as aligned
// markdown tables that fit a character-width budget.
//
// The package is two cooperating pieces used in sequence. [Parse] classifies
// raw text as one of the supported input shapes and converts it into a grid
// of cell strings. [Render] takes a grid (first row is the header) and a
// width budget, drops columns that hold no data, and produces one or more
// markdown tables that fit the budget.
//
// # Input formats
//
// [Detect] recognizes four shapes, checked in order:
//
//   - [FormatMarkdown] — more than half of the non-blank lines are
//     pipe-delimited rows. Separator rows (|---|---|) are dropped during
//     parsing.
//   - [FormatSQL] — ASCII-art tables as printed by database shells: +---+
//     border lines with |-delimited rows between them.
//   - [FormatTSV] — more than 70% of non-blank lines contain a tab.
//   - [FormatCSV] — the fallback for everything else.
//
// Blank input detects as [FormatUnknown]; [Parse] treats it as no data.
//
// # Fitting wide tables
//
// When the single-table rendering of a grid exceeds the budget, [Render]
// picks one of two strategies. If the table has at most
// [Options.MaxColsBeforeSplit] columns and its columns are reasonably wide
// on average, every column is shrunk proportionally and cell values are
// hard-truncated to the shrunken widths (the squeeze). Otherwise the
// columns are partitioned into groups, each rendered as its own table with
// untruncated values, joined by blank lines (the split). When the values in
// the first column are all distinct, it is treated as a key column and
// repeated in every split table so rows stay correlatable.
//
// # Pipeline
//
//	grid := tablefit.Parse(text)
//	out := tablefit.Render(grid, tablefit.Options{MaxWidth: 80})
//
// or, as one call:
//
//	out := tablefit.Reformat(text, tablefit.Options{})
//
// # Failure signals
//
// Nothing in this package returns an error or panics on malformed input.
// [Parse] returns an empty grid when no line matched the detected shape,
// and [Render] returns an empty string for an empty grid or a grid whose
// every column is blank. Callers classify empty results as "no data".
//
// # Known limitations
//
// CSV parsing splits on every comma and only strips a single matching pair
// of outer quotes per cell. A comma inside a quoted field splits the field.
// This is a deliberate compatibility boundary, not an oversight; see
// [Parse].
package tablefit
