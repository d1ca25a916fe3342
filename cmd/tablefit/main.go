// Package main implements the tablefit CLI tool.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tablefit/tablefit"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "tablefit",
	Short:        "Reformat tabular text from stdin as width-constrained markdown tables",
	Long:         "Reads comma-, tab-, pipe-, or sql-dump-shaped tabular text from stdin and\nwrites aligned markdown tables that fit a character-width budget.",
	SilenceUsage: true,
	RunE:         runFormat,
}

var formatWidth int

func init() {
	rootCmd.Flags().IntVarP(&formatWidth, "width", "w", tablefit.DefaultMaxWidth,
		"Maximum output width in characters")
	rootCmd.AddCommand(serveCmd)
}

func runFormat(cmd *cobra.Command, args []string) error {
	if formatWidth < minWidth {
		return fmt.Errorf("width must be at least %d, got %d", minWidth, formatWidth)
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	text := string(data)
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("no input data on stdin")
	}

	grid := tablefit.Parse(text)
	if len(grid) == 0 {
		return fmt.Errorf("input is not recognizable tabular data")
	}
	out := tablefit.Render(grid, tablefit.Options{MaxWidth: formatWidth})
	if out == "" {
		return fmt.Errorf("input is not recognizable tabular data")
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

const minWidth = 20
