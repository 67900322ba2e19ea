package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/spektr-org/gradreport/engine"
	"github.com/spektr-org/gradreport/helpers"
)

// ============================================================================
// CONSOLE — Summary sections printed before the charts
// ============================================================================

// CompletionMessage is the last line of a successful run.
const CompletionMessage = "Analysis complete. Visualizations saved as PNG files."

var heading = color.New(color.FgYellow)

func printShape(out io.Writer, label string, t *helpers.Table) {
	rows, cols := t.Shape()
	fmt.Fprintf(out, "%s dataset shape: (%d, %d)\n", label, rows, cols)
}

func printHeading(out io.Writer, text string) {
	heading.Fprintf(out, "\n%s:\n", text)
}

// printTable renders td, with its summary as the footer when footer is set.
func printTable(out io.Writer, title string, td *engine.TableData, footer bool) {
	printHeading(out, title)

	table := tablewriter.NewWriter(out)
	table.SetHeader(td.Headers())
	table.SetAutoFormatHeaders(false)
	for _, row := range td.Rows {
		table.Append(row)
	}
	if footer && td.Summary != nil {
		cells := make([]string, len(td.Columns))
		cells[0] = td.Summary.Label
		for i, col := range td.Columns[1:] {
			cells[i+1] = td.Summary.Values[col.Key]
		}
		table.SetFooter(cells)
	}
	table.Render()
}

func printMissing(out io.Writer, title string, missing []engine.ColumnMissing) {
	printHeading(out, title)
	if len(missing) == 0 {
		fmt.Fprintln(out, "None")
		return
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Column", "Missing"})
	table.SetAutoFormatHeaders(false)
	for _, m := range missing {
		table.Append([]string{m.Column, engine.FormatInt(m.Missing)})
	}
	table.Render()
}

func printCount(out io.Writer, label string, n int) {
	fmt.Fprintf(out, "\n%s: %d\n", label, n)
}

func printDone(out io.Writer) {
	color.New(color.FgGreen).Fprintf(out, "\n%s\n", CompletionMessage)
}
