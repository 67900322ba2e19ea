package helpers

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/spektr-org/gradreport/engine"
	"github.com/spektr-org/gradreport/schema"
)

// ============================================================================
// CSV HELPER — Loads a delimited file into an engine.RecordView
// ============================================================================
// The file is read as a gota DataFrame with every column kept as a string,
// then flattened into engine.Records. Headers are trimmed and lower-cased.
// NA cells are left out of Record.Dimensions so the engine sees them as
// missing. Present values are stored exactly as read.
// ============================================================================

// NAValues are the cell values treated as missing.
var NAValues = []string{
	"", "NA", "N/A", "n/a", "NaN", "nan", "-NaN", "null", "NULL",
	"None", "<NA>", "#N/A", "<nil>",
}

// Table is a loaded dataset.
type Table struct {
	Name    string
	Path    string
	Columns []string // normalized, header order
	View    engine.RecordView
}

// Shape returns (rows, columns).
func (t *Table) Shape() (int, int) {
	return t.View.Len(), len(t.Columns)
}

// LoadCSVFile reads the file at path. When sch declares dimensions, they
// must all be present after header normalization.
func LoadCSVFile(path string, sch schema.Config) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s (%s): %w", sch.Name, path, err)
	}

	table, err := ParseCSV(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	table.Name = sch.Name
	table.Path = path

	if err := sch.Require(table.Columns); err != nil {
		return nil, err
	}
	return table, nil
}

// ParseCSV parses CSV data with a header row into a Table.
func ParseCSV(r io.Reader) (*Table, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(NAValues),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", df.Err)
	}

	headers := df.Names()
	keys := make([]string, len(headers))
	for i, h := range headers {
		keys[i] = schema.NormalizeKey(h)
	}

	nrow := df.Nrow()
	records := make([]engine.Record, nrow)
	for i := range records {
		records[i] = engine.Record{Dimensions: make(map[string]string, len(keys))}
	}

	for c, h := range headers {
		col := df.Col(h)
		vals := col.Records()
		na := col.IsNaN()
		for i := 0; i < nrow; i++ {
			if na[i] {
				continue
			}
			records[i].Dimensions[keys[c]] = vals[i]
		}
	}

	return &Table{
		Columns: keys,
		View:    engine.NewSliceViewWithKeys(records, keys),
	}, nil
}
