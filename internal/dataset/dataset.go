// Package dataset loads CSV files into plottable columns.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

var (
	// ErrNoData is returned for files that have a header but no rows.
	ErrNoData = errors.New("no data rows")
	// ErrUnknownColumn is returned when a column name is not in the header.
	ErrUnknownColumn = errors.New("unknown column")
)

// Column is one CSV column with its numeric view.
//
// Numeric columns hold parsed values, empty cells become NaN. Any other
// column is categorical: each value maps to the index of its first
// appearance.
type Column struct {
	Name        string
	Raw         []string
	Values      []float64
	Categorical bool
	Categories  []string
}

// Table is a loaded CSV file.
type Table struct {
	Path    string
	Columns []Column
	Rows    int
}

// Names returns the column names in header order.
func (t Table) Names() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Index returns the position of the first column called name, or -1.
func (t Table) Index(name string) int {
	for i, c := range t.Columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// Column looks up a column by name.
func (t Table) Column(name string) (Column, error) {
	i := t.Index(name)
	if i < 0 {
		return Column{}, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	return t.Columns[i], nil
}

// XValues is the implicit x-axis: 1..Rows.
func (t Table) XValues() []float64 {
	xs := make([]float64, t.Rows)
	for i := range xs {
		xs[i] = float64(i + 1)
	}
	return xs
}

// Loader reads tables from a location.
type Loader interface {
	Load(path string) (Table, error)
	Header(path string) ([]string, error)
}

type csvLoader struct{}

// NewLoader returns a Loader for comma separated files with a header row.
func NewLoader() Loader {
	return csvLoader{}
}

// Load reads path and fails with ErrNoData when it has no rows.
func (csvLoader) Load(path string) (Table, error) {
	t, err := readFile(path)
	if err != nil {
		return Table{}, err
	}
	if t.Rows == 0 {
		return Table{}, fmt.Errorf("loading %s: %w", path, ErrNoData)
	}
	return t, nil
}

// Header returns only the column names of path.
func (csvLoader) Header(path string) ([]string, error) {
	t, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return t.Names(), nil
}

func readFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	t, err := Read(f)
	if err != nil {
		return Table{}, fmt.Errorf("reading %s: %w", path, err)
	}
	t.Path = path
	return t, nil
}

// Read parses CSV from r. Every cell is loaded as a string and converted
// per column afterwards. Column names are kept exactly as written in the
// header, duplicates and empty names included.
func Read(r io.Reader) (Table, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("parsing csv: %w", err)
	}
	if len(records) == 0 {
		return Table{}, fmt.Errorf("parsing csv: missing header")
	}
	header := records[0]

	// gota rejects a frame without rows.
	rows := [][]string{}
	if len(records) > 1 {
		df := dataframe.LoadRecords(records,
			dataframe.HasHeader(true),
			dataframe.DetectTypes(false),
			dataframe.DefaultType(series.String),
			dataframe.NaNValues([]string{}),
		)
		if df.Err != nil {
			return Table{}, fmt.Errorf("parsing csv: %w", df.Err)
		}
		// gota renames duplicate and empty names, so only its rows are used.
		rows = df.Records()[1:]
	}

	t := Table{
		Columns: make([]Column, len(header)),
		Rows:    len(rows),
	}
	for i, name := range header {
		raw := make([]string, len(rows))
		for r, row := range rows {
			raw[r] = row[i]
		}
		t.Columns[i] = newColumn(name, raw)
	}
	return t, nil
}

func newColumn(name string, raw []string) Column {
	c := Column{Name: name, Raw: raw}
	if values, ok := parseNumeric(raw); ok {
		c.Values = values
		return c
	}

	c.Categorical = true
	c.Values = make([]float64, len(raw))
	index := make(map[string]int)
	for i, v := range raw {
		idx, seen := index[v]
		if !seen {
			idx = len(c.Categories)
			index[v] = idx
			c.Categories = append(c.Categories, v)
		}
		c.Values[i] = float64(idx)
	}
	return c
}

// parseNumeric succeeds when every non-empty cell is a number and at least
// one cell is non-empty.
func parseNumeric(raw []string) ([]float64, bool) {
	values := make([]float64, len(raw))
	found := false
	for i, v := range raw {
		v = strings.TrimSpace(v)
		if v == "" {
			values[i] = math.NaN()
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, false
		}
		values[i] = f
		found = true
	}
	return values, found
}
