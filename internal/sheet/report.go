package sheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/xuri/excelize/v2"

	"github.com/dsh2dsh/edgar-links/internal/batch"
	"github.com/dsh2dsh/edgar-links/internal/filings"
)

const (
	DefaultOutput = "Form_Results.xlsx"
	Stdout        = "-"

	reportSheet = "Results"
)

// NewReport builds table of records. Columns are identity columns, followed
// by link columns of every group key, in order keys were seen first across
// the batch. Every key gets as many columns as the largest group of it has.
func NewReport(records []batch.Record) *Report {
	r := &Report{
		header: newColumns(records),
		rows:   make([][]string, len(records)),
	}

	for i := range records {
		r.rows[i] = r.row(&records[i])
	}
	return r
}

func newColumns(records []batch.Record) []string {
	var keys []string
	sizes := map[string]int{}
	for i := range records {
		groups := records[i].Groups
		if groups == nil || records[i].Failure != batch.FailureNone {
			continue
		}
		for _, key := range groups.Keys() {
			size, ok := sizes[key]
			if !ok {
				keys = append(keys, key)
			}
			sizes[key] = max(size, len(groups.URLs(key)))
		}
	}

	columns := slices.Clone(batch.IdentityColumns[:])
	for _, key := range keys {
		for n := 1; n <= sizes[key]; n++ {
			columns = append(columns, filings.FieldName(key, n))
		}
	}
	return columns
}

// Report is a table with one row per record, in order of records.
type Report struct {
	header []string
	rows   [][]string
}

func (self *Report) row(record *batch.Record) []string {
	values := make(map[string]string, len(self.header))
	for _, field := range record.Fields() {
		values[field.Name] = field.Value
	}

	row := make([]string, len(self.header))
	for i, name := range self.header {
		row[i] = values[name]
	}
	return row
}

func (self *Report) Header() []string {
	return slices.Clone(self.header)
}

func (self *Report) Rows() [][]string {
	rows := make([][]string, len(self.rows))
	for i, row := range self.rows {
		rows[i] = slices.Clone(row)
	}
	return rows
}

// Digest returns hash of header and rows. Reports of the same batch over the
// same filings have equal digests.
func (self *Report) Digest() uint64 {
	h := xxhash.New()
	writeLine := func(values []string) {
		for _, s := range values {
			_, _ = h.WriteString(s)
			_, _ = h.Write([]byte{0})
		}
		_, _ = h.Write([]byte{'\n'})
	}

	writeLine(self.header)
	for _, row := range self.rows {
		writeLine(row)
	}
	return h.Sum64()
}

func (self *Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(self.header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	if err := cw.WriteAll(self.rows); err != nil {
		return fmt.Errorf("write csv rows: %w", err)
	}
	return nil
}

func (self *Report) WriteXLSX(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), reportSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err := self.setRow(f, 1, self.header); err != nil {
		return err
	}
	for i, row := range self.rows {
		if err := self.setRow(f, i+2, row); err != nil {
			return err
		}
		if err := self.setLinks(f, i+2, row); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func (self *Report) setRow(f *excelize.File, n int, values []string) error {
	axis, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		return fmt.Errorf("row %v: %w", n, err)
	}
	if err := f.SetSheetRow(reportSheet, axis, &values); err != nil {
		return fmt.Errorf("set row %v: %w", n, err)
	}
	return nil
}

func (self *Report) setLinks(f *excelize.File, n int, values []string) error {
	for i := len(batch.IdentityColumns); i < len(values); i++ {
		if values[i] == "" {
			continue
		}
		axis, err := excelize.CoordinatesToCellName(i+1, n)
		if err != nil {
			return fmt.Errorf("cell %v of row %v: %w", i+1, n, err)
		}
		err = f.SetCellHyperLink(reportSheet, axis, values[i], "External")
		if err != nil {
			return fmt.Errorf("link %q of row %v: %w", values[i], n, err)
		}
	}
	return nil
}

// Save writes report into path, formatted by its extension. Path "-" means
// csv into stdout.
func (self *Report) Save(path string, stdout io.Writer) error {
	if path == Stdout {
		return self.WriteCSV(stdout)
	}

	var write func(w io.Writer) error
	switch strings.ToLower(filepath.Ext(path)) {
	case extCSV:
		write = self.WriteCSV
	case extXLSX:
		write = self.WriteXLSX
	default:
		return fmt.Errorf("save %q: %w", path, ErrUnsupportedFormat)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save report: %w", err)
	}

	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("save %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %q: %w", path, err)
	}
	return nil
}
