// Package sheet reads batches of companies from spreadsheets and writes
// reports back.
package sheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/dsh2dsh/edgar-links/internal/batch"
)

const (
	extCSV  = ".csv"
	extXLSX = ".xlsx"

	// Excel starts "CSV UTF-8" files with it.
	byteOrderMark = "\uFEFF"

	unknownValue  = "Unknown"
	manualEntry   = "Manual Entry"
	notApplicable = "N/A"
)

var (
	ErrNoCIKColumn       = errors.New("required column CIK not found")
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

// Input column names, matched case-insensitively against trimmed header.
const (
	inputCIK         = "CIK"
	inputCompanyName = "Company Name"
	inputIssuerId    = "Issuer id"
	inputAnalystName = "Analyst name"
)

// ManualCompanies returns a batch of companies entered by hand, without any
// details except CIK.
func ManualCompanies(ciks []string) []batch.Company {
	companies := make([]batch.Company, len(ciks))
	for i, cik := range ciks {
		companies[i] = batch.Company{
			CIK:         cik,
			Name:        manualEntry,
			IssuerId:    notApplicable,
			AnalystName: notApplicable,
		}
	}
	return companies
}

// ReadFile reads companies from .xlsx or .csv file.
func ReadFile(path string) ([]batch.Company, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != extCSV && ext != extXLSX {
		return nil, fmt.Errorf("read %q: %w", path, ErrUnsupportedFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read companies: %w", err)
	}
	defer f.Close()

	var companies []batch.Company
	if ext == extCSV {
		companies, err = ReadCSV(f)
	} else {
		companies, err = ReadXLSX(f)
	}
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}
	return companies, nil
}

func ReadCSV(r io.Reader) ([]batch.Company, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	return Companies(rows)
}

// ReadXLSX reads companies from the first sheet of a workbook.
func ReadXLSX(r io.Reader) ([]batch.Company, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook without sheets: %w", ErrNoCIKColumn)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("rows of sheet %q: %w", sheets[0], err)
	}
	return Companies(rows)
}

// Companies converts rows into companies. The first row is a header, it must
// have CIK column. Rows without any value are skipped.
func Companies(rows [][]string) ([]batch.Company, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty input: %w", ErrNoCIKColumn)
	}

	h := newHeader(rows[0])
	if h.cik < 0 {
		return nil, ErrNoCIKColumn
	}

	companies := make([]batch.Company, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if !blankRow(row) {
			companies = append(companies, h.company(row))
		}
	}
	return companies, nil
}

func blankRow(row []string) bool {
	for _, s := range row {
		if strings.TrimSpace(s) != "" {
			return false
		}
	}
	return true
}

// --------------------------------------------------

func newHeader(row []string) header {
	h := header{cik: -1, name: -1, issuerId: -1, analystName: -1}
	for i, s := range row {
		s = strings.TrimSpace(strings.TrimPrefix(s, byteOrderMark))
		switch {
		case strings.EqualFold(s, inputCIK):
			h.cik = first(h.cik, i)
		case strings.EqualFold(s, inputCompanyName):
			h.name = first(h.name, i)
		case strings.EqualFold(s, inputIssuerId):
			h.issuerId = first(h.issuerId, i)
		case strings.EqualFold(s, inputAnalystName):
			h.analystName = first(h.analystName, i)
		}
	}
	return h
}

func first(idx, i int) int {
	if idx < 0 {
		return i
	}
	return idx
}

// header keeps indexes of known columns, -1 if column is absent.
type header struct {
	cik         int
	name        int
	issuerId    int
	analystName int
}

func (self *header) company(row []string) batch.Company {
	return batch.Company{
		CIK:         cell(row, self.cik),
		Name:        cell(row, self.name),
		IssuerId:    cell(row, self.issuerId),
		AnalystName: cell(row, self.analystName),
	}
}

func cell(row []string, idx int) string {
	switch {
	case idx < 0:
		return unknownValue
	case idx < len(row):
		return strings.TrimSpace(row[idx])
	}
	return ""
}
