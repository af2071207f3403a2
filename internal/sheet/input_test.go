package sheet

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/dsh2dsh/edgar-links/internal/batch"
)

func TestManualCompanies(t *testing.T) {
	assert.Equal(t, []batch.Company{
		{CIK: "320193", Name: "Manual Entry", IssuerId: "N/A", AnalystName: "N/A"},
		{CIK: "789019", Name: "Manual Entry", IssuerId: "N/A", AnalystName: "N/A"},
	}, ManualCompanies([]string{"320193", "789019"}))
	assert.Empty(t, ManualCompanies(nil))
}

func TestCompanies(t *testing.T) {
	tests := []struct {
		name    string
		rows    [][]string
		want    []batch.Company
		errorIs error
	}{
		{
			name: "all columns",
			rows: [][]string{
				{" CIK ", "Company Name", "Issuer id", "Analyst name"},
				{"320193", "Apple Inc.", "AAPL-1", "J. Doe"},
				{" 789019", "Microsoft", "MSFT-1", "R. Roe "},
			},
			want: []batch.Company{
				{CIK: "320193", Name: "Apple Inc.", IssuerId: "AAPL-1", AnalystName: "J. Doe"},
				{CIK: "789019", Name: "Microsoft", IssuerId: "MSFT-1", AnalystName: "R. Roe"},
			},
		},
		{
			name: "case insensitive and reordered",
			rows: [][]string{
				{"analyst NAME", "cik", "Extra", "COMPANY NAME", "Issuer ID"},
				{"J. Doe", "320193", "x", "Apple Inc.", "AAPL-1"},
			},
			want: []batch.Company{
				{CIK: "320193", Name: "Apple Inc.", IssuerId: "AAPL-1", AnalystName: "J. Doe"},
			},
		},
		{
			name: "only CIK",
			rows: [][]string{{"CIK"}, {"320193"}},
			want: []batch.Company{
				{CIK: "320193", Name: "Unknown", IssuerId: "Unknown", AnalystName: "Unknown"},
			},
		},
		{
			name: "byte order mark",
			rows: [][]string{
				{"\uFEFFCIK", "Company Name"},
				{"320193", "Apple Inc."},
			},
			want: []batch.Company{
				{CIK: "320193", Name: "Apple Inc.", IssuerId: "Unknown", AnalystName: "Unknown"},
			},
		},
		{
			name: "short and blank rows",
			rows: [][]string{
				{"Company Name", "CIK", "Issuer id", "Analyst name"},
				{"Apple Inc."},
				{},
				{" ", "", " "},
				{"", "", "", "J. Doe"},
			},
			want: []batch.Company{
				{Name: "Apple Inc."},
				{AnalystName: "J. Doe"},
			},
		},
		{
			name: "only header",
			rows: [][]string{{"CIK", "Company Name"}},
			want: []batch.Company{},
		},
		{
			name:    "without CIK column",
			rows:    [][]string{{"Company Name"}, {"Apple Inc."}},
			errorIs: ErrNoCIKColumn,
		},
		{
			name:    "empty",
			errorIs: ErrNoCIKColumn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			companies, err := Companies(tt.rows)
			if tt.errorIs != nil {
				require.ErrorIs(t, err, tt.errorIs)
				assert.Nil(t, companies)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, companies)
		})
	}
}

func TestReadCSV(t *testing.T) {
	companies, err := ReadCSV(strings.NewReader(
		"CIK,Company Name,Issuer id,Analyst name\n" +
			"320193,\"Apple, Inc.\",AAPL-1,J. Doe\n" +
			",,,\n" +
			"0000789019,Microsoft\n"))
	require.NoError(t, err)
	assert.Equal(t, []batch.Company{
		{CIK: "320193", Name: "Apple, Inc.", IssuerId: "AAPL-1", AnalystName: "J. Doe"},
		{CIK: "0000789019", Name: "Microsoft"},
	}, companies)

	companies, err = ReadCSV(strings.NewReader(
		"\uFEFFCIK,Company Name\r\n320193,Apple\r\n"))
	require.NoError(t, err)
	assert.Equal(t, []batch.Company{
		{CIK: "320193", Name: "Apple", IssuerId: "Unknown", AnalystName: "Unknown"},
	}, companies)

	_, err = ReadCSV(strings.NewReader("CIK,\"Company Name\n320193"))
	require.Error(t, err)
}

func newTestWorkbook(t *testing.T, rows [][]string) []byte {
	f := excelize.NewFile()
	t.Cleanup(func() { f.Close() })
	sheet := f.GetSheetName(0)
	for i := range rows {
		axis, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, axis, &rows[i]))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func TestReadXLSX(t *testing.T) {
	b := newTestWorkbook(t, [][]string{
		{"CIK", "Company Name", "Issuer id"},
		{"320193", "Apple Inc.", "AAPL-1"},
		{},
		{"1234567", "Example Corp"},
	})

	companies, err := ReadXLSX(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, []batch.Company{
		{CIK: "320193", Name: "Apple Inc.", IssuerId: "AAPL-1", AnalystName: "Unknown"},
		{CIK: "1234567", Name: "Example Corp", AnalystName: "Unknown"},
	}, companies)

	b = newTestWorkbook(t, [][]string{{"Company Name"}, {"Apple Inc."}})
	_, err = ReadXLSX(bytes.NewReader(b))
	require.ErrorIs(t, err, ErrNoCIKColumn)

	_, err = ReadXLSX(strings.NewReader("not a workbook"))
	require.Error(t, err)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "companies.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("CIK\n320193\n"), 0o600))
	companies, err := ReadFile(csvPath)
	require.NoError(t, err)
	assert.Equal(t, []batch.Company{
		{CIK: "320193", Name: "Unknown", IssuerId: "Unknown", AnalystName: "Unknown"},
	}, companies)

	xlsxPath := filepath.Join(dir, "Companies.XLSX")
	require.NoError(t, os.WriteFile(xlsxPath,
		newTestWorkbook(t, [][]string{{"CIK"}, {"320193"}}), 0o600))
	companies, err = ReadFile(xlsxPath)
	require.NoError(t, err)
	assert.Len(t, companies, 1)

	_, err = ReadFile(filepath.Join(dir, "companies.txt"))
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = ReadFile(filepath.Join(dir, "not-exists.csv"))
	require.ErrorIs(t, err, os.ErrNotExist)

	badPath := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(badPath, []byte("Name\nApple\n"), 0o600))
	_, err = ReadFile(badPath)
	require.ErrorIs(t, err, ErrNoCIKColumn)
}
