package filings

import (
	"strings"
)

const archivesDataURL = "https://www.sec.gov/Archives/edgar/data"

// FilingURL returns link to index page of a filing. Dashes are removed from
// accession number, nothing else is validated.
func FilingURL(cik, accession string) string {
	return strings.Join([]string{
		archivesDataURL,
		DecimalCIK(cik),
		strings.ReplaceAll(accession, "-", ""),
		"index.html",
	}, "/")
}

type Link struct {
	Key string
	URL string
}
