package batch

import (
	"context"
	"fmt"

	"github.com/dsh2dsh/edgar-links/client"
	"github.com/dsh2dsh/edgar-links/internal/filings"
)

// Source returns filing history of a company, by normalized CIK.
type Source interface {
	Filings(ctx context.Context, cik string) ([]filings.Entry, error)
}

func NewEdgarSource(edgar *client.Client) *EdgarSource {
	return &EdgarSource{edgar: edgar}
}

// EdgarSource fetches recent filings from EDGAR submissions API.
type EdgarSource struct {
	edgar *client.Client
}

func (self *EdgarSource) Filings(ctx context.Context, cik string,
) ([]filings.Entry, error) {
	submissions, err := self.edgar.Submissions(ctx, cik)
	if err != nil {
		return nil, fmt.Errorf("filings of CIK%s: %w", cik, err)
	}

	recent := submissions.Filings.Recent.Filings()
	entries := make([]filings.Entry, len(recent))
	for i, filing := range recent {
		entries[i] = filings.Entry{
			Form:      filing.Form,
			Filed:     filing.FilingDate,
			Accession: filing.AccessionNumber,
			Items:     filing.Items,
		}
	}
	return entries, nil
}
