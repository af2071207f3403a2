package client

import (
	"context"
	"fmt"
	"net/url"
)

const submissionsURI = "CIK%s.json"

type Submissions struct {
	CIK     CIK      `json:"cik"`
	Name    string   `json:"name"`
	Tickers []string `json:"tickers"`
	Filings struct {
		Recent *FilingSet `json:"recent"`
	} `json:"filings"`
}

// FilingSet is a column oriented list of filings: every field is a parallel
// array, aligned by position.
type FilingSet struct {
	AccessionNumber []string `json:"accessionNumber"`
	FilingDate      []string `json:"filingDate"`
	Form            []string `json:"form"`
	Items           []string `json:"items"`
}

type Filing struct {
	Form            string
	FilingDate      string
	AccessionNumber string
	Items           string
}

func (self *FilingSet) validate() error {
	switch {
	case self == nil:
		return newSchemaError("filings.recent not found")
	case self.Form == nil:
		return newSchemaError("filings.recent.form not found")
	case self.AccessionNumber == nil:
		return newSchemaError("filings.recent.accessionNumber not found")
	}
	return nil
}

func (self *FilingSet) Len() int {
	return len(self.Form)
}

// Filing returns i-th filing of the set. Any array shorter than form gives an
// empty string at this position.
func (self *FilingSet) Filing(i int) Filing {
	return Filing{
		Form:            self.Form[i],
		FilingDate:      at(self.FilingDate, i),
		AccessionNumber: at(self.AccessionNumber, i),
		Items:           at(self.Items, i),
	}
}

func (self *FilingSet) Filings() []Filing {
	filings := make([]Filing, self.Len())
	for i := range filings {
		filings[i] = self.Filing(i)
	}
	return filings
}

func at(items []string, i int) string {
	if i < len(items) {
		return items[i]
	}
	return ""
}

// Submissions fetches filing history of a company. cik must be zero padded to
// 10 digits.
func (self *Client) Submissions(ctx context.Context, cik string,
) (submissions Submissions, err error) {
	u, err := self.submissionsURL(cik)
	if err != nil {
		return
	}

	if err = self.GetJSON(ctx, u, &submissions); err != nil {
		return
	} else if err = submissions.Filings.Recent.validate(); err != nil {
		err = fmt.Errorf("submissions of CIK%s: %w", cik, err)
	}
	return
}

func (self *Client) submissionsURL(cik string) (string, error) {
	u, err := url.JoinPath(self.DataBaseURL(), "submissions",
		fmt.Sprintf(submissionsURI, cik))
	if err != nil {
		return "", fmt.Errorf("join path of CIK%s: %w", cik, err)
	}
	return u, nil
}
