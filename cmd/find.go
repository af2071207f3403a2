package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dsh2dsh/edgar-links/cmd/internal/common"
	"github.com/dsh2dsh/edgar-links/internal/batch"
	"github.com/dsh2dsh/edgar-links/internal/filings"
	"github.com/dsh2dsh/edgar-links/internal/forms"
	"github.com/dsh2dsh/edgar-links/internal/sheet"
)

var (
	ErrNoCompanies = errors.New("no companies: use --input or --cik")
	ErrDateRange   = errors.New("--from is after --to")
)

var (
	findOpts findOptions

	findCmd = cobra.Command{
		Use:   "find",
		Short: "Find filings of companies and save links to them",
		Example: `
  - Find all 8-K filed in 2024 with sub-item 5.07 for companies from xlsx:

    $ edgar-links find -i companies.xlsx --year 2024 --items 5.07

  - Find annual reports and proxy statements of Apple, print csv:

    $ edgar-links find --cik 320193 -f 10-K -f Proxy -o -`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := common.ParseConfig()
			cobra.CheckErr(err)
			source := batch.NewEdgarSource(cfg.NewClient())
			cobra.CheckErr(findOpts.Find(cmd.Context(), source, cfg.ProcsLimit(),
				cmd.OutOrStdout()))
		},
	}
)

func init() {
	rootCmd.AddCommand(&findCmd)

	flags := findCmd.Flags()
	flags.StringVarP(&findOpts.Input, "input", "i", "",
		"read companies from .xlsx or .csv file with CIK column")
	flags.StringSliceVar(&findOpts.CIKs, "cik", nil,
		"CIK of a company entered manually, can be repeated")
	flags.StringVarP(&findOpts.Output, "output", "o", sheet.DefaultOutput,
		"save results into .xlsx or .csv file, \"-\" prints csv")
	flags.StringSliceVarP(&findOpts.Forms, "forms", "f", nil,
		"form codes or categories to find (default current reports)")
	flags.StringVar(&findOpts.From, "from", "",
		"find filings filed since this date (YYYY-MM-DD)")
	flags.StringVar(&findOpts.To, "to", "",
		"find filings filed until this date (YYYY-MM-DD)")
	flags.IntVar(&findOpts.Year, "year", 0,
		"find filings filed in this year")
	flags.StringSliceVar(&findOpts.Items, "items", nil,
		"sub-item codes of current reports, like 5.07")
}

type findOptions struct {
	Input  string
	CIKs   []string
	Output string
	Forms  []string
	From   string
	To     string
	Year   int
	Items  []string
}

func (self *findOptions) Companies() ([]batch.Company, error) {
	var companies []batch.Company
	if self.Input != "" {
		c, err := sheet.ReadFile(self.Input)
		if err != nil {
			return nil, fmt.Errorf("read companies: %w", err)
		}
		companies = c
	}

	companies = append(companies, sheet.ManualCompanies(self.CIKs)...)
	if len(companies) == 0 {
		return nil, ErrNoCompanies
	}
	return companies, nil
}

func (self *findOptions) Dates() (r filings.DateRange, err error) {
	if self.Year != 0 {
		r = filings.YearRange(self.Year)
	}

	if self.From != "" {
		if r.Start, err = filings.ParseDate(self.From); err != nil {
			return r, fmt.Errorf("--from: %w", err)
		}
	}

	if self.To != "" {
		if r.End, err = filings.ParseDate(self.To); err != nil {
			return r, fmt.Errorf("--to: %w", err)
		}
	}

	if !r.Start.IsZero() && !r.End.IsZero() && r.Start.After(r.End) {
		return r, fmt.Errorf("%w: %v", ErrDateRange, r)
	}
	return r, nil
}

func (self *findOptions) Criteria(classifier *forms.Classifier,
) (criteria filings.Criteria, err error) {
	criteria.Forms = self.Forms
	if len(criteria.Forms) == 0 {
		criteria.Forms = []string{classifier.Current()}
	}

	if criteria.Dates, err = self.Dates(); err != nil {
		return
	}
	criteria.Items = self.Items
	return
}

// Find processes companies and saves report. Input problems stop it before
// any request to source.
func (self *findOptions) Find(ctx context.Context, source batch.Source,
	procs int, stdout io.Writer,
) error {
	classifier, err := newClassifier()
	if err != nil {
		return err
	}

	criteria, err := self.Criteria(classifier)
	if err != nil {
		return err
	}

	companies, err := self.Companies()
	if err != nil {
		return err
	}

	selector := filings.NewSelector(classifier, criteria)
	slog.Info("find filings", slog.Int("companies", len(companies)),
		slog.Any("forms", selector.Bases()),
		slog.String("dates", selector.Dates().String()),
		slog.Any("items", selector.Items()),
		slog.Int("procs", procs))

	records := batch.NewProcessor(source, selector).
		WithLogger(slog.Default()).WithProcsLimit(procs).
		Process(ctx, companies)

	report := sheet.NewReport(records)
	if err := report.Save(self.Output, stdout); err != nil {
		return err //nolint:wrapcheck // already wrapped by Save
	}

	logSummary(records, self.Output, report.Digest())
	return nil
}

func logSummary(records []batch.Record, output string, digest uint64) {
	counts := make(map[filings.Availability]int, 4)
	for i := range records {
		counts[records[i].Availability()]++
	}

	slog.Info("all done", slog.String("output", outputName(output)),
		slog.Int("companies", len(records)),
		slog.Int("available", counts[filings.Available]),
		slog.Int("not available", counts[filings.NotAvailable]),
		slog.Int("without CIK", counts[filings.NoCIKFound]),
		slog.Int("failed", counts[filings.Failed]),
		slog.String("digest", fmt.Sprintf("%016x", digest)))
}

func outputName(output string) string {
	if output == sheet.Stdout {
		return os.Stdout.Name()
	}
	return output
}
