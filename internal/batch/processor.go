// Package batch runs filing selection for a list of companies.
//
// Companies are processed by a bounded pool of workers. Every company is a
// separate failure domain: a failed fetch gives a record with Failure set,
// and never cancels other companies. Records are returned in input order.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dsh2dsh/edgar-links/internal/filings"
)

const progressInterval = time.Second

func NewProcessor(source Source, selector *filings.Selector) *Processor {
	return &Processor{
		source:   source,
		selector: selector,
		logger:   slog.Default(),
		procs:    1,
	}
}

type Processor struct {
	source   Source
	selector *filings.Selector
	logger   *slog.Logger

	procs int
}

func (self *Processor) WithProcsLimit(n int) *Processor {
	self.procs = n
	return self
}

func (self *Processor) WithLogger(l *slog.Logger) *Processor {
	self.logger = l
	return self
}

func (self *Processor) log(ctx context.Context) *slog.Logger {
	return ContextLogger(ctx, self.logger)
}

// Process returns one record per company, in the same order.
func (self *Processor) Process(ctx context.Context, companies []Company,
) []Record {
	records := make([]Record, len(companies))
	if len(companies) == 0 {
		return records
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var progress atomic.Uint32
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		self.logProgress(ctx, &progress, len(companies))
	}()

	self.processCompanies(ctx, companies, records, &progress)
	cancel()
	wg.Wait()
	return records
}

func (self *Processor) processCompanies(ctx context.Context,
	companies []Company, records []Record, progress *atomic.Uint32,
) {
	var g errgroup.Group
	g.SetLimit(max(self.procs, 1))
	known := newMemo()

	for i := range companies {
		company := &companies[i]
		if err := ctx.Err(); err != nil {
			records[i] = Record{Company: *company}
			records[i].fail(fmt.Errorf("skip company: %w", err))
			continue
		}
		l := self.log(ctx).With(
			slog.String("progress", fmt.Sprintf("%v/%v", i+1, len(companies))),
			slog.String("CIK", company.CIK))
		g.Go(func() error {
			records[i] = self.processCompany(ContextWithLogger(ctx, l), known,
				company)
			progress.Add(1)
			return nil
		})
	}
	_ = g.Wait()
}

func (self *Processor) logProgress(ctx context.Context,
	progress *atomic.Uint32, total int,
) {
	tick := time.NewTicker(progressInterval)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			self.log(ctx).Info("looking for filings",
				slog.String("progress",
					fmt.Sprintf("%v/%v", progress.Load(), total)))
		}
	}
}

func (self *Processor) processCompany(ctx context.Context, known *memo,
	company *Company,
) (r Record) {
	r.Company = *company

	cik, err := filings.NormalizeCIK(company.CIK)
	if err != nil {
		self.log(ctx).Warn("skip company", slog.String("name", company.Name),
			slog.String("err", err.Error()))
		r.fail(err)
		return
	}
	r.CIK = cik

	entries, err := known.Entries(cik, func() ([]filings.Entry, error) {
		self.log(ctx).Debug("fetch filings")
		//nolint:wrapcheck // wrapped by Source
		return self.source.Filings(ctx, cik)
	})
	if err != nil {
		r.fail(err)
		self.log(ctx).Warn("failed fetch filings",
			slog.String("failure", r.Failure.String()),
			slog.String("err", err.Error()))
		return
	}

	r.Groups = self.selector.Select(cik, entries)
	self.log(ctx).Info("got filings", slog.Int("filings", len(entries)),
		slog.Int("groups", r.Groups.Len()),
		slog.String("available", string(r.Availability())))
	self.log(ctx).Debug("record digest",
		slog.String("digest", fmt.Sprintf("%016x", r.Digest())))
	return
}
