package batch

import (
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/dsh2dsh/edgar-links/internal/filings"
)

func newMemo() *memo {
	return &memo{fetched: make(map[string]fetched)}
}

// memo fetches filings of every CIK once per run, even if the CIK repeats in
// a batch and concurrent workers ask for it at the same time.
type memo struct {
	fetched map[string]fetched
	group   singleflight.Group
	mu      sync.RWMutex
}

type fetched struct {
	entries []filings.Entry
	err     error
}

func (self *memo) known(cik string) (f fetched, ok bool) {
	self.mu.RLock()
	defer self.mu.RUnlock()
	f, ok = self.fetched[cik]
	return
}

func (self *memo) Entries(cik string, fetch func() ([]filings.Entry, error),
) ([]filings.Entry, error) {
	if f, ok := self.known(cik); ok {
		return f.entries, f.err
	}

	v, _, _ := self.group.Do(cik, func() (interface{}, error) {
		if f, ok := self.known(cik); ok {
			return f, nil
		}
		entries, err := fetch()
		f := fetched{entries: entries, err: err}
		self.mu.Lock()
		defer self.mu.Unlock()
		self.fetched[cik] = f
		return f, nil
	})

	f := v.(fetched)
	return f.entries, f.err
}
