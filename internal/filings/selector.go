package filings

import (
	"slices"
	"strings"

	"github.com/dsh2dsh/edgar-links/internal/forms"
)

// Criteria selects filings of a company.
type Criteria struct {
	// Forms are form codes or category names, see forms.Classifier.Resolve.
	Forms []string
	Dates DateRange
	// Items are sub-item codes of current reports, like "5.07". Other reports
	// ignore them.
	Items []string
}

// GroupKey returns key of a current report filtered by sub-item code, like
// "8-K(5.07)".
func GroupKey(base, item string) string {
	return base + "(" + item + ")"
}

func NewSelector(classifier *forms.Classifier, criteria Criteria) *Selector {
	self := &Selector{
		classifier: classifier,
		bases:      make(map[string]struct{}),
		dates:      criteria.Dates,
	}

	for _, base := range classifier.Resolve(criteria.Forms) {
		self.bases[base] = struct{}{}
		self.order = append(self.order, base)
	}

	for _, item := range criteria.Items {
		item = strings.TrimSpace(item)
		if item != "" && !slices.Contains(self.items, item) {
			self.items = append(self.items, item)
		}
	}
	return self
}

// Selector filters, groups and links filings. It holds no mutable state and
// can be shared between goroutines.
type Selector struct {
	classifier *forms.Classifier

	bases map[string]struct{}
	order []string
	dates DateRange
	items []string
}

// Bases returns selected base labels.
func (self *Selector) Bases() []string {
	return slices.Clone(self.order)
}

func (self *Selector) Dates() DateRange {
	return self.dates
}

func (self *Selector) Items() []string {
	return slices.Clone(self.items)
}

// Keys returns group keys of a filing, or nil if the filing isn't selected.
// Current reports are filtered by sub-item codes if any requested: such
// filing goes into one group per matched code, in order of requested codes.
func (self *Selector) Keys(entry *Entry) []string {
	base := self.classifier.Base(entry.Form)
	if _, ok := self.bases[base]; !ok {
		return nil
	} else if !self.filterItems(base) {
		return []string{base}
	}

	items := ParseItems(entry.Items)
	var keys []string
	for _, item := range self.items {
		if slices.Contains(items, item) {
			keys = append(keys, GroupKey(base, item))
		}
	}
	return keys
}

func (self *Selector) filterItems(base string) bool {
	return len(self.items) > 0 && base == self.classifier.Current()
}

// Links returns links of selected filings, in order of entries.
func (self *Selector) Links(cik string, entries []Entry) []Link {
	var links []Link
	for _, entry := range FilterByDate(entries, self.dates) {
		keys := self.Keys(&entry)
		if len(keys) == 0 {
			continue
		}
		url := FilingURL(cik, entry.Accession)
		for _, key := range keys {
			links = append(links, Link{Key: key, URL: url})
		}
	}
	return links
}

// Select groups links of selected filings.
func (self *Selector) Select(cik string, entries []Entry) *Groups {
	return Aggregate(self.Links(cik, entries))
}
