package filings

import (
	"fmt"
	"strings"
	"time"
)

// Entry is one filing of a company, as reported by EDGAR.
type Entry struct {
	Form      string
	Filed     string
	Accession string
	Items     string
}

// ParseItems splits comma separated sub-item codes, like "5.02,9.01".
func ParseItems(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	fields := strings.Split(s, ",")
	items := fields[:0]
	for _, item := range fields {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// --------------------------------------------------

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
	if err != nil {
		return t, fmt.Errorf("failed parse %q as date: %w", s, err)
	}
	return t, nil
}

// DateRange is an inclusive range of dates. Zero Start or End means the range
// is open from that side.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// YearRange returns range of all days of year.
func YearRange(year int) DateRange {
	return DateRange{
		Start: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
}

func (self DateRange) IsZero() bool {
	return self.Start.IsZero() && self.End.IsZero()
}

// Contains reports whether filed date is inside of range. Unparseable date is
// never inside, even of an open range.
func (self DateRange) Contains(filed string) bool {
	t, err := ParseDate(filed)
	if err != nil {
		return false
	}

	if !self.Start.IsZero() && t.Before(self.Start) {
		return false
	} else if !self.End.IsZero() && t.After(self.End) {
		return false
	}
	return true
}

func (self DateRange) String() string {
	format := func(t time.Time) string {
		if t.IsZero() {
			return "*"
		}
		return t.Format(time.DateOnly)
	}
	return "[" + format(self.Start) + ", " + format(self.End) + "]"
}

// FilterByDate returns entries inside of range, keeping their order. Entries
// with unparseable date are dropped.
func FilterByDate(entries []Entry, r DateRange) []Entry {
	filtered := make([]Entry, 0, len(entries))
	for i := range entries {
		if r.Contains(entries[i].Filed) {
			filtered = append(filtered, entries[i])
		}
	}
	return filtered
}
