package filings

import (
	"slices"
	"strconv"
)

type Availability string

const (
	Available    Availability = "Yes"
	NotAvailable Availability = "No"
	NoCIKFound   Availability = "No CIK Found"
	Failed       Availability = "Error"
)

// FieldName returns name of n-th field of a group, counting from 1: the first
// field is named as the group itself, others get "_n" suffix.
func FieldName(key string, n int) string {
	if n <= 1 {
		return key
	}
	return key + "_" + strconv.Itoa(n)
}

type Field struct {
	Name  string
	Value string
}

func Aggregate(links []Link) *Groups {
	groups := NewGroups()
	for _, link := range links {
		groups.Add(link.Key, link.URL)
	}
	return groups
}

func NewGroups() *Groups {
	return &Groups{urls: make(map[string][]string)}
}

// Groups keeps URLs grouped by key. Both keys and URLs inside of every group
// are kept in order they were added.
type Groups struct {
	keys []string
	urls map[string][]string
}

func (self *Groups) Add(key, url string) {
	urls, ok := self.urls[key]
	if !ok {
		self.keys = append(self.keys, key)
	}
	self.urls[key] = append(urls, url)
}

func (self *Groups) Keys() []string {
	return slices.Clone(self.keys)
}

func (self *Groups) URLs(key string) []string {
	return slices.Clone(self.urls[key])
}

// Len returns number of groups.
func (self *Groups) Len() int {
	return len(self.keys)
}

func (self *Groups) Availability() Availability {
	if self.Len() > 0 {
		return Available
	}
	return NotAvailable
}

// Fields flattens groups: every group gives one field per URL.
func (self *Groups) Fields() []Field {
	fields := make([]Field, 0, len(self.keys))
	for _, key := range self.keys {
		for i, url := range self.urls[key] {
			fields = append(fields, Field{Name: FieldName(key, i+1), Value: url})
		}
	}
	return fields
}
