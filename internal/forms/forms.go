// Package forms classifies EDGAR form codes into categories and base labels.
//
// A base label collapses amendments and variants of the same report, like
// 10-K and 10-K/A. The table is loaded once and never changes afterwards, so
// a Classifier is safe for concurrent use.
package forms

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed forms.yaml
var defaultTable []byte

// Default returns the classifier of the embedded table.
var Default = sync.OnceValue(func() *Classifier {
	c, err := Load(bytes.NewReader(defaultTable))
	if err != nil {
		panic(fmt.Sprintf("embedded forms table: %v", err))
	}
	return c
})

type Table struct {
	Current    string     `yaml:"current"`
	Categories []Category `yaml:"categories"`
}

type Category struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Groups      []Group `yaml:"groups"`
}

type Group struct {
	Base  string   `yaml:"base"`
	Forms []string `yaml:"forms"`
}

func (self *Category) Bases() []string {
	bases := make([]string, len(self.Groups))
	for i := range self.Groups {
		bases[i] = self.Groups[i].Base
	}
	return bases
}

// Form is a classified form code. Category is empty for unknown codes.
type Form struct {
	Code     string
	Category string
	Base     string
}

func Load(r io.Reader) (*Classifier, error) {
	var table Table
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&table); err != nil {
		return nil, fmt.Errorf("decode forms table: %w", err)
	}
	return New(table)
}

func LoadFile(path string) (*Classifier, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open forms table: %w", err)
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", path, err)
	}
	return c, nil
}

func New(table Table) (*Classifier, error) {
	c := &Classifier{
		table:      table,
		forms:      make(map[string]Form),
		bases:      make(map[string]string),
		categories: make(map[string]int, len(table.Categories)),
	}
	if err := c.index(); err != nil {
		return nil, err
	}
	return c, nil
}

type Classifier struct {
	table Table

	forms      map[string]Form
	bases      map[string]string
	categories map[string]int
}

func (self *Classifier) index() error {
	for i := range self.table.Categories {
		category := &self.table.Categories[i]
		if category.Name == "" {
			return fmt.Errorf("category #%d without name", i+1)
		}
		key := strings.ToLower(category.Name)
		if _, ok := self.categories[key]; ok {
			return fmt.Errorf("duplicate category %q", category.Name)
		}
		self.categories[key] = i
		if err := self.indexGroups(category); err != nil {
			return fmt.Errorf("category %q: %w", category.Name, err)
		}
	}

	if self.table.Current == "" {
		return errors.New("current report base label is empty")
	} else if _, ok := self.bases[self.table.Current]; !ok {
		return fmt.Errorf("current report base label %q not found",
			self.table.Current)
	}
	return nil
}

func (self *Classifier) indexGroups(category *Category) error {
	for _, group := range category.Groups {
		if group.Base == "" {
			return errors.New("group without base label")
		} else if _, ok := self.bases[group.Base]; ok {
			return fmt.Errorf("duplicate base label %q", group.Base)
		}
		self.bases[group.Base] = category.Name

		for _, code := range group.Forms {
			if form, ok := self.forms[code]; ok {
				return fmt.Errorf("form %q of %q already classified as %q",
					code, group.Base, form.Base)
			}
			self.forms[code] = Form{
				Code:     code,
				Category: category.Name,
				Base:     group.Base,
			}
		}
	}
	return nil
}

// Classify looks up the exact form code. Unknown codes are returned as their
// own base label with ok == false.
func (self *Classifier) Classify(code string) (form Form, ok bool) {
	if form, ok = self.forms[code]; ok {
		return
	}
	return Form{Code: code, Base: code}, false
}

func (self *Classifier) Base(code string) string {
	form, _ := self.Classify(code)
	return form.Base
}

// Current returns base label of current reports, the only one filtered by
// sub-item codes.
func (self *Classifier) Current() string {
	return self.table.Current
}

func (self *Classifier) Categories() []Category {
	return slices.Clone(self.table.Categories)
}

// Category looks up a category by case-insensitive name.
func (self *Classifier) Category(name string) (Category, bool) {
	if i, ok := self.categories[strings.ToLower(name)]; ok {
		return self.table.Categories[i], true
	}
	return Category{}, false
}

// Resolve converts selection terms into base labels. A term is either a
// category name, which selects all of its base labels, or a form code, which
// selects its own base label. Order of first appearance is kept, duplicates
// are dropped.
func (self *Classifier) Resolve(terms []string) []string {
	bases := make([]string, 0, len(terms))
	seen := make(map[string]struct{}, len(terms))
	add := func(base string) {
		if _, ok := seen[base]; !ok {
			seen[base] = struct{}{}
			bases = append(bases, base)
		}
	}

	for _, term := range terms {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		} else if category, ok := self.Category(term); ok {
			for _, base := range category.Bases() {
				add(base)
			}
		} else {
			add(self.Base(term))
		}
	}
	return bases
}
