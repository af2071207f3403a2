package forms

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.NotNil(t, c)
	assert.Same(t, c, Default())
	assert.Equal(t, "8-K", c.Current())

	var names []string
	for _, category := range c.Categories() {
		names = append(names, category.Name)
	}
	assert.Equal(t, []string{
		"Periodic", "Current", "Proxy", "Ownership", "Registration",
	}, names)
}

func TestClassifier_Classify(t *testing.T) {
	tests := []struct {
		code  string
		want  Form
		known bool
	}{
		{
			code:  "10-K",
			want:  Form{Code: "10-K", Category: "Periodic", Base: "10-K"},
			known: true,
		},
		{
			code:  "10-K/A",
			want:  Form{Code: "10-K/A", Category: "Periodic", Base: "10-K"},
			known: true,
		},
		{
			code:  "8-K/A",
			want:  Form{Code: "8-K/A", Category: "Current", Base: "8-K"},
			known: true,
		},
		{
			code:  "DEF 14A",
			want:  Form{Code: "DEF 14A", Category: "Proxy", Base: "Proxy"},
			known: true,
		},
		{
			code:  "4",
			want:  Form{Code: "4", Category: "Ownership", Base: "Ownership"},
			known: true,
		},
		{
			code: "NT 10-K",
			want: Form{Code: "NT 10-K", Base: "NT 10-K"},
		},
		{
			code: "10-k",
			want: Form{Code: "10-k", Base: "10-k"},
		},
	}

	c := Default()
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			form, ok := c.Classify(tt.code)
			assert.Equal(t, tt.known, ok)
			assert.Equal(t, tt.want, form)
			assert.Equal(t, tt.want.Base, c.Base(tt.code))
		})
	}
}

func TestClassifier_Category(t *testing.T) {
	c := Default()
	category, ok := c.Category("current")
	require.True(t, ok)
	assert.Equal(t, "Current", category.Name)
	assert.Equal(t, []string{"8-K", "6-K"}, category.Bases())

	_, ok = c.Category("8-K")
	assert.False(t, ok)
}

func TestClassifier_Categories_clone(t *testing.T) {
	c := Default()
	categories := c.Categories()
	categories[0].Name = "foobar"
	assert.Equal(t, "Periodic", c.Categories()[0].Name)
}

func TestClassifier_Resolve(t *testing.T) {
	tests := []struct {
		name  string
		terms []string
		want  []string
	}{
		{
			name:  "form code",
			terms: []string{"8-K"},
			want:  []string{"8-K"},
		},
		{
			name:  "amendment",
			terms: []string{"10-K/A"},
			want:  []string{"10-K"},
		},
		{
			name:  "category",
			terms: []string{"Current"},
			want:  []string{"8-K", "6-K"},
		},
		{
			name:  "unknown code",
			terms: []string{" NT 10-K "},
			want:  []string{"NT 10-K"},
		},
		{
			name:  "duplicates and order",
			terms: []string{"DEF 14A", "10-K", "", "DEFA14A", "10-K/A"},
			want:  []string{"Proxy", "10-K"},
		},
		{
			name: "empty",
			want: []string{},
		},
	}

	c := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Resolve(tt.terms))
		})
	}
}

func TestLoad_error(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "syntax",
			yaml: "current: [",
		},
		{
			name: "unknown field",
			yaml: "current: 8-K\nfoo: bar\n",
		},
		{
			name: "without current",
			yaml: `
categories:
  - name: Current
    groups:
      - base: 8-K
        forms: [8-K]
`,
		},
		{
			name: "unknown current",
			yaml: `
current: 6-K
categories:
  - name: Current
    groups:
      - base: 8-K
        forms: [8-K]
`,
		},
		{
			name: "category without name",
			yaml: `
current: 8-K
categories:
  - groups:
      - base: 8-K
        forms: [8-K]
`,
		},
		{
			name: "duplicate category",
			yaml: `
current: 8-K
categories:
  - name: Current
    groups:
      - base: 8-K
        forms: [8-K]
  - name: current
`,
		},
		{
			name: "group without base",
			yaml: `
current: 8-K
categories:
  - name: Current
    groups:
      - forms: [8-K]
`,
		},
		{
			name: "duplicate base",
			yaml: `
current: 8-K
categories:
  - name: Current
    groups:
      - base: 8-K
        forms: [8-K]
      - base: 8-K
        forms: [8-K/A]
`,
		},
		{
			name: "duplicate form",
			yaml: `
current: 8-K
categories:
  - name: Current
    groups:
      - base: 8-K
        forms: [8-K]
      - base: 6-K
        forms: [6-K, 8-K]
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Load(strings.NewReader(tt.yaml))
			require.Error(t, err)
			assert.Nil(t, c)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forms.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
current: 8-K
categories:
  - name: Current
    groups:
      - base: 8-K
        forms: [8-K, 8-K/A]
`), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	form, ok := c.Classify("8-K/A")
	assert.True(t, ok)
	assert.Equal(t, "8-K", form.Base)

	_, ok = c.Classify("10-K")
	assert.False(t, ok)

	_, err = LoadFile(filepath.Join(t.TempDir(), "not-exists.yaml"))
	require.Error(t, err)
}
