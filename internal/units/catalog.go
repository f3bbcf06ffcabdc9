// Package units holds the unit catalog and finds unit names in text.
//
// A catalog is built once from a list of entries (the embedded
// catalog.yaml by default). Building derives plural forms of every
// abbreviation and synonym and phonetic codes of every synonym, so that
// matching never calls the morphology collaborators.
package units

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/hammamikhairi/recipeparse/internal/domain"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Entry is one canonical unit and its recognized spellings.
type Entry struct {
	Name          string      `yaml:"name"`
	Unit          domain.Unit `yaml:"unit"`
	Abbreviations []string    `yaml:"abbreviations"`
	Synonyms      []string    `yaml:"synonyms"`
}

type catalogFile struct {
	Units []Entry `yaml:"units"`
}

// Catalog is an immutable, enumeration-ordered set of units with their
// derived spellings. It is safe for concurrent use.
type Catalog struct {
	entries []Entry
	// stages[s][i] holds the names entry i contributes to search stage s.
	stages [stageCount][][]string
}

type options struct {
	pluralizer domain.Pluralizer
	encoder    domain.PhoneticEncoder
}

// Option configures catalog construction.
type Option func(*options)

// WithPluralizer replaces the default inflection-based pluralizer.
func WithPluralizer(p domain.Pluralizer) Option {
	return func(o *options) { o.pluralizer = p }
}

// WithPhoneticEncoder replaces the default Double Metaphone encoder.
func WithPhoneticEncoder(e domain.PhoneticEncoder) Option {
	return func(o *options) { o.encoder = e }
}

// New validates entries and builds a catalog from them. Entry order is
// the enumeration order used to break ties.
func New(entries []Entry, opts ...Option) (*Catalog, error) {
	o := options{
		pluralizer: InflectionPluralizer{},
		encoder:    MetaphoneEncoder{},
	}
	for _, opt := range opts {
		opt(&o)
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("no units: %w", domain.ErrInvalidCatalog)
	}

	c := &Catalog{entries: make([]Entry, len(entries))}
	for s := range c.stages {
		c.stages[s] = make([][]string, len(entries))
	}

	for i, e := range entries {
		if !e.Unit.Valid() {
			return nil, fmt.Errorf("entry %q: %q: %w", e.Name, e.Unit, domain.ErrUnknownUnit)
		}
		if len(e.Abbreviations)+len(e.Synonyms) == 0 {
			return nil, fmt.Errorf("entry %q has no names: %w", e.Name, domain.ErrInvalidCatalog)
		}
		for _, name := range append(append([]string{}, e.Abbreviations...), e.Synonyms...) {
			if strings.TrimSpace(name) == "" {
				return nil, fmt.Errorf("entry %q has an empty name: %w", e.Name, domain.ErrInvalidCatalog)
			}
		}

		c.entries[i] = Entry{
			Name:          e.Name,
			Unit:          e.Unit,
			Abbreviations: append([]string(nil), e.Abbreviations...),
			Synonyms:      append([]string(nil), e.Synonyms...),
		}
		c.stages[StagePluralSynonym][i] = pluralize(o.pluralizer, e.Synonyms)
		c.stages[StageSynonym][i] = c.entries[i].Synonyms
		c.stages[StagePluralAbbreviation][i] = pluralize(o.pluralizer, e.Abbreviations)
		c.stages[StageAbbreviation][i] = c.entries[i].Abbreviations
		c.stages[StagePhonetic][i] = encode(o.encoder, e.Synonyms)
	}
	return c, nil
}

// Load reads a YAML catalog.
func Load(r io.Reader, opts ...Option) (*Catalog, error) {
	var f catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode catalog: %v: %w", err, domain.ErrInvalidCatalog)
	}
	return New(f.Units, opts...)
}

// LoadFile reads a YAML catalog from disk.
func LoadFile(path string, opts ...Option) (*Catalog, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	c, err := Load(fh, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

var loadDefault = sync.OnceValues(func() (*Catalog, error) {
	return Load(bytes.NewReader(defaultCatalog))
})

// Default returns the embedded catalog, built on first use and shared
// afterwards.
func Default() *Catalog {
	c, err := loadDefault()
	if err != nil {
		panic(fmt.Sprintf("units: embedded catalog: %v", err))
	}
	return c
}

// Entries returns the catalog entries in enumeration order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Variants returns the names entry i contributes to the given stage.
func (c *Catalog) Variants(stage Stage, i int) []string {
	if stage < 0 || stage >= stageCount || i < 0 || i >= len(c.entries) {
		return nil
	}
	return append([]string(nil), c.stages[stage][i]...)
}

func pluralize(p domain.Pluralizer, names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		// uninflectable names ("ℓ") would only shadow the singular stage
		if plural := p.Plural(n); plural != n {
			out = append(out, plural)
		}
	}
	return out
}

func encode(e domain.PhoneticEncoder, names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		// an empty code would match everywhere
		if code := strings.ToLower(e.Encode(n)); code != "" {
			out = append(out, code)
		}
	}
	return out
}
