// Package catalog holds the static pattern tables used to classify free-text
// system descriptions: per-category trigger keywords, feature phrases that
// imply bundles of components, the keyword naming table, and the ordered
// name-based category inference rules.
//
// A Catalog is immutable once built. Accessors return copies so callers can
// never mutate shared tables.
package catalog

import (
	"slices"
	"strings"

	"github.com/JaimeStill/blueprint/internal/architecture"
)

// Version identifies the table content. Bump when any table changes.
const Version = "2024.1"

// IconDefault is the icon key used when a category has no table entry.
const IconDefault = "Box"

// CategoryPattern lists the trigger keywords for one category with its
// presentation keys.
type CategoryPattern struct {
	Category architecture.Category `json:"category"`
	Keywords []string              `json:"keywords"`
	Icon     string                `json:"icon"`
	Style    string                `json:"style"`
}

// Feature maps a feature phrase to the canonical component names it implies.
type Feature struct {
	Phrase     string   `json:"phrase"`
	Components []string `json:"components"`
}

// Rule assigns Category to a component name containing any of Substrings.
type Rule struct {
	Substrings []string              `json:"substrings"`
	Category   architecture.Category `json:"category"`
}

// Completion is a component appended when extraction finds too little signal.
type Completion struct {
	Name        string                `json:"name"`
	Category    architecture.Category `json:"category"`
	Description string                `json:"description"`
}

// Catalog is the complete, ordered set of pattern tables.
type Catalog struct {
	categories []CategoryPattern
	features   []Feature
	names      map[string]string
	rules      []Rule
	defaults   []Completion
	suffix     string
}

// Tables is the exported, enumerable snapshot of a Catalog.
type Tables struct {
	Version    string            `json:"version"`
	Categories []CategoryPattern `json:"categories"`
	Features   []Feature         `json:"features"`
	Names      map[string]string `json:"names"`
	Rules      []Rule            `json:"rules"`
	Defaults   []Completion      `json:"defaults"`
	Suffix     string            `json:"suffix"`
}

// New builds a Catalog from explicit tables. Inputs are deep-copied.
func New(t Tables) *Catalog {
	c := &Catalog{
		categories: make([]CategoryPattern, len(t.Categories)),
		features:   make([]Feature, len(t.Features)),
		names:      make(map[string]string, len(t.Names)),
		rules:      make([]Rule, len(t.Rules)),
		defaults:   slices.Clone(t.Defaults),
		suffix:     t.Suffix,
	}

	for i, p := range t.Categories {
		p.Keywords = slices.Clone(p.Keywords)
		c.categories[i] = p
	}
	for i, f := range t.Features {
		f.Components = slices.Clone(f.Components)
		c.features[i] = f
	}
	for k, v := range t.Names {
		c.names[k] = v
	}
	for i, r := range t.Rules {
		r.Substrings = slices.Clone(r.Substrings)
		c.rules[i] = r
	}

	return c
}

// Categories returns the category table in iteration order.
func (c *Catalog) Categories() []CategoryPattern {
	out := make([]CategoryPattern, len(c.categories))
	for i, p := range c.categories {
		p.Keywords = slices.Clone(p.Keywords)
		out[i] = p
	}
	return out
}

// Features returns the feature table in iteration order.
func (c *Catalog) Features() []Feature {
	out := make([]Feature, len(c.features))
	for i, f := range c.features {
		f.Components = slices.Clone(f.Components)
		out[i] = f
	}
	return out
}

// Defaults returns the completion defaults in append order.
func (c *Catalog) Defaults() []Completion {
	return slices.Clone(c.defaults)
}

// Pattern returns the category table entry for cat.
func (c *Catalog) Pattern(cat architecture.Category) (CategoryPattern, bool) {
	for _, p := range c.categories {
		if p.Category == cat {
			p.Keywords = slices.Clone(p.Keywords)
			return p, true
		}
	}
	return CategoryPattern{}, false
}

// Icon returns the icon key for cat, or IconDefault when cat has no entry.
func (c *Catalog) Icon(cat architecture.Category) string {
	if p, ok := c.Pattern(cat); ok {
		return p.Icon
	}
	return IconDefault
}

// Style returns the style key for cat, or the service style when cat has no entry.
func (c *Catalog) Style(cat architecture.Category) string {
	if p, ok := c.Pattern(cat); ok {
		return p.Style
	}
	return string(architecture.CategoryService)
}

// ComponentName returns the display name synthesized for a matched keyword:
// the naming table entry when present, otherwise the keyword with its first
// letter upper-cased followed by the generic suffix.
func (c *Catalog) ComponentName(keyword string) string {
	if name, ok := c.names[keyword]; ok {
		return name
	}
	return titleFirst(keyword) + " " + c.suffix
}

// InferCategory classifies a component name with the ordered rule list.
// The first rule with a matching substring wins; no match yields service.
func (c *Catalog) InferCategory(name string) architecture.Category {
	lower := strings.ToLower(name)
	for _, r := range c.rules {
		for _, s := range r.Substrings {
			if strings.Contains(lower, s) {
				return r.Category
			}
		}
	}
	return architecture.CategoryService
}

// Tables returns an enumerable copy of every table.
func (c *Catalog) Tables() Tables {
	names := make(map[string]string, len(c.names))
	for k, v := range c.names {
		names[k] = v
	}

	rules := make([]Rule, len(c.rules))
	for i, r := range c.rules {
		r.Substrings = slices.Clone(r.Substrings)
		rules[i] = r
	}

	return Tables{
		Version:    Version,
		Categories: c.Categories(),
		Features:   c.Features(),
		Names:      names,
		Rules:      rules,
		Defaults:   c.Defaults(),
		Suffix:     c.suffix,
	}
}

func titleFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}
