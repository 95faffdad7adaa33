// Package extractor implements the deterministic keyword-scan extraction used
// when remote inference is unavailable or yields nothing usable.
package extractor

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/JaimeStill/blueprint/internal/architecture"
	"github.com/JaimeStill/blueprint/internal/catalog"
)

const (
	// MinLength is the trimmed rune length below which no extraction occurs.
	MinLength = 10
	// DefaultsLength is the trimmed rune length the input must exceed before
	// completion defaults are appended.
	DefaultsLength = 20
	// DefaultsFloor is the component count below which defaults are considered.
	DefaultsFloor = 3
)

// Extractor scans text for catalog keywords and feature phrases.
type Extractor struct {
	catalog *catalog.Catalog
}

// New creates an Extractor over the given catalog.
func New(cat *catalog.Catalog) *Extractor {
	return &Extractor{catalog: cat}
}

// Extract returns the components implied by text, in first-insertion order:
// category-pass matches, then feature-pass matches, then completion defaults.
// Names are unique; the first occurrence of a name keeps its metadata.
func (e *Extractor) Extract(text string) []architecture.Component {
	trimmed := strings.TrimSpace(text)
	length := utf8.RuneCountInString(trimmed)
	if length < MinLength {
		return []architecture.Component{}
	}

	lower := strings.ToLower(text)
	set := newComponentSet()

	e.categoryPass(lower, set)
	e.featurePass(lower, set)

	if set.size() < DefaultsFloor && length > DefaultsLength {
		e.complete(set)
	}

	return set.components()
}

func (e *Extractor) categoryPass(lower string, set *componentSet) {
	for _, p := range e.catalog.Categories() {
		for _, kw := range p.Keywords {
			if !strings.Contains(lower, kw) {
				continue
			}
			set.add(architecture.Component{
				Name:        e.catalog.ComponentName(kw),
				Category:    p.Category,
				Icon:        p.Icon,
				Style:       p.Style,
				Description: fmt.Sprintf("Handles %s functionality", kw),
			})
		}
	}
}

func (e *Extractor) featurePass(lower string, set *componentSet) {
	for _, f := range e.catalog.Features() {
		if !strings.Contains(lower, f.Phrase) {
			continue
		}
		for _, name := range f.Components {
			if set.has(name) {
				continue
			}
			cat := e.catalog.InferCategory(name)
			set.add(architecture.Component{
				Name:        name,
				Category:    cat,
				Icon:        e.catalog.Icon(cat),
				Style:       e.catalog.Style(cat),
				Description: fmt.Sprintf("Part of %s feature", f.Phrase),
			})
		}
	}
}

func (e *Extractor) complete(set *componentSet) {
	for _, d := range e.catalog.Defaults() {
		if set.hasCategory(d.Category) {
			continue
		}
		set.add(architecture.Component{
			Name:        d.Name,
			Category:    d.Category,
			Icon:        e.catalog.Icon(d.Category),
			Style:       e.catalog.Style(d.Category),
			Description: d.Description,
		})
	}
}
