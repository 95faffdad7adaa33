package extractor

import "github.com/JaimeStill/blueprint/internal/architecture"

// componentSet is an insertion-ordered collection keyed by component name.
type componentSet struct {
	order []architecture.Component
	index map[string]int
}

func newComponentSet() *componentSet {
	return &componentSet{index: make(map[string]int)}
}

// add inserts c with a fresh ID unless its name is already present.
func (s *componentSet) add(c architecture.Component) bool {
	if s.has(c.Name) {
		return false
	}
	c.ID = architecture.NewID()
	s.index[c.Name] = len(s.order)
	s.order = append(s.order, c)
	return true
}

func (s *componentSet) has(name string) bool {
	_, ok := s.index[name]
	return ok
}

func (s *componentSet) hasCategory(cat architecture.Category) bool {
	for _, c := range s.order {
		if c.Category == cat {
			return true
		}
	}
	return false
}

func (s *componentSet) size() int {
	return len(s.order)
}

func (s *componentSet) components() []architecture.Component {
	out := make([]architecture.Component, len(s.order))
	copy(out, s.order)
	return out
}
