package selection

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrNoCategories is returned when a selector is built from an empty set.
	ErrNoCategories = errors.New("category selector needs at least one category")
	// ErrDuplicateCategory is returned when the same id appears twice.
	ErrDuplicateCategory = errors.New("duplicate category")
)

// CategorySelector tracks the active tab among a fixed, ordered set of ids.
type CategorySelector struct {
	ids    []string
	active string
}

// NewCategorySelector creates a selector with the first id active.
func NewCategorySelector(ids []string) (*CategorySelector, error) {
	if len(ids) == 0 {
		return nil, ErrNoCategories
	}
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCategory, id)
		}
		seen[id] = struct{}{}
	}
	return &CategorySelector{ids: slices.Clone(ids), active: ids[0]}, nil
}

// NewCategorySelectorAt creates a selector with active selected. An unknown
// active id leaves the first category selected.
func NewCategorySelectorAt(ids []string, active string) (*CategorySelector, error) {
	s, err := NewCategorySelector(ids)
	if err != nil {
		return nil, err
	}
	s.Select(active)
	return s, nil
}

// Active returns the selected id.
func (s *CategorySelector) Active() string { return s.active }

// Categories returns the known ids in order.
func (s *CategorySelector) Categories() []string { return slices.Clone(s.ids) }

// Has reports whether id is one of the known categories.
func (s *CategorySelector) Has(id string) bool { return slices.Contains(s.ids, id) }

// Select makes id the active category and reports true. Unknown ids leave
// the selection untouched and report false.
func (s *CategorySelector) Select(id string) bool {
	if !s.Has(id) {
		return false
	}
	s.active = id
	return true
}
