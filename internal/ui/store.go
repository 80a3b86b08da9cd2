package ui

import "fmt"

// Store keeps widget state that must survive between frames of an
// immediate-mode UI. Entries are created on first lookup and never removed.
//
// A Store is only touched from the frame loop and is not safe for
// concurrent use.
type Store struct {
	slots map[ID]any
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{slots: map[ID]any{}}
}

// GetOrInit returns the slot for id, inserting init on first access.
// Looking up an existing id with a different type panics: two widgets are
// colliding on one identity.
func GetOrInit[T any](s *Store, id ID, init T) *T {
	if v, ok := s.slots[id]; ok {
		p, ok := v.(*T)
		if !ok {
			panic(fmt.Sprintf("ui: state %v holds %T, requested %T", id, v, p))
		}
		return p
	}
	p := new(T)
	*p = init
	s.slots[id] = p
	return p
}

// Bool is shorthand for a boolean slot defaulting to false.
func (s *Store) Bool(id ID) *bool {
	return GetOrInit(s, id, false)
}

// Len reports the number of stored slots.
func (s *Store) Len() int { return len(s.slots) }
