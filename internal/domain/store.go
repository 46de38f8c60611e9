package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrEntryNotFound is returned when a delete targets an index or id that is
// not in the store.
var ErrEntryNotFound = errors.New("saved entry not found")

// SavedEntry is one saved feature and the raw values it was saved with.
type SavedEntry struct {
	ID      string       `json:"id"`
	Feature string       `json:"feature"`
	Inputs  []InputValue `json:"inputs"`
	SavedAt time.Time    `json:"saved_at"`
}

// Summary flattens the inputs to "label: value" pairs joined by ", ".
func (e SavedEntry) Summary() string {
	parts := make([]string, len(e.Inputs))
	for i, in := range e.Inputs {
		parts[i] = in.Label + ": " + in.Value
	}
	return strings.Join(parts, ", ")
}

// Store is the ordered list of saved entries for one session. Order is save
// order. It is not safe for concurrent use.
type Store struct {
	entries []SavedEntry
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Save appends a new entry. It never fails: inputs are stored as given,
// parseable or not.
func (s *Store) Save(feature string, inputs []InputValue) SavedEntry {
	e := SavedEntry{
		ID:      uuid.NewString(),
		Feature: feature,
		Inputs:  append([]InputValue(nil), inputs...),
		SavedAt: clock.Now(),
	}
	s.entries = append(s.entries, e)
	return e
}

// RemoveAt deletes the entry at index. Later entries shift down by one.
func (s *Store) RemoveAt(index int) (SavedEntry, error) {
	if index < 0 || index >= len(s.entries) {
		return SavedEntry{}, ErrEntryNotFound
	}
	removed := s.entries[index]
	s.entries = append(s.entries[:index], s.entries[index+1:]...)
	return removed, nil
}

// Remove deletes the entry with the given id, independent of its position.
func (s *Store) Remove(id string) (SavedEntry, error) {
	for i, e := range s.entries {
		if e.ID == id {
			return s.RemoveAt(i)
		}
	}
	return SavedEntry{}, ErrEntryNotFound
}

// List returns a copy of the entries in save order.
func (s *Store) List() []SavedEntry {
	out := make([]SavedEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of saved entries.
func (s *Store) Len() int { return len(s.entries) }
