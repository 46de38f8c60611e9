package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Condition rating bounds and the value a new item starts at.
const (
	MinRating     = 0
	MaxRating     = 10
	DefaultRating = 5
)

// DuplicateConditionNotice is shown to the user when a condition is added twice.
const DuplicateConditionNotice = "This condition has already been added!"

var (
	// ErrDuplicateCondition rejects a second item for a condition key.
	ErrDuplicateCondition = errors.New("condition already added")
	// ErrUnknownCondition rejects keys missing from the catalogue.
	ErrUnknownCondition = errors.New("unknown condition")
	// ErrInvalidRating rejects ratings outside 0-10 or not whole numbers.
	ErrInvalidRating = errors.New("rating must be a whole number from 0 to 10")
)

// ConditionItem is one rated condition in the list.
type ConditionItem struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Rating int    `json:"rating"`
}

// ElementID is the identifier the page uses to detect duplicates.
func (c ConditionItem) ElementID() string { return "condition-" + c.Key }

// ConditionList holds rated conditions, at most one per key, in insertion
// order. It is not safe for concurrent use.
type ConditionList struct {
	catalogue *Catalogue
	items     []ConditionItem
}

// NewConditionList returns an empty list backed by the catalogue's conditions.
func NewConditionList(cat *Catalogue) *ConditionList {
	return &ConditionList{catalogue: cat}
}

// Add appends a condition at the default rating. A key that is already
// present leaves the list untouched and returns ErrDuplicateCondition.
func (l *ConditionList) Add(key string) (ConditionItem, error) {
	cond, ok := l.catalogue.Condition(key)
	if !ok {
		return ConditionItem{}, fmt.Errorf("%w: %q", ErrUnknownCondition, key)
	}
	if l.index(key) >= 0 {
		return ConditionItem{}, ErrDuplicateCondition
	}

	item := ConditionItem{Key: cond.Key, Label: cond.Label, Rating: DefaultRating}
	l.items = append(l.items, item)
	return item, nil
}

// Remove deletes only the item for key. Other items keep their positions
// relative to each other.
func (l *ConditionList) Remove(key string) bool {
	i := l.index(key)
	if i < 0 {
		return false
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	return true
}

// SetRating updates the rating of an existing item from a raw slider value.
func (l *ConditionList) SetRating(key, raw string) (ConditionItem, error) {
	i := l.index(key)
	if i < 0 {
		return ConditionItem{}, fmt.Errorf("%w: %q", ErrUnknownCondition, key)
	}
	rating, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || rating < MinRating || rating > MaxRating {
		return ConditionItem{}, ErrInvalidRating
	}
	l.items[i].Rating = rating
	return l.items[i], nil
}

// Items returns a copy of the list in insertion order.
func (l *ConditionList) Items() []ConditionItem {
	out := make([]ConditionItem, len(l.items))
	copy(out, l.items)
	return out
}

func (l *ConditionList) index(key string) int {
	for i, it := range l.items {
		if it.Key == key {
			return i
		}
	}
	return -1
}
