package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saveN(s *Store, n int) []SavedEntry {
	out := make([]SavedEntry, n)
	for i := range n {
		out[i] = s.Save("dwf", []InputValue{{Label: "Population", Value: fmt.Sprint(i)}})
	}
	return out
}

func TestStore_SaveKeepsOrderAndStamps(t *testing.T) {
	fixed := time.Date(2024, 4, 26, 15, 0, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(fixed))
	t.Cleanup(func() { SetClock(nil) })

	s := NewStore()
	saved := saveN(s, 3)

	list := s.List()
	require.Len(t, list, 3)
	for i, e := range list {
		assert.Equal(t, saved[i].ID, e.ID)
		assert.Equal(t, fmt.Sprint(i), e.Inputs[0].Value)
		assert.Equal(t, fixed, e.SavedAt)
		assert.NotEmpty(t, e.ID)
	}
	assert.NotEqual(t, list[0].ID, list[1].ID)
}

func TestStore_SaveAcceptsUnparseableValues(t *testing.T) {
	s := NewStore()
	e := s.Save("flow_attenuation", []InputValue{{Label: "X-in (Flow Input)", Value: ""}, {Label: "X-out (Flow Output)", Value: "abc"}})

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, "X-in (Flow Input): , X-out (Flow Output): abc", e.Summary())
}

func TestStore_SaveCopiesInputs(t *testing.T) {
	s := NewStore()
	inputs := []InputValue{{Label: "Volume In", Value: "1"}}
	s.Save("volume_reduction", inputs)

	inputs[0].Value = "changed"
	assert.Equal(t, "1", s.List()[0].Inputs[0].Value)
}

func TestStore_RemoveAtShiftsLaterEntries(t *testing.T) {
	for k := range 5 {
		t.Run(fmt.Sprintf("delete index %d", k), func(t *testing.T) {
			s := NewStore()
			saved := saveN(s, 5)

			removed, err := s.RemoveAt(k)
			require.NoError(t, err)
			assert.Equal(t, saved[k].ID, removed.ID)

			var want []string
			for i, e := range saved {
				if i != k {
					want = append(want, e.ID)
				}
			}
			var got []string
			for _, e := range s.List() {
				got = append(got, e.ID)
			}
			assert.Equal(t, want, got)
		})
	}
}

func TestStore_RepeatedRemoveAtUsesCurrentIndices(t *testing.T) {
	s := NewStore()
	saved := saveN(s, 3)

	_, err := s.RemoveAt(0)
	require.NoError(t, err)
	// What was index 2 is now index 1.
	removed, err := s.RemoveAt(1)
	require.NoError(t, err)
	assert.Equal(t, saved[2].ID, removed.ID)

	require.Equal(t, 1, s.Len())
	assert.Equal(t, saved[1].ID, s.List()[0].ID)
}

func TestStore_RemoveAtOutOfRange(t *testing.T) {
	s := NewStore()
	saveN(s, 2)

	for _, idx := range []int{-1, 2, 10} {
		_, err := s.RemoveAt(idx)
		require.ErrorIs(t, err, ErrEntryNotFound)
	}
	assert.Equal(t, 2, s.Len())
}

func TestStore_RemoveByID(t *testing.T) {
	s := NewStore()
	saved := saveN(s, 3)

	_, err := s.Remove(saved[1].ID)
	require.NoError(t, err)

	_, err = s.Remove(saved[1].ID)
	require.ErrorIs(t, err, ErrEntryNotFound)

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, saved[0].ID, list[0].ID)
	assert.Equal(t, saved[2].ID, list[1].ID)
}

func TestStore_ListIsACopy(t *testing.T) {
	s := NewStore()
	saveN(s, 1)

	list := s.List()
	list[0].Feature = "mutated"
	assert.Equal(t, "dwf", s.List()[0].Feature)
}

func TestReadInputs_UsesSaveLabelsInOrder(t *testing.T) {
	cat := DefaultCatalogue()
	f, ok := cat.FieldSet("overflow_freq")
	require.True(t, ok)

	inputs := ReadInputs(f, FieldValues{
		"total_flow_volume":      "120.5",
		"overflow_return_period": "2",
	})

	assert.Equal(t, []InputValue{
		{Label: "Total Flow Volume", Value: "120.5"},
		{Label: "CSO Volume", Value: ""},
		{Label: "Overflow Return Period", Value: "2"},
	}, inputs)
}
