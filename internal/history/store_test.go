package history

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppendIfChangedDebouncesConsecutiveDuplicates(t *testing.T) {
	t.Parallel()

	s := NewStore(0)
	first, added := s.AppendIfChanged("10 m", "32.81 ft", "Length")
	require.True(t, added)
	require.NotEmpty(t, first.ID)

	dup, added := s.AppendIfChanged("10 m", "32.81 ft", "Length")
	require.False(t, added)
	require.Equal(t, first.ID, dup.ID)
	require.Equal(t, 1, s.Len())

	second, added := s.AppendIfChanged("0 °C", "32 °F", "Temperature")
	require.True(t, added)
	require.NotEqual(t, first.ID, second.ID)
	require.Equal(t, 2, s.Len())

	// the debounce only looks at the latest record, so an earlier pair
	// may repeat
	_, added = s.AppendIfChanged("10 m", "32.81 ft", "Length")
	require.True(t, added)
	require.Equal(t, 3, s.Len())
}

func TestRecentIsNewestFirst(t *testing.T) {
	t.Parallel()

	s := NewStore(0)
	s.AppendIfChanged("1 m", "3.28 ft", "Length")
	s.AppendIfChanged("2 m", "6.56 ft", "Length")
	s.AppendIfChanged("3 m", "9.84 ft", "Length")

	recent := s.Recent()
	require.Len(t, recent, 3)
	require.Equal(t, "3 m", recent[0].Input)
	require.Equal(t, "2 m", recent[1].Input)
	require.Equal(t, "1 m", recent[2].Input)

	last, ok := s.Last()
	require.True(t, ok)
	require.Equal(t, "3 m", last.Input)
}

func TestClearThenAppend(t *testing.T) {
	t.Parallel()

	s := NewStore(0)
	s.AppendIfChanged("10 m", "32.81 ft", "Length")
	s.Clear()
	require.Equal(t, 0, s.Len())
	require.Empty(t, s.Recent())
	_, ok := s.Last()
	require.False(t, ok)

	// an identical pair after a clear is a fresh record
	_, added := s.AppendIfChanged("10 m", "32.81 ft", "Length")
	require.True(t, added)
	require.Equal(t, 1, s.Len())
}

func TestLimitEvictsOldest(t *testing.T) {
	t.Parallel()

	s := NewStore(3)
	for i := 1; i <= 5; i++ {
		_, added := s.AppendIfChanged(fmt.Sprintf("%d m", i), fmt.Sprintf("%d ft", i), "Length")
		require.True(t, added)
	}
	recent := s.Recent()
	require.Len(t, recent, 3)
	require.Equal(t, "5 m", recent[0].Input)
	require.Equal(t, "3 m", recent[2].Input)
}
