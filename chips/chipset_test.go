package chips

import (
	"testing"

	"github.com/matryer/is"
)

func TestChipSetOrdering(t *testing.T) {
	is := is.New(t)
	cs, err := NewChipSet(map[string]int{"white": 100, "black": 50, "red": 75})
	is.NoErr(err)
	is.Equal(cs.Colors(), []string{"black", "red", "white"})
	is.Equal(cs.Count("black"), 50)
	is.Equal(cs.Count("missing"), 0)
	is.Equal(cs.NumColors(), 3)
	is.Equal(cs.TotalChips(), 225)
}

func TestChipSetEmpty(t *testing.T) {
	is := is.New(t)
	cs, err := NewChipSet(map[string]int{})
	is.NoErr(err)
	is.Equal(cs.NumColors(), 0)
	is.Equal(cs.TotalChips(), 0)
}

func TestChipSetNegativeCount(t *testing.T) {
	is := is.New(t)
	_, err := NewChipSet(map[string]int{"red": -1})
	is.True(err != nil)
}
