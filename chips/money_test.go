package chips

import (
	"testing"

	"github.com/matryer/is"
)

func TestFromDollars(t *testing.T) {
	is := is.New(t)
	is.Equal(FromDollars(0.05), Cents(5))
	is.Equal(FromDollars(0.10), Cents(10))
	is.Equal(FromDollars(1), Cents(100))
	is.Equal(FromDollars(5000), Cents(500000))
	// 0.29 is not exactly representable; rounding must still land on 29.
	is.Equal(FromDollars(0.29), Cents(29))
	is.Equal(FromDollars(-0.25), Cents(-25))
}

func TestCentsString(t *testing.T) {
	is := is.New(t)
	is.Equal(Cents(5).String(), "$0.05")
	is.Equal(Cents(250).String(), "$2.50")
	is.Equal(Cents(500000).String(), "$5000.00")
	is.Equal(Cents(-125).String(), "-$1.25")
}

func TestDollarsRoundTrip(t *testing.T) {
	is := is.New(t)
	is.Equal(Cents(525).Dollars(), 5.25)
}
