package parquetreader

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInt96TimeRoundTrip(t *testing.T) {
	cases := []time.Time{
		time.Date(2024, 3, 15, 12, 30, 45, 123456000, time.UTC),
		time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(1969, 12, 31, 23, 59, 59, 999999000, time.UTC),
		time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, want := range cases {
		v := TimeToInt96(want)
		got := Int96ToTime(v)
		assert.True(t, want.Equal(got), "want %v got %v", want, got)
	}
}
