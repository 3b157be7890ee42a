package payments

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinorUnits(t *testing.T) {
	cases := []struct {
		price float64
		want  int64
	}{
		{0, 0},
		{1, 100},
		{19.99, 1999},
		{10.555, 1056},
		{0.004, 0},
		{2999.99, 299999},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, MinorUnits(tc.price), "price %v", tc.price)
	}
}
