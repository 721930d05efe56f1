package itemp

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRquo(t *testing.T) {
	type TC struct {
		X   int32
		Y   int32
		Quo int16
	}

	t.Run("ties away from zero", func(t *testing.T) {
		tcs := []TC{
			{15, 10, 2},
			{-15, 10, -2},
			{15, -10, -2},
			{-15, -10, 2},
			{150, 100, 2},
			{-150, 100, -2},
			{250, 100, 3},
			{-250, 100, -3},
		}

		for _, tc := range tcs {
			tc := tc
			t.Run(fmt.Sprintf("%d/%d", tc.X, tc.Y), func(t *testing.T) {
				require.Equal(t, tc.Quo, rquo(tc.X, tc.Y))
			})
		}
	})

	t.Run("nearest", func(t *testing.T) {
		tcs := []TC{
			{0, 5, 0},
			{0, 9, 0},
			{7, 5, 1},
			{8, 5, 2},
			{-7, 5, -1},
			{-8, 5, -2},
			{13, 9, 1},
			{14, 9, 2},
			{-13, 9, -1},
			{-14, 9, -2},
		}

		for _, tc := range tcs {
			tc := tc
			t.Run(fmt.Sprintf("%d/%d", tc.X, tc.Y), func(t *testing.T) {
				require.Equal(t, tc.Quo, rquo(tc.X, tc.Y))
			})
		}
	})

	t.Run("matches math.Round", func(t *testing.T) {
		for _, y := range []int32{5, 9, 10, 100} {
			for x := int32(-2000); x <= 2000; x++ {
				want := int16(math.Round(float64(x) / float64(y)))
				require.Equal(t, want, rquo(x, y), "x=%d y=%d", x, y)
			}
		}
	})
}
