package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeterminePhase_Boundaries(t *testing.T) {
	cases := []struct {
		n    int
		want Phase
	}{
		{n: 0, want: PhaseA},
		{n: 29, want: PhaseA},
		{n: 30, want: PhaseB},
		{n: 59, want: PhaseB},
		{n: 60, want: PhaseC},
		{n: 61, want: PhaseC},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DeterminePhase(tc.n), "n=%d", tc.n)
	}
}
