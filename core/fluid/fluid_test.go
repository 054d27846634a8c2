package fluid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputConstructors(t *testing.T) {
	cases := []struct {
		in   Input
		kind InputKind
	}{
		{PT(1e5, 30), InputTemperature},
		{PH(1e5, 4e5), InputEnthalpy},
		{PS(1e5, 7e3), InputEntropy},
		{PQ(1e5, 0.5), InputQuality},
	}
	for _, c := range cases {
		assert.Equal(t, c.kind, c.in.Kind)
		assert.Equal(t, 1e5, c.in.Pressure)
	}
}

func TestResolutionErrorMatchesSentinel(t *testing.T) {
	err := &ResolutionError{Fluid: "air", Input: PQ(1e5, 0), Reason: "no two-phase region"}
	assert.True(t, errors.Is(err, ErrUnresolvable))
	assert.Contains(t, err.Error(), "air")
	assert.Contains(t, err.Error(), "quality")
}

func TestWithLabelCopies(t *testing.T) {
	s := State{Fluid: "air", Pressure: 1e5}
	labeled := s.WithLabel("1g")
	assert.Equal(t, "1g", labeled.Label)
	assert.Empty(t, s.Label)
}
