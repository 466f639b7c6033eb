package ladder

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cartocrow/isosimplify/geomkernel"
)

func TestAreaPreservationLinePreservesArea(t *testing.T) {
	s := geomkernel.Point{X: 0, Y: 0}
	t2 := geomkernel.Point{X: 1, Y: 1}
	u := geomkernel.Point{X: 2, Y: 1}
	v := geomkernel.Point{X: 3, Y: 0}

	line, err := AreaPreservationLine(s, t2, u, v)
	require.NoError(t, err)

	original := geomkernel.SignedArea([]geomkernel.Point{s, v, u, t2})

	tp := line.Projection(t2)
	up := line.Projection(u)
	replaced := geomkernel.SignedArea([]geomkernel.Point{s, v, up, tp})

	require.InDelta(t, original, replaced, 1e-9)
}

func TestAreaPreservationLineRefusesThreeVertexIsoline(t *testing.T) {
	s := geomkernel.Point{X: 0, Y: 0}
	_, err := AreaPreservationLine(s, geomkernel.Point{X: 1, Y: 1}, geomkernel.Point{X: 2, Y: 1}, s)
	require.ErrorIs(t, err, ErrThreeVertexIsoline)
}

func TestSymmetricDifferenceNonNegativeWhenCollapsedOntoVertex(t *testing.T) {
	s := geomkernel.Point{X: 0, Y: 0}
	tt := geomkernel.Point{X: 1, Y: 1}
	u := geomkernel.Point{X: 2, Y: 1}
	v := geomkernel.Point{X: 3, Y: 0}

	d := SymmetricDifference(s, tt, u, v, tt)
	require.GreaterOrEqual(t, d, 0.0)
}

func TestMidpointPolicyProducesOneCollapsedPointPerRung(t *testing.T) {
	l := NewLadder(geomkernel.Point{X: 1, Y: 1}, geomkernel.Point{X: 2, Y: 1})
	prev := func(p geomkernel.Point) (geomkernel.Point, bool) {
		if p.Equal(geomkernel.Point{X: 1, Y: 1}) {
			return geomkernel.Point{X: 0, Y: 0}, true
		}
		return geomkernel.Point{}, false
	}
	next := func(p geomkernel.Point) (geomkernel.Point, bool) {
		if p.Equal(geomkernel.Point{X: 2, Y: 1}) {
			return geomkernel.Point{X: 3, Y: 0}, true
		}
		return geomkernel.Point{}, false
	}

	ok := ComputeCollapsed(l, prev, next, Midpoint{})
	require.True(t, ok)
	require.Len(t, l.Collapsed, 1)

	ComputeCost(l, prev, next)
	require.GreaterOrEqual(t, l.Cost, 0.0)
}

func TestComputeCostInfiniteWhenInvalid(t *testing.T) {
	l := NewLadder(geomkernel.Point{X: 1, Y: 1}, geomkernel.Point{X: 2, Y: 1})
	l.Valid = false
	ComputeCost(l, func(geomkernel.Point) (geomkernel.Point, bool) { return geomkernel.Point{}, false },
		func(geomkernel.Point) (geomkernel.Point, bool) { return geomkernel.Point{}, false })
	require.True(t, l.Cost > 1e300)
}
