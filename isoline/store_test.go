package isoline

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cartocrow/isosimplify/geomkernel"
)

func p(x, y float64) geomkernel.Point { return geomkernel.Point{X: x, Y: y} }

func TestNewStoreBasic(t *testing.T) {
	s, err := NewStore([]Input{
		{Points: []geomkernel.Point{p(0, 0), p(1, 0), p(2, 0)}, Closed: false},
	})
	require.NoError(t, err)
	require.Equal(t, 3, s.VertexCount())

	n, ok := s.Next(p(0, 0))
	require.True(t, ok)
	require.Equal(t, p(1, 0), n)

	_, ok = s.Prev(p(0, 0))
	require.False(t, ok)
}

func TestNewStoreRejectsSharedPoint(t *testing.T) {
	_, err := NewStore([]Input{
		{Points: []geomkernel.Point{p(0, 0), p(1, 0)}},
		{Points: []geomkernel.Point{p(1, 0), p(2, 2)}},
	})
	require.ErrorIs(t, err, ErrSharedPoint)
}

func TestClosedIsolineWraps(t *testing.T) {
	s, err := NewStore([]Input{
		{Points: []geomkernel.Point{p(0, 0), p(1, 0), p(1, 1)}, Closed: true},
	})
	require.NoError(t, err)

	n, ok := s.Next(p(1, 1))
	require.True(t, ok)
	require.Equal(t, p(0, 0), n)

	pr, ok := s.Prev(p(0, 0))
	require.True(t, ok)
	require.Equal(t, p(1, 1), pr)
}

func TestCollapseRungSplicesAndUpdatesIndices(t *testing.T) {
	s, err := NewStore([]Input{
		{Points: []geomkernel.Point{p(0, 0), p(1, 0), p(2, 0), p(3, 0)}, Closed: false},
	})
	require.NoError(t, err)

	sp, vp, err := s.CollapseRung(p(1, 0), p(2, 0), p(1.5, 0))
	require.NoError(t, err)
	require.Equal(t, p(0, 0), sp)
	require.Equal(t, p(3, 0), vp)
	require.Equal(t, 3, s.VertexCount())

	n, ok := s.Next(p(0, 0))
	require.True(t, ok)
	require.Equal(t, p(1.5, 0), n)

	pr, ok := s.Prev(p(3, 0))
	require.True(t, ok)
	require.Equal(t, p(1.5, 0), pr)

	iso := s.IsolineOf(p(1.5, 0))
	require.NotNil(t, iso)
	require.Equal(t, []geomkernel.Point{p(0, 0), p(1.5, 0), p(3, 0)}, s.Points(iso))
}

func TestCollapseRefusesThreeVertexClosedIsoline(t *testing.T) {
	s, err := NewStore([]Input{
		{Points: []geomkernel.Point{p(0, 0), p(1, 0), p(0, 1)}, Closed: true},
	})
	require.NoError(t, err)

	_, _, err = s.CollapseRung(p(1, 0), p(0, 1), p(0.5, 0.5))
	require.ErrorIs(t, err, ErrThreeVertexIsoline)
}

func TestCleanMergesSharedEndpointAndClosesLoop(t *testing.T) {
	raw := []Input{
		{Points: []geomkernel.Point{p(0, 0), p(1, 0)}},
		{Points: []geomkernel.Point{p(1, 0), p(1, 1)}},
		{Points: []geomkernel.Point{p(1, 1), p(0, 0)}},
	}
	cleaned := Clean(raw)
	require.Len(t, cleaned, 1)
	require.True(t, cleaned[0].Closed)
	require.Len(t, cleaned[0].Points, 3)
}

func TestCleanDedupsConsecutivePoints(t *testing.T) {
	raw := []Input{
		{Points: []geomkernel.Point{p(0, 0), p(0, 0), p(1, 0), p(1, 0), p(2, 0)}},
	}
	cleaned := Clean(raw)
	require.Len(t, cleaned, 1)
	require.Equal(t, []geomkernel.Point{p(0, 0), p(1, 0), p(2, 0)}, cleaned[0].Points)
}
