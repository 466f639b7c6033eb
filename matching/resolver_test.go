package matching

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cartocrow/isosimplify/geomkernel"
	"github.com/cartocrow/isosimplify/isoline"
	"github.com/cartocrow/isosimplify/svd"
)

func p(x, y float64) geomkernel.Point { return geomkernel.Point{X: x, Y: y} }

func buildDiagram(t *testing.T, store *isoline.Store) *svd.Diagram {
	t.Helper()
	d := svd.NewDiagram()
	for _, iso := range store.Isolines() {
		for _, pt := range store.Points(iso) {
			_, err := d.InsertPoint(pt)
			require.NoError(t, err)
		}
	}
	return d
}

func TestResolveNeverMatchesWithinSameIsoline(t *testing.T) {
	store, err := isoline.NewStore([]isoline.Input{
		{Points: []geomkernel.Point{p(0, 0), p(1, 0), p(2, 0)}, Closed: false},
		{Points: []geomkernel.Point{p(0, 1), p(1, 1), p(2, 1)}, Closed: false},
	})
	require.NoError(t, err)
	d := buildDiagram(t, store)

	g := Resolve(d, store, math.Inf(1), math.Inf(1))

	for _, pt := range g.Points() {
		src := store.IsolineOf(pt)
		require.NotNil(t, src)
		for _, byIso := range g.Matches(pt) {
			for isoID, pts := range byIso {
				require.NotEqual(t, src.ID(), isoID)
				require.NotEmpty(t, pts)
			}
		}
	}
}

func TestResolveMatchesAcrossParallelIsolines(t *testing.T) {
	store, err := isoline.NewStore([]isoline.Input{
		{Points: []geomkernel.Point{p(0, 0), p(1, 0), p(2, 0)}, Closed: false},
		{Points: []geomkernel.Point{p(0, 1), p(1, 1), p(2, 1)}, Closed: false},
	})
	require.NoError(t, err)
	d := buildDiagram(t, store)

	g := Resolve(d, store, math.Inf(1), math.Inf(1))

	found := false
	for _, pt := range g.Points() {
		if store.IsolineOf(pt).ID() == store.Isolines()[0].ID() {
			for _, byIso := range g.Matches(pt) {
				if pts, ok := byIso[store.Isolines()[1].ID()]; ok && len(pts) > 0 {
					found = true
				}
			}
		}
	}
	require.True(t, found, "expected at least one match between the two parallel isolines")
}

func TestResolveNegativeAngleFilterDropsEveryEdge(t *testing.T) {
	store, err := isoline.NewStore([]isoline.Input{
		{Points: []geomkernel.Point{p(0, 0), p(1, 0), p(2, 0)}, Closed: false},
		{Points: []geomkernel.Point{p(0, 1), p(1, 1), p(2, 1)}, Closed: false},
	})
	require.NoError(t, err)
	d := buildDiagram(t, store)

	g := Resolve(d, store, -1, math.Inf(1))
	require.Empty(t, g.Points())
}
