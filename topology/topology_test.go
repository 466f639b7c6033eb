package topology

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cartocrow/isosimplify/geomkernel"
	"github.com/cartocrow/isosimplify/svd"
)

func TestCheckSegmentIntersectionsFindsCrossingSegmentSite(t *testing.T) {
	d := svd.NewDiagram()
	a, err := d.InsertPoint(geomkernel.Point{X: 0, Y: 0})
	require.NoError(t, err)
	_, err = d.InsertPoint(geomkernel.Point{X: 10, Y: 0})
	require.NoError(t, err)
	_, err = d.InsertSegment(geomkernel.Point{X: 5, Y: -1}, geomkernel.Point{X: 5, Y: 1}, nil)
	require.NoError(t, err)

	candidate, err := geomkernel.NewSegment(geomkernel.Point{X: 0, Y: 0}, geomkernel.Point{X: 10, Y: 0})
	require.NoError(t, err)

	_, ok := CheckSegmentIntersections(d, candidate, a, nil)
	require.True(t, ok)
}

func TestCheckSegmentIntersectionsAllowedIsNotReported(t *testing.T) {
	d := svd.NewDiagram()
	a, err := d.InsertPoint(geomkernel.Point{X: 0, Y: 0})
	require.NoError(t, err)
	_, err = d.InsertPoint(geomkernel.Point{X: 10, Y: 0})
	require.NoError(t, err)
	blocker, err := d.InsertSegment(geomkernel.Point{X: 5, Y: -1}, geomkernel.Point{X: 5, Y: 1}, nil)
	require.NoError(t, err)

	candidate, err := geomkernel.NewSegment(geomkernel.Point{X: 0, Y: 0}, geomkernel.Point{X: 10, Y: 0})
	require.NoError(t, err)

	_, ok := CheckSegmentIntersections(d, candidate, a, map[*svd.Vertex]bool{blocker: true})
	require.False(t, ok)
}

func TestCheckSweepOverRespectsAllowedSet(t *testing.T) {
	d := svd.NewDiagram()
	anchor, err := d.InsertPoint(geomkernel.Point{X: 0, Y: 0})
	require.NoError(t, err)
	other, err := d.InsertPoint(geomkernel.Point{X: 10, Y: 0})
	require.NoError(t, err)
	third, err := d.InsertPoint(geomkernel.Point{X: 5, Y: 0.1})
	require.NoError(t, err)

	original, err := geomkernel.NewSegment(geomkernel.Point{X: 0, Y: 0}, geomkernel.Point{X: 10, Y: 2})
	require.NoError(t, err)
	replacement, err := geomkernel.NewSegment(geomkernel.Point{X: 0, Y: 0}, geomkernel.Point{X: 10, Y: -2})
	require.NoError(t, err)

	allowed := map[*svd.Vertex]bool{anchor: true, other: true, third: true}
	_, ok := CheckSweepOver(d, original, replacement, anchor, allowed)
	require.False(t, ok)
}
