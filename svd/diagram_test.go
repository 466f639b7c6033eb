package svd

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cartocrow/isosimplify/geomkernel"
)

func TestInsertPointTwoSites(t *testing.T) {
	d := NewDiagram()
	v1, err := d.InsertPoint(geomkernel.Point{X: 0, Y: 0})
	require.NoError(t, err)
	v2, err := d.InsertPoint(geomkernel.Point{X: 1, Y: 0})
	require.NoError(t, err)

	require.ElementsMatch(t, []*Vertex{v2}, d.IncidentVertices(v1))
	edges := d.IncidentEdges(v1)
	require.Len(t, edges, 1)
	require.Equal(t, GeomLine, edges[0].Carrier)
}

func TestInsertDuplicateSite(t *testing.T) {
	d := NewDiagram()
	_, err := d.InsertPoint(geomkernel.Point{X: 0, Y: 0})
	require.NoError(t, err)
	_, err = d.InsertPoint(geomkernel.Point{X: 0, Y: 0})
	require.ErrorIs(t, err, ErrSiteExists)
}

func TestRemoveVertexInvalidatesMembership(t *testing.T) {
	d := NewDiagram()
	v1, _ := d.InsertPoint(geomkernel.Point{X: 0, Y: 0})
	v2, _ := d.InsertPoint(geomkernel.Point{X: 1, Y: 0})

	require.NoError(t, d.Remove(v1))
	require.Empty(t, d.IncidentVertices(v2))
	require.ErrorIs(t, d.Remove(v1), ErrVertexNotFound)
}

func TestTriangleProducesFaces(t *testing.T) {
	d := NewDiagram()
	v1, _ := d.InsertPoint(geomkernel.Point{X: 0, Y: 0})
	v2, _ := d.InsertPoint(geomkernel.Point{X: 2, Y: 0})
	v3, _ := d.InsertPoint(geomkernel.Point{X: 1, Y: 2})

	require.Len(t, d.IncidentFaces(v1), 1)
	require.Len(t, d.IncidentEdges(v1), 2)
	require.NotEmpty(t, d.IncidentEdges(v2))
	require.NotEmpty(t, d.IncidentEdges(v3))
}

func TestInsertSegmentSite(t *testing.T) {
	d := NewDiagram()
	seg, err := d.InsertSegment(geomkernel.Point{X: 0, Y: 0}, geomkernel.Point{X: 1, Y: 0}, nil)
	require.NoError(t, err)
	require.True(t, seg.Site().IsSegment())

	_, err = d.InsertPoint(geomkernel.Point{X: 0.5, Y: 1})
	require.NoError(t, err)
	require.NotEmpty(t, d.IncidentEdges(seg))
}
