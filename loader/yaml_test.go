package loader

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cartocrow/isosimplify/geomkernel"
)

func TestFromYAMLLoadsTwoIsolines(t *testing.T) {
	src := FromYAML{Path: "testdata/parallel_ridges.yaml"}
	inputs, err := src.LoadIsolines()
	require.NoError(t, err)
	require.Len(t, inputs, 2)
	require.Len(t, inputs[0].Points, 5)
	require.False(t, inputs[0].Closed)
	require.Equal(t, geomkernel.Point{X: 0, Y: 0}, inputs[0].Points[0])
}

func TestFromYAMLRejectsMalformedPoint(t *testing.T) {
	src := FromYAML{Path: "testdata/malformed_point.yaml"}
	_, err := src.LoadIsolines()
	require.ErrorIs(t, err, ErrMalformedPoint)
}

func TestFromYAMLPropagatesMissingFile(t *testing.T) {
	src := FromYAML{Path: "testdata/does_not_exist.yaml"}
	_, err := src.LoadIsolines()
	require.Error(t, err)
}
