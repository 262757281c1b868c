package graph_test

import (
	"testing"

	"github.com/katalvlaran/graphalg/graph"
	"github.com/katalvlaran/graphalg/kernel"
	"github.com/stretchr/testify/require"
)

func TestSelectAdjacencyMatrix_OffDiagonal(t *testing.T) {
	g := newGraph(t, 3, 1, 2)
	_, err := g.AddNewVertexType("t")
	require.NoError(t, err)
	_, err = g.AddNewEdgeType("raw")
	require.NoError(t, err)
	_, err = g.AddNewEdgeType("clean")
	require.NoError(t, err)

	_, err = graph.AddNewVertexByKey[int32](g, "t", "v0", 0)
	require.NoError(t, err)
	_, err = graph.AddNewVertexByKey[int32](g, "t", "v1", 0)
	require.NoError(t, err)

	rawIdx, _ := g.EdgeTypeIndexForKey("raw")
	cleanIdx, _ := g.EdgeTypeIndexForKey("clean")

	require.NoError(t, graph.AddNewEdgeByIndex[int32](g, rawIdx, 0, 0, 9))  // self-loop
	require.NoError(t, graph.AddNewEdgeByIndex[int32](g, rawIdx, 0, 1, 5)) // off-diagonal

	require.NoError(t, graph.SelectAdjacencyMatrix[int32](g, rawIdx, cleanIdx, kernel.OffDiagonal[int32](), 0, nil))

	_, ok, err := graph.EdgeWeightByIndex[int32](g, cleanIdx, 0, 0)
	require.NoError(t, err)
	require.False(t, ok)
	val, ok, err := graph.EdgeWeightByIndex[int32](g, cleanIdx, 0, 1)
	require.NoError(t, err)
	require.True(t, ok)
	require.EqualValues(t, 5, val)
}

// TestMatrixVectorMultiply_PlusTimes exercises the semiring-multiply
// operator surface end to end over a real Graph: adjacency weights times a
// vertex-vector, summed into a result VertexVector.
func TestMatrixVectorMultiply_PlusTimes(t *testing.T) {
	g := newGraph(t, 3, 2, 1)
	_, err := g.AddNewVertexType("x")
	require.NoError(t, err)
	_, err = g.AddNewVertexType("result")
	require.NoError(t, err)
	_, err = g.AddNewEdgeType("w")
	require.NoError(t, err)

	_, err = graph.AddNewVertexByKey[int32](g, "x", "v0", 2)
	require.NoError(t, err)
	_, err = graph.AddNewVertexByKey[int32](g, "x", "v1", 3)
	require.NoError(t, err)
	_, err = graph.AddNewVertexByKey[int32](g, "result", "v0", 0)
	require.NoError(t, err)
	_, err = graph.AddNewVertexByKey[int32](g, "result", "v1", 0)
	require.NoError(t, err)

	wIdx, _ := g.EdgeTypeIndexForKey("w")
	require.NoError(t, graph.AddNewEdgeByIndex[int32](g, wIdx, 0, 1, 4)) // row 0, col 1, weight 4

	xIdx, _ := g.VertexTypeIndexForKey("x")
	resultIdx, _ := g.VertexTypeIndexForKey("result")

	require.NoError(t, graph.MatrixVectorMultiply[int32](g, wIdx, xIdx, resultIdx, kernel.PlusTimesSemiring[int32](), nil))

	v0, err := graph.VertexValueOrDefaultByKey[int32](g, resultIdx, "v0")
	require.NoError(t, err)
	require.EqualValues(t, 12, v0) // dst[row=0] = mat[0,1]*x[1] = 4*3
	v1, err := graph.VertexValueOrDefaultByKey[int32](g, resultIdx, "v1")
	require.NoError(t, err)
	require.Zero(t, v1) // no element has row=1, untouched
}
