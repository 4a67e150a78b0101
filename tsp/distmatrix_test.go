package tsp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// caseAPoints is spec.md Case A: a 5-point unit configuration.
func caseAPoints() []Point {
	return []Point{
		NewPoint(0, 0, 0),
		NewPoint(1, 0, 0.5),
		NewPoint(2, 0, 1),
		NewPoint(3, 1, 1),
		NewPoint(4, 1, 0),
	}
}

func TestDistanceMatrixCaseA(t *testing.T) {
	dm, err := BuildDistanceMatrix(caseAPoints())
	require.NoError(t, err)

	d01, _ := dm.DistanceByID(0, 1)
	d02, _ := dm.DistanceByID(0, 2)
	d23, _ := dm.DistanceByID(2, 3)
	d34, _ := dm.DistanceByID(3, 4)
	d40, _ := dm.DistanceByID(4, 0)
	d03, _ := dm.DistanceByID(0, 3)

	assert.InDelta(t, 0.5, d01, 1e-9)
	assert.InDelta(t, 1.0, d02, 1e-9)
	assert.InDelta(t, 1.0, d23, 1e-9)
	assert.InDelta(t, 1.0, d34, 1e-9)
	assert.InDelta(t, 1.0, d40, 1e-9)
	assert.InDelta(t, math.Sqrt2, d03, 1e-9)
}

func TestTourLengthCaseA(t *testing.T) {
	dm, err := BuildDistanceMatrix(caseAPoints())
	require.NoError(t, err)
	length, err := dm.TourLength([]int{0, 1, 2, 3, 4})
	require.NoError(t, err)
	assert.InDelta(t, 4.0, length, 1e-9)
}

// caseBPoints is spec.md Case B: a 3-point right triangle.
func caseBPoints() []Point {
	return []Point{
		NewPoint(0, 0, 0),
		NewPoint(1, 0, 1),
		NewPoint(2, 2, 0),
	}
}

func TestDistanceMatrixCaseB(t *testing.T) {
	dm, err := BuildDistanceMatrix(caseBPoints())
	require.NoError(t, err)
	assert.Equal(t, []float64{1.0, 2.0, math.Sqrt(5)}, dm.items)
}

// caseCPoints is spec.md Case C: 4 collinear points on x.
func caseCPoints() []Point {
	return []Point{
		NewPoint(0, 0, 0),
		NewPoint(1, 0, 1),
		NewPoint(2, 2, 0),
		NewPoint(3, 4, 0),
	}
}

func TestDistanceMatrixCaseC(t *testing.T) {
	dm, err := BuildDistanceMatrix(caseCPoints())
	require.NoError(t, err)
	assert.Len(t, dm.items, 6)
	d31, err := dm.DistanceByID(3, 1)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(17), d31, 1e-4)
}

func TestBuildDistanceMatrixTooFewPoints(t *testing.T) {
	_, err := BuildDistanceMatrix([]Point{NewPoint(0, 0, 0)})
	assert.ErrorIs(t, err, ErrTooFewPoints)
}

func TestDistanceByIDUnknown(t *testing.T) {
	dm, err := BuildDistanceMatrix(caseBPoints())
	require.NoError(t, err)
	_, err = dm.DistanceByID(0, 99)
	assert.ErrorIs(t, err, ErrUnknownID)
}

func TestAtPanicsOutOfRange(t *testing.T) {
	dm, err := BuildDistanceMatrix(caseBPoints())
	require.NoError(t, err)
	assert.Panics(t, func() { dm.At(0, 99) })
}

func TestKNearest(t *testing.T) {
	dm, err := BuildDistanceMatrix(caseAPoints())
	require.NoError(t, err)
	ids, err := dm.KNearest(0, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, ids) // id 1 is the unique closest point to id 0
}
