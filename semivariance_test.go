package kriging

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var linePoints = []Point{
	{ID: 1, X: 0, Y: 0, Value: 1},
	{ID: 2, X: 1, Y: 0, Value: 2},
	{ID: 3, X: 2, Y: 0, Value: 4},
}

func TestLagSequence(t *testing.T) {
	assert.Equal(t, []float64{0, 2, 4, 6, 8}, LagSequence(10, 1))
	assert.Empty(t, LagSequence(0, 1))
	assert.Empty(t, LagSequence(10, 0))
}

func TestCalculateSemivariance(t *testing.T) {
	a := assert.New(t)

	emp, err := CalculateSemivariance(linePoints, []float64{0, 1, 2, 5}, 0.5)
	require.NoError(t, err)

	a.Equal(EmpiricalSemivariogram{
		{Distance: 0, Gamma: 0, Count: 0},
		{Distance: 1, Gamma: 1.25, Count: 4},
		{Distance: 2, Gamma: 4.5, Count: 2},
		{Distance: 5, Gamma: 0, Count: 0},
	}, emp)
}

func TestSemivarianceOverlappingBinsDoubleCount(t *testing.T) {
	a := assert.New(t)

	// [0.5, 1.5] and [1, 2] both hold the four pairs at distance 1.
	emp, err := CalculateSemivariance(linePoints, []float64{1, 1.5}, 0.5)
	require.NoError(t, err)

	a.Equal(4, emp[0].Count)
	a.InDelta(1.25, emp[0].Gamma, 1e-12)
	a.Equal(6, emp[1].Count)
	a.InDelta(28.0/12, emp[1].Gamma, 1e-12)
}

func TestSemivarianceZeroVarianceLag(t *testing.T) {
	points := []Point{{X: 0, Value: 3}, {X: 1, Value: 3}, {X: 2, Value: 3}}

	emp, err := CalculateSemivariance(points, []float64{1, 2}, 0.5)
	require.NoError(t, err)
	for _, l := range emp {
		assert.Equal(t, 0.0, l.Gamma)
		assert.Equal(t, 0, l.Count)
	}
}

func TestSemivarianceSinglePoint(t *testing.T) {
	emp, err := CalculateSemivariance([]Point{{X: 4, Y: 2, Value: 9}}, LagSequence(10, 1), 1)
	require.NoError(t, err)
	for _, l := range emp {
		assert.Equal(t, Lag{Distance: l.Distance}, l)
	}
}

func TestSemivarianceIdempotentAndNonNegative(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	points := make([]Point, 60)
	for i := range points {
		points[i] = Point{ID: i, X: rnd.Float64() * 100, Y: rnd.Float64() * 100, Value: rnd.NormFloat64() * 10}
	}
	lags := LagSequence(100, 2.5)

	first, err := CalculateSemivariance(points, lags, 2.5)
	require.NoError(t, err)
	second, err := CalculateSemivariance(points, lags, 2.5)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	for _, l := range first {
		assert.GreaterOrEqual(t, l.Gamma, 0.0)
		assert.GreaterOrEqual(t, l.Count, 0)
		if l.Gamma == 0 {
			assert.Equal(t, 0, l.Count)
		}
	}
}

func TestRateSemivariance(t *testing.T) {
	rates := func(i, j int) (float64, float64) {
		return float64(i) * 10, float64(j) * 10
	}

	emp, err := CalculateRateSemivariance(linePoints, []float64{1}, 0.5, rates)
	require.NoError(t, err)
	assert.Equal(t, Lag{Distance: 1, Gamma: 50, Count: 4}, emp[0])
}

func TestWeightedSemivariance(t *testing.T) {
	areas := []WeightedArea{
		{Area: Area{ID: 1, X: 0, Y: 0, Value: 1}, Population: 100},
		{Area: Area{ID: 2, X: 1, Y: 0, Value: 3}, Population: 100},
	}

	emp, err := CalculateWeightedSemivariance(areas, []float64{0, 1}, 0.5)
	require.NoError(t, err)

	// the bias outweighs the zero differences of the self pairs
	assert.Equal(t, Lag{Distance: 0}, emp[0])
	assert.Equal(t, 2, emp[1].Count)
	assert.InDelta(t, (400-2*2)/200.0, emp[1].Gamma, 1e-12)
}

func TestSemivarianceErrors(t *testing.T) {
	_, err := CalculateSemivariance(linePoints, nil, 1)
	assert.ErrorIs(t, err, ErrInputShape)

	_, err = CalculateSemivariance(linePoints, []float64{1}, -1)
	assert.ErrorIs(t, err, ErrInputShape)

	d := CalculateDistance(nil)
	_, err = Semivariances(d, []float64{1}, []float64{1}, 1, nil)
	assert.ErrorIs(t, err, ErrInputShape)

	_, err = Semivariances(nil, nil, []float64{1}, 1, nil)
	assert.ErrorIs(t, err, ErrInputShape)
}

func TestMaxLag(t *testing.T) {
	emp := EmpiricalSemivariogram{{Distance: 1, Gamma: 1, Count: 2}, {Distance: 3, Gamma: 2, Count: 4}, {Distance: 5}}
	assert.Equal(t, 3.0, emp.MaxLag())
	assert.Len(t, emp.Informative(), 2)
	assert.Equal(t, 0.0, EmpiricalSemivariogram{}.MaxLag())
}
