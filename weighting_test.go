package kriging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetArealWeights(t *testing.T) {
	a := assert.New(t)

	areas := []Area{
		{ID: 1, X: 0, Y: 0, Value: 10},
		{ID: 2, X: 5, Y: 0, Value: 20},
		{ID: 3, X: 0, Y: 5, Value: 30},
	}
	points := []Point{
		{ID: 3, X: 0, Y: 4, Value: 40},
		{ID: 1, X: 1, Y: 1, Value: 100},
		{ID: 9, X: 50, Y: 50, Value: 7},
		{ID: 1, X: -1, Y: 0, Value: 50},
	}

	w, err := SetArealWeights(areas, points)
	require.NoError(t, err)

	a.Equal([]int{2}, w.Dropped)
	a.Equal(1, w.Orphans)
	require.Len(t, w.Areas, 2)

	a.Equal(1, w.Areas[0].ID)
	a.Equal(150.0, w.Areas[0].Population)
	a.Len(w.Areas[0].Support, 2)
	a.Equal(3, w.Areas[1].ID)
	a.Equal(40.0, w.Areas[1].Population)
	a.Equal([]float64{10, 30}, w.Values())

	// the input areas are left untouched
	a.Nil(areas[0].Support)
}

func TestSetArealWeightsErrors(t *testing.T) {
	_, err := SetArealWeights([]Area{{ID: 1}, {ID: 1}}, []Point{{ID: 1, Value: 1}})
	assert.ErrorIs(t, err, ErrInputShape)

	_, err = SetArealWeights([]Area{{ID: 1}, {ID: 2}}, []Point{{ID: 3, Value: 1}})
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestPopulationMean(t *testing.T) {
	assert.Equal(t, 2.0, populationMean([]float64{1, 3}, []float64{0, 0}))
	assert.Equal(t, 2.5, populationMean([]float64{1, 3}, []float64{1, 3}))
	assert.Equal(t, 0.0, populationMean(nil, nil))
}
