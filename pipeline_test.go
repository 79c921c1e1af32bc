package kriging

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpolate(t *testing.T) {
	a := assert.New(t)
	known, points, unknown, maxRange, step := goldenScenario()

	cfg := DefaultConfig()
	cfg.Semivariance.MaxRange = maxRange
	cfg.Semivariance.StepSize = step
	cfg.Prediction.NumberOfObservations = 3
	cfg.Prediction.SearchRadius = maxRange / 2

	model, out, err := Interpolate(context.Background(), cfg, known, points, []Area{unknown})
	require.NoError(t, err)
	require.NotNil(t, model)
	a.Contains(Families, model.Family)
	a.Equal(model.Nugget, model.Predict(0))

	require.Len(t, out, 1)
	require.NoError(t, out[0].Err)
	a.Equal(126, int(math.Round(out[0].Prediction.Value)))
}

func TestInterpolateErrors(t *testing.T) {
	known, points, unknown, _, _ := goldenScenario()

	cfg := DefaultConfig()
	cfg.Semivariance.StepSize = -1
	_, _, err := Interpolate(context.Background(), cfg, known, points, []Area{unknown})
	assert.Error(t, err)

	cfg = DefaultConfig()
	_, _, err = Interpolate(context.Background(), cfg, known, nil, []Area{unknown})
	assert.ErrorIs(t, err, ErrInsufficientData)

	// MaxRange zero leaves no lag to fit.
	_, _, err = Interpolate(context.Background(), cfg, known, points, []Area{unknown})
	assert.ErrorIs(t, err, ErrInputShape)
}
