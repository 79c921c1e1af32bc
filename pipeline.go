package kriging

import (
	"context"
	"fmt"
)

// Interpolate runs the whole chain described by cfg: areal weights, the
// population weighted semivariogram, the model fit and one prediction per
// unknown area. Failed predictions are reported in their Outcome.
func Interpolate(ctx context.Context, cfg *Config, areas []Area, points []Point, unknowns []Area) (*TheoreticalModel, []Outcome, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	w, err := SetArealWeights(areas, points)
	if err != nil {
		return nil, nil, err
	}
	emp, err := CalculateWeightedSemivariance(w.Areas, cfg.Lags(), cfg.Semivariance.StepSize)
	if err != nil {
		return nil, nil, fmt.Errorf("semivariance: %w", err)
	}
	model, err := FitSemivariogram(emp, w.Values(), cfg.FitOptions())
	if err != nil {
		return nil, nil, fmt.Errorf("fit: %w", err)
	}
	pk, err := NewPoissonKriging(model, areas, points)
	if err != nil {
		return nil, nil, err
	}
	out := pk.PredictMany(ctx, unknowns, cfg.Prediction.NumberOfObservations, cfg.Prediction.SearchRadius, cfg.Prediction.Workers)
	return model, out, nil
}
