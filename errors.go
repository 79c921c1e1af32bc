package kriging

import "errors"

var (
	// ErrInputShape reports input that cannot be read as the required
	// rectangular numeric layout.
	ErrInputShape = errors.New("input cannot be coerced to a numeric layout")

	// ErrInsufficientData reports too few informative lags to fit a model or
	// too few usable areas to build a predictor.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrInsufficientNeighbors is returned by Predict when no known area lies
	// within the search radius.
	ErrInsufficientNeighbors = errors.New("no known areas within search radius")

	// ErrSingularSystem is returned when the kriging system cannot be solved,
	// usually because two neighbors share a location.
	ErrSingularSystem = errors.New("kriging system is singular")
)
