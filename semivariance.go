package kriging

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// RatePairs supplies the pair of values compared for the ordered pair (i, j)
// in place of the raw observation values.
type RatePairs func(i, j int) (float64, float64)

// pairFunc returns the two compared values and the weight of pair (i, j).
type pairFunc func(i, j int) (a, b, w float64)

// LagSequence returns the lag centers 0, 2·step, 4·step, ... below maxRange.
func LagSequence(maxRange, step float64) []float64 {
	return arange(0, maxRange, 2*step)
}

// CalculateSemivariance bins the squared value differences of points by lag.
func CalculateSemivariance(points []Point, lags []float64, step float64) (EmpiricalSemivariogram, error) {
	return CalculateRateSemivariance(points, lags, step, nil)
}

// CalculateRateSemivariance is CalculateSemivariance with the compared values
// taken from rates when rates is not nil.
func CalculateRateSemivariance(points []Point, lags []float64, step float64, rates RatePairs) (EmpiricalSemivariogram, error) {
	d, err := DistanceMatrix(points)
	if err != nil {
		return nil, err
	}
	values := make([]float64, len(points))
	for i := range points {
		values[i] = points[i].Value
	}
	return Semivariances(d, values, lags, step, rates)
}

// CalculateWeightedSemivariance computes the population weighted semivariance
// of areal rates. Each pair is weighted by n_i·n_j/(n_i+n_j) and the
// population weighted mean rate is subtracted once per pair.
func CalculateWeightedSemivariance(areas []WeightedArea, lags []float64, step float64) (EmpiricalSemivariogram, error) {
	coords := make([]Area, len(areas))
	values := make([]float64, len(areas))
	pops := make([]float64, len(areas))
	for i := range areas {
		coords[i] = areas[i].Area
		values[i] = areas[i].Value
		pops[i] = areas[i].Population
	}
	d, err := DistanceMatrix(coords)
	if err != nil {
		return nil, err
	}
	bias := populationMean(values, pops)
	pair := func(i, j int) (float64, float64, float64) {
		s := pops[i] + pops[j]
		if s == 0 {
			return values[i], values[j], 0
		}
		return values[i], values[j], pops[i] * pops[j] / s
	}
	return semivariances(d, lags, step, pair, bias)
}

// Semivariances is the aggregation shared by every entry point. values are
// indexed like the rows of d; rates, when set, replaces them.
func Semivariances(d *DistanceArray, values []float64, lags []float64, step float64, rates RatePairs) (EmpiricalSemivariogram, error) {
	if d == nil {
		return nil, fmt.Errorf("%w: nil distance array", ErrInputShape)
	}
	if d.Len() != len(values) {
		return nil, fmt.Errorf("%w: %d distances rows for %d values", ErrInputShape, d.Len(), len(values))
	}
	pair := func(i, j int) (float64, float64, float64) {
		return values[i], values[j], 1
	}
	if rates != nil {
		pair = func(i, j int) (float64, float64, float64) {
			a, b := rates(i, j)
			return a, b, 1
		}
	}
	return semivariances(d, lags, step, pair, 0)
}

func semivariances(d *DistanceArray, lags []float64, step float64, pair pairFunc, bias float64) (EmpiricalSemivariogram, error) {
	if len(lags) == 0 {
		return nil, fmt.Errorf("%w: empty lag sequence", ErrInputShape)
	}
	if step < 0 {
		return nil, fmt.Errorf("%w: negative step size %v", ErrInputShape, step)
	}

	n := d.Len()
	ret := make(EmpiricalSemivariogram, len(lags))
	for l, h := range lags {
		low, high := h-step, h+step
		var sum, wsum float64
		count := 0
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				dist := d.At(i, j)
				if dist < low || dist > high {
					continue
				}
				a, b, w := pair(i, j)
				sum += w * pow2(a-b)
				wsum += w
				count++
			}
		}

		gamma := 0.0
		if count > 0 && wsum > 0 {
			gamma = (sum - bias*float64(count)) / (2 * wsum)
		}
		if gamma <= 0 {
			gamma = 0
			count = 0
		}
		ret[l] = Lag{Distance: h, Gamma: gamma, Count: count}
	}
	return ret, nil
}

// MaxLag returns the largest informative lag distance.
func (e EmpiricalSemivariogram) MaxLag() float64 {
	inf := e.Informative()
	if len(inf) == 0 {
		return 0
	}
	ds := make([]float64, len(inf))
	for i := range inf {
		ds[i] = inf[i].Distance
	}
	return floats.Max(ds)
}
