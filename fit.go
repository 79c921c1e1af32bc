package kriging

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat"
)

// FitOptions controls the parameter search of FitSemivariogram.
type FitOptions struct {
	Families []ModelType

	// NumberOfRanges ranges are swept evenly over (0, max lag].
	NumberOfRanges int

	// SillFractions and NuggetFractions scale the base sill, which is the
	// variance of the observed values or the largest empirical gamma.
	SillFractions   []float64
	NuggetFractions []float64

	// MinLags is the least number of informative lags accepted.
	MinLags int

	// WeightByPairs weights each lag's squared error by its pair count.
	WeightByPairs bool

	// Refine polishes the best grid point with Nelder-Mead.
	Refine bool
}

func DefaultFitOptions() FitOptions {
	return FitOptions{
		Families:        Families,
		NumberOfRanges:  16,
		SillFractions:   []float64{0.5, 0.75, 1, 1.25, 1.5},
		NuggetFractions: []float64{0, 0.05, 0.1, 0.25},
		MinLags:         3,
		WeightByPairs:   true,
		Refine:          true,
	}
}

// FitSemivariogram fits every family of opts and returns the one with the
// lowest fit error. values are the observations the semivariogram was built
// from and may be nil.
func FitSemivariogram(emp EmpiricalSemivariogram, values []float64, opts FitOptions) (*TheoreticalModel, error) {
	families := opts.Families
	if len(families) == 0 {
		families = Families
	}

	var best *TheoreticalModel
	var lastErr error
	for _, family := range families {
		m, err := FitFamily(emp, values, family, opts)
		if err != nil {
			if errors.Is(err, ErrInsufficientData) {
				return nil, err
			}
			logf("fit %s: %v", family, err)
			lastErr = err
			continue
		}
		if best == nil || m.FitError < best.FitError {
			best = m
		}
	}
	if best == nil {
		return nil, fmt.Errorf("no model family could be fitted: %w", lastErr)
	}
	return best, nil
}

// FitFamily fits a single model family.
func FitFamily(emp EmpiricalSemivariogram, values []float64, family ModelType, opts FitOptions) (*TheoreticalModel, error) {
	model, err := ModelFunc(family)
	if err != nil {
		return nil, err
	}

	lags := emp.Informative()
	minLags := opts.MinLags
	if minLags < 1 {
		minLags = 1
	}
	if len(lags) < minLags {
		return nil, fmt.Errorf("%w: %d informative lags, need %d", ErrInsufficientData, len(lags), minLags)
	}

	maxLag := lags.MaxLag()
	if maxLag <= 0 {
		return nil, fmt.Errorf("%w: no lag beyond zero distance", ErrInsufficientData)
	}
	baseSill := baseSill(lags, values)

	f := fitError(lags, model, opts.WeightByPairs)

	nr := opts.NumberOfRanges
	if nr < 1 {
		nr = 1
	}
	sills := opts.SillFractions
	if len(sills) == 0 {
		sills = []float64{1}
	}
	nuggets := opts.NuggetFractions
	if len(nuggets) == 0 {
		nuggets = []float64{0}
	}

	best := [3]float64{}
	bestErr := math.Inf(1)
	for r := 1; r <= nr; r++ {
		rng := maxLag * float64(r) / float64(nr)
		for _, sf := range sills {
			sill := baseSill * sf
			for _, nf := range nuggets {
				nugget := baseSill * nf
				if sill <= 0 || nugget > sill {
					continue
				}
				if e := f(nugget, sill, rng); e < bestErr {
					bestErr = e
					best = [3]float64{nugget, sill, rng}
				}
			}
		}
	}
	if math.IsInf(bestErr, 1) {
		return nil, fmt.Errorf("%s: no admissible parameters for base sill %v", family, baseSill)
	}

	if opts.Refine {
		if p, e, ok := refine(f, best); ok && e < bestErr {
			best, bestErr = p, e
		}
	}

	return &TheoreticalModel{
		Family:   family,
		Nugget:   best[0],
		Sill:     best[1],
		Range:    best[2],
		FitError: bestErr,
		model:    model,
	}, nil
}

func baseSill(lags EmpiricalSemivariogram, values []float64) float64 {
	if len(values) > 1 {
		// population variance, as for the areal values themselves
		_, v := stat.PopMeanVariance(values, nil)
		if v > 0 {
			return v
		}
	}
	g := make([]float64, len(lags))
	for i := range lags {
		g[i] = lags[i].Gamma
	}
	return floats.Max(g)
}

// fitError returns the (optionally pair weighted) root mean squared error of
// a parameter set over the informative lags.
func fitError(lags EmpiricalSemivariogram, model KrigingModel, byPairs bool) func(nugget, sill, rng float64) float64 {
	w := make([]float64, len(lags))
	for i := range lags {
		w[i] = 1
		if byPairs {
			w[i] = float64(lags[i].Count)
		}
	}
	wsum := floats.Sum(w)
	return func(nugget, sill, rng float64) float64 {
		var sse float64
		for i := range lags {
			sse += w[i] * pow2(model(lags[i].Distance, nugget, sill, rng)-lags[i].Gamma)
		}
		return math.Sqrt(sse / wsum)
	}
}

// refine searches around start in coordinates scaled by start itself, so
// every parameter begins at 1. A zero nugget is scaled by 1% of the sill.
func refine(f func(nugget, sill, rng float64) float64, start [3]float64) ([3]float64, float64, bool) {
	scale := start
	if scale[0] == 0 {
		scale[0] = start[1] * 0.01
	}
	unpack := func(x []float64) [3]float64 {
		return [3]float64{math.Abs(x[0]) * scale[0], math.Abs(x[1]) * scale[1], math.Abs(x[2]) * scale[2]}
	}
	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			p := unpack(x)
			if p[1] <= 0 || p[2] <= 0 || p[0] > p[1] {
				return math.Inf(1)
			}
			return f(p[0], p[1], p[2])
		},
	}
	init := []float64{start[0] / scale[0], 1, 1}
	res, err := optimize.Minimize(problem, init, &optimize.Settings{FuncEvaluations: 2000}, &optimize.NelderMead{})
	if err != nil || res == nil {
		return start, 0, false
	}
	p := unpack(res.X)
	e := f(p[0], p[1], p[2])
	if math.IsNaN(e) || math.IsInf(e, 0) || p[1] <= 0 || p[2] <= 0 || p[0] > p[1] {
		return start, 0, false
	}
	return p, e, true
}
