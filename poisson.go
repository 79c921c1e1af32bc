package kriging

import (
	"context"
	"errors"
	"fmt"
	"math"

	vec2d "github.com/flywave/go3d/float64/vec2"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// Prediction is the result of one Area-to-Area Poisson Kriging estimate.
type Prediction struct {
	AreaID int     `json:"area_id"`
	Value  float64 `json:"value"`
	Error  float64 `json:"error"`

	Weights     []float64 `json:"weights"`
	NeighborIDs []int     `json:"neighbor_ids"`
	Lagrange    float64   `json:"lagrange"`

	// Extrapolated is set when the unknown centroid lies outside the convex
	// hull of the known centroids.
	Extrapolated bool `json:"extrapolated"`
}

// PoissonKriging predicts areal rates from known areas and their point
// support. It holds no mutable state once built.
type PoissonKriging struct {
	model   *TheoreticalModel
	areas   []WeightedArea
	dropped []int
	index   *areaIndex
	hull    *Convex
}

// NewPoissonKriging joins the known areas with their point support and
// indexes their centroids. Areas without support are dropped, see Dropped.
func NewPoissonKriging(model *TheoreticalModel, areas []Area, points []Point) (*PoissonKriging, error) {
	if model == nil {
		return nil, errors.New("nil semivariogram model")
	}
	w, err := SetArealWeights(areas, points)
	if err != nil {
		return nil, err
	}

	centroids := make([]vec2d.T, len(w.Areas))
	for i := range w.Areas {
		centroids[i] = w.Areas[i].Centroid()
	}
	hull := NewConvex(centroids)
	hull.Hull()
	hull.Edges()

	return &PoissonKriging{
		model:   model,
		areas:   w.Areas,
		dropped: w.Dropped,
		index:   newAreaIndex(centroids),
		hull:    hull,
	}, nil
}

// Dropped returns the ids of known areas ignored for lack of point support.
func (pk *PoissonKriging) Dropped() []int {
	return append([]int(nil), pk.dropped...)
}

func (pk *PoissonKriging) Model() *TheoreticalModel {
	return pk.model
}

// Predict estimates the value of unknown from at most numberOfObservations
// known areas whose centroids lie within searchRadius. A known area sharing
// the unknown's id is never used. When unknown has no point support its
// centroid stands in for it.
func (pk *PoissonKriging) Predict(unknown Area, numberOfObservations int, searchRadius float64) (*Prediction, error) {
	neighbors := pk.index.nearest(unknown.Centroid(), numberOfObservations, searchRadius, func(i int) bool {
		return pk.areas[i].ID == unknown.ID
	})
	if len(neighbors) == 0 {
		return nil, fmt.Errorf("%w: area %d, radius %v", ErrInsufficientNeighbors, unknown.ID, searchRadius)
	}

	n := len(neighbors)
	size := n + 1
	supports := make([][]Point, n)
	values := make([]float64, n)
	pops := make([]float64, n)
	ids := make([]int, n)
	for i, nb := range neighbors {
		a := pk.areas[nb.index]
		supports[i] = a.Support
		values[i] = a.Value
		pops[i] = a.Population
		ids[i] = a.ID
	}
	target := blockSupport(unknown)

	// Poisson term m*/n_i. It raises the covariance diagonal, so it is taken
	// off the semivariance diagonal.
	rate := populationMean(values, pops)

	k := make([]float64, size*size)
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			g := pk.blockSemivariance(supports[i], supports[j])
			k[i*size+j] = g
			k[j*size+i] = g
		}
		k[i*size+i] = pk.blockSemivariance(supports[i], supports[i])
		if pops[i] > 0 {
			k[i*size+i] -= rate / pops[i]
		}
		k[i*size+n] = 1
		k[n*size+i] = 1
	}

	b := make([]float64, size)
	for i := 0; i < n; i++ {
		b[i] = pk.blockSemivariance(supports[i], target)
	}
	b[n] = 1

	x, err := matrixSolve(k, b, size)
	if err != nil {
		return nil, fmt.Errorf("area %d with neighbors %v: %w", unknown.ID, ids, err)
	}

	weights := x[:n]
	lagrange := x[n]
	sigma := floats.Dot(weights, b[:n]) + lagrange - pk.blockSemivariance(target, target)
	if sigma < 0 {
		sigma = 0
	}

	return &Prediction{
		AreaID:       unknown.ID,
		Value:        floats.Dot(weights, values),
		Error:        math.Sqrt(sigma),
		Weights:      append([]float64(nil), weights...),
		NeighborIDs:  ids,
		Lagrange:     lagrange,
		Extrapolated: !pk.hull.Degenerate() && !pk.hull.Contains(unknown.Centroid()),
	}, nil
}

// Outcome pairs one prediction of PredictMany with its failure.
type Outcome struct {
	AreaID     int
	Prediction *Prediction
	Err        error
}

// PredictMany runs Predict for every unknown area on at most workers
// goroutines. A failed prediction is reported in its Outcome and does not
// stop the others. Outcomes keep the order of unknowns.
func (pk *PoissonKriging) PredictMany(ctx context.Context, unknowns []Area, numberOfObservations int, searchRadius float64, workers int) []Outcome {
	out := make([]Outcome, len(unknowns))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i := range unknowns {
		i := i
		g.Go(func() error {
			out[i].AreaID = unknowns[i].ID
			if err := ctx.Err(); err != nil {
				out[i].Err = err
				return nil
			}
			out[i].Prediction, out[i].Err = pk.Predict(unknowns[i], numberOfObservations, searchRadius)
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// blockSupport returns the point support of a, or its centroid as a single
// unit weight point when it has none.
func blockSupport(a Area) []Point {
	if len(a.Support) > 0 {
		return a.Support
	}
	return []Point{{ID: a.ID, X: a.X, Y: a.Y, Value: 1}}
}

// blockSemivariance averages the model over all point pairs of two supports,
// weighting each pair by the product of the point values.
func (pk *PoissonKriging) blockSemivariance(a, b []Point) float64 {
	var sum, wsum, plain float64
	for i := range a {
		pa := a[i].Pos()
		for j := range b {
			g := pk.model.Predict(distance(pa, b[j].Pos()))
			w := a[i].Value * b[j].Value
			sum += w * g
			wsum += w
			plain += g
		}
	}
	if wsum <= 0 {
		return plain / float64(len(a)*len(b))
	}
	return sum / wsum
}
