package kriging

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WeightedArea is an area with the population of its point support.
type WeightedArea struct {
	Area
	Population float64 `json:"population"`
}

// ArealWeights is the result of joining areas with their point support.
type ArealWeights struct {
	Areas []WeightedArea

	// Dropped lists the ids of areas without any point support, in input order.
	Dropped []int

	// Orphans counts points whose area id matches no area.
	Orphans int
}

// Values returns the areal values in the order of Areas.
func (w *ArealWeights) Values() []float64 {
	ret := make([]float64, len(w.Areas))
	for i := range w.Areas {
		ret[i] = w.Areas[i].Value
	}
	return ret
}

// SetArealWeights attaches to every area the points carrying its id and sums
// their values into the area population. Areas left without points are
// dropped and reported.
func SetArealWeights(areas []Area, points []Point) (*ArealWeights, error) {
	index := make(map[int]int, len(areas))
	for i, a := range areas {
		if _, ok := index[a.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate area id %d", ErrInputShape, a.ID)
		}
		index[a.ID] = i
	}

	support := make([][]Point, len(areas))
	ret := &ArealWeights{}
	for _, p := range points {
		i, ok := index[p.ID]
		if !ok {
			ret.Orphans++
			continue
		}
		support[i] = append(support[i], p)
	}

	ret.Areas = make([]WeightedArea, 0, len(areas))
	for i, a := range areas {
		if len(support[i]) == 0 {
			ret.Dropped = append(ret.Dropped, a.ID)
			continue
		}
		a.Support = support[i]
		ret.Areas = append(ret.Areas, WeightedArea{Area: a, Population: supportPopulation(support[i])})
	}

	if len(ret.Dropped) > 0 {
		logf("dropped %d areas without point support: %v", len(ret.Dropped), ret.Dropped)
	}
	if ret.Orphans > 0 {
		logf("ignored %d points outside every known area", ret.Orphans)
	}
	if len(ret.Areas) == 0 {
		return nil, fmt.Errorf("%w: no area has point support", ErrInsufficientData)
	}
	return ret, nil
}

func supportPopulation(points []Point) float64 {
	v := make([]float64, len(points))
	for i := range points {
		v[i] = points[i].Value
	}
	return floats.Sum(v)
}

// populationMean is the population weighted mean of values, falling back to
// the plain mean when no population is known.
func populationMean(values, pops []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	if floats.Sum(pops) <= 0 {
		return stat.Mean(values, nil)
	}
	return stat.Mean(values, pops)
}
