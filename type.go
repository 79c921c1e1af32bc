package kriging

import (
	vec2d "github.com/flywave/go3d/float64/vec2"
)

type ModelType string

const (
	Linear      ModelType = "linear"
	Spherical   ModelType = "spherical"
	Exponential ModelType = "exponential"
	Gaussian    ModelType = "gaussian"
)

// Families lists every model family the fitter knows, in search order.
var Families = []ModelType{Linear, Spherical, Exponential, Gaussian}

// Point is a single observation. For point support rows ID holds the id of
// the enclosing area.
type Point struct {
	ID    int     `json:"id"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Value float64 `json:"value"`
}

func (p Point) Pos() vec2d.T {
	return vec2d.T{p.X, p.Y}
}

// Area is an areal observation located at its centroid. Support holds the
// point observations the areal value was aggregated from.
type Area struct {
	ID      int     `json:"id"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Value   float64 `json:"value"`
	Support []Point `json:"support,omitempty"`
}

func (a Area) Centroid() vec2d.T {
	return vec2d.T{a.X, a.Y}
}

// Lag is one row of an empirical semivariogram.
type Lag struct {
	Distance float64 `json:"lag"`
	Gamma    float64 `json:"gamma"`
	Count    int     `json:"count"`
}

type EmpiricalSemivariogram []Lag

// Informative returns the lags backed by at least one pair.
func (e EmpiricalSemivariogram) Informative() EmpiricalSemivariogram {
	ret := make(EmpiricalSemivariogram, 0, len(e))
	for _, l := range e {
		if l.Count > 0 {
			ret = append(ret, l)
		}
	}
	return ret
}

type neighbor struct {
	index    int
	distance float64
}

type neighborList []neighbor

func (t neighborList) Len() int {
	return len(t)
}

func (t neighborList) Less(i, j int) bool {
	return t[i].distance < t[j].distance
}

func (t neighborList) Swap(i, j int) {
	t[i], t[j] = t[j], t[i]
}
