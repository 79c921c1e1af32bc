package kriging

import (
	"fmt"
	"math"
)

// TheoreticalModel is a fitted semivariogram. It is not modified after
// fitting and may be shared between goroutines.
type TheoreticalModel struct {
	Family   ModelType `json:"family"`
	Nugget   float64   `json:"nugget"`
	Sill     float64   `json:"sill"`
	Range    float64   `json:"range"`
	FitError float64   `json:"fit_error"`

	model KrigingModel
}

// KrigingModel evaluates a semivariogram family at distance h.
type KrigingModel func(h, nugget, sill, range_ float64) float64

// NewTheoreticalModel builds a model from known parameters.
func NewTheoreticalModel(family ModelType, nugget, sill, range_ float64) (*TheoreticalModel, error) {
	model, err := ModelFunc(family)
	if err != nil {
		return nil, err
	}
	if nugget < 0 || sill <= 0 || sill < nugget || range_ <= 0 {
		return nil, fmt.Errorf("%w: invalid %s parameters nugget=%v sill=%v range=%v", ErrInputShape, family, nugget, sill, range_)
	}
	return &TheoreticalModel{Family: family, Nugget: nugget, Sill: sill, Range: range_, model: model}, nil
}

// ModelFunc returns the closed form of a model family.
func ModelFunc(family ModelType) (KrigingModel, error) {
	switch family {
	case Linear:
		return krigingLinear, nil
	case Spherical:
		return krigingSpherical, nil
	case Exponential:
		return krigingExponential, nil
	case Gaussian:
		return krigingGaussian, nil
	}
	return nil, fmt.Errorf("unknown model family %q", family)
}

// Predict returns the modelled semivariance at distance h.
func (m *TheoreticalModel) Predict(h float64) float64 {
	if m.model == nil {
		// models decoded from JSON carry no closure
		model, err := ModelFunc(m.Family)
		if err != nil {
			return math.NaN()
		}
		return model(h, m.Nugget, m.Sill, m.Range)
	}
	return m.model(h, m.Nugget, m.Sill, m.Range)
}

func (m *TheoreticalModel) String() string {
	return fmt.Sprintf("%s(nugget=%.6g, sill=%.6g, range=%.6g, error=%.6g)", m.Family, m.Nugget, m.Sill, m.Range, m.FitError)
}

func krigingLinear(h, nugget, sill, range_ float64) float64 {
	if h > range_ {
		return sill
	}
	return nugget + (sill-nugget)*(h/range_)
}

func krigingSpherical(h, nugget, sill, range_ float64) float64 {
	if h > range_ {
		return sill
	}
	x := h / range_
	return nugget + (sill-nugget)*(1.5*x-0.5*pow3(x))
}

func krigingExponential(h, nugget, sill, range_ float64) float64 {
	return nugget + (sill-nugget)*(1.0-exp(-h/range_))
}

func krigingGaussian(h, nugget, sill, range_ float64) float64 {
	return nugget + (sill-nugget)*(1.0-exp(-pow2(h/range_)))
}
