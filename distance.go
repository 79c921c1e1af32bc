package kriging

import (
	"encoding/json"
	"fmt"

	vec2d "github.com/flywave/go3d/float64/vec2"
	"gonum.org/v1/gonum/mat"
)

// DistanceArray holds the pairwise euclidean distances of an ordered
// collection of locations. It is never modified after construction.
type DistanceArray struct {
	sym     *mat.SymDense
	coerced bool
}

// CalculateDistance builds the distance matrix of coords.
func CalculateDistance(coords []vec2d.T) *DistanceArray {
	n := len(coords)
	if n == 0 {
		return &DistanceArray{}
	}
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			sym.SetSym(i, j, distance(coords[i], coords[j]))
		}
	}
	return &DistanceArray{sym: sym}
}

// DistanceMatrix accepts any supported coordinate layout. Layouts that need
// conversion are converted once; the result then reports Coerced.
func DistanceMatrix(input interface{}) (*DistanceArray, error) {
	coords, err := strictCoordinates(input)
	if err == nil {
		return CalculateDistance(coords), nil
	}
	coords, cerr := coerceCoordinates(input)
	if cerr != nil {
		return nil, cerr
	}
	logf("coordinates of type %T have been converted to a numeric array to calculate distance", input)
	d := CalculateDistance(coords)
	d.coerced = true
	return d, nil
}

func (d *DistanceArray) Len() int {
	if d.sym == nil {
		return 0
	}
	return d.sym.SymmetricDim()
}

func (d *DistanceArray) At(i, j int) float64 {
	return d.sym.At(i, j)
}

// Coerced reports whether the input had to be converted before use.
func (d *DistanceArray) Coerced() bool {
	return d.coerced
}

// Row returns a copy of row i.
func (d *DistanceArray) Row(i int) []float64 {
	n := d.Len()
	ret := make([]float64, n)
	for j := 0; j < n; j++ {
		ret[j] = d.sym.At(i, j)
	}
	return ret
}

func strictCoordinates(input interface{}) ([]vec2d.T, error) {
	switch v := input.(type) {
	case []vec2d.T:
		return v, nil
	case [][2]float64:
		ret := make([]vec2d.T, len(v))
		for i := range v {
			ret[i] = vec2d.T(v[i])
		}
		return ret, nil
	case []Point:
		ret := make([]vec2d.T, len(v))
		for i := range v {
			ret[i] = v[i].Pos()
		}
		return ret, nil
	case []Area:
		ret := make([]vec2d.T, len(v))
		for i := range v {
			ret[i] = v[i].Centroid()
		}
		return ret, nil
	}
	return nil, fmt.Errorf("%w: unsupported coordinate layout %T", ErrInputShape, input)
}

func coerceCoordinates(input interface{}) ([]vec2d.T, error) {
	switch v := input.(type) {
	case [][]float64:
		ret := make([]vec2d.T, len(v))
		for i, row := range v {
			if len(row) != 2 {
				return nil, fmt.Errorf("%w: row %d has %d columns, want 2", ErrInputShape, i, len(row))
			}
			ret[i] = vec2d.T{row[0], row[1]}
		}
		return ret, nil
	case [][]interface{}:
		rows := make([]interface{}, len(v))
		for i := range v {
			rows[i] = v[i]
		}
		return coerceRows(rows)
	case []interface{}:
		return coerceRows(v)
	}
	return nil, fmt.Errorf("%w: unsupported coordinate layout %T", ErrInputShape, input)
}

func coerceRows(rows []interface{}) ([]vec2d.T, error) {
	ret := make([]vec2d.T, len(rows))
	for i, r := range rows {
		row, ok := r.([]interface{})
		if !ok {
			return nil, fmt.Errorf("%w: row %d is %T", ErrInputShape, i, r)
		}
		if len(row) != 2 {
			return nil, fmt.Errorf("%w: row %d has %d columns, want 2", ErrInputShape, i, len(row))
		}
		for k := 0; k < 2; k++ {
			f, err := toFloat(row[k])
			if err != nil {
				return nil, fmt.Errorf("%w: row %d column %d: %v", ErrInputShape, i, k, err)
			}
			ret[i][k] = f
		}
	}
	return ret, nil
}

func toFloat(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case json.Number:
		return n.Float64()
	}
	return 0, fmt.Errorf("non numeric value %v (%T)", v, v)
}
