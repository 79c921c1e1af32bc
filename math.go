package kriging

import (
	"math"

	vec2d "github.com/flywave/go3d/float64/vec2"
)

func exp(x float64) float64 {
	if x == 0 {
		return 1
	}
	return math.Exp(x)
}

func pow2(x float64) float64 {
	return x * x
}

func pow3(x float64) float64 {
	return x * x * x
}

func distance(a, b vec2d.T) float64 {
	d := vec2d.Sub(&a, &b)
	return d.Length()
}

// arange mirrors the half-open range [start, stop) with the given increment.
func arange(start, stop, step float64) []float64 {
	if step <= 0 || stop <= start {
		return nil
	}
	n := int(math.Ceil((stop - start) / step))
	ret := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		v := start + float64(i)*step
		if v >= stop {
			break
		}
		ret = append(ret, v)
	}
	return ret
}
