package kriging

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// matrixSolve solves the row-major n×n system a·x = b.
func matrixSolve(a []float64, b []float64, n int) ([]float64, error) {
	var lu mat.LU
	lu.Factorize(mat.NewDense(n, n, a))

	var x mat.VecDense
	if err := lu.SolveVecTo(&x, false, mat.NewVecDense(n, b)); err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) {
			return nil, fmt.Errorf("%w: condition number %.4e", ErrSingularSystem, float64(cond))
		}
		return nil, err
	}
	return x.RawVector().Data, nil
}
