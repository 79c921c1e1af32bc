package kriging

import (
	"fmt"
)

func ExampleCalculateSemivariance() {
	points := []Point{
		{X: 0, Y: 0, Value: 1},
		{X: 1, Y: 0, Value: 2},
		{X: 2, Y: 0, Value: 4},
	}
	emp, _ := CalculateSemivariance(points, []float64{0, 1, 2}, 0.5)
	for _, l := range emp {
		fmt.Printf("%.2f %.4f %d\n", l.Distance, l.Gamma, l.Count)
	}
	// Output:
	// 0.00 0.0000 0
	// 1.00 1.2500 4
	// 2.00 4.5000 2
}

func ExampleTheoreticalModel_Predict() {
	model, _ := NewTheoreticalModel(Spherical, 1, 10, 50)
	for _, h := range []float64{0, 25, 50, 100} {
		fmt.Printf("%.4f\n", model.Predict(h))
	}
	// Output:
	// 1.0000
	// 7.1875
	// 10.0000
	// 10.0000
}
