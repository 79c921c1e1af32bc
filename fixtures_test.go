package kriging

import (
	"io"
	"log"
	"math"
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	SetLogger(log.New(io.Discard, "", 0))
	os.Exit(m.Run())
}

// ring places len(values) areas on a circle around the origin, each carrying
// a single support point of the given population at its centroid.
func ring(firstID int, radius, startDeg float64, values []float64, population float64) ([]Area, []Point) {
	areas := make([]Area, len(values))
	points := make([]Point, len(values))
	step := 360 / float64(len(values))
	for i, v := range values {
		rad := (startDeg + step*float64(i)) * math.Pi / 180
		x, y := radius*math.Cos(rad), radius*math.Sin(rad)
		areas[i] = Area{ID: firstID + i, X: x, Y: y, Value: v}
		points[i] = Point{ID: firstID + i, X: x, Y: y, Value: population}
	}
	return areas, points
}

// goldenScenario is the reference area-to-area setup: unknown area 1 at the
// origin, an inner ring of areas 2..4 around it and an outer ring 5..7.
func goldenScenario() (known []Area, points []Point, unknown Area, maxRange, step float64) {
	inner, innerPts := ring(2, 10, 90, []float64{120, 126, 132}, 1000)
	outer, outerPts := ring(5, 30, 30, []float64{100, 140, 118}, 1000)
	known = append(inner, outer...)
	points = append(innerPts, outerPts...)
	unknown = Area{ID: 1, X: 0, Y: 0, Support: []Point{{ID: 1, X: 0, Y: 0, Value: 1000}}}
	maxRange = 60
	step = maxRange / 10
	return known, points, unknown, maxRange, step
}
