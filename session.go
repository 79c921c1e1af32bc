package kriging

import (
	"fmt"
	"sync"
)

type sessionKey struct {
	dataset string
	lags    string
	step    float64
}

// Session memoises distance matrices and centroid semivariograms per
// dataset. The builders never keep results themselves; callers that want
// them retained go through a Session.
type Session struct {
	mu        sync.Mutex
	distances map[string]*DistanceArray
	semivars  map[sessionKey]EmpiricalSemivariogram
}

func NewSession() *Session {
	return &Session{
		distances: make(map[string]*DistanceArray),
		semivars:  make(map[sessionKey]EmpiricalSemivariogram),
	}
}

// Distances returns the centroid distance matrix of dataset, computing it on
// first use.
func (s *Session) Distances(dataset string, areas []Area) (*DistanceArray, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.distancesLocked(dataset, areas)
}

func (s *Session) distancesLocked(dataset string, areas []Area) (*DistanceArray, error) {
	if d, ok := s.distances[dataset]; ok {
		if d.Len() != len(areas) {
			return nil, fmt.Errorf("%w: dataset %q cached with %d areas, got %d", ErrInputShape, dataset, d.Len(), len(areas))
		}
		return d, nil
	}
	d, err := DistanceMatrix(areas)
	if err != nil {
		return nil, err
	}
	s.distances[dataset] = d
	return d, nil
}

// CentroidsSemivariance returns the semivariogram of the areal values of
// dataset located at their centroids.
func (s *Session) CentroidsSemivariance(dataset string, areas []Area, lags []float64, step float64) (EmpiricalSemivariogram, error) {
	key := sessionKey{dataset: dataset, lags: fmt.Sprint(lags), step: step}

	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.semivars[key]; ok {
		return append(EmpiricalSemivariogram(nil), e...), nil
	}

	d, err := s.distancesLocked(dataset, areas)
	if err != nil {
		return nil, err
	}
	values := make([]float64, len(areas))
	for i := range areas {
		values[i] = areas[i].Value
	}
	e, err := Semivariances(d, values, lags, step, nil)
	if err != nil {
		return nil, err
	}
	s.semivars[key] = e
	return append(EmpiricalSemivariogram(nil), e...), nil
}

// Reset forgets every cached result.
func (s *Session) Reset() {
	s.mu.Lock()
	s.distances = make(map[string]*DistanceArray)
	s.semivars = make(map[sessionKey]EmpiricalSemivariogram)
	s.mu.Unlock()
}
