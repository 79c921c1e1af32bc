package kriging

import (
	"math"
	"sort"

	"github.com/dhconnelly/rtreego"
	vec2d "github.com/flywave/go3d/float64/vec2"
)

const (
	minChildren    = 4
	maxChildren    = 16
	pointTolerance = 1e-9
)

type indexedArea struct {
	index int
	rect  rtreego.Rect
}

func (a *indexedArea) Bounds() rtreego.Rect {
	return a.rect
}

// areaIndex answers radius queries over area centroids. Results are
// identical to a linear scan: the tree only narrows the candidates.
type areaIndex struct {
	tree      *rtreego.Rtree
	centroids []vec2d.T
}

func newAreaIndex(centroids []vec2d.T) *areaIndex {
	objs := make([]rtreego.Spatial, len(centroids))
	for i, c := range centroids {
		objs[i] = &indexedArea{index: i, rect: rtreego.Point{c[0], c[1]}.ToRect(pointTolerance)}
	}
	return &areaIndex{
		tree:      rtreego.NewTree(2, minChildren, maxChildren, objs...),
		centroids: centroids,
	}
}

// nearest returns up to k areas with centroid distance <= radius from
// center, closest first. Equal distances keep input order. Areas for which
// skip returns true are ignored.
func (x *areaIndex) nearest(center vec2d.T, k int, radius float64, skip func(int) bool) neighborList {
	if k <= 0 || radius < 0 || math.IsNaN(radius) {
		return nil
	}
	margin := radius + pointTolerance + 1e-9*(math.Abs(center[0])+math.Abs(center[1])+radius)
	results := x.tree.SearchIntersect(rtreego.Point{center[0], center[1]}.ToRect(margin))

	candidates := make([]int, 0, len(results))
	for _, r := range results {
		item, ok := r.(*indexedArea)
		if !ok {
			continue
		}
		candidates = append(candidates, item.index)
	}
	sort.Ints(candidates)

	list := make(neighborList, 0, len(candidates))
	for _, i := range candidates {
		if skip != nil && skip(i) {
			continue
		}
		d := distance(center, x.centroids[i])
		if d <= radius {
			list = append(list, neighbor{index: i, distance: d})
		}
	}
	sort.Stable(list)
	if len(list) > k {
		list = list[:k]
	}
	return list
}
