// component/movement.go
package component

import "go-castle-defense/internal/utils"

// Position — координаты в пикселях
type Position struct {
	X, Y float64
}

// Path is the ordered list of waypoints enemies follow. It is built once
// and shared read-only by every enemy of a run.
type Path struct {
	Waypoints []Position
	segments  []float64
	total     float64
}

// NewPath copies the waypoints and caches segment lengths.
func NewPath(points []Position) *Path {
	p := &Path{Waypoints: append([]Position(nil), points...)}
	if len(points) > 1 {
		p.segments = make([]float64, len(points)-1)
		for i := 0; i < len(points)-1; i++ {
			a, b := points[i], points[i+1]
			p.segments[i] = utils.Distance(a.X, a.Y, b.X, b.Y)
			p.total += p.segments[i]
		}
	}
	return p
}

// Len returns the number of waypoints.
func (p *Path) Len() int {
	return len(p.Waypoints)
}

// Length returns the total length of the path.
func (p *Path) Length() float64 {
	return p.total
}

// RemainingAfter returns the summed length of all segments starting at waypoint i.
func (p *Path) RemainingAfter(i int) float64 {
	if i < 0 {
		i = 0
	}
	sum := 0.0
	for ; i < len(p.segments); i++ {
		sum += p.segments[i]
	}
	return sum
}
