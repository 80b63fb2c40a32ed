// Package geometry reduces alert-area polygons to a bounded-complexity
// representation suitable for transmission to broadcast networks.
package geometry

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"
)

// Complexity gate for transmission: beyond either threshold the polygon set is
// smoothed and simplified before it is broadcast.
const (
	MaxPolygonCount = 12
	MaxPointCount   = 250
)

// simplifyThreshold is the starting Douglas-Peucker tolerance in degrees;
// roughly 100m at UK latitudes. ForTransmission doubles it until the polygon
// set fits its point budget.
const (
	simplifyThreshold = 0.001
	maxSimplifyRounds = 20
)

// Polygons is an ordered set of closed rings. Points are stored in the
// (longitude, latitude) order they were received in.
type Polygons struct {
	rings []orb.Ring
}

// NewPolygons builds a polygon set from raw coordinate pairs in (lon, lat)
// order. Open rings are closed by repeating the first point.
func NewPolygons(raw [][][2]float64) *Polygons {
	rings := make([]orb.Ring, 0, len(raw))
	for _, points := range raw {
		ring := make(orb.Ring, 0, len(points)+1)
		for _, p := range points {
			ring = append(ring, orb.Point{p[0], p[1]})
		}
		if len(ring) > 1 && !ring.Closed() {
			ring = append(ring, ring[0])
		}
		rings = append(rings, ring)
	}
	return &Polygons{rings: rings}
}

// Len returns the number of rings.
func (p *Polygons) Len() int {
	return len(p.rings)
}

// PointCount returns the total number of points across all rings.
func (p *Polygons) PointCount() int {
	count := 0
	for _, ring := range p.rings {
		count += len(ring)
	}
	return count
}

// Smooth applies one round of Chaikin corner cutting to every ring. Closed
// rings stay closed; rings too small to smooth pass through unchanged.
func (p *Polygons) Smooth() *Polygons {
	rings := make([]orb.Ring, 0, len(p.rings))
	for _, ring := range p.rings {
		rings = append(rings, chaikin(ring))
	}
	return &Polygons{rings: rings}
}

// Simplify reduces vertex counts with Douglas-Peucker while preserving ring
// closure and ordering.
func (p *Polygons) Simplify() *Polygons {
	return p.simplify(simplifyThreshold)
}

func (p *Polygons) simplify(threshold float64) *Polygons {
	simplifier := simplify.DouglasPeucker(threshold)

	rings := make([]orb.Ring, 0, len(p.rings))
	for _, ring := range p.rings {
		if len(ring) < 4 {
			rings = append(rings, ring)
			continue
		}
		simplified := simplifier.Ring(ring.Clone())
		if len(simplified) > 1 && !simplified.Closed() {
			simplified = append(simplified, simplified[0])
		}
		rings = append(rings, simplified)
	}
	return &Polygons{rings: rings}
}

// ForTransmission applies the complexity gate: sets within the polygon and
// point budgets pass through unchanged, larger sets are smoothed then
// simplified with a growing tolerance until they fit both the point budget
// and the original vertex count. The result is deterministic for a given
// input.
func (p *Polygons) ForTransmission() *Polygons {
	if p.Len() <= MaxPolygonCount && p.PointCount() <= MaxPointCount {
		return p
	}

	budget := p.PointCount()
	if budget > MaxPointCount {
		budget = MaxPointCount
	}

	out := p.Smooth()
	threshold := simplifyThreshold
	for i := 0; i < maxSimplifyRounds; i++ {
		out = out.simplify(threshold)
		if out.PointCount() <= budget {
			break
		}
		threshold *= 2
	}
	return out
}

// AsLatLongPairs returns the rings as [latitude, longitude] pairs, swapping
// the axis order exactly once from the stored (lon, lat).
func (p *Polygons) AsLatLongPairs() [][][2]float64 {
	out := make([][][2]float64, 0, len(p.rings))
	for _, ring := range p.rings {
		pairs := make([][2]float64, 0, len(ring))
		for _, point := range ring {
			pairs = append(pairs, [2]float64{point.Y(), point.X()})
		}
		out = append(out, pairs)
	}
	return out
}

// chaikin cuts each corner of a closed ring into two points at the 1/4 and
// 3/4 marks of the surrounding edges.
func chaikin(ring orb.Ring) orb.Ring {
	if len(ring) < 4 || !ring.Closed() {
		return ring
	}

	unique := ring[:len(ring)-1]
	smoothed := make(orb.Ring, 0, 2*len(unique)+1)
	for i := range unique {
		p := unique[i]
		next := unique[(i+1)%len(unique)]
		smoothed = append(smoothed,
			orb.Point{0.75*p.X() + 0.25*next.X(), 0.75*p.Y() + 0.25*next.Y()},
			orb.Point{0.25*p.X() + 0.75*next.X(), 0.25*p.Y() + 0.75*next.Y()},
		)
	}
	smoothed = append(smoothed, smoothed[0])
	return smoothed
}
