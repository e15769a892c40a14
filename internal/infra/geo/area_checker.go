// Package geo decides whether project sites fall inside the configured
// service region.
package geo

import (
	"draftdesk/config"
	"draftdesk/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

type polygonChecker struct {
	polygon orb.Polygon
}

// NewAreaChecker builds a point-in-polygon checker from the configured ring.
// An empty ring means the business serves everywhere.
func NewAreaChecker(cfg *config.ServiceAreaConfig) service.AreaChecker {
	if cfg == nil || len(cfg.Ring) < 3 {
		return &polygonChecker{}
	}

	ring := make(orb.Ring, 0, len(cfg.Ring)+1)
	for _, vertex := range cfg.Ring {
		ring = append(ring, orb.Point{vertex.Lng, vertex.Lat})
	}
	// Close the ring; config does not repeat the first vertex.
	if ring[0] != ring[len(ring)-1] {
		ring = append(ring, ring[0])
	}

	return &polygonChecker{polygon: orb.Polygon{ring}}
}

// Contains reports whether the point lies inside the service region.
func (c *polygonChecker) Contains(lat, lng float64) bool {
	if len(c.polygon) == 0 {
		return true
	}

	return planar.PolygonContains(c.polygon, orb.Point{lng, lat})
}
