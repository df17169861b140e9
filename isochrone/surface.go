package isochrone

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/mappinjack/h3-monkey-god/hexgrid"
	"github.com/mappinjack/h3-monkey-god/routing"
	. "github.com/mappinjack/h3-monkey-god/util"
)

//*******************************************
// isochrone surface
//*******************************************

// Surface is the materialized cost map of one search, tagged with its origin.
//
// It is a snapshot, later searches from the same origin replace it instead of
// mutating it.
type Surface struct {
	origin hexgrid.Cell
	costs  Dict[hexgrid.Cell, float64]
}

func NewSurface(result routing.SearchResult) *Surface {
	costs := NewDict[hexgrid.Cell, float64](result.Costs.Length())
	for cell, cost := range result.Costs {
		costs[cell] = cost
	}
	return &Surface{
		origin: result.Origin,
		costs:  costs,
	}
}

func (self *Surface) Origin() hexgrid.Cell {
	return self.origin
}

func (self *Surface) Size() int {
	return self.costs.Length()
}

// Returns the cumulative cost to goal, or fallback if the surface does not
// cover it. The fallback is an upper-bound estimate, not an exact cost.
func (self *Surface) CostTo(goal hexgrid.Cell, fallback float64) float64 {
	if cost, ok := self.costs[goal]; ok {
		return cost
	}
	return fallback
}

// Exports the surface as a feature collection of cell-center points.
func (self *Surface) FeatureCollection() (*geojson.FeatureCollection, error) {
	collection := geojson.NewFeatureCollection()
	for cell, cost := range self.costs {
		lat, lon, err := hexgrid.CellCenter(cell)
		if err != nil {
			return nil, err
		}
		feature := geojson.NewFeature(orb.Point{lon, lat})
		feature.Properties["hex"] = cell.String()
		feature.Properties["cost"] = cost
		feature.Properties["origin"] = self.origin.String()
		collection.Append(feature)
	}
	return collection, nil
}
