package main

import (
	"fmt"
	"os"
	"sync/atomic"

	"golang.org/x/exp/slog"

	"github.com/mappinjack/h3-monkey-god/hexgrid"
	"github.com/mappinjack/h3-monkey-god/isochrone"
	"github.com/mappinjack/h3-monkey-god/routing"
	. "github.com/mappinjack/h3-monkey-god/util"
)

//**********************************************************
// travel-time manager
//**********************************************************

func NewTravelTimeManager(config Config) *TravelTimeManager {
	index, err := hexgrid.NewCostIndex(config.Data.CostTable, config.Search.DefaultCost)
	if err != nil {
		slog.Error("failed to build cost index: " + err.Error())
		panic(err)
	}
	slog.Info(fmt.Sprintf("loaded cost table with %v hexes", index.Size()))
	if err := os.MkdirAll(config.Data.OutputDir, 0755); err != nil {
		slog.Error("failed to create output dir: " + err.Error())
		panic(err)
	}
	return &TravelTimeManager{
		config: config,
		index:  index,
		store:  isochrone.NewSurfaceStore(config.Data.OutputDir, config.Cache.MaxSurfaces),
	}
}

// TravelTimeManager owns the read-only cost index and the surface store and
// answers travel-time queries against them.
//
// The index is shared between concurrent queries, the store serializes its
// cache internally.
type TravelTimeManager struct {
	config   Config
	index    *hexgrid.CostIndex
	store    *isochrone.SurfaceStore
	searches atomic.Int64
}

func (self *TravelTimeManager) Store() *isochrone.SurfaceStore {
	return self.store
}

// Number of full relaxation searches run so far.
func (self *TravelTimeManager) SearchCount() int64 {
	return self.searches.Load()
}

// Computes the drive time in minutes between two coordinates.
//
// Both endpoints are snapped to hex cells at the configured resolution. When a
// surface for the origin already covers the goal it is answered from the store
// without re-running the search. Otherwise a goal-directed search bounded by
// the configured cost ceiling runs, its surface and least-cost path are
// persisted under the origin, and the goal cost is returned.
//
// A goal that was not reached within the ceiling yields the ceiling itself, a
// conservative upper-bound estimate rather than an exact cost.
func (self *TravelTimeManager) CalcTravelTime(start_lat, start_lon, goal_lat, goal_lon float64) (float64, error) {
	resolution := self.config.Search.Resolution
	ceiling := self.config.Search.CostCeiling

	start_cell, err := hexgrid.CellFromLatLng(start_lat, start_lon, resolution)
	if err != nil {
		return 0, err
	}
	goal_cell, err := hexgrid.CellFromLatLng(goal_lat, goal_lon, resolution)
	if err != nil {
		return 0, err
	}

	// serve repeated origins from the computed surface
	if cost := self.store.CostBetween(start_cell, goal_cell, -1); cost >= 0 {
		slog.Debug(fmt.Sprintf("surface hit for origin %v", start_cell))
		return cost, nil
	}

	self.searches.Add(1)
	result, err := routing.CalcDijkstra(self.index, start_cell, Some(goal_cell), Some(ceiling))
	if err != nil {
		return 0, err
	}
	slog.Info(fmt.Sprintf("search from %v relaxed %v hexes", start_cell, result.Costs.Length()))

	surface := isochrone.NewSurface(result)
	if err := self.store.SaveSurface(surface); err != nil {
		return 0, err
	}
	if result.Costs.ContainsKey(goal_cell) {
		path, err := routing.ReconstructPath(result, start_cell, goal_cell)
		if err != nil {
			return 0, err
		}
		if err := self.store.SavePath(start_cell, path); err != nil {
			return 0, err
		}
	}

	return surface.CostTo(goal_cell, ceiling), nil
}
