package main

import (
	"fmt"

	"github.com/mappinjack/h3-monkey-god/hexgrid"
)

//**********************************************************
// isochrone handler
//**********************************************************

// Serves a previously computed cost surface as geojson point features.
func HandleIsochroneRequest(req IsochroneRequest) Result {
	if req.Origin == "" {
		return BadRequest("origin hex id is required")
	}
	origin, err := hexgrid.CellFromString(req.Origin)
	if err != nil {
		return BadRequest(fmt.Sprintf("invalid origin: %v", err))
	}
	surface, err := MANAGER.Store().LoadSurface(origin)
	if err != nil {
		return BadRequest(fmt.Sprintf("no isochrone for origin %v", req.Origin))
	}
	collection, err := surface.FeatureCollection()
	if err != nil {
		return ServerError(err.Error())
	}
	return OK(collection)
}
