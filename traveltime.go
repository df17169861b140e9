package main

import (
	"fmt"

	"github.com/mappinjack/h3-monkey-god/hexgrid"
)

//**********************************************************
// travel-time handler
//**********************************************************

func HandleTravelTimeRequest(req TravelTimeRequest) Result {
	if len(req.Start) != 2 || len(req.Goal) != 2 {
		return BadRequest("start and goal must be lat/lon pairs")
	}
	resolution := MANAGER.config.Search.Resolution

	start_cell, err := hexgrid.CellFromLatLng(req.Start[0], req.Start[1], resolution)
	if err != nil {
		return BadRequest(fmt.Sprintf("invalid start location: %v", err))
	}
	goal_cell, err := hexgrid.CellFromLatLng(req.Goal[0], req.Goal[1], resolution)
	if err != nil {
		return BadRequest(fmt.Sprintf("invalid goal location: %v", err))
	}

	cost, err := MANAGER.CalcTravelTime(req.Start[0], req.Start[1], req.Goal[0], req.Goal[1])
	if err != nil {
		return ServerError(err.Error())
	}
	return OK(TravelTimeResponse{
		Start: start_cell.String(),
		Goal:  goal_cell.String(),
		Cost:  cost,
	})
}
