package main

//**********************************************************
// request structs
//**********************************************************

type TravelTimeRequest struct {
	// lat/lon pair of the driving origin
	Start []float64 `json:"start"`
	// lat/lon pair of the driving destination
	Goal []float64 `json:"goal"`
}

type IsochroneRequest struct {
	// hex id of a previously computed origin
	Origin string `json:"origin"`
}

type HealthRequest struct {
	Verbose bool `json:"verbose"`
}
