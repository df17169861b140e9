package main

//**********************************************************
// response structs
//**********************************************************

type ErrorResponse struct {
	Request string `json:"request"`
	Error   any    `json:"error"`
}

func NewErrorResponse(request string, error any) ErrorResponse {
	return ErrorResponse{
		Request: request,
		Error:   error,
	}
}

type TravelTimeResponse struct {
	Start string `json:"start"`
	Goal  string `json:"goal"`
	// drive time in minutes, the configured cost ceiling when the goal was
	// not reachable within it
	Cost float64 `json:"cost"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Hexes    int    `json:"hexes,omitempty"`
	Searches int64  `json:"searches,omitempty"`
}
