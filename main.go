package main

import (
	"net/http"
	"os"

	"golang.org/x/exp/slog"
)

var MANAGER *TravelTimeManager

func main() {
	slog.SetDefault(slog.New(NewLogHandler(os.Stdout, slog.LevelInfo)))

	config := ReadConfig("./config.yaml")
	if config.Data.CostTableURL != "" {
		if err := FetchCostTable(config.Data.CostTableURL, config.Data.CostTable); err != nil {
			slog.Error("failed to fetch cost table: " + err.Error())
			panic(err)
		}
	}
	MANAGER = NewTravelTimeManager(config)

	app := http.DefaultServeMux
	MapPost(app, "/v1/traveltime", HandleTravelTimeRequest)
	MapGet(app, "/v1/isochrone", HandleIsochroneRequest)
	MapGet(app, "/v1/health", func(req HealthRequest) Result {
		resp := HealthResponse{Status: "ok"}
		if req.Verbose {
			resp.Hexes = MANAGER.index.Size()
			resp.Searches = MANAGER.SearchCount()
		}
		return OK(resp)
	})

	slog.Info("listening on " + config.Server.Address)
	http.ListenAndServe(config.Server.Address, nil)
}
