package main

import (
	"os"

	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"
)

//**********************************************************
// config
//**********************************************************

func ReadConfig(file string) Config {
	slog.Info("Reading config file")
	data, err := os.ReadFile(file)
	if err != nil {
		slog.Error("failed to read config file: " + err.Error())
		panic(err)
	}
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		slog.Error("failed to parse config file: " + err.Error())
		panic(err)
	}
	return config
}

type Config struct {
	Data struct {
		// precomputed hex cost table, produced by the raster aggregation
		CostTable string `yaml:"cost-table"`
		// optional url the cost table is fetched from when missing
		CostTableURL string `yaml:"cost-table-url"`
		// directory isochrone surfaces and paths are persisted to
		OutputDir string `yaml:"output-dir"`
	} `yaml:"data"`
	Search struct {
		Resolution  int     `yaml:"resolution"`
		DefaultCost float64 `yaml:"default-cost"`
		CostCeiling float64 `yaml:"cost-ceiling"`
	} `yaml:"search"`
	Cache struct {
		MaxSurfaces int `yaml:"max-surfaces"`
	} `yaml:"cache"`
	Server struct {
		Address string `yaml:"address"`
	} `yaml:"server"`
}

func DefaultConfig() Config {
	config := Config{}
	config.Data.CostTable = "./data/friction_surface.gz"
	config.Data.OutputDir = "./data"
	config.Search.Resolution = 6
	// placeholder traversal cost for cells missing from the table, not a
	// measured value
	config.Search.DefaultCost = 20
	config.Search.CostCeiling = 3000
	config.Cache.MaxSurfaces = 4
	config.Server.Address = ":5002"
	return config
}
