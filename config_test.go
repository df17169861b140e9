package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadConfig(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.yaml")
	data := `
data:
  cost-table: ./data/honduras.gz
  output-dir: ./out
search:
  resolution: 7
  cost-ceiling: 500
cache:
  max-surfaces: 2
`
	if err := os.WriteFile(file, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	config := ReadConfig(file)
	if config.Data.CostTable != "./data/honduras.gz" {
		t.Errorf("config.Data.CostTable = %v", config.Data.CostTable)
	}
	if config.Search.Resolution != 7 {
		t.Errorf("config.Search.Resolution = %v; want 7", config.Search.Resolution)
	}
	if config.Search.CostCeiling != 500 {
		t.Errorf("config.Search.CostCeiling = %v; want 500", config.Search.CostCeiling)
	}
	// unset keys keep their defaults
	if config.Search.DefaultCost != 20 {
		t.Errorf("config.Search.DefaultCost = %v; want default 20", config.Search.DefaultCost)
	}
	if config.Cache.MaxSurfaces != 2 {
		t.Errorf("config.Cache.MaxSurfaces = %v; want 2", config.Cache.MaxSurfaces)
	}
	if config.Server.Address != ":5002" {
		t.Errorf("config.Server.Address = %v; want default :5002", config.Server.Address)
	}
}

func TestReadConfigMissing(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for missing config file")
		}
	}()
	ReadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
}
