package hexgrid

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/mappinjack/h3-monkey-god/util"
)

func _WriteCostTable(t *testing.T, rows []_CostRow) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "friction_surface.gz")
	if err := WriteCSVToFile(rows, file, ','); err != nil {
		t.Fatalf("failed to write cost table: %v", err)
	}
	return file
}

func TestCostIndexLoad(t *testing.T) {
	center, _ := CellFromLatLng(43.79916, -79.336, 6)
	neighbors := CellNeighbors(center)

	file := _WriteCostTable(t, []_CostRow{
		{Hex: center.String(), Value: 12.5},
		{Hex: neighbors[0].String(), Value: 0},
	})
	index, err := NewCostIndex(file, 20)
	if err != nil {
		t.Fatalf("failed to build cost index: %v", err)
	}

	if index.Size() != 2 {
		t.Errorf("index.Size() = %v; want 2", index.Size())
	}
	if cost := index.Cost(center, neighbors[0]); cost != 12.5 {
		t.Errorf("index.Cost(center) = %v; want 12.5", cost)
	}
	if cost := index.Cost(neighbors[0], center); cost != 0 {
		t.Errorf("index.Cost(neighbor) = %v; want 0", cost)
	}
	// cells absent from the table use the default
	if cost := index.Cost(neighbors[1], center); cost != 20 {
		t.Errorf("index.Cost(unknown) = %v; want default 20", cost)
	}
}

func TestCostIndexMissingAsset(t *testing.T) {
	_, err := NewCostIndex(filepath.Join(t.TempDir(), "missing.gz"), 20)
	if err == nil {
		t.Errorf("expected error for missing cost table")
	}
}

func TestCostIndexCorruptAsset(t *testing.T) {
	file := filepath.Join(t.TempDir(), "bad.csv")
	if err := os.WriteFile(file, []byte("hex,value\nnot-a-cell,5\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewCostIndex(file, 20); err == nil {
		t.Errorf("expected error for corrupt cell id")
	}

	center, _ := CellFromLatLng(43.79916, -79.336, 6)
	file = _WriteCostTable(t, []_CostRow{{Hex: center.String(), Value: -4}})
	if _, err := NewCostIndex(file, 20); err == nil {
		t.Errorf("expected error for negative cost")
	}
}
