package hexgrid

import (
	"testing"
)

func TestCellFromLatLng(t *testing.T) {
	cell, err := CellFromLatLng(43.79916, -79.336, 6)
	if err != nil {
		t.Fatalf("failed to snap coordinate: %v", err)
	}
	again, err := CellFromLatLng(43.79916, -79.336, 6)
	if err != nil {
		t.Fatalf("failed to snap coordinate: %v", err)
	}
	if cell != again {
		t.Errorf("snapping is not deterministic: %v != %v", cell, again)
	}

	coarse, err := CellFromLatLng(43.79916, -79.336, 5)
	if err != nil {
		t.Fatalf("failed to snap coordinate: %v", err)
	}
	if cell == coarse {
		t.Errorf("cells at different resolutions must differ")
	}
}

func TestCellStringRoundtrip(t *testing.T) {
	cell, err := CellFromLatLng(15.462, -87.934, 7)
	if err != nil {
		t.Fatalf("failed to snap coordinate: %v", err)
	}
	parsed, err := CellFromString(cell.String())
	if err != nil {
		t.Fatalf("failed to parse cell id: %v", err)
	}
	if parsed != cell {
		t.Errorf("CellFromString(%v) = %v; want %v", cell.String(), parsed, cell)
	}

	if _, err := CellFromString("not a cell"); err == nil {
		t.Errorf("expected error for garbage cell id")
	}
}

func TestCellNeighbors(t *testing.T) {
	cell, err := CellFromLatLng(52.52, 13.405, 6)
	if err != nil {
		t.Fatalf("failed to snap coordinate: %v", err)
	}
	neighbors := CellNeighbors(cell)
	if len(neighbors) != 6 {
		t.Fatalf("len(neighbors) = %v; want 6", len(neighbors))
	}
	for _, n := range neighbors {
		if n == cell {
			t.Errorf("cell contained in its own neighborhood")
		}
		back := CellNeighbors(n)
		found := false
		for _, b := range back {
			if b == cell {
				found = true
			}
		}
		if !found {
			t.Errorf("adjacency is not symmetric for %v and %v", cell, n)
		}
	}
}
