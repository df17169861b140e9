package hexgrid

import (
	"errors"
	"fmt"

	"github.com/uber/h3-go/v4"
)

//*******************************************
// hex cells
//*******************************************

// Cell is one cell of the H3 hexagonal grid at a fixed resolution.
//
// Cells are only comparable when derived at the same resolution.
type Cell = h3.Cell

var ErrInvalidCell = errors.New("invalid hex cell")

// Snaps a lat/lon coordinate to the cell containing it.
func CellFromLatLng(lat float64, lon float64, resolution int) (Cell, error) {
	cell, err := h3.LatLngToCell(h3.NewLatLng(lat, lon), resolution)
	if err != nil {
		return 0, fmt.Errorf("failed to snap (%v, %v) at resolution %v: %w", lat, lon, resolution, err)
	}
	return cell, nil
}

// Parses the hexadecimal string form of a cell id.
func CellFromString(id string) (Cell, error) {
	cell := h3.CellFromString(id)
	if cell == 0 || !cell.IsValid() {
		return 0, fmt.Errorf("%w: %v", ErrInvalidCell, id)
	}
	return cell, nil
}

// Returns the lat/lon center of a cell.
func CellCenter(cell Cell) (float64, float64, error) {
	ll, err := h3.CellToLatLng(cell)
	if err != nil {
		return 0, 0, fmt.Errorf("no center for cell %v: %w", cell, err)
	}
	return ll.Lat, ll.Lng, nil
}

// Computes the ring-1 neighborhood of a cell.
//
// The grid is implicit, neighbors are derived geometrically on demand. Interior
// cells have 6 neighbors, the twelve pentagons have 5.
func CellNeighbors(cell Cell) []Cell {
	disk, err := h3.GridDisk(cell, 1)
	if err != nil {
		return nil
	}
	neighbors := make([]Cell, 0, 6)
	for _, c := range disk {
		if c == cell || c == 0 {
			continue
		}
		neighbors = append(neighbors, c)
	}
	return neighbors
}
