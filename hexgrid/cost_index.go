package hexgrid

import (
	"fmt"

	. "github.com/mappinjack/h3-monkey-god/util"
)

//*******************************************
// hex cost graph
//*******************************************

// Graph over hex cells traversed by the search engine.
type IGraph interface {
	Neighbors(cell Cell) []Cell
	Cost(current Cell, next Cell) float64
}

type _CostRow struct {
	Hex   string  `csv:"hex"`
	Value float64 `csv:"value"`
}

// CostIndex maps hex cells to their traversal cost in minutes.
//
// The table is loaded once from a precomputed friction asset and read-only
// afterwards, so a single index can be shared between searches.
type CostIndex struct {
	costs        Dict[Cell, float64]
	default_cost float64
}

// Loads a cost table from a csv asset with "hex" and "value" columns.
//
// A missing or unreadable asset is a construction failure, the index is never
// partially usable.
func NewCostIndex(filename string, default_cost float64) (*CostIndex, error) {
	rows, err := ReadCSVFromFile[_CostRow](filename, ',')
	if err != nil {
		return nil, fmt.Errorf("failed to load cost table: %w", err)
	}
	costs := NewDict[Cell, float64](1000)
	var row_err error
	for row := range rows {
		cell, err := CellFromString(row.Hex)
		if err != nil {
			row_err = fmt.Errorf("corrupt cost table %s: %w", filename, err)
			break
		}
		if row.Value < 0 {
			row_err = fmt.Errorf("corrupt cost table %s: negative cost %v for %s", filename, row.Value, row.Hex)
			break
		}
		costs.Set(cell, row.Value)
	}
	if row_err != nil {
		return nil, row_err
	}
	return &CostIndex{
		costs:        costs,
		default_cost: default_cost,
	}, nil
}

func (self *CostIndex) Neighbors(cell Cell) []Cell {
	return CellNeighbors(cell)
}

// Returns the cost in minutes to traverse the current cell.
//
// Cells missing from the table fall back to the configured default. Costs are
// uniform per cell, the next cell only exists in the signature to leave room
// for directed per-edge costs.
func (self *CostIndex) Cost(current Cell, next Cell) float64 {
	if self.costs.ContainsKey(current) {
		return self.costs.Get(current)
	}
	return self.default_cost
}

func (self *CostIndex) Size() int {
	return self.costs.Length()
}
