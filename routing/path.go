package routing

import (
	"errors"
	"fmt"

	"github.com/mappinjack/h3-monkey-god/hexgrid"
)

//*******************************************
// least-cost path
//*******************************************

// ErrGoalNotReached is returned when a path is requested towards a cell the
// search never visited. Callers have to check reachability first.
var ErrGoalNotReached = errors.New("goal was not reached by the search")

type PathEntry struct {
	Cell hexgrid.Cell
	Cost float64
}

// Path is the least-cost route of a search, ordered from the goal back to the
// start. The start entry always carries cost 0.
type Path []PathEntry

// Walks the predecessor links of a search result from goal back to start.
//
// The cost of every entry is the cumulative cost of the search, cells only
// reached via ceiling pruning report 0.
func ReconstructPath(result SearchResult, start hexgrid.Cell, goal hexgrid.Cell) (Path, error) {
	path := make(Path, 0, 32)
	current := goal
	for current != start {
		prev, ok := result.CameFrom[current]
		if !ok {
			return nil, fmt.Errorf("%w: no predecessor for %v", ErrGoalNotReached, current)
		}
		path = append(path, PathEntry{Cell: current, Cost: result.Costs[current]})
		current = prev
	}
	path = append(path, PathEntry{Cell: start, Cost: 0})
	return path, nil
}
