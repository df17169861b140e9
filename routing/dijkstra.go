package routing

import (
	"errors"

	"github.com/mappinjack/h3-monkey-god/hexgrid"
	. "github.com/mappinjack/h3-monkey-god/util"
)

//*******************************************
// dijkstra over the implicit hex grid
//*******************************************

// ErrNoSearchGoal is returned when a search is started without a goal cell and
// without a cost ceiling.
var ErrNoSearchGoal = errors.New("search needs a goal cell or a cost ceiling")

// SearchResult holds the relaxed state of one single-source search.
//
// CameFrom maps every visited cell to the cell it was best reached from, the
// origin itself has no entry. Costs maps every visited cell to its best known
// cumulative cost in minutes. A goal that was not reached within the bound is
// simply absent from both.
type SearchResult struct {
	Origin   hexgrid.Cell
	CameFrom Dict[hexgrid.Cell, hexgrid.Cell]
	Costs    Dict[hexgrid.Cell, float64]
}

type pq_item struct {
	cell hexgrid.Cell
	dist float64
}

// Runs Dijkstra's algorithm from start over the implicit hex grid.
//
// With a goal cell the search terminates once the goal is popped, yielding a
// least-cost path tree towards it. With a cost ceiling the search relaxes the
// whole region reachable below the ceiling, yielding an isochrone surface.
// Cells whose relaxed cost reaches the ceiling are recorded but not expanded
// further, bounding the search to an approximate disk around start.
//
// The frontier holds stale duplicate entries instead of decreasing keys, they
// are skipped on dequeue by comparing against the best known cost.
func CalcDijkstra(g hexgrid.IGraph, start hexgrid.Cell, goal Optional[hexgrid.Cell], ceiling Optional[float64]) (SearchResult, error) {
	if !goal.HasValue() && !ceiling.HasValue() {
		return SearchResult{}, ErrNoSearchGoal
	}

	heap := NewPriorityQueue[pq_item, float64](100)
	came_from := NewDict[hexgrid.Cell, hexgrid.Cell](1000)
	cost_so_far := NewDict[hexgrid.Cell, float64](1000)

	heap.Enqueue(pq_item{start, 0}, 0)
	cost_so_far.Set(start, 0)

	for {
		curr_item, ok := heap.Dequeue()
		if !ok {
			break
		}
		curr := curr_item.cell
		if goal.HasValue() && curr == goal.Value {
			break
		}
		curr_cost := cost_so_far.Get(curr)
		if curr_cost < curr_item.dist {
			continue
		}
		for _, next := range g.Neighbors(curr) {
			new_cost := curr_cost + g.Cost(curr, next)
			if cost_so_far.ContainsKey(next) && new_cost >= cost_so_far.Get(next) {
				continue
			}
			cost_so_far.Set(next, new_cost)
			came_from.Set(next, curr)
			if ceiling.HasValue() && new_cost >= ceiling.Value {
				continue
			}
			heap.Enqueue(pq_item{next, new_cost}, new_cost)
		}
	}

	return SearchResult{
		Origin:   start,
		CameFrom: came_from,
		Costs:    cost_so_far,
	}, nil
}
