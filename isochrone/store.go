package isochrone

import (
	"fmt"
	"path/filepath"

	"github.com/mappinjack/h3-monkey-god/hexgrid"
	"github.com/mappinjack/h3-monkey-god/routing"
	. "github.com/mappinjack/h3-monkey-god/util"
)

//*******************************************
// persisted result store
//*******************************************

type SurfaceRecord struct {
	Hex    string  `csv:"hex"`
	Cost   float64 `csv:"cost"`
	Origin string  `csv:"origin"`
}

// SurfaceStore persists computed cost surfaces and least-cost paths as
// origin-keyed gzip csv records and keeps recently used surfaces resident
// through a bounded cache.
//
// Files are written by plain overwrite, concurrent writers for the same origin
// have to be serialized externally.
type SurfaceStore struct {
	dir   string
	cache *SurfaceCache
}

func NewSurfaceStore(dir string, cache_size int) *SurfaceStore {
	return &SurfaceStore{
		dir:   dir,
		cache: NewSurfaceCache(cache_size),
	}
}

func (self *SurfaceStore) SurfaceFile(origin hexgrid.Cell) string {
	return filepath.Join(self.dir, fmt.Sprintf("hex_isochrone_%s.gz", origin.String()))
}

func (self *SurfaceStore) PathFile(origin hexgrid.Cell) string {
	return filepath.Join(self.dir, fmt.Sprintf("hex_path_%s.gz", origin.String()))
}

// Persists the surface and makes it resident. A surface for the same origin is
// overwritten, the store never merges results of different runs.
func (self *SurfaceStore) SaveSurface(surface *Surface) error {
	origin := surface.Origin().String()
	records := make([]SurfaceRecord, 0, surface.Size())
	for cell, cost := range surface.costs {
		records = append(records, SurfaceRecord{
			Hex:    cell.String(),
			Cost:   cost,
			Origin: origin,
		})
	}
	if err := WriteCSVToFile(records, self.SurfaceFile(surface.Origin()), ','); err != nil {
		return fmt.Errorf("failed to persist surface for %s: %w", origin, err)
	}
	self.cache.Put(surface)
	return nil
}

// Persists the least-cost path of a goal-directed search under its origin.
func (self *SurfaceStore) SavePath(origin hexgrid.Cell, path routing.Path) error {
	records := make([]SurfaceRecord, 0, len(path))
	for _, entry := range path {
		records = append(records, SurfaceRecord{
			Hex:    entry.Cell.String(),
			Cost:   entry.Cost,
			Origin: origin.String(),
		})
	}
	if err := WriteCSVToFile(records, self.PathFile(origin), ','); err != nil {
		return fmt.Errorf("failed to persist path for %s: %w", origin.String(), err)
	}
	return nil
}

// Returns the surface for origin, from the resident cache if warm, reloaded
// from its persisted file otherwise.
func (self *SurfaceStore) LoadSurface(origin hexgrid.Cell) (*Surface, error) {
	if surface, ok := self.cache.Get(origin); ok {
		return surface, nil
	}
	rows, err := ReadCSVFromFile[SurfaceRecord](self.SurfaceFile(origin), ',')
	if err != nil {
		return nil, fmt.Errorf("no persisted surface for %s: %w", origin.String(), err)
	}
	costs := NewDict[hexgrid.Cell, float64](1000)
	var row_err error
	for row := range rows {
		cell, err := hexgrid.CellFromString(row.Hex)
		if err != nil {
			row_err = fmt.Errorf("corrupt surface file for %s: %w", origin.String(), err)
			break
		}
		costs[cell] = row.Cost
	}
	if row_err != nil {
		return nil, row_err
	}
	surface := &Surface{origin: origin, costs: costs}
	self.cache.Put(surface)
	return surface, nil
}

// Answers a cost lookup against an already computed surface.
//
// The fallback is returned when no surface exists for origin or the surface
// does not cover goal, callers must treat it as an upper bound.
func (self *SurfaceStore) CostBetween(origin hexgrid.Cell, goal hexgrid.Cell, fallback float64) float64 {
	surface, err := self.LoadSurface(origin)
	if err != nil {
		return fallback
	}
	return surface.CostTo(goal, fallback)
}

// Reports whether a surface for origin is resident or persisted.
func (self *SurfaceStore) HasSurface(origin hexgrid.Cell) bool {
	_, err := self.LoadSurface(origin)
	return err == nil
}
