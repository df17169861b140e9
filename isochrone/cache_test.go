package isochrone

import (
	"testing"

	"github.com/mappinjack/h3-monkey-god/hexgrid"
	. "github.com/mappinjack/h3-monkey-god/util"
)

func _SurfaceWithOrigin(origin hexgrid.Cell) *Surface {
	costs := NewDict[hexgrid.Cell, float64](1)
	costs[origin] = 0
	return &Surface{origin: origin, costs: costs}
}

func TestSurfaceCacheSingleSlot(t *testing.T) {
	cache := NewSurfaceCache(1)

	a := _SurfaceWithOrigin(hexgrid.Cell(1))
	b := _SurfaceWithOrigin(hexgrid.Cell(2))

	cache.Put(a)
	if got, ok := cache.Get(a.Origin()); !ok || got != a {
		t.Errorf("cache.Get(a) = %v, %v; want a, true", got, ok)
	}

	// a different origin evicts the resident surface
	cache.Put(b)
	if _, ok := cache.Get(a.Origin()); ok {
		t.Errorf("surface a still resident after eviction")
	}
	if got, ok := cache.Get(b.Origin()); !ok || got != b {
		t.Errorf("cache.Get(b) = %v, %v; want b, true", got, ok)
	}
	if cache.Len() != 1 {
		t.Errorf("cache.Len() = %v; want 1", cache.Len())
	}
}

func TestSurfaceCacheLRU(t *testing.T) {
	cache := NewSurfaceCache(2)

	a := _SurfaceWithOrigin(hexgrid.Cell(1))
	b := _SurfaceWithOrigin(hexgrid.Cell(2))
	c := _SurfaceWithOrigin(hexgrid.Cell(3))

	cache.Put(a)
	cache.Put(b)
	// touch a so b becomes the eviction candidate
	cache.Get(a.Origin())
	cache.Put(c)

	if _, ok := cache.Get(b.Origin()); ok {
		t.Errorf("least recently used surface b still resident")
	}
	if _, ok := cache.Get(a.Origin()); !ok {
		t.Errorf("recently used surface a was evicted")
	}
	if _, ok := cache.Get(c.Origin()); !ok {
		t.Errorf("new surface c not resident")
	}
}

func TestSurfaceCacheReplace(t *testing.T) {
	cache := NewSurfaceCache(2)

	old := _SurfaceWithOrigin(hexgrid.Cell(7))
	new_ := _SurfaceWithOrigin(hexgrid.Cell(7))
	cache.Put(old)
	cache.Put(new_)

	if cache.Len() != 1 {
		t.Errorf("cache.Len() = %v; want 1", cache.Len())
	}
	if got, _ := cache.Get(hexgrid.Cell(7)); got != new_ {
		t.Errorf("cache kept the stale surface after replacement")
	}
}
