package isochrone

import (
	"container/list"
	"sync"

	"github.com/mappinjack/h3-monkey-god/hexgrid"
	. "github.com/mappinjack/h3-monkey-god/util"
)

//*******************************************
// resident surface cache
//*******************************************

// SurfaceCache keeps recently used surfaces resident in memory, keyed by their
// origin, evicting the least recently used one beyond capacity.
//
// With capacity 1 it degenerates to a single last-origin-wins slot. Safe for
// concurrent use.
type SurfaceCache struct {
	mu       sync.Mutex
	capacity int
	entries  Dict[hexgrid.Cell, *list.Element]
	order    *list.List
}

type cache_entry struct {
	origin  hexgrid.Cell
	surface *Surface
}

func NewSurfaceCache(capacity int) *SurfaceCache {
	if capacity < 1 {
		capacity = 1
	}
	return &SurfaceCache{
		capacity: capacity,
		entries:  NewDict[hexgrid.Cell, *list.Element](capacity),
		order:    list.New(),
	}
}

func (self *SurfaceCache) Get(origin hexgrid.Cell) (*Surface, bool) {
	self.mu.Lock()
	defer self.mu.Unlock()
	if !self.entries.ContainsKey(origin) {
		return nil, false
	}
	elem := self.entries.Get(origin)
	self.order.MoveToFront(elem)
	return elem.Value.(cache_entry).surface, true
}

func (self *SurfaceCache) Put(surface *Surface) {
	self.mu.Lock()
	defer self.mu.Unlock()
	origin := surface.Origin()
	if self.entries.ContainsKey(origin) {
		elem := self.entries.Get(origin)
		elem.Value = cache_entry{origin: origin, surface: surface}
		self.order.MoveToFront(elem)
		return
	}
	self.entries.Set(origin, self.order.PushFront(cache_entry{origin: origin, surface: surface}))
	for self.order.Len() > self.capacity {
		oldest := self.order.Back()
		self.order.Remove(oldest)
		delete(self.entries, oldest.Value.(cache_entry).origin)
	}
}

func (self *SurfaceCache) Len() int {
	self.mu.Lock()
	defer self.mu.Unlock()
	return self.order.Len()
}
