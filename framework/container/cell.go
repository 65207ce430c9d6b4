package container

import (
	"reflect"
	"sync"
	"sync/atomic"
)

// instanceCell is the singleton slot of a registration. Reads are lock-free
// once filled; filling happens under mu so only one constructor runs.
type instanceCell struct {
	mu    sync.Mutex
	value atomic.Pointer[reflect.Value]
}

func (c *instanceCell) load() (reflect.Value, bool) {
	if p := c.value.Load(); p != nil {
		return *p, true
	}
	return reflect.Value{}, false
}

func (c *instanceCell) store(v reflect.Value) {
	c.value.Store(&v)
}

func (c *instanceCell) filled() bool {
	return c.value.Load() != nil
}

// resolution tracks the cells locked by one outermost Register or Procure
// call, so a nested request for a cell it already holds does not block on
// its own lock. registering marks the eager build run by Register.
type resolution struct {
	held        map[*instanceCell]struct{}
	registering bool
}

func newResolution() *resolution {
	return &resolution{held: make(map[*instanceCell]struct{})}
}

func (res *resolution) holds(c *instanceCell) bool {
	_, ok := res.held[c]
	return ok
}

func (res *resolution) acquire(c *instanceCell) (release func()) {
	c.mu.Lock()
	res.held[c] = struct{}{}
	return func() {
		delete(res.held, c)
		c.mu.Unlock()
	}
}
