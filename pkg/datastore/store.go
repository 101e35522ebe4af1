package datastore

import (
	"sync"

	"logitrack-app/internal/models"
)

// Collection owns the records of one entity kind and assigns their primary
// keys. Ids are handed out as max existing id + 1 (1 when empty), uniformly
// for every entity kind. Mutations targeting a missing id are silent no-ops.
//
// The guard exists because gin serves requests concurrently; each operation
// is still a single synchronous step with no partial-write states.
type Collection[T any] struct {
	mu     sync.RWMutex
	items  []T
	id     func(T) int
	withID func(T, int) T
}

func NewCollection[T any](id func(T) int, withID func(T, int) T, seed ...T) *Collection[T] {
	c := &Collection[T]{
		id:     id,
		withID: withID,
		items:  make([]T, 0, len(seed)),
	}
	c.items = append(c.items, seed...)
	return c
}

// Add assigns a fresh id to rec, appends it and returns the stored record.
// It never fails: uniqueness is only enforced on the id the store itself
// assigns.
func (c *Collection[T]) Add(rec T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := 0
	for _, it := range c.items {
		if id := c.id(it); id > next {
			next = id
		}
	}
	rec = c.withID(rec, next+1)
	c.items = append(c.items, rec)
	return rec
}

// Update replaces the record whose id matches rec's id. When no record
// matches it changes nothing and reports false; it never inserts.
func (c *Collection[T]) Update(rec T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	target := c.id(rec)
	for i, it := range c.items {
		if c.id(it) == target {
			c.items[i] = rec
			return true
		}
	}
	return false
}

// Delete removes the record with the given id, reporting whether anything
// was removed. There is no cascade: records elsewhere that reference the
// deleted id keep their now-dangling reference.
func (c *Collection[T]) Delete(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, it := range c.items {
		if c.id(it) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Collection[T]) Get(id int) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, it := range c.items {
		if c.id(it) == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// List returns a copy of the collection in insertion order. Insertion order
// is display order only; it carries no other meaning.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collection[T]) Filter(pred func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []T
	for _, it := range c.items {
		if pred(it) {
			out = append(out, it)
		}
	}
	return out
}

// load appends fixture records carrying their own ids. Seeding only; every
// other insert goes through Add.
func (c *Collection[T]) load(recs ...T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, recs...)
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Store aggregates every collection. It is constructed once in main and
// passed to the components that need it; there is no ambient global state.
type Store struct {
	Users      *Collection[models.SystemUser]
	Employees  *Collection[models.Employee]
	Customers  *Collection[models.Customer]
	Locations  *Collection[models.Location]
	Trucks     *Collection[models.Truck]
	Trips      *Collection[models.Trip]
	Fuels      *Collection[models.TripFuel]
	TripEvents *Collection[models.TripEvent]
}

func New() *Store {
	return &Store{
		Users: NewCollection(
			func(u models.SystemUser) int { return u.ID },
			func(u models.SystemUser, id int) models.SystemUser { u.ID = id; return u },
		),
		Employees: NewCollection(
			func(e models.Employee) int { return e.EmployeeID },
			func(e models.Employee, id int) models.Employee { e.EmployeeID = id; return e },
		),
		Customers: NewCollection(
			func(c models.Customer) int { return c.CustomerID },
			func(c models.Customer, id int) models.Customer { c.CustomerID = id; return c },
		),
		Locations: NewCollection(
			func(l models.Location) int { return l.LocationID },
			func(l models.Location, id int) models.Location { l.LocationID = id; return l },
		),
		Trucks: NewCollection(
			func(t models.Truck) int { return t.TruckID },
			func(t models.Truck, id int) models.Truck { t.TruckID = id; return t },
		),
		Trips: NewCollection(
			func(t models.Trip) int { return t.TripID },
			func(t models.Trip, id int) models.Trip { t.TripID = id; return t },
		),
		Fuels: NewCollection(
			func(f models.TripFuel) int { return f.FuelID },
			func(f models.TripFuel, id int) models.TripFuel { f.FuelID = id; return f },
		),
		TripEvents: NewCollection(
			func(e models.TripEvent) int { return e.EventID },
			func(e models.TripEvent, id int) models.TripEvent { e.EventID = id; return e },
		),
	}
}
