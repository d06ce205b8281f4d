package barebones

import (
	"fmt"
	"sort"
	"strings"
)

// Store maps variable names to their values. A name exists once it has been
// cleared and is never removed. Values may go below zero: decr does not clamp
type Store map[string]int

func NewStore() Store {
	return make(Store)
}

func (store Store) Has(name string) bool {
	_, ok := store[name]
	return ok
}

func (store Store) Get(name string) (int, bool) {
	value, ok := store[name]
	return value, ok
}

// Clear sets name to zero, declaring it if needed
func (store Store) Clear(name string) {
	store[name] = 0
}

// Add changes an existing variable by delta. It reports false if name was never cleared
func (store Store) Add(name string, delta int) bool {
	value, ok := store[name]
	if !ok {
		return false
	}
	store[name] = value + delta
	return true
}

// Names returns every declared variable in sorted order
func (store Store) Names() []string {
	names := make([]string, 0, len(store))
	for name := range store {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (store Store) String() string {
	s := make([]string, 0, len(store))
	for _, name := range store.Names() {
		s = append(s, fmt.Sprintf("%v=%v", name, store[name]))
	}
	return "{" + strings.Join(s, ", ") + "}"
}
