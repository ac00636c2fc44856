package platform

import (
	"fmt"
	"sort"
	"sync"
)

var (
	registry = make(map[string]Fetcher)
	mu       sync.RWMutex
)

// Register makes a fetch engine available under name, replacing any
// previous registration.
func Register(name string, f Fetcher) {
	mu.Lock()
	defer mu.Unlock()
	registry[name] = f
}

func Get(name string) (Fetcher, error) {
	mu.RLock()
	defer mu.RUnlock()
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("fetch engine %q not registered", name)
	}
	return f, nil
}

// List returns registered engine names in sorted order.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
