package backend

import (
	"sort"
	"sync"

	"github.com/MCPEngu/fileprovider"
)

var mmu sync.RWMutex
var m map[string]fileprovider.FileProvider

// Register a new provider in backend map
func Register(name string, p fileprovider.FileProvider) {
	mmu.Lock()
	m[name] = p
	mmu.Unlock()
}

// Unregister unregisters a provider from backend map
func Unregister(name string) {
	mmu.Lock()
	delete(m, name)
	mmu.Unlock()
}

// UnregisterAll unregisters all providers from backend map
func UnregisterAll() {
	// mainly for tests
	mmu.Lock()
	m = make(map[string]fileprovider.FileProvider)
	mmu.Unlock()
}

// Backend returns the backend provider by name
func Backend(name string) fileprovider.FileProvider {
	mmu.RLock()
	defer mmu.RUnlock()
	return m[name]
}

// RegisteredBackends returns an array of backend names
func RegisteredBackends() []string {
	var f []string
	mmu.RLock()
	for k := range m {
		f = append(f, k)
	}
	mmu.RUnlock()
	sort.Strings(f)
	return f
}

func init() {
	m = make(map[string]fileprovider.FileProvider)
}
