// Package registry provides a global registry of named tile alphabets.
// Alphabets register themselves in init() functions, allowing the loader
// and CLI to select one by name from configuration or flags.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tilegrid/internal/tilemap/core"
)

// AlphabetInfo contains metadata about a registered alphabet.
type AlphabetInfo struct {
	Name        string
	Description string
}

type entry struct {
	description string
	alphabet    core.Alphabet
}

var (
	alphabets = make(map[string]entry)
	mu        sync.RWMutex
)

// Register adds an alphabet to the registry.
// Typically called from an init() function.
// Panics if an alphabet with the same name is already registered.
func Register(name, description string, a core.Alphabet) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := alphabets[name]; exists {
		panic(fmt.Sprintf("registry: alphabet %q already registered", name))
	}
	if a == nil {
		panic(fmt.Sprintf("registry: alphabet %q is nil", name))
	}

	alphabets[name] = entry{description: description, alphabet: a}
}

// List returns information about all registered alphabets, sorted by name.
func List() []AlphabetInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]AlphabetInfo, 0, len(alphabets))
	for name, e := range alphabets {
		result = append(result, AlphabetInfo{
			Name:        name,
			Description: e.description,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Get returns the alphabet registered under name.
func Get(name string) (core.Alphabet, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := alphabets[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown alphabet %q", name)
	}

	return e.alphabet, nil
}

// Exists checks if an alphabet with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := alphabets[name]
	return ok
}
