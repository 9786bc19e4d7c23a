// Package alphabets registers the built-in tile alphabets.
// Import it for side effects.
package alphabets

import (
	"github.com/vovakirdan/tilegrid/internal/registry"
	"github.com/vovakirdan/tilegrid/internal/tilemap/core"
)

const (
	// Digits names the validating alphabet '0'-'3'.
	Digits = "digits"
	// Any names the non-validating alphabet.
	Any = "any"
)

func init() {
	registry.Register(Digits, "tile codes 0 (empty), 1 (wall), 2 (collectible), 3 (spawn)", core.Digits)
	registry.Register(Any, "any byte, no validation", core.AnyTile)
}
