package formats

import (
	"path/filepath"
	"strings"

	"github.com/vovakirdan/tilegrid/internal/tilemap/core"
)

// ParseText loads a raw map file by path. The ID is the base name
// without extension.
func ParseText(path string, alpha core.Alphabet) (Level, error) {
	grid, err := core.LoadFile(path, alpha)
	if err != nil {
		return Level{}, err
	}

	id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Level{
		ID:   id,
		Name: id,
		Grid: grid,
	}, nil
}
