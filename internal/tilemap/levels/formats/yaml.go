// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tilegrid/internal/tilemap/core"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Alphabet string            `yaml:"alphabet,omitempty"`
	Rows     []string          `yaml:"rows"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// Level represents a parsed level ready for use.
type Level struct {
	ID       string
	Name     string
	Alphabet string // Empty means the loader's alphabet
	Grid     *core.Grid
	Metadata map[string]string
}

// ParseYAML parses a YAML level file. Rows go through the same scan and
// population passes as a text level, so padding and validation match.
// resolve maps the optional alphabet name to an alphabet; alpha is used
// when the file names none.
func ParseYAML(data []byte, alpha core.Alphabet, resolve func(string) (core.Alphabet, error)) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if yl.Alphabet != "" && resolve != nil {
		a, err := resolve(yl.Alphabet)
		if err != nil {
			return Level{}, err
		}
		alpha = a
	}

	// Every entry is one row, blank trailing rows included.
	var body strings.Builder
	for _, row := range yl.Rows {
		body.WriteString(row)
		body.WriteByte('\n')
	}
	grid, err := core.LoadBytes([]byte(body.String()), alpha)
	if err != nil {
		return Level{}, fmt.Errorf("rows: %w", err)
	}

	return Level{
		ID:       yl.ID,
		Name:     yl.Name,
		Alphabet: yl.Alphabet,
		Grid:     grid,
		Metadata: yl.Metadata,
	}, nil
}
