// Package levels provides level loading on top of the grid core.
// This package depends on core but core does not depend on levels.
package levels

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tilegrid/internal/registry"
	_ "github.com/vovakirdan/tilegrid/internal/tilemap/alphabets" // built-in alphabet names
	"github.com/vovakirdan/tilegrid/internal/tilemap/core"
	"github.com/vovakirdan/tilegrid/internal/tilemap/levels/formats"
)

// Level represents a complete level definition.
type Level struct {
	ID       string
	Name     string
	Format   formats.Format
	Alphabet string
	Grid     *core.Grid
	Metadata map[string]string
	FilePath string
}

// Extents returns the level grid size.
func (l *Level) Extents() core.Extents {
	return l.Grid.Extents()
}

// TileCounts returns the number of cells per tile code, keyed by the code
// as a string. Filler cells are not counted.
func (l *Level) TileCounts() map[string]int {
	counts := make(map[string]int)
	for t, n := range l.Grid.Counts() {
		if t == core.Filler {
			continue
		}
		counts[string(t)] = n
	}
	return counts
}

// Loader handles loading levels from a directory.
type Loader struct {
	Root string

	alphabet     core.Alphabet
	alphabetName string
	workers      int
	logger       *log.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithAlphabet sets the alphabet used to validate tile codes.
func WithAlphabet(name string, a core.Alphabet) Option {
	return func(l *Loader) {
		l.alphabetName = name
		l.alphabet = a
	}
}

// WithWorkers bounds how many files LoadAll reads at once.
func WithWorkers(n int) Option {
	return func(l *Loader) {
		if n > 0 {
			l.workers = n
		}
	}
}

// WithLogger sets the logger. The default discards output.
func WithLogger(logger *log.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLoader creates a new level loader.
func NewLoader(root string, opts ...Option) *Loader {
	l := &Loader{
		Root:         root,
		alphabet:     core.Digits,
		alphabetName: "digits",
		workers:      runtime.GOMAXPROCS(0),
		logger:       log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadFile loads a single level file.
func (l *Loader) LoadFile(path string) (Level, error) {
	start := time.Now()

	ext := strings.ToLower(filepath.Ext(path))
	format, ok := formats.ForExtension(ext)
	if !ok {
		return Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}

	parsed, err := l.parse(path, format)
	if err != nil {
		l.logger.Warn("level rejected", "path", path, "error", err)
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}

	alphabet := parsed.Alphabet
	if alphabet == "" {
		alphabet = l.alphabetName
	}

	id := parsed.ID
	if id == "" {
		id = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	name := parsed.Name
	if name == "" {
		name = id
	}

	lvl := Level{
		ID:       id,
		Name:     name,
		Format:   format,
		Alphabet: alphabet,
		Grid:     parsed.Grid,
		Metadata: parsed.Metadata,
		FilePath: path,
	}
	l.logger.Debug("level loaded", "id", lvl.ID, "extents", lvl.Extents(), "took", time.Since(start))
	return lvl, nil
}

func (l *Loader) parse(path string, format formats.Format) (formats.Level, error) {
	switch format {
	case formats.FormatText:
		return formats.ParseText(path, l.alphabet)
	case formats.FormatYAML:
		data, err := os.ReadFile(path)
		if err != nil {
			return formats.Level{}, fmt.Errorf("%w: %w", core.ErrSourceUnavailable, err)
		}
		return formats.ParseYAML(data, l.alphabet, registry.Get)
	default:
		return formats.Level{}, fmt.Errorf("unsupported format: %s", format)
	}
}

// paths returns every supported level file under Root, sorted.
func (l *Loader) paths() ([]string, error) {
	var paths []string

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		if _, ok := formats.ForExtension(strings.ToLower(filepath.Ext(path))); ok {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Strings(paths)
	return paths, nil
}

// LoadAll recursively scans Root and loads every level file, several at
// a time. Each file gets its own handles and grid. The first failure
// cancels the rest and is returned.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll(ctx context.Context) ([]Level, error) {
	paths, err := l.paths()
	if err != nil {
		return nil, err
	}

	levels := make([]Level, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.workers)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			lvl, err := l.LoadFile(path)
			if err != nil {
				return err
			}
			levels[i] = lvl
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[string]string, len(levels))
	for _, lvl := range levels {
		if prev, dup := seen[lvl.ID]; dup {
			return nil, fmt.Errorf("duplicate level id %q in %s and %s", lvl.ID, prev, lvl.FilePath)
		}
		seen[lvl.ID] = lvl.FilePath
	}

	// Sort by ID for determinism
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	l.logger.Info("levels loaded", "root", l.Root, "count", len(levels))
	return levels, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(ctx context.Context, id string) (Level, error) {
	levels, err := l.LoadAll(ctx)
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs(ctx context.Context) ([]string, error) {
	levels, err := l.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}
