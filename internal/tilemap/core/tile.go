package core

// Tile is a single tile code as it appears in a level file.
type Tile = byte

// Filler pads rows shorter than the grid width. A filler cell means
// empty/unset; it is never produced by a validated source.
const Filler Tile = ' '

// Tile codes of the digit alphabet.
const (
	TileEmpty       Tile = '0'
	TileWall        Tile = '1'
	TileCollectible Tile = '2'
	TileSpawn       Tile = '3'
)

// TileName returns a human-readable name for a digit tile code.
func TileName(t Tile) string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileWall:
		return "wall"
	case TileCollectible:
		return "collectible"
	case TileSpawn:
		return "spawn"
	case Filler:
		return "filler"
	default:
		return "unknown"
	}
}

// Alphabet decides which bytes may populate a grid cell.
type Alphabet interface {
	Accepts(t Tile) bool
}

// Codes is an alphabet listing every accepted byte.
type Codes string

// Accepts reports whether t is one of the listed codes.
func (c Codes) Accepts(t Tile) bool {
	for i := 0; i < len(c); i++ {
		if c[i] == t {
			return true
		}
	}
	return false
}

type anyTile struct{}

func (anyTile) Accepts(Tile) bool { return true }

var (
	// Digits is the validating alphabet: '0' through '3'.
	Digits Alphabet = Codes("0123")

	// AnyTile accepts every byte, disabling validation.
	AnyTile Alphabet = anyTile{}
)
