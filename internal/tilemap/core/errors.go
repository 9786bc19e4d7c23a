package core

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceUnavailable is returned when a level source cannot be opened or read.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrInvalidTileCode is matched by every *InvalidTileCodeError.
	ErrInvalidTileCode = errors.New("invalid tile code")

	// ErrAllocation is returned when extents are negative or exceed MaxCells.
	ErrAllocation = errors.New("grid allocation failed")

	// ErrSourceChanged is returned when the population pass reads content
	// that does not fit the extents measured by the scan pass.
	ErrSourceChanged = errors.New("source changed between passes")

	// ErrEmptySource is returned for a source with no lines at all.
	ErrEmptySource = errors.New("empty source")
)

// InvalidTileCodeError reports a byte rejected by the alphabet.
// Row and Col are zero-based.
type InvalidTileCodeError struct {
	Code byte
	Row  int
	Col  int
}

func (e *InvalidTileCodeError) Error() string {
	return fmt.Sprintf("%s %q at row %d, col %d", ErrInvalidTileCode, e.Code, e.Row, e.Col)
}

// Is makes errors.Is(err, ErrInvalidTileCode) hold.
func (e *InvalidTileCodeError) Is(target error) bool {
	return target == ErrInvalidTileCode
}
