package solver

import (
	"errors"

	"github.com/katalvlaran/wfc/grid"
)

var (
	// ErrNilCatalog indicates New or Restore was called without a catalog.
	ErrNilCatalog = errors.New("solver: catalog is nil")
	// ErrBadDimensions indicates an output size the catalog cannot fill.
	ErrBadDimensions = errors.New("solver: bad output dimensions")
	// ErrOutOfRange is grid.ErrOutOfRange: coordinates, rectangles or pattern ids outside range.
	ErrOutOfRange = grid.ErrOutOfRange
	// ErrSnapshotMismatch indicates a snapshot taken over a different catalog or format.
	ErrSnapshotMismatch = errors.New("solver: snapshot does not match catalog")
)
