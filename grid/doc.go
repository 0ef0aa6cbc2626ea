// Package grid describes the rectangular cell topology a wfc solver runs on.
//
// What:
//
//   - Grid maps (x,y) coordinates to row-major cell indices and back.
//   - Four cardinal directions (Right, Down, Left, Up) with their dihedral
//     transforms (Rotate, Mirror, Opposite) used when expanding tile rules.
//   - Periodic grids wrap at every edge; bounded grids do not.
//   - Bounded grids carry an overlap size N: cells whose N×N footprint would
//     leave the grid (x+N > Width or y+N > Height) are "boundary" cells.
//     Constraints never flow into them and they are never observed; their
//     content is read from the nearest interior footprint.
//   - Rect is a half-open rectangle [MinX,MaxX)×[MinY,MaxY) of cells.
//
// Coordinates are y-down: Up is (0,-1), Down is (0,+1). Directions are ordered
// clockwise, so Rotate (a quarter turn clockwise) is d+1 modulo 4.
//
// Complexity: every operation is O(1); Rect iteration is O(area).
//
// Errors:
//
//   - ErrEmptyGrid: width or height is not positive.
//   - ErrOverlapTooLarge: a bounded grid is narrower or shorter than N.
//   - ErrOutOfRange: a coordinate or rectangle lies outside the grid.
package grid
