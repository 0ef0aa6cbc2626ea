package grid

import "fmt"

// Direction is one of the four cardinal neighbor directions.
type Direction int

const (
	// Right is +x.
	Right Direction = iota
	// Down is +y.
	Down
	// Left is -x.
	Left
	// Up is -y.
	Up
)

// Directions lists all directions in clockwise order.
var Directions = [4]Direction{Right, Down, Left, Up}

var (
	dx = [4]int{1, 0, -1, 0}
	dy = [4]int{0, 1, 0, -1}
)

// DX returns the x component of the unit step in direction d.
func (d Direction) DX() int { return dx[d] }

// DY returns the y component of the unit step in direction d.
func (d Direction) DY() int { return dy[d] }

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction { return (d + 2) & 3 }

// Rotate returns d turned a quarter clockwise.
func (d Direction) Rotate() Direction { return (d + 1) & 3 }

// Mirror returns d reflected across the vertical axis (Left<->Right).
func (d Direction) Mirror() Direction { return (6 - d) & 3 }

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool { return d >= Right && d <= Up }

func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	case Up:
		return "up"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection converts a direction name (as produced by String) back to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "right", "east":
		return Right, nil
	case "down", "south":
		return Down, nil
	case "left", "west":
		return Left, nil
	case "up", "north":
		return Up, nil
	}
	return 0, fmt.Errorf("grid: unknown direction %q", s)
}

// Rect is the half-open cell rectangle [MinX,MaxX)×[MinY,MaxY).
type Rect struct {
	MinX, MinY int
	MaxX, MaxY int
}

// R is shorthand for Rect{minX, minY, maxX, maxY}.
func R(minX, minY, maxX, maxY int) Rect {
	return Rect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// Empty reports whether r contains no cells.
func (r Rect) Empty() bool { return r.MinX >= r.MaxX || r.MinY >= r.MaxY }

// Contains reports whether (x,y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.MinX && x < r.MaxX && y >= r.MinY && y < r.MaxY
}

// Area returns the number of cells in r.
func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}
	return (r.MaxX - r.MinX) * (r.MaxY - r.MinY)
}

// Options configures Grid construction.
type Options struct {
	// Periodic wraps neighbors across every edge.
	Periodic bool
	// Overlap is the pattern footprint size N (1 for tiled models).
	Overlap int
}

// Option is a functional option for New.
type Option func(*Options)

// WithPeriodic toggles wrap-around at the grid edges.
func WithPeriodic(periodic bool) Option {
	return func(o *Options) {
		o.Periodic = periodic
	}
}

// WithOverlap sets the pattern footprint size used for boundary detection.
// Values below 1 are treated as 1.
func WithOverlap(n int) Option {
	return func(o *Options) {
		if n < 1 {
			n = 1
		}
		o.Overlap = n
	}
}

// DefaultOptions returns a bounded grid with footprint size 1.
func DefaultOptions() Options {
	return Options{
		Periodic: false,
		Overlap:  1,
	}
}

// Grid is an immutable rectangular topology. The zero value is not usable; call New.
type Grid struct {
	Width, Height int
	Periodic      bool
	Overlap       int
}
