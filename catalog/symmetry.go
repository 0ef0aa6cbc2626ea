package catalog

import "fmt"

// Symmetry is a tile's symmetry class: it decides how many of the tile's four
// rotations are distinct and whether its mirror image is one of them.
//
// Base orientations follow the usual tiled-model conventions on a y-down grid:
// an L tile is drawn so that its horizontal mirror equals its quarter clockwise
// turn (a "┘" corner), a T tile is mirror-symmetric ("┴"), and a D tile is the
// diagonal "\".
type Symmetry int

const (
	// SymmetryX: all rotations and reflections look the same (1 variant).
	SymmetryX Symmetry = iota
	// SymmetryI: straight piece, two distinct rotations.
	SymmetryI
	// SymmetryD: diagonal piece, two distinct rotations.
	SymmetryD
	// SymmetryL: corner piece, four rotations, mirror equals a rotation.
	SymmetryL
	// SymmetryT: T piece, four rotations, mirror equals a rotation.
	SymmetryT
	// SymmetryNone: four distinct rotations and no usable mirror image.
	SymmetryNone
)

// ParseSymmetry accepts X, I, L, T, D (or "\"), and none (or F, N).
// The empty string defaults to X.
func ParseSymmetry(s string) (Symmetry, error) {
	switch s {
	case "", "X":
		return SymmetryX, nil
	case "I":
		return SymmetryI, nil
	case "D", `\`:
		return SymmetryD, nil
	case "L":
		return SymmetryL, nil
	case "T":
		return SymmetryT, nil
	case "none", "F", "N":
		return SymmetryNone, nil
	}
	return 0, fmt.Errorf("%w: unknown symmetry class %q", ErrInvalidRuleSet, s)
}

func (s Symmetry) String() string {
	switch s {
	case SymmetryX:
		return "X"
	case SymmetryI:
		return "I"
	case SymmetryD:
		return "D"
	case SymmetryL:
		return "L"
	case SymmetryT:
		return "T"
	case SymmetryNone:
		return "none"
	}
	return fmt.Sprintf("Symmetry(%d)", int(s))
}

// Cardinality returns the number of distinct variants.
func (s Symmetry) Cardinality() int {
	switch s {
	case SymmetryI, SymmetryD:
		return 2
	case SymmetryL, SymmetryT, SymmetryNone:
		return 4
	}
	return 1
}

// rotate maps variant v to the variant a quarter clockwise turn away.
func (s Symmetry) rotate(v int) int {
	switch s {
	case SymmetryI, SymmetryD:
		return 1 - v
	case SymmetryL, SymmetryT, SymmetryNone:
		return (v + 1) % 4
	}
	return 0
}

// mirror maps variant v to its horizontal mirror image. ok is false when the
// mirror image is not one of the tile's variants.
func (s Symmetry) mirror(v int) (int, bool) {
	switch s {
	case SymmetryX:
		return 0, true
	case SymmetryI:
		return v, true
	case SymmetryD:
		return 1 - v, true
	case SymmetryL:
		return v ^ 1, true
	case SymmetryT:
		if v%2 == 0 {
			return v, true
		}
		return 4 - v, true
	}
	return v, false
}

// variant returns the variant reached by turning the base orientation r quarter turns.
func (s Symmetry) variant(r int) int {
	v := 0
	for i := 0; i < r; i++ {
		v = s.rotate(v)
	}
	return v
}

// transform applies "mirror m times, then rotate r times" to variant v.
func (s Symmetry) transform(v, r int, m bool) (int, bool) {
	if m {
		var ok bool
		if v, ok = s.mirror(v); !ok {
			return 0, false
		}
	}
	for i := 0; i < r; i++ {
		v = s.rotate(v)
	}
	return v, true
}

// SymmetryFromName infers a symmetry class from a trailing X, I, L, T or D letter of a
// tile name, defaulting to X.
func SymmetryFromName(name string) Symmetry {
	if name == "" {
		return SymmetryX
	}
	if s, err := ParseSymmetry(name[len(name)-1:]); err == nil && s != SymmetryNone {
		return s
	}
	return SymmetryX
}
