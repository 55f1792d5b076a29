package quad

// Coord is the integer coordinate type of a quadrant corner.
// Coordinates of cells inside the root cube lie in [0, RootLen);
// extended coordinates used for ghost-neighbor arithmetic may overshoot
// one root length to either side.
type Coord = int32

const (
	// MaxLevel is the number of refinement bits per axis. The key
	// construction in the corner search uses cells at this level.
	MaxLevel = 30
	// QMaxLevel is the deepest level a stored quadrant may have. Keeping
	// it one below MaxLevel leaves headroom for the level+1 split row of
	// the deepest cells.
	QMaxLevel = MaxLevel - 1
	// RootLen is the side length of a tree's root cube.
	RootLen = Coord(1) << MaxLevel
)

// Len returns the side length of a cell at the given level.
func Len(level int8) Coord {
	return Coord(1) << (MaxLevel - int8(level))
}

// Dim selects the geometric dimension of a forest. It carries every
// dimension-dependent constant and operation.
type Dim int

const (
	// Dim2 is a forest of quadtrees.
	Dim2 Dim = 2
	// Dim3 is a forest of octrees.
	Dim3 Dim = 3
)

// Children returns the number of children of a cell, 2^D.
func (d Dim) Children() int { return 1 << uint(d) }

// Half returns half the number of children, the number of hanging
// sub-faces of a face.
func (d Dim) Half() int { return 1 << uint(d-1) }

// Faces returns the number of faces of a cell, 2·D.
func (d Dim) Faces() int { return 2 * int(d) }

// Edges returns the number of edges of a cell: 12 in 3D, 0 in 2D.
func (d Dim) Edges() int {
	if d == Dim3 {
		return 12
	}
	return 0
}

// Corners returns the number of corners of a cell, 2^D.
func (d Dim) Corners() int { return 1 << uint(d) }

// Quadrant is a single cell: the coordinates of its low corner and its
// refinement level. Z is ignored in 2D. Quadrants within a tree are
// kept sorted by Morton order (see Compare).
type Quadrant struct {
	X, Y, Z Coord
	Level   int8
}

func cmpCoord(a, b Coord) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Compare orders two quadrants by Morton (z-order) index, with an
// ancestor sorting before its descendants. The interleaved key is never
// built: the axis holding the most significant differing bit decides,
// with Z outranking Y outranking X on ties, which matches the bit
// interleaving z|y|x from high to low.
func (d Dim) Compare(a, b Quadrant) int {
	exclorx := uint32(a.X ^ b.X)
	exclory := uint32(a.Y ^ b.Y)
	exclor := exclorx | exclory
	var exclorz uint32
	if d == Dim3 {
		exclorz = uint32(a.Z ^ b.Z)
		exclor |= exclorz
	}
	if exclor == 0 {
		return int(a.Level) - int(b.Level)
	}
	if exclor^exclorz > exclorz {
		if exclorx^exclory > exclory {
			return cmpCoord(a.X, b.X)
		}
		return cmpCoord(a.Y, b.Y)
	}
	return cmpCoord(a.Z, b.Z)
}

// Equal reports coordinate-and-level equality.
func (d Dim) Equal(a, b Quadrant) bool {
	if d == Dim3 && a.Z != b.Z {
		return false
	}
	return a.X == b.X && a.Y == b.Y && a.Level == b.Level
}

// ChildID returns the z-order child index of q's ancestor at the given
// level, relative to the ancestor one level above. level must be ≥ 1
// and at most q.Level.
func (d Dim) ChildID(q Quadrant, level int8) int {
	l := Len(level)
	id := 0
	if q.X&l != 0 {
		id |= 1
	}
	if q.Y&l != 0 {
		id |= 2
	}
	if d == Dim3 && q.Z&l != 0 {
		id |= 4
	}
	return id
}

func aligned(c Coord, level int8) bool {
	return c&(Len(level)-1) == 0
}

// InsideRoot reports whether q lies entirely inside the root cube with
// coordinates aligned to its level grid.
func (d Dim) InsideRoot(q Quadrant) bool {
	if q.Level < 0 || q.Level > QMaxLevel {
		return false
	}
	if !aligned(q.X, q.Level) || !aligned(q.Y, q.Level) {
		return false
	}
	if q.X < 0 || q.X >= RootLen || q.Y < 0 || q.Y >= RootLen {
		return false
	}
	if d == Dim3 {
		if !aligned(q.Z, q.Level) || q.Z < 0 || q.Z >= RootLen {
			return false
		}
	}
	return true
}

// Extended reports whether q is valid as an extended quadrant: aligned
// to its level grid, with at most one root length of overshoot on
// either side of the root cube. Ghost-neighbor arithmetic produces such
// cells. The coordinate bound is checked as c-RootLen < RootLen so that
// 2·RootLen never has to be represented in a Coord.
func (d Dim) Extended(q Quadrant) bool {
	if q.Level < 0 || q.Level > MaxLevel {
		return false
	}
	in := func(c Coord) bool {
		return c >= -RootLen && c-RootLen < RootLen
	}
	if !aligned(q.X, q.Level) || !aligned(q.Y, q.Level) || !in(q.X) || !in(q.Y) {
		return false
	}
	if d == Dim3 && (!aligned(q.Z, q.Level) || !in(q.Z)) {
		return false
	}
	return true
}
