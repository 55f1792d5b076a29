package iterate

import (
	"errors"

	"github.com/gghosh95/quadforest/forest"
	"github.com/gghosh95/quadforest/quad"
)

// ErrNilForest is returned when Iterate is handed a nil forest.
var ErrNilForest = errors.New("iterate: forest must not be nil")

// Volume is the payload of a volume callback: one local leaf.
type Volume struct {
	Forest       *forest.Forest
	Ghost        *forest.GhostLayer
	Tree         forest.TreeID
	TreeLocalNum forest.LocalIndex
	Quad         *quad.Quadrant
}

// Face is the payload of a face callback. TreeLocalNum fields are
// signed: non-negative values index the owning tree's local sequence,
// negative values denote a ghost at index value+numGhosts of the ghost
// layer. On a hanging face Left is the coarse side, repeated across the
// per-child callbacks. On a Boundary face the Right fields duplicate
// the Left fields.
type Face struct {
	Forest      *forest.Forest
	Ghost       *forest.GhostLayer
	IntraTree   bool
	Boundary    bool
	Hanging     bool
	Orientation int8

	LeftQuad          *quad.Quadrant
	LeftTree          forest.TreeID
	LeftTreeLocalNum  forest.LocalIndex
	LeftOutgoingFace  int8
	LeftCorner        int8
	RightQuad         *quad.Quadrant
	RightTree         forest.TreeID
	RightTreeLocalNum forest.LocalIndex
	RightOutgoingFace int8
	RightCorner       int8
}

// Edge is the payload of a 3D edge callback. The per-side slices are
// parallel; a nil Quads entry marks a side with no participating leaf.
// CommonCorner[s] is the corner of side s's quadrant at the shared
// point of the current (sub-)edge; EdgeInZOrder[s] is the edge of side
// s's quadrant lying on the iterated edge. Hanging marks an edge whose
// participants mix two refinement levels.
type Edge struct {
	Forest    *forest.Forest
	Ghost     *forest.GhostLayer
	IntraTree bool
	Hanging   bool

	Quads         []*quad.Quadrant
	Trees         []forest.TreeID
	TreeLocalNums []forest.LocalIndex
	CommonCorner  []int8
	EdgeInZOrder  []int8
}

// Corner is the payload of a corner callback. The per-side slices are
// parallel; a nil Quads entry marks a side with no participating leaf.
// CornerInZOrder[s] is the corner of side s's quadrant at the iterated
// point; for a participant that only touches the point in the interior
// of one of its faces or edges (the coarse side of a hanging
// configuration) it is the nearest corner, low corner on ties.
type Corner struct {
	Forest    *forest.Forest
	Ghost     *forest.GhostLayer
	IntraTree bool

	Quads          []*quad.Quadrant
	Trees          []forest.TreeID
	TreeLocalNums  []forest.LocalIndex
	CornerInZOrder []int8
}

// VolumeFunc receives each local leaf.
type VolumeFunc func(*Volume)

// FaceFunc receives each face incidence.
type FaceFunc func(*Face)

// EdgeFunc receives each edge incidence (3D forests only).
type EdgeFunc func(*Edge)

// CornerFunc receives each corner incidence.
type CornerFunc func(*Corner)
