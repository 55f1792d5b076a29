package iterate_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/gghosh95/quadforest/forest"
	"github.com/gghosh95/quadforest/iterate"
	"github.com/gghosh95/quadforest/quad"
)

// Recorded copies of the callback payloads: the iterator reuses its
// records, so every assertion works on captured values.

type volRec struct {
	tree forest.TreeID
	num  forest.LocalIndex
	quad quad.Quadrant
}

type sideRec struct {
	tree   forest.TreeID
	num    forest.LocalIndex
	corner int8
	edge   int8
	quad   quad.Quadrant
	filled bool
}

type faceRec struct {
	intra, boundary, hanging bool
	left, right              sideRec
	leftFace, rightFace      int8
}

type multiRec struct {
	hanging bool
	sides   []sideRec
}

type recorder struct {
	vols    []volRec
	faces   []faceRec
	edges   []multiRec
	corners []multiRec
}

func (r *recorder) options() []iterate.Option {
	return []iterate.Option{
		iterate.WithVolume(func(v *iterate.Volume) {
			r.vols = append(r.vols, volRec{tree: v.Tree, num: v.TreeLocalNum, quad: *v.Quad})
		}),
		iterate.WithFace(func(f *iterate.Face) {
			r.faces = append(r.faces, faceRec{
				intra:    f.IntraTree,
				boundary: f.Boundary,
				hanging:  f.Hanging,
				leftFace: f.LeftOutgoingFace,
				rightFace: f.RightOutgoingFace,
				left: sideRec{
					tree: f.LeftTree, num: f.LeftTreeLocalNum,
					corner: f.LeftCorner, quad: *f.LeftQuad, filled: true,
				},
				right: sideRec{
					tree: f.RightTree, num: f.RightTreeLocalNum,
					corner: f.RightCorner, quad: *f.RightQuad, filled: true,
				},
			})
		}),
		iterate.WithEdge(func(e *iterate.Edge) {
			rec := multiRec{hanging: e.Hanging}
			for i := range e.Quads {
				s := sideRec{tree: e.Trees[i], corner: e.CommonCorner[i], edge: e.EdgeInZOrder[i]}
				if e.Quads[i] != nil {
					s.filled = true
					s.quad = *e.Quads[i]
					s.num = e.TreeLocalNums[i]
				}
				rec.sides = append(rec.sides, s)
			}
			r.edges = append(r.edges, rec)
		}),
		iterate.WithCorner(func(c *iterate.Corner) {
			rec := multiRec{}
			for i := range c.Quads {
				s := sideRec{tree: c.Trees[i], corner: c.CornerInZOrder[i]}
				if c.Quads[i] != nil {
					s.filled = true
					s.quad = *c.Quads[i]
					s.num = c.TreeLocalNums[i]
				}
				rec.sides = append(rec.sides, s)
			}
			r.corners = append(r.corners, rec)
		}),
	}
}

func (m multiRec) filledCount() int {
	n := 0
	for _, s := range m.sides {
		if s.filled {
			n++
		}
	}
	return n
}

// participants renders the filled sides as a canonical sorted key.
func (m multiRec) participants() string {
	var keys []string
	for _, s := range m.sides {
		if s.filled {
			keys = append(keys, fmt.Sprintf("%d:%d/%d/%d@%d:c%d:e%d",
				s.tree, s.quad.X, s.quad.Y, s.quad.Z, s.quad.Level, s.corner, s.edge))
		}
	}
	sort.Strings(keys)
	return fmt.Sprint(keys)
}

func run(t *testing.T, f *forest.Forest, g *forest.GhostLayer) *recorder {
	t.Helper()
	r := &recorder{}
	require.NoError(t, iterate.Iterate(f, g, r.options()...))
	return r
}

// IterateSuite covers the 2D end-to-end scenarios.
type IterateSuite struct {
	suite.Suite
}

// TestSingleRoot is the minimal forest: one tree, one root leaf.
func (s *IterateSuite) TestSingleRoot() {
	f := forest.NewUniform(forest.UnitSquare(), 0)
	r := run(s.T(), f, nil)

	require.Len(s.T(), r.vols, 1)
	require.Equal(s.T(), forest.TreeID(0), r.vols[0].tree)
	require.Equal(s.T(), forest.LocalIndex(0), r.vols[0].num)

	require.Len(s.T(), r.faces, 4)
	for _, fr := range r.faces {
		require.True(s.T(), fr.boundary)
		require.False(s.T(), fr.hanging)
		require.Equal(s.T(), fr.left, fr.right, "boundary face mirrors left to right")
	}

	require.Len(s.T(), r.corners, 4)
	seen := map[int8]bool{}
	for _, cr := range r.corners {
		require.Equal(s.T(), 1, cr.filledCount())
		seen[cr.sides[0].corner] = true
	}
	require.Len(s.T(), seen, 4, "each root corner emitted once")
}

// TestTwoTrees glues two root leaves along one face (scenario: aligned
// orientation) and checks the owner rule's deduplication.
func (s *IterateSuite) TestTwoTrees() {
	f := forest.NewUniform(forest.TwoTrees(), 0)
	r := run(s.T(), f, nil)

	require.Len(s.T(), r.vols, 2)

	require.Len(s.T(), r.faces, 7, "6 boundary + 1 shared")
	shared := 0
	for _, fr := range r.faces {
		if !fr.boundary {
			shared++
			require.False(s.T(), fr.intra)
			require.False(s.T(), fr.hanging)
			require.NotEqual(s.T(), fr.left.tree, fr.right.tree)
		}
	}
	require.Equal(s.T(), 1, shared, "shared face emitted exactly once")

	require.Len(s.T(), r.corners, 6, "2 shared + 4 boundary-only")
	twoSided := 0
	for _, cr := range r.corners {
		if cr.filledCount() == 2 {
			twoSided++
			trees := map[forest.TreeID]bool{cr.sides[0].tree: true, cr.sides[1].tree: true}
			require.Len(s.T(), trees, 2)
		}
	}
	require.Equal(s.T(), 2, twoSided)
}

// TestUniformOnce is a single tree refined once: sibling faces and the
// central corner.
func (s *IterateSuite) TestUniformOnce() {
	f := forest.NewUniform(forest.UnitSquare(), 1)
	r := run(s.T(), f, nil)

	require.Len(s.T(), r.vols, 4)
	require.Len(s.T(), r.faces, 12, "4 sibling + 8 boundary")
	internal := 0
	for _, fr := range r.faces {
		if !fr.boundary {
			internal++
			require.True(s.T(), fr.intra)
			require.False(s.T(), fr.hanging)
		}
	}
	require.Equal(s.T(), 4, internal)

	require.Len(s.T(), r.corners, 9, "every mesh vertex exactly once")
	byCount := map[int]int{}
	for _, cr := range r.corners {
		byCount[cr.filledCount()]++
	}
	require.Equal(s.T(), map[int]int{1: 4, 2: 4, 4: 1}, byCount)
}

// TestUniformTwiceCoverage pins the closed-form counts at level 2 and
// the exactly-once property via participant keys.
func (s *IterateSuite) TestUniformTwiceCoverage() {
	f := forest.NewUniform(forest.UnitSquare(), 2)
	r := run(s.T(), f, nil)

	require.Len(s.T(), r.vols, 16)
	require.Len(s.T(), r.faces, 40, "24 internal + 16 boundary")
	require.Len(s.T(), r.corners, 25, "5x5 vertex grid")

	seen := map[string]bool{}
	for _, cr := range r.corners {
		key := cr.participants()
		require.False(s.T(), seen[key], "corner emitted twice: %s", key)
		seen[key] = true
	}
}

// TestHangingFace builds the 2:1 configuration: a coarse child next to
// a refined child, with the remote leaves supplied as ghosts.
func (s *IterateSuite) TestHangingFace() {
	h := quad.Len(1)
	q := quad.Len(2)
	conn := forest.UnitSquare()
	f := &forest.Forest{
		Dim:  quad.Dim2,
		Conn: conn,
		Trees: []forest.Tree{{Quadrants: []quad.Quadrant{
			{X: 0, Y: 0, Level: 1},         // coarse child 0
			{X: h, Y: 0, Level: 2},         // fine, low
			{X: h, Y: q, Level: 2},         // fine, high
		}}},
	}
	g := &forest.GhostLayer{
		Quads: []quad.Quadrant{
			{X: h + q, Y: 0, Level: 2},
			{X: h + q, Y: q, Level: 2},
			{X: 0, Y: h, Level: 1},
			{X: h, Y: h, Level: 1},
		},
		TreeIDs: []forest.TreeID{0, 0, 0, 0},
	}
	r := run(s.T(), f, g)

	require.Len(s.T(), r.vols, 3)
	for i, v := range r.vols {
		require.Equal(s.T(), forest.LocalIndex(i), v.num, "volume order is Morton order")
	}

	var hanging []faceRec
	for _, fr := range r.faces {
		if fr.hanging {
			hanging = append(hanging, fr)
		}
	}
	// The local coarse leaf hangs against its two fine neighbors; the
	// ghost coarse leaf above the fine pair hangs against the one local
	// fine leaf (its ghost-ghost pairing is suppressed).
	require.Len(s.T(), hanging, 3)
	var localCoarse []faceRec
	for _, fr := range hanging {
		require.Equal(s.T(), int8(1), fr.left.quad.Level, "left is the coarse side")
		require.Equal(s.T(), int8(2), fr.right.quad.Level)
		if fr.left.num >= 0 {
			require.Equal(s.T(), forest.LocalIndex(0), fr.left.num)
			localCoarse = append(localCoarse, fr)
		}
	}
	require.Len(s.T(), localCoarse, 2, "one callback per hanging child of the local coarse leaf")
	require.NotEqual(s.T(), localCoarse[0].right.quad, localCoarse[1].right.quad)

	// Each hanging midpoint: the coarse leaf plus both fine leaves.
	three := 0
	for _, cr := range r.corners {
		if cr.filledCount() == 3 {
			three++
			levels := map[int8]int{}
			for _, sd := range cr.sides {
				if sd.filled {
					levels[sd.quad.Level]++
				}
			}
			require.Equal(s.T(), map[int8]int{1: 1, 2: 2}, levels)
		}
	}
	require.Equal(s.T(), 2, three, "one three-participant corner per hanging face")

	// A ghost participant carries the negative index convention.
	ghostSeen := false
	for _, fr := range r.faces {
		if fr.right.num < 0 {
			ghostSeen = true
			require.Equal(s.T(), fr.right.quad, g.Quads[fr.right.num+forest.LocalIndex(g.Len())])
		}
	}
	require.True(s.T(), ghostSeen, "ghost neighbors reported with negative tree-local numbers")
}

// TestDeterminism runs the same traversal twice and requires identical
// callback sequences.
func (s *IterateSuite) TestDeterminism() {
	f := forest.NewUniform(forest.TwoTrees(), 2)
	a := run(s.T(), f, nil)
	b := run(s.T(), f, nil)
	require.Equal(s.T(), a.vols, b.vols)
	require.Equal(s.T(), a.faces, b.faces)
	require.Equal(s.T(), a.corners, b.corners)
}

// TestVolumeFastPath requires the volume-only loop to agree with the
// full traversal's volume sequence.
func (s *IterateSuite) TestVolumeFastPath() {
	f := forest.NewUniform(forest.TwoTrees(), 2)
	full := run(s.T(), f, nil)

	var fast []volRec
	require.NoError(s.T(), iterate.Iterate(f, nil, iterate.WithVolume(func(v *iterate.Volume) {
		fast = append(fast, volRec{tree: v.Tree, num: v.TreeLocalNum, quad: *v.Quad})
	})))
	require.Equal(s.T(), full.vols, fast)
}

// TestVolumeCoverage checks P1: the emitted (tree, index) pairs are
// exactly the local leaves, strictly increasing per tree.
func (s *IterateSuite) TestVolumeCoverage() {
	f := forest.NewUniform(forest.TwoTrees(), 2)
	r := run(s.T(), f, nil)
	require.Len(s.T(), r.vols, 32)
	next := map[forest.TreeID]forest.LocalIndex{}
	for _, v := range r.vols {
		require.Equal(s.T(), next[v.tree], v.num)
		require.Equal(s.T(), f.Trees[v.tree].Quadrants[v.num], v.quad)
		next[v.tree]++
	}
	require.Equal(s.T(), forest.LocalIndex(16), next[0])
	require.Equal(s.T(), forest.LocalIndex(16), next[1])
}

func TestIterateSuite(t *testing.T) {
	suite.Run(t, new(IterateSuite))
}

// TestIterateErrors covers the precondition sentinels.
func TestIterateErrors(t *testing.T) {
	if err := iterate.Iterate(nil, nil); err != iterate.ErrNilForest {
		t.Fatalf("nil forest: %v", err)
	}
	f := forest.NewUniform(forest.UnitSquare(), 1)
	f.Trees[0].Quadrants[0], f.Trees[0].Quadrants[1] = f.Trees[0].Quadrants[1], f.Trees[0].Quadrants[0]
	err := iterate.Iterate(f, nil, iterate.WithVolume(func(*iterate.Volume) {}))
	if err == nil {
		t.Fatal("unsorted tree must fail validation")
	}
}

// TestNoCallbacks is a no-op traversal.
func TestNoCallbacks(t *testing.T) {
	f := forest.NewUniform(forest.UnitSquare(), 1)
	if err := iterate.Iterate(f, nil); err != nil {
		t.Fatal(err)
	}
}
