package forest

import (
	"github.com/gghosh95/quadforest/quad"
)

// TreeID identifies a tree within the connectivity.
type TreeID = int32

// LocalIndex indexes a quadrant within one tree's local sequence. In
// callback records a negative LocalIndex denotes a ghost: the value is
// ghostIndex - numGhosts, so the ghost-array index is value + numGhosts.
type LocalIndex = int32

// Tree is one root cube's local leaves in Morton order, covering the
// cube disjointly together with the remote leaves held elsewhere.
type Tree struct {
	Quadrants []quad.Quadrant
}

// GhostLayer carries leaves owned by neighboring processes, each
// annotated with its owning tree, sorted by (owning tree, Morton).
// Quads and TreeIDs are parallel slices.
type GhostLayer struct {
	Quads   []quad.Quadrant
	TreeIDs []TreeID
}

// Len returns the number of ghost quadrants.
func (g *GhostLayer) Len() int {
	if g == nil {
		return 0
	}
	return len(g.Quads)
}

// Connectivity describes how tree root cubes are glued. Faces are
// numbered in z-order (2D: -x,+x,-y,+y; 3D adds -z,+z). A face with no
// neighbor points back at itself: TreeToTree[t*F+f] == t with face f.
//
// TreeToFace packs orientation and neighbor face as orientation*F+face.
// In 2D orientation is 0 or 1; corner alignment across a gluing follows
// quad.FaceSwap2D. In 3D orientation selects the face corner
// permutation via quad.FacePermutation.
//
// The edge tables (3D only) and corner tables are optional: NumEdges or
// NumCorners of zero disables them, and individual entries of -1 in
// TreeToEdge/TreeToCorner leave an edge or corner unregistered.
// Registered entries list every (tree, edge/corner) incidence in
// EdgeToTree/EdgeToEdge between EttOffset[e] and EttOffset[e+1], with
// EdgeToEdge packed as orientation*12+edge; corners likewise without an
// orientation.
type Connectivity struct {
	Dim      quad.Dim
	NumTrees int

	TreeToTree []TreeID
	TreeToFace []int8

	NumEdges   int
	TreeToEdge []TreeID
	EttOffset  []int32
	EdgeToTree []TreeID
	EdgeToEdge []int8

	NumCorners     int
	TreeToCorner   []TreeID
	CttOffset      []int32
	CornerToTree   []TreeID
	CornerToCorner []int8
}

// FaceNeighbor resolves the neighbor of tree t across face f, returning
// the neighbor tree, its face, and the gluing orientation.
func (c *Connectivity) FaceNeighbor(t TreeID, f int) (nt TreeID, nf, orientation int) {
	faces := c.Dim.Faces()
	i := int(t)*faces + f
	packed := int(c.TreeToFace[i])
	return c.TreeToTree[i], packed % faces, packed / faces
}

// Forest is the local part of the distributed mesh: one Tree per
// connectivity tree (possibly empty), all glued by Conn.
type Forest struct {
	Dim   quad.Dim
	Trees []Tree
	Conn  *Connectivity
}
