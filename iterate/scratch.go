package iterate

import (
	"github.com/gghosh95/quadforest/forest"
	"github.com/gghosh95/quadforest/quad"
)

// Quadrant sequence types within a side: each side of a descent keeps
// one cursor into the owning tree's local sequence and one into the
// ghost layer.
const (
	localT = 0
	ghostT = 1
)

// walker owns all scratch state of one traversal. Cursor state is kept
// flat, indexed by sidetype = side*2 + type: index[st] is a table of
// (depth, child slot) rows, where row L's slots partition the enclosing
// region's quadrants by the z-order child id of their level-L ancestor.
// Everything is allocated once in newWalker and dropped on return from
// Iterate.
type walker struct {
	d    quad.Dim
	f    *forest.Forest
	g    *forest.GhostLayer
	opts options

	children int // cells per refinement, 2^D
	half     int // hanging sub-faces per face, 2^(D-1)
	stride   int // slots per depth row, 2^D + 1

	numGhosts  int32
	ghostFirst []int32

	// Per-sidetype cursor state.
	index      [][]int32
	quadrants  [][]quad.Quadrant
	firstIndex []int32
	count      []int
	test       []*quad.Quadrant
	testLevel  []int8

	// Per-side state.
	startIdx2 []int
	refine    []bool

	// Face iterator arguments.
	numToChild  []int
	face        [2]int
	faceTree    [2]forest.TreeID
	orientation int
	outsideFace bool
	intraTree   bool

	// Edge iterator arguments (3D).
	edgeSides    int
	commonCorner [2][]int
	edgeInZ      []int
	edgeTrees    []forest.TreeID

	// Corner iterator arguments.
	cornerSides int
	cornerInZ   []int
	cornerTrees []forest.TreeID

	// Callback record backing storage, reused across emissions.
	volInfo    Volume
	faceInfo   Face
	edgeInfo   Edge
	cornerInfo Corner
	eQuads     []*quad.Quadrant
	eLocalNums []forest.LocalIndex
	eTrees     []forest.TreeID
	eCorners   []int8
	eEdges     []int8
	cQuads     []*quad.Quadrant
	cLocalNums []forest.LocalIndex
	cTrees     []forest.TreeID
	cCorners   []int8

	// Directly assembled corner callbacks (hanging synthesis).
	dcN        int
	dcHasLocal bool
}

func maxInt(vals ...int) int {
	m := vals[0]
	for _, v := range vals[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func newWalker(f *forest.Forest, g *forest.GhostLayer, opts options) *walker {
	d := f.Dim
	conn := f.Conn
	children := d.Children()

	maxEdge := 4
	if d == quad.Dim3 && (opts.edge != nil || opts.corner != nil) {
		for e := 0; e < conn.NumEdges; e++ {
			if n := int(conn.EttOffset[e+1] - conn.EttOffset[e]); n > maxEdge {
				maxEdge = n
			}
		}
	}
	maxCtt := 0
	if opts.corner != nil {
		for c := 0; c < conn.NumCorners; c++ {
			if n := int(conn.CttOffset[c+1] - conn.CttOffset[c]); n > maxCtt {
				maxCtt = n
			}
		}
	}
	// Side budget: the corner pass unions face-, edge- and
	// corner-table-derived sides; the edge iterator's corner synthesis
	// doubles its side count.
	maxSides := maxInt(4, children, 2*maxEdge, maxCtt+int(d)+1+3*maxEdge)

	w := &walker{
		d:        d,
		f:        f,
		g:        g,
		opts:     opts,
		children: children,
		half:     d.Half(),
		stride:   children + 1,
	}
	var ghostSeq []quad.Quadrant
	if g != nil {
		ghostSeq = g.Quads
	}
	w.numGhosts = int32(len(ghostSeq))
	w.ghostFirst = g.FirstByTree(conn.NumTrees)

	st := 2 * maxSides
	rows := (quad.MaxLevel + 1) * w.stride
	w.index = make([][]int32, st)
	w.quadrants = make([][]quad.Quadrant, st)
	for i := 0; i < st; i++ {
		w.index[i] = make([]int32, rows)
		if i%2 == ghostT {
			w.quadrants[i] = ghostSeq
		}
	}
	w.firstIndex = make([]int32, st)
	w.count = make([]int, st)
	w.test = make([]*quad.Quadrant, st)
	w.testLevel = make([]int8, st)
	w.startIdx2 = make([]int, maxSides)
	w.refine = make([]bool, maxSides)
	w.numToChild = make([]int, 2*w.half)
	w.commonCorner[0] = make([]int, maxSides)
	w.commonCorner[1] = make([]int, maxSides)
	w.edgeInZ = make([]int, maxSides)
	w.edgeTrees = make([]forest.TreeID, maxSides)
	w.cornerInZ = make([]int, maxSides)
	w.cornerTrees = make([]forest.TreeID, maxSides)

	w.eQuads = make([]*quad.Quadrant, maxSides)
	w.eLocalNums = make([]forest.LocalIndex, maxSides)
	w.eTrees = make([]forest.TreeID, maxSides)
	w.eCorners = make([]int8, maxSides)
	w.eEdges = make([]int8, maxSides)
	w.cQuads = make([]*quad.Quadrant, maxSides)
	w.cLocalNums = make([]forest.LocalIndex, maxSides)
	w.cTrees = make([]forest.TreeID, maxSides)
	w.cCorners = make([]int8, maxSides)

	w.volInfo = Volume{Forest: f, Ghost: g}
	w.faceInfo = Face{Forest: f, Ghost: g}
	w.edgeInfo = Edge{Forest: f, Ghost: g}
	w.cornerInfo = Corner{Forest: f, Ghost: g}
	return w
}

// localNum encodes the signed tree-local index: ghost entries map to
// ghostIndex - numGhosts, which is negative.
func (w *walker) localNum(typ int, idx int32) forest.LocalIndex {
	if typ == localT {
		return idx
	}
	return idx - w.numGhosts
}

// loadSlot refreshes a sidetype's range from its row entry.
func (w *walker) loadSlot(st, pos int) {
	w.firstIndex[st] = w.index[st][pos]
	w.count[st] = int(w.index[st][pos+1] - w.firstIndex[st])
}

// splitSlot partitions sidetype st's current range over the child row
// starting at childIdx2, shifting the fenceposts to absolute offsets.
func (w *walker) splitSlot(st int, level int8, childIdx2 int) {
	row := w.index[st]
	first := w.firstIndex[st]
	view := w.quadrants[st][first : int(first)+w.count[st]]
	w.d.SplitAtLevel(view, level, row[childIdx2:childIdx2+w.stride])
	for i := 0; i < w.stride; i++ {
		row[childIdx2+i] += first
	}
}
