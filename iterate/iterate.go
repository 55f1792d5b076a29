package iterate

import (
	"fmt"

	"github.com/gghosh95/quadforest/forest"
	"github.com/gghosh95/quadforest/quad"
)

// Iterate walks forest f with ghost layer g and invokes the registered
// callbacks once per incidence: volumes in Morton order per tree, faces,
// edges (3D) and corners each exactly once across the whole forest.
// Inputs are validated up front; no callback fires on error.
func Iterate(f *forest.Forest, g *forest.GhostLayer, opts ...Option) error {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	if f == nil {
		return ErrNilForest
	}
	if err := f.Validate(); err != nil {
		return fmt.Errorf("iterate: %w", err)
	}
	if err := g.Validate(f.Conn); err != nil {
		return fmt.Errorf("iterate: %w", err)
	}
	if f.Dim == quad.Dim2 {
		o.edge = nil
	}
	if o.face == nil && o.edge == nil && o.corner == nil {
		if o.volume != nil {
			volumeOnly(f, g, o.volume)
		}
		return nil
	}
	w := newWalker(f, g, o)
	for t := range f.Trees {
		w.iterateTree(forest.TreeID(t))
	}
	return nil
}

// volumeOnly is the fast path when nothing but the volume callback is
// registered: a plain loop over each tree's local leaves, no descent
// scratch.
func volumeOnly(f *forest.Forest, g *forest.GhostLayer, fn VolumeFunc) {
	info := Volume{Forest: f, Ghost: g}
	for t := range f.Trees {
		info.Tree = forest.TreeID(t)
		for i := range f.Trees[t].Quadrants {
			info.TreeLocalNum = forest.LocalIndex(i)
			info.Quad = &f.Trees[t].Quadrants[i]
			fn(&info)
		}
	}
}

func (w *walker) iterateTree(t forest.TreeID) {
	local := w.f.Trees[t].Quadrants
	if len(local) > 0 {
		// Intra-tree phase: configure both face sides on this tree's
		// sequence and descend from the root region.
		w.intraTree = true
		w.outsideFace = false
		w.orientation = 0
		w.faceTree = [2]forest.TreeID{t, t}
		w.quadrants[0] = local
		w.quadrants[2] = local
		w.index[0][0] = 0
		w.index[0][1] = int32(len(local))
		w.index[1][0] = w.ghostFirst[t]
		w.index[1][1] = w.ghostFirst[t+1]
		w.volInfo.Tree = t
		w.firstIndex[localT] = 0
		w.count[localT] = len(local)
		w.firstIndex[ghostT] = w.ghostFirst[t]
		w.count[ghostT] = int(w.ghostFirst[t+1] - w.ghostFirst[t])
		w.treeDescend(t, 0)
	}

	// Inter-tree phases at the tree's boundary, deduplicated by the
	// owner rules.
	w.intraTree = false
	w.facePass(t)
	if w.d == quad.Dim3 && (w.opts.edge != nil || w.opts.corner != nil) {
		w.edgePass(t)
	}
	if w.opts.corner != nil {
		w.cornerPass(t)
	}
}

// treeDescend processes one region of the intra-tree descent: a cell at
// the given level whose local and ghost ranges are loaded in
// firstIndex/count. Terminal local cells emit volume callbacks; after
// all children of a split region are done, the boundaries between them
// are handed to the face, edge and corner sub-iterators.
func (w *walker) treeDescend(t forest.TreeID, level int8) {
	for typ := 0; typ < 2; typ++ {
		if w.count[typ] == 0 {
			continue
		}
		q := &w.quadrants[typ][w.firstIndex[typ]]
		if q.Level == level {
			if typ == localT && w.opts.volume != nil {
				w.volInfo.TreeLocalNum = w.firstIndex[typ]
				w.volInfo.Quad = q
				w.opts.volume(&w.volInfo)
			}
			return
		}
	}
	childIdx2 := (int(level) + 1) * w.stride
	for typ := 0; typ < 2; typ++ {
		w.splitSlot(typ, level, childIdx2)
	}
	for k := 0; k < w.children; k++ {
		pos := childIdx2 + k
		for typ := 0; typ < 2; typ++ {
			w.loadSlot(typ, pos)
		}
		if w.count[localT] == 0 {
			continue
		}
		w.treeDescend(t, level+1)
	}
	w.treeFaceSynth(t, level+1)
	if w.d == quad.Dim3 && (w.opts.edge != nil || w.opts.corner != nil) {
		w.treeEdgeSynth(t, level+1)
	}
	if w.opts.corner != nil {
		w.treeCornerSynth(t, level+1)
	}
}

// treeFaceSynth hands each internal face between sibling regions of one
// split cell to the face iterator: per axis, the half matched child
// pairs, the lower sibling looking through its plus face.
func (w *walker) treeFaceSynth(t forest.TreeID, level int8) {
	levelIdx2 := int(level) * w.stride
	for dir := 0; dir < int(w.d); dir++ {
		minusFace, plusFace := 2*dir, 2*dir+1
		w.face[0] = plusFace
		w.face[1] = minusFace
		for i := 0; i < w.half; i++ {
			w.numToChild[i] = w.d.FaceCorner(plusFace, i)
			w.numToChild[w.half+i] = w.d.FaceCorner(minusFace, i)
		}
		for i := 0; i < w.half; i++ {
			w.startIdx2[0] = w.d.FaceCorner(minusFace, i)
			w.startIdx2[1] = w.d.FaceCorner(plusFace, i)
			pos := levelIdx2 + w.startIdx2[1]
			for typ := 0; typ < 2; typ++ {
				w.quadrants[2+typ] = w.quadrants[typ]
				w.index[2+typ][pos] = w.index[typ][pos]
				w.index[2+typ][pos+1] = w.index[typ][pos+1]
			}
			w.faceIterator(level)
		}
	}
}

// treeEdgeSynth hands the six interior edges of one split cell to the
// edge iterator: per axis, the runs shared by the four siblings on the
// minus and on the plus face.
func (w *walker) treeEdgeSynth(t forest.TreeID, level int8) {
	levelIdx2 := int(level) * w.stride
	w.edgeSides = 4
	for dir := 0; dir < 3; dir++ {
		for cc := 0; cc < 2; cc++ {
			for j := 0; j < 4; j++ {
				w.commonCorner[cc][j] = w.d.FaceCorner(2*dir+cc, 3-j)
			}
		}
		for j := 0; j < 4; j++ {
			w.edgeInZ[j] = 4*dir + (3 - j)
			w.edgeTrees[j] = t
		}
		for side := 0; side < 2; side++ {
			for j := 0; j < 4; j++ {
				w.startIdx2[j] = w.d.FaceCorner(2*dir+side, j)
				pos := levelIdx2 + w.startIdx2[j]
				for typ := 0; typ < 2; typ++ {
					to := j*2 + typ
					if to == typ {
						continue
					}
					w.quadrants[to] = w.quadrants[typ]
					w.index[to][pos] = w.index[typ][pos]
					w.index[to][pos+1] = w.index[typ][pos+1]
				}
			}
			w.edgeIterator(level)
		}
	}
}

// treeCornerSynth hands the center corner of one split cell to the
// corner iterator: every child region watches the corner opposite its
// own position.
func (w *walker) treeCornerSynth(t forest.TreeID, level int8) {
	levelIdx2 := int(level) * w.stride
	for i := 0; i < w.children; i++ {
		w.cornerInZ[i] = w.children - 1 - i
		w.startIdx2[i] = i
		w.cornerTrees[i] = t
		pos := levelIdx2 + i
		for typ := 0; typ < 2; typ++ {
			to := i*2 + typ
			if to == typ {
				continue
			}
			w.quadrants[to] = w.quadrants[typ]
			w.index[to][pos] = w.index[typ][pos]
			w.index[to][pos+1] = w.index[typ][pos+1]
		}
	}
	w.cornerSides = w.children
	w.cornerIterator(level)
}

// facePass emits the incidences on each of the tree's root faces: the
// boundary faces, and each shared face exactly once from the side with
// the lexicographically larger (tree, face).
func (w *walker) facePass(t forest.TreeID) {
	faces := w.d.Faces()
	local := w.f.Trees[t].Quadrants
	for f := 0; f < faces; f++ {
		nt, nf, o := w.f.Conn.FaceNeighbor(t, f)
		if nt > t || (nt == t && nf > f) {
			continue
		}
		w.face[0] = f
		w.face[1] = nf
		w.faceTree = [2]forest.TreeID{t, nt}
		w.orientation = o
		w.startIdx2[0] = 0
		w.startIdx2[1] = 0
		for j := 0; j < w.half; j++ {
			w.numToChild[j] = w.d.FaceCorner(f, j)
		}
		w.quadrants[0] = local
		w.index[0][0] = 0
		w.index[0][1] = int32(len(local))
		w.index[1][0] = w.ghostFirst[t]
		w.index[1][1] = w.ghostFirst[t+1]
		if nt == t && nf == f {
			w.outsideFace = true
			w.faceIterator(0)
			continue
		}
		w.outsideFace = false
		if w.d == quad.Dim3 {
			perm := quad.FacePermutation(f, nf, o)
			for j := 0; j < w.half; j++ {
				w.numToChild[w.half+j] = w.d.FaceCorner(nf, quad.FacePermutations[perm][j])
			}
		} else if quad.FaceSwap2D(f, nf, o) {
			w.numToChild[w.half] = w.d.FaceCorner(nf, 1)
			w.numToChild[w.half+1] = w.d.FaceCorner(nf, 0)
		} else {
			w.numToChild[w.half] = w.d.FaceCorner(nf, 0)
			w.numToChild[w.half+1] = w.d.FaceCorner(nf, 1)
		}
		nseq := w.f.Trees[nt].Quadrants
		w.quadrants[2] = nseq
		w.index[2][0] = 0
		w.index[2][1] = int32(len(nseq))
		w.index[3][0] = w.ghostFirst[nt]
		w.index[3][1] = w.ghostFirst[nt+1]
		w.faceIterator(0)
	}
}

// edgePass emits each of the tree's twelve root edges once: the full
// incidence set is collected from the two containing faces and the
// registered edge table, and the edge runs only when (t, edge) is the
// smallest collected occurrence.
func (w *walker) edgePass(t forest.TreeID) {
	conn := w.f.Conn
	for i := 0; i < 12; i++ {
		w.edgeTrees[0] = t
		w.edgeInZ[0] = i
		thisEdge := forest.TreeID(-1)
		if conn.NumEdges > 0 {
			thisEdge = conn.TreeToEdge[int(t)*12+i]
		}
		// Our own orientation along the registered edge fixes the
		// canonical direction all sides align to.
		modulus := 0
		if thisEdge >= 0 {
			for j := conn.EttOffset[thisEdge]; j < conn.EttOffset[thisEdge+1]; j++ {
				if conn.EdgeToTree[j] == t && int(conn.EdgeToEdge[j])%12 == i {
					modulus = int(conn.EdgeToEdge[j]) / 12
					break
				}
			}
		}
		w.commonCorner[0][0] = quad.EdgeCorners[i][modulus]
		w.commonCorner[1][0] = quad.EdgeCorners[i][1-modulus]
		sides := 1
		for end := 0; end < 2; end++ {
			f0 := quad.EdgeFaces[i][end]
			nt, f1, o := conn.FaceNeighbor(t, f0)
			if nt == t && f1 == f0 {
				continue
			}
			perm := quad.FacePermutation(f0, f1, o)
			c0 := quad.FacePermutations[perm][quad.EdgeFaceCorners[i][f0][0]]
			c1 := quad.FacePermutations[perm][quad.EdgeFaceCorners[i][f0][1]]
			k := sides
			if modulus == 0 {
				w.commonCorner[0][k] = w.d.FaceCorner(f1, c0)
				w.commonCorner[1][k] = w.d.FaceCorner(f1, c1)
			} else {
				w.commonCorner[0][k] = w.d.FaceCorner(f1, c1)
				w.commonCorner[1][k] = w.d.FaceCorner(f1, c0)
			}
			ne := w.commonCorner[1][k] - w.commonCorner[0][k]
			if ne < 0 {
				ne = -ne
			}
			w.edgeInZ[k] = quad.CornerEdges[w.commonCorner[0][k]][ne>>1]
			w.edgeTrees[k] = nt
			sides++
		}
		if thisEdge >= 0 {
			for j := conn.EttOffset[thisEdge]; j < conn.EttOffset[thisEdge+1]; j++ {
				nt := conn.EdgeToTree[j]
				packed := int(conn.EdgeToEdge[j])
				o, ne := packed/12, packed%12
				c0 := quad.EdgeCorners[ne][o]
				c1 := quad.EdgeCorners[ne][1-o]
				dup := false
				for k := 0; k < sides; k++ {
					if nt == w.edgeTrees[k] && c0 == w.commonCorner[0][k] && c1 == w.commonCorner[1][k] {
						dup = true
						break
					}
				}
				if !dup {
					w.edgeTrees[sides] = nt
					w.edgeInZ[sides] = ne
					w.commonCorner[0][sides] = c0
					w.commonCorner[1][sides] = c1
					sides++
				}
			}
		}
		owner := true
		for k := 1; k < sides; k++ {
			if w.edgeTrees[k] < t || (w.edgeTrees[k] == t && w.edgeInZ[k] < i) {
				owner = false
				break
			}
		}
		if !owner {
			continue
		}
		for k := 0; k < sides; k++ {
			w.startIdx2[k] = 0
			seq := w.f.Trees[w.edgeTrees[k]].Quadrants
			w.quadrants[k*2] = seq
			w.index[k*2][0] = 0
			w.index[k*2][1] = int32(len(seq))
			w.index[k*2+1][0] = w.ghostFirst[w.edgeTrees[k]]
			w.index[k*2+1][1] = w.ghostFirst[w.edgeTrees[k]+1]
		}
		w.edgeSides = sides
		w.edgeIterator(0)
	}
}

// cornerPass emits each of the tree's root corners once: the incidence
// set is the union of the face-derived, edge-derived (3D) and
// registered corner-table entries, and the corner runs only when
// (t, corner) is the smallest collected occurrence.
func (w *walker) cornerPass(t forest.TreeID) {
	conn := w.f.Conn
	for i := 0; i < w.children; i++ {
		w.cornerTrees[0] = t
		w.cornerInZ[0] = i
		sides := 1
		addSide := func(nt forest.TreeID, nc int) {
			for k := 0; k < sides; k++ {
				if nt == w.cornerTrees[k] && nc == w.cornerInZ[k] {
					return
				}
			}
			w.cornerTrees[sides] = nt
			w.cornerInZ[sides] = nc
			sides++
		}
		for j := 0; j < int(w.d); j++ {
			f0 := w.d.CornerFace(i, j)
			nt, f1, o := conn.FaceNeighbor(t, f0)
			if nt == t && f1 == f0 {
				continue
			}
			pos := 0
			for k := 0; k < w.half; k++ {
				if w.d.FaceCorner(f0, k) == i {
					pos = k
				}
			}
			var nc int
			if w.d == quad.Dim3 {
				perm := quad.FacePermutation(f0, f1, o)
				nc = w.d.FaceCorner(f1, quad.FacePermutations[perm][pos])
			} else if quad.FaceSwap2D(f0, f1, o) {
				nc = w.d.FaceCorner(f1, pos^1)
			} else {
				nc = w.d.FaceCorner(f1, pos)
			}
			addSide(nt, nc)
		}
		if w.d == quad.Dim3 && conn.NumEdges > 0 {
			for j := 0; j < 3; j++ {
				m := quad.CornerEdges[i][j]
				thisEdge := conn.TreeToEdge[int(t)*12+m]
				if thisEdge < 0 {
					continue
				}
				modulus := 0
				for k := conn.EttOffset[thisEdge]; k < conn.EttOffset[thisEdge+1]; k++ {
					if conn.EdgeToTree[k] == t && int(conn.EdgeToEdge[k])%12 == m {
						modulus = int(conn.EdgeToEdge[k]) / 12
						break
					}
				}
				if quad.EdgeCorners[m][modulus] == i {
					modulus = 0
				} else {
					modulus = 1
				}
				for k := conn.EttOffset[thisEdge]; k < conn.EttOffset[thisEdge+1]; k++ {
					nt := conn.EdgeToTree[k]
					packed := int(conn.EdgeToEdge[k])
					o, ne := packed/12, packed%12
					addSide(nt, quad.EdgeCorners[ne][o^modulus])
				}
			}
		}
		if conn.NumCorners > 0 {
			if tc := conn.TreeToCorner[int(t)*w.children+i]; tc >= 0 {
				for j := conn.CttOffset[tc]; j < conn.CttOffset[tc+1]; j++ {
					addSide(conn.CornerToTree[j], int(conn.CornerToCorner[j]))
				}
			}
		}
		owner := true
		for k := 1; k < sides; k++ {
			if w.cornerTrees[k] < t || (w.cornerTrees[k] == t && w.cornerInZ[k] < i) {
				owner = false
				break
			}
		}
		if !owner {
			continue
		}
		for k := 0; k < sides; k++ {
			w.startIdx2[k] = 0
			seq := w.f.Trees[w.cornerTrees[k]].Quadrants
			w.quadrants[k*2] = seq
			w.index[k*2][0] = 0
			w.index[k*2][1] = int32(len(seq))
			w.index[k*2+1][0] = w.ghostFirst[w.cornerTrees[k]]
			w.index[k*2+1][1] = w.ghostFirst[w.cornerTrees[k]+1]
		}
		w.cornerSides = sides
		w.cornerIterator(0)
	}
}
