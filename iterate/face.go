package iterate

import (
	"github.com/gghosh95/quadforest/forest"
	"github.com/gghosh95/quadforest/quad"
)

// faceIterator runs the cooperative descent over the two face-incident
// sides configured through face, faceTree, numToChild, orientation and
// startIdx2 (one side when outsideFace), each positioned at one slot of
// depth row `level`. numToChild[side*half+k] is the z-order child index
// on that side matching the k-th child of the face in its canonical
// orientation; the sides descend those matched children in lockstep.
func (w *walker) faceIterator(level int8) {
	limit := 1
	if w.outsideFace {
		limit = 0
	}
	levelIdx2 := int(level) * w.stride
	for side := 0; side <= limit; side++ {
		pos := levelIdx2 + w.startIdx2[side]
		for typ := 0; typ < 2; typ++ {
			w.loadSlot(side*2+typ, pos)
		}
	}
	if w.count[localT] == 0 && (w.outsideFace || w.count[2+localT] == 0) {
		return
	}
	fi := &w.faceInfo
	fi.IntraTree = w.intraTree
	fi.Orientation = int8(w.orientation)
	w.faceRecurse(level)
}

func (w *walker) faceRecurse(level int8) {
	limit := 1
	if w.outsideFace {
		limit = 0
	}
	childIdx2 := (int(level) + 1) * w.stride

	termTyp := [2]int{-1, -1}
	for side := 0; side <= limit; side++ {
		w.refine[side] = true
		for typ := 0; typ < 2; typ++ {
			st := side*2 + typ
			if w.count[st] > 0 {
				w.test[st] = &w.quadrants[st][w.firstIndex[st]]
				w.testLevel[st] = w.test[st].Level
			} else {
				w.test[st] = nil
				w.testLevel[st] = -1
			}
			if w.testLevel[st] == level {
				termTyp[side] = typ
				w.refine[side] = false
			}
		}
	}

	if w.outsideFace {
		if termTyp[0] >= 0 {
			w.emitBoundaryFace(termTyp[0])
			return
		}
	} else if termTyp[0] >= 0 && termTyp[1] >= 0 {
		w.emitConformingFace(termTyp)
		return
	}

	for side := 0; side <= limit; side++ {
		if !w.refine[side] {
			continue
		}
		for typ := 0; typ < 2; typ++ {
			w.splitSlot(side*2+typ, level, childIdx2)
		}
	}

	if termTyp[0] >= 0 || termTyp[1] >= 0 {
		cs := 0
		if termTyp[1] >= 0 {
			cs = 1
		}
		w.faceHanging(level, cs, termTyp[cs])
		return
	}

	// Both sides refine: the matched sub-faces, then the face-interior
	// edges (3D) and the face-center corner one level down.
	for k := 0; k < w.half; k++ {
		allEmpty := true
		for side := 0; side <= limit; side++ {
			pos := childIdx2 + w.numToChild[side*w.half+k]
			for typ := 0; typ < 2; typ++ {
				st := side*2 + typ
				w.loadSlot(st, pos)
				if typ == localT && w.count[st] > 0 {
					allEmpty = false
				}
			}
		}
		if !allEmpty {
			w.faceRecurse(level + 1)
		}
	}
	if w.d == quad.Dim3 && (w.opts.edge != nil || w.opts.corner != nil) {
		w.faceEdgeSynth(level + 1)
	}
	if w.opts.corner != nil {
		w.faceCornerSynth(level + 1)
	}
}

// emitConformingFace fires one callback for two equal-level terminal
// sides, with the local side designated left when exactly one is local.
func (w *walker) emitConformingFace(termTyp [2]int) {
	if w.opts.face == nil {
		return
	}
	ls := 0
	if termTyp[0] != localT && termTyp[1] == localT {
		ls = 1
	}
	rs := ls ^ 1
	fi := &w.faceInfo
	lst := ls*2 + termTyp[ls]
	rst := rs*2 + termTyp[rs]
	fi.Hanging = false
	fi.Boundary = false
	fi.LeftQuad = w.test[lst]
	fi.LeftTree = w.faceTree[ls]
	fi.LeftTreeLocalNum = w.localNum(termTyp[ls], w.firstIndex[lst])
	fi.LeftOutgoingFace = int8(w.face[ls])
	fi.LeftCorner = int8(w.numToChild[ls*w.half])
	fi.RightQuad = w.test[rst]
	fi.RightTree = w.faceTree[rs]
	fi.RightTreeLocalNum = w.localNum(termTyp[rs], w.firstIndex[rst])
	fi.RightOutgoingFace = int8(w.face[rs])
	fi.RightCorner = int8(w.numToChild[rs*w.half])
	w.opts.face(fi)
}

// emitBoundaryFace fires the callback of a face on the forest boundary:
// the right fields duplicate the left.
func (w *walker) emitBoundaryFace(typ int) {
	if w.opts.face == nil || typ != localT {
		return
	}
	fi := &w.faceInfo
	st := typ
	fi.Hanging = false
	fi.Boundary = true
	fi.LeftQuad = w.test[st]
	fi.LeftTree = w.faceTree[0]
	fi.LeftTreeLocalNum = w.localNum(typ, w.firstIndex[st])
	fi.LeftOutgoingFace = int8(w.face[0])
	fi.LeftCorner = int8(w.numToChild[0])
	fi.RightQuad = fi.LeftQuad
	fi.RightTree = fi.LeftTree
	fi.RightTreeLocalNum = fi.LeftTreeLocalNum
	fi.RightOutgoingFace = fi.LeftOutgoingFace
	fi.RightCorner = fi.LeftCorner
	w.opts.face(fi)
}

// faceHanging handles a face whose side cs terminated one level above
// the other: one callback per sub-face child of the fine side with the
// coarse side repeated on the left, then the center-of-face incidences
// that only exist because of the refinement gap.
func (w *walker) faceHanging(level int8, cs, ct int) {
	fs := cs ^ 1
	childIdx2 := (int(level) + 1) * w.stride
	cst := cs*2 + ct
	coarse := w.test[cst]
	coarseNum := w.localNum(ct, w.firstIndex[cst])

	// The fine side's children at the matched sub-face slots.
	var fineQuad [4]*quad.Quadrant
	var fineNum [4]forest.LocalIndex
	var fineLocal [4]bool
	for k := 0; k < w.half; k++ {
		pos := childIdx2 + w.numToChild[fs*w.half+k]
		for typ := 0; typ < 2; typ++ {
			st := fs*2 + typ
			first := w.index[st][pos]
			if int(w.index[st][pos+1]-first) == 0 {
				continue
			}
			fineQuad[k] = &w.quadrants[st][first]
			fineNum[k] = w.localNum(typ, first)
			fineLocal[k] = typ == localT
		}
	}

	if w.opts.face != nil {
		fi := &w.faceInfo
		fi.Hanging = true
		fi.Boundary = false
		fi.LeftQuad = coarse
		fi.LeftTree = w.faceTree[cs]
		fi.LeftTreeLocalNum = coarseNum
		fi.LeftOutgoingFace = int8(w.face[cs])
		fi.RightTree = w.faceTree[fs]
		fi.RightOutgoingFace = int8(w.face[fs])
		for k := 0; k < w.half; k++ {
			if fineQuad[k] == nil || (ct == ghostT && !fineLocal[k]) {
				continue
			}
			fi.LeftCorner = int8(w.numToChild[cs*w.half+k])
			fi.RightCorner = int8(w.numToChild[fs*w.half+k])
			fi.RightQuad = fineQuad[k]
			fi.RightTreeLocalNum = fineNum[k]
			w.opts.face(fi)
		}
	}

	cx, cy, cz := faceCenter(w.d, coarse, w.face[cs])
	if w.d == quad.Dim3 && w.opts.edge != nil {
		w.faceHangingEdges(fineQuad[:], fineNum[:], fineLocal[:], coarse, coarseNum, ct == localT, cs)
	}
	if w.opts.corner != nil {
		// Center corner: the fine children meet it with true corners,
		// the coarse side inside its face.
		w.resetDirectCorner()
		for k := 0; k < w.half; k++ {
			w.addCornerSide(fineQuad[k], w.faceTree[fs], fineNum[k],
				w.numToChild[fs*w.half+(w.half-1-k)], fineLocal[k])
		}
		w.addCornerSide(coarse, w.faceTree[cs], coarseNum,
			w.nearestCorner(coarse, cx, cy, cz), ct == localT)
		w.fireDirectCorner()
	}
}

// faceHangingEdges emits the four face-interior edges of a 3D hanging
// face: per in-face direction and half, one conforming run between two
// fine children with the coarse quadrant as hanging participant.
func (w *walker) faceHangingEdges(fineQuad []*quad.Quadrant, fineNum []forest.LocalIndex, fineLocal []bool,
	coarse *quad.Quadrant, coarseNum forest.LocalIndex, coarseLocal bool, cs int) {
	fs := cs ^ 1
	ei := &w.edgeInfo
	ei.IntraTree = w.intraTree
	ei.Quads = w.eQuads[:3]
	ei.Trees = w.eTrees[:3]
	ei.TreeLocalNums = w.eLocalNums[:3]
	ei.CommonCorner = w.eCorners[:3]
	ei.EdgeInZOrder = w.eEdges[:3]
	for dir := 0; dir < 2; dir++ {
		for arm := 0; arm < 2; arm++ {
			hasLocal := coarseLocal
			for k := 0; k < 2; k++ {
				var ntcIdx, cc0, cc1 int
				if dir == 0 {
					ntcIdx = arm + 2*k
					cc0 = w.numToChild[fs*w.half+2*(1-k)]
					cc1 = w.numToChild[fs*w.half+2*(1-k)+1]
				} else {
					ntcIdx = 2*arm + k
					cc0 = w.numToChild[fs*w.half+(1-k)]
					cc1 = w.numToChild[fs*w.half+(1-k)+2]
				}
				ei.Quads[k] = fineQuad[ntcIdx]
				ei.Trees[k] = w.faceTree[fs]
				ei.TreeLocalNums[k] = 0
				if fineQuad[ntcIdx] != nil {
					ei.TreeLocalNums[k] = fineNum[ntcIdx]
					if fineLocal[ntcIdx] {
						hasLocal = true
					}
				}
				// The child's corner at the face center names the
				// shared end of the run.
				ei.CommonCorner[k] = int8(w.numToChild[fs*w.half+(w.half-1-ntcIdx)])
				diff := cc1 - cc0
				if diff < 0 {
					diff = -diff
				}
				ei.EdgeInZOrder[k] = int8(quad.CornerEdges[cc0][diff>>1])
			}
			ei.Quads[2] = coarse
			ei.Trees[2] = w.faceTree[cs]
			ei.TreeLocalNums[2] = coarseNum
			cx, cy, cz := faceCenter(w.d, coarse, w.face[cs])
			ei.CommonCorner[2] = int8(w.nearestCorner(coarse, cx, cy, cz))
			ei.EdgeInZOrder[2] = -1
			if hasLocal {
				ei.Hanging = true
				w.opts.edge(ei)
			}
		}
	}
}

// faceCenter is the center point of face f of quadrant q.
func faceCenter(d quad.Dim, q *quad.Quadrant, f int) (px, py, pz quad.Coord) {
	l := quad.Len(q.Level)
	h := quad.Len(q.Level + 1)
	px, py, pz = q.X, q.Y, q.Z
	axis := f / 2
	if axis == 0 {
		if f&1 != 0 {
			px += l
		}
		py += h
		if d == quad.Dim3 {
			pz += h
		}
	} else if axis == 1 {
		if f&1 != 0 {
			py += l
		}
		px += h
		if d == quad.Dim3 {
			pz += h
		}
	} else {
		if f&1 != 0 {
			pz += l
		}
		px += h
		py += h
	}
	return px, py, pz
}

// faceEdgeSynth runs the edge iterator along the four face-interior
// edges reached when the matched sub-faces of a descended face
// completed: per in-face direction, the two runs between sub-face
// regions, each seen by two sides per face side.
func (w *walker) faceEdgeSynth(level int8) {
	levelIdx2 := int(level) * w.stride
	sides := 4
	if w.outsideFace {
		sides = 2
	}
	w.edgeSides = sides
	for dir := 0; dir < 2; dir++ {
		if !w.outsideFace {
			for cc := 0; cc < 2; cc++ {
				for j := 0; j < 4; j++ {
					k := j >> 1
					if dir == 0 {
						w.commonCorner[cc][j] = w.numToChild[(j%2)*w.half+2*(1-k)+cc]
					} else {
						w.commonCorner[cc][j] = w.numToChild[(j%2)*w.half+(1-k)+2*cc]
					}
				}
			}
		} else {
			for cc := 0; cc < 2; cc++ {
				for j := 0; j < 2; j++ {
					if dir == 0 {
						w.commonCorner[cc][j] = w.numToChild[2*(1-j)+cc]
					} else {
						w.commonCorner[cc][j] = w.numToChild[(1-j)+2*cc]
					}
				}
			}
		}
		for j := 0; j < sides; j++ {
			v := w.commonCorner[0][j]
			diff := w.commonCorner[1][j] - v
			if diff < 0 {
				diff = -diff
			}
			w.edgeInZ[j] = quad.CornerEdges[v][diff>>1]
			if w.outsideFace {
				w.edgeTrees[j] = w.faceTree[0]
			} else {
				w.edgeTrees[j] = w.faceTree[j%2]
			}
		}
		for arm := 0; arm < 2; arm++ {
			for j := 0; j < sides; j++ {
				src := j % 2
				if w.outsideFace {
					src = 0
					if dir == 0 {
						w.startIdx2[j] = w.numToChild[arm+2*j]
					} else {
						w.startIdx2[j] = w.numToChild[2*arm+j]
					}
				} else {
					k := j >> 1
					if dir == 0 {
						w.startIdx2[j] = w.numToChild[src*w.half+arm+2*k]
					} else {
						w.startIdx2[j] = w.numToChild[src*w.half+2*arm+k]
					}
				}
				pos := levelIdx2 + w.startIdx2[j]
				for typ := 0; typ < 2; typ++ {
					from, to := src*2+typ, j*2+typ
					if from == to {
						continue
					}
					w.quadrants[to] = w.quadrants[from]
					w.index[to][pos] = w.index[from][pos]
					w.index[to][pos+1] = w.index[from][pos+1]
				}
			}
			w.edgeIterator(level)
		}
	}
}

// faceCornerSynth runs the corner iterator for the face-center corner
// reached when the matched sub-faces of a descended face completed.
func (w *walker) faceCornerSynth(level int8) {
	levelIdx2 := int(level) * w.stride
	if !w.outsideFace {
		n := w.children
		for j := 0; j < n; j++ {
			src := j % 2
			w.cornerInZ[j] = w.numToChild[src*w.half+(w.half-1-j/2)]
			w.startIdx2[j] = w.numToChild[src*w.half+j/2]
			w.cornerTrees[j] = w.faceTree[src]
			pos := levelIdx2 + w.startIdx2[j]
			for typ := 0; typ < 2; typ++ {
				from, to := src*2+typ, j*2+typ
				if from == to {
					continue
				}
				w.quadrants[to] = w.quadrants[from]
				w.index[to][pos] = w.index[from][pos]
				w.index[to][pos+1] = w.index[from][pos+1]
			}
		}
		w.cornerSides = n
	} else {
		n := w.half
		for j := 0; j < n; j++ {
			w.cornerInZ[j] = w.numToChild[w.half-1-j]
			w.startIdx2[j] = w.numToChild[j]
			w.cornerTrees[j] = w.faceTree[0]
			pos := levelIdx2 + w.startIdx2[j]
			for typ := 0; typ < 2; typ++ {
				from, to := typ, j*2+typ
				if from == to {
					continue
				}
				w.quadrants[to] = w.quadrants[from]
				w.index[to][pos] = w.index[from][pos]
				w.index[to][pos+1] = w.index[from][pos+1]
			}
		}
		w.cornerSides = n
	}
	w.cornerIterator(level)
}
