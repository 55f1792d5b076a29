package iterate

import "github.com/gghosh95/quadforest/quad"

// edgeIterator runs the cooperative descent over edgeSides edge-incident
// sides configured through commonCorner, edgeInZ, edgeTrees and
// startIdx2, each side positioned at one slot of depth row `level`.
// Sides descend in lockstep toward the shared edge: equal leading
// levels make a conforming edge, a one-level gap a hanging edge with
// one callback per sub-edge. Corner callbacks for the midpoint shared by
// two sub-edges are synthesized while backtracking.
func (w *walker) edgeIterator(level int8) {
	s := w.edgeSides
	levelIdx2 := int(level) * w.stride
	for side := 0; side < s; side++ {
		pos := levelIdx2 + w.startIdx2[side]
		for typ := 0; typ < 2; typ++ {
			w.loadSlot(side*2+typ, pos)
		}
	}
	allEmpty := true
	for side := 0; side < s; side++ {
		if w.count[side*2+localT] > 0 {
			allEmpty = false
			break
		}
	}
	if allEmpty {
		return
	}

	ei := &w.edgeInfo
	ei.IntraTree = w.intraTree
	ei.Quads = w.eQuads[:s]
	ei.Trees = w.eTrees[:s]
	ei.TreeLocalNums = w.eLocalNums[:s]
	ei.CommonCorner = w.eCorners[:s]
	ei.EdgeInZOrder = w.eEdges[:s]
	for side := 0; side < s; side++ {
		ei.Trees[side] = w.edgeTrees[side]
		ei.EdgeInZOrder[side] = int8(w.edgeInZ[side])
	}
	w.edgeRecurse(level)
}

func (w *walker) edgeRecurse(level int8) {
	s := w.edgeSides
	childIdx2 := (int(level) + 1) * w.stride
	ei := &w.edgeInfo

	stopRefine := false
	hasTermLocal := false
	for side := 0; side < s; side++ {
		w.refine[side] = true
		ei.Quads[side] = nil
		ei.TreeLocalNums[side] = 0
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
				ei.Quads[side] = w.test[st]
				ei.TreeLocalNums[side] = w.localNum(typ, w.firstIndex[st])
				w.refine[side] = false
				stopRefine = true
				if typ == localT {
					hasTermLocal = true
				}
			}
		}
	}
	anyRefine := false
	for side := 0; side < s; side++ {
		if w.refine[side] {
			anyRefine = true
			break
		}
	}
	if !anyRefine {
		if w.opts.edge != nil {
			ei.Hanging = false
			for side := 0; side < s; side++ {
				ei.CommonCorner[side] = int8(w.commonCorner[0][side])
			}
			w.opts.edge(ei)
		}
		return
	}
	for side := 0; side < s; side++ {
		if !w.refine[side] {
			continue
		}
		for typ := 0; typ < 2; typ++ {
			w.splitSlot(side*2+typ, level, childIdx2)
		}
	}
	if stopRefine {
		w.edgeHanging(level, hasTermLocal)
		return
	}
	// Both sub-edges, low end first, then the shared midpoint corner.
	for i := 0; i < 2; i++ {
		allEmpty := true
		for side := 0; side < s; side++ {
			pos := childIdx2 + w.commonCorner[i][side]
			for typ := 0; typ < 2; typ++ {
				st := side*2 + typ
				w.loadSlot(st, pos)
				if typ == localT && w.count[st] > 0 {
					allEmpty = false
				}
			}
		}
		if !allEmpty {
			w.edgeRecurse(level + 1)
		}
	}
	if w.opts.corner != nil {
		w.edgeCornerSynth(level + 1)
	}
}

// edgeHanging emits the two sub-edge callbacks of a hanging edge (the
// terminal sides repeat, each refined side contributes the single child
// at the matching endpoint slot) and then the midpoint corner.
func (w *walker) edgeHanging(level int8, hasTermLocal bool) {
	s := w.edgeSides
	childIdx2 := (int(level) + 1) * w.stride
	ei := &w.edgeInfo

	for i := 0; i < 2; i++ {
		hasLocal := hasTermLocal
		for side := 0; side < s; side++ {
			if !w.refine[side] {
				continue
			}
			pos := childIdx2 + w.commonCorner[i][side]
			ei.Quads[side] = nil
			ei.TreeLocalNums[side] = 0
			for typ := 0; typ < 2; typ++ {
				st := side*2 + typ
				first := w.index[st][pos]
				if int(w.index[st][pos+1]-first) == 0 {
					continue
				}
				ei.Quads[side] = &w.quadrants[st][first]
				ei.TreeLocalNums[side] = w.localNum(typ, first)
				if typ == localT {
					hasLocal = true
				}
			}
		}
		if hasLocal && w.opts.edge != nil {
			ei.Hanging = true
			for side := 0; side < s; side++ {
				ei.CommonCorner[side] = int8(w.commonCorner[i][side])
			}
			w.opts.edge(ei)
		}
	}

	if w.opts.corner == nil {
		return
	}
	// Midpoint corner: each refined side contributes its two endpoint
	// children with true corners; each terminal side its coarse
	// quadrant, which meets the midpoint inside one of its edges. The
	// midpoint is located per side in that side's own tree frame.
	w.resetDirectCorner()
	for side := 0; side < s; side++ {
		if w.refine[side] {
			for i := 0; i < 2; i++ {
				pos := childIdx2 + w.commonCorner[i][side]
				added := false
				for typ := 0; typ < 2; typ++ {
					st := side*2 + typ
					first := w.index[st][pos]
					if int(w.index[st][pos+1]-first) == 0 {
						continue
					}
					w.addCornerSide(&w.quadrants[st][first], w.edgeTrees[side],
						w.localNum(typ, first), w.commonCorner[1-i][side], typ == localT)
					added = true
				}
				if !added {
					w.addCornerSide(nil, w.edgeTrees[side], 0, w.commonCorner[1-i][side], false)
				}
			}
			continue
		}
		for typ := 0; typ < 2; typ++ {
			st := side*2 + typ
			if w.testLevel[st] == level {
				q := w.test[st]
				px, py, pz := edgeMidpoint(q, w.edgeInZ[side])
				w.addCornerSide(q, w.edgeTrees[side], w.localNum(typ, w.firstIndex[st]),
					w.nearestCorner(q, px, py, pz), typ == localT)
			}
		}
	}
	w.fireDirectCorner()
}

// edgeMidpoint is the midpoint of edge e of quadrant q.
func edgeMidpoint(q *quad.Quadrant, e int) (px, py, pz quad.Coord) {
	l := quad.Len(q.Level)
	h := quad.Len(q.Level + 1)
	px, py, pz = q.X, q.Y, q.Z
	c0 := quad.EdgeCorners[e][0]
	axis := e / 4
	if axis == 0 {
		px += h
	} else if c0&1 != 0 {
		px += l
	}
	if axis == 1 {
		py += h
	} else if c0&2 != 0 {
		py += l
	}
	if axis == 2 {
		pz += h
	} else if c0&4 != 0 {
		pz += l
	}
	return px, py, pz
}

// edgeCornerSynth runs the corner iterator for the midpoint reached
// after both sub-edges of a descended edge completed: each original
// side splits into its two endpoint children, the child at the low
// endpoint participating with its high corner and vice versa.
func (w *walker) edgeCornerSynth(level int8) {
	s := w.edgeSides
	levelIdx2 := int(level) * w.stride
	n := 2 * s
	for i := 0; i < n; i++ {
		src := i % s
		w.cornerInZ[i] = w.commonCorner[1-i/s][src]
		w.startIdx2[i] = w.commonCorner[i/s][src]
		w.cornerTrees[i] = w.edgeTrees[src]
		pos := levelIdx2 + w.startIdx2[i]
		for typ := 0; typ < 2; typ++ {
			from, to := src*2+typ, i*2+typ
			if from == to {
				continue
			}
			w.quadrants[to] = w.quadrants[from]
			w.index[to][pos] = w.index[from][pos]
			w.index[to][pos+1] = w.index[from][pos+1]
		}
	}
	w.cornerSides = n
	w.cornerIterator(level)
}
