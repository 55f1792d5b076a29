package iterate

import (
	"github.com/gghosh95/quadforest/forest"
	"github.com/gghosh95/quadforest/quad"
)

// cornerIterator fires at most one corner callback for the corner
// configured through cornerInZ, cornerTrees and startIdx2: cornerSides
// sides, each positioned at one slot of depth row `level`. Per side the
// single deepest quadrant whose corner cornerInZ[side] coincides with
// the shared point is located; the callback fires iff at least one
// located participant is local.
func (w *walker) cornerIterator(level int8) {
	n := w.cornerSides
	levelIdx2 := int(level) * w.stride
	mask := ^(quad.Len(level) - 1)

	for side := 0; side < n; side++ {
		pos := levelIdx2 + w.startIdx2[side]
		for typ := 0; typ < 2; typ++ {
			w.loadSlot(side*2+typ, pos)
		}
	}
	allEmpty := true
	for side := 0; side < n; side++ {
		if w.count[side*2+localT] > 0 {
			allEmpty = false
			break
		}
	}
	if allEmpty {
		return
	}

	ci := &w.cornerInfo
	ci.IntraTree = w.intraTree
	ci.Quads = w.cQuads[:n]
	ci.TreeLocalNums = w.cLocalNums[:n]
	ci.Trees = w.cTrees[:n]
	ci.CornerInZOrder = w.cCorners[:n]

	hasLocal := false
	for side := 0; side < n; side++ {
		corner := w.cornerInZ[side]
		ci.Quads[side] = nil
		ci.TreeLocalNums[side] = 0
		ci.Trees[side] = w.cornerTrees[side]
		ci.CornerInZOrder[side] = int8(corner)
		for typ := 0; typ < 2; typ++ {
			st := side*2 + typ
			if w.count[st] == 0 {
				continue
			}
			seq := w.quadrants[st]
			var candIdx int32
			switch {
			case w.count[st] == 1 || corner == 0:
				candIdx = w.firstIndex[st]
			case corner == w.children-1:
				candIdx = w.firstIndex[st] + int32(w.count[st]) - 1
			default:
				// Synthetic key: the smallest cell sitting at the
				// region's corner; the last quadrant not beyond it is
				// the only candidate that can touch the corner.
				key := seq[w.firstIndex[st]]
				key.X &= mask
				key.Y &= mask
				if w.d == quad.Dim3 {
					key.Z &= mask
				}
				key.Level = quad.MaxLevel
				off := quad.Len(level) - quad.Len(quad.MaxLevel)
				if corner&1 != 0 {
					key.X += off
				}
				if corner&2 != 0 {
					key.Y += off
				}
				if w.d == quad.Dim3 && corner&4 != 0 {
					key.Z += off
				}
				view := seq[w.firstIndex[st] : int(w.firstIndex[st])+w.count[st]]
				rel := w.d.FindHigherBound(view, key)
				if rel < 0 {
					continue
				}
				candIdx = w.firstIndex[st] + int32(rel)
			}
			cand := &seq[candIdx]
			// The candidate participates iff its displaced corner sits
			// on the depth-`level` grid, which within this slot region
			// pins it to the shared point.
			p := *cand
			l := quad.Len(p.Level)
			if corner&1 != 0 {
				p.X += l
			}
			if corner&2 != 0 {
				p.Y += l
			}
			if w.d == quad.Dim3 && corner&4 != 0 {
				p.Z += l
			}
			if p.X&^mask != 0 || p.Y&^mask != 0 || (w.d == quad.Dim3 && p.Z&^mask != 0) {
				continue
			}
			ci.Quads[side] = cand
			ci.TreeLocalNums[side] = w.localNum(typ, candIdx)
			if typ == localT {
				hasLocal = true
			}
		}
	}
	if !hasLocal {
		return
	}
	if w.opts.logger != nil {
		for side := 0; side < n; side++ {
			if ci.Quads[side] == nil {
				w.opts.logger.Printf("iterate: corner side %d not filled", side)
			}
		}
	}
	if w.opts.corner != nil {
		w.opts.corner(ci)
	}
}

// Directly assembled corner callbacks: the hanging branches of the face
// and edge iterators know their participants outright, with no search.

func (w *walker) resetDirectCorner() {
	w.dcN = 0
	w.dcHasLocal = false
}

func (w *walker) addCornerSide(q *quad.Quadrant, tree forest.TreeID, num forest.LocalIndex, corner int, local bool) {
	i := w.dcN
	w.cQuads[i] = q
	w.cTrees[i] = tree
	w.cLocalNums[i] = num
	w.cCorners[i] = int8(corner)
	if q == nil {
		w.cLocalNums[i] = 0
	} else if local {
		w.dcHasLocal = true
	}
	w.dcN++
}

func (w *walker) fireDirectCorner() {
	if !w.dcHasLocal {
		return
	}
	ci := &w.cornerInfo
	ci.IntraTree = w.intraTree
	ci.Quads = w.cQuads[:w.dcN]
	ci.TreeLocalNums = w.cLocalNums[:w.dcN]
	ci.Trees = w.cTrees[:w.dcN]
	ci.CornerInZOrder = w.cCorners[:w.dcN]
	w.opts.corner(ci)
}

// nearestCorner is the z-order corner of q nearest the point
// (px,py,pz), low corner on ties. It names the participation corner of
// a coarse quadrant that only touches the point inside one of its faces
// or edges.
func (w *walker) nearestCorner(q *quad.Quadrant, px, py, pz quad.Coord) int {
	l := int64(quad.Len(q.Level))
	c := 0
	if 2*int64(px-q.X) > l {
		c |= 1
	}
	if 2*int64(py-q.Y) > l {
		c |= 2
	}
	if w.d == quad.Dim3 && 2*int64(pz-q.Z) > l {
		c |= 4
	}
	return c
}
