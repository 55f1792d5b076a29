package forest

import "github.com/gghosh95/quadforest/quad"

// selfGlued returns face tables where every face of every tree points
// back at itself, the encoding of an unconnected boundary.
func selfGlued(d quad.Dim, numTrees int) *Connectivity {
	faces := d.Faces()
	c := &Connectivity{
		Dim:        d,
		NumTrees:   numTrees,
		TreeToTree: make([]TreeID, numTrees*faces),
		TreeToFace: make([]int8, numTrees*faces),
	}
	for t := 0; t < numTrees; t++ {
		for f := 0; f < faces; f++ {
			c.TreeToTree[t*faces+f] = TreeID(t)
			c.TreeToFace[t*faces+f] = int8(f)
		}
	}
	return c
}

func (c *Connectivity) glue(t TreeID, f int, nt TreeID, nf, orientation int) {
	faces := c.Dim.Faces()
	c.TreeToTree[int(t)*faces+f] = nt
	c.TreeToFace[int(t)*faces+f] = int8(orientation*faces + nf)
	c.TreeToTree[int(nt)*faces+nf] = t
	c.TreeToFace[int(nt)*faces+nf] = int8(orientation*faces + f)
}

// UnitSquare is a single unconnected quadtree.
func UnitSquare() *Connectivity { return selfGlued(quad.Dim2, 1) }

// UnitCube is a single unconnected octree.
func UnitCube() *Connectivity { return selfGlued(quad.Dim3, 1) }

// TwoTrees is two quadtrees glued left-to-right with aligned
// orientation: tree 0's +x face meets tree 1's -x face.
func TwoTrees() *Connectivity {
	c := selfGlued(quad.Dim2, 2)
	c.glue(0, 1, 1, 0, 0)
	return c
}

// EdgeRing is four octrees in a 2x2 arrangement sharing one vertical
// edge, registered as a non-conforming edge neighborhood: every pair of
// diagonal trees meets only along the edge.
func EdgeRing() *Connectivity {
	c := selfGlued(quad.Dim3, 4)
	c.glue(0, 1, 1, 0, 0)
	c.glue(2, 1, 3, 0, 0)
	c.glue(0, 3, 2, 2, 0)
	c.glue(1, 3, 3, 2, 0)

	c.NumEdges = 1
	c.TreeToEdge = make([]TreeID, 4*12)
	for i := range c.TreeToEdge {
		c.TreeToEdge[i] = -1
	}
	ringEdges := [4]int{11, 10, 9, 8}
	for t, e := range ringEdges {
		c.TreeToEdge[t*12+e] = 0
	}
	c.EttOffset = []int32{0, 4}
	c.EdgeToTree = []TreeID{0, 1, 2, 3}
	c.EdgeToEdge = []int8{11, 10, 9, 8}
	return c
}

func appendUniform(d quad.Dim, x, y, z quad.Coord, level, target int8, out []quad.Quadrant) []quad.Quadrant {
	if level == target {
		return append(out, quad.Quadrant{X: x, Y: y, Z: z, Level: level})
	}
	half := quad.Len(level + 1)
	for k := 0; k < d.Children(); k++ {
		cx, cy, cz := x, y, z
		if k&1 != 0 {
			cx += half
		}
		if k&2 != 0 {
			cy += half
		}
		if k&4 != 0 {
			cz += half
		}
		out = appendUniform(d, cx, cy, cz, level+1, target, out)
	}
	return out
}

// NewUniform builds a forest on c with every tree refined uniformly to
// the given level; level 0 leaves each tree as its single root cell.
func NewUniform(c *Connectivity, level int8) *Forest {
	f := &Forest{Dim: c.Dim, Conn: c, Trees: make([]Tree, c.NumTrees)}
	for t := range f.Trees {
		f.Trees[t].Quadrants = appendUniform(c.Dim, 0, 0, 0, 0, level, nil)
	}
	return f
}
