package forest

import "fmt"

// Validate checks the structural contracts of the connectivity tables.
// Internal topological consistency (that gluings are mutual, that edge
// and corner neighborhoods close) remains the builder's contract.
func (c *Connectivity) Validate() error {
	if c == nil || (c.Dim != 2 && c.Dim != 3) || c.NumTrees <= 0 {
		return ErrBadConnectivity
	}
	faces := c.Dim.Faces()
	if len(c.TreeToTree) != c.NumTrees*faces || len(c.TreeToFace) != c.NumTrees*faces {
		return fmt.Errorf("%w: face tables want %d entries", ErrBadConnectivity, c.NumTrees*faces)
	}
	for i, nt := range c.TreeToTree {
		if nt < 0 || int(nt) >= c.NumTrees {
			return fmt.Errorf("%w: tree_to_tree[%d]=%d", ErrBadConnectivity, i, nt)
		}
	}
	if c.NumEdges > 0 {
		if c.Dim != 3 ||
			len(c.TreeToEdge) != c.NumTrees*12 ||
			len(c.EttOffset) != c.NumEdges+1 ||
			len(c.EdgeToTree) != int(c.EttOffset[c.NumEdges]) ||
			len(c.EdgeToEdge) != int(c.EttOffset[c.NumEdges]) {
			return fmt.Errorf("%w: edge tables", ErrBadConnectivity)
		}
	}
	if c.NumCorners > 0 {
		if len(c.TreeToCorner) != c.NumTrees*c.Dim.Corners() ||
			len(c.CttOffset) != c.NumCorners+1 ||
			len(c.CornerToTree) != int(c.CttOffset[c.NumCorners]) ||
			len(c.CornerToCorner) != int(c.CttOffset[c.NumCorners]) {
			return fmt.Errorf("%w: corner tables", ErrBadConnectivity)
		}
	}
	return nil
}

// Validate checks the forest contracts the traversal relies on: a valid
// connectivity covering exactly the trees present, and every tree's
// quadrants inside the root cube in strict Morton order.
func (f *Forest) Validate() error {
	if err := f.Conn.Validate(); err != nil {
		return err
	}
	if f.Dim != f.Conn.Dim || len(f.Trees) != f.Conn.NumTrees {
		return ErrBadConnectivity
	}
	for t := range f.Trees {
		quads := f.Trees[t].Quadrants
		for i, q := range quads {
			if !f.Dim.InsideRoot(q) {
				return fmt.Errorf("%w: tree %d index %d", ErrQuadOutsideRoot, t, i)
			}
			if i > 0 && f.Dim.Compare(quads[i-1], q) >= 0 {
				return fmt.Errorf("%w: tree %d index %d", ErrTreeUnsorted, t, i)
			}
		}
	}
	return nil
}
