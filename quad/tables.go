package quad

// Incidence tables of the unit cell in z-order numbering.
//
// 2D faces: 0 = -x, 1 = +x, 2 = -y, 3 = +y.
// 3D faces: 0 = -x, 1 = +x, 2 = -y, 3 = +y, 4 = -z, 5 = +z.
// 3D edges: 0–3 parallel to x, 4–7 parallel to y, 8–11 parallel to z,
// each group ordered by the z-order of the edge's low corner.

var faceCorners2 = [4][2]int{
	{0, 2}, {1, 3}, {0, 1}, {2, 3},
}

var faceCorners3 = [6][4]int{
	{0, 2, 4, 6}, {1, 3, 5, 7},
	{0, 1, 4, 5}, {2, 3, 6, 7},
	{0, 1, 2, 3}, {4, 5, 6, 7},
}

var cornerFaces2 = [4][2]int{
	{0, 2}, {1, 2}, {0, 3}, {1, 3},
}

var cornerFaces3 = [8][3]int{
	{0, 2, 4}, {1, 2, 4}, {0, 3, 4}, {1, 3, 4},
	{0, 2, 5}, {1, 2, 5}, {0, 3, 5}, {1, 3, 5},
}

// EdgeCorners lists the two endpoints of each 3D edge, low corner first.
var EdgeCorners = [12][2]int{
	{0, 1}, {2, 3}, {4, 5}, {6, 7},
	{0, 2}, {1, 3}, {4, 6}, {5, 7},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// CornerEdges lists, for each 3D corner, the incident edge along each
// axis (x, y, z).
var CornerEdges = [8][3]int{
	{0, 4, 8}, {0, 5, 9}, {1, 4, 10}, {1, 5, 11},
	{2, 6, 8}, {2, 7, 9}, {3, 6, 10}, {3, 7, 11},
}

// EdgeFaces lists the two faces containing each 3D edge.
var EdgeFaces = [12][2]int{
	{2, 4}, {3, 4}, {2, 5}, {3, 5},
	{0, 4}, {1, 4}, {0, 5}, {1, 5},
	{0, 2}, {1, 2}, {0, 3}, {1, 3},
}

// FacePermutations are the eight corner orderings a 3D face can take
// relative to its canonical z-order when seen from a glued neighbor.
var FacePermutations = [8][4]int{
	{0, 1, 2, 3}, {0, 2, 1, 3}, {1, 0, 3, 2}, {1, 3, 0, 2},
	{2, 0, 3, 1}, {2, 3, 0, 1}, {3, 1, 2, 0}, {3, 2, 1, 0},
}

// FacePermutationSets selects, per handedness reference and
// orientation, the entry of FacePermutations to apply.
var FacePermutationSets = [3][4]int{
	{1, 2, 5, 6},
	{0, 3, 4, 7},
	{0, 4, 3, 7},
}

// FacePermutationRefs gives the handedness reference of each ordered
// 3D face pair.
var FacePermutationRefs = [6][6]int{
	{0, 1, 1, 0, 0, 1},
	{2, 0, 0, 1, 1, 0},
	{2, 0, 0, 1, 1, 0},
	{0, 2, 2, 0, 0, 1},
	{0, 2, 2, 0, 0, 1},
	{2, 0, 0, 2, 2, 0},
}

// EdgeFaceCorners[e][f] holds the positions of edge e's endpoints
// within face f's corner list, or {-1, -1} when f does not contain e.
// Derived from EdgeCorners and faceCorners3.
var EdgeFaceCorners [12][6][2]int

func init() {
	for e := 0; e < 12; e++ {
		for f := 0; f < 6; f++ {
			EdgeFaceCorners[e][f] = [2]int{-1, -1}
		}
		for _, f := range EdgeFaces[e] {
			for end := 0; end < 2; end++ {
				for k, c := range faceCorners3[f] {
					if c == EdgeCorners[e][end] {
						EdgeFaceCorners[e][f][end] = k
					}
				}
			}
		}
	}
}

// FaceCorner returns the i-th corner (in z-order) of face f.
func (d Dim) FaceCorner(f, i int) int {
	if d == Dim3 {
		return faceCorners3[f][i]
	}
	return faceCorners2[f][i]
}

// CornerFace returns the i-th face incident to corner c, i < D.
func (d Dim) CornerFace(c, i int) int {
	if d == Dim3 {
		return cornerFaces3[c][i]
	}
	return cornerFaces2[c][i]
}

// FacePermutation resolves the corner permutation of face nf as seen
// across the gluing from face f with the given orientation (3D).
func FacePermutation(f, nf, orientation int) int {
	ref := FacePermutationRefs[f][nf]
	return FacePermutationSets[ref][orientation]
}

// FaceSwap2D reports whether the two corners of face nf are traversed
// against the order of face f's corners for a 2D gluing with the given
// orientation.
func FaceSwap2D(f, nf, orientation int) bool {
	m := f ^ nf
	parity := ((m&2)>>1 ^ m&1 ^ 1)
	return parity^orientation != 0
}
