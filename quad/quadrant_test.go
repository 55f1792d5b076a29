package quad

import "testing"

// TestCompareSiblings verifies that the four children of the 2D root
// sort in z-order child-index order.
func TestCompareSiblings(t *testing.T) {
	h := Len(1)
	kids := []Quadrant{
		{X: 0, Y: 0, Level: 1},
		{X: h, Y: 0, Level: 1},
		{X: 0, Y: h, Level: 1},
		{X: h, Y: h, Level: 1},
	}
	for i := range kids {
		for j := range kids {
			got := Dim2.Compare(kids[i], kids[j])
			switch {
			case i < j && got >= 0:
				t.Errorf("Compare(kid%d, kid%d) = %d; want < 0", i, j, got)
			case i > j && got <= 0:
				t.Errorf("Compare(kid%d, kid%d) = %d; want > 0", i, j, got)
			case i == j && got != 0:
				t.Errorf("Compare(kid%d, kid%d) = %d; want 0", i, j, got)
			}
		}
	}
}

// TestCompareAncestorFirst verifies that an ancestor precedes every one
// of its descendants.
func TestCompareAncestorFirst(t *testing.T) {
	root := Quadrant{Level: 0}
	h := Len(2)
	deep := Quadrant{X: 3 * h, Y: h, Level: 2}
	if Dim2.Compare(root, deep) >= 0 {
		t.Error("ancestor should sort before descendant")
	}
	if Dim2.Compare(deep, root) <= 0 {
		t.Error("descendant should sort after ancestor")
	}
}

// TestCompareAxisPriority verifies the interleaving order: in 3D the z
// axis outranks y outranks x when the differing bits are at the same
// position.
func TestCompareAxisPriority(t *testing.T) {
	h := Len(1)
	cases := []struct {
		name string
		d    Dim
		a, b Quadrant
	}{
		{"YOverX2D", Dim2, Quadrant{X: h, Level: 1}, Quadrant{Y: h, Level: 1}},
		{"YOverX3D", Dim3, Quadrant{X: h, Level: 1}, Quadrant{Y: h, Level: 1}},
		{"ZOverY3D", Dim3, Quadrant{Y: h, Level: 1}, Quadrant{Z: h, Level: 1}},
		{"ZOverX3D", Dim3, Quadrant{X: h, Level: 1}, Quadrant{Z: h, Level: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.d.Compare(tc.a, tc.b) >= 0 {
				t.Errorf("Compare(%+v, %+v) >= 0; want < 0", tc.a, tc.b)
			}
		})
	}
}

// TestChildID walks a deep quadrant's ancestor chain.
func TestChildID(t *testing.T) {
	// Child path root -> 3 -> 0 -> 2 in 2D.
	x := Len(1)
	y := Len(1) + Len(3)
	q := Quadrant{X: x, Y: y, Level: 3}
	want := []int{3, 0, 2}
	for l := int8(1); l <= 3; l++ {
		if got := Dim2.ChildID(q, l); got != want[l-1] {
			t.Errorf("ChildID(level %d) = %d; want %d", l, got, want[l-1])
		}
	}
}

// TestInsideRootAndExtended covers the validity boundaries.
func TestInsideRootAndExtended(t *testing.T) {
	cases := []struct {
		name     string
		q        Quadrant
		inside   bool
		extended bool
	}{
		{"Root", Quadrant{Level: 0}, true, true},
		{"Deep", Quadrant{X: Len(2), Y: 3 * Len(2), Level: 2}, true, true},
		{"NegLevel", Quadrant{Level: -1}, false, false},
		{"Misaligned", Quadrant{X: 1, Level: 1}, false, false},
		{"Negative", Quadrant{X: -Len(1), Level: 1}, false, true},
		{"Overshoot", Quadrant{X: RootLen, Level: 1}, false, true},
		{"FarOvershoot", Quadrant{X: RootLen + Len(1), Y: RootLen, Level: 1}, false, true},
		{"TooFar", Quadrant{X: -RootLen - Len(1), Level: 1}, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Dim2.InsideRoot(tc.q); got != tc.inside {
				t.Errorf("InsideRoot = %v; want %v", got, tc.inside)
			}
			if got := Dim2.Extended(tc.q); got != tc.extended {
				t.Errorf("Extended = %v; want %v", got, tc.extended)
			}
		})
	}
}

// TestDimCounts pins the dimension-derived constants.
func TestDimCounts(t *testing.T) {
	if Dim2.Children() != 4 || Dim2.Faces() != 4 || Dim2.Edges() != 0 || Dim2.Corners() != 4 || Dim2.Half() != 2 {
		t.Error("Dim2 constants wrong")
	}
	if Dim3.Children() != 8 || Dim3.Faces() != 6 || Dim3.Edges() != 12 || Dim3.Corners() != 8 || Dim3.Half() != 4 {
		t.Error("Dim3 constants wrong")
	}
}
