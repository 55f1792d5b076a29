package iterate_test

import (
	"fmt"

	"github.com/gghosh95/quadforest/forest"
	"github.com/gghosh95/quadforest/iterate"
	"github.com/gghosh95/quadforest/quad"
)

// ExampleIterate walks a quadtree refined once and counts what fires:
// the four leaves, their four sibling faces plus eight boundary faces,
// and all nine mesh vertices.
func ExampleIterate() {
	f := forest.NewUniform(forest.UnitSquare(), 1)

	var volumes, faces, corners int
	err := iterate.Iterate(f, nil,
		iterate.WithVolume(func(*iterate.Volume) { volumes++ }),
		iterate.WithFace(func(*iterate.Face) { faces++ }),
		iterate.WithCorner(func(*iterate.Corner) { corners++ }),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("volumes=%d faces=%d corners=%d\n", volumes, faces, corners)
	// Output:
	// volumes=4 faces=12 corners=9
}

// ExampleIterate_hanging shows the 2:1 payload: a hanging face reports
// the coarse leaf on the left of every per-child callback.
func ExampleIterate_hanging() {
	// One quadtree: child 0 coarse, child 1 refined, children 2 and 3
	// coarse. The faces between child 1 and its coarse neighbors 0 and 3
	// hang, each firing one callback per fine child.
	h := quad.Len(1)
	q := quad.Len(2)
	f := &forest.Forest{
		Dim:  quad.Dim2,
		Conn: forest.UnitSquare(),
		Trees: []forest.Tree{{Quadrants: []quad.Quadrant{
			{X: 0, Y: 0, Level: 1},
			{X: h, Y: 0, Level: 2},
			{X: h + q, Y: 0, Level: 2},
			{X: h, Y: q, Level: 2},
			{X: h + q, Y: q, Level: 2},
			{X: 0, Y: h, Level: 1},
			{X: h, Y: h, Level: 1},
		}}},
	}
	err := iterate.Iterate(f, nil, iterate.WithFace(func(fi *iterate.Face) {
		if fi.Hanging {
			fmt.Printf("coarse level %d against fine level %d\n",
				fi.LeftQuad.Level, fi.RightQuad.Level)
		}
	}))
	if err != nil {
		fmt.Println(err)
	}
	// Output:
	// coarse level 1 against fine level 2
	// coarse level 1 against fine level 2
	// coarse level 1 against fine level 2
	// coarse level 1 against fine level 2
}
