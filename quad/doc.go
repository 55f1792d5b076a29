// Package quad defines the integer-coordinate cell ("quadrant") at the
// bottom of github.com/gghosh95/quadforest, together with the Morton
// (z-order) arithmetic and sorted-range indexing that the traversal in
// package iterate is built on.
//
// What:
//
//   - Quadrant: a leaf cell of a quadtree (2D) or octree (3D), stored as
//     per-axis integer coordinates plus a refinement level. Coordinates
//     live on a grid of side RootLen; a cell at level l has side Len(l).
//   - Dim: the geometric dimension (Dim2 or Dim3). All operations that
//     depend on the number of children, faces, edges or corners hang off
//     Dim, so one code path serves quadtrees and octrees.
//   - Morton order: Compare orders quadrants by interleaved coordinate
//     bits without ever materializing the interleaved key; ancestors sort
//     before their descendants.
//   - Range indexing: SplitAtLevel partitions a sorted run of cells that
//     share a level-l ancestor into its 2^D child buckets at level l+1;
//     FindHigherBound locates the last cell of a sorted run that does not
//     exceed a search key.
//   - Geometry tables: the z-order incidence tables relating corners,
//     faces and (in 3D) edges of the unit cell, including the 3D face
//     permutation tables used to glue trees with arbitrary orientation.
//
// Why:
//
//   - The adaptive-mesh traversal keeps many synchronized cursors into
//     Morton-sorted cell sequences; every cursor step reduces to the
//     primitives in this package.
//
// Complexity:
//
//   - Compare, ChildID, validity checks: O(1).
//   - SplitAtLevel: O(2^D · log n) binary searches over the run.
//   - FindHigherBound: O(log n).
//
// All types in this package are plain values; nothing here allocates or
// retains state.
package quad
