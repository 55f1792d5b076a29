// Package forest holds the read-only data model consumed by the
// traversal in package iterate: the distributed forest of quadtrees or
// octrees, its ghost layer, and the connectivity tables that glue tree
// root cubes together.
//
// What:
//
//   - Tree: one root cube's local leaves, Morton-sorted.
//   - Forest: the local trees plus their Connectivity.
//   - GhostLayer: leaves owned by other processes that border the local
//     ones, globally sorted by (owning tree, Morton); FirstByTree derives
//     the per-tree index ranges in one guided-bisection pass.
//   - Connectivity: face gluing with packed orientation, plus the
//     optional non-conforming edge (3D) and corner neighborhood tables.
//   - Validate: the structural contracts the traversal relies on,
//     checked up front and reported as sentinel errors.
//   - Sample constructors (UnitSquare, UnitCube, TwoTrees, EdgeRing,
//     NewUniform) for tests, benchmarks and the demo CLI.
//
// The package never mutates anything after construction: a Forest and
// its GhostLayer are borrowed read-only for the duration of a
// traversal. Building, refining, partitioning and ghost exchange are
// the responsibility of external collaborators.
//
// Errors:
//
//   - ErrTreeUnsorted                       broken tree ordering
//   - ErrQuadOutsideRoot                    a tree or ghost cell outside its root cube
//   - ErrGhostShape, ErrGhostUnsorted,
//     ErrGhostTreeRange                     broken ghost layer
//   - ErrBadConnectivity                    inconsistent gluing tables
package forest
