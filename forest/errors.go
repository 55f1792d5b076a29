package forest

import "errors"

var (
	// ErrTreeUnsorted indicates a tree whose quadrants are not in Morton order.
	ErrTreeUnsorted = errors.New("forest: tree quadrants must be sorted in Morton order")
	// ErrQuadOutsideRoot indicates a local or ghost quadrant outside its root cube.
	ErrQuadOutsideRoot = errors.New("forest: tree quadrant outside the root cube")
	// ErrGhostShape indicates ghost quadrant and tree-id slices of differing length.
	ErrGhostShape = errors.New("forest: ghost quadrants and tree ids must have equal length")
	// ErrGhostUnsorted indicates a ghost layer not sorted by (tree, Morton).
	ErrGhostUnsorted = errors.New("forest: ghost layer must be sorted by (tree, Morton)")
	// ErrGhostTreeRange indicates a ghost owning-tree id outside the connectivity.
	ErrGhostTreeRange = errors.New("forest: ghost owning tree id out of range")
	// ErrBadConnectivity indicates missing or inconsistently sized gluing tables.
	ErrBadConnectivity = errors.New("forest: connectivity tables missing or inconsistent")
)
