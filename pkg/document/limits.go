package document

// The engine recurses without bound: depth limiting is the caller's
// responsibility per the concurrency and resource model. WithMaxDepth
// installs a guard for callers that consume documents from untrusted
// sources, where a pathologically deep tree could exhaust the stack.

// RecommendedMaxDepth is a depth limit suitable for documents received
// over a network. It comfortably exceeds any reasonable component
// hierarchy.
const RecommendedMaxDepth = 256

// depthGuard tracks recursion depth during deserialization. A max of zero
// disables the guard.
type depthGuard struct {
	current int
	max     int
}

// enter increments the depth, failing if the limit would be exceeded.
func (g *depthGuard) enter() error {
	if g.max > 0 && g.current >= g.max {
		return ErrMaxDepthExceeded
	}
	g.current++
	return nil
}

// leave decrements the depth.
func (g *depthGuard) leave() {
	g.current--
}
