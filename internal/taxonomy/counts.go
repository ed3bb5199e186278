package taxonomy

// ComputeCumulativeCounts returns a copy of the tree where every node's
// CumulativeCount is its own ObservationCount plus the cumulative counts of
// its children.
func ComputeCumulativeCounts(roots []*Node) []*Node {
	out := make([]*Node, len(roots))
	for i, root := range roots {
		out[i] = withCumulativeCount(root)
	}
	return out
}

func withCumulativeCount(n *Node) *Node {
	c := n.shallowCopy()
	c.Children = make([]*Node, len(n.Children))
	c.CumulativeCount = n.ObservationCount
	for i, child := range n.Children {
		counted := withCumulativeCount(child)
		c.Children[i] = counted
		c.CumulativeCount += counted.CumulativeCount
	}
	return c
}
