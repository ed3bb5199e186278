package taxonomy

// Row is one visible line of a tree view.
type Row struct {
	Node  *Node
	Depth int
}

// VisibleRows flattens the tree in pre-order, descending only into expanded nodes.
func VisibleRows(roots []*Node, expanded Expansion) []Row {
	var rows []Row
	var walk func(nodes []*Node, depth int)
	walk = func(nodes []*Node, depth int) {
		for _, n := range nodes {
			rows = append(rows, Row{Node: n, Depth: depth})
			if n.HasChildren() && expanded.Contains(n.ID) {
				walk(n.Children, depth+1)
			}
		}
	}
	walk(roots, 0)
	return rows
}

// Edge is an (id, parent) pair of the tree. ParentID is nil for roots.
type Edge struct {
	ID       int64
	ParentID *int64
}

// Flatten lists the tree's edges in pre-order.
func Flatten(roots []*Node) []Edge {
	var edges []Edge
	var walk func(nodes []*Node, parent *int64)
	walk = func(nodes []*Node, parent *int64) {
		for _, n := range nodes {
			edges = append(edges, Edge{ID: n.ID, ParentID: copyID(parent)})
			id := n.ID
			walk(n.Children, &id)
		}
	}
	walk(roots, nil)
	return edges
}

// CountNodes returns the number of nodes in the tree.
func CountNodes(roots []*Node) int {
	total := 0
	for _, n := range roots {
		total += 1 + CountNodes(n.Children)
	}
	return total
}

// FindPath returns the nodes from a root down to id, or nil if id is not in the tree.
func FindPath(roots []*Node, id int64) []*Node {
	for _, n := range roots {
		if n.ID == id {
			return []*Node{n}
		}
		if rest := FindPath(n.Children, id); rest != nil {
			return append([]*Node{n}, rest...)
		}
	}
	return nil
}
