package taxonomy

// TreeInfo holds the node IDs a tree view needs for its expand controls.
type TreeInfo struct {
	// ExpandableIDs lists every node with at least one child, in pre-order.
	ExpandableIDs []int64 `json:"expandableIds"`
	// AutoExpandIDs lists nodes with children that match the search query or
	// have a matching descendant. Empty when there is no query.
	AutoExpandIDs []int64 `json:"autoExpandIds"`
}

// CollectTreeInfo gathers expandable and search auto-expand IDs in a single
// depth-first pass.
func CollectTreeInfo(roots []*Node, query string) TreeInfo {
	info := TreeInfo{
		ExpandableIDs: []int64{},
		AutoExpandIDs: []int64{},
	}
	m, searching := newMatcher(query)
	for _, root := range roots {
		collectTreeInfo(root, m, searching, &info)
	}
	return info
}

// collectTreeInfo reports whether n or any descendant matches the query.
func collectTreeInfo(n *Node, m *matcher, searching bool, info *TreeInfo) bool {
	selfMatch := searching && m.match(n.Name)
	if !n.HasChildren() {
		return selfMatch
	}

	info.ExpandableIDs = append(info.ExpandableIDs, n.ID)
	// Reserve this node's slot so auto-expand IDs come out in pre-order too
	slot := len(info.AutoExpandIDs)
	info.AutoExpandIDs = append(info.AutoExpandIDs, n.ID)

	childMatch := false
	for _, child := range n.Children {
		if collectTreeInfo(child, m, searching, info) {
			childMatch = true
		}
	}

	if !selfMatch && !childMatch {
		info.AutoExpandIDs = append(info.AutoExpandIDs[:slot], info.AutoExpandIDs[slot+1:]...)
	}
	return selfMatch || childMatch
}
