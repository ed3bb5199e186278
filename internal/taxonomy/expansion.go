package taxonomy

import (
	"maps"
	"slices"
)

// Expansion is the set of expanded node IDs in a tree view. It is a value:
// every method returns a new Expansion and leaves the receiver untouched, so
// the caller decides where state lives.
type Expansion struct {
	ids map[int64]struct{}
}

// NewExpansion returns an Expansion containing ids.
func NewExpansion(ids ...int64) Expansion {
	e := Expansion{ids: make(map[int64]struct{}, len(ids))}
	for _, id := range ids {
		e.ids[id] = struct{}{}
	}
	return e
}

// Contains reports whether id is expanded.
func (e Expansion) Contains(id int64) bool {
	_, ok := e.ids[id]
	return ok
}

// Len returns the number of expanded nodes.
func (e Expansion) Len() int {
	return len(e.ids)
}

// IDs returns the expanded IDs in ascending order.
func (e Expansion) IDs() []int64 {
	return slices.Sorted(maps.Keys(e.ids))
}

// Toggle flips membership of id.
func (e Expansion) Toggle(id int64) Expansion {
	next := e.clone()
	if _, ok := next.ids[id]; ok {
		delete(next.ids, id)
	} else {
		next.ids[id] = struct{}{}
	}
	return next
}

// ExpandAll returns exactly the expandable nodes of info.
func (e Expansion) ExpandAll(info TreeInfo) Expansion {
	return NewExpansion(info.ExpandableIDs...)
}

// CollapseAll returns an empty expansion.
func (e Expansion) CollapseAll() Expansion {
	return NewExpansion()
}

// Merge adds ids, typically TreeInfo.AutoExpandIDs after a search.
func (e Expansion) Merge(ids []int64) Expansion {
	next := e.clone()
	for _, id := range ids {
		next.ids[id] = struct{}{}
	}
	return next
}

func (e Expansion) clone() Expansion {
	next := Expansion{ids: make(map[int64]struct{}, len(e.ids)+1)}
	maps.Copy(next.ids, e.ids)
	return next
}
