package taxonomy

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/feederwatch/dashboard/internal/errors"
)

// StatusFilter selects which nodes the directory shows.
type StatusFilter string

const (
	// StatusAll keeps every node.
	StatusAll StatusFilter = "all"
	// StatusRegional keeps nodes that are active or sit under an active ancestor.
	StatusRegional StatusFilter = "regional"
	// StatusObserved keeps nodes with at least one observation in their subtree.
	StatusObserved StatusFilter = "observed"
)

// ParseStatusFilter validates a filter name from configuration or the command line.
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch f := StatusFilter(strings.ToLower(strings.TrimSpace(s))); f {
	case StatusAll, StatusRegional, StatusObserved:
		return f, nil
	case "":
		return StatusAll, nil
	default:
		return "", errors.New(fmt.Errorf("invalid status filter %q", s)).
			Component("taxonomy").
			Category(errors.CategoryValidation).
			Build()
	}
}

// FilterByStatus prunes the tree by mode. Children are filtered before their
// parent, and a parent with surviving children always survives, so pruning
// never re-parents a node. StatusObserved relies on CumulativeCount, so run
// ComputeCumulativeCounts first.
func FilterByStatus(roots []*Node, mode StatusFilter) []*Node {
	return filterByStatus(roots, mode, false)
}

func filterByStatus(nodes []*Node, mode StatusFilter, ancestorActive bool) []*Node {
	out := make([]*Node, 0, len(nodes))
	for _, n := range nodes {
		active := ancestorActive || n.Active
		children := filterByStatus(n.Children, mode, active)

		var keep bool
		switch mode {
		case StatusRegional:
			keep = active || len(children) > 0
		case StatusObserved:
			keep = n.CumulativeCount > 0 || len(children) > 0
		default:
			keep = true
		}
		if !keep {
			continue
		}

		c := n.shallowCopy()
		c.Children = children
		out = append(out, c)
	}
	return out
}

// matcher does case-insensitive substring matching using Unicode case folding.
// A cases.Caser is stateful, so each matcher owns one.
type matcher struct {
	folder cases.Caser
	needle string
}

func newMatcher(query string) (*matcher, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, false
	}
	m := &matcher{folder: cases.Fold()}
	m.needle = m.folder.String(query)
	return m, true
}

func (m *matcher) match(name string) bool {
	return strings.Contains(m.folder.String(name), m.needle)
}

// FilterBySearch keeps nodes whose name contains query, ignoring case, along
// with every ancestor of such a node. An empty query returns roots unchanged.
func FilterBySearch(roots []*Node, query string) []*Node {
	m, ok := newMatcher(query)
	if !ok {
		return roots
	}
	return filterBySearch(roots, m)
}

func filterBySearch(nodes []*Node, m *matcher) []*Node {
	out := make([]*Node, 0, len(nodes))
	for _, n := range nodes {
		children := filterBySearch(n.Children, m)
		if !m.match(n.Name) && len(children) == 0 {
			continue
		}
		c := n.shallowCopy()
		c.Children = children
		out = append(out, c)
	}
	return out
}
