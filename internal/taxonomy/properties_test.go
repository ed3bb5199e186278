package taxonomy

import (
	"fmt"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

var speciesNames = []string{
	"Northern Cardinal", "Blue Jay", "Carolina Wren", "House Finch",
	"Tufted Titmouse", "Downy Woodpecker", "Black-capped Chickadee",
}

// genDirectory draws an acyclic species list with unique IDs. Each record's
// parent is either nil or a record drawn earlier; the list is then shuffled so
// children may precede parents.
func genDirectory(t *rapid.T) []Species {
	n := rapid.IntRange(0, 40).Draw(t, "n")
	species := make([]Species, n)
	for i := range n {
		s := Species{
			ID:               int64(i + 1),
			Name:             fmt.Sprintf("%s %d", rapid.SampledFrom(speciesNames).Draw(t, "name"), i),
			Active:           rapid.Bool().Draw(t, "active"),
			ObservationCount: rapid.IntRange(0, 5).Draw(t, "count"),
		}
		if i > 0 && rapid.Bool().Draw(t, "hasParent") {
			s.ParentID = ParentOf(int64(rapid.IntRange(1, i).Draw(t, "parent")))
		}
		species[i] = s
	}
	return rapid.Permutation(species).Draw(t, "order")
}

func edgeKey(id int64, parent *int64) string {
	if parent == nil {
		return fmt.Sprintf("%d<-root", id)
	}
	return fmt.Sprintf("%d<-%d", id, *parent)
}

func TestProperty_TreeRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		species := genDirectory(t)

		roots, err := BuildTree(species)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := make(map[string]bool, len(species))
		for _, s := range species {
			want[edgeKey(s.ID, s.ParentID)] = true
		}
		edges := Flatten(roots)
		if len(edges) != len(species) {
			t.Fatalf("got %d edges, want %d", len(edges), len(species))
		}
		for _, e := range edges {
			if !want[edgeKey(e.ID, e.ParentID)] {
				t.Fatalf("unexpected edge %s", edgeKey(e.ID, e.ParentID))
			}
		}
	})
}

func checkCumulative(t *rapid.T, nodes []*Node) {
	for _, n := range nodes {
		sum := n.ObservationCount
		for _, c := range n.Children {
			sum += c.CumulativeCount
		}
		if n.CumulativeCount != sum {
			t.Fatalf("node %d: cumulative %d, want %d", n.ID, n.CumulativeCount, sum)
		}
		if n.CumulativeCount < n.ObservationCount {
			t.Fatalf("node %d: cumulative below own count", n.ID)
		}
		checkCumulative(t, n.Children)
	}
}

func TestProperty_CumulativeCountInvariant(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		roots, err := BuildTree(genDirectory(t))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		checkCumulative(t, ComputeCumulativeCounts(roots))
	})
}

func TestProperty_StatusFilterMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		roots, err := BuildTree(genDirectory(t))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		roots = ComputeCumulativeCounts(roots)

		all := CountNodes(FilterByStatus(roots, StatusAll))
		if all != CountNodes(roots) {
			t.Fatalf("all filter dropped nodes: %d of %d", all, CountNodes(roots))
		}
		if observed := CountNodes(FilterByStatus(roots, StatusObserved)); observed > all {
			t.Fatalf("observed %d > all %d", observed, all)
		}
		if regional := CountNodes(FilterByStatus(roots, StatusRegional)); regional > all {
			t.Fatalf("regional %d > all %d", regional, all)
		}
	})
}

func TestProperty_SearchKeepsAncestors(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		roots, err := BuildTree(genDirectory(t))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		query := rapid.SampledFrom([]string{"cardinal", "JAY", "wren", "o", "1"}).Draw(t, "query")
		filtered := FilterBySearch(roots, query)

		var check func(nodes []*Node)
		check = func(nodes []*Node) {
			for _, n := range nodes {
				if strings.Contains(strings.ToLower(n.Name), strings.ToLower(query)) {
					full := FindPath(roots, n.ID)
					kept := FindPath(filtered, n.ID)
					if len(kept) != len(full) {
						t.Fatalf("match %d lost ancestors: %v vs %v", n.ID, ids(kept), ids(full))
					}
				}
				check(n.Children)
			}
		}
		check(roots)
	})
}

func TestProperty_ExpandAllMatchesExpandable(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		roots, err := BuildTree(genDirectory(t))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		info := CollectTreeInfo(roots, "")

		expanded := NewExpansion(99999).ExpandAll(info)
		if expanded.Len() != len(info.ExpandableIDs) {
			t.Fatalf("expand all: %d ids, want %d", expanded.Len(), len(info.ExpandableIDs))
		}
		if rows := VisibleRows(roots, expanded); len(rows) != CountNodes(roots) {
			t.Fatalf("fully expanded view shows %d rows, want %d", len(rows), CountNodes(roots))
		}
		if rows := VisibleRows(roots, expanded.CollapseAll()); len(rows) != len(roots) {
			t.Fatalf("collapsed view shows %d rows, want %d", len(rows), len(roots))
		}
	})
}
