package directory

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/feederwatch/dashboard/internal/taxonomy"
)

var (
	activeStyle    = lipgloss.NewStyle().Bold(true)
	inactiveStyle  = lipgloss.NewStyle().Faint(true)
	collapsedStyle = lipgloss.NewStyle().Faint(true)
	enumStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginRight(1)
)

// renderTree draws roots as a tree. Children of collapsed nodes are hidden
// and the node is marked with the number of hidden children.
func renderTree(roots []*taxonomy.Node, expanded taxonomy.Expansion) *tree.Tree {
	t := tree.New().
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(enumStyle)
	for _, root := range roots {
		t.Child(renderNode(root, expanded))
	}
	return t
}

func renderNode(n *taxonomy.Node, expanded taxonomy.Expansion) any {
	label := nodeLabel(n)
	if !n.HasChildren() {
		return label
	}
	if !expanded.Contains(n.ID) {
		return label + collapsedStyle.Render(fmt.Sprintf(" [+%d]", len(n.Children)))
	}

	sub := tree.Root(label).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(enumStyle)
	for _, child := range n.Children {
		sub.Child(renderNode(child, expanded))
	}
	return sub
}

func nodeLabel(n *taxonomy.Node) string {
	style := inactiveStyle
	if n.Active {
		style = activeStyle
	}
	return style.Render(fmt.Sprintf("%s (%d)", n.Name, n.CumulativeCount))
}
