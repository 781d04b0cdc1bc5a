package renderable

import (
	"github.com/charmbracelet/lipgloss/tree"
)

// TreeNode is one labeled node of a tree. Labels arrive already styled.
type TreeNode struct {
	Label    string
	Children []TreeNode
}

// Tree is a branch-drawn hierarchy of labels.
type Tree struct{ block }

// NewTree renders root with its children using rounded branch glyphs.
func NewTree(theme Theme, root string, children []TreeNode) Tree {
	t := tree.Root(theme.Title.Render(root)).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(theme.Border)
	for _, c := range children {
		t.Child(buildTree(theme, c))
	}
	return Tree{block{t.String()}}
}

func buildTree(theme Theme, n TreeNode) any {
	if len(n.Children) == 0 {
		return n.Label
	}
	t := tree.Root(n.Label).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(theme.Border)
	for _, c := range n.Children {
		t.Child(buildTree(theme, c))
	}
	return t
}
