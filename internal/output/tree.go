package output

import (
	"strings"
)

// TreeNode represents a node in a tree structure for rendering
type TreeNode struct {
	Label    string
	Detail   string
	Mark     Mark
	Children []TreeNode
}

// Mark flags a node with a status symbol.
type Mark int

const (
	MarkNone Mark = iota
	MarkVisible
	MarkHidden
	MarkPinned
)

// TreeRenderOptions configures tree rendering behavior
type TreeRenderOptions struct {
	MaxDepth   int  // 0 = unlimited
	ShowDetail bool // Whether to show node detail
	ShowMarks  bool // Whether to show the mark symbol
}

// symbol returns a mark indicator
func (m Mark) symbol() string {
	switch m {
	case MarkVisible:
		return " ●" // ●
	case MarkHidden:
		return " ○" // ○
	case MarkPinned:
		return " ⚓" // ⚓
	default:
		return ""
	}
}

// RenderTree renders a tree starting from a single root node
// Returns the complete tree as a string, root line first
func RenderTree(root TreeNode, opts TreeRenderOptions) string {
	lines := []string{nodeLine(root, opts)}
	lines = append(lines, renderTreeNodes(root.Children, opts, 0, "")...)
	return strings.Join(lines, "\n")
}

// RenderTreeLines renders multiple root nodes and returns individual lines
func RenderTreeLines(roots []TreeNode, opts TreeRenderOptions) []string {
	return renderTreeNodes(roots, opts, 0, "")
}

func nodeLine(node TreeNode, opts TreeRenderOptions) string {
	parts := []string{node.Label}
	if opts.ShowDetail && node.Detail != "" {
		parts = append(parts, node.Detail)
	}
	line := strings.Join(parts, " ")
	if opts.ShowMarks {
		line += node.Mark.symbol()
	}
	return line
}

// renderTreeNodes recursively renders tree nodes
func renderTreeNodes(nodes []TreeNode, opts TreeRenderOptions, depth int, prefix string) []string {
	if opts.MaxDepth > 0 && depth >= opts.MaxDepth {
		return nil
	}

	var lines []string

	for i, node := range nodes {
		isLast := i == len(nodes)-1

		connector := "├── " // ├──
		if isLast {
			connector = "└── " // └──
		}

		lines = append(lines, prefix+connector+nodeLine(node, opts))

		childPrefix := prefix
		if isLast {
			childPrefix += "    "
		} else {
			childPrefix += "│   " // │
		}

		lines = append(lines, renderTreeNodes(node.Children, opts, depth+1, childPrefix)...)
	}

	return lines
}
