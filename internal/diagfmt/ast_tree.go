package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/cooldudemcgeexl/crust/internal/ast"
)

type treeNode struct {
	label    string
	children []*treeNode
}

type treeBlock struct {
	lines []string
	width int
	root  int
}

// FormatASTTree рисует AST «сверху вниз» ASCII-графикой.
func FormatASTTree(w io.Writer, prog *ast.Program) error {
	root := BuildASTOutput(prog)
	if root == nil {
		_, err := fmt.Fprintln(w, "<nil>")
		return err
	}
	block := renderTree(toTreeNode(root))
	for _, line := range block.lines {
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}

func toTreeNode(n *ASTNodeOutput) *treeNode {
	label := n.Type
	if n.Text != "" {
		label += ":" + n.Text
	}
	t := &treeNode{label: label}
	for _, c := range n.Children {
		t.children = append(t.children, toTreeNode(c))
	}
	return t
}

func padRight(s string, width int) string {
	if w := runewidth.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// renderTree lays out node and its descendants as a block of lines.
// root is the column of the node's connector inside the block.
func renderTree(node *treeNode) treeBlock {
	label := node.label
	labelWidth := runewidth.StringWidth(label)

	if len(node.children) == 0 {
		return treeBlock{lines: []string{label}, width: labelWidth, root: labelWidth / 2}
	}

	childBlocks := make([]treeBlock, len(node.children))
	height := 0
	for i, child := range node.children {
		childBlocks[i] = renderTree(child)
		height = max(height, len(childBlocks[i].lines))
	}

	const spacing = 3

	positions := make([]int, len(childBlocks))
	total := 0
	for i, block := range childBlocks {
		positions[i] = total + block.root
		total += block.width
		if i != len(childBlocks)-1 {
			total += spacing
		}
	}

	center := (positions[0] + positions[len(positions)-1]) / 2
	rootPos := labelWidth / 2
	shift := center - rootPos

	prefix := 0
	if shift < 0 {
		// метка шире детей: сдвигаем детей вправо
		prefix = -shift
		for i := range positions {
			positions[i] += prefix
		}
		total += prefix
		shift = 0
	} else {
		rootPos += shift
	}

	width := max(total, shift+labelWidth, rootPos+1)
	rootLine := padRight(strings.Repeat(" ", shift)+label, width)

	connector := []byte(strings.Repeat(" ", width))
	connector[rootPos] = '|'
	for _, pos := range positions {
		switch {
		case pos < rootPos:
			connector[pos] = '/'
		case pos > rootPos:
			connector[pos] = '\\'
		default:
			connector[pos] = '|'
		}
	}

	lines := make([]string, 0, 2+height)
	lines = append(lines, rootLine, string(connector))
	for row := 0; row < height; row++ {
		var sb strings.Builder
		sb.WriteString(strings.Repeat(" ", prefix))
		for i, block := range childBlocks {
			line := ""
			if row < len(block.lines) {
				line = block.lines[row]
			}
			sb.WriteString(padRight(line, block.width))
			if i != len(childBlocks)-1 {
				sb.WriteString(strings.Repeat(" ", spacing))
			}
		}
		lines = append(lines, padRight(sb.String(), width))
	}

	return treeBlock{lines: lines, width: width, root: rootPos}
}
