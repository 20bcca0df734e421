package ls

import (
	"os"
	"strings"
)

// render produces the indented text form of the forest. The first line is the
// absolute root path normalized to a single trailing separator; every node
// below it is indented two spaces per level with a "- " marker, directories
// suffixed with '/'.
func render(forest []*Node, rootPath string) string {
	var b strings.Builder
	b.WriteString("- ")
	b.WriteString(strings.TrimRight(rootPath, string(os.PathSeparator)))
	b.WriteString("/\n")
	renderNodes(&b, forest, "  ")
	return b.String()
}

func renderNodes(b *strings.Builder, nodes []*Node, indent string) {
	for _, node := range nodes {
		b.WriteString(indent)
		b.WriteString("- ")
		b.WriteString(node.Name)
		if node.Kind == KindDirectory {
			b.WriteString("/")
		}
		b.WriteString("\n")
		if len(node.Children) > 0 {
			renderNodes(b, node.Children, indent+"  ")
		}
	}
}
