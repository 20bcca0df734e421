package ls

import "strings"

// Kind distinguishes files from directories in the rendered tree.
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
)

// Node is one filesystem entry in the hierarchical listing. Path is relative
// to the scan root with '/' separators. Children are ordered and only
// directories have them.
type Node struct {
	Name     string
	Path     string
	Kind     Kind
	Children []*Node
}

// buildForest converts a globally sorted flat entry list into a forest of
// nodes. Because the input is sorted, siblings come out alphabetical at every
// level without a post-construction sort. Intermediate segments are always
// directories; the final segment is a directory only when the entry carried a
// trailing '/'.
func buildForest(entries []string) []*Node {
	var roots []*Node

	for _, entry := range entries {
		isDirEntry := strings.HasSuffix(entry, "/")
		parts := strings.Split(strings.TrimSuffix(entry, "/"), "/")

		level := &roots
		joined := ""
		for i, part := range parts {
			if part == "" {
				continue
			}
			if joined == "" {
				joined = part
			} else {
				joined = joined + "/" + part
			}

			var node *Node
			for _, existing := range *level {
				if existing.Name == part {
					node = existing
					break
				}
			}
			if node == nil {
				kind := KindFile
				if i < len(parts)-1 || isDirEntry {
					kind = KindDirectory
				}
				node = &Node{Name: part, Path: joined, Kind: kind}
				*level = append(*level, node)
			}
			level = &node.Children
		}
	}

	return roots
}
