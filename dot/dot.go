// Package dot renders a btree.Tree as a Graphviz graph description.
//
// The output is meant for `dot -Tpng` or any online Graphviz viewer:
//
//	graph btree {
//		node [shape=record];
//		n0 [label="10|20"];
//		n1 [label="1|2"];
//		n0 -- n1;
//		...
//	}
package dot

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"strings"

	"github.com/dacapoday/ordtree/btree"
)

// Write emits the graph for tree. Nodes are numbered in pre-order, so the
// root is always n0. An empty tree yields an empty graph.
func Write[K cmp.Ordered](w io.Writer, tree *btree.Tree[K]) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "graph btree {")
	if root := tree.Root(); root != nil {
		fmt.Fprintln(bw, "\tnode [shape=record];")
		var id int
		walk(bw, root, &id)
	}
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

func walk[K cmp.Ordered](w io.Writer, node *btree.Node[K], id *int) int {
	self := *id
	*id++

	labels := make([]string, node.Count())
	for i := range labels {
		labels[i] = escape(fmt.Sprint(node.Key(i)))
	}
	fmt.Fprintf(w, "\tn%d [label=\"%s\"];\n", self, strings.Join(labels, "|"))

	if node.IsLeaf() {
		return self
	}
	for i := 0; i <= node.Count(); i++ {
		child := walk(w, node.Child(i), id)
		fmt.Fprintf(w, "\tn%d -- n%d;\n", self, child)
	}
	return self
}

var replacer = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	`|`, `\|`,
	`{`, `\{`,
	`}`, `\}`,
	`<`, `\<`,
	`>`, `\>`,
)

// escape quotes characters that are special inside a record label.
func escape(s string) string {
	return replacer.Replace(s)
}
