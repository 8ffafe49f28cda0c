// Package ordtree is an in-memory ordered-key index built on a fixed-order B-tree.
//
// The engine lives in the btree package. The dot package renders a tree as
// Graphviz text and cmd/ordtree is a small shell for poking at one.
package ordtree
