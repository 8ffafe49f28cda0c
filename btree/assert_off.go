//go:build !debug

package btree

import "cmp"

// assertTree is a no-op in production.
// Enable with -tags debug for runtime checks.
func assertTree[K cmp.Ordered](*Tree[K]) {}

// assertMerge is a no-op in production.
// Enable with -tags debug for runtime checks.
func assertMerge[K cmp.Ordered](*Node[K], K, *Node[K]) {}
