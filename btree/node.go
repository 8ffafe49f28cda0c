package btree

import (
	"cmp"
	"slices"
	"sort"
)

// Node is a single B-tree node. Nodes are created and owned by a Tree;
// callers only read them through the accessors below.
//
// A *Node returned by Tree.Find or Tree.Root is valid until the next
// Insert, Remove or Reset on the same tree.
type Node[K cmp.Ordered] struct {
	count int
	keys  []K        // maxKeys+1 slots, the last one only used while splitting
	nodes []*Node[K] // order+1 slots, nil for leaves
}

// Count returns the number of live keys.
func (node *Node[K]) Count() int {
	return node.count
}

// Key returns the i-th live key.
func (node *Node[K]) Key(i int) K {
	return node.keys[i]
}

// Keys returns a copy of the live keys in ascending order.
func (node *Node[K]) Keys() []K {
	return slices.Clone(node.keys[:node.count])
}

// Child returns the i-th child, or nil for leaves and out-of-range indexes.
func (node *Node[K]) Child(i int) *Node[K] {
	if node.leaf() || i < 0 || i > node.count {
		return nil
	}
	return node.nodes[i]
}

// IsLeaf reports whether the node has no children.
func (node *Node[K]) IsLeaf() bool {
	return node.leaf()
}

func (node *Node[K]) leaf() bool {
	return node.nodes == nil
}

// find returns the index of key if present, otherwise the index of the
// first key greater than it, which is also the child to descend into.
func (node *Node[K]) find(key K) (int, bool) {
	return sort.Find(node.count, func(i int) int {
		return cmp.Compare(key, node.keys[i])
	})
}

func (node *Node[K]) first() K {
	return node.keys[0]
}

func (node *Node[K]) last() K {
	return node.keys[node.count-1]
}

// insert places key at i and, for branches, right at child slot i+1.
func (node *Node[K]) insert(i int, key K, right *Node[K]) {
	if i != node.count {
		copy(node.keys[i+1:node.count+1], node.keys[i:node.count])
	}
	node.keys[i] = key
	if !node.leaf() {
		l := i + 1
		copy(node.nodes[l+1:node.count+2], node.nodes[l:node.count+1])
		node.nodes[l] = right
	}
	node.count++
}

// remove drops key i and, for branches, the child right of it.
func (node *Node[K]) remove(i int) (key K, right *Node[K]) {
	var zero K
	key = node.keys[i]
	copy(node.keys[i:], node.keys[i+1:node.count])
	node.keys[node.count-1] = zero
	if !node.leaf() {
		l := i + 1
		right = node.nodes[l]
		copy(node.nodes[l:], node.nodes[l+1:node.count+1])
		node.nodes[node.count] = nil
	}
	node.count--
	return
}

// unshift places key at 0 and, for branches, left at child slot 0.
func (node *Node[K]) unshift(key K, left *Node[K]) {
	copy(node.keys[1:node.count+1], node.keys[:node.count])
	node.keys[0] = key
	if !node.leaf() {
		copy(node.nodes[1:node.count+2], node.nodes[:node.count+1])
		node.nodes[0] = left
	}
	node.count++
}

// shift drops key 0 and, for branches, child 0.
func (node *Node[K]) shift() (key K, left *Node[K]) {
	var zero K
	key = node.keys[0]
	copy(node.keys, node.keys[1:node.count])
	node.keys[node.count-1] = zero
	if !node.leaf() {
		left = node.nodes[0]
		copy(node.nodes, node.nodes[1:node.count+1])
		node.nodes[node.count] = nil
	}
	node.count--
	return
}

// clear zeroes every slot so a released node keeps nothing alive.
func (node *Node[K]) clear() {
	clear(node.keys)
	clear(node.nodes)
	node.count = 0
}
