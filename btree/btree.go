// Package btree provides an in-memory B-tree index over ordered keys.
package btree

import (
	"cmp"

	"github.com/cockroachdb/errors"
	"github.com/dacapoday/ordtree"
	"github.com/dacapoday/ordtree/internal/freelist"
	"github.com/sirupsen/logrus"
)

var (
	ErrEmptyTree    = ordtree.ErrEmptyTree
	ErrInvalidOrder = ordtree.ErrInvalidOrder
	ErrInvariant    = ordtree.ErrInvariant
)

// recycled bounds how many released nodes of each kind a tree keeps for reuse.
const recycled = 16

// Tree is a B-tree of Knuth order Order(): every node holds at most
// Order()-1 keys and every node but the root at least ceil(Order()/2)-1.
// Keys are unique; there are no values.
//
// Not thread-safe. Concurrent readers are fine, but any mutation must be
// serialized against everything else by the caller.
//
// Example usage:
//
//	tree, _ := btree.New[int](btree.Order(5))
//	tree.Insert(42)
//	tree.Contains(42) // true
//	tree.Remove(42)
type Tree[K cmp.Ordered] struct {
	root     *Node[K]
	order    int
	maxKeys  int
	minKeys  int
	leaves   freelist.Ring[*Node[K]]
	branches freelist.Ring[*Node[K]]
	log      logrus.FieldLogger
}

// New returns an empty tree configured by opt.
// If opt also implements Logger, structural changes are traced at debug level.
func New[K cmp.Ordered](opt Option) (*Tree[K], error) {
	order := opt.Order()
	if order < 3 {
		return nil, errors.Wrapf(ErrInvalidOrder, "order %d < 3", order)
	}

	tree := &Tree[K]{
		order:   order,
		maxKeys: order - 1,
		minKeys: (order+1)/2 - 1,
	}
	if o, ok := opt.(Logger); ok {
		tree.log = o.Logger()
	}
	tree.leaves.Reset(recycled)
	tree.branches.Reset(recycled)
	return tree, nil
}

func (tree *Tree[K]) Order() int   { return tree.order }
func (tree *Tree[K]) MaxKeys() int { return tree.maxKeys }
func (tree *Tree[K]) MinKeys() int { return tree.minKeys }

// Root returns the root node, or nil for an empty tree.
func (tree *Tree[K]) Root() *Node[K] {
	return tree.root
}

// Empty returns true if the tree holds no keys.
func (tree *Tree[K]) Empty() bool {
	return tree.root == nil
}

// Reset drops every node.
func (tree *Tree[K]) Reset() {
	tree.root = nil
	tree.leaves.Reset(recycled)
	tree.branches.Reset(recycled)
}

// Find returns the node that holds key, or the leaf that would hold it
// after an Insert. It fails only with ErrEmptyTree.
func (tree *Tree[K]) Find(key K) (*Node[K], error) {
	node := tree.root
	if node == nil {
		return nil, ErrEmptyTree
	}
	for {
		index, found := node.find(key)
		if found || node.leaf() {
			return node, nil
		}
		node = node.nodes[index]
	}
}

// Contains reports whether key is in the tree.
func (tree *Tree[K]) Contains(key K) bool {
	node, err := tree.Find(key)
	if err != nil {
		return false
	}
	_, found := node.find(key)
	return found
}

// CountNodes returns the number of nodes reachable from the root.
func (tree *Tree[K]) CountNodes() int {
	return countNodes(tree.root)
}

// CountKeys returns the number of keys stored in the tree.
func (tree *Tree[K]) CountKeys() int {
	return countKeys(tree.root)
}

// Height returns the number of levels, 0 for an empty tree.
func (tree *Tree[K]) Height() (height int) {
	for node := tree.root; node != nil; node = node.Child(0) {
		height++
	}
	return
}

func countNodes[K cmp.Ordered](node *Node[K]) int {
	if node == nil {
		return 0
	}
	count := 1
	if !node.leaf() {
		for _, child := range node.nodes[:node.count+1] {
			count += countNodes(child)
		}
	}
	return count
}

func countKeys[K cmp.Ordered](node *Node[K]) int {
	if node == nil {
		return 0
	}
	count := node.count
	if !node.leaf() {
		for _, child := range node.nodes[:node.count+1] {
			count += countKeys(child)
		}
	}
	return count
}

func (tree *Tree[K]) alloc(leaf bool) (node *Node[K]) {
	ring := &tree.branches
	if leaf {
		ring = &tree.leaves
	}
	if reused, ok := ring.Shift(); ok {
		return reused
	}

	node = &Node[K]{keys: make([]K, tree.maxKeys+1)}
	if !leaf {
		node.nodes = make([]*Node[K], tree.order+1)
	}
	return
}

func (tree *Tree[K]) release(node *Node[K]) {
	node.clear()
	if node.leaf() {
		tree.leaves.Push(node)
	} else {
		tree.branches.Push(node)
	}
}

func (tree *Tree[K]) trace(event string, node *Node[K], fields logrus.Fields) {
	if tree.log == nil {
		return
	}
	entry := tree.log.WithField("event", event).WithField("keys", node.Keys())
	if fields != nil {
		entry = entry.WithFields(fields)
	}
	entry.Debug("btree")
}
