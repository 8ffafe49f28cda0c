package btree

import (
	"cmp"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
)

// cursor records one step of a descent: node and the child index taken.
type cursor[K cmp.Ordered] struct {
	node  *Node[K]
	index int
}

// Insert adds key to the tree. Inserting a key that is already present
// does nothing.
func (tree *Tree[K]) Insert(key K) {
	if tree.root == nil {
		tree.root = tree.alloc(true)
	}

	var cursors []cursor[K]
	node := tree.root
	for {
		index, found := node.find(key)
		if found {
			return
		}
		if node.leaf() {
			node.insert(index, key, nil)
			break
		}
		cursors = append(cursors, cursor[K]{node, index})
		node = node.nodes[index]
	}

	for node.count > tree.maxKeys {
		sep, right := tree.split(node)

		l := len(cursors) - 1
		if l < 0 {
			tree.grow(sep, right)
			break
		}
		parent := cursors[l]
		cursors = cursors[:l]
		parent.node.insert(parent.index, sep, right)
		node = parent.node
	}
	assertTree(tree)
}

// split moves the upper half of an overflowing node into a new right
// sibling and returns the separator to promote along with it.
func (tree *Tree[K]) split(node *Node[K]) (sep K, right *Node[K]) {
	if node.count != tree.maxKeys+1 {
		panic(errors.AssertionFailedf("split: node holds %d keys, want %d", node.count, tree.maxKeys+1))
	}

	count := node.count
	mid := count / 2
	sep = node.keys[mid]

	right = tree.alloc(node.leaf())
	r := mid + 1
	copy(right.keys, node.keys[r:count])
	right.count = count - r
	if !node.leaf() {
		copy(right.nodes, node.nodes[r:count+1])
		clear(node.nodes[r : count+1])
	}

	clear(node.keys[mid:count])
	node.count = mid

	tree.trace("split", node, logrus.Fields{"sep": sep, "right": right.Keys()})
	return
}

// grow puts a new root above the old one after it split.
func (tree *Tree[K]) grow(sep K, right *Node[K]) {
	root := tree.alloc(false)
	root.keys[0] = sep
	root.nodes[0] = tree.root
	root.nodes[1] = right
	root.count = 1
	tree.root = root

	tree.trace("grow", root, nil)
}
