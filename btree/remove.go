package btree

import (
	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
)

// Remove deletes key from the tree. Removing an absent key does nothing.
func (tree *Tree[K]) Remove(key K) {
	if tree.root == nil {
		return
	}

	var cursors []cursor[K]
	node := tree.root
	var index int
	var found bool
	for {
		index, found = node.find(key)
		if found {
			break
		}
		if node.leaf() {
			return
		}
		cursors = append(cursors, cursor[K]{node, index})
		node = node.nodes[index]
	}

	if !node.leaf() {
		// Swap in the in-order neighbour from a leaf, then delete it there.
		var leaf *Node[K]
		if node.nodes[index].count <= tree.minKeys && node.nodes[index+1].count > tree.minKeys {
			cursors = append(cursors, cursor[K]{node, index + 1})
			leaf = node.nodes[index+1]
			for !leaf.leaf() {
				cursors = append(cursors, cursor[K]{leaf, 0})
				leaf = leaf.nodes[0]
			}
			node.keys[index] = leaf.first()
			index = 0
		} else {
			cursors = append(cursors, cursor[K]{node, index})
			leaf = node.nodes[index]
			for !leaf.leaf() {
				cursors = append(cursors, cursor[K]{leaf, leaf.count})
				leaf = leaf.nodes[leaf.count]
			}
			node.keys[index] = leaf.last()
			index = leaf.count - 1
		}
		node = leaf
	}
	node.remove(index)

	for node.count < tree.minKeys {
		l := len(cursors) - 1
		if l < 0 {
			break
		}
		parent := cursors[l]
		cursors = cursors[:l]
		tree.rebalance(parent.node, parent.index)
		node = parent.node
	}

	if root := tree.root; root.count == 0 {
		if root.leaf() {
			tree.root = nil
		} else {
			tree.root = root.nodes[0]
			tree.trace("shrink", tree.root, nil)
		}
		tree.release(root)
	}
	assertTree(tree)
}

// rebalance refills the underflowing child i of parent by borrowing from
// a sibling that can spare a key, or else by merging with one.
func (tree *Tree[K]) rebalance(parent *Node[K], i int) {
	switch {
	case i > 0 && parent.nodes[i-1].count > tree.minKeys:
		tree.rotateRight(parent, i-1)
	case i < parent.count && parent.nodes[i+1].count > tree.minKeys:
		tree.rotateLeft(parent, i)
	case i > 0:
		tree.merge(parent, i-1)
	default:
		tree.merge(parent, i)
	}
}

// rotateRight moves the last key of child i up into separator i and the
// old separator down to the front of child i+1.
func (tree *Tree[K]) rotateRight(parent *Node[K], i int) {
	left, right := parent.nodes[i], parent.nodes[i+1]
	if left.count <= tree.minKeys {
		panic(errors.AssertionFailedf("rotate: left sibling holds %d keys", left.count))
	}

	var child *Node[K]
	if !left.leaf() {
		child = left.nodes[left.count]
		left.nodes[left.count] = nil
	}
	key := left.last()
	var zero K
	left.keys[left.count-1] = zero
	left.count--

	right.unshift(parent.keys[i], child)
	parent.keys[i] = key

	tree.trace("rotate", right, logrus.Fields{"from": "left", "sep": key})
}

// rotateLeft moves the first key of child i+1 up into separator i and the
// old separator down to the end of child i.
func (tree *Tree[K]) rotateLeft(parent *Node[K], i int) {
	left, right := parent.nodes[i], parent.nodes[i+1]
	if right.count <= tree.minKeys {
		panic(errors.AssertionFailedf("rotate: right sibling holds %d keys", right.count))
	}

	key, child := right.shift()
	left.insert(left.count, parent.keys[i], child)
	parent.keys[i] = key

	tree.trace("rotate", left, logrus.Fields{"from": "right", "sep": key})
}

// merge folds child i+1 and separator i into child i and releases child i+1.
func (tree *Tree[K]) merge(parent *Node[K], i int) {
	left, right := parent.nodes[i], parent.nodes[i+1]
	total := left.count + 1 + right.count
	if total > tree.maxKeys {
		panic(errors.AssertionFailedf("merge: %d+1+%d keys exceed %d", left.count, right.count, tree.maxKeys))
	}
	assertMerge(left, parent.keys[i], right)

	sep, _ := parent.remove(i)
	left.keys[left.count] = sep
	copy(left.keys[left.count+1:], right.keys[:right.count])
	if !left.leaf() {
		copy(left.nodes[left.count+1:], right.nodes[:right.count+1])
	}
	left.count = total
	tree.release(right)

	tree.trace("merge", left, logrus.Fields{"sep": sep})
}
