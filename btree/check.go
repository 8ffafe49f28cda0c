package btree

import (
	"cmp"
	"fmt"

	"github.com/cockroachdb/errors"
)

// Check validates the whole tree and returns an error wrapping
// ErrInvariant that names the first offending node. A node is named by its
// path of child indexes from the root, e.g. "root/2/0".
//
// A valid tree has strictly increasing keys in every node, at most
// MaxKeys() keys per node, at least MinKeys() keys per non-root node,
// count+1 children per branch with every child's keys between the adjacent
// separators, and all leaves at the same depth.
func (tree *Tree[K]) Check() error {
	if tree.root == nil {
		return nil
	}
	c := checker[K]{tree: tree, depth: -1}
	return c.check(tree.root, "root", 0, nil, nil)
}

type checker[K cmp.Ordered] struct {
	tree  *Tree[K]
	depth int // leaf depth seen first, -1 until then
}

func (c *checker[K]) check(node *Node[K], path string, depth int, lo, hi *K) error {
	if node.count > c.tree.maxKeys {
		return errors.Wrapf(ErrInvariant, "%s: %d keys > max %d", path, node.count, c.tree.maxKeys)
	}
	if depth > 0 && node.count < c.tree.minKeys {
		return errors.Wrapf(ErrInvariant, "%s: %d keys < min %d", path, node.count, c.tree.minKeys)
	}
	for i := range node.count {
		key := node.keys[i]
		if i > 0 && cmp.Compare(node.keys[i-1], key) >= 0 {
			return errors.Wrapf(ErrInvariant, "%s: keys not increasing at %d (%v >= %v)", path, i, node.keys[i-1], key)
		}
		if lo != nil && cmp.Compare(key, *lo) <= 0 {
			return errors.Wrapf(ErrInvariant, "%s: key %v not above separator %v", path, key, *lo)
		}
		if hi != nil && cmp.Compare(key, *hi) >= 0 {
			return errors.Wrapf(ErrInvariant, "%s: key %v not below separator %v", path, key, *hi)
		}
	}

	if node.leaf() {
		if c.depth < 0 {
			c.depth = depth
		} else if depth != c.depth {
			return errors.Wrapf(ErrInvariant, "%s: leaf at depth %d, want %d", path, depth, c.depth)
		}
		return nil
	}

	if node.count == 0 {
		return errors.Wrapf(ErrInvariant, "%s: branch without keys", path)
	}
	if len(node.nodes) <= node.count {
		return errors.Wrapf(ErrInvariant, "%s: room for %d children, need %d", path, len(node.nodes), node.count+1)
	}
	for i, child := range node.nodes[:node.count+1] {
		if child == nil {
			return errors.Wrapf(ErrInvariant, "%s: child %d missing of %d", path, i, node.count+1)
		}
	}
	for i, child := range node.nodes[node.count+1:] {
		if child != nil {
			return errors.Wrapf(ErrInvariant, "%s: stray child at %d beyond %d live", path, node.count+1+i, node.count+1)
		}
	}

	for i, child := range node.nodes[:node.count+1] {
		clo, chi := lo, hi
		if i > 0 {
			clo = &node.keys[i-1]
		}
		if i < node.count {
			chi = &node.keys[i]
		}
		if err := c.check(child, fmt.Sprintf("%s/%d", path, i), depth+1, clo, chi); err != nil {
			return err
		}
	}
	return nil
}
