//go:build debug

package btree

import (
	"cmp"

	"github.com/cockroachdb/errors"
)

// assertTree panics if tree fails Check.
// Only enabled with -tags debug.
func assertTree[K cmp.Ordered](tree *Tree[K]) {
	if err := tree.Check(); err != nil {
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "btree corrupted"))
	}
}

// assertMerge panics unless left < sep < right.
// Only enabled with -tags debug.
func assertMerge[K cmp.Ordered](left *Node[K], sep K, right *Node[K]) {
	if left.count > 0 && cmp.Compare(left.last(), sep) >= 0 {
		panic(errors.AssertionFailedf("merge: left max %v >= separator %v", left.last(), sep))
	}
	if right.count > 0 && cmp.Compare(sep, right.first()) >= 0 {
		panic(errors.AssertionFailedf("merge: separator %v >= right min %v", sep, right.first()))
	}
}
