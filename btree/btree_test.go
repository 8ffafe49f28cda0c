package btree

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsSmallOrder(t *testing.T) {
	for _, order := range []int{-1, 0, 1, 2} {
		tree, err := New[int](Order(order))
		require.ErrorIs(t, err, ErrInvalidOrder)
		require.Nil(t, tree)
	}
}

func TestNewBounds(t *testing.T) {
	for order, want := range map[int][2]int{
		3:  {2, 1},
		4:  {3, 1},
		5:  {4, 2},
		6:  {5, 2},
		7:  {6, 3},
		32: {31, 15},
	} {
		tree := newTree(t, order)
		require.Equal(t, order, tree.Order())
		require.Equal(t, want[0], tree.MaxKeys(), "order %d", order)
		require.Equal(t, want[1], tree.MinKeys(), "order %d", order)
	}
}

func TestEmptyTree(t *testing.T) {
	tree := newTree(t, 5)

	require.True(t, tree.Empty())
	require.Nil(t, tree.Root())
	require.Equal(t, 0, tree.CountNodes())
	require.Equal(t, 0, tree.CountKeys())
	require.Equal(t, 0, tree.Height())
	require.NoError(t, tree.Check())
	require.False(t, tree.Contains(1))

	node, err := tree.Find(1)
	require.ErrorIs(t, err, ErrEmptyTree)
	require.Nil(t, node)
}

func TestReset(t *testing.T) {
	tree := newTree(t, 4)
	for key := range 50 {
		tree.Insert(key)
	}
	require.False(t, tree.Empty())

	tree.Reset()
	require.True(t, tree.Empty())
	require.Equal(t, 0, tree.CountNodes())

	tree.Insert(7)
	require.Equal(t, 1, tree.CountNodes())
	require.True(t, tree.Contains(7))
}

func TestStringKeys(t *testing.T) {
	tree, err := New[string](Order(4))
	require.NoError(t, err)

	words := []string{"pear", "apple", "fig", "kiwi", "banana", "cherry", "date", "grape", "lemon"}
	for _, word := range words {
		tree.Insert(word)
	}
	require.NoError(t, tree.Check())
	require.Equal(t, len(words), tree.CountKeys())

	tree.Remove("fig")
	tree.Remove("melon")
	require.NoError(t, tree.Check())
	require.False(t, tree.Contains("fig"))
	require.True(t, tree.Contains("kiwi"))
}

func TestTracesStructuralChanges(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	tree, err := New[int](Traced{Fanout: 3, Log: logger})
	require.NoError(t, err)

	for key := range 10 {
		tree.Insert(key)
	}
	for key := range 10 {
		tree.Remove(key)
	}
	require.True(t, tree.Empty())

	events := map[string]bool{}
	for _, entry := range hook.AllEntries() {
		require.Equal(t, logrus.DebugLevel, entry.Level)
		events[entry.Data["event"].(string)] = true
	}
	for _, event := range []string{"split", "grow", "merge", "shrink"} {
		require.True(t, events[event], "missing %q", event)
	}
}

func TestRandomizedAgainstModel(t *testing.T) {
	for _, order := range []int{3, 4, 5, 6, 9, 16} {
		tree := newTree(t, order)
		model := map[int]bool{}

		keys, err := faker.RandomInt(0, 499)
		require.NoError(t, err)
		for _, key := range keys {
			tree.Insert(key)
			model[key] = true
			require.NoError(t, tree.Check(), "order %d insert %d", order, key)
			require.True(t, tree.Contains(key))
		}
		require.Equal(t, len(model), tree.CountKeys())

		for range 2000 {
			key := rand.IntN(600)
			if rand.IntN(2) == 0 {
				tree.Remove(key)
				delete(model, key)
				require.False(t, tree.Contains(key))
			} else {
				tree.Insert(key)
				model[key] = true
				require.True(t, tree.Contains(key))
			}
			require.NoError(t, tree.Check(), "order %d key %d", order, key)
			require.Equal(t, len(model), tree.CountKeys())
		}

		remaining := make([]int, 0, len(model))
		for key := range model {
			remaining = append(remaining, key)
		}
		slices.Sort(remaining)
		require.Equal(t, remaining, inorder(tree.Root()))

		rand.Shuffle(len(remaining), func(i, j int) {
			remaining[i], remaining[j] = remaining[j], remaining[i]
		})
		for _, key := range remaining {
			tree.Remove(key)
			require.NoError(t, tree.Check())
		}
		require.True(t, tree.Empty())
		require.Equal(t, 0, tree.CountNodes())
	}
}

func inorder(node *Node[int]) (keys []int) {
	if node == nil {
		return nil
	}
	for i := range node.Count() {
		keys = append(keys, inorder(node.Child(i))...)
		keys = append(keys, node.Key(i))
	}
	return append(keys, inorder(node.Child(node.Count()))...)
}
