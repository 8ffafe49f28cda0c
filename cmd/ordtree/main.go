// ordtree is a small shell for building and inspecting a B-tree of ints.
//
// Usage:
//
//	ordtree [-order 5] [-seed n] [-v]
//
// Commands, one per line on stdin:
//
//	insert <key>...   add keys
//	remove <key>...   delete keys
//	find <key>        show the node holding (or that would hold) key
//	count             node count, key count and height
//	check             validate the tree invariants
//	dot               print the tree as a Graphviz graph
//	reset             drop every key
//	help              list commands
//	exit              quit
package main

import (
	"flag"
	"os"

	"github.com/dacapoday/ordtree/btree"
	"github.com/go-faker/faker/v4"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

type config struct {
	order   int
	seed    int
	verbose bool
	log     *logrus.Logger
}

func (c config) Order() int                 { return c.order }
func (c config) Logger() logrus.FieldLogger { return c.log }

func main() {
	var cfg config
	flag.IntVar(&cfg.order, "order", 5, "maximum children per node (>= 3)")
	flag.IntVar(&cfg.seed, "seed", 0, "insert this many random keys before starting")
	flag.BoolVar(&cfg.verbose, "v", false, "log splits, merges and rotations")
	flag.Parse()

	cfg.log = logrus.New()
	cfg.log.SetOutput(os.Stderr)
	if cfg.verbose {
		cfg.log.SetLevel(logrus.DebugLevel)
	}

	tree, err := btree.New[int](cfg)
	if err != nil {
		cfg.log.WithError(err).Fatal("create tree")
	}

	if cfg.seed > 0 {
		if err := seed(tree, cfg.seed); err != nil {
			cfg.log.WithError(err).Fatal("seed tree")
		}
		cfg.log.WithFields(logrus.Fields{
			"keys":  tree.CountKeys(),
			"nodes": tree.CountNodes(),
		}).Info("seeded")
	}

	sh := newShell(tree, os.Stdin, os.Stdout)
	sh.prompt = term.IsTerminal(int(os.Stdin.Fd()))
	sh.run()
}

// seed inserts n distinct random keys drawn from [0, 10n).
func seed(tree *btree.Tree[int], n int) error {
	keys, err := faker.RandomInt(0, 10*n-1)
	if err != nil {
		return err
	}
	for _, key := range keys[:min(n, len(keys))] {
		tree.Insert(key)
	}
	return nil
}
