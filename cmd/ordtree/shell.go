package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dacapoday/ordtree/btree"
	"github.com/dacapoday/ordtree/dot"
	"github.com/fatih/color"
)

var (
	okColor   = color.New(color.FgGreen)
	missColor = color.New(color.FgYellow)
	errColor  = color.New(color.FgRed)
	keyColor  = color.New(color.FgCyan, color.Bold)
)

type shell struct {
	tree    *btree.Tree[int]
	scanner *bufio.Scanner
	out     io.Writer
	prompt  bool
}

func newShell(tree *btree.Tree[int], in io.Reader, out io.Writer) *shell {
	return &shell{
		tree:    tree,
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// run processes commands until exit or end of input.
func (sh *shell) run() {
	sh.printPrompt()
	for sh.scanner.Scan() {
		if !sh.exec(sh.scanner.Text()) {
			return
		}
		sh.printPrompt()
	}
}

func (sh *shell) printPrompt() {
	if sh.prompt {
		fmt.Fprint(sh.out, "> ")
	}
}

// exec runs one command line and reports whether to keep going.
func (sh *shell) exec(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}

	command, args := strings.ToLower(fields[0]), fields[1:]
	switch command {
	case "insert", "ins", "i":
		sh.insert(args)
	case "remove", "rm", "del":
		sh.remove(args)
	case "find", "get":
		sh.find(args)
	case "count":
		sh.count()
	case "check":
		sh.check()
	case "dot":
		if err := dot.Write(sh.out, sh.tree); err != nil {
			errColor.Fprintf(sh.out, "dot: %v\n", err)
		}
	case "reset":
		sh.tree.Reset()
		okColor.Fprintln(sh.out, "ok")
	case "help", "?":
		sh.help()
	case "exit", "quit", "q":
		return false
	default:
		errColor.Fprintf(sh.out, "unknown command %q\n", command)
	}
	return true
}

func (sh *shell) help() {
	fmt.Fprint(sh.out, `commands:
  insert <key>...   add keys
  remove <key>...   delete keys
  find <key>        show the node holding (or that would hold) key
  count             node count, key count and height
  check             validate the tree invariants
  dot               print the tree as a Graphviz graph
  reset             drop every key
  exit              quit
`)
}

func (sh *shell) keys(command string, args []string) ([]int, bool) {
	if len(args) == 0 {
		errColor.Fprintf(sh.out, "usage: %s <key>...\n", command)
		return nil, false
	}
	keys := make([]int, len(args))
	for i, arg := range args {
		key, err := strconv.Atoi(arg)
		if err != nil {
			errColor.Fprintf(sh.out, "bad key %q\n", arg)
			return nil, false
		}
		keys[i] = key
	}
	return keys, true
}

func (sh *shell) insert(args []string) {
	keys, ok := sh.keys("insert", args)
	if !ok {
		return
	}
	for _, key := range keys {
		sh.tree.Insert(key)
	}
	okColor.Fprintf(sh.out, "ok, %d keys\n", sh.tree.CountKeys())
}

func (sh *shell) remove(args []string) {
	keys, ok := sh.keys("remove", args)
	if !ok {
		return
	}
	for _, key := range keys {
		sh.tree.Remove(key)
	}
	okColor.Fprintf(sh.out, "ok, %d keys\n", sh.tree.CountKeys())
}

func (sh *shell) find(args []string) {
	if len(args) != 1 {
		errColor.Fprintln(sh.out, "usage: find <key>")
		return
	}
	keys, ok := sh.keys("find", args)
	if !ok {
		return
	}
	key := keys[0]

	node, err := sh.tree.Find(key)
	if errors.Is(err, btree.ErrEmptyTree) {
		missColor.Fprintln(sh.out, "tree is empty")
		return
	}
	if sh.tree.Contains(key) {
		fmt.Fprintf(sh.out, "%s in %v\n", keyColor.Sprint(key), node.Keys())
	} else {
		missColor.Fprintf(sh.out, "%d absent, would go in %v\n", key, node.Keys())
	}
}

func (sh *shell) count() {
	fmt.Fprintf(sh.out, "nodes: %d, keys: %d, height: %d\n",
		sh.tree.CountNodes(), sh.tree.CountKeys(), sh.tree.Height())
}

func (sh *shell) check() {
	if err := sh.tree.Check(); err != nil {
		errColor.Fprintf(sh.out, "invalid: %v\n", err)
		return
	}
	okColor.Fprintln(sh.out, "valid")
}
