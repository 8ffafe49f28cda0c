package btree

import "github.com/sirupsen/logrus"

// Option configures a Tree. Optional capabilities such as Logger are
// detected by type assertion on the same value.
type Option interface {
	// Order is the maximum number of children per node.
	Order() int
}

type Logger interface {
	Logger() logrus.FieldLogger
}

// Order is the plain Option: a tree of that order with no logging.
type Order int

func (o Order) Order() int { return int(o) }

// Traced wraps an order with a logger for structural events.
type Traced struct {
	Fanout int
	Log    logrus.FieldLogger
}

func (o Traced) Order() int                 { return o.Fanout }
func (o Traced) Logger() logrus.FieldLogger { return o.Log }
