// Package taxonomy turns the flat species directory returned by the API into
// a nested tree with cumulative observation counts, and filters that tree for
// the Bird Directory view.
//
// Every function is pure: inputs are never mutated and each call allocates a
// fresh tree, so results may be shared between goroutines once built.
package taxonomy

import (
	"github.com/feederwatch/dashboard/internal/errors"
	"github.com/feederwatch/dashboard/internal/logger"
)

// Species is one flat directory record: a species, subspecies or family grouping.
type Species struct {
	ID               int64  `json:"id" yaml:"id"`
	Name             string `json:"name" yaml:"name"`
	ParentID         *int64 `json:"parentId" yaml:"parentId"` // nil marks a root
	Active           bool   `json:"active" yaml:"active"`     // regionally present
	ObservationCount int    `json:"observationCount" yaml:"observationCount"`
}

// Node is a Species placed in the tree.
type Node struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	ParentID         *int64  `json:"parentId"`
	Active           bool    `json:"active"`
	ObservationCount int     `json:"observationCount"`
	CumulativeCount  int     `json:"cumulativeCount"`
	Children         []*Node `json:"children"`
}

// HasChildren reports whether the node has at least one child.
func (n *Node) HasChildren() bool {
	return len(n.Children) > 0
}

// shallowCopy copies n without its children.
func (n *Node) shallowCopy() *Node {
	c := *n
	c.Children = nil
	return &c
}

var (
	// ErrCycle is returned when parent references form a loop.
	ErrCycle = errors.NewStd("taxonomy: parent reference cycle")
	// ErrDuplicateID is returned when two records share an ID.
	ErrDuplicateID = errors.NewStd("taxonomy: duplicate species id")
)

// GetLogger returns the taxonomy package logger.
func GetLogger() logger.Logger {
	return logger.Global().Module("taxonomy")
}

// ParentOf is a convenience for building Species literals.
func ParentOf(id int64) *int64 {
	return &id
}
