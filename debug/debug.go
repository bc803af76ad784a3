// Package debug provides env-flag gated diagnostic logging for treekit.
// Each flag enables logging for one subsystem; all output goes to stderr
// and is colored when stderr is a terminal.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Walk     bool
	Tree     bool
	Format   bool
	Filter   bool
	Cache    bool
	Registry bool
}

var d *debug

func init() {
	d = &debug{}
	d.Walk = boolEnv("TREEKIT_DEBUG_WALK")
	d.Tree = boolEnv("TREEKIT_DEBUG_TREE")
	d.Format = boolEnv("TREEKIT_DEBUG_FORMAT")
	d.Filter = boolEnv("TREEKIT_DEBUG_FILTER")
	d.Cache = boolEnv("TREEKIT_DEBUG_CACHE")
	d.Registry = boolEnv("TREEKIT_DEBUG_REGISTRY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Walk() bool {
	return d.Walk
}
func Tree() bool {
	return d.Tree
}
func Format() bool {
	return d.Format
}
func Filter() bool {
	return d.Filter
}
func Cache() bool {
	return d.Cache
}
func Registry() bool {
	return d.Registry
}
