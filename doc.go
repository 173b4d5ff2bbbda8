// Package main provides the cellwalk command-line interface.
//
// cellwalk is a read-only inventory tool for AFS cells. It walks the
// mounted volume tree of one home cell starting at a root mount (default
// /afs), reporting volume mount points and/or access lists as it goes.
// Mounts into foreign cells are reported but never descended into, and each
// volume is entered at most once, so the walk terminates on any mount graph
// including cycles.
//
// The main binary runs the walk directly:
//
//	cellwalk --acls /afs
//
// with one utility subcommand:
//   - cell: print the home cell the walk would use
package main
